package repository

import (
	"path/filepath"
	"sync"

	"github.com/sacofrina/gmao-api/internal/domain"
)

// ClientsFile is the name of the client table inside the base directory.
const ClientsFile = "clients.json"

// ClientRepository persists the client table as a single JSON object keyed
// by client name. Every operation reads or rewrites the whole file; the
// mutex serializes access within this process. There is no cross-process
// locking, so two servers sharing a base directory race last-write-wins.
type ClientRepository struct {
	path string
	mu   sync.Mutex
}

func NewClientRepository(baseDir string) *ClientRepository {
	return &ClientRepository{path: filepath.Join(baseDir, ClientsFile)}
}

// Load returns the full client table. A missing file yields an empty map.
func (r *ClientRepository) Load() (map[string]domain.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	clients := make(map[string]domain.Client)
	if _, err := readJSONFile(r.path, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

// Save fully overwrites the client table.
func (r *ClientRepository) Save(clients map[string]domain.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return writeJSONFile(r.path, clients)
}
