package repository

import (
	"path/filepath"
	"sync"

	"github.com/sacofrina/gmao-api/internal/domain"
)

// InterventionsFile is the name of the intervention table inside the base
// directory.
const InterventionsFile = "interventions.json"

// InterventionRepository persists interventions as a JSON array. The list
// is append-only at the service level; this layer only loads and rewrites
// the whole file.
type InterventionRepository struct {
	path string
	mu   sync.Mutex
}

func NewInterventionRepository(baseDir string) *InterventionRepository {
	return &InterventionRepository{path: filepath.Join(baseDir, InterventionsFile)}
}

// Load returns all recorded interventions in insertion order. A missing
// file yields an empty list.
func (r *InterventionRepository) Load() ([]domain.Intervention, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	interventions := make([]domain.Intervention, 0)
	if _, err := readJSONFile(r.path, &interventions); err != nil {
		return nil, err
	}
	return interventions, nil
}

// Save fully overwrites the intervention list.
func (r *InterventionRepository) Save(interventions []domain.Intervention) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return writeJSONFile(r.path, interventions)
}
