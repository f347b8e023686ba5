// Package taxonomy derives and maintains the fixed on-disk folder layout
// documents are filed into:
//
//	<base>/<classification>/<payee>/<client>/<MM>/<doc type>/<filename>
//
// The files themselves are the documents; type and month are positional in
// the path and there is no separate metadata record.
package taxonomy

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/sacofrina/gmao-api/internal/domain"
)

// Manager resolves and creates taxonomy paths under a single base directory.
type Manager struct {
	baseDir string
}

func NewManager(baseDir string) *Manager {
	return &Manager{baseDir: baseDir}
}

// BaseDir returns the root of the taxonomy.
func (m *Manager) BaseDir() string {
	return m.baseDir
}

// ClientDir returns the directory holding a client's month folders.
func (m *Manager) ClientDir(classification domain.Classification, payee, clientName string) string {
	return filepath.Join(m.baseDir, string(classification), payee, clientName)
}

// DocumentDir returns the directory a document of the given type and month
// is filed into.
func (m *Manager) DocumentDir(classification domain.Classification, payee, clientName, month string, docType domain.DocType) string {
	return filepath.Join(m.ClientDir(classification, payee, clientName), month, string(docType))
}

// ClientExists reports whether the client's folder exists on disk. The
// check is scoped to one (classification, payee) pair and deliberately does
// not consult the JSON store; disk and store can diverge.
func (m *Manager) ClientExists(clientName, payee string, classification domain.Classification) bool {
	info, err := os.Stat(m.ClientDir(classification, payee, clientName))
	return err == nil && info.IsDir()
}

// CreateStructure idempotently creates the client folder with its twelve
// month folders, each holding the six document-type folders.
//
// The year argument is accepted but not part of the resulting path; the
// historical layout is not year-scoped and pre-existing trees depend on
// that.
func (m *Manager) CreateStructure(payee, clientName string, year int, classification domain.Classification) error {
	_ = year

	clientDir := m.ClientDir(classification, payee, clientName)
	for month := 1; month <= 12; month++ {
		monthDir := filepath.Join(clientDir, fmt.Sprintf("%02d", month))
		for _, docType := range domain.DocTypes {
			if err := os.MkdirAll(filepath.Join(monthDir, string(docType)), 0o755); err != nil {
				return fmt.Errorf("failed to create folder structure for client %s: %w", clientName, err)
			}
		}
	}
	return nil
}

// ListDocuments returns the full paths of the files filed under the given
// taxonomy slot, sorted by name. A missing directory yields an empty list.
func (m *Manager) ListDocuments(classification domain.Classification, payee, clientName, month string, docType domain.DocType) ([]string, error) {
	dir := m.DocumentDir(classification, payee, clientName, month, docType)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(files)
	return files, nil
}
