// Package localstore implements the admin override store: one JSON-serialized
// array of project records, read and written wholesale. It is both an explicit
// write target for admins and the aggregator's fallback source when the remote
// record store is unreachable.
package localstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/project-showcase-api/internal/models"
	"github.com/rs/zerolog"
)

// Store defines the override store contract. Load never fails: missing or
// corrupt data is treated as an empty set so reads always succeed.
type Store interface {
	Load() []models.Project
	Save(projects []models.Project) error
}

// FileStore persists the override records as a single JSON file.
// The blob is overwritten wholesale on every save (last write wins).
type FileStore struct {
	path string
	log  zerolog.Logger

	// Guards the read-modify-write cycle inside one process; concurrent
	// processes are not coordinated, matching the blob-level contract.
	mu sync.Mutex
}

// NewFileStore creates a store backed by the given file path
func NewFileStore(path string, log zerolog.Logger) *FileStore {
	return &FileStore{
		path: path,
		log:  log.With().Str("component", "localstore").Logger(),
	}
}

// Load deserializes the persisted records. On missing or corrupt data it
// logs and returns an empty slice, never an error.
func (s *FileStore) Load() []models.Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn().Err(err).Str("path", s.path).Msg("Failed to read override store")
		}
		return []models.Project{}
	}

	var projects []models.Project
	if err := json.Unmarshal(data, &projects); err != nil {
		s.log.Warn().Err(err).Str("path", s.path).Msg("Override store corrupt, treating as empty")
		return []models.Project{}
	}

	return projects
}

// Save serializes the full record set and overwrites the prior content
func (s *FileStore) Save(projects []models.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if projects == nil {
		projects = []models.Project{}
	}

	data, err := json.MarshalIndent(projects, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize override store: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create override store directory: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write override store: %w", err)
	}

	s.log.Debug().Int("records", len(projects)).Msg("Override store saved")
	return nil
}
