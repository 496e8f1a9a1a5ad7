package mocks

import (
	"context"
	"database/sql"
	"io"
	"strings"
	"time"

	"github.com/project-showcase-api/internal/models"
)

// MockProjectRepository is a mock implementation of repository.ProjectRepository
type MockProjectRepository struct {
	Projects map[string]*models.Project

	// GetAllError simulates an unreachable remote store for every read
	GetAllError error
	// WriteError fails every write operation
	WriteError error
	// IncrementError fails counter increments only
	IncrementError error

	GetAllCalls    int
	IncrementCalls int
}

func NewMockProjectRepository() *MockProjectRepository {
	return &MockProjectRepository{
		Projects: make(map[string]*models.Project),
	}
}

func (m *MockProjectRepository) GetAll(ctx context.Context) ([]models.Project, error) {
	m.GetAllCalls++
	if m.GetAllError != nil {
		return nil, m.GetAllError
	}
	var projects []models.Project
	for _, p := range m.Projects {
		projects = append(projects, *p)
	}
	return projects, nil
}

func (m *MockProjectRepository) GetByID(ctx context.Context, id string) (*models.Project, error) {
	if m.GetAllError != nil {
		return nil, m.GetAllError
	}
	p, ok := m.Projects[id]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (m *MockProjectRepository) Create(ctx context.Context, project *models.Project) error {
	if m.WriteError != nil {
		return m.WriteError
	}
	now := time.Now()
	project.CreatedAt = now
	project.UpdatedAt = now
	clone := *project
	m.Projects[project.ID] = &clone
	return nil
}

func (m *MockProjectRepository) Update(ctx context.Context, project *models.Project) error {
	if m.WriteError != nil {
		return m.WriteError
	}
	if _, ok := m.Projects[project.ID]; !ok {
		return sql.ErrNoRows
	}
	clone := *project
	m.Projects[project.ID] = &clone
	return nil
}

func (m *MockProjectRepository) Delete(ctx context.Context, id string) error {
	if m.WriteError != nil {
		return m.WriteError
	}
	if _, ok := m.Projects[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.Projects, id)
	return nil
}

func (m *MockProjectRepository) IncrementViewCount(ctx context.Context, id string) error {
	return m.increment(id, func(p *models.Project) { p.ViewCount++ })
}

func (m *MockProjectRepository) IncrementLikeCount(ctx context.Context, id string) error {
	return m.increment(id, func(p *models.Project) { p.LikeCount++ })
}

func (m *MockProjectRepository) increment(id string, bump func(*models.Project)) error {
	m.IncrementCalls++
	if m.IncrementError != nil {
		return m.IncrementError
	}
	p, ok := m.Projects[id]
	if !ok {
		return sql.ErrNoRows
	}
	bump(p)
	return nil
}

func (m *MockProjectRepository) Count(ctx context.Context) (int, error) {
	if m.GetAllError != nil {
		return 0, m.GetAllError
	}
	return len(m.Projects), nil
}

// MockLocalStore is an in-memory implementation of localstore.Store
type MockLocalStore struct {
	Records   []models.Project
	SaveError error
	SaveCalls int
}

func NewMockLocalStore() *MockLocalStore {
	return &MockLocalStore{}
}

func (m *MockLocalStore) Load() []models.Project {
	out := make([]models.Project, len(m.Records))
	copy(out, m.Records)
	return out
}

func (m *MockLocalStore) Save(projects []models.Project) error {
	m.SaveCalls++
	if m.SaveError != nil {
		return m.SaveError
	}
	m.Records = make([]models.Project, len(projects))
	copy(m.Records, projects)
	return nil
}

// MockAssetStore is an in-memory implementation of assetstore.Store
type MockAssetStore struct {
	Assets      map[string][]byte
	BaseURL     string
	UploadError error
	DeleteError error
	UploadDelay time.Duration

	DeleteCalls int
}

func NewMockAssetStore() *MockAssetStore {
	return &MockAssetStore{
		Assets:  make(map[string][]byte),
		BaseURL: "https://assets.test",
	}
}

func (m *MockAssetStore) Upload(ctx context.Context, key string, content io.Reader) (string, error) {
	if m.UploadDelay > 0 {
		time.Sleep(m.UploadDelay)
	}
	if m.UploadError != nil {
		return "", m.UploadError
	}
	data, err := io.ReadAll(content)
	if err != nil {
		return "", err
	}
	m.Assets[key] = data
	return m.BaseURL + "/" + key, nil
}

func (m *MockAssetStore) Delete(ctx context.Context, url string) error {
	m.DeleteCalls++
	if m.DeleteError != nil {
		return m.DeleteError
	}
	delete(m.Assets, strings.TrimPrefix(url, m.BaseURL+"/"))
	return nil
}

func (m *MockAssetStore) Owns(url string) bool {
	return strings.HasPrefix(url, m.BaseURL+"/")
}
