package api_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/project-showcase-api/internal/api"
	"github.com/project-showcase-api/internal/config"
	"github.com/project-showcase-api/internal/mocks"
	"github.com/project-showcase-api/internal/models"
	"github.com/project-showcase-api/internal/repository"
	"github.com/project-showcase-api/internal/service"
	"github.com/rs/zerolog"
)

func setupTestRouter() (*gin.Engine, *mocks.MockProjectRepository, *mocks.MockLocalStore, *mocks.MockAssetStore) {
	gin.SetMode(gin.TestMode)

	mockRepo := mocks.NewMockProjectRepository()
	mockLocal := mocks.NewMockLocalStore()
	mockAssets := mocks.NewMockAssetStore()

	cfg := &config.Config{
		Server: config.ServerConfig{
			Port:           "8080",
			AllowedOrigins: []string{"*"},
		},
		Upload: config.UploadConfig{
			Dir:           "/tmp/test-uploads",
			BaseURL:       mockAssets.BaseURL,
			MaxRemoteSize: 5 * 1024 * 1024,
			MaxLocalSize:  2 * 1024 * 1024,
			Timeout:       time.Second,
		},
		Auth: config.AuthConfig{
			AdminPassword: "test-password",
			TokenSecret:   "test-secret",
			TokenTTL:      time.Hour,
		},
	}

	services := service.NewServices(
		&repository.Repositories{Project: mockRepo},
		mockLocal, mockAssets, cfg, zerolog.Nop())

	router := api.NewRouter(services, nil, cfg, zerolog.Nop())
	return router, mockRepo, mockLocal, mockAssets
}

func adminToken(t *testing.T, router *gin.Engine) string {
	t.Helper()

	body, _ := json.Marshal(map[string]string{"password": "test-password"})
	req := httptest.NewRequest("POST", "/v1/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Login failed with status %d: %s", w.Code, w.Body.String())
	}

	var response map[string]string
	json.Unmarshal(w.Body.Bytes(), &response)
	return response["token"]
}

func TestHealthEndpoint(t *testing.T) {
	router, _, _, _ := setupTestRouter()

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)

	if response["status"] != "healthy" {
		t.Errorf("Expected status 'healthy', got %v", response["status"])
	}
	if response["service"] != "project-showcase-api" {
		t.Errorf("Expected service name, got %v", response["service"])
	}
}

func TestListProjects_DegradesOnStoreFailure(t *testing.T) {
	router, mockRepo, _, _ := setupTestRouter()
	mockRepo.GetAllError = errors.New("store down")

	req := httptest.NewRequest("GET", "/v1/projects", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Public listing must never fail, got %d", w.Code)
	}

	var response struct {
		Projects []models.Project `json:"projects"`
		Count    int              `json:"count"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)

	if response.Count == 0 {
		t.Error("Expected default records in degraded response")
	}
}

func TestListProjects_CategoryQuery(t *testing.T) {
	router, _, _, _ := setupTestRouter()

	req := httptest.NewRequest("GET", "/v1/projects?category=smart_building", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var response struct {
		Projects []models.Project `json:"projects"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)

	if len(response.Projects) == 0 {
		t.Fatal("Expected smart_building defaults")
	}
	for _, p := range response.Projects {
		if p.Category != models.CategorySmartBuilding {
			t.Errorf("Unexpected category %s", p.Category)
		}
	}
}

func TestGetProject_NotFound(t *testing.T) {
	router, _, _, _ := setupTestRouter()

	req := httptest.NewRequest("GET", "/v1/projects/missing", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}

func TestCounterEndpoints(t *testing.T) {
	router, mockRepo, _, _ := setupTestRouter()
	now := time.Now()
	mockRepo.Projects["p-1"] = &models.Project{
		ID: "p-1", Title: "t", Description: "d",
		Category: models.CategorySmartBuilding, IsPublished: true,
		CreatedAt: now, UpdatedAt: now,
	}

	// View on a missing record still returns 204: best-effort telemetry
	req := httptest.NewRequest("POST", "/v1/projects/missing/view", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Errorf("View increment must swallow failures, got %d", w.Code)
	}

	// Like on a missing record surfaces the failure
	req = httptest.NewRequest("POST", "/v1/projects/missing/like", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for like on missing record, got %d", w.Code)
	}

	// Happy path
	req = httptest.NewRequest("POST", "/v1/projects/p-1/like", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Errorf("Expected 204, got %d", w.Code)
	}
	if mockRepo.Projects["p-1"].LikeCount != 1 {
		t.Errorf("Like count not bumped: %d", mockRepo.Projects["p-1"].LikeCount)
	}
}

func TestAdminEndpoints_RequireToken(t *testing.T) {
	router, _, _, _ := setupTestRouter()

	req := httptest.NewRequest("GET", "/v1/admin/projects", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 without token, got %d", w.Code)
	}

	req = httptest.NewRequest("GET", "/v1/admin/projects", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 with garbage token, got %d", w.Code)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	router, _, _, _ := setupTestRouter()

	body, _ := json.Marshal(map[string]string{"password": "wrong"})
	req := httptest.NewRequest("POST", "/v1/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401, got %d", w.Code)
	}
}

func TestAdminList_IncludesUnpublished(t *testing.T) {
	router, mockRepo, _, _ := setupTestRouter()
	now := time.Now()
	mockRepo.Projects["draft-1"] = &models.Project{
		ID: "draft-1", Title: "Draft", Description: "d",
		Category: models.CategorySmartBuilding, IsPublished: false,
		CreatedAt: now, UpdatedAt: now,
	}
	token := adminToken(t, router)

	req := httptest.NewRequest("GET", "/v1/admin/projects", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var response struct {
		Projects []models.Project `json:"projects"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)

	found := false
	for _, p := range response.Projects {
		if p.ID == "draft-1" {
			found = true
		}
	}
	if !found {
		t.Error("Admin listing should include unpublished records")
	}
}

func TestCreateProject(t *testing.T) {
	router, mockRepo, _, _ := setupTestRouter()
	token := adminToken(t, router)

	payload := map[string]interface{}{
		"title":       "New Project",
		"description": "Created through the admin surface",
		"category":    "public_facility",
	}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest("POST", "/v1/admin/projects", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var response map[string]string
	json.Unmarshal(w.Body.Bytes(), &response)
	stored := mockRepo.Projects[response["id"]]
	if stored == nil {
		t.Fatal("Record not written to the remote store")
	}
	if !stored.IsPublished {
		t.Error("is_published should default to true")
	}
	if stored.PublishedAt == nil {
		t.Error("published record missing published_at")
	}
}

func TestCreateProject_MissingTitle(t *testing.T) {
	router, _, _, _ := setupTestRouter()
	token := adminToken(t, router)

	body, _ := json.Marshal(map[string]string{
		"description": "no title",
		"category":    "public_facility",
	})
	req := httptest.NewRequest("POST", "/v1/admin/projects", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", w.Code)
	}
}

func TestCreateProject_LocalStorage(t *testing.T) {
	router, mockRepo, mockLocal, _ := setupTestRouter()
	token := adminToken(t, router)

	body, _ := json.Marshal(map[string]string{
		"title":       "Local Record",
		"description": "explicitly stored in the override store",
		"category":    "industrial_facility",
	})
	req := httptest.NewRequest("POST", "/v1/admin/projects?storage=local", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if len(mockLocal.Records) != 1 {
		t.Errorf("Expected one override record, got %d", len(mockLocal.Records))
	}
	if len(mockRepo.Projects) != 0 {
		t.Error("storage=local must not touch the remote store")
	}
}

func TestDeleteProject_NotFound(t *testing.T) {
	router, _, _, _ := setupTestRouter()
	token := adminToken(t, router)

	req := httptest.NewRequest("DELETE", "/v1/admin/projects/missing", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}

func multipartUpload(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)
	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		t.Fatal(err)
	}
	part.Write(content)
	writer.Close()
	return buf, writer.FormDataContentType()
}

func TestUploadImage_Remote(t *testing.T) {
	router, _, _, mockAssets := setupTestRouter()
	token := adminToken(t, router)

	png := append([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, make([]byte, 64)...)
	body, contentType := multipartUpload(t, "file", "cover.png", png)

	req := httptest.NewRequest("POST", "/v1/admin/uploads?project_id=p-1", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if len(mockAssets.Assets) != 1 {
		t.Errorf("Expected one stored asset, got %d", len(mockAssets.Assets))
	}

	var response map[string]string
	json.Unmarshal(w.Body.Bytes(), &response)
	if response["featured_image_url"] == "" {
		t.Error("Expected the public asset URL in the response")
	}
}

func TestUploadImage_LocalDataURI(t *testing.T) {
	router, _, _, mockAssets := setupTestRouter()
	token := adminToken(t, router)

	png := append([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, make([]byte, 64)...)
	body, contentType := multipartUpload(t, "file", "cover.png", png)

	req := httptest.NewRequest("POST", "/v1/admin/uploads?mode=local", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if len(mockAssets.Assets) != 0 {
		t.Error("Local mode must not touch object storage")
	}

	var response map[string]string
	json.Unmarshal(w.Body.Bytes(), &response)
	if got := response["featured_image_url"]; len(got) < 22 || got[:22] != "data:image/png;base64," {
		t.Errorf("Expected a data URI, got %.40s", got)
	}
}

func TestUploadImage_RejectsNonImage(t *testing.T) {
	router, _, _, _ := setupTestRouter()
	token := adminToken(t, router)

	body, contentType := multipartUpload(t, "file", "notes.txt", []byte("plain text"))

	req := httptest.NewRequest("POST", "/v1/admin/uploads", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for non-image upload, got %d", w.Code)
	}
}
