package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"officex/internal/domain/taxonomy"
	"officex/internal/infrastructure/http/v1/middleware"
)

type mockTaxonomyRepo struct {
	categories map[string]bool
	tags       map[string]bool
}

func newMockTaxonomyRepo() *mockTaxonomyRepo {
	return &mockTaxonomyRepo{categories: map[string]bool{}, tags: map[string]bool{}}
}

func (m *mockTaxonomyRepo) ListCategories(ctx context.Context) ([]taxonomy.Category, error) {
	return nil, nil
}

func (m *mockTaxonomyRepo) CreateCategory(ctx context.Context, c *taxonomy.Category) error {
	m.categories[c.Name] = true
	return nil
}

func (m *mockTaxonomyRepo) CategoryExists(ctx context.Context, name string) (bool, error) {
	return m.categories[name], nil
}

func (m *mockTaxonomyRepo) ListTags(ctx context.Context) ([]taxonomy.Tag, error) {
	return nil, nil
}

func (m *mockTaxonomyRepo) CreateTag(ctx context.Context, tg *taxonomy.Tag) error {
	m.tags[tg.Name] = true
	return nil
}

func (m *mockTaxonomyRepo) TagExists(ctx context.Context, name string) (bool, error) {
	return m.tags[name], nil
}

func newTaxonomyRouter(repo taxonomy.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.ErrorHandler())

	handler := NewTaxonomyHandler(NewBaseHandler(), taxonomy.NewService(repo))
	handler.RegisterRoutes(router.Group("/api/v1/catalog"))
	return router
}

func TestCreateCategory_TooShortName(t *testing.T) {
	router := newTaxonomyRouter(newMockTaxonomyRepo())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/catalog/categories",
		strings.NewReader(`{"name":"a"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Valid  bool     `json:"valid"`
		Errors []string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Valid)
	assert.Contains(t, body.Errors, "Category name too short.")
}

func TestCreateCategory_OK(t *testing.T) {
	repo := newMockTaxonomyRepo()
	router := newTaxonomyRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/catalog/categories",
		strings.NewReader(`{"name":"Stationery"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, repo.categories["Stationery"])
}

func TestCreateTag_Duplicate(t *testing.T) {
	repo := newMockTaxonomyRepo()
	repo.tags["urgent"] = true
	router := newTaxonomyRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/catalog/tags",
		strings.NewReader(`{"name":"urgent"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}
