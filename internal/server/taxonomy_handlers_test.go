package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ecoconnect/internal/models"
	"ecoconnect/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// MockCategoryRepository is a mock of the CategoryRepository interface
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]*models.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *models.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

// MockTagRepository is a mock of the TagRepository interface
type MockTagRepository struct {
	mock.Mock
}

func (m *MockTagRepository) List(ctx context.Context) ([]*models.Tag, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.Tag), args.Error(1)
}

func (m *MockTagRepository) GetBySlug(ctx context.Context, slug string) (*models.Tag, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tag), args.Error(1)
}

func (m *MockTagRepository) Create(ctx context.Context, tag *models.Tag) error {
	args := m.Called(ctx, tag)
	return args.Error(0)
}

func newTaxonomyTestServer(categoryRepo *MockCategoryRepository, tagRepo *MockTagRepository) *Server {
	s := &Server{}
	s.taxonomyService = service.NewTaxonomyService(categoryRepo, tagRepo)
	return s
}

func TestGetCategories(t *testing.T) {
	mockCategories := new(MockCategoryRepository)
	s := newTaxonomyTestServer(mockCategories, new(MockTagRepository))
	app := fiber.New()
	app.Get("/api/categories", s.GetCategories)

	mockCategories.On("List", mock.Anything).Return([]*models.Category{
		{ID: 1, Name: "Environment", Slug: "environment"},
		{ID: 2, Name: "Renewable Energy", Slug: "renewable-energy"},
	}, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/categories", nil))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var categories []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&categories))
	require.Len(t, categories, 2)
	assert.Equal(t, "environment", categories[0]["slug"])
}

func TestGetCategoryBySlug_NotFound(t *testing.T) {
	mockCategories := new(MockCategoryRepository)
	s := newTaxonomyTestServer(mockCategories, new(MockTagRepository))
	app := fiber.New()
	app.Get("/api/categories/:slug", s.GetCategoryBySlug)

	mockCategories.On("GetBySlug", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/categories/missing", nil))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Category not found", decodeBody(t, resp)["message"])
}

func TestGetTags(t *testing.T) {
	mockTags := new(MockTagRepository)
	s := newTaxonomyTestServer(new(MockCategoryRepository), mockTags)
	app := fiber.New()
	app.Get("/api/tags", s.GetTags)

	mockTags.On("List", mock.Anything).Return([]*models.Tag{
		{ID: 1, Name: "Solar", Slug: "solar"},
	}, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/tags", nil))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var tags []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&tags))
	require.Len(t, tags, 1)
	assert.Equal(t, "solar", tags[0]["slug"])
}
