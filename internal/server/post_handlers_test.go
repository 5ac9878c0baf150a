package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ecoconnect/internal/config"
	"ecoconnect/internal/middleware"
	"ecoconnect/internal/models"
	"ecoconnect/internal/repository"
	"ecoconnect/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// MockPostRepository is a mock of the PostRepository interface
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) List(ctx context.Context, filter repository.PostFilter) ([]*models.Post, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*models.Post), args.Error(1)
}

func (m *MockPostRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) GetByIDs(ctx context.Context, ids []uint) ([]*models.Post, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]*models.Post), args.Error(1)
}

func (m *MockPostRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

func (m *MockPostRepository) Create(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) Update(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) Delete(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockPostRepository) IncrementViews(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPostRepository) IncrementLikes(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPostRepository) AddTag(ctx context.Context, postID, tagID uint) error {
	args := m.Called(ctx, postID, tagID)
	return args.Error(0)
}

func (m *MockPostRepository) Recent(ctx context.Context, limit int) ([]*models.Post, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]*models.Post), args.Error(1)
}

func (m *MockPostRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPostRepository) StatsByAuthor(ctx context.Context, authorIDs []uint) (map[uint]repository.AuthorStats, error) {
	args := m.Called(ctx, authorIDs)
	return args.Get(0).(map[uint]repository.AuthorStats), args.Error(1)
}

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, limit, offset int) ([]*models.User, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *MockUserRepository) TopByPostsCount(ctx context.Context, limit int) ([]*models.User, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *MockUserRepository) IncrementPostsCount(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// newTestServer wires a Server over mocked repositories, bypassing DB and
// Redis entirely.
func newTestServer(postRepo repository.PostRepository, userRepo repository.UserRepository, commentRepo repository.CommentRepository) *Server {
	s := &Server{config: &config.Config{}}
	s.postService = service.NewPostService(postRepo, userRepo)
	s.commentService = service.NewCommentService(commentRepo, postRepo)
	s.userService = service.NewUserService(userRepo)
	s.communityService = service.NewCommunityService(userRepo, postRepo, commentRepo)
	return s
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestGetPosts_FeaturedAppliedOnlyWhenPresent(t *testing.T) {
	t.Run("Absent", func(t *testing.T) {
		mockRepo := new(MockPostRepository)
		s := newTestServer(mockRepo, new(MockUserRepository), new(MockCommentRepository))

		app := fiber.New()
		app.Get("/api/posts", s.GetPosts)

		mockRepo.On("List", mock.Anything, mock.MatchedBy(func(f repository.PostFilter) bool {
			return f.Featured == nil && f.Limit == 20
		})).Return([]*models.Post{}, nil)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/posts", nil))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Explicit False", func(t *testing.T) {
		mockRepo := new(MockPostRepository)
		s := newTestServer(mockRepo, new(MockUserRepository), new(MockCommentRepository))

		app := fiber.New()
		app.Get("/api/posts", s.GetPosts)

		mockRepo.On("List", mock.Anything, mock.MatchedBy(func(f repository.PostFilter) bool {
			return f.Featured != nil && !*f.Featured
		})).Return([]*models.Post{}, nil)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/posts?featured=false", nil))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockRepo.AssertExpectations(t)
	})
}

func TestGetPosts_RequestScopedContextReachesRepository(t *testing.T) {
	mockRepo := new(MockPostRepository)
	s := newTestServer(mockRepo, new(MockUserRepository), new(MockCommentRepository))

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("requestid", "req-42")
		return c.Next()
	})
	app.Use(middleware.ContextMiddleware())
	app.Get("/api/posts", s.GetPosts)

	// The context handed to the repository carries the request id stamped by
	// the middleware chain.
	mockRepo.On("List", mock.MatchedBy(func(ctx context.Context) bool {
		rid, _ := ctx.Value(middleware.RequestIDKey).(string)
		return rid == "req-42"
	}), mock.Anything).Return([]*models.Post{}, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/posts", nil))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	mockRepo.AssertExpectations(t)
}

func TestSearchPosts(t *testing.T) {
	t.Run("Missing Query", func(t *testing.T) {
		s := newTestServer(new(MockPostRepository), new(MockUserRepository), new(MockCommentRepository))
		app := fiber.New()
		app.Get("/api/search", s.SearchPosts)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/search", nil))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Search query is required", decodeBody(t, resp)["message"])
	})

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockPostRepository)
		s := newTestServer(mockRepo, new(MockUserRepository), new(MockCommentRepository))
		app := fiber.New()
		app.Get("/api/search", s.SearchPosts)

		mockRepo.On("List", mock.Anything, mock.MatchedBy(func(f repository.PostFilter) bool {
			return f.Search == "solar"
		})).Return([]*models.Post{{ID: 1, Title: "Community Solar"}}, nil)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/search?q=solar", nil))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockRepo.AssertExpectations(t)
	})
}

func TestGetPostBySlug(t *testing.T) {
	t.Run("Success Counts A View", func(t *testing.T) {
		mockRepo := new(MockPostRepository)
		s := newTestServer(mockRepo, new(MockUserRepository), new(MockCommentRepository))
		app := fiber.New()
		app.Get("/api/posts/:slug", s.GetPostBySlug)

		post := &models.Post{ID: 5, Title: "Wind at Scale", Slug: "wind-at-scale"}
		mockRepo.On("GetBySlug", mock.Anything, "wind-at-scale").Return(post, nil)
		mockRepo.On("IncrementViews", mock.Anything, uint(5)).Return(nil)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/posts/wind-at-scale", nil))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "wind-at-scale", decodeBody(t, resp)["slug"])
		mockRepo.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockRepo := new(MockPostRepository)
		s := newTestServer(mockRepo, new(MockUserRepository), new(MockCommentRepository))
		app := fiber.New()
		app.Get("/api/posts/:slug", s.GetPostBySlug)

		mockRepo.On("GetBySlug", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/posts/missing", nil))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "Post not found", decodeBody(t, resp)["message"])
	})
}

func TestCreatePostHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockPostRepository)
		s := newTestServer(mockRepo, new(MockUserRepository), new(MockCommentRepository))
		app := fiber.New()
		app.Post("/api/posts", s.CreatePost)

		mockRepo.On("SlugExists", mock.Anything, "community-solar").Return(false, nil)
		mockRepo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			args.Get(1).(*models.Post).ID = 9
		}).Return(nil)
		mockRepo.On("GetByID", mock.Anything, uint(9)).
			Return(&models.Post{ID: 9, Title: "Community Solar", Slug: "community-solar"}, nil)

		body, _ := json.Marshal(map[string]any{
			"title":   "Community Solar",
			"content": "Sharing panels across a neighborhood",
			"excerpt": "Shared panels",
		})
		req := httptest.NewRequest(http.MethodPost, "/api/posts", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Missing Fields", func(t *testing.T) {
		s := newTestServer(new(MockPostRepository), new(MockUserRepository), new(MockCommentRepository))
		app := fiber.New()
		app.Post("/api/posts", s.CreatePost)

		body, _ := json.Marshal(map[string]any{"title": ""})
		req := httptest.NewRequest(http.MethodPost, "/api/posts", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Repository Failure Stays Internal", func(t *testing.T) {
		mockRepo := new(MockPostRepository)
		s := newTestServer(mockRepo, new(MockUserRepository), new(MockCommentRepository))
		app := fiber.New()
		app.Post("/api/posts", s.CreatePost)

		mockRepo.On("SlugExists", mock.Anything, "community-solar").Return(false, nil)
		mockRepo.On("Create", mock.Anything, mock.Anything).
			Return(errors.New("dial tcp 10.2.0.4:5432: connect: connection refused"))

		body, _ := json.Marshal(map[string]any{
			"title":   "Community Solar",
			"content": "Sharing panels across a neighborhood",
			"excerpt": "Shared panels",
		})
		req := httptest.NewRequest(http.MethodPost, "/api/posts", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		// Driver-level detail stays out of the envelope.
		msg := decodeBody(t, resp)["message"]
		assert.Equal(t, "Something went wrong", msg)
		assert.NotContains(t, msg, "10.2.0.4")
	})
}

func TestRecordPostLike(t *testing.T) {
	mockRepo := new(MockPostRepository)
	s := newTestServer(mockRepo, new(MockUserRepository), new(MockCommentRepository))
	app := fiber.New()
	app.Post("/api/posts/:id/like", s.RecordPostLike)

	mockRepo.On("IncrementLikes", mock.Anything, uint(6)).Return(nil)
	mockRepo.On("GetByIDs", mock.Anything, []uint{6}).Return([]*models.Post{}, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/posts/6/like", nil))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, decodeBody(t, resp)["success"])
	mockRepo.AssertExpectations(t)
}

func TestDeletePostHandler(t *testing.T) {
	t.Run("Not Found", func(t *testing.T) {
		mockRepo := new(MockPostRepository)
		s := newTestServer(mockRepo, new(MockUserRepository), new(MockCommentRepository))
		app := fiber.New()
		app.Delete("/api/posts/:id", s.DeletePost)

		mockRepo.On("GetByIDs", mock.Anything, []uint{99}).Return([]*models.Post{}, nil)
		mockRepo.On("Delete", mock.Anything, uint(99)).Return(false, nil)

		resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/posts/99", nil))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("Invalid ID", func(t *testing.T) {
		s := newTestServer(new(MockPostRepository), new(MockUserRepository), new(MockCommentRepository))
		app := fiber.New()
		app.Delete("/api/posts/:id", s.DeletePost)

		resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/posts/abc", nil))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Invalid ID", decodeBody(t, resp)["message"])
	})
}
