package service

import (
	"context"
	"errors"
	"testing"

	"ecoconnect/internal/models"
	"ecoconnect/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var errNotFound = gorm.ErrRecordNotFound

// postRepoStub is a function-field stub for repository.PostRepository.
type postRepoStub struct {
	listFn            func(context.Context, repository.PostFilter) ([]*models.Post, error)
	getByIDFn         func(context.Context, uint) (*models.Post, error)
	getBySlugFn       func(context.Context, string) (*models.Post, error)
	getByIDsFn        func(context.Context, []uint) ([]*models.Post, error)
	slugExistsFn      func(context.Context, string) (bool, error)
	createFn          func(context.Context, *models.Post) error
	updateFn          func(context.Context, *models.Post) error
	deleteFn          func(context.Context, uint) (bool, error)
	incrementViewsFn  func(context.Context, uint) error
	incrementLikesFn  func(context.Context, uint) error
	addTagFn          func(context.Context, uint, uint) error
	recentFn          func(context.Context, int) ([]*models.Post, error)
	countFn           func(context.Context) (int64, error)
	statsByAuthorFn   func(context.Context, []uint) (map[uint]repository.AuthorStats, error)
}

func (s *postRepoStub) List(ctx context.Context, filter repository.PostFilter) ([]*models.Post, error) {
	return s.listFn(ctx, filter)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	return s.getBySlugFn(ctx, slug)
}
func (s *postRepoStub) GetByIDs(ctx context.Context, ids []uint) ([]*models.Post, error) {
	return s.getByIDsFn(ctx, ids)
}
func (s *postRepoStub) SlugExists(ctx context.Context, slug string) (bool, error) {
	return s.slugExistsFn(ctx, slug)
}
func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) (bool, error) {
	return s.deleteFn(ctx, id)
}
func (s *postRepoStub) IncrementViews(ctx context.Context, id uint) error {
	return s.incrementViewsFn(ctx, id)
}
func (s *postRepoStub) IncrementLikes(ctx context.Context, id uint) error {
	return s.incrementLikesFn(ctx, id)
}
func (s *postRepoStub) AddTag(ctx context.Context, postID, tagID uint) error {
	return s.addTagFn(ctx, postID, tagID)
}
func (s *postRepoStub) Recent(ctx context.Context, limit int) ([]*models.Post, error) {
	return s.recentFn(ctx, limit)
}
func (s *postRepoStub) Count(ctx context.Context) (int64, error) {
	return s.countFn(ctx)
}
func (s *postRepoStub) StatsByAuthor(ctx context.Context, authorIDs []uint) (map[uint]repository.AuthorStats, error) {
	return s.statsByAuthorFn(ctx, authorIDs)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		listFn:      func(_ context.Context, _ repository.PostFilter) ([]*models.Post, error) { return nil, nil },
		getByIDFn:   func(_ context.Context, id uint) (*models.Post, error) { return &models.Post{ID: id}, nil },
		getBySlugFn: func(_ context.Context, _ string) (*models.Post, error) { return &models.Post{}, nil },
		getByIDsFn:  func(_ context.Context, _ []uint) ([]*models.Post, error) { return nil, nil },
		slugExistsFn: func(_ context.Context, _ string) (bool, error) {
			return false, nil
		},
		createFn:         func(_ context.Context, _ *models.Post) error { return nil },
		updateFn:         func(_ context.Context, _ *models.Post) error { return nil },
		deleteFn:         func(_ context.Context, _ uint) (bool, error) { return true, nil },
		incrementViewsFn: func(_ context.Context, _ uint) error { return nil },
		incrementLikesFn: func(_ context.Context, _ uint) error { return nil },
		addTagFn:         func(_ context.Context, _, _ uint) error { return nil },
		recentFn:         func(_ context.Context, _ int) ([]*models.Post, error) { return nil, nil },
		countFn:          func(_ context.Context) (int64, error) { return 0, nil },
		statsByAuthorFn: func(_ context.Context, _ []uint) (map[uint]repository.AuthorStats, error) {
			return map[uint]repository.AuthorStats{}, nil
		},
	}
}

// userRepoStub is a function-field stub for repository.UserRepository.
type userRepoStub struct {
	getByIDFn             func(context.Context, uint) (*models.User, error)
	getByUsernameFn       func(context.Context, string) (*models.User, error)
	getByEmailFn          func(context.Context, string) (*models.User, error)
	createFn              func(context.Context, *models.User) error
	updateFn              func(context.Context, *models.User) error
	listFn                func(context.Context, int, int) ([]*models.User, error)
	topByPostsCountFn     func(context.Context, int) ([]*models.User, error)
	incrementPostsCountFn func(context.Context, uint) error
	countFn               func(context.Context) (int64, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]*models.User, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *userRepoStub) TopByPostsCount(ctx context.Context, limit int) ([]*models.User, error) {
	return s.topByPostsCountFn(ctx, limit)
}
func (s *userRepoStub) IncrementPostsCount(ctx context.Context, id uint) error {
	return s.incrementPostsCountFn(ctx, id)
}
func (s *userRepoStub) Count(ctx context.Context) (int64, error) {
	return s.countFn(ctx)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:             func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id}, nil },
		getByUsernameFn:       func(_ context.Context, _ string) (*models.User, error) { return nil, errNotFound },
		getByEmailFn:          func(_ context.Context, _ string) (*models.User, error) { return nil, errNotFound },
		createFn:              func(_ context.Context, _ *models.User) error { return nil },
		updateFn:              func(_ context.Context, _ *models.User) error { return nil },
		listFn:                func(_ context.Context, _, _ int) ([]*models.User, error) { return nil, nil },
		topByPostsCountFn:     func(_ context.Context, _ int) ([]*models.User, error) { return nil, nil },
		incrementPostsCountFn: func(_ context.Context, _ uint) error { return nil },
		countFn:               func(_ context.Context) (int64, error) { return 0, nil },
	}
}

// commentRepoStub is a function-field stub for repository.CommentRepository.
type commentRepoStub struct {
	listByPostFn func(context.Context, uint) ([]*models.Comment, error)
	createFn     func(context.Context, *models.Comment) error
	deleteFn     func(context.Context, uint) (bool, error)
	recentFn     func(context.Context, int) ([]*models.Comment, error)
	countFn      func(context.Context) (int64, error)
}

func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.listByPostFn(ctx, postID)
}
func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) (bool, error) {
	return s.deleteFn(ctx, id)
}
func (s *commentRepoStub) Recent(ctx context.Context, limit int) ([]*models.Comment, error) {
	return s.recentFn(ctx, limit)
}
func (s *commentRepoStub) Count(ctx context.Context) (int64, error) {
	return s.countFn(ctx)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		listByPostFn: func(_ context.Context, _ uint) ([]*models.Comment, error) { return nil, nil },
		createFn:     func(_ context.Context, _ *models.Comment) error { return nil },
		deleteFn:     func(_ context.Context, _ uint) (bool, error) { return true, nil },
		recentFn:     func(_ context.Context, _ int) ([]*models.Comment, error) { return nil, nil },
		countFn:      func(_ context.Context) (int64, error) { return 0, nil },
	}
}

// assertValidationError asserts that err is an AppError with code VALIDATION_ERROR.
func assertValidationError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

// assertNotFoundError asserts that err is an AppError with code NOT_FOUND.
func assertNotFoundError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}
