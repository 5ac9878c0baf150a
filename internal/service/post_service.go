package service

import (
	"context"
	"errors"

	"ecoconnect/internal/cache"
	"ecoconnect/internal/middleware"
	"ecoconnect/internal/models"
	"ecoconnect/internal/repository"
	"ecoconnect/internal/validation"

	"gorm.io/gorm"
)

type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

type ListPostsInput struct {
	CategoryID *uint
	Search     string
	Featured   *bool
	Limit      int
	Offset     int
}

func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{postRepo: postRepo, userRepo: userRepo}
}

func (s *PostService) ListPosts(ctx context.Context, in ListPostsInput) ([]*models.Post, error) {
	return s.postRepo.List(ctx, repository.PostFilter{
		CategoryID: in.CategoryID,
		Search:     in.Search,
		Featured:   in.Featured,
		Limit:      in.Limit,
		Offset:     in.Offset,
	})
}

func (s *PostService) SearchPosts(ctx context.Context, query string, limit, offset int) ([]*models.Post, error) {
	if query == "" {
		return nil, models.NewValidationError("Search query is required")
	}
	return s.postRepo.List(ctx, repository.PostFilter{
		Search: query,
		Limit:  limit,
		Offset: offset,
	})
}

func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NewNotFoundError("Post not found")
	}
	return post, err
}

// GetPostBySlug serves the post detail through the cache. View counters
// inside a cached payload may lag by up to the TTL; the stored counter is
// still bumped on every read by the handler.
func (s *PostService) GetPostBySlug(ctx context.Context, slug string) (*models.Post, error) {
	var post models.Post
	err := cache.Aside(ctx, cache.PostSlugKey(slug), &post, cache.PostTTL, func() error {
		fetched, fetchErr := s.postRepo.GetBySlug(ctx, slug)
		if fetchErr != nil {
			return fetchErr
		}
		post = *fetched
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NewNotFoundError("Post not found")
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// CreatePost derives the slug from the title, deduplicating with a numeric
// suffix, fills in the estimated read time when none is given, and bumps the
// author's posts counter. Community aggregates are invalidated afterwards.
func (s *PostService) CreatePost(ctx context.Context, in validation.InsertPost) (*models.Post, error) {
	if fields := in.Validate(); len(fields) > 0 {
		return nil, models.NewValidationError("Invalid post data", fields...)
	}

	slug, err := uniqueSlug(ctx, Slugify(in.Title), s.postRepo.SlugExists)
	if err != nil {
		return nil, err
	}

	readTime := in.ReadTime
	if readTime <= 0 {
		readTime = EstimateReadTime(in.Content)
	}

	published := true
	if in.Published != nil {
		published = *in.Published
	}

	post := &models.Post{
		Title:      in.Title,
		Slug:       slug,
		Content:    in.Content,
		Excerpt:    in.Excerpt,
		CoverImage: in.CoverImage,
		CategoryID: in.CategoryID,
		AuthorID:   in.AuthorID,
		ReadTime:   readTime,
		Featured:   in.Featured,
		Published:  published,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	if in.AuthorID != nil {
		if err := s.userRepo.IncrementPostsCount(ctx, *in.AuthorID); err != nil {
			middleware.Logger.WarnContext(ctx, "failed to increment author posts count",
				"author_id", *in.AuthorID, "error", err)
		}
	}

	cache.InvalidateCommunity(ctx)

	return s.postRepo.GetByID(ctx, post.ID)
}

// UpdatePost applies the non-nil fields only. Changing the title does not
// rewrite the slug, existing links stay valid.
func (s *PostService) UpdatePost(ctx context.Context, id uint, in validation.UpdatePost) (*models.Post, error) {
	if fields := in.Validate(); len(fields) > 0 {
		return nil, models.NewValidationError("Invalid post data", fields...)
	}

	post, err := s.postRepo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NewNotFoundError("Post not found")
	}
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		post.Title = *in.Title
	}
	if in.Content != nil {
		post.Content = *in.Content
	}
	if in.Excerpt != nil {
		post.Excerpt = *in.Excerpt
	}
	if in.CoverImage != nil {
		post.CoverImage = *in.CoverImage
	}
	if in.CategoryID != nil {
		post.CategoryID = in.CategoryID
	}
	if in.ReadTime != nil {
		post.ReadTime = *in.ReadTime
	}
	if in.Featured != nil {
		post.Featured = *in.Featured
	}
	if in.Published != nil {
		post.Published = *in.Published
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	cache.Invalidate(ctx, cache.PostSlugKey(post.Slug))
	cache.InvalidateCommunity(ctx)

	return s.postRepo.GetByID(ctx, post.ID)
}

func (s *PostService) DeletePost(ctx context.Context, id uint) error {
	s.invalidateSlug(ctx, id)

	deleted, err := s.postRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return models.NewNotFoundError("Post not found")
	}
	cache.InvalidateCommunity(ctx)
	return nil
}

// invalidateSlug drops the by-slug cache entry for a post id. Best effort,
// lookup failures just leave the entry to expire.
func (s *PostService) invalidateSlug(ctx context.Context, id uint) {
	posts, err := s.postRepo.GetByIDs(ctx, []uint{id})
	if err == nil && len(posts) == 1 {
		cache.Invalidate(ctx, cache.PostSlugKey(posts[0].Slug))
	}
}

// RecordView counts a view. A missing post id is accepted silently so stale
// clients do not turn into error noise.
func (s *PostService) RecordView(ctx context.Context, id uint) error {
	if err := s.postRepo.IncrementViews(ctx, id); err != nil {
		return err
	}
	middleware.PostViews.Inc()
	return nil
}

// RecordLike counts a like with the same missing-id semantics as RecordView.
// Unlike views, a like also drops the cached detail so the new count is
// visible on the next read.
func (s *PostService) RecordLike(ctx context.Context, id uint) error {
	if err := s.postRepo.IncrementLikes(ctx, id); err != nil {
		return err
	}
	middleware.PostLikes.Inc()
	s.invalidateSlug(ctx, id)
	return nil
}

func (s *PostService) AddTag(ctx context.Context, postID, tagID uint) (*models.Post, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post not found")
		}
		return nil, err
	}
	if err := s.postRepo.AddTag(ctx, postID, tagID); err != nil {
		return nil, err
	}
	s.invalidateSlug(ctx, postID)
	return s.postRepo.GetByID(ctx, postID)
}
