package service

import (
	"context"
	"errors"

	"ecoconnect/internal/cache"
	"ecoconnect/internal/models"
	"ecoconnect/internal/repository"
	"ecoconnect/internal/validation"

	"gorm.io/gorm"
)

type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo, postRepo: postRepo}
}

func (s *CommentService) ListComments(ctx context.Context, postID uint) ([]*models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post not found")
		}
		return nil, err
	}
	return s.commentRepo.ListByPost(ctx, postID)
}

func (s *CommentService) CreateComment(ctx context.Context, in validation.InsertComment) (*models.Comment, error) {
	if fields := in.Validate(); len(fields) > 0 {
		return nil, models.NewValidationError("Invalid comment data", fields...)
	}

	if _, err := s.postRepo.GetByID(ctx, in.PostID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post not found")
		}
		return nil, err
	}

	comment := &models.Comment{
		Content:  in.Content,
		PostID:   in.PostID,
		AuthorID: in.AuthorID,
		ParentID: in.ParentID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	cache.InvalidateCommunity(ctx)

	// Re-read so the response carries the resolved author, matching what a
	// later list call would return.
	comments, err := s.commentRepo.ListByPost(ctx, in.PostID)
	if err != nil {
		return comment, nil
	}
	for _, c := range comments {
		if c.ID == comment.ID {
			return c, nil
		}
	}
	return comment, nil
}

func (s *CommentService) DeleteComment(ctx context.Context, id uint) error {
	deleted, err := s.commentRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return models.NewNotFoundError("Comment not found")
	}
	cache.InvalidateCommunity(ctx)
	return nil
}
