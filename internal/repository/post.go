package repository

import (
	"context"
	"strings"

	"ecoconnect/internal/models"

	"gorm.io/gorm"
)

// PostFilter narrows the post listing. Nil pointer fields mean "no filter";
// Featured in particular only applies when explicitly set, so the default
// listing includes featured and regular posts alike.
type PostFilter struct {
	CategoryID *uint
	Search     string
	Featured   *bool
	Limit      int
	Offset     int
}

// AuthorStats aggregates likes and views over one author's posts.
type AuthorStats struct {
	AuthorID   uint
	TotalLikes int
	TotalViews int
}

// PostRepository defines the interface for post data operations
type PostRepository interface {
	List(ctx context.Context, filter PostFilter) ([]*models.Post, error)
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	GetBySlug(ctx context.Context, slug string) (*models.Post, error)
	GetByIDs(ctx context.Context, ids []uint) ([]*models.Post, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	Create(ctx context.Context, post *models.Post) error
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uint) (bool, error)
	IncrementViews(ctx context.Context, id uint) error
	IncrementLikes(ctx context.Context, id uint) error
	AddTag(ctx context.Context, postID, tagID uint) error
	Recent(ctx context.Context, limit int) ([]*models.Post, error)
	Count(ctx context.Context) (int64, error)
	StatsByAuthor(ctx context.Context, authorIDs []uint) (map[uint]AuthorStats, error)
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// withDetails preloads the relations that make up PostWithDetails. Weak
// references that do not resolve leave Author/Category nil.
func (r *postRepository) withDetails(db *gorm.DB) *gorm.DB {
	return db.Preload("Author").Preload("Category").Preload("Tags")
}

func (r *postRepository) List(ctx context.Context, filter PostFilter) ([]*models.Post, error) {
	q := r.db.WithContext(ctx).Where("published = ?", true)

	if filter.CategoryID != nil {
		q = q.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Featured != nil {
		q = q.Where("featured = ?", *filter.Featured)
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		q = q.Where(
			"LOWER(title) LIKE ? OR LOWER(content) LIKE ? OR LOWER(excerpt) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	q = q.Order("created_at DESC").Offset(filter.Offset)
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var posts []*models.Post
	if err := r.withDetails(q).Find(&posts).Error; err != nil {
		return nil, err
	}
	if err := r.attachCommentCounts(ctx, posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := r.withDetails(r.db.WithContext(ctx)).First(&post, id).Error; err != nil {
		return nil, err
	}
	if err := r.attachCommentCounts(ctx, []*models.Post{&post}); err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	var post models.Post
	err := r.withDetails(r.db.WithContext(ctx)).
		Where("slug = ?", slug).
		First(&post).Error
	if err != nil {
		return nil, err
	}
	if err := r.attachCommentCounts(ctx, []*models.Post{&post}); err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) GetByIDs(ctx context.Context, ids []uint) ([]*models.Post, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var posts []*models.Post
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&posts).Error
	return posts, err
}

func (r *postRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("slug = ?", slug).
		Count(&count).Error
	return count > 0, err
}

// attachCommentCounts fills CommentsCount with one grouped query for the
// whole page. Counts are always recomputed on read, never cached on the row.
func (r *postRepository) attachCommentCounts(ctx context.Context, posts []*models.Post) error {
	if len(posts) == 0 {
		return nil
	}

	ids := make([]uint, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}

	type row struct {
		PostID uint
		Total  int
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Select("post_id, COUNT(*) AS total").
		Where("post_id IN ?", ids).
		Group("post_id").
		Scan(&rows).Error
	if err != nil {
		return err
	}

	counts := make(map[uint]int, len(rows))
	for _, row := range rows {
		counts[row.PostID] = row.Total
	}
	for _, p := range posts {
		p.CommentsCount = counts[p.ID]
	}
	return nil
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Save(post).Error
}

func (r *postRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&models.Post{}, id)
	return res.RowsAffected > 0, res.Error
}

// IncrementViews adds one view. UpdateColumn skips the updated_at hook and a
// missing id is a no-op rather than an error.
func (r *postRepository) IncrementViews(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
}

// IncrementLikes adds one like. Same no-op semantics as IncrementViews.
func (r *postRepository) IncrementLikes(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ?", id).
		UpdateColumn("likes", gorm.Expr("likes + ?", 1)).Error
}

// AddTag links a tag to a post. Appending an existing association is a no-op.
func (r *postRepository) AddTag(ctx context.Context, postID, tagID uint) error {
	post := models.Post{ID: postID}
	tag := models.Tag{ID: tagID}
	return r.db.WithContext(ctx).Model(&post).Association("Tags").Append(&tag)
}

func (r *postRepository) Recent(ctx context.Context, limit int) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.WithContext(ctx).
		Preload("Author").
		Order("created_at DESC").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Post{}).Count(&count).Error
	return count, err
}

// StatsByAuthor sums likes and views per author in a single grouped query.
func (r *postRepository) StatsByAuthor(ctx context.Context, authorIDs []uint) (map[uint]AuthorStats, error) {
	stats := make(map[uint]AuthorStats, len(authorIDs))
	if len(authorIDs) == 0 {
		return stats, nil
	}

	var rows []AuthorStats
	err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Select("author_id, COALESCE(SUM(likes), 0) AS total_likes, COALESCE(SUM(views), 0) AS total_views").
		Where("author_id IN ?", authorIDs).
		Group("author_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		stats[row.AuthorID] = row
	}
	return stats, nil
}
