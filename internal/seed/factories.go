package seed

import (
	"fmt"
	"math/rand"
	"time"

	"ecoconnect/internal/models"
	"ecoconnect/internal/service"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by seed presets and tests.
type Factory struct {
	db *gorm.DB
	r  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	// #nosec G404: acceptable for seeding
	return &Factory{db: db, r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// CreateUser constructs and persists a sample user. Optional override
// functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Username: gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:    gofakeit.Email(),
		Avatar:   gofakeit.LetterN(2),
		Bio:      gofakeit.Sentence(10),
		Title:    gofakeit.JobTitle(),
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateCategory constructs and persists a sample category.
func (f *Factory) CreateCategory(overrides ...func(*models.Category)) (*models.Category, error) {
	name := gofakeit.BuzzWord() + " " + gofakeit.NounAbstract()
	category := &models.Category{
		Name:        name,
		Slug:        service.Slugify(name),
		Color:       gofakeit.SafeColor(),
		Description: gofakeit.Sentence(8),
	}

	for _, override := range overrides {
		override(category)
	}

	if err := f.db.Create(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

// CreateTag constructs and persists a sample tag.
func (f *Factory) CreateTag(overrides ...func(*models.Tag)) (*models.Tag, error) {
	name := gofakeit.BuzzWord()
	tag := &models.Tag{
		Name:  name,
		Slug:  service.Slugify(name) + fmt.Sprintf("-%d", gofakeit.Number(100, 999)),
		Color: gofakeit.SafeColor(),
	}

	for _, override := range overrides {
		override(tag)
	}

	if err := f.db.Create(tag).Error; err != nil {
		return nil, err
	}
	return tag, nil
}

// CreatePost constructs and persists a sample published post for the given
// author, with a slug derived from the generated title and a created_at
// spread over the past 90 days.
func (f *Factory) CreatePost(author *models.User, overrides ...func(*models.Post)) (*models.Post, error) {
	title := gofakeit.Sentence(5)
	content := gofakeit.Paragraph(2, 4, 8, "\n")
	post := &models.Post{
		Title:      title,
		Slug:       service.Slugify(title) + fmt.Sprintf("-%d", gofakeit.Number(1000, 9999)),
		Content:    content,
		Excerpt:    gofakeit.Sentence(12),
		CoverImage: fmt.Sprintf("https://picsum.photos/seed/%s/800/450", gofakeit.UUID()),
		ReadTime:   service.EstimateReadTime(content),
		Likes:      f.r.Intn(250),
		Views:      f.r.Intn(2000),
		Published:  true,
	}
	if author != nil {
		post.AuthorID = &author.ID
	}

	daysBack := f.r.Intn(90)
	hoursBack := f.r.Intn(24)
	post.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour)

	for _, override := range overrides {
		override(post)
	}

	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreateComment constructs and persists a sample comment on the provided
// post authored by the provided user.
func (f *Factory) CreateComment(author *models.User, post *models.Post, overrides ...func(*models.Comment)) (*models.Comment, error) {
	comment := &models.Comment{
		Content: gofakeit.Sentence(8),
		PostID:  post.ID,
	}
	if author != nil {
		comment.AuthorID = &author.ID
	}

	for _, override := range overrides {
		override(comment)
	}

	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}
