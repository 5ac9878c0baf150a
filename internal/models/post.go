package models

import "time"

// Post represents a blog post in the EcoConnect application.
//
// CategoryID and AuthorID are weak references: they are indexed integer
// columns without a database-level foreign key constraint, so they may
// dangle. When a reference does not resolve, the preloaded Author/Category
// stays nil and serializes as JSON null.
type Post struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Title      string    `gorm:"not null" json:"title"`
	Slug       string    `gorm:"uniqueIndex;not null" json:"slug"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	Excerpt    string    `gorm:"type:text;not null" json:"excerpt"`
	CoverImage string    `json:"coverImage"`
	CategoryID *uint     `gorm:"index" json:"categoryId"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"category"`
	AuthorID   *uint     `gorm:"index" json:"authorId"`
	Author     *User     `gorm:"foreignKey:AuthorID" json:"author"`
	ReadTime   int       `gorm:"default:5" json:"readTime"`
	Likes      int       `gorm:"not null;default:0" json:"likes"`
	Views      int       `gorm:"not null;default:0" json:"views"`
	Featured   bool      `gorm:"not null;default:false" json:"featured"`
	Published  bool      `gorm:"not null;default:true" json:"published"`
	Tags       []Tag     `gorm:"many2many:post_tags" json:"tags"`
	// CommentsCount is not persisted; computed at query time by a subquery select.
	CommentsCount int       `gorm:"->" json:"commentsCount"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
