package models

import "time"

// Comment represents a comment on a post. ParentID enables reply threads;
// AuthorID is a weak reference and the preloaded Author may be nil.
type Comment struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Content  string `gorm:"type:text;not null" json:"content"`
	PostID   uint   `gorm:"not null;index" json:"postId"`
	AuthorID *uint  `gorm:"index" json:"authorId"`
	Author   *User  `gorm:"foreignKey:AuthorID" json:"author"`
	ParentID *uint  `json:"parentId"`
	Likes    int    `gorm:"not null;default:0" json:"likes"`

	CreatedAt time.Time `json:"createdAt"`
}
