package models

// Tag labels posts across categories, linked many-to-many via post_tags.
type Tag struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"unique;not null" json:"name"`
	Slug  string `gorm:"unique;not null" json:"slug"`
	Color string `gorm:"default:gray" json:"color"`
}
