package models

// Category is static reference data grouping posts by topic.
type Category struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"unique;not null" json:"name"`
	Slug        string `gorm:"unique;not null" json:"slug"`
	Color       string `gorm:"not null" json:"color"`
	Description string `json:"description"`
}
