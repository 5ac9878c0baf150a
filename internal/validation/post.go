package validation

import "ecoconnect/internal/models"

// InsertPost is the payload accepted when creating a post. Slug, likes,
// views and timestamps are server-assigned and cannot be supplied.
type InsertPost struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	Excerpt    string `json:"excerpt"`
	CoverImage string `json:"coverImage"`
	CategoryID *uint  `json:"categoryId"`
	AuthorID   *uint  `json:"authorId"`
	ReadTime   int    `json:"readTime"`
	Featured   bool   `json:"featured"`
	Published  *bool  `json:"published"`
}

// Validate returns itemized field errors; an empty slice means the payload is valid.
func (r *InsertPost) Validate() []models.FieldError {
	var errs []models.FieldError

	errs = required("title", r.Title, errs)
	errs = required("content", r.Content, errs)
	errs = required("excerpt", r.Excerpt, errs)

	if r.ReadTime < 0 {
		errs = append(errs, models.FieldError{Field: "readTime", Message: "readTime must not be negative"})
	}

	return errs
}

// UpdatePost is the partial payload accepted when editing a post. Nil fields
// are left untouched.
type UpdatePost struct {
	Title      *string `json:"title"`
	Content    *string `json:"content"`
	Excerpt    *string `json:"excerpt"`
	CoverImage *string `json:"coverImage"`
	CategoryID *uint   `json:"categoryId"`
	ReadTime   *int    `json:"readTime"`
	Featured   *bool   `json:"featured"`
	Published  *bool   `json:"published"`
}

// Validate returns itemized field errors; an empty slice means the payload is valid.
func (r *UpdatePost) Validate() []models.FieldError {
	var errs []models.FieldError

	if r.Title != nil {
		errs = required("title", *r.Title, errs)
	}
	if r.Content != nil {
		errs = required("content", *r.Content, errs)
	}
	if r.ReadTime != nil && *r.ReadTime < 0 {
		errs = append(errs, models.FieldError{Field: "readTime", Message: "readTime must not be negative"})
	}

	return errs
}
