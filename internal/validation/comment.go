package validation

import "ecoconnect/internal/models"

// InsertComment is the payload accepted when creating a comment. Likes and
// createdAt are server-assigned.
type InsertComment struct {
	Content  string `json:"content"`
	PostID   uint   `json:"postId"`
	AuthorID *uint  `json:"authorId"`
	ParentID *uint  `json:"parentId"`
}

// Validate returns itemized field errors; an empty slice means the payload is valid.
func (r *InsertComment) Validate() []models.FieldError {
	var errs []models.FieldError

	errs = required("content", r.Content, errs)
	if r.PostID == 0 {
		errs = append(errs, models.FieldError{Field: "postId", Message: "postId is required"})
	}

	return errs
}
