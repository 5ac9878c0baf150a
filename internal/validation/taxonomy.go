package validation

import "ecoconnect/internal/models"

// InsertCategory is the payload accepted when creating a category.
type InsertCategory struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

// Validate returns itemized field errors; an empty slice means the payload is valid.
func (r *InsertCategory) Validate() []models.FieldError {
	var errs []models.FieldError

	errs = required("name", r.Name, errs)
	errs = required("slug", r.Slug, errs)
	errs = required("color", r.Color, errs)

	if r.Slug != "" {
		if err := ValidateSlug(r.Slug); err != nil {
			errs = append(errs, models.FieldError{Field: "slug", Message: err.Error()})
		}
	}

	return errs
}

// InsertTag is the payload accepted when creating a tag. Color falls back to
// the model default when omitted.
type InsertTag struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Color string `json:"color"`
}

// Validate returns itemized field errors; an empty slice means the payload is valid.
func (r *InsertTag) Validate() []models.FieldError {
	var errs []models.FieldError

	errs = required("name", r.Name, errs)
	errs = required("slug", r.Slug, errs)

	if r.Slug != "" {
		if err := ValidateSlug(r.Slug); err != nil {
			errs = append(errs, models.FieldError{Field: "slug", Message: err.Error()})
		}
	}

	return errs
}
