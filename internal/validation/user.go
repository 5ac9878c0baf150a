package validation

import "ecoconnect/internal/models"

// InsertUser is the payload accepted when registering a user. Counter and
// timestamp fields are server-assigned and cannot be supplied.
type InsertUser struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar"`
	Bio      string `json:"bio"`
	Title    string `json:"title"`
}

// Validate returns itemized field errors; an empty slice means the payload is valid.
func (r *InsertUser) Validate() []models.FieldError {
	var errs []models.FieldError

	errs = required("username", r.Username, errs)
	errs = required("email", r.Email, errs)

	if r.Username != "" && !usernameRegex.MatchString(r.Username) {
		errs = append(errs, models.FieldError{
			Field:   "username",
			Message: "username must be 3-32 characters of letters, numbers, or underscores",
		})
	}
	if r.Email != "" && !emailRegex.MatchString(r.Email) {
		errs = append(errs, models.FieldError{Field: "email", Message: "email is not a valid address"})
	}

	return errs
}
