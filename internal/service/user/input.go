package user

import (
	"net/mail"
	"unicode/utf8"

	"github.com/amteixeira/uvtrack-backend/internal/domain"
)

// RegisterInput holds the parameters for creating an account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// Validate checks all fields and collects all errors.
func (i *RegisterInput) Validate() error {
	var errs []domain.FieldError

	if n := utf8.RuneCountInString(i.Username); n < 3 || n > 64 {
		errs = append(errs, domain.FieldError{Field: "username", Message: "must be 3-64 characters"})
	}
	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if _, err := mail.ParseAddress(i.Email); err != nil {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email address"})
	}
	if n := len(i.Password); n < 8 || n > 72 {
		// bcrypt truncates past 72 bytes, so longer is rejected, not silently cut.
		errs = append(errs, domain.FieldError{Field: "password", Message: "must be 8-72 characters"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// LoginInput holds the credentials for password login.
type LoginInput struct {
	Email    string
	Password string
}

// Validate checks all fields and collects all errors.
func (i *LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateProfileInput holds the editable profile fields; nil means unchanged.
type UpdateProfileInput struct {
	Username *string
	AboutMe  *string
}

// Validate checks all fields and collects all errors.
func (i *UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.Username != nil {
		if n := utf8.RuneCountInString(*i.Username); n < 3 || n > 64 {
			errs = append(errs, domain.FieldError{Field: "username", Message: "must be 3-64 characters"})
		}
	}
	if i.AboutMe != nil && utf8.RuneCountInString(*i.AboutMe) > 500 {
		errs = append(errs, domain.FieldError{Field: "about_me", Message: "max 500 characters"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
