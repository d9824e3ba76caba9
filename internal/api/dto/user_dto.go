package dto

import (
	"strings"

	"github.com/spec-kit/laundry-service/internal/validation"
)

// RegisterRequest payload for new users.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
}

// Validate trims username and email, then checks field shapes.
func (r *RegisterRequest) Validate() validation.Errors {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.TrimSpace(r.Email)

	errs := validation.Errors{}
	errs.Required("username", r.Username)
	errs.MinLen("username", r.Username, 3)
	errs.Required("email", r.Email)
	errs.Email("email", r.Email)
	errs.Required("password", r.Password)
	errs.MinLen("password", r.Password, 6)
	return errs
}

// LoginRequest payload for login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
