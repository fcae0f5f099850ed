package dto

import (
	"strings"

	"github.com/velikovic/inkwell/internal/apperr"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return apperr.NewValidation("email is required")
	}
	if r.Password == "" {
		return apperr.NewValidation("password is required")
	}
	return nil
}

type LoginResponse struct {
	Token string `json:"token"`
}

type SessionResponse struct {
	Authenticated bool   `json:"authenticated"`
	Email         string `json:"email,omitempty"`
}
