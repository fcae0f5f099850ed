package dto

import (
	"strings"

	"github.com/velikovic/inkwell/internal/apperr"
	"github.com/velikovic/inkwell/internal/domain"
)

type CategoryRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

func (r *CategoryRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return apperr.NewValidation("category name is required")
	}
	return nil
}

type AuthorRequest struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	PhotoURL string `json:"photoUrl"`
	LinkedIn string `json:"linkedIn"`
}

func (r *AuthorRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return apperr.NewValidation("author name is required")
	}
	return nil
}

func (r *AuthorRequest) ToAuthor() domain.Author {
	return domain.Author{
		Name:     r.Name,
		Position: r.Position,
		PhotoURL: r.PhotoURL,
		LinkedIn: r.LinkedIn,
	}
}

type TagRequest struct {
	Name string `json:"name"`
}

func (r *TagRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return apperr.NewValidation("tag name is required")
	}
	return nil
}
