package dto

import (
	"strings"

	"github.com/velikovic/inkwell/internal/apperr"
	"github.com/velikovic/inkwell/internal/domain"
)

type CreateArticleRequest struct {
	Title      string `json:"title"`
	Markdown   string `json:"markdown"`
	Summary    string `json:"summary"`
	ReadTime   string `json:"readTime"`
	CategoryID *int   `json:"categoryId"`
	AuthorID   *int   `json:"authorId"`
	IsDraft    bool   `json:"isDraft"`
}

// Validate catches missing required fields before any remote call.
func (r *CreateArticleRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return apperr.NewValidation("title is required")
	}
	if strings.TrimSpace(r.Markdown) == "" {
		return apperr.NewValidation("markdown is required")
	}
	return nil
}

func (r *CreateArticleRequest) ToDraft() domain.ArticleDraft {
	return domain.ArticleDraft{
		Title:      r.Title,
		Markdown:   r.Markdown,
		Summary:    r.Summary,
		ReadTime:   r.ReadTime,
		CategoryID: r.CategoryID,
		AuthorID:   r.AuthorID,
		IsDraft:    r.IsDraft,
	}
}

type UpdateArticleRequest struct {
	Title      *string     `json:"title"`
	Markdown   *string     `json:"markdown"`
	Summary    *string     `json:"summary"`
	ReadTime   *string     `json:"readTime"`
	CategoryID OptionalInt `json:"categoryId"`
	AuthorID   OptionalInt `json:"authorId"`
	IsDraft    *bool       `json:"isDraft"`
}

// Validate rejects updates that would blank a required field.
func (r *UpdateArticleRequest) Validate() error {
	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		return apperr.NewValidation("title must not be empty")
	}
	if r.Markdown != nil && strings.TrimSpace(*r.Markdown) == "" {
		return apperr.NewValidation("markdown must not be empty")
	}
	return nil
}

func (r *UpdateArticleRequest) ToPatch() domain.ArticlePatch {
	patch := domain.ArticlePatch{
		Title:    r.Title,
		Markdown: r.Markdown,
		Summary:  r.Summary,
		ReadTime: r.ReadTime,
		IsDraft:  r.IsDraft,
	}
	if r.CategoryID.Set {
		patch.CategoryID = &r.CategoryID.Value
	}
	if r.AuthorID.Set {
		patch.AuthorID = &r.AuthorID.Value
	}
	return patch
}
