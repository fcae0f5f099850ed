package domain

import (
	"time"

	"github.com/google/uuid"
)

// Article is the normalized view model assembled from the article row and
// its joined category/author references.
type Article struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Markdown  string    `json:"markdown"`
	Summary   string    `json:"summary,omitempty"`
	ReadTime  string    `json:"readTime,omitempty"`
	Category  *Category `json:"category,omitempty"`
	Author    *Author   `json:"author,omitempty"`
	IsDraft   bool      `json:"isDraft"`
	Likes     int       `json:"likes"`
	Dislikes  int       `json:"dislikes"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ArticleDraft is the payload for creating an article. ID, counters and
// timestamps are assigned by the store.
type ArticleDraft struct {
	Title      string
	Markdown   string
	Summary    string
	ReadTime   string
	CategoryID *int
	AuthorID   *int
	IsDraft    bool
}

// ArticlePatch is a partial update. Nil fields are left untouched; the
// double pointers distinguish "clear the reference" from "leave it".
type ArticlePatch struct {
	Title      *string
	Markdown   *string
	Summary    *string
	ReadTime   *string
	CategoryID **int
	AuthorID   **int
	IsDraft    *bool
}

// Empty reports whether the patch would touch no columns.
func (p ArticlePatch) Empty() bool {
	return p.Title == nil && p.Markdown == nil && p.Summary == nil &&
		p.ReadTime == nil && p.CategoryID == nil && p.AuthorID == nil &&
		p.IsDraft == nil
}
