package pg

import (
	"fmt"

	"github.com/velikovic/inkwell/internal/domain"
)

// articleColumns is the projection every article read shares, joined
// row shape included. Keep it in sync with mapArticle.
const articleColumns = `
	a.id, a.title, a.markdown, a.summary, a.read_time,
	a.is_draft, a.likes, a.dislikes, a.created_at, a.updated_at,
	c.id, c.name, c.color,
	au.id, au.name, au.position, au.photo_url, au.linked_in`

const articleFrom = `
	FROM articles a
	LEFT JOIN categories c ON c.id = a.category_id
	LEFT JOIN authors au ON au.id = a.author_id`

type rowScanner interface {
	Scan(dest ...any) error
}

// mapArticle is the single mapping point between the joined row shape and
// the normalized view model.
func mapArticle(row rowScanner) (*domain.Article, error) {
	var (
		article    domain.Article
		catID      *int
		catName    *string
		catColor   *string
		authorID   *int
		authorName *string
		position   *string
		photoURL   *string
		linkedIn   *string
	)

	if err := row.Scan(
		&article.ID,
		&article.Title,
		&article.Markdown,
		&article.Summary,
		&article.ReadTime,
		&article.IsDraft,
		&article.Likes,
		&article.Dislikes,
		&article.CreatedAt,
		&article.UpdatedAt,
		&catID,
		&catName,
		&catColor,
		&authorID,
		&authorName,
		&position,
		&photoURL,
		&linkedIn,
	); err != nil {
		return nil, fmt.Errorf("failed to scan article: %w", err)
	}

	if catID != nil {
		article.Category = &domain.Category{
			ID:    *catID,
			Name:  deref(catName),
			Color: deref(catColor),
		}
	}
	if authorID != nil {
		article.Author = &domain.Author{
			ID:       *authorID,
			Name:     deref(authorName),
			Position: deref(position),
			PhotoURL: deref(photoURL),
			LinkedIn: deref(linkedIn),
		}
	}

	return &article, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
