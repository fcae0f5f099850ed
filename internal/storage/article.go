package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/velikovic/inkwell/internal/domain"
)

// TopArticlesLimit bounds the most-popular / most-recent reads.
const TopArticlesLimit = 5

// ArticleStore is the access surface over the article table. Read failures
// propagate as *apperr.StorageError; a missing row is *apperr.NotFoundError.
// An empty list is a valid result, never an error.
type ArticleStore interface {
	// List returns every non-draft article, created_at descending.
	List(ctx context.Context) ([]domain.Article, error)
	// ListAll returns every article including drafts, created_at descending.
	// Admin surface only.
	ListAll(ctx context.Context) ([]domain.Article, error)
	// Get fetches one article with its joined category and author.
	Get(ctx context.Context, id uuid.UUID) (*domain.Article, error)
	// MostPopular returns up to TopArticlesLimit non-draft articles by likes descending.
	MostPopular(ctx context.Context) ([]domain.Article, error)
	// MostRecent returns up to TopArticlesLimit non-draft articles by created_at descending.
	MostRecent(ctx context.Context) ([]domain.Article, error)
	// Search runs a full-text query over title, summary and markdown.
	// Drafts are included; it serves the admin surface.
	Search(ctx context.Context, query string) ([]domain.Article, error)

	// Create inserts the draft with a generated id, zeroed counters and
	// createdAt = updatedAt = now, returning the stored article.
	Create(ctx context.Context, draft domain.ArticleDraft) (*domain.Article, error)
	// Update applies the patch and stamps updated_at regardless of the
	// patch contents. Not-found when the id does not exist.
	Update(ctx context.Context, id uuid.UUID, patch domain.ArticlePatch) (*domain.Article, error)
	// Delete removes the row. Deleting a nonexistent id is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}
