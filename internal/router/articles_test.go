package router

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velikovic/inkwell/internal/apperr"
	"github.com/velikovic/inkwell/internal/domain"
	"github.com/velikovic/inkwell/pkg/pagination"
)

// stubArticleStore serves a fixed article set and counts calls.
type stubArticleStore struct {
	mu       sync.Mutex
	articles []domain.Article
	calls    int
}

func (s *stubArticleStore) touch() {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
}

func (s *stubArticleStore) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func (s *stubArticleStore) published() []domain.Article {
	out := []domain.Article{}
	for _, a := range s.articles {
		if !a.IsDraft {
			out = append(out, a)
		}
	}
	return out
}

func (s *stubArticleStore) List(ctx context.Context) ([]domain.Article, error) {
	s.touch()
	return s.published(), nil
}

func (s *stubArticleStore) ListAll(ctx context.Context) ([]domain.Article, error) {
	s.touch()
	return s.articles, nil
}

func (s *stubArticleStore) Get(ctx context.Context, id uuid.UUID) (*domain.Article, error) {
	s.touch()
	for i := range s.articles {
		if s.articles[i].ID == id {
			return &s.articles[i], nil
		}
	}
	return nil, apperr.NewNotFound("article", id.String())
}

func (s *stubArticleStore) MostPopular(ctx context.Context) ([]domain.Article, error) {
	s.touch()
	return s.published(), nil
}

func (s *stubArticleStore) MostRecent(ctx context.Context) ([]domain.Article, error) {
	s.touch()
	return s.published(), nil
}

func (s *stubArticleStore) Search(ctx context.Context, query string) ([]domain.Article, error) {
	s.touch()
	return s.articles, nil
}

func (s *stubArticleStore) Create(ctx context.Context, draft domain.ArticleDraft) (*domain.Article, error) {
	s.touch()
	a := domain.Article{
		ID:        uuid.New(),
		Title:     draft.Title,
		Markdown:  draft.Markdown,
		IsDraft:   draft.IsDraft,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	s.articles = append(s.articles, a)
	return &a, nil
}

func (s *stubArticleStore) Update(ctx context.Context, id uuid.UUID, patch domain.ArticlePatch) (*domain.Article, error) {
	s.touch()
	for i := range s.articles {
		if s.articles[i].ID == id {
			if patch.Title != nil {
				s.articles[i].Title = *patch.Title
			}
			s.articles[i].UpdatedAt = time.Now()
			return &s.articles[i], nil
		}
	}
	return nil, apperr.NewNotFound("article", id.String())
}

func (s *stubArticleStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.touch()
	for i := range s.articles {
		if s.articles[i].ID == id {
			s.articles = append(s.articles[:i], s.articles[i+1:]...)
			return nil
		}
	}
	return nil
}

func articleWithCategory(title string, categoryID int, draft bool) domain.Article {
	return domain.Article{
		ID:       uuid.New(),
		Title:    title,
		Markdown: "body",
		IsDraft:  draft,
		Category: &domain.Category{ID: categoryID, Name: fmt.Sprintf("cat-%d", categoryID)},
	}
}

func newPublicServer(store *stubArticleStore) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = apperr.GlobalErrorHandler()
	NewArticleRouter(e, store).Bind()
	return e
}

func doJSON(t *testing.T, e *echo.Echo, method, target string, out any) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if out != nil && rec.Code < 300 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
	}
	return rec
}

func TestPublicList_FilterAndPagination(t *testing.T) {
	store := &stubArticleStore{articles: []domain.Article{
		articleWithCategory("a1", 1, false),
		articleWithCategory("a2", 1, false),
		articleWithCategory("a3", 2, false),
		articleWithCategory("draft", 1, true),
	}}
	e := newPublicServer(store)

	t.Run("no filter returns all published", func(t *testing.T) {
		var res pagination.OffsetResult[domain.Article]
		rec := doJSON(t, e, http.MethodGet, "/api/articles", &res)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, int64(3), res.Total)
		for _, a := range res.Items {
			assert.False(t, a.IsDraft, "drafts must never reach the public listing")
		}
	})

	t.Run("category filter narrows the set", func(t *testing.T) {
		var res pagination.OffsetResult[domain.Article]
		doJSON(t, e, http.MethodGet, "/api/articles?categories=1", &res)

		assert.Equal(t, int64(2), res.Total)
		for _, a := range res.Items {
			assert.Equal(t, 1, a.Category.ID)
		}
	})

	t.Run("pagination slices the filtered set", func(t *testing.T) {
		var res pagination.OffsetResult[domain.Article]
		doJSON(t, e, http.MethodGet, "/api/articles?page=2&size=2", &res)

		assert.Equal(t, int64(3), res.Total)
		assert.Len(t, res.Items, 1)
	})

	t.Run("out of range page yields empty items", func(t *testing.T) {
		var res pagination.OffsetResult[domain.Article]
		rec := doJSON(t, e, http.MethodGet, "/api/articles?page=50&size=10", &res)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, res.Items)
	})
}

func TestPublicGet_MalformedIDShortCircuits(t *testing.T) {
	store := &stubArticleStore{}
	e := newPublicServer(store)

	rec := doJSON(t, e, http.MethodGet, "/api/articles/not-a-uuid", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, 0, store.callCount(), "a malformed identifier must never reach the data layer")
}

func TestPublicGet_UnknownIDIsNotFound(t *testing.T) {
	store := &stubArticleStore{}
	e := newPublicServer(store)

	rec := doJSON(t, e, http.MethodGet, "/api/articles/"+uuid.NewString(), nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, 1, store.callCount())
}

func TestPublicGet_DraftIsHidden(t *testing.T) {
	draft := articleWithCategory("draft", 1, true)
	store := &stubArticleStore{articles: []domain.Article{draft}}
	e := newPublicServer(store)

	rec := doJSON(t, e, http.MethodGet, "/api/articles/"+draft.ID.String(), nil)

	assert.Equal(t, http.StatusNotFound, rec.Code, "drafts are invisible on the public surface")
}

func TestPublicGet_ReturnsJoinedArticle(t *testing.T) {
	article := articleWithCategory("visible", 7, false)
	store := &stubArticleStore{articles: []domain.Article{article}}
	e := newPublicServer(store)

	var got domain.Article
	rec := doJSON(t, e, http.MethodGet, "/api/articles/"+article.ID.String(), &got)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, article.ID, got.ID)
	require.NotNil(t, got.Category)
	assert.Equal(t, 7, got.Category.ID)
}
