// Package cached wraps the storage interfaces in read-through caching
// decorators. Reads are served from a TTL cache while fresh, concurrent
// misses collapse into one upstream call, and every successful mutation
// drops the query keys its entity could appear under. Write operations
// always pass straight through.
package cached

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/velikovic/inkwell/internal/apperr"
	"github.com/velikovic/inkwell/internal/domain"
	"github.com/velikovic/inkwell/internal/storage"
	"github.com/velikovic/inkwell/pkg/ttlcache"
)

type ArticleStore struct {
	base  storage.ArticleStore
	cache *ttlcache.Cache[any]
	group *singleflight.Group
}

func NewArticleStore(base storage.ArticleStore, cache *ttlcache.Cache[any]) *ArticleStore {
	return &ArticleStore{
		base:  base,
		cache: cache,
		group: &singleflight.Group{},
	}
}

var _ storage.ArticleStore = (*ArticleStore)(nil)

func (s *ArticleStore) List(ctx context.Context) ([]domain.Article, error) {
	return readThrough(s.cache, s.group, KeyArticles, ListTTL, func() ([]domain.Article, error) {
		return s.base.List(ctx)
	})
}

func (s *ArticleStore) ListAll(ctx context.Context) ([]domain.Article, error) {
	return readThrough(s.cache, s.group, KeyAllArticles, ListTTL, func() ([]domain.Article, error) {
		return s.base.ListAll(ctx)
	})
}

func (s *ArticleStore) Get(ctx context.Context, id uuid.UUID) (*domain.Article, error) {
	return readThrough(s.cache, s.group, KeyArticle(id), ArticleTTL, func() (*domain.Article, error) {
		return s.base.Get(ctx, id)
	})
}

func (s *ArticleStore) MostPopular(ctx context.Context) ([]domain.Article, error) {
	return readThrough(s.cache, s.group, KeyMostPopular, AggregateTTL, func() ([]domain.Article, error) {
		return s.base.MostPopular(ctx)
	})
}

func (s *ArticleStore) MostRecent(ctx context.Context) ([]domain.Article, error) {
	return readThrough(s.cache, s.group, KeyMostRecent, AggregateTTL, func() ([]domain.Article, error) {
		return s.base.MostRecent(ctx)
	})
}

func (s *ArticleStore) Search(ctx context.Context, query string) ([]domain.Article, error) {
	return readThrough(s.cache, s.group, KeySearch+query, SearchTTL, func() ([]domain.Article, error) {
		return s.base.Search(ctx, query)
	})
}

func (s *ArticleStore) Create(ctx context.Context, draft domain.ArticleDraft) (*domain.Article, error) {
	article, err := s.base.Create(ctx, draft)
	if err != nil {
		return nil, err
	}
	Invalidate(s.cache, ArticleCreate)
	return article, nil
}

func (s *ArticleStore) Update(ctx context.Context, id uuid.UUID, patch domain.ArticlePatch) (*domain.Article, error) {
	article, err := s.base.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	Invalidate(s.cache, ArticleUpdate)
	return article, nil
}

func (s *ArticleStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.base.Delete(ctx, id); err != nil {
		return err
	}
	Invalidate(s.cache, ArticleDelete)
	return nil
}

// readThrough serves the key from cache while fresh, otherwise fetches
// through singleflight so concurrent misses share one upstream call.
// Only successful results are cached; not-found is never memoized.
func readThrough[T any](cache *ttlcache.Cache[any], group *singleflight.Group, key string, ttl time.Duration, fetch func() (T, error)) (T, error) {
	if v, ok := cache.Get(key); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}

	v, err, _ := group.Do(key, func() (any, error) {
		result, err := fetchWithRetry(fetch)
		if err != nil {
			return nil, err
		}
		cache.Set(key, result, ttl)
		return result, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}

	return v.(T), nil
}

// fetchWithRetry retries a read once on a transport/query failure.
// Not-found is definitive and never retried; mutations never pass
// through here.
func fetchWithRetry[T any](fetch func() (T, error)) (T, error) {
	v, err := fetch()
	if err == nil {
		return v, nil
	}

	var se *apperr.StorageError
	if errors.As(err, &se) {
		return fetch()
	}
	return v, err
}
