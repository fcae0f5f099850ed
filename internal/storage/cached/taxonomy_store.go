package cached

import (
	"context"

	"golang.org/x/sync/singleflight"

	"github.com/velikovic/inkwell/internal/domain"
	"github.com/velikovic/inkwell/internal/storage"
	"github.com/velikovic/inkwell/pkg/ttlcache"
)

type CategoryStore struct {
	base  storage.CategoryStore
	cache *ttlcache.Cache[any]
	group *singleflight.Group
}

func NewCategoryStore(base storage.CategoryStore, cache *ttlcache.Cache[any]) *CategoryStore {
	return &CategoryStore{base: base, cache: cache, group: &singleflight.Group{}}
}

var _ storage.CategoryStore = (*CategoryStore)(nil)

func (s *CategoryStore) List(ctx context.Context) ([]domain.Category, error) {
	return readThrough(s.cache, s.group, KeyCategories, TaxonomyTTL, func() ([]domain.Category, error) {
		return s.base.List(ctx)
	})
}

func (s *CategoryStore) Create(ctx context.Context, name, color string) (*domain.Category, error) {
	c, err := s.base.Create(ctx, name, color)
	if err != nil {
		return nil, err
	}
	Invalidate(s.cache, CategoryWrite)
	return c, nil
}

func (s *CategoryStore) Update(ctx context.Context, id int, name, color string) (*domain.Category, error) {
	c, err := s.base.Update(ctx, id, name, color)
	if err != nil {
		return nil, err
	}
	Invalidate(s.cache, CategoryWrite)
	return c, nil
}

func (s *CategoryStore) Delete(ctx context.Context, id int) error {
	if err := s.base.Delete(ctx, id); err != nil {
		return err
	}
	Invalidate(s.cache, CategoryWrite)
	return nil
}

type AuthorStore struct {
	base  storage.AuthorStore
	cache *ttlcache.Cache[any]
	group *singleflight.Group
}

func NewAuthorStore(base storage.AuthorStore, cache *ttlcache.Cache[any]) *AuthorStore {
	return &AuthorStore{base: base, cache: cache, group: &singleflight.Group{}}
}

var _ storage.AuthorStore = (*AuthorStore)(nil)

func (s *AuthorStore) List(ctx context.Context) ([]domain.Author, error) {
	return readThrough(s.cache, s.group, KeyAuthors, TaxonomyTTL, func() ([]domain.Author, error) {
		return s.base.List(ctx)
	})
}

func (s *AuthorStore) Create(ctx context.Context, author domain.Author) (*domain.Author, error) {
	a, err := s.base.Create(ctx, author)
	if err != nil {
		return nil, err
	}
	Invalidate(s.cache, AuthorWrite)
	return a, nil
}

func (s *AuthorStore) Update(ctx context.Context, id int, author domain.Author) (*domain.Author, error) {
	a, err := s.base.Update(ctx, id, author)
	if err != nil {
		return nil, err
	}
	Invalidate(s.cache, AuthorWrite)
	return a, nil
}

func (s *AuthorStore) Delete(ctx context.Context, id int) error {
	if err := s.base.Delete(ctx, id); err != nil {
		return err
	}
	Invalidate(s.cache, AuthorWrite)
	return nil
}

type TagStore struct {
	base  storage.TagStore
	cache *ttlcache.Cache[any]
	group *singleflight.Group
}

func NewTagStore(base storage.TagStore, cache *ttlcache.Cache[any]) *TagStore {
	return &TagStore{base: base, cache: cache, group: &singleflight.Group{}}
}

var _ storage.TagStore = (*TagStore)(nil)

func (s *TagStore) List(ctx context.Context) ([]domain.Tag, error) {
	return readThrough(s.cache, s.group, KeyTags, TaxonomyTTL, func() ([]domain.Tag, error) {
		return s.base.List(ctx)
	})
}

func (s *TagStore) Create(ctx context.Context, name string) (*domain.Tag, error) {
	t, err := s.base.Create(ctx, name)
	if err != nil {
		return nil, err
	}
	Invalidate(s.cache, TagWrite)
	return t, nil
}

func (s *TagStore) Update(ctx context.Context, id int, name string) (*domain.Tag, error) {
	t, err := s.base.Update(ctx, id, name)
	if err != nil {
		return nil, err
	}
	Invalidate(s.cache, TagWrite)
	return t, nil
}

func (s *TagStore) Delete(ctx context.Context, id int) error {
	if err := s.base.Delete(ctx, id); err != nil {
		return err
	}
	Invalidate(s.cache, TagWrite)
	return nil
}
