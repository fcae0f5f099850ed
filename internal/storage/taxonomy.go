package storage

import (
	"context"

	"github.com/velikovic/inkwell/internal/domain"
)

// Taxonomy stores carry no cascade logic: deleting a category or author
// leaves referencing articles in place, the schema nulls the reference.

type CategoryStore interface {
	List(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, name, color string) (*domain.Category, error)
	Update(ctx context.Context, id int, name, color string) (*domain.Category, error)
	Delete(ctx context.Context, id int) error
}

type AuthorStore interface {
	List(ctx context.Context) ([]domain.Author, error)
	Create(ctx context.Context, author domain.Author) (*domain.Author, error)
	Update(ctx context.Context, id int, author domain.Author) (*domain.Author, error)
	Delete(ctx context.Context, id int) error
}

type TagStore interface {
	List(ctx context.Context) ([]domain.Tag, error)
	Create(ctx context.Context, name string) (*domain.Tag, error)
	Update(ctx context.Context, id int, name string) (*domain.Tag, error)
	Delete(ctx context.Context, id int) error
}
