package pg

import (
	"context"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/velikovic/inkwell/internal/apperr"
	"github.com/velikovic/inkwell/internal/domain"
)

type CategoryStore struct {
	db *pgxpool.Pool
}

func NewCategoryStore(pool *ConnectionPool) *CategoryStore {
	return &CategoryStore{db: pool.conn}
}

func (s *CategoryStore) List(ctx context.Context) ([]domain.Category, error) {
	rows, err := s.db.Query(ctx, "SELECT id, name, color FROM categories ORDER BY name")
	if err != nil {
		return nil, apperr.NewStorage("list categories", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Color); err != nil {
			return nil, apperr.NewStorage("list categories", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.NewStorage("list categories", err)
	}

	return categories, nil
}

func (s *CategoryStore) Create(ctx context.Context, name, color string) (*domain.Category, error) {
	c := domain.Category{Name: name, Color: color}
	err := s.db.QueryRow(
		ctx,
		"INSERT INTO categories (name, color) VALUES ($1, $2) RETURNING id",
		name, color,
	).Scan(&c.ID)
	if err != nil {
		return nil, apperr.NewStorage("create category", err)
	}
	return &c, nil
}

func (s *CategoryStore) Update(ctx context.Context, id int, name, color string) (*domain.Category, error) {
	tag, err := s.db.Exec(ctx, "UPDATE categories SET name = $1, color = $2 WHERE id = $3", name, color, id)
	if err != nil {
		return nil, apperr.NewStorage("update category", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, apperr.NewNotFound("category", strconv.Itoa(id))
	}
	return &domain.Category{ID: id, Name: name, Color: color}, nil
}

func (s *CategoryStore) Delete(ctx context.Context, id int) error {
	// Referencing articles keep their rows, the FK nulls the reference.
	if _, err := s.db.Exec(ctx, "DELETE FROM categories WHERE id = $1", id); err != nil {
		return apperr.NewStorage("delete category", err)
	}
	return nil
}

type AuthorStore struct {
	db *pgxpool.Pool
}

func NewAuthorStore(pool *ConnectionPool) *AuthorStore {
	return &AuthorStore{db: pool.conn}
}

func (s *AuthorStore) List(ctx context.Context) ([]domain.Author, error) {
	rows, err := s.db.Query(ctx, "SELECT id, name, position, photo_url, linked_in FROM authors ORDER BY name")
	if err != nil {
		return nil, apperr.NewStorage("list authors", err)
	}
	defer rows.Close()

	authors := []domain.Author{}
	for rows.Next() {
		var a domain.Author
		if err := rows.Scan(&a.ID, &a.Name, &a.Position, &a.PhotoURL, &a.LinkedIn); err != nil {
			return nil, apperr.NewStorage("list authors", err)
		}
		authors = append(authors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.NewStorage("list authors", err)
	}

	return authors, nil
}

func (s *AuthorStore) Create(ctx context.Context, author domain.Author) (*domain.Author, error) {
	err := s.db.QueryRow(
		ctx,
		"INSERT INTO authors (name, position, photo_url, linked_in) VALUES ($1, $2, $3, $4) RETURNING id",
		author.Name, author.Position, author.PhotoURL, author.LinkedIn,
	).Scan(&author.ID)
	if err != nil {
		return nil, apperr.NewStorage("create author", err)
	}
	return &author, nil
}

func (s *AuthorStore) Update(ctx context.Context, id int, author domain.Author) (*domain.Author, error) {
	tag, err := s.db.Exec(
		ctx,
		"UPDATE authors SET name = $1, position = $2, photo_url = $3, linked_in = $4 WHERE id = $5",
		author.Name, author.Position, author.PhotoURL, author.LinkedIn, id,
	)
	if err != nil {
		return nil, apperr.NewStorage("update author", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, apperr.NewNotFound("author", strconv.Itoa(id))
	}
	author.ID = id
	return &author, nil
}

func (s *AuthorStore) Delete(ctx context.Context, id int) error {
	if _, err := s.db.Exec(ctx, "DELETE FROM authors WHERE id = $1", id); err != nil {
		return apperr.NewStorage("delete author", err)
	}
	return nil
}

type TagStore struct {
	db *pgxpool.Pool
}

func NewTagStore(pool *ConnectionPool) *TagStore {
	return &TagStore{db: pool.conn}
}

func (s *TagStore) List(ctx context.Context) ([]domain.Tag, error) {
	rows, err := s.db.Query(ctx, "SELECT id, name FROM tags ORDER BY name")
	if err != nil {
		return nil, apperr.NewStorage("list tags", err)
	}
	defer rows.Close()

	tags := []domain.Tag{}
	for rows.Next() {
		var t domain.Tag
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, apperr.NewStorage("list tags", err)
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.NewStorage("list tags", err)
	}

	return tags, nil
}

func (s *TagStore) Create(ctx context.Context, name string) (*domain.Tag, error) {
	t := domain.Tag{Name: name}
	err := s.db.QueryRow(ctx, "INSERT INTO tags (name) VALUES ($1) RETURNING id", name).Scan(&t.ID)
	if err != nil {
		return nil, apperr.NewStorage("create tag", err)
	}
	return &t, nil
}

func (s *TagStore) Update(ctx context.Context, id int, name string) (*domain.Tag, error) {
	tag, err := s.db.Exec(ctx, "UPDATE tags SET name = $1 WHERE id = $2", name, id)
	if err != nil {
		return nil, apperr.NewStorage("update tag", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, apperr.NewNotFound("tag", strconv.Itoa(id))
	}
	return &domain.Tag{ID: id, Name: name}, nil
}

func (s *TagStore) Delete(ctx context.Context, id int) error {
	if _, err := s.db.Exec(ctx, "DELETE FROM tags WHERE id = $1", id); err != nil {
		return apperr.NewStorage("delete tag", err)
	}
	return nil
}
