package pg

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/velikovic/inkwell/internal/apperr"
	"github.com/velikovic/inkwell/internal/domain"
	"github.com/velikovic/inkwell/internal/storage"
)

type ArticleStore struct {
	db *pgxpool.Pool
}

func NewArticleStore(pool *ConnectionPool) *ArticleStore {
	return &ArticleStore{db: pool.conn}
}

func (s *ArticleStore) List(ctx context.Context) ([]domain.Article, error) {
	query := `SELECT` + articleColumns + articleFrom + `
		WHERE a.is_draft = FALSE
		ORDER BY a.created_at DESC`

	return s.queryArticles(ctx, "list articles", query)
}

func (s *ArticleStore) ListAll(ctx context.Context) ([]domain.Article, error) {
	query := `SELECT` + articleColumns + articleFrom + `
		ORDER BY a.created_at DESC`

	return s.queryArticles(ctx, "list all articles", query)
}

func (s *ArticleStore) MostPopular(ctx context.Context) ([]domain.Article, error) {
	query := `SELECT` + articleColumns + articleFrom + `
		WHERE a.is_draft = FALSE
		ORDER BY a.likes DESC
		LIMIT $1`

	return s.queryArticles(ctx, "most popular articles", query, storage.TopArticlesLimit)
}

func (s *ArticleStore) MostRecent(ctx context.Context) ([]domain.Article, error) {
	query := `SELECT` + articleColumns + articleFrom + `
		WHERE a.is_draft = FALSE
		ORDER BY a.created_at DESC
		LIMIT $1`

	return s.queryArticles(ctx, "most recent articles", query, storage.TopArticlesLimit)
}

func (s *ArticleStore) Search(ctx context.Context, query string) ([]domain.Article, error) {
	searchSQL := `SELECT` + articleColumns + articleFrom + `
		WHERE a.search_vector @@ plainto_tsquery('english', $1)
		ORDER BY ts_rank(a.search_vector, plainto_tsquery('english', $1)) DESC, a.created_at DESC`

	return s.queryArticles(ctx, "search articles", searchSQL, query)
}

func (s *ArticleStore) Get(ctx context.Context, id uuid.UUID) (*domain.Article, error) {
	query := `SELECT` + articleColumns + articleFrom + `
		WHERE a.id = $1`

	row := s.db.QueryRow(ctx, query, id)
	article, err := mapArticle(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NewNotFound("article", id.String())
		}
		return nil, apperr.NewStorage("get article", err)
	}

	return article, nil
}

func (s *ArticleStore) Create(ctx context.Context, draft domain.ArticleDraft) (*domain.Article, error) {
	id := uuid.New()

	cmd := `
		INSERT INTO articles (id, title, markdown, summary, read_time, category_id, author_id, is_draft, likes, dislikes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 0, 0, now(), now())
		RETURNING id`

	if err := s.db.QueryRow(
		ctx,
		cmd,
		id,
		draft.Title,
		draft.Markdown,
		draft.Summary,
		draft.ReadTime,
		draft.CategoryID,
		draft.AuthorID,
		draft.IsDraft,
	).Scan(&id); err != nil {
		return nil, apperr.NewStorage("create article", err)
	}

	return s.Get(ctx, id)
}

func (s *ArticleStore) Update(ctx context.Context, id uuid.UUID, patch domain.ArticlePatch) (*domain.Article, error) {
	// updated_at is stamped on every update, requested or not.
	set := []string{"updated_at = now()"}
	args := []any{}
	n := 1

	add := func(col string, v any) {
		set = append(set, fmt.Sprintf("%s = $%d", col, n))
		args = append(args, v)
		n++
	}

	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Markdown != nil {
		add("markdown", *patch.Markdown)
	}
	if patch.Summary != nil {
		add("summary", *patch.Summary)
	}
	if patch.ReadTime != nil {
		add("read_time", *patch.ReadTime)
	}
	if patch.CategoryID != nil {
		add("category_id", *patch.CategoryID)
	}
	if patch.AuthorID != nil {
		add("author_id", *patch.AuthorID)
	}
	if patch.IsDraft != nil {
		add("is_draft", *patch.IsDraft)
	}

	cmd := fmt.Sprintf("UPDATE articles SET %s WHERE id = $%d", strings.Join(set, ", "), n)
	args = append(args, id)

	tag, err := s.db.Exec(ctx, cmd, args...)
	if err != nil {
		return nil, apperr.NewStorage("update article", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, apperr.NewNotFound("article", id.String())
	}

	return s.Get(ctx, id)
}

func (s *ArticleStore) Delete(ctx context.Context, id uuid.UUID) error {
	// Deleting a row that is already gone reports success: the caller
	// cannot tell "deleted" from "0 rows affected" and should not need to.
	if _, err := s.db.Exec(ctx, "DELETE FROM articles WHERE id = $1", id); err != nil {
		return apperr.NewStorage("delete article", err)
	}
	return nil
}

func (s *ArticleStore) queryArticles(ctx context.Context, op, query string, args ...any) ([]domain.Article, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperr.NewStorage(op, err)
	}
	defer rows.Close()

	articles := []domain.Article{}
	for rows.Next() {
		article, err := mapArticle(rows)
		if err != nil {
			return nil, apperr.NewStorage(op, err)
		}
		articles = append(articles, *article)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.NewStorage(op, err)
	}

	return articles, nil
}
