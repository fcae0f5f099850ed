// Package seed bootstraps categories and authors from a YAML file so a
// fresh deployment has something to attach articles to.
package seed

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"gopkg.in/yaml.v3"

	"github.com/velikovic/inkwell/internal/domain"
	"github.com/velikovic/inkwell/internal/storage"
)

type CategorySeed struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

type AuthorSeed struct {
	Name     string `yaml:"name"`
	Position string `yaml:"position"`
	PhotoURL string `yaml:"photoUrl"`
	LinkedIn string `yaml:"linkedIn"`
}

type File struct {
	Categories []CategorySeed `yaml:"categories"`
	Authors    []AuthorSeed   `yaml:"authors"`
}

func Load(r io.Reader) (*File, error) {
	decoder := yaml.NewDecoder(r)
	var f File
	if err := decoder.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to decode seed file: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *File) Validate() error {
	for i, c := range f.Categories {
		if c.Name == "" {
			return fmt.Errorf("seed category %d has no name", i)
		}
	}
	for i, a := range f.Authors {
		if a.Name == "" {
			return fmt.Errorf("seed author %d has no name", i)
		}
	}
	return nil
}

// Apply creates the seeded entities that do not exist yet, matching by
// name. Existing rows are left alone.
func Apply(ctx context.Context, f *File, categories storage.CategoryStore, authors storage.AuthorStore) error {
	existing, err := categories.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list categories: %w", err)
	}
	haveCategory := map[string]bool{}
	for _, c := range existing {
		haveCategory[c.Name] = true
	}

	for _, c := range f.Categories {
		if haveCategory[c.Name] {
			continue
		}
		if _, err := categories.Create(ctx, c.Name, c.Color); err != nil {
			return fmt.Errorf("failed to seed category %q: %w", c.Name, err)
		}
		slog.Info("Seeded category", "name", c.Name)
	}

	existingAuthors, err := authors.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list authors: %w", err)
	}
	haveAuthor := map[string]bool{}
	for _, a := range existingAuthors {
		haveAuthor[a.Name] = true
	}

	for _, a := range f.Authors {
		if haveAuthor[a.Name] {
			continue
		}
		author := domain.Author{
			Name:     a.Name,
			Position: a.Position,
			PhotoURL: a.PhotoURL,
			LinkedIn: a.LinkedIn,
		}
		if _, err := authors.Create(ctx, author); err != nil {
			return fmt.Errorf("failed to seed author %q: %w", a.Name, err)
		}
		slog.Info("Seeded author", "name", a.Name)
	}

	return nil
}
