package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/velikovic/inkwell/internal/storage"
)

// TaxonomyRouter serves the public category/author/tag lists the reader
// surface needs for filter chips and bylines.
type TaxonomyRouter struct {
	e          *echo.Echo
	categories storage.CategoryStore
	authors    storage.AuthorStore
	tags       storage.TagStore
}

func NewTaxonomyRouter(e *echo.Echo, categories storage.CategoryStore, authors storage.AuthorStore, tags storage.TagStore) *TaxonomyRouter {
	return &TaxonomyRouter{
		e:          e,
		categories: categories,
		authors:    authors,
		tags:       tags,
	}
}

func (r *TaxonomyRouter) Bind() {
	r.e.GET("/api/categories", r.categoriesHandler)
	r.e.GET("/api/authors", r.authorsHandler)
	r.e.GET("/api/tags", r.tagsHandler)
}

func (r *TaxonomyRouter) categoriesHandler(c echo.Context) error {
	categories, err := r.categories.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categories)
}

func (r *TaxonomyRouter) authorsHandler(c echo.Context) error {
	authors, err := r.authors.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, authors)
}

func (r *TaxonomyRouter) tagsHandler(c echo.Context) error {
	tags, err := r.tags.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tags)
}
