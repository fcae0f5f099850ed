package router

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/velikovic/inkwell/internal/apperr"
	"github.com/velikovic/inkwell/internal/listing"
	"github.com/velikovic/inkwell/internal/storage"
	"github.com/velikovic/inkwell/pkg/pagination"
)

// ArticleRouter serves the public read surface: published articles only.
type ArticleRouter struct {
	e        *echo.Echo
	articles storage.ArticleStore
}

func NewArticleRouter(e *echo.Echo, articles storage.ArticleStore) *ArticleRouter {
	return &ArticleRouter{
		e:        e,
		articles: articles,
	}
}

func (r *ArticleRouter) Bind() {
	r.e.GET("/api/articles", r.listHandler)
	r.e.GET("/api/articles/popular", r.popularHandler)
	r.e.GET("/api/articles/recent", r.recentHandler)
	r.e.GET("/api/articles/:id", r.getHandler)
}

// listHandler godoc
// @Summary List published articles
// @Description Non-draft articles, newest first, filtered by category and paginated
// @Param categories query string false "Comma-separated category ids"
// @Param page query int false "Page number, 1-based"
// @Param size query int false "Page size"
// @Produce json
// @Success 200 {object} pagination.OffsetResult[domain.Article]
// @Router /api/articles [get]
func (r *ArticleRouter) listHandler(c echo.Context) error {
	articles, err := r.articles.List(c.Request().Context())
	if err != nil {
		return err
	}

	selected := parseCategoryFilter(c.QueryParam("categories"))
	page, size := parsePageParams(c)

	filtered := listing.FilterByCategories(articles, selected)
	items := listing.Paginate(filtered, page, size)

	return c.JSON(http.StatusOK, pagination.NewOffsetResult(items, int64(len(filtered)), page, size))
}

// getHandler godoc
// @Summary Get one article
// @Param id path string true "Article id (uuid)"
// @Produce json
// @Success 200 {object} domain.Article
// @Failure 404 {object} map[string]string
// @Router /api/articles/{id} [get]
func (r *ArticleRouter) getHandler(c echo.Context) error {
	// A malformed identifier is a not-found, decided here; the data layer
	// is never consulted for it.
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.NewNotFound("article", c.Param("id"))
	}

	article, err := r.articles.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if article.IsDraft {
		return apperr.NewNotFound("article", id.String())
	}

	return c.JSON(http.StatusOK, article)
}

func (r *ArticleRouter) popularHandler(c echo.Context) error {
	articles, err := r.articles.MostPopular(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, articles)
}

func (r *ArticleRouter) recentHandler(c echo.Context) error {
	articles, err := r.articles.MostRecent(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, articles)
}

func parseCategoryFilter(raw string) map[int]bool {
	selected := map[int]bool{}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil {
			continue
		}
		selected[id] = true
	}
	return selected
}

func parsePageParams(c echo.Context) (page, size int) {
	req := pagination.OffsetRequest{}
	if p, err := strconv.Atoi(c.QueryParam("page")); err == nil {
		req.Page = p
	}
	if s, err := strconv.Atoi(c.QueryParam("size")); err == nil {
		req.Size = s
	}
	_ = req.Validate()
	return req.Page, req.Size
}
