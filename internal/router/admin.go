package router

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/velikovic/inkwell/internal/apperr"
	"github.com/velikovic/inkwell/internal/auth"
	"github.com/velikovic/inkwell/internal/dto"
	"github.com/velikovic/inkwell/internal/listing"
	"github.com/velikovic/inkwell/internal/storage"
	"github.com/velikovic/inkwell/pkg/pagination"
)

// AdminRouter serves the authenticated CMS surface: full CRUD plus the
// draft-inclusive listing. Each login session keeps its own listing state
// so filter and page-size changes reset the page server-side.
type AdminRouter struct {
	e          *echo.Echo
	authSvc    *auth.Service
	articles   storage.ArticleStore
	categories storage.CategoryStore
	authors    storage.AuthorStore
	tags       storage.TagStore

	mu     sync.Mutex
	states map[string]*listing.State
}

func NewAdminRouter(
	e *echo.Echo,
	authSvc *auth.Service,
	articles storage.ArticleStore,
	categories storage.CategoryStore,
	authors storage.AuthorStore,
	tags storage.TagStore,
) *AdminRouter {
	return &AdminRouter{
		e:          e,
		authSvc:    authSvc,
		articles:   articles,
		categories: categories,
		authors:    authors,
		tags:       tags,
		states:     make(map[string]*listing.State),
	}
}

func (r *AdminRouter) Bind() {
	g := r.e.Group("/api/admin", auth.Middleware(r.authSvc))

	g.GET("/articles", r.listHandler)
	g.GET("/articles/search", r.searchHandler)
	g.POST("/articles", r.createHandler)
	g.PUT("/articles/:id", r.updateHandler)
	g.DELETE("/articles/:id", r.deleteHandler)

	g.POST("/categories", r.createCategoryHandler)
	g.PUT("/categories/:id", r.updateCategoryHandler)
	g.DELETE("/categories/:id", r.deleteCategoryHandler)

	g.POST("/authors", r.createAuthorHandler)
	g.PUT("/authors/:id", r.updateAuthorHandler)
	g.DELETE("/authors/:id", r.deleteAuthorHandler)

	g.POST("/tags", r.createTagHandler)
	g.PUT("/tags/:id", r.updateTagHandler)
	g.DELETE("/tags/:id", r.deleteTagHandler)
}

func (r *AdminRouter) sessionState(c echo.Context) *listing.State {
	key := auth.SessionID(c)
	r.mu.Lock()
	defer r.mu.Unlock()
	state, ok := r.states[key]
	if !ok {
		state = listing.NewState()
		r.states[key] = state
	}
	return state
}

// applyListParams folds the request's listing parameters into the session
// state. Only a changed limit or filter resets the page; repeating the
// current values leaves navigation alone.
func applyListParams(state *listing.State, c echo.Context) {
	if raw := c.QueryParam("categories"); c.QueryParams().Has("categories") {
		selected := parseCategoryFilter(raw)
		if !sameSelection(selected, state.Selected()) {
			ids := make([]int, 0, len(selected))
			for id := range selected {
				ids = append(ids, id)
			}
			state.SetCategories(ids)
		}
	}

	if raw := c.QueryParam("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit != state.Limit() {
			state.SetLimit(limit)
		}
	}

	if raw := c.QueryParam("page"); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil {
			state.SetPage(page)
		}
	}
}

func sameSelection(a, b map[int]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for id := range a {
		if !b[id] {
			return false
		}
	}
	return true
}

// listHandler godoc
// @Summary List all articles, drafts included
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} pagination.OffsetResult[domain.Article]
// @Router /api/admin/articles [get]
func (r *AdminRouter) listHandler(c echo.Context) error {
	articles, err := r.articles.ListAll(c.Request().Context())
	if err != nil {
		return err
	}

	state := r.sessionState(c)
	applyListParams(state, c)

	filtered := listing.FilterByCategories(articles, state.Selected())
	items := listing.Paginate(filtered, state.Page(), state.Limit())

	return c.JSON(http.StatusOK, pagination.NewOffsetResult(items, int64(len(filtered)), state.Page(), state.Limit()))
}

func (r *AdminRouter) searchHandler(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return apperr.NewValidation("q parameter is required")
	}

	articles, err := r.articles.Search(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, articles)
}

func (r *AdminRouter) createHandler(c echo.Context) error {
	var req dto.CreateArticleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return err
	}

	article, err := r.articles.Create(c.Request().Context(), req.ToDraft())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, article)
}

func (r *AdminRouter) updateHandler(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.NewNotFound("article", c.Param("id"))
	}

	var req dto.UpdateArticleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return err
	}

	article, err := r.articles.Update(c.Request().Context(), id, req.ToPatch())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, article)
}

func (r *AdminRouter) deleteHandler(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.NewNotFound("article", c.Param("id"))
	}

	if err := r.articles.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (r *AdminRouter) createCategoryHandler(c echo.Context) error {
	var req dto.CategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return err
	}

	category, err := r.categories.Create(c.Request().Context(), req.Name, req.Color)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, category)
}

func (r *AdminRouter) updateCategoryHandler(c echo.Context) error {
	id, err := intParam(c, "id", "category")
	if err != nil {
		return err
	}

	var req dto.CategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return err
	}

	category, err := r.categories.Update(c.Request().Context(), id, req.Name, req.Color)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, category)
}

func (r *AdminRouter) deleteCategoryHandler(c echo.Context) error {
	id, err := intParam(c, "id", "category")
	if err != nil {
		return err
	}
	if err := r.categories.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (r *AdminRouter) createAuthorHandler(c echo.Context) error {
	var req dto.AuthorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return err
	}

	author, err := r.authors.Create(c.Request().Context(), req.ToAuthor())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, author)
}

func (r *AdminRouter) updateAuthorHandler(c echo.Context) error {
	id, err := intParam(c, "id", "author")
	if err != nil {
		return err
	}

	var req dto.AuthorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return err
	}

	author, err := r.authors.Update(c.Request().Context(), id, req.ToAuthor())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, author)
}

func (r *AdminRouter) deleteAuthorHandler(c echo.Context) error {
	id, err := intParam(c, "id", "author")
	if err != nil {
		return err
	}
	if err := r.authors.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (r *AdminRouter) createTagHandler(c echo.Context) error {
	var req dto.TagRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return err
	}

	tag, err := r.tags.Create(c.Request().Context(), req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, tag)
}

func (r *AdminRouter) updateTagHandler(c echo.Context) error {
	id, err := intParam(c, "id", "tag")
	if err != nil {
		return err
	}

	var req dto.TagRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return err
	}

	tag, err := r.tags.Update(c.Request().Context(), id, req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tag)
}

func (r *AdminRouter) deleteTagHandler(c echo.Context) error {
	id, err := intParam(c, "id", "tag")
	if err != nil {
		return err
	}
	if err := r.tags.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func intParam(c echo.Context, name, resource string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, apperr.NewNotFound(resource, c.Param(name))
	}
	return id, nil
}
