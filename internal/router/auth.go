package router

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/velikovic/inkwell/internal/auth"
	"github.com/velikovic/inkwell/internal/dto"
)

type AuthRouter struct {
	e   *echo.Echo
	svc *auth.Service
}

func NewAuthRouter(e *echo.Echo, svc *auth.Service) *AuthRouter {
	return &AuthRouter{e: e, svc: svc}
}

func (r *AuthRouter) Bind() {
	r.e.POST("/api/auth/login", r.loginHandler)
	r.e.GET("/api/auth/session", r.sessionHandler)
}

// loginHandler godoc
// @Summary Log in with the admin credential pair
// @Accept json
// @Produce json
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} map[string]string
// @Router /api/auth/login [post]
func (r *AuthRouter) loginHandler(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return err
	}

	token, err := r.svc.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid email or password")
		}
		return err
	}

	return c.JSON(http.StatusOK, dto.LoginResponse{Token: token})
}

// sessionHandler reports whether the presented token is a live session.
// A missing or invalid token is a definitive deny, not an error.
func (r *AuthRouter) sessionHandler(c echo.Context) error {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return c.JSON(http.StatusOK, dto.SessionResponse{Authenticated: false})
	}

	email, err := r.svc.Verify(token)
	if err != nil {
		return c.JSON(http.StatusOK, dto.SessionResponse{Authenticated: false})
	}

	return c.JSON(http.StatusOK, dto.SessionResponse{Authenticated: true, Email: email})
}
