package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// SessionKey is the echo context key holding the verified session subject.
const SessionKey = "session.subject"

// TokenKey holds the raw session token; it identifies one login session.
const TokenKey = "session.token"

// Middleware rejects requests without a valid bearer session token.
func Middleware(svc *Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing session token")
			}

			subject, err := svc.Verify(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid session token")
			}

			c.Set(SessionKey, subject)
			c.Set(TokenKey, token)
			return next(c)
		}
	}
}

// Subject returns the verified session subject, empty outside the
// protected group.
func Subject(c echo.Context) string {
	subject, _ := c.Get(SessionKey).(string)
	return subject
}

// SessionID returns the raw token identifying this login session.
func SessionID(c echo.Context) string {
	token, _ := c.Get(TokenKey).(string)
	return token
}
