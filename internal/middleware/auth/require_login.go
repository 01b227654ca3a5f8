package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/codevault/marketplace/internal/tokens"
)

type Middleware struct {
	JWTSecret []byte
}

func NewMiddleware(jwtSecret []byte) *Middleware {
	return &Middleware{JWTSecret: jwtSecret}
}

// RequireLogin validates the bearer access token and stores the
// subject under "user_id" for the handlers downstream.
func (m *Middleware) RequireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw := bearerToken(c)
		if raw == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing access token")
		}

		claims, err := tokens.AccessClaimsFromToken(raw, m.JWTSecret)
		if err != nil || claims == nil || claims.Subject == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid access token")
		}

		c.Set("user_id", claims.Subject)
		return next(c)
	}
}

func bearerToken(c echo.Context) string {
	h := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	if ck, err := c.Cookie("accessToken"); err == nil {
		return ck.Value
	}
	return ""
}
