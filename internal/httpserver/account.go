package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/codevault/marketplace/internal/service"
	"github.com/codevault/marketplace/pkg/logging"
)

type AccountHTTP struct {
	Svc *service.AccountService
}

func (h *AccountHTTP) Profile(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "account.profile")

	userID, err := userIDFromContext(c)
	if err != nil {
		l.Warn("profile_error", "status", 401, "reason", "unauthorized", "error", err)
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	user, stats, err := h.Svc.Profile(ctx, userID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("profile_error", "status", 404, "reason", "user does not exist", "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "user does not exist")
		}
		l.Error("profile_error", "status", 500, "reason", "cannot load profile", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot load profile")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"user":  user,
		"stats": stats,
	})
}

func (h *AccountHTTP) MyProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "account.my_products")

	userID, err := userIDFromContext(c)
	if err != nil {
		l.Warn("my_products_error", "status", 401, "reason", "unauthorized", "error", err)
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	products, err := h.Svc.ProductsByAuthor(ctx, userID)
	if err != nil {
		l.Error("my_products_error", "status", 500, "reason", "cannot list products", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list products")
	}

	return c.JSON(http.StatusOK, products)
}
