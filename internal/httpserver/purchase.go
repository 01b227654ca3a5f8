package httpserver

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/codevault/marketplace/internal/mykafka"
	"github.com/codevault/marketplace/internal/service"
	"github.com/codevault/marketplace/internal/transport"
	"github.com/codevault/marketplace/pkg/logging"
)

type PurchaseHTTP struct {
	Svc      *service.PurchaseService
	Producer *mykafka.Producer
}

func (h *PurchaseHTTP) Purchase(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "purchase.purchase")

	userID, err := userIDFromContext(c)
	if err != nil {
		l.Warn("purchase_error", "status", 401, "reason", "unauthorized", "error", err)
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	var req transport.PurchaseRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("purchase_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if req.ProductID == uuid.Nil {
		l.Warn("purchase_error", "status", 400, "reason", "product_id required")
		return echo.NewHTTPError(http.StatusBadRequest, "product_id required")
	}

	purchase, err := h.Svc.Purchase(ctx, userID, req.ProductID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			l.Warn("purchase_error", "status", 404, "reason", "not found", "error", err)
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrAlreadyPurchased):
			// distinct from generic conflict so the client can treat
			// it as "already owned"
			l.Warn("purchase_error", "status", 409, "reason", "already purchased", "error", err)
			return echo.NewHTTPError(http.StatusConflict, "already purchased")
		case errors.Is(err, service.ErrPriceMismatch):
			l.Warn("purchase_error", "status", 422, "reason", "price mismatch", "error", err)
			return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
		default:
			l.Error("purchase_error", "status", 500, "reason", "cannot record purchase", "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "cannot record purchase")
		}
	}

	publish(c, h.Producer, "purchase_events", userID.String(), map[string]any{
		"type":       "purchase_completed",
		"purchaseID": purchase.ID,
		"userID":     purchase.UserID,
		"productID":  purchase.ProductID,
		"amount":     purchase.Amount,
	})

	l.Info("purchase_success", "purchase_id", purchase.ID, "product_id", purchase.ProductID)
	return c.JSON(http.StatusCreated, purchase)
}

func (h *PurchaseHTTP) ListPurchases(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "purchase.list_purchases")

	userID, err := userIDFromContext(c)
	if err != nil {
		l.Warn("list_purchases_error", "status", 401, "reason", "unauthorized", "error", err)
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	purchases, err := h.Svc.PurchasesByUser(ctx, userID)
	if err != nil {
		l.Error("list_purchases_error", "status", 500, "reason", "cannot list purchases", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list purchases")
	}

	return c.JSON(http.StatusOK, purchases)
}
