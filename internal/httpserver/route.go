package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	middleware "github.com/codevault/marketplace/internal/middleware/auth"
)

type Deps struct {
	AuthHandler     *AuthHTTP
	CatalogHandler  *CatalogHTTP
	PurchaseHandler *PurchaseHTTP
	AccountHandler  *AccountHTTP
	JWTSecret       []byte
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	authMW := middleware.NewMiddleware(d.JWTSecret)

	auth := e.Group("/auth")
	auth.POST("/register", d.AuthHandler.Register)
	auth.POST("/login", d.AuthHandler.Login)

	products := e.Group("/api/products")
	products.GET("", d.CatalogHandler.GetProducts)
	products.GET("/search", d.CatalogHandler.SearchProducts)
	products.GET("/category/:category", d.CatalogHandler.ListByCategory)
	products.GET("/:id", d.CatalogHandler.GetProduct)
	products.POST("", d.CatalogHandler.CreateProduct, authMW.RequireLogin)

	if d.CatalogHandler.Index != nil {
		products.GET("/fulltext", d.CatalogHandler.FulltextSearch)
	}

	e.POST("/api/purchase", d.PurchaseHandler.Purchase, authMW.RequireLogin)

	me := e.Group("/api/me", authMW.RequireLogin)
	me.GET("", d.AccountHandler.Profile)
	me.GET("/products", d.AccountHandler.MyProducts)
	me.GET("/purchases", d.PurchaseHandler.ListPurchases)
}
