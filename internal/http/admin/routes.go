package admin

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers the admin-only routes. The group must
// already carry the session and admin middleware.
func RegisterRoutes(g *echo.Group, h *Handler) {
	g.GET("/admin/customers", h.ListCustomers)
	g.POST("/admin/backup", h.Backup)

	g.GET("/sales/create", h.NewSaleForm)
	g.POST("/sales/create", h.CreateSale)
}
