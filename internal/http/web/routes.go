package web

import (
	"github.com/labstack/echo/v4"
)

// RegisterPublicRoutes registers routes available without a session.
func RegisterPublicRoutes(g *echo.Group, h *Handler) {
	g.GET("/login", h.LoginPage)
	g.POST("/login", h.Login)
	g.GET("/register", h.RegisterPage)
	g.POST("/register", h.Register)
	g.GET("/", h.Index)
}

// RegisterRoutes registers routes that require an authenticated session.
func RegisterRoutes(g *echo.Group, h *Handler) {
	g.GET("/logout", h.Logout)

	// Customers
	g.GET("/customers", h.ListCustomers)
	g.GET("/customer/:id", h.CustomerDetail)
	g.GET("/customer/create", h.NewCustomerForm)
	g.POST("/customer/create", h.CreateCustomer)
	g.GET("/customer/edit/:id", h.EditCustomerForm)
	g.POST("/customer/edit/:id", h.UpdateCustomer)
	g.POST("/customer/delete/:id", h.DeleteCustomer)

	// Sales
	g.GET("/sales", h.ListSales)
	g.GET("/sales-report", h.SalesReport)

	// Support tickets
	g.GET("/support-tickets", h.ListTickets)
	g.GET("/support-tickets/create", h.NewTicketForm)
	g.POST("/support-tickets/create", h.CreateTicket)
}
