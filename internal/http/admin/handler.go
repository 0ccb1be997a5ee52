// Package admin holds the handlers behind the admin gate: the full
// customer listing, sale creation and database backups.
package admin

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Vipin-hari/CRM/internal/backup"
	"github.com/Vipin-hari/CRM/internal/customer"
	"github.com/Vipin-hari/CRM/internal/http/web"
	"github.com/Vipin-hari/CRM/internal/middleware"
	"github.com/Vipin-hari/CRM/internal/sale"
	"github.com/Vipin-hari/CRM/internal/sqlite"
	vm "github.com/Vipin-hari/CRM/internal/viewmodels"
	"github.com/Vipin-hari/CRM/templates/pages"
)

const dateLayout = "2006-01-02"

// Handler handles admin-only web requests
type Handler struct {
	customers *customer.Service
	sales     *sale.Service
	backups   *backup.Service
}

// NewHandler creates a new admin handler
func NewHandler(customers *customer.Service, sales *sale.Service, backups *backup.Service) *Handler {
	return &Handler{
		customers: customers,
		sales:     sales,
		backups:   backups,
	}
}

// ListCustomers renders the unfiltered customer listing
func (h *Handler) ListCustomers(c echo.Context) error {
	ctx := c.Request().Context()

	customers, err := h.customers.List(ctx, "")
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return pages.AdminCustomers(web.FromDomainCustomers(customers)).Render(ctx, c.Response())
}

// NewSaleForm renders the create sale form
func (h *Handler) NewSaleForm(c echo.Context) error {
	ctx := c.Request().Context()

	customers, err := h.customers.List(ctx, "")
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	data := pages.SaleFormData{
		Sale: vm.Sale{
			SaleDate: time.Now().Format(dateLayout),
			Status:   "Pending",
		},
		Customers: web.FromDomainCustomers(customers),
	}
	return pages.SaleForm(data).Render(ctx, c.Response())
}

// CreateSale handles create sale form submission
func (h *Handler) CreateSale(c echo.Context) error {
	ctx := c.Request().Context()

	s := sale.Sale{
		SaleDate: strings.TrimSpace(c.FormValue("sale_date")),
		Status:   strings.TrimSpace(c.FormValue("status")),
	}
	rawAmount := strings.TrimSpace(c.FormValue("amount"))

	errs := make(vm.FormErrors)

	custID, err := strconv.ParseInt(c.FormValue("customer_id"), 10, 64)
	if err != nil {
		errs["customer_id"] = "Choose a customer"
	} else {
		s.CustomerID = custID
	}
	if _, err := time.Parse(dateLayout, s.SaleDate); err != nil {
		errs["sale_date"] = "Enter a date as YYYY-MM-DD"
	}
	cents, err := sale.ParseAmount(rawAmount)
	if err != nil {
		errs["amount"] = "Enter an amount like 199.99"
	} else {
		s.AmountCents = cents
	}
	if s.Status == "" {
		s.Status = "Pending"
	}
	if errs.Has() {
		return h.renderSaleForm(c, s, rawAmount, errs)
	}

	if _, err := h.sales.Create(ctx, &s); err != nil {
		if sqlite.IsForeignKeyConstraintError(err) {
			errs["customer_id"] = "That customer no longer exists"
			return h.renderSaleForm(c, s, rawAmount, errs)
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	middleware.SetFlash(c, "success", "Sale created successfully!")
	return c.Redirect(http.StatusFound, "/sales")
}

// renderSaleForm re-renders the sale form with field errors
func (h *Handler) renderSaleForm(c echo.Context, s sale.Sale, rawAmount string, errs vm.FormErrors) error {
	ctx := c.Request().Context()

	customers, err := h.customers.List(ctx, "")
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	data := pages.SaleFormData{
		Sale:      web.FromDomainSale(s, ""),
		Amount:    rawAmount,
		Customers: web.FromDomainCustomers(customers),
		Errors:    errs,
	}
	c.Response().WriteHeader(http.StatusUnprocessableEntity)
	return pages.SaleForm(data).Render(ctx, c.Response())
}

// Backup creates a database backup and reports the result via flash
func (h *Handler) Backup(c echo.Context) error {
	ctx := c.Request().Context()

	result, err := h.backups.CreateBackup(ctx)
	if err != nil {
		middleware.SetFlash(c, "danger", "Backup failed: "+err.Error())
		return c.Redirect(http.StatusFound, "/admin/customers")
	}

	middleware.SetFlash(c, "success", fmt.Sprintf("Backup written to %s (%d bytes)", result.Filename, result.Size))
	return c.Redirect(http.StatusFound, "/admin/customers")
}
