package web

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Vipin-hari/CRM/internal/customer"
	"github.com/Vipin-hari/CRM/internal/interaction"
	"github.com/Vipin-hari/CRM/internal/middleware"
	"github.com/Vipin-hari/CRM/internal/sale"
	"github.com/Vipin-hari/CRM/internal/sqlite"
	"github.com/Vipin-hari/CRM/internal/ticket"
	"github.com/Vipin-hari/CRM/internal/user"
	vm "github.com/Vipin-hari/CRM/internal/viewmodels"
	"github.com/Vipin-hari/CRM/templates/pages"
)

const dateLayout = "2006-01-02"

// Handler handles web UI requests
type Handler struct {
	customers    *customer.Service
	sales        *sale.Service
	interactions *interaction.Service
	tickets      *ticket.Service
	users        *user.Service
	sessions     middleware.SessionStore
	sessionTTL   time.Duration
}

// NewHandler creates a new web handler
func NewHandler(
	customers *customer.Service,
	sales *sale.Service,
	interactions *interaction.Service,
	tickets *ticket.Service,
	users *user.Service,
	sessions middleware.SessionStore,
	sessionTTL time.Duration,
) *Handler {
	if sessionTTL <= 0 {
		sessionTTL = middleware.DefaultSessionTTL
	}
	return &Handler{
		customers:    customers,
		sales:        sales,
		interactions: interactions,
		tickets:      tickets,
		users:        users,
		sessions:     sessions,
		sessionTTL:   sessionTTL,
	}
}

// customerNames returns a customer ID to display name lookup for
// resolving names on sale listings.
func (h *Handler) customerNames(ctx context.Context) (map[int64]string, error) {
	customers, err := h.customers.List(ctx, "")
	if err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(customers))
	for _, c := range customers {
		names[c.CustomerID] = c.FirstName + " " + c.LastName
	}
	return names, nil
}

// --------------------------
// Authentication
// --------------------------

// LoginPage renders the login form
func (h *Handler) LoginPage(c echo.Context) error {
	return pages.Login("").Render(c.Request().Context(), c.Response())
}

// Login handles login form submission
func (h *Handler) Login(c echo.Context) error {
	ctx := c.Request().Context()
	username := strings.TrimSpace(c.FormValue("username"))
	password := c.FormValue("password")

	u, err := h.users.Authenticate(ctx, username, password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			return pages.Login("Login failed. Check your username and/or password").Render(ctx, c.Response())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	sessionID := h.sessions.Create(u.UserID, u.Username, u.IsAdmin)

	cookie := &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(h.sessionTTL.Seconds()),
	}
	c.SetCookie(cookie)

	return c.Redirect(http.StatusFound, "/")
}

// RegisterPage renders the registration form
func (h *Handler) RegisterPage(c echo.Context) error {
	return pages.Register("").Render(c.Request().Context(), c.Response())
}

// Register handles registration form submission. New accounts are
// never admins.
func (h *Handler) Register(c echo.Context) error {
	ctx := c.Request().Context()
	username := strings.TrimSpace(c.FormValue("username"))
	password := c.FormValue("password")

	if username == "" || password == "" {
		return pages.Register("Username and password are required").Render(ctx, c.Response())
	}

	if _, err := h.users.Register(ctx, username, password, false); err != nil {
		if sqlite.IsUniqueConstraintError(err) {
			return pages.Register("That username is already taken").Render(ctx, c.Response())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	middleware.SetFlash(c, "success", "User registered successfully!")
	return c.Redirect(http.StatusFound, "/login")
}

// Logout clears the session cookie and deletes the server-side session
func (h *Handler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(middleware.SessionCookieName); err == nil && cookie.Value != "" {
		h.sessions.Delete(cookie.Value)
	}

	// Overwrite cookie with expired one
	cookie := &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	}
	c.SetCookie(cookie)

	return c.Redirect(http.StatusFound, "/login")
}

// --------------------------
// Dashboard
// --------------------------

// Index renders the dashboard
func (h *Handler) Index(c echo.Context) error {
	return pages.Index().Render(c.Request().Context(), c.Response())
}

// --------------------------
// Customers
// --------------------------

func (h *Handler) ListCustomers(c echo.Context) error {
	ctx := c.Request().Context()
	search := c.QueryParam("search")

	customers, err := h.customers.List(ctx, search)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	data := pages.CustomersData{
		Customers: FromDomainCustomers(customers),
		Search:    search,
	}
	return pages.Customers(data).Render(ctx, c.Response())
}

func (h *Handler) CustomerDetail(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid customer ID")
	}

	cust, err := h.customers.Get(ctx, id)
	if err != nil {
		if errors.Is(err, customer.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Customer not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	sales, err := h.sales.GetForCustomer(ctx, id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	interactions, err := h.interactions.GetForCustomer(ctx, id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	tickets, err := h.tickets.GetForCustomer(ctx, id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	name := cust.FirstName + " " + cust.LastName
	data := pages.CustomerDetailData{
		Customer:     FromDomainCustomer(*cust),
		Sales:        FromDomainSales(sales, map[int64]string{id: name}),
		Interactions: FromDomainInteractions(interactions),
		Tickets:      FromDomainTickets(tickets),
	}
	return pages.CustomerDetail(data).Render(ctx, c.Response())
}

func (h *Handler) NewCustomerForm(c echo.Context) error {
	return pages.CustomerForm(pages.CustomerFormData{}).Render(c.Request().Context(), c.Response())
}

// customerFromForm binds the customer form fields
func customerFromForm(c echo.Context) customer.Customer {
	return customer.Customer{
		FirstName:   strings.TrimSpace(c.FormValue("first_name")),
		LastName:    strings.TrimSpace(c.FormValue("last_name")),
		Email:       strings.TrimSpace(c.FormValue("email")),
		Phone:       strings.TrimSpace(c.FormValue("phone")),
		Address:     strings.TrimSpace(c.FormValue("address")),
		DateOfBirth: strings.TrimSpace(c.FormValue("date_of_birth")),
	}
}

// validateCustomer checks the bound form fields and returns field errors
func validateCustomer(cust customer.Customer) vm.FormErrors {
	errs := make(vm.FormErrors)
	if cust.FirstName == "" {
		errs["first_name"] = "First name is required"
	}
	if cust.LastName == "" {
		errs["last_name"] = "Last name is required"
	}
	if cust.Email == "" {
		errs["email"] = "Email is required"
	}
	if _, err := time.Parse(dateLayout, cust.DateOfBirth); err != nil {
		errs["date_of_birth"] = "Enter a date as YYYY-MM-DD"
	}
	return errs
}

// renderCustomerForm re-renders the form with field errors
func renderCustomerForm(c echo.Context, cust customer.Customer, edit bool, errs vm.FormErrors) error {
	data := pages.CustomerFormData{
		Customer: FromDomainCustomer(cust),
		Errors:   errs,
		Edit:     edit,
	}
	c.Response().WriteHeader(http.StatusUnprocessableEntity)
	return pages.CustomerForm(data).Render(c.Request().Context(), c.Response())
}

func (h *Handler) CreateCustomer(c echo.Context) error {
	ctx := c.Request().Context()
	cust := customerFromForm(c)

	if errs := validateCustomer(cust); errs.Has() {
		return renderCustomerForm(c, cust, false, errs)
	}

	if _, err := h.customers.Create(ctx, &cust); err != nil {
		if sqlite.IsUniqueConstraintError(err) {
			errs := vm.FormErrors{"email": "A customer with this email already exists"}
			return renderCustomerForm(c, cust, false, errs)
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	middleware.SetFlash(c, "success", "Customer created successfully!")
	return c.Redirect(http.StatusFound, "/customers")
}

func (h *Handler) EditCustomerForm(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid customer ID")
	}

	cust, err := h.customers.Get(ctx, id)
	if err != nil {
		if errors.Is(err, customer.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Customer not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	data := pages.CustomerFormData{
		Customer: FromDomainCustomer(*cust),
		Edit:     true,
	}
	return pages.CustomerForm(data).Render(ctx, c.Response())
}

func (h *Handler) UpdateCustomer(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid customer ID")
	}

	cust := customerFromForm(c)
	cust.CustomerID = id

	if errs := validateCustomer(cust); errs.Has() {
		return renderCustomerForm(c, cust, true, errs)
	}

	if err := h.customers.Update(ctx, &cust); err != nil {
		switch {
		case errors.Is(err, customer.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "Customer not found")
		case sqlite.IsUniqueConstraintError(err):
			errs := vm.FormErrors{"email": "A customer with this email already exists"}
			return renderCustomerForm(c, cust, true, errs)
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	middleware.SetFlash(c, "success", "Customer updated successfully!")
	return c.Redirect(http.StatusFound, "/customer/"+strconv.FormatInt(id, 10))
}

func (h *Handler) DeleteCustomer(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid customer ID")
	}

	if err := h.customers.Delete(ctx, id); err != nil {
		if errors.Is(err, customer.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Customer not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	middleware.SetFlash(c, "success", "Customer deleted successfully!")
	return c.Redirect(http.StatusFound, "/customers")
}

// --------------------------
// Sales
// --------------------------

func (h *Handler) ListSales(c echo.Context) error {
	ctx := c.Request().Context()

	sales, err := h.sales.GetAll(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	names, err := h.customerNames(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return pages.Sales(FromDomainSales(sales, names)).Render(ctx, c.Response())
}

func (h *Handler) SalesReport(c echo.Context) error {
	ctx := c.Request().Context()

	report, err := h.sales.SalesReport(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	names, err := h.customerNames(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	data := vm.SalesReport{
		Sales:      FromDomainSales(report.Sales, names),
		TotalCents: report.TotalCents,
	}
	return pages.SalesReport(data).Render(ctx, c.Response())
}

// --------------------------
// Support Tickets
// --------------------------

func (h *Handler) ListTickets(c echo.Context) error {
	ctx := c.Request().Context()

	tickets, err := h.tickets.GetAll(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return pages.Tickets(FromDomainTickets(tickets)).Render(ctx, c.Response())
}

func (h *Handler) NewTicketForm(c echo.Context) error {
	data := pages.TicketFormData{
		Ticket: vm.SupportTicket{
			CreationDate: time.Now().Format(dateLayout),
			Status:       "Open",
		},
	}
	return pages.TicketForm(data).Render(c.Request().Context(), c.Response())
}

func (h *Handler) CreateTicket(c echo.Context) error {
	ctx := c.Request().Context()
	sess, ok := middleware.CurrentUser(ctx)
	if !ok {
		return c.Redirect(http.StatusFound, "/login")
	}

	t := ticket.SupportTicket{
		// Tickets are filed against the caller's own account.
		CustomerID:       sess.UserID,
		CreationDate:     strings.TrimSpace(c.FormValue("creation_date")),
		IssueDescription: strings.TrimSpace(c.FormValue("issue_description")),
		Status:           strings.TrimSpace(c.FormValue("status")),
	}

	errs := make(vm.FormErrors)
	if _, err := time.Parse(dateLayout, t.CreationDate); err != nil {
		errs["creation_date"] = "Enter a date as YYYY-MM-DD"
	}
	if t.IssueDescription == "" {
		errs["issue_description"] = "Describe the issue"
	}
	if t.Status == "" {
		t.Status = "Open"
	}
	if errs.Has() {
		return renderTicketForm(c, t, errs)
	}

	if _, err := h.tickets.Create(ctx, &t); err != nil {
		if sqlite.IsForeignKeyConstraintError(err) {
			errs["customer_id"] = "No customer record matches your account"
			return renderTicketForm(c, t, errs)
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	middleware.SetFlash(c, "success", "Support ticket created successfully!")
	return c.Redirect(http.StatusFound, "/support-tickets")
}

// renderTicketForm re-renders the ticket form with field errors
func renderTicketForm(c echo.Context, t ticket.SupportTicket, errs vm.FormErrors) error {
	data := pages.TicketFormData{
		Ticket: FromDomainTicket(t),
		Errors: errs,
	}
	c.Response().WriteHeader(http.StatusUnprocessableEntity)
	return pages.TicketForm(data).Render(c.Request().Context(), c.Response())
}
