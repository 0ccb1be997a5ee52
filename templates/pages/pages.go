// Package pages defines the server-rendered pages of the CRM web UI.
package pages

import (
	"strconv"

	"github.com/a-h/templ"

	vm "github.com/Vipin-hari/CRM/internal/viewmodels"
	"github.com/Vipin-hari/CRM/templates/components"
)

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

// --------------------------
// Authentication
// --------------------------

var loginTmpl = components.Must("login", `{{template "header" .Ctx}}
<div class="row justify-content-center"><div class="col-md-4">
<h2>Login</h2>
{{if .Data}}<div class="alert alert-danger" role="alert">{{.Data}}</div>{{end}}
<form method="post" action="/login">
<input type="hidden" name="csrf" value="{{.Ctx.CSRF}}">
<div class="mb-3"><label class="form-label" for="username">Username</label>
<input class="form-control" type="text" id="username" name="username" required></div>
<div class="mb-3"><label class="form-label" for="password">Password</label>
<input class="form-control" type="password" id="password" name="password" required></div>
<button class="btn btn-primary" type="submit">Login</button>
<a class="btn btn-link" href="/register">Register</a>
</form>
</div></div>
{{template "footer" .Ctx}}`)

// Login renders the login form, with an optional error message.
func Login(errMsg string) templ.Component {
	return components.Render(loginTmpl, errMsg)
}

var registerTmpl = components.Must("register", `{{template "header" .Ctx}}
<div class="row justify-content-center"><div class="col-md-4">
<h2>Register</h2>
{{if .Data}}<div class="alert alert-danger" role="alert">{{.Data}}</div>{{end}}
<form method="post" action="/register">
<input type="hidden" name="csrf" value="{{.Ctx.CSRF}}">
<div class="mb-3"><label class="form-label" for="username">Username</label>
<input class="form-control" type="text" id="username" name="username" required></div>
<div class="mb-3"><label class="form-label" for="password">Password</label>
<input class="form-control" type="password" id="password" name="password" required></div>
<button class="btn btn-primary" type="submit">Register</button>
</form>
</div></div>
{{template "footer" .Ctx}}`)

// Register renders the registration form, with an optional error message.
func Register(errMsg string) templ.Component {
	return components.Render(registerTmpl, errMsg)
}

// --------------------------
// Dashboard
// --------------------------

var indexTmpl = components.Must("index", `{{template "header" .Ctx}}
<h1>Welcome to the CRM</h1>
{{if .Ctx.LoggedIn}}
<p>Hello, {{.Ctx.Username}}. Use the navigation above to manage customers, sales and support tickets.</p>
{{else}}
<p><a href="/login">Log in</a> to get started.</p>
{{end}}
{{template "footer" .Ctx}}`)

// Index renders the dashboard page.
func Index() templ.Component {
	return components.Render(indexTmpl, nil)
}

// --------------------------
// Customers
// --------------------------

// CustomersData feeds the customer list page.
type CustomersData struct {
	Customers []vm.Customer
	Search    string
}

var customersTmpl = components.Must("customers", `{{template "header" .Ctx}}
<div class="d-flex justify-content-between align-items-center mb-3">
<h2>Customers</h2>
<a class="btn btn-primary" href="/customer/create">New Customer</a>
</div>
<form method="get" action="/customers" class="mb-3">
<div class="input-group">
<input class="form-control" type="text" name="search" placeholder="Search by name" value="{{.Data.Search}}">
<button class="btn btn-outline-secondary" type="submit">Search</button>
</div>
</form>
<table class="table table-striped">
<thead><tr><th>Name</th><th>Email</th><th>Phone</th><th></th></tr></thead>
<tbody>
{{range .Data.Customers}}
<tr>
<td><a href="/customer/{{.CustomerID}}">{{.FullName}}</a></td>
<td>{{.Email}}</td>
<td>{{.Phone}}</td>
<td class="text-end">
<a class="btn btn-sm btn-outline-secondary" href="/customer/edit/{{.CustomerID}}">Edit</a>
<form method="post" action="/customer/delete/{{.CustomerID}}" class="d-inline">
<input type="hidden" name="csrf" value="{{$.Ctx.CSRF}}">
<button class="btn btn-sm btn-outline-danger" type="submit">Delete</button>
</form>
</td>
</tr>
{{else}}
<tr><td colspan="4">No customers found.</td></tr>
{{end}}
</tbody>
</table>
{{template "footer" .Ctx}}`)

// Customers renders the customer list with the search box.
func Customers(data CustomersData) templ.Component {
	return components.Render(customersTmpl, data)
}

// CustomerDetailData feeds the customer detail page.
type CustomerDetailData struct {
	Customer     vm.Customer
	Sales        []vm.Sale
	Interactions []vm.Interaction
	Tickets      []vm.SupportTicket
}

var customerDetailTmpl = components.Must("customer_detail", `{{template "header" .Ctx}}
<div class="d-flex justify-content-between align-items-center mb-3">
<h2>{{.Data.Customer.FullName}}</h2>
<a class="btn btn-outline-secondary" href="/customer/edit/{{.Data.Customer.CustomerID}}">Edit</a>
</div>
<dl class="row">
<dt class="col-sm-3">Email</dt><dd class="col-sm-9">{{.Data.Customer.Email}}</dd>
<dt class="col-sm-3">Phone</dt><dd class="col-sm-9">{{.Data.Customer.Phone}}</dd>
<dt class="col-sm-3">Address</dt><dd class="col-sm-9">{{.Data.Customer.Address}}</dd>
<dt class="col-sm-3">Date of Birth</dt><dd class="col-sm-9">{{.Data.Customer.DateOfBirth}}</dd>
<dt class="col-sm-3">Customer Since</dt><dd class="col-sm-9">{{.Data.Customer.DateCreated}}</dd>
</dl>
<h4>Sales</h4>
<table class="table table-sm">
<thead><tr><th>Date</th><th>Amount</th><th>Status</th></tr></thead>
<tbody>
{{range .Data.Sales}}<tr><td>{{.SaleDate}}</td><td>${{.Amount}}</td><td>{{.Status}}</td></tr>
{{else}}<tr><td colspan="3">No sales.</td></tr>{{end}}
</tbody>
</table>
<h4>Interactions</h4>
<table class="table table-sm">
<thead><tr><th>Date</th><th>Type</th><th>Notes</th></tr></thead>
<tbody>
{{range .Data.Interactions}}<tr><td>{{.InteractionDate}}</td><td>{{.InteractionType}}</td><td>{{.Notes}}</td></tr>
{{else}}<tr><td colspan="3">No interactions.</td></tr>{{end}}
</tbody>
</table>
<h4>Support Tickets</h4>
<table class="table table-sm">
<thead><tr><th>Date</th><th>Issue</th><th>Status</th></tr></thead>
<tbody>
{{range .Data.Tickets}}<tr><td>{{.CreationDate}}</td><td>{{.IssueDescription}}</td><td>{{.Status}}</td></tr>
{{else}}<tr><td colspan="3">No support tickets.</td></tr>{{end}}
</tbody>
</table>
{{template "footer" .Ctx}}`)

// CustomerDetail renders a customer with their sales, interactions
// and support tickets.
func CustomerDetail(data CustomerDetailData) templ.Component {
	return components.Render(customerDetailTmpl, data)
}

// CustomerFormData feeds the create and edit customer forms.
type CustomerFormData struct {
	Customer vm.Customer
	Errors   vm.FormErrors
	Edit     bool
}

// Action returns the form's POST target.
func (d CustomerFormData) Action() string {
	if d.Edit {
		return "/customer/edit/" + itoa(d.Customer.CustomerID)
	}
	return "/customer/create"
}

// Title returns the form's heading.
func (d CustomerFormData) Title() string {
	if d.Edit {
		return "Edit Customer"
	}
	return "New Customer"
}

var customerFormTmpl = components.Must("customer_form", `{{template "header" .Ctx}}
<div class="row justify-content-center"><div class="col-md-6">
<h2>{{.Data.Title}}</h2>
<form method="post" action="{{.Data.Action}}">
<input type="hidden" name="csrf" value="{{.Ctx.CSRF}}">
<div class="mb-3"><label class="form-label" for="first_name">First Name</label>
<input class="form-control{{if .Data.Errors.first_name}} is-invalid{{end}}" type="text" id="first_name" name="first_name" value="{{.Data.Customer.FirstName}}" required>
{{with .Data.Errors.first_name}}<div class="invalid-feedback">{{.}}</div>{{end}}</div>
<div class="mb-3"><label class="form-label" for="last_name">Last Name</label>
<input class="form-control{{if .Data.Errors.last_name}} is-invalid{{end}}" type="text" id="last_name" name="last_name" value="{{.Data.Customer.LastName}}" required>
{{with .Data.Errors.last_name}}<div class="invalid-feedback">{{.}}</div>{{end}}</div>
<div class="mb-3"><label class="form-label" for="email">Email</label>
<input class="form-control{{if .Data.Errors.email}} is-invalid{{end}}" type="email" id="email" name="email" value="{{.Data.Customer.Email}}" required>
{{with .Data.Errors.email}}<div class="invalid-feedback">{{.}}</div>{{end}}</div>
<div class="mb-3"><label class="form-label" for="phone">Phone</label>
<input class="form-control" type="text" id="phone" name="phone" value="{{.Data.Customer.Phone}}"></div>
<div class="mb-3"><label class="form-label" for="address">Address</label>
<input class="form-control" type="text" id="address" name="address" value="{{.Data.Customer.Address}}"></div>
<div class="mb-3"><label class="form-label" for="date_of_birth">Date of Birth</label>
<input class="form-control{{if .Data.Errors.date_of_birth}} is-invalid{{end}}" type="date" id="date_of_birth" name="date_of_birth" value="{{.Data.Customer.DateOfBirth}}" required>
{{with .Data.Errors.date_of_birth}}<div class="invalid-feedback">{{.}}</div>{{end}}</div>
<button class="btn btn-primary" type="submit">Save</button>
<a class="btn btn-secondary" href="/customers">Cancel</a>
</form>
</div></div>
{{template "footer" .Ctx}}`)

// CustomerForm renders the create or edit customer form.
func CustomerForm(data CustomerFormData) templ.Component {
	return components.Render(customerFormTmpl, data)
}

// --------------------------
// Sales
// --------------------------

var salesTmpl = components.Must("sales", `{{template "header" .Ctx}}
<div class="d-flex justify-content-between align-items-center mb-3">
<h2>Sales</h2>
{{if .Ctx.IsAdmin}}<a class="btn btn-primary" href="/sales/create">New Sale</a>{{end}}
</div>
<table class="table table-striped">
<thead><tr><th>Customer</th><th>Date</th><th>Amount</th><th>Status</th></tr></thead>
<tbody>
{{range .Data}}
<tr><td><a href="/customer/{{.CustomerID}}">{{.CustomerName}}</a></td><td>{{.SaleDate}}</td><td>${{.Amount}}</td><td>{{.Status}}</td></tr>
{{else}}
<tr><td colspan="4">No sales recorded.</td></tr>
{{end}}
</tbody>
</table>
{{template "footer" .Ctx}}`)

// Sales renders the sales list.
func Sales(sales []vm.Sale) templ.Component {
	return components.Render(salesTmpl, sales)
}

var salesReportTmpl = components.Must("sales_report", `{{template "header" .Ctx}}
<h2>Sales Report</h2>
<table class="table table-striped">
<thead><tr><th>Customer</th><th>Date</th><th>Amount</th><th>Status</th></tr></thead>
<tbody>
{{range .Data.Sales}}
<tr><td>{{.CustomerName}}</td><td>{{.SaleDate}}</td><td>${{.Amount}}</td><td>{{.Status}}</td></tr>
{{else}}
<tr><td colspan="4">No sales recorded.</td></tr>
{{end}}
</tbody>
<tfoot><tr><th colspan="2">Total Sales</th><th>${{.Data.Total}}</th><th></th></tr></tfoot>
</table>
{{template "footer" .Ctx}}`)

// SalesReport renders the sales report with the running total.
func SalesReport(report vm.SalesReport) templ.Component {
	return components.Render(salesReportTmpl, report)
}

// SaleFormData feeds the create sale form.
type SaleFormData struct {
	Sale      vm.Sale
	Amount    string // raw form input, preserved on error
	Customers []vm.Customer
	Errors    vm.FormErrors
}

var saleFormTmpl = components.Must("sale_form", `{{template "header" .Ctx}}
<div class="row justify-content-center"><div class="col-md-6">
<h2>New Sale</h2>
<form method="post" action="/sales/create">
<input type="hidden" name="csrf" value="{{.Ctx.CSRF}}">
<div class="mb-3"><label class="form-label" for="customer_id">Customer</label>
<select class="form-select{{if .Data.Errors.customer_id}} is-invalid{{end}}" id="customer_id" name="customer_id" required>
{{$sel := .Data.Sale.CustomerID}}
{{range .Data.Customers}}<option value="{{.CustomerID}}"{{if eq .CustomerID $sel}} selected{{end}}>{{.FullName}}</option>{{end}}
</select>
{{with .Data.Errors.customer_id}}<div class="invalid-feedback">{{.}}</div>{{end}}</div>
<div class="mb-3"><label class="form-label" for="sale_date">Sale Date</label>
<input class="form-control{{if .Data.Errors.sale_date}} is-invalid{{end}}" type="date" id="sale_date" name="sale_date" value="{{.Data.Sale.SaleDate}}" required>
{{with .Data.Errors.sale_date}}<div class="invalid-feedback">{{.}}</div>{{end}}</div>
<div class="mb-3"><label class="form-label" for="amount">Amount</label>
<input class="form-control{{if .Data.Errors.amount}} is-invalid{{end}}" type="text" id="amount" name="amount" value="{{.Data.Amount}}" required>
{{with .Data.Errors.amount}}<div class="invalid-feedback">{{.}}</div>{{end}}</div>
<div class="mb-3"><label class="form-label" for="status">Status</label>
<select class="form-select" id="status" name="status">
{{$st := .Data.Sale.Status}}
<option{{if eq $st "Pending"}} selected{{end}}>Pending</option>
<option{{if eq $st "Completed"}} selected{{end}}>Completed</option>
<option{{if eq $st "Cancelled"}} selected{{end}}>Cancelled</option>
</select></div>
<button class="btn btn-primary" type="submit">Save</button>
<a class="btn btn-secondary" href="/sales">Cancel</a>
</form>
</div></div>
{{template "footer" .Ctx}}`)

// SaleForm renders the create sale form.
func SaleForm(data SaleFormData) templ.Component {
	return components.Render(saleFormTmpl, data)
}

// --------------------------
// Support Tickets
// --------------------------

var ticketsTmpl = components.Must("tickets", `{{template "header" .Ctx}}
<div class="d-flex justify-content-between align-items-center mb-3">
<h2>Support Tickets</h2>
<a class="btn btn-primary" href="/support-tickets/create">New Ticket</a>
</div>
<table class="table table-striped">
<thead><tr><th>Date</th><th>Issue</th><th>Status</th></tr></thead>
<tbody>
{{range .Data}}
<tr><td>{{.CreationDate}}</td><td>{{.IssueDescription}}</td><td>{{if .IsOpen}}<span class="badge bg-warning text-dark">{{.Status}}</span>{{else}}{{.Status}}{{end}}</td></tr>
{{else}}
<tr><td colspan="3">No support tickets.</td></tr>
{{end}}
</tbody>
</table>
{{template "footer" .Ctx}}`)

// Tickets renders the support ticket list.
func Tickets(tickets []vm.SupportTicket) templ.Component {
	return components.Render(ticketsTmpl, tickets)
}

// TicketFormData feeds the create support ticket form.
type TicketFormData struct {
	Ticket vm.SupportTicket
	Errors vm.FormErrors
}

var ticketFormTmpl = components.Must("ticket_form", `{{template "header" .Ctx}}
<div class="row justify-content-center"><div class="col-md-6">
<h2>New Support Ticket</h2>
<form method="post" action="/support-tickets/create">
<input type="hidden" name="csrf" value="{{.Ctx.CSRF}}">
<div class="mb-3"><label class="form-label" for="creation_date">Date</label>
<input class="form-control{{if .Data.Errors.creation_date}} is-invalid{{end}}" type="date" id="creation_date" name="creation_date" value="{{.Data.Ticket.CreationDate}}" required>
{{with .Data.Errors.creation_date}}<div class="invalid-feedback">{{.}}</div>{{end}}</div>
<div class="mb-3"><label class="form-label" for="issue_description">Issue Description</label>
<textarea class="form-control{{if .Data.Errors.issue_description}} is-invalid{{end}}" id="issue_description" name="issue_description" rows="4" required>{{.Data.Ticket.IssueDescription}}</textarea>
{{with .Data.Errors.issue_description}}<div class="invalid-feedback">{{.}}</div>{{end}}</div>
<div class="mb-3"><label class="form-label" for="status">Status</label>
<select class="form-select" id="status" name="status">
{{$st := .Data.Ticket.Status}}
<option{{if eq $st "Open"}} selected{{end}}>Open</option>
<option{{if eq $st "Closed"}} selected{{end}}>Closed</option>
</select></div>
{{with .Data.Errors.customer_id}}<div class="alert alert-danger">{{.}}</div>{{end}}
<button class="btn btn-primary" type="submit">Save</button>
<a class="btn btn-secondary" href="/support-tickets">Cancel</a>
</form>
</div></div>
{{template "footer" .Ctx}}`)

// TicketForm renders the create support ticket form.
func TicketForm(data TicketFormData) templ.Component {
	return components.Render(ticketFormTmpl, data)
}

// --------------------------
// Admin
// --------------------------

var adminCustomersTmpl = components.Must("admin_customers", `{{template "header" .Ctx}}
<h2>All Customers</h2>
<table class="table table-striped">
<thead><tr><th>ID</th><th>Name</th><th>Email</th><th>Phone</th><th>Address</th><th>Date of Birth</th><th>Created</th></tr></thead>
<tbody>
{{range .Data}}
<tr><td>{{.CustomerID}}</td><td><a href="/customer/{{.CustomerID}}">{{.FullName}}</a></td><td>{{.Email}}</td><td>{{.Phone}}</td><td>{{.Address}}</td><td>{{.DateOfBirth}}</td><td>{{.DateCreated}}</td></tr>
{{else}}
<tr><td colspan="7">No customers.</td></tr>
{{end}}
</tbody>
</table>
{{template "footer" .Ctx}}`)

// AdminCustomers renders the admin view of all customers.
func AdminCustomers(customers []vm.Customer) templ.Component {
	return components.Render(adminCustomersTmpl, customers)
}
