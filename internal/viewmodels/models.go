package viewmodels

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatAmount renders an amount in cents as a dollar string with
// grouped thousands, e.g. 1234550 -> "12,345.50".
func FormatAmount(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return printer.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// Customer is a view model for customer display
type Customer struct {
	CustomerID  int64
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	Address     string
	DateOfBirth string
	DateCreated string
}

// FullName returns the customer's display name
func (cu Customer) FullName() string {
	return cu.FirstName + " " + cu.LastName
}

// Sale is a view model for sale display
type Sale struct {
	SaleID       int64
	CustomerID   int64
	CustomerName string
	SaleDate     string
	AmountCents  int64
	Status       string
}

// Amount returns the formatted sale amount
func (s Sale) Amount() string {
	return FormatAmount(s.AmountCents)
}

// Interaction is a view model for interaction display
type Interaction struct {
	InteractionID   int64
	CustomerID      int64
	InteractionDate string
	InteractionType string
	Notes           string
}

// SupportTicket is a view model for support ticket display
type SupportTicket struct {
	TicketID         int64
	CustomerID       int64
	CustomerName     string
	CreationDate     string
	IssueDescription string
	Status           string
}

// IsOpen reports whether the ticket still needs attention
func (t SupportTicket) IsOpen() bool {
	return t.Status == "Open"
}

// SalesReport is a view model for the sales report page
type SalesReport struct {
	Sales      []Sale
	TotalCents int64
}

// Total returns the formatted report total
func (r SalesReport) Total() string {
	return FormatAmount(r.TotalCents)
}

// FormErrors carries field-level validation messages back to a form
type FormErrors map[string]string

// Has reports whether any errors were recorded
func (fe FormErrors) Has() bool {
	return len(fe) > 0
}

// FormatDate renders a timestamp for display, blank for zero times
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04")
}
