package web

import (
	"github.com/Vipin-hari/CRM/internal/customer"
	"github.com/Vipin-hari/CRM/internal/interaction"
	"github.com/Vipin-hari/CRM/internal/sale"
	"github.com/Vipin-hari/CRM/internal/ticket"
	vm "github.com/Vipin-hari/CRM/internal/viewmodels"
)

// FromDomainCustomer converts a domain customer to view model
func FromDomainCustomer(c customer.Customer) vm.Customer {
	return vm.Customer{
		CustomerID:  c.CustomerID,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Email:       c.Email,
		Phone:       c.Phone,
		Address:     c.Address,
		DateOfBirth: c.DateOfBirth,
		DateCreated: vm.FormatDate(c.DateCreated),
	}
}

// FromDomainCustomers converts a slice of domain customers to view models
func FromDomainCustomers(customers []customer.Customer) []vm.Customer {
	result := make([]vm.Customer, len(customers))
	for i, c := range customers {
		result[i] = FromDomainCustomer(c)
	}
	return result
}

// FromDomainSale converts a domain sale to view model
func FromDomainSale(s sale.Sale, customerName string) vm.Sale {
	return vm.Sale{
		SaleID:       s.SaleID,
		CustomerID:   s.CustomerID,
		CustomerName: customerName,
		SaleDate:     s.SaleDate,
		AmountCents:  s.AmountCents,
		Status:       s.Status,
	}
}

// FromDomainSales converts a slice of domain sales to view models,
// resolving customer names through the given lookup.
func FromDomainSales(sales []sale.Sale, names map[int64]string) []vm.Sale {
	result := make([]vm.Sale, len(sales))
	for i, s := range sales {
		result[i] = FromDomainSale(s, names[s.CustomerID])
	}
	return result
}

// FromDomainInteraction converts a domain interaction to view model
func FromDomainInteraction(it interaction.Interaction) vm.Interaction {
	return vm.Interaction{
		InteractionID:   it.InteractionID,
		CustomerID:      it.CustomerID,
		InteractionDate: it.InteractionDate,
		InteractionType: it.Type,
		Notes:           it.Notes.String,
	}
}

// FromDomainInteractions converts a slice of domain interactions to view models
func FromDomainInteractions(interactions []interaction.Interaction) []vm.Interaction {
	result := make([]vm.Interaction, len(interactions))
	for i, it := range interactions {
		result[i] = FromDomainInteraction(it)
	}
	return result
}

// FromDomainTicket converts a domain support ticket to view model
func FromDomainTicket(t ticket.SupportTicket) vm.SupportTicket {
	return vm.SupportTicket{
		TicketID:         t.TicketID,
		CustomerID:       t.CustomerID,
		CreationDate:     t.CreationDate,
		IssueDescription: t.IssueDescription,
		Status:           t.Status,
	}
}

// FromDomainTickets converts a slice of domain support tickets to view models
func FromDomainTickets(tickets []ticket.SupportTicket) []vm.SupportTicket {
	result := make([]vm.SupportTicket, len(tickets))
	for i, t := range tickets {
		result[i] = FromDomainTicket(t)
	}
	return result
}
