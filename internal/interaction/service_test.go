package interaction_test

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/Vipin-hari/CRM/internal/customer"
	"github.com/Vipin-hari/CRM/internal/interaction"
	"github.com/Vipin-hari/CRM/internal/testutil"
)

func TestInteractionsForCustomer(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)

	custSvc := customer.NewService(db)
	intSvc := interaction.NewService(db)

	c1, err := custSvc.Create(ctx, &customer.Customer{FirstName: "John", LastName: "Doe", Email: "john@example.com"})
	if err != nil {
		t.Fatalf("create customer: %v", err)
	}
	c2, err := custSvc.Create(ctx, &customer.Customer{FirstName: "Jane", LastName: "Smith", Email: "jane@example.com"})
	if err != nil {
		t.Fatalf("create customer: %v", err)
	}

	if _, err := intSvc.Create(ctx, &interaction.Interaction{
		CustomerID:      c1.CustomerID,
		InteractionDate: "2024-01-15",
		Type:            "Call",
		Notes:           sql.NullString{String: "Discussed new features.", Valid: true},
	}); err != nil {
		t.Fatalf("create interaction: %v", err)
	}
	if _, err := intSvc.Create(ctx, &interaction.Interaction{
		CustomerID:      c2.CustomerID,
		InteractionDate: "2024-02-25",
		Type:            "Email",
	}); err != nil {
		t.Fatalf("create interaction: %v", err)
	}

	got, err := intSvc.GetForCustomer(ctx, c1.CustomerID)
	if err != nil {
		t.Fatalf("get for customer: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 interaction for customer 1, got %d", len(got))
	}
	if got[0].Type != "Call" {
		t.Errorf("expected type 'Call', got %q", got[0].Type)
	}
	if !got[0].Notes.Valid || got[0].Notes.String != "Discussed new features." {
		t.Errorf("unexpected notes: %+v", got[0].Notes)
	}

	all, err := intSvc.GetAll(ctx)
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected 2 interactions, got %d", len(all))
	}

	// notes are optional
	if all[1].Notes.Valid && all[1].Notes.String != "" {
		t.Errorf("expected empty notes for second interaction, got %q", all[1].Notes.String)
	}
}
