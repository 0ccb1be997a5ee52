package backup_test

import (
	"compress/gzip"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/Vipin-hari/CRM/internal/backup"
	"github.com/Vipin-hari/CRM/internal/customer"
	"github.com/Vipin-hari/CRM/internal/sale"
	"github.com/Vipin-hari/CRM/internal/testutil"
	"github.com/Vipin-hari/CRM/internal/ticket"
)

func TestBackupService(t *testing.T) {
	ctx := context.Background()

	tmpDir, err := os.MkdirTemp("", "backup_test")
	if err != nil {
		t.Fatalf("create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	dbPath := filepath.Join(tmpDir, "test.db")
	db := testutil.NewTestDBAt(t, dbPath)

	custSvc := customer.NewService(db)
	saleSvc := sale.NewService(db)
	ticketSvc := ticket.NewService(db)

	c, err := custSvc.Create(ctx, &customer.Customer{
		FirstName:   "Backup",
		LastName:    "Tester",
		Email:       "backup@test.com",
		DateOfBirth: "1980-01-01",
	})
	if err != nil {
		t.Fatalf("create customer: %v", err)
	}

	if _, err := saleSvc.Create(ctx, &sale.Sale{
		CustomerID:  c.CustomerID,
		SaleDate:    "2024-06-01",
		AmountCents: 129900,
		Status:      "Completed",
	}); err != nil {
		t.Fatalf("create sale: %v", err)
	}

	if _, err := ticketSvc.Create(ctx, &ticket.SupportTicket{
		CustomerID:       c.CustomerID,
		CreationDate:     "2024-06-02",
		IssueDescription: "Invoice never arrived",
		Status:           "Open",
	}); err != nil {
		t.Fatalf("create ticket: %v", err)
	}

	backupSvc := backup.NewService(db, dbPath)
	result, err := backupSvc.CreateBackup(ctx)
	if err != nil {
		t.Fatalf("CreateBackup: %v", err)
	}

	if result.Filename == "" {
		t.Error("expected filename to be set")
	}
	if result.Size == 0 {
		t.Error("expected size > 0")
	}
	if !strings.HasSuffix(result.Filename, "_crmdump.sql.gz") {
		t.Errorf("expected filename to end with _crmdump.sql.gz, got %s", result.Filename)
	}

	// Decompress and sanity-check the dump content
	file, err := os.Open(result.Path)
	if err != nil {
		t.Fatalf("open backup file: %v", err)
	}
	defer file.Close()

	gzReader, err := gzip.NewReader(file)
	if err != nil {
		t.Fatalf("create gzip reader: %v", err)
	}
	defer gzReader.Close()

	content, err := io.ReadAll(gzReader)
	if err != nil {
		t.Fatalf("read gzip content: %v", err)
	}

	dump := string(content)

	if !strings.Contains(dump, "CREATE TABLE") {
		t.Error("expected dump to contain CREATE TABLE statements")
	}
	if !strings.Contains(dump, "backup@test.com") {
		t.Error("expected dump to contain customer data")
	}
	if !strings.Contains(dump, "129900") {
		t.Error("expected dump to contain sale data")
	}
	if !strings.Contains(dump, "Invoice never arrived") {
		t.Error("expected dump to contain ticket data")
	}
	if !strings.Contains(dump, "BEGIN TRANSACTION") {
		t.Error("expected dump to contain BEGIN TRANSACTION")
	}
	if !strings.Contains(dump, "COMMIT") {
		t.Error("expected dump to contain COMMIT")
	}
}
