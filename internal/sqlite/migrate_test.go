package sqlite_test

import (
	"database/sql"
	"errors"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/Vipin-hari/CRM/internal/sqlite"
)

func TestMigrationsApplyCleanly(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := sqlite.RunMigrations(db); err != nil {
		t.Fatalf("migrations failed: %v", err)
	}

	// Verify the core tables exist
	for _, table := range []string{"customer", "sale", "interaction", "support_ticket", "user"} {
		row := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?;`, table)
		var name string
		if err := row.Scan(&name); err != nil {
			t.Fatalf("expected %s table to exist: %v", table, err)
		}
	}
}

func TestMigrationsSetsApplicationID(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := sqlite.RunMigrations(db); err != nil {
		t.Fatalf("migrations failed: %v", err)
	}

	var appID int
	if err := db.QueryRow("PRAGMA application_id;").Scan(&appID); err != nil {
		t.Fatalf("read application_id: %v", err)
	}

	if appID != sqlite.ApplicationID {
		t.Errorf("expected application_id 0x%X, got 0x%X", sqlite.ApplicationID, appID)
	}
}

func TestVerifyApplicationID(t *testing.T) {
	t.Run("accepts new database with appID 0", func(t *testing.T) {
		db, err := sql.Open("sqlite3", ":memory:")
		if err != nil {
			t.Fatalf("open db: %v", err)
		}
		defer db.Close()

		// New database has application_id = 0
		if err := sqlite.VerifyApplicationID(db); err != nil {
			t.Errorf("expected no error for new database, got %v", err)
		}
	})

	t.Run("accepts crm database", func(t *testing.T) {
		db, err := sql.Open("sqlite3", ":memory:")
		if err != nil {
			t.Fatalf("open db: %v", err)
		}
		defer db.Close()

		// Run migrations to set application_id
		if err := sqlite.RunMigrations(db); err != nil {
			t.Fatalf("migrations failed: %v", err)
		}

		if err := sqlite.VerifyApplicationID(db); err != nil {
			t.Errorf("expected no error for crm database, got %v", err)
		}
	})

	t.Run("rejects database with wrong appID", func(t *testing.T) {
		db, err := sql.Open("sqlite3", ":memory:")
		if err != nil {
			t.Fatalf("open db: %v", err)
		}
		defer db.Close()

		// Run migrations first to create a valid database, then change the appID
		if err := sqlite.RunMigrations(db); err != nil {
			t.Fatalf("migrations failed: %v", err)
		}
		if _, err := db.Exec("PRAGMA application_id = 305419896;"); err != nil { // 0x12345678
			t.Fatalf("set application_id: %v", err)
		}

		err = sqlite.VerifyApplicationID(db)
		if err == nil {
			t.Fatal("expected error for wrong application_id, got nil")
		}
		if !errors.Is(err, sqlite.ErrInvalidDatabase) {
			t.Errorf("expected ErrInvalidDatabase, got %v", err)
		}
	})

	t.Run("rejects database with tables but no appID", func(t *testing.T) {
		db, err := sql.Open("sqlite3", ":memory:")
		if err != nil {
			t.Fatalf("open db: %v", err)
		}
		defer db.Close()

		// Simulate another app's database that never set application_id
		if _, err := db.Exec("CREATE TABLE other_app (id INTEGER);"); err != nil {
			t.Fatalf("create table: %v", err)
		}

		err = sqlite.VerifyApplicationID(db)
		if err == nil {
			t.Fatal("expected error for database with tables but no appID, got nil")
		}
		if !errors.Is(err, sqlite.ErrInvalidDatabase) {
			t.Errorf("expected ErrInvalidDatabase, got %v", err)
		}
	})
}

func TestCascadeDeleteRemovesChildRows(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(`PRAGMA foreign_keys=ON;`); err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}
	if err := sqlite.RunMigrations(db); err != nil {
		t.Fatalf("migrations failed: %v", err)
	}

	if _, err := db.Exec(`INSERT INTO customer (first_name, last_name, email, date_of_birth)
		VALUES ('Cascade', 'Case', 'cascade@example.com', '1990-01-01')`); err != nil {
		t.Fatalf("insert customer: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO sale (customer_id, sale_date, amount_cents, status)
		VALUES (1, '2024-01-01', 1000, 'Completed')`); err != nil {
		t.Fatalf("insert sale: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO support_ticket (customer_id, creation_date, issue_description, status)
		VALUES (1, '2024-01-02', 'cascade check', 'Open')`); err != nil {
		t.Fatalf("insert ticket: %v", err)
	}

	if _, err := db.Exec(`DELETE FROM customer WHERE customer_id = 1`); err != nil {
		t.Fatalf("delete customer: %v", err)
	}

	for _, table := range []string{"sale", "support_ticket"} {
		var count int
		if err := db.QueryRow(`SELECT COUNT(*) FROM ` + table).Scan(&count); err != nil {
			t.Fatalf("count %s: %v", table, err)
		}
		if count != 0 {
			t.Errorf("expected %s rows to cascade on customer delete, found %d", table, count)
		}
	}
}
