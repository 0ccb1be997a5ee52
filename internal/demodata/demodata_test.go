package demodata_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/crypto/bcrypt"

	"github.com/Vipin-hari/CRM/internal/demodata"
	"github.com/Vipin-hari/CRM/internal/sqlite"
)

// TestDemoDataNotLoadedOnExistingDB verifies that demo data is only loaded
// when the database is newly created, not when it already exists.
// This mirrors the logic in server.Build() that checks isNewDB before loading.
func TestDemoDataNotLoadedOnExistingDB(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	// Step 1: Create database and add existing data
	db, err := sqlx.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	if _, err := db.Exec(`PRAGMA foreign_keys=ON;`); err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}

	if err := sqlite.RunMigrations(db.DB); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}

	// Insert a customer that should NOT be overwritten
	_, err = db.Exec(`INSERT INTO customer (first_name, last_name, email, date_of_birth)
		VALUES ('Existing', 'Person', 'existing@example.com', '1970-01-01')`)
	if err != nil {
		db.Close()
		t.Fatalf("insert existing customer: %v", err)
	}

	db.Close()

	// Step 2: Simulate server.Build() logic - check if DB exists BEFORE opening
	isNewDB := false
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		isNewDB = true
	}

	if isNewDB {
		t.Fatal("expected isNewDB to be false for existing database")
	}

	// Step 3: Reopen database (simulating server startup)
	db, err = sqlx.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("reopen db: %v", err)
	}
	defer db.Close()

	// Step 4: Simulate DemoMode=true with existing DB - should NOT load demo data
	demoMode := true
	if demoMode && isNewDB {
		// This block should NOT execute for existing DB
		if err := demodata.Load(db.DB); err != nil {
			t.Fatalf("load demo data: %v", err)
		}
	}

	// Step 5: Verify original data is intact (demo data was NOT loaded)
	var email string
	err = db.QueryRow(`SELECT email FROM customer WHERE email = 'existing@example.com'`).Scan(&email)
	if err != nil {
		t.Fatalf("existing customer should still exist: %v", err)
	}

	var demoCount int
	err = db.QueryRow(`SELECT COUNT(*) FROM customer WHERE email = 'john@example.com'`).Scan(&demoCount)
	if err != nil {
		t.Fatalf("query demo customer: %v", err)
	}
	if demoCount != 0 {
		t.Error("demo data should NOT have been loaded on existing database")
	}
}

// TestDemoDataLoadedOnNewDB verifies that demo data IS loaded on a fresh database.
func TestDemoDataLoadedOnNewDB(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "newtest.db")

	isNewDB := false
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		isNewDB = true
	}

	if !isNewDB {
		t.Fatal("expected isNewDB to be true for non-existent database")
	}

	db, err := sqlx.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(`PRAGMA foreign_keys=ON;`); err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}

	if err := sqlite.RunMigrations(db.DB); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	demoMode := true
	if demoMode && isNewDB {
		if err := demodata.Load(db.DB); err != nil {
			t.Fatalf("load demo data: %v", err)
		}
	}

	var demoCount int
	err = db.QueryRow(`SELECT COUNT(*) FROM customer WHERE email = 'john@example.com'`).Scan(&demoCount)
	if err != nil {
		t.Fatalf("query demo customer: %v", err)
	}
	if demoCount != 1 {
		t.Error("demo data should have been loaded on new database")
	}

	// Demo accounts are seeded with usable bcrypt credentials
	var hash string
	var isAdmin bool
	err = db.QueryRow(`SELECT password, is_admin FROM user WHERE username = 'admin'`).Scan(&hash, &isAdmin)
	if err != nil {
		t.Fatalf("query demo admin: %v", err)
	}
	if !isAdmin {
		t.Error("expected demo admin account to have the admin flag")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte("admin123")); err != nil {
		t.Error("expected demo admin password to verify")
	}
}
