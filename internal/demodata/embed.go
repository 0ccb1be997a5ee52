// Package demodata provides sample data for demo deployments.
package demodata

import (
	"database/sql"
	"embed"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

//go:embed sample.sql
var sampleSQL embed.FS

// Demo accounts created alongside the sample rows. Password hashes
// cannot live in sample.sql, so users are seeded in code.
var demoUsers = []struct {
	username string
	password string
	isAdmin  bool
}{
	{"admin", "admin123", true},
	{"user", "user123", false},
}

// Load inserts demo data into the database.
// This should only be called on a freshly created database after migrations.
func Load(db *sql.DB) error {
	data, err := sampleSQL.ReadFile("sample.sql")
	if err != nil {
		return err
	}

	if _, err := db.Exec(string(data)); err != nil {
		return err
	}

	for _, u := range demoUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash demo password for %s: %w", u.username, err)
		}
		if _, err := db.Exec(
			`INSERT INTO user (username, password, is_admin) VALUES (?, ?, ?)`,
			u.username, string(hash), u.isAdmin,
		); err != nil {
			return fmt.Errorf("seed demo user %s: %w", u.username, err)
		}
	}

	return nil
}
