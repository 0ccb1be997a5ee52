package customer

import "time"

type Customer struct {
	CustomerID  int64     `db:"customer_id"`
	FirstName   string    `db:"first_name"`
	LastName    string    `db:"last_name"`
	Email       string    `db:"email"`
	Phone       string    `db:"phone"`
	Address     string    `db:"address"`
	DateOfBirth string    `db:"date_of_birth"` // YYYY-MM-DD
	DateCreated time.Time `db:"date_created"`
}
