package interaction

import "database/sql"

type Interaction struct {
	InteractionID   int64          `db:"interaction_id"`
	CustomerID      int64          `db:"customer_id"`
	InteractionDate string         `db:"interaction_date"` // YYYY-MM-DD
	Type            string         `db:"type"`
	Notes           sql.NullString `db:"notes"`
}
