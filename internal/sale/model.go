package sale

type Sale struct {
	SaleID      int64  `db:"sale_id"`
	CustomerID  int64  `db:"customer_id"`
	SaleDate    string `db:"sale_date"` // YYYY-MM-DD
	AmountCents int64  `db:"amount_cents"`
	Status      string `db:"status"`
}
