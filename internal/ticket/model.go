package ticket

type SupportTicket struct {
	TicketID         int64  `db:"ticket_id"`
	CustomerID       int64  `db:"customer_id"`
	CreationDate     string `db:"creation_date"` // YYYY-MM-DD
	IssueDescription string `db:"issue_description"`
	Status           string `db:"status"`
}
