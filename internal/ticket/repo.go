package ticket

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type Repository interface {
	GetAll(ctx context.Context) ([]SupportTicket, error)
	GetForCustomer(ctx context.Context, customerID int64) ([]SupportTicket, error)
	Create(ctx context.Context, tx *sqlx.Tx, st *SupportTicket) (int64, error)
}

type repo struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) Repository {
	return &repo{db: db}
}

func (r *repo) GetAll(ctx context.Context) ([]SupportTicket, error) {
	var out []SupportTicket
	err := r.db.SelectContext(ctx, &out, getAllTicketsSQL)
	if err != nil {
		return nil, fmt.Errorf("get all support tickets: %w", err)
	}
	return out, nil
}

func (r *repo) GetForCustomer(ctx context.Context, customerID int64) ([]SupportTicket, error) {
	var out []SupportTicket
	err := r.db.SelectContext(ctx, &out, getTicketsForCustomerSQL, customerID)
	if err != nil {
		return nil, fmt.Errorf("get support tickets for customer: %w", err)
	}
	return out, nil
}

func (r *repo) Create(ctx context.Context, tx *sqlx.Tx, st *SupportTicket) (int64, error) {
	res, err := tx.ExecContext(ctx, createTicketSQL,
		st.CustomerID,
		st.CreationDate,
		st.IssueDescription,
		st.Status,
	)
	if err != nil {
		return 0, fmt.Errorf("create support ticket: %w", err)
	}
	return res.LastInsertId()
}
