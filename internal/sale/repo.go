package sale

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// ErrNotFound is returned when no sale exists for the requested id.
var ErrNotFound = errors.New("sale not found")

type Repository interface {
	GetAll(ctx context.Context) ([]Sale, error)
	GetForCustomer(ctx context.Context, customerID int64) ([]Sale, error)
	Get(ctx context.Context, id int64) (*Sale, error)
	Create(ctx context.Context, tx *sqlx.Tx, s *Sale) (int64, error)
	TotalCents(ctx context.Context) (int64, error)
}

type repo struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) Repository {
	return &repo{db: db}
}

func (r *repo) GetAll(ctx context.Context) ([]Sale, error) {
	var out []Sale
	err := r.db.SelectContext(ctx, &out, getAllSalesSQL)
	if err != nil {
		return nil, fmt.Errorf("get all sales: %w", err)
	}
	return out, nil
}

func (r *repo) GetForCustomer(ctx context.Context, customerID int64) ([]Sale, error) {
	var out []Sale
	err := r.db.SelectContext(ctx, &out, getSalesForCustomerSQL, customerID)
	if err != nil {
		return nil, fmt.Errorf("get sales for customer: %w", err)
	}
	return out, nil
}

func (r *repo) Get(ctx context.Context, id int64) (*Sale, error) {
	var s Sale
	err := r.db.GetContext(ctx, &s, getSaleSQL, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w (%d)", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

func (r *repo) Create(ctx context.Context, tx *sqlx.Tx, s *Sale) (int64, error) {
	res, err := tx.ExecContext(ctx, createSaleSQL,
		s.CustomerID,
		s.SaleDate,
		s.AmountCents,
		s.Status,
	)
	if err != nil {
		return 0, fmt.Errorf("create sale: %w", err)
	}
	return res.LastInsertId()
}

func (r *repo) TotalCents(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.GetContext(ctx, &total, totalAmountSQL)
	if err != nil {
		return 0, fmt.Errorf("total sales: %w", err)
	}
	return total, nil
}
