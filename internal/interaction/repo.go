package interaction

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type Repository interface {
	GetAll(ctx context.Context) ([]Interaction, error)
	GetForCustomer(ctx context.Context, customerID int64) ([]Interaction, error)
	Create(ctx context.Context, tx *sqlx.Tx, i *Interaction) (int64, error)
}

type repo struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) Repository {
	return &repo{db: db}
}

func (r *repo) GetAll(ctx context.Context) ([]Interaction, error) {
	var out []Interaction
	err := r.db.SelectContext(ctx, &out, getAllInteractionsSQL)
	if err != nil {
		return nil, fmt.Errorf("get all interactions: %w", err)
	}
	return out, nil
}

func (r *repo) GetForCustomer(ctx context.Context, customerID int64) ([]Interaction, error) {
	var out []Interaction
	err := r.db.SelectContext(ctx, &out, getInteractionsForCustomerSQL, customerID)
	if err != nil {
		return nil, fmt.Errorf("get interactions for customer: %w", err)
	}
	return out, nil
}

func (r *repo) Create(ctx context.Context, tx *sqlx.Tx, i *Interaction) (int64, error) {
	res, err := tx.ExecContext(ctx, createInteractionSQL,
		i.CustomerID,
		i.InteractionDate,
		i.Type,
		i.Notes,
	)
	if err != nil {
		return 0, fmt.Errorf("create interaction: %w", err)
	}
	return res.LastInsertId()
}
