package interaction

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Interactions are read-only in the UI; Create exists for seed data and tests.
type Service struct {
	repo Repository
	db   *sqlx.DB
}

func NewService(db *sqlx.DB) *Service {
	return &Service{
		db:   db,
		repo: New(db),
	}
}

func (s *Service) WithTx(ctx context.Context, fn func(*sqlx.Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (s *Service) GetAll(ctx context.Context) ([]Interaction, error) {
	return s.repo.GetAll(ctx)
}

func (s *Service) GetForCustomer(ctx context.Context, customerID int64) ([]Interaction, error) {
	return s.repo.GetForCustomer(ctx, customerID)
}

func (s *Service) Create(ctx context.Context, i *Interaction) (int64, error) {
	var id int64
	err := s.WithTx(ctx, func(tx *sqlx.Tx) error {
		var err error
		id, err = s.repo.Create(ctx, tx, i)
		return err
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}
