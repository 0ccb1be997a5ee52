package sale

import (
	"context"

	"github.com/jmoiron/sqlx"
)

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

func (s *Service) GetAll(ctx context.Context) ([]Sale, error) {
	return s.repo.GetAll(ctx)
}

func (s *Service) GetForCustomer(ctx context.Context, customerID int64) ([]Sale, error) {
	return s.repo.GetForCustomer(ctx, customerID)
}

func (s *Service) Get(ctx context.Context, id int64) (*Sale, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, sl *Sale) (*Sale, error) {
	var id int64
	err := s.WithTx(ctx, func(tx *sqlx.Tx) error {
		var err error
		id, err = s.repo.Create(ctx, tx, sl)
		return err
	})
	if err != nil {
		return nil, err
	}

	return s.repo.Get(ctx, id)
}

// Report holds the sale list together with the arithmetic sum of all
// amounts, in cents. TotalCents is 0 for an empty sale table.
type Report struct {
	Sales      []Sale
	TotalCents int64
}

func (s *Service) SalesReport(ctx context.Context) (*Report, error) {
	sales, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.TotalCents(ctx)
	if err != nil {
		return nil, err
	}
	return &Report{Sales: sales, TotalCents: total}, nil
}
