package user

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials covers both an unknown username and a wrong
// password. Callers must surface the same message for either case so
// usernames cannot be enumerated through the login form.
var ErrInvalidCredentials = errors.New("invalid username or password")

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

func (s *Service) Get(ctx context.Context, id int64) (*User, error) {
	return s.repo.Get(ctx, id)
}

// Register creates a user with the password stored as a bcrypt hash.
// A duplicate username surfaces as the store's unique constraint error.
func (s *Service) Register(ctx context.Context, username, password string, isAdmin bool) (*User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &User{
		Username: username,
		Password: string(hash),
		IsAdmin:  isAdmin,
	}

	var id int64
	err = s.WithTx(ctx, func(tx *sqlx.Tx) error {
		id, err = s.repo.Create(ctx, tx, u)
		return err
	})
	if err != nil {
		return nil, err
	}

	return s.repo.Get(ctx, id)
}

// Authenticate verifies a username/password pair. It returns
// ErrInvalidCredentials for both a missing user and a hash mismatch.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*User, error) {
	u, err := s.repo.GetByUsername(ctx, username)
	if errors.Is(err, ErrNotFound) {
		// Burn a comparison anyway so the two failure paths take
		// similar time.
		bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return u, nil
}

// A valid bcrypt hash of an unguessable string, used to equalize timing
// when the username does not exist.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")
