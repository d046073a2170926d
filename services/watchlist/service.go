// Package watchlist manages each account's want-to-go set of destination
// names.
package watchlist

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"wayfare/internal/database"
)

var (
	ErrEmptyDestination = errors.New("destination is required")
	ErrUserNotFound     = errors.New("user not found")
)

// AddOutcome reports whether an Add call changed the set.
type AddOutcome int

const (
	// OutcomeAdded means the destination was inserted.
	OutcomeAdded AddOutcome = iota
	// OutcomeAlreadyPresent means the destination was already a member and
	// nothing changed.
	OutcomeAlreadyPresent
)

// Service provides want-to-go list operations backed by the sqlite store.
type Service struct {
	db *sql.DB
}

// NewService returns a watchlist service.
func NewService(db *database.DB) *Service {
	return &Service{db: db.Connection()}
}

// Add inserts a destination into the account's want-to-go set. The insert is
// idempotent: membership is a primary key, so concurrent adds of the same
// destination resolve at the store with exactly one row and no lost updates.
func (s *Service) Add(ctx context.Context, username, destination string) (AddOutcome, error) {
	if destination == "" {
		return 0, ErrEmptyDestination
	}

	if err := s.ensureAccount(ctx, username); err != nil {
		return 0, err
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO want_to_go (username, destination, added_at) VALUES (?, ?, ?)
		 ON CONFLICT (username, destination) DO NOTHING`,
		username, destination, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("insert destination: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return OutcomeAlreadyPresent, nil
	}
	return OutcomeAdded, nil
}

// List returns the account's want-to-go destinations in insertion order. An
// empty list is not an error.
func (s *Service) List(ctx context.Context, username string) ([]string, error) {
	if err := s.ensureAccount(ctx, username); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT destination FROM want_to_go WHERE username = ? ORDER BY added_at, destination`,
		username)
	if err != nil {
		return nil, fmt.Errorf("query want-to-go list: %w", err)
	}
	defer rows.Close()

	destinations := []string{}
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("scan destination: %w", err)
		}
		destinations = append(destinations, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate want-to-go list: %w", err)
	}
	return destinations, nil
}

func (s *Service) ensureAccount(ctx context.Context, username string) error {
	var exists int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM accounts WHERE username = ?`, username).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrUserNotFound
		}
		return fmt.Errorf("query account: %w", err)
	}
	return nil
}
