// Package accounts implements the durable account store: registration,
// credential verification, and lookup. Credentials are stored as bcrypt
// digests and compared by hash, never as plaintext.
package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
	"golang.org/x/crypto/bcrypt"

	"wayfare/internal/database"
	"wayfare/models"
)

var (
	ErrInvalidInput       = errors.New("username and password are required")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotFound           = errors.New("account not found")
)

// Service provides account operations backed by the sqlite store.
type Service struct {
	db   *sql.DB
	cost int
}

// NewService returns an account service. A non-positive cost falls back to
// the bcrypt default.
func NewService(db *database.DB, cost int) *Service {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &Service{db: db.Connection(), cost: cost}
}

// Register creates a new account with an empty want-to-go list. The username
// must be unused; uniqueness is enforced by the store's unique index so
// concurrent registrations of the same name cannot both succeed.
func (s *Service) Register(ctx context.Context, username, password string) (*models.Account, error) {
	if username == "" || password == "" {
		return nil, ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account := &models.Account{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO accounts (id, username, password_hash, created_at) VALUES (?, ?, ?, ?)`,
		account.ID, account.Username, account.PasswordHash, account.CreatedAt)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("insert account: %w", err)
	}

	return account, nil
}

// Authenticate verifies the credentials and returns the matching account.
// Unknown usernames and wrong passwords both yield ErrInvalidCredentials so
// callers cannot probe for registered names.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*models.Account, error) {
	if username == "" || password == "" {
		return nil, ErrInvalidInput
	}

	account, err := s.Find(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return account, nil
}

// Find returns the account for the given username, or ErrNotFound.
func (s *Service) Find(ctx context.Context, username string) (*models.Account, error) {
	account := &models.Account{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, username, password_hash, created_at FROM accounts WHERE username = ?`,
		username).Scan(&account.ID, &account.Username, &account.PasswordHash, &account.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query account: %w", err)
	}
	return account, nil
}
