// Package user implements registration, login, and profile management.
package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/amteixeira/uvtrack-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type userRepo interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Update(ctx context.Context, userID uuid.UUID, params domain.UserUpdateParams) (*domain.User, error)
}

type passwordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

type tokenIssuer interface {
	GenerateAccessToken(userID uuid.UUID) (string, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the user business logic.
type Service struct {
	users     userRepo
	passwords passwordHasher
	tokens    tokenIssuer
	log       *slog.Logger
}

// NewService creates a new User service.
func NewService(log *slog.Logger, users userRepo, passwords passwordHasher, tokens tokenIssuer) *Service {
	return &Service{
		users:     users,
		passwords: passwords,
		tokens:    tokens,
		log:       log.With("service", "user"),
	}
}
