package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/amteixeira/uvtrack-backend/internal/domain"
)

// Register creates a new account with a bcrypt password hash.
// Returns ErrAlreadyExists when the username or email is taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Username = strings.TrimSpace(input.Username)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := s.passwords.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("user.Register: hash password: %w", err)
	}

	// Uniqueness of username and email is enforced by DB constraints.
	created, err := s.users.Create(ctx, &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
	})
	if err != nil {
		return nil, fmt.Errorf("user.Register: %w", err)
	}

	s.log.InfoContext(ctx, "user registered", "user_id", created.ID, "username", created.Username)

	return created, nil
}
