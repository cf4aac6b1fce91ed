package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/amteixeira/uvtrack-backend/internal/domain"
)

// AuthResult is returned by Login.
type AuthResult struct {
	AccessToken string
	User        *domain.User
}

// Login verifies the credentials and issues an access token.
// An unknown email and a wrong password both come back as ErrUnauthorized,
// so a caller cannot probe which accounts exist.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if err := input.Validate(); err != nil {
		return nil, err
	}

	u, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("user.Login: %w", err)
	}

	if !s.passwords.Compare(u.PasswordHash, input.Password) {
		return nil, domain.ErrUnauthorized
	}

	token, err := s.tokens.GenerateAccessToken(u.ID)
	if err != nil {
		return nil, fmt.Errorf("user.Login: issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in", "user_id", u.ID)

	return &AuthResult{AccessToken: token, User: u}, nil
}
