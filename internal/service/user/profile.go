package user

import (
	"context"
	"fmt"

	"github.com/amteixeira/uvtrack-backend/internal/domain"
	"github.com/amteixeira/uvtrack-backend/pkg/ctxutil"
)

// GetProfile returns the caller's own profile.
func (s *Service) GetProfile(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.GetProfile: %w", err)
	}

	return u, nil
}

// GetByUsername returns another user's public profile.
func (s *Service) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("user.GetByUsername: %w", err)
	}

	return u, nil
}

// UpdateProfile changes the caller's username and/or about text.
// Returns ErrAlreadyExists when the new username is taken.
func (s *Service) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	u, err := s.users.Update(ctx, userID, domain.UserUpdateParams{
		Username: input.Username,
		AboutMe:  input.AboutMe,
	})
	if err != nil {
		return nil, fmt.Errorf("user.UpdateProfile: %w", err)
	}

	s.log.InfoContext(ctx, "profile updated", "user_id", userID)

	return u, nil
}
