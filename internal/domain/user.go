package domain

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// User represents a registered platform user.
type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	AboutMe      *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AvatarURL returns a gravatar-style identicon URL derived from the
// user's email, sized to the given pixel dimension.
func (u *User) AvatarURL(size int) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(u.Email))))
	digest := hex.EncodeToString(sum[:])
	return fmt.Sprintf("https://www.gravatar.com/avatar/%s?d=identicon&s=%d", digest, size)
}

// UserUpdateParams holds the mutable profile fields.
// Nil means "leave unchanged".
type UserUpdateParams struct {
	Username *string
	AboutMe  *string
}
