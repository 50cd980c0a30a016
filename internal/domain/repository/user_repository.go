package repository

import (
	"context"
	"time"

	"github.com/craftly/craftly-api/internal/domain/entity"
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, u *entity.User) error

	// SetResetToken writes only the reset-token fields of the record
	// (partial-save semantics). ClearResetToken is its inverse.
	SetResetToken(ctx context.Context, id, tokenHash string, expiresAt time.Time) error
	ClearResetToken(ctx context.Context, id string) error

	// GetByResetToken returns the user whose stored token hash matches
	// and whose expiry is after now.
	GetByResetToken(ctx context.Context, tokenHash string, now time.Time) (*entity.User, error)
}
