package repository

import (
	"context"

	"advboard/internal/domain/entity"
)

type UserRepository interface {
	// GetByNickname retrieves a user by exact nickname match.
	// Returns (nil, nil) if no user matches.
	GetByNickname(ctx context.Context, nickname string) (*entity.User, error)
	// Get retrieves a user by id. Returns (nil, nil) if no user matches.
	Get(ctx context.Context, id int64) (*entity.User, error)
}
