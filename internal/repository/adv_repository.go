// Package repository defines the persistence interfaces the use cases depend on.
// Implementations live under internal/infra/adapter/persistence.
package repository

import (
	"context"

	"advboard/internal/domain/entity"
)

type AdvRepository interface {
	// Get retrieves an advertisement by id.
	// Returns (nil, nil) if no advertisement matches.
	Get(ctx context.Context, id int64) (*entity.Adv, error)
	// Insert persists a new advertisement. The store assigns ID and CreatedAt
	// and both are written back onto the entity.
	Insert(ctx context.Context, adv *entity.Adv) error
	// Update writes the mutable fields (title, desc) of an existing
	// advertisement. OwnerID and CreatedAt are never touched.
	Update(ctx context.Context, adv *entity.Adv) error
	// Delete removes the advertisement permanently.
	Delete(ctx context.Context, id int64) error
}
