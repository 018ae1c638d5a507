package adv

import (
	"context"
	"fmt"
	"time"

	"advboard/internal/domain/entity"
	"advboard/internal/repository"
)

// CreateInput represents the input of a creation request. All three fields
// are required; pointers distinguish an absent key from an empty value.
// Owner is a nickname, not a foreign key.
type CreateInput struct {
	Title *string
	Desc  *string
	Owner *string
}

// UpdateInput represents the input of a partial update. Nil fields were not
// supplied and stay untouched. Ownership is not part of the schema: an
// "owner" key in a request body is dropped before it gets here.
type UpdateInput struct {
	ID    int64
	Title *string
	Desc  *string
}

// Detail is the read model of one advertisement with its owner resolved.
type Detail struct {
	Title     string
	Desc      string
	Owner     string
	CreatedAt time.Time
}

// Service implements the advertisement lifecycle. Every method runs as one
// unit of work: a failed flow leaves no partial writes.
type Service struct {
	Store repository.Store
}

// validateCreate checks the Create schema and reports every violation
// together, not just the first.
func validateCreate(in CreateInput) entity.Violations {
	var violations entity.Violations
	if in.Title == nil {
		violations = append(violations, entity.ValidationError{Field: "title", Reason: "field required"})
	} else if ve := entity.ValidateTitle(*in.Title); ve != nil {
		violations = append(violations, *ve)
	}
	if in.Desc == nil {
		violations = append(violations, entity.ValidationError{Field: "desc", Reason: "field required"})
	}
	if in.Owner == nil {
		violations = append(violations, entity.ValidationError{Field: "owner", Reason: "field required"})
	}
	return violations
}

// validateUpdate checks the Update schema. Both fields are optional; the
// title rule applies only when a title is supplied.
func validateUpdate(in UpdateInput) entity.Violations {
	var violations entity.Violations
	if in.Title != nil {
		if ve := entity.ValidateTitle(*in.Title); ve != nil {
			violations = append(violations, *ve)
		}
	}
	return violations
}

// Create validates the input, resolves the owner by nickname and inserts the
// advertisement. Validation runs strictly first: a malformed title never
// triggers an owner lookup. Returns the new advertisement's id.
func (s *Service) Create(ctx context.Context, in CreateInput) (int64, error) {
	if violations := validateCreate(in); len(violations) > 0 {
		return 0, violations
	}

	var id int64
	err := s.Store.WithinTx(ctx, func(tx repository.Tx) error {
		owner, err := tx.Users().GetByNickname(ctx, *in.Owner)
		if err != nil {
			return fmt.Errorf("resolve owner: %w", err)
		}
		if owner == nil {
			return &OwnerNotFoundError{Nickname: *in.Owner}
		}

		newAdv := &entity.Adv{
			Title:   *in.Title,
			Desc:    *in.Desc,
			OwnerID: owner.ID,
		}
		if err := tx.Advs().Insert(ctx, newAdv); err != nil {
			return fmt.Errorf("insert adv: %w", err)
		}
		id = newAdv.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Get retrieves one advertisement and resolves its owner's nickname.
// Returns NotFoundError if the advertisement does not exist. A persisted
// advertisement whose owner_id no longer resolves indicates out-of-band
// corruption and is surfaced as a server error, not a NotFound.
func (s *Service) Get(ctx context.Context, id int64) (*Detail, error) {
	var out *Detail
	err := s.Store.WithinTx(ctx, func(tx repository.Tx) error {
		found, err := tx.Advs().Get(ctx, id)
		if err != nil {
			return fmt.Errorf("get adv: %w", err)
		}
		if found == nil {
			return &NotFoundError{ID: id}
		}

		owner, err := tx.Users().Get(ctx, found.OwnerID)
		if err != nil {
			return fmt.Errorf("resolve owner: %w", err)
		}
		if owner == nil {
			return fmt.Errorf("adv %d references missing owner %d", found.ID, found.OwnerID)
		}

		out = &Detail{
			Title:     found.Title,
			Desc:      found.Desc,
			Owner:     owner.Nickname,
			CreatedAt: found.CreatedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Update applies the supplied fields onto an existing advertisement.
// Returns NotFoundError if the advertisement does not exist and the
// collected violations if a supplied field is invalid. OwnerID and
// CreatedAt are never changed. Returns the resulting title and desc.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.Adv, error) {
	var out *entity.Adv
	err := s.Store.WithinTx(ctx, func(tx repository.Tx) error {
		found, err := tx.Advs().Get(ctx, in.ID)
		if err != nil {
			return fmt.Errorf("get adv: %w", err)
		}
		if found == nil {
			return &NotFoundError{ID: in.ID}
		}

		if violations := validateUpdate(in); len(violations) > 0 {
			return violations
		}

		if in.Title != nil {
			found.Title = *in.Title
		}
		if in.Desc != nil {
			found.Desc = *in.Desc
		}

		if err := tx.Advs().Update(ctx, found); err != nil {
			return fmt.Errorf("update adv: %w", err)
		}
		out = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes an advertisement permanently.
// Returns NotFoundError if the advertisement does not exist.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.Store.WithinTx(ctx, func(tx repository.Tx) error {
		found, err := tx.Advs().Get(ctx, id)
		if err != nil {
			return fmt.Errorf("get adv: %w", err)
		}
		if found == nil {
			return &NotFoundError{ID: id}
		}
		if err := tx.Advs().Delete(ctx, found.ID); err != nil {
			return fmt.Errorf("delete adv: %w", err)
		}
		return nil
	})
}
