// Package adv provides use cases for the advertisement lifecycle.
// It implements creation, lookup, partial update and deletion, including
// input validation, owner resolution and the per-request unit of work.
package adv

import (
	"errors"
	"fmt"

	"advboard/internal/domain/entity"
)

// NotFoundError indicates that the referenced advertisement does not exist.
// The HTTP boundary renders it as 404.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("adv_id %d not found", e.ID)
}

// OwnerNotFoundError indicates that the owner nickname named in a creation
// request matches no user. A missing owner reference is treated as a client
// input error rather than a missing resource, so the HTTP boundary renders
// it as 400.
type OwnerNotFoundError struct {
	Nickname string
}

func (e *OwnerNotFoundError) Error() string {
	return fmt.Sprintf("user %s not found", e.Nickname)
}

// IsRequestError reports whether err is one of the request-facing error
// kinds (validation failure, unknown owner, missing advertisement). Anything
// else is a server-side failure. Callers use this to keep request-level
// errors from tripping the store circuit breaker and to pick response codes.
func IsRequestError(err error) bool {
	var violations entity.Violations
	var notFound *NotFoundError
	var ownerNotFound *OwnerNotFoundError
	return errors.As(err, &violations) ||
		errors.As(err, &notFound) ||
		errors.As(err, &ownerNotFound)
}
