package adv

import (
	"errors"
	"net/http"

	"advboard/internal/domain/entity"
	"advboard/internal/handler/http/respond"
	advUC "advboard/internal/usecase/adv"
)

// writeServiceError maps a use case error onto the HTTP error envelope.
// Validation failures carry the structured violation list; unknown owners
// and missing advertisements carry their message; anything else is a server
// error whose details are logged, not leaked.
func writeServiceError(w http.ResponseWriter, err error) {
	var violations entity.Violations
	if errors.As(err, &violations) {
		respond.Error(w, http.StatusBadRequest, violations)
		return
	}

	var ownerNotFound *advUC.OwnerNotFoundError
	if errors.As(err, &ownerNotFound) {
		respond.Error(w, http.StatusBadRequest, ownerNotFound.Error())
		return
	}

	var notFound *advUC.NotFoundError
	if errors.As(err, &notFound) {
		respond.Error(w, http.StatusNotFound, notFound.Error())
		return
	}

	respond.Internal(w, err)
}
