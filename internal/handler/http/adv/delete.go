package adv

import (
	"fmt"
	"net/http"

	"advboard/internal/handler/http/pathutil"
	"advboard/internal/handler/http/respond"
	advUC "advboard/internal/usecase/adv"
)

type DeleteHandler struct{ Svc advUC.Service }

// ServeHTTP handles DELETE /adv/{adv_id}. On success the response body is a
// JSON string confirming the deleted id.
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("adv_id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, fmt.Sprintf("Adv with id %d deleted", id))
}
