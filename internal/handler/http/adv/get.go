package adv

import (
	"net/http"
	"time"

	"advboard/internal/handler/http/pathutil"
	"advboard/internal/handler/http/respond"
	advUC "advboard/internal/usecase/adv"
)

type GetHandler struct{ Svc advUC.Service }

// ServeHTTP handles GET /adv/{adv_id}. The id segment is digits-only; a
// non-numeric segment is a routing miss and never reaches the service.
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("adv_id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	detail, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, DetailDTO{
		Title:       detail.Title,
		Description: detail.Desc,
		Owner:       detail.Owner,
		CreatedAt:   detail.CreatedAt.Format(time.RFC3339),
	})
}
