package adv

import (
	"encoding/json"
	"net/http"

	"advboard/internal/handler/http/pathutil"
	"advboard/internal/handler/http/respond"
	advUC "advboard/internal/usecase/adv"
)

type UpdateHandler struct{ Svc advUC.Service }

// ServeHTTP handles PATCH /adv/{adv_id}. Only title and desc are recognized
// fields; an "owner" key in the body is not decoded, so ownership can never
// change through an update.
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("adv_id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	var req struct {
		Title *string `json:"title"`
		Desc  *string `json:"desc"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "malformed JSON body")
		return
	}

	updated, err := h.Svc.Update(r.Context(), advUC.UpdateInput{
		ID:    id,
		Title: req.Title,
		Desc:  req.Desc,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, UpdatedDTO{
		Title:       updated.Title,
		Description: updated.Desc,
	})
}
