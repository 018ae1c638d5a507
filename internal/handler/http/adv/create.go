package adv

import (
	"encoding/json"
	"net/http"

	"advboard/internal/handler/http/respond"
	advUC "advboard/internal/usecase/adv"
)

type CreateHandler struct{ Svc advUC.Service }

// ServeHTTP handles POST /adv/. The body must carry title, desc and owner
// (an existing user's nickname). Pointer fields keep "key absent" apart from
// "empty value" so the required-field rules see exactly what was supplied.
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title *string `json:"title"`
		Desc  *string `json:"desc"`
		Owner *string `json:"owner"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "malformed JSON body")
		return
	}

	id, err := h.Svc.Create(r.Context(), advUC.CreateInput{
		Title: req.Title,
		Desc:  req.Desc,
		Owner: req.Owner,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, CreatedDTO{Status: "success", ID: id})
}
