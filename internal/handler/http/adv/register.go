package adv

import (
	"net/http"

	advUC "advboard/internal/usecase/adv"
)

// Register registers the advertisement HTTP handlers with the given mux.
// The {adv_id} segment is validated as digits-only in each handler; POST
// matches the collection path exactly.
func Register(mux *http.ServeMux, svc advUC.Service) {
	mux.Handle("POST   /adv/{$}", CreateHandler{Svc: svc})
	mux.Handle("GET    /adv/{adv_id}", GetHandler{Svc: svc})
	mux.Handle("PATCH  /adv/{adv_id}", UpdateHandler{Svc: svc})
	mux.Handle("DELETE /adv/{adv_id}", DeleteHandler{Svc: svc})
}
