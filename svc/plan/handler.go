package plan

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fitstack/memberd/pkg/httpx"
)

type handler struct {
	store Store
	log   *slog.Logger
}

// Router mounts the plan catalog endpoints.
func Router(store Store, log *slog.Logger) chi.Router {
	h := &handler{store: store, log: log}

	r := chi.NewRouter()
	r.Get("/", h.list)
	return r
}

func (h *handler) list(w http.ResponseWriter, r *http.Request) {
	plans, err := h.store.List(r.Context())
	if err != nil {
		httpx.Error(w, r, h.log, err)
		return
	}
	if plans == nil {
		plans = []Plan{}
	}
	httpx.JSON(w, http.StatusOK, plans)
}
