package checkin

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/fitstack/memberd/pkg/httpx"
	"github.com/fitstack/memberd/pkg/validator"
)

type handler struct {
	svc Service
	log *slog.Logger
}

// Router mounts the check-in endpoint.
func Router(svc Service, log *slog.Logger) chi.Router {
	h := &handler{svc: svc, log: log}

	r := chi.NewRouter()
	r.Post("/", h.create)
	return r
}

type createRequest struct {
	MemberID string `json:"memberId"`
}

func (h *handler) create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, r, h.log, err)
		return
	}

	if err := validator.Apply(validator.ValidUUID("memberId", req.MemberID)); err != nil {
		httpx.Error(w, r, h.log, err)
		return
	}

	c, err := h.svc.Record(r.Context(), uuid.MustParse(req.MemberID))
	if err != nil {
		httpx.Error(w, r, h.log, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, c)
}
