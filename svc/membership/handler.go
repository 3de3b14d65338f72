package membership

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

// Router mounts the membership lifecycle endpoints.
func Router(svc Service, log *slog.Logger) chi.Router {
	h := &handler{svc: svc, log: log}

	r := chi.NewRouter()
	r.Post("/", h.assign)
	r.Patch("/{id}/cancel", h.cancel)
	return r
}

type assignRequest struct {
	MemberID  string `json:"memberId"`
	PlanID    string `json:"planId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate,omitempty"`
}

func (h *handler) assign(w http.ResponseWriter, r *http.Request) {
	var req assignRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, r, h.log, err)
		return
	}

	if err := validator.Apply(
		validator.ValidUUID("memberId", req.MemberID),
		validator.ValidUUID("planId", req.PlanID),
		validator.ValidDate("startDate", req.StartDate),
		validator.OptionalDate("endDate", req.EndDate),
	); err != nil {
		httpx.Error(w, r, h.log, err)
		return
	}

	m, err := h.svc.Assign(r.Context(), AssignParams{
		MemberID:  uuid.MustParse(req.MemberID),
		PlanID:    uuid.MustParse(req.PlanID),
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		httpx.Error(w, r, h.log, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, m)
}

type cancelRequest struct {
	CancelDate string `json:"cancelDate"`
}

func (h *handler) cancel(w http.ResponseWriter, r *http.Request) {
	idParam := chi.URLParam(r, "id")

	var req cancelRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, r, h.log, err)
		return
	}

	if err := validator.Apply(
		validator.ValidUUID("id", idParam),
		validator.ValidDate("cancelDate", req.CancelDate),
	); err != nil {
		httpx.Error(w, r, h.log, err)
		return
	}

	m, err := h.svc.Cancel(r.Context(), uuid.MustParse(idParam), req.CancelDate)
	if err != nil {
		httpx.Error(w, r, h.log, err)
		return
	}
	httpx.JSON(w, http.StatusOK, m)
}
