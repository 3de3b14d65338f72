package member

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

// Router mounts the member endpoints.
func Router(svc Service, log *slog.Logger) chi.Router {
	h := &handler{svc: svc, log: log}

	r := chi.NewRouter()
	r.Post("/", h.register)
	r.Get("/", h.list)
	r.Get("/{id}", h.summary)
	return r
}

type registerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (h *handler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, r, h.log, err)
		return
	}

	if err := validator.Apply(
		validator.RequiredString("name", req.Name),
		validator.MaxLen("name", req.Name, 255),
		validator.ValidEmail("email", req.Email),
		validator.MaxLen("email", req.Email, 255),
	); err != nil {
		httpx.Error(w, r, h.log, err)
		return
	}

	m, err := h.svc.Register(r.Context(), req.Name, req.Email)
	if err != nil {
		httpx.Error(w, r, h.log, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, m)
}

func (h *handler) list(w http.ResponseWriter, r *http.Request) {
	members, err := h.svc.List(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		httpx.Error(w, r, h.log, err)
		return
	}
	if members == nil {
		members = []Member{}
	}
	httpx.JSON(w, http.StatusOK, members)
}

func (h *handler) summary(w http.ResponseWriter, r *http.Request) {
	idParam := chi.URLParam(r, "id")
	if err := validator.Apply(validator.ValidUUID("id", idParam)); err != nil {
		httpx.Error(w, r, h.log, err)
		return
	}

	s, err := h.svc.Summary(r.Context(), uuid.MustParse(idParam))
	if err != nil {
		httpx.Error(w, r, h.log, err)
		return
	}
	httpx.JSON(w, http.StatusOK, s)
}
