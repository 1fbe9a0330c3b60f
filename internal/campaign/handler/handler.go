package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"giftwell/internal/campaign/designer"
	"giftwell/internal/campaign/models"
	"giftwell/internal/platform/middleware"
	dErrors "giftwell/pkg/domain-errors"
)

// Service defines the campaign operations the HTTP layer depends on.
type Service interface {
	Create(ctx context.Context, name string) (designer.State, error)
	Get(ctx context.Context, id uuid.UUID) (designer.State, error)
	Apply(ctx context.Context, id uuid.UUID, event designer.Event) (designer.State, error)
	SelectBundle(ctx context.Context, id uuid.UUID, bundleID string) (designer.State, error)
	InstallRecipientList(ctx context.Context, id uuid.UUID, listID string) (designer.State, error)
	SaveDraft(ctx context.Context, id uuid.UUID) (models.CampaignDraft, error)
	Launch(ctx context.Context, id uuid.UUID) (models.CampaignDraft, error)
	Drafts(ctx context.Context) ([]models.CampaignDraft, error)
	Bundles(ctx context.Context) ([]models.Bundle, error)
	QueryContacts(ctx context.Context, id uuid.UUID, query string) error
	ContactResults(ctx context.Context, id uuid.UUID) ([]models.Contact, error)
}

// Handler exposes the campaign designer over HTTP.
type Handler struct {
	svc    Service
	logger *slog.Logger
}

func New(svc Service, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

// Register mounts the campaign routes on the router.
func (h *Handler) Register(r chi.Router) {
	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.Recoverer)
	router.Use(chimiddleware.Timeout(30 * time.Second))
	router.Use(middleware.RequestLogger(h.logger))

	router.Get("/healthz", h.handleHealth)
	router.Get("/bundles", h.handleBundles)
	router.Get("/drafts", h.handleDrafts)

	router.Route("/campaigns", func(r chi.Router) {
		r.Post("/", h.handleCreate)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.handleGet)
			r.Post("/events", h.handleEvent)
			r.Post("/draft", h.handleSaveDraft)
			r.Post("/launch", h.handleLaunch)
			r.Get("/contacts", h.handleContactResults)
			r.Post("/contacts/query", h.handleQueryContacts)
		})
	})

	r.Mount("/", router)
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) handleBundles(w http.ResponseWriter, r *http.Request) {
	bundles, err := h.svc.Bundles(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bundles)
}

func (h *Handler) handleDrafts(w http.ResponseWriter, r *http.Request) {
	drafts, err := h.svc.Drafts(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	if drafts == nil {
		drafts = []models.CampaignDraft{}
	}
	writeJSON(w, http.StatusOK, drafts)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	state, err := h.svc.Create(r.Context(), req.Name)
	if err != nil {
		h.logError(r, "create campaign failed", err)
		WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, state)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.campaignID(w, r)
	if !ok {
		return
	}
	state, err := h.svc.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func (h *Handler) handleEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := h.campaignID(w, r)
	if !ok {
		return
	}

	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	state, err := h.applyEvent(r.Context(), id, req)
	if err != nil {
		if dErrors.Is(err, dErrors.CodeInternal) {
			h.logError(r, "apply event failed", err)
		}
		WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

// applyEvent routes the two kinds that need backend resolution through the
// service helpers; everything else goes straight to the reducer.
func (h *Handler) applyEvent(ctx context.Context, id uuid.UUID, req eventRequest) (designer.State, error) {
	switch req.Kind {
	case "select_bundle":
		return h.svc.SelectBundle(ctx, id, req.BundleID)
	case "set_recipient_list":
		if req.ListID != "" {
			return h.svc.InstallRecipientList(ctx, id, req.ListID)
		}
	}

	event, err := req.toEvent()
	if err != nil {
		return designer.State{}, err
	}
	return h.svc.Apply(ctx, id, event)
}

func (h *Handler) handleSaveDraft(w http.ResponseWriter, r *http.Request) {
	id, ok := h.campaignID(w, r)
	if !ok {
		return
	}
	draft, err := h.svc.SaveDraft(r.Context(), id)
	if err != nil {
		if dErrors.Is(err, dErrors.CodeInternal) {
			h.logError(r, "save draft failed", err)
		}
		WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

func (h *Handler) handleLaunch(w http.ResponseWriter, r *http.Request) {
	id, ok := h.campaignID(w, r)
	if !ok {
		return
	}
	draft, err := h.svc.Launch(r.Context(), id)
	if err != nil {
		if dErrors.Is(err, dErrors.CodeInternal) {
			h.logError(r, "launch failed", err)
		}
		WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

func (h *Handler) handleQueryContacts(w http.ResponseWriter, r *http.Request) {
	id, ok := h.campaignID(w, r)
	if !ok {
		return
	}

	var req queryContactsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	if err := h.svc.QueryContacts(r.Context(), id, req.Query); err != nil {
		WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

func (h *Handler) handleContactResults(w http.ResponseWriter, r *http.Request) {
	id, ok := h.campaignID(w, r)
	if !ok {
		return
	}

	results, err := h.svc.ContactResults(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}
	if results == nil {
		results = []models.Contact{}
	}
	writeJSON(w, http.StatusOK, results)
}

func (h *Handler) campaignID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid campaign id"))
		return uuid.UUID{}, false
	}
	return id, true
}

func (h *Handler) logError(r *http.Request, msg string, err error) {
	h.logger.ErrorContext(r.Context(), msg,
		"request_id", chimiddleware.GetReqID(r.Context()),
		"error", err,
	)
}
