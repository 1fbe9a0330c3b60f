package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"giftwell/internal/campaign/designer"
	"giftwell/internal/campaign/models"
	"giftwell/internal/campaign/service"
	"giftwell/internal/campaign/store/draft"
	"giftwell/internal/campaign/store/session"
	"giftwell/internal/catalog"
	"giftwell/internal/contacts"
)

type staticFetcher struct{}

func (staticFetcher) FetchBundles(context.Context) ([]models.Bundle, error) {
	return catalog.DefaultBundles(), nil
}

func newTestRouter(t *testing.T) chi.Router {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := service.New(
		session.NewMemory(),
		draft.NewMemory(),
		catalog.New(staticFetcher{}),
		contacts.NewStaticDirectory(
			models.Contact{ID: "c1", Name: "Ada Chen", Email: "ada@acme.test", Company: "Acme"},
		),
		service.WithLogger(logger),
	)
	t.Cleanup(svc.Close)

	r := chi.NewRouter()
	New(svc, logger).Register(r)
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func createCampaign(t *testing.T, r http.Handler, name string) designer.State {
	t.Helper()
	rec := doJSON(t, r, http.MethodPost, "/campaigns", map[string]string{"name": name})
	require.Equal(t, http.StatusCreated, rec.Code)

	var state designer.State
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	return state
}

func TestCreateAndGetCampaign(t *testing.T) {
	r := newTestRouter(t)

	state := createCampaign(t, r, "Q4 Thanks")
	require.Equal(t, "Q4 Thanks", state.Name)
	require.Equal(t, models.StatusDraft, state.Status)

	rec := doJSON(t, r, http.MethodGet, "/campaigns/"+state.ID.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got designer.State
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, state.ID, got.ID)
}

func TestGetUnknownCampaignEnvelope(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/campaigns/2d1f9f3a-1111-4222-8333-444455556666", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var envelope struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Equal(t, "not_found", envelope.Error.Code)
	require.NotEmpty(t, envelope.Error.Message)
}

func TestInvalidCampaignID(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/campaigns/not-a-uuid", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestApplyEvents(t *testing.T) {
	r := newTestRouter(t)
	state := createCampaign(t, r, "Events")
	base := "/campaigns/" + state.ID.String()

	rec := doJSON(t, r, http.MethodPost, base+"/events", map[string]any{
		"kind":      "select_bundle",
		"bundle_id": "classic-office",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var got designer.State
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.NotNil(t, got.Bundle)
	require.NotEmpty(t, got.Selection.SelectedGiftID)

	rec = doJSON(t, r, http.MethodPost, base+"/events", map[string]any{
		"kind": "bogus",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, r, http.MethodPost, base+"/events", map[string]any{
		"kind": "set_budget_window",
		"min":  50,
		"max":  20,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code, "reducer validation surfaces as 400")
}

func TestLaunchFlow(t *testing.T) {
	r := newTestRouter(t)
	state := createCampaign(t, r, "Launchable")
	base := "/campaigns/" + state.ID.String()

	steps := []map[string]any{
		{"kind": "set_goal_motion", "goal": "quick-send", "motion": "express-send"},
		{"kind": "select_bundle", "bundle_id": "classic-office"},
		{"kind": "quick_add_contact", "email": "dana@initech.test"},
	}
	for _, step := range steps {
		rec := doJSON(t, r, http.MethodPost, base+"/events", step)
		require.Equal(t, http.StatusOK, rec.Code, fmt.Sprintf("step %v", step["kind"]))
	}

	rec := doJSON(t, r, http.MethodPost, base+"/launch", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var launched models.CampaignDraft
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &launched))
	require.Equal(t, models.StatusLaunched, launched.Status)
	require.Equal(t, 1, launched.RecipientCount)

	rec = doJSON(t, r, http.MethodPost, base+"/launch", nil)
	require.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(t, r, http.MethodPost, base+"/events", map[string]any{"kind": "set_name", "name": "Too Late"})
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestSaveDraftAndList(t *testing.T) {
	r := newTestRouter(t)
	state := createCampaign(t, r, "Saved")

	rec := doJSON(t, r, http.MethodPost, "/campaigns/"+state.ID.String()+"/draft", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/drafts", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var drafts []models.CampaignDraft
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &drafts))
	require.Len(t, drafts, 1)
	require.Equal(t, "Saved", drafts[0].Name)
}

func TestBundlesEndpoint(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/bundles", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var bundles []models.Bundle
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &bundles))
	require.Len(t, bundles, 3)
}

func TestContactQueryAccepted(t *testing.T) {
	r := newTestRouter(t)
	state := createCampaign(t, r, "Search")
	base := "/campaigns/" + state.ID.String()

	rec := doJSON(t, r, http.MethodPost, base+"/contacts/query", map[string]string{"query": "acme"})
	require.Equal(t, http.StatusAccepted, rec.Code)

	rec = doJSON(t, r, http.MethodGet, base+"/contacts", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var results []models.Contact
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &results))
	// The quiet period has not elapsed, so results are still empty.
	require.Empty(t, results)
}

func TestHealthz(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}
