package feed

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	dto "results_feed/internal/api/dto/feed"
	"results_feed/internal/model"
)

type stubService struct {
	window  model.Window
	applied bool
}

func (s *stubService) Start(context.Context) error { return nil }
func (s *stubService) Stop() error                 { return nil }
func (s *stubService) Window() model.Window        { return s.window }
func (s *stubService) Refresh(context.Context) (model.Window, bool) {
	return s.window, s.applied
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) dto.WindowResponse {
	t.Helper()
	var out dto.WindowResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

func TestHandler_WindowLoading(t *testing.T) {
	h := NewHandler(HandlerDeps{Serv: &stubService{window: model.Window{State: model.WindowStateLoading}}, Location: time.UTC})

	rec := httptest.NewRecorder()
	h.Window(rec, httptest.NewRequest(http.MethodGet, "/feed", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"state":"loading","generation":0,"refreshed_at":null,"results":[]}`, rec.Body.String())
}

func TestHandler_WindowReady(t *testing.T) {
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	svc := &stubService{window: model.Window{
		State:       model.WindowStateReady,
		Generation:  4,
		RefreshedAt: at,
		Outcomes: []model.Outcome{
			{ID: "a", RollValue: 0, ObservedAt: at, Provenance: model.ProvenanceRemote},
			{ID: "mock-b", RollValue: 12, ObservedAt: at.Add(-time.Minute), Provenance: model.ProvenanceSynthetic},
		},
	}}
	h := NewHandler(HandlerDeps{Serv: svc, Location: time.UTC})

	rec := httptest.NewRecorder()
	h.Window(rec, httptest.NewRequest(http.MethodGet, "/feed", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	out := decode(t, rec)
	assert.Equal(t, "ready", out.State)
	assert.Equal(t, uint64(4), out.Generation)
	require.NotNil(t, out.RefreshedAt)
	require.Len(t, out.Results, 2)

	assert.Equal(t, dto.OutcomeResponse{
		ID: "a", Roll: 0, Category: "white", CreatedAt: at, Time: "00:00", Synthetic: false,
	}, out.Results[0])
	assert.Equal(t, "black", out.Results[1].Category)
	assert.Equal(t, "23:59", out.Results[1].Time)
	assert.True(t, out.Results[1].Synthetic)
}

func TestHandler_Refresh(t *testing.T) {
	svc := &stubService{window: model.Window{State: model.WindowStateReady, Generation: 2}, applied: true}
	h := NewHandler(HandlerDeps{Serv: svc})

	rec := httptest.NewRecorder()
	h.Refresh(rec, httptest.NewRequest(http.MethodPost, "/feed/refresh", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	svc.applied = false
	rec = httptest.NewRecorder()
	h.Refresh(rec, httptest.NewRequest(http.MethodPost, "/feed/refresh", nil))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, uint64(2), decode(t, rec).Generation)
}

func TestHandler_Health(t *testing.T) {
	h := NewHandler(HandlerDeps{Serv: &stubService{}})
	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHandler_WriteErrorLogged(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	h := NewHandler(HandlerDeps{Serv: &stubService{}, Logger: zap.New(core)})

	rec := httptest.NewRecorder()
	h.write(rec, httptest.NewRequest(http.MethodGet, "/feed", nil), http.StatusOK, map[string]any{"bad": func() {}})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "failed to write response", logs.All()[0].Message)
}
