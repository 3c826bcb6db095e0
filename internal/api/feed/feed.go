package feed

import (
	"net/http"
	dto "results_feed/internal/api/dto/feed"
	"results_feed/internal/converter"
	"results_feed/internal/service"
	"results_feed/pkg/resp"
	"time"

	"go.uber.org/zap"
)

type HandlerDeps struct {
	Serv     service.FeedService
	Location *time.Location
	Logger   *zap.Logger
}

type Handler struct {
	serv   service.FeedService
	loc    *time.Location
	logger *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	loc := deps.Location
	if loc == nil {
		loc = time.Local
	}
	l := deps.Logger
	if l == nil {
		l = zap.NewNop()
	}
	return &Handler{serv: deps.Serv, loc: loc, logger: l.Named("feed-api")}
}

// Window Текущий снимок окна. В состоянии loading список пустой.
func (h *Handler) Window(w http.ResponseWriter, r *http.Request) {
	h.write(w, r, http.StatusOK, converter.ToWindowResponse(h.serv.Window(), h.loc))
}

// Refresh Внеочередное обновление. 409, если цикл уже идёт или опрос остановлен.
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	window, applied := h.serv.Refresh(r.Context())
	status := http.StatusOK
	if !applied {
		status = http.StatusConflict
	}
	h.write(w, r, status, converter.ToWindowResponse(window, h.loc))
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.write(w, r, http.StatusOK, dto.HealthResponse{Status: "ok"})
}

func (h *Handler) write(w http.ResponseWriter, r *http.Request, status int, payload any) {
	if err := resp.WriteJSONResponse(w, status, payload); err != nil {
		h.logger.Error("failed to write response", zap.String("path", r.URL.Path), zap.Error(err))
	}
}
