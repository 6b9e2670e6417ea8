package dashboard

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"github.com/vukan322/devdash/internal/core"
	"github.com/vukan322/devdash/internal/http/api"
	"github.com/vukan322/devdash/internal/lib/sl"
	svg "github.com/vukan322/devdash/internal/render"
)

type dashboardService interface {
	Refresh(ctx context.Context, h core.Handles) (core.Dashboard, error)
}

type DashboardHandler struct {
	log      *slog.Logger
	service  dashboardService
	defaults core.Handles
}

func NewDashboardHandler(log *slog.Logger, s dashboardService, defaults core.Handles) *DashboardHandler {
	return &DashboardHandler{
		log:      log,
		service:  s,
		defaults: defaults,
	}
}

func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.dashboard.Get"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	d, ok := h.refresh(w, r, log)
	if !ok {
		return
	}

	render.JSON(w, r, d)
}

func (h *DashboardHandler) GetSVG(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.dashboard.GetSVG"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	d, ok := h.refresh(w, r, log)
	if !ok {
		return
	}

	out, err := svg.RenderSVG(d)
	if err != nil {
		log.Error("failed to render svg", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write(out)
}

// refresh writes the error response itself and reports whether d is usable.
func (h *DashboardHandler) refresh(w http.ResponseWriter, r *http.Request, log *slog.Logger) (core.Dashboard, bool) {
	handles := h.handles(r)
	log = log.With(slog.String("github", handles.GitHub), slog.String("leetcode", handles.LeetCode))

	d, err := h.service.Refresh(r.Context(), handles)
	switch {
	case err == nil:
		return d, true
	case errors.Is(err, core.ErrMissingHandle):
		log.Info("refresh rejected", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrMissingHandle, "github handle is required"))
	case errors.Is(err, core.ErrFetchFailure):
		log.Error("primary fetch failed", sl.Err(err))
		render.Status(r, http.StatusBadGateway)
		render.JSON(w, r, api.Error(api.ErrFetchFailure, err.Error()))
	default:
		log.Error("refresh failed", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
	}
	return core.Dashboard{}, false
}

func (h *DashboardHandler) handles(r *http.Request) core.Handles {
	q := r.URL.Query()
	handles := h.defaults
	if v := strings.TrimSpace(q.Get("github")); v != "" {
		handles.GitHub = v
	}
	if q.Has("leetcode") {
		handles.LeetCode = strings.TrimSpace(q.Get("leetcode"))
	}
	return handles
}
