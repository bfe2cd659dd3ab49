package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"go_study_sheet/internal/config"
	"go_study_sheet/internal/webutil"
)

// HealthCheck は依存先の疎通確認。nil ならスキップ
type HealthCheck func(ctx context.Context) error

type HealthHandler struct {
	checks map[string]HealthCheck
	logger *slog.Logger
}

func NewHealthHandler(checks map[string]HealthCheck, logger *slog.Logger) *HealthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthHandler{checks: checks, logger: logger}
}

type healthResponse struct {
	Status  string            `json:"status"`
	App     string            `json:"app"`
	Version string            `json:"version"`
	Checks  map[string]string `json:"checks,omitempty"`
}

func (h *HealthHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "ok", App: config.AppName, Version: config.AppVersion}
	code := http.StatusOK

	if len(h.checks) > 0 {
		resp.Checks = make(map[string]string, len(h.checks))
		for name, check := range h.checks {
			if check == nil {
				continue
			}
			if err := check(r.Context()); err != nil {
				h.logger.Warn("Health check failed", slog.String("check", name), slog.Any("error", err))
				resp.Checks[name] = "unavailable"
				resp.Status = "degraded"
				code = http.StatusServiceUnavailable
				continue
			}
			resp.Checks[name] = "ok"
		}
	}
	webutil.RespondWithJSON(w, code, resp, h.logger)
}
