package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/m-mizutani/relhook/pkg/domain/model"
	"github.com/m-mizutani/relhook/pkg/domain/types"
)

// handleHealth handles health check requests
func handleHealth(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := &model.HealthStatus{
			Status:  "healthy",
			Service: "relhook-listener",
			Version: types.Version,
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logger.Error("Failed to encode health response", "error", err)
		}
	}
}
