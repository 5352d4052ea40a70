package controller

import (
	"encoding/json"
	"net/http"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// Headers may already be written; nothing left to tell the client.
		logger.Error("failed to encode response", zap.Error(err))
	}
}
