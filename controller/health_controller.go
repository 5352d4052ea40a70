package controller

import (
	"context"
	"net/http"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/SaiNageswarS/go-api-boot/odm"
	"github.com/SaiNageswarS/go-api-boot/server"
	"github.com/svergara/ramos-rag/db"
	"go.uber.org/zap"
)

const (
	appName    = "ramos-rag"
	appVersion = "0.1.0"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// HealthController serves the root welcome payload and the health check.
type HealthController struct {
	database pinger
}

func ProvideHealthController(mongo odm.MongoClient) *HealthController {
	return &HealthController{
		database: db.NewCourseRepository(mongo, db.Tenant()),
	}
}

func (hc *HealthController) HandleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{
		"message": "Bienvenido a la API de ramos",
		"name":    appName,
		"version": appVersion,
	})
}

// HandleHealth reports service liveness plus database reachability. Always
// 200; a broken database shows up as "degraded".
func (hc *HealthController) HandleHealth(w http.ResponseWriter, r *http.Request) {
	status := "healthy"
	database := "connected"

	if err := hc.database.Ping(r.Context()); err != nil {
		logger.Error("health check database ping failed", zap.Error(err))
		status = "degraded"
		database = "disconnected"
	}

	writeJSON(w, map[string]string{
		"status":   status,
		"database": database,
	})
}

func (hc *HealthController) Routes() []server.Route {
	return []server.Route{
		{
			Pattern: "/",
			Method:  http.MethodGet,
			Handler: hc.HandleRoot,
		},
		{
			Pattern: "/health",
			Method:  http.MethodGet,
			Handler: hc.HandleHealth,
		},
	}
}
