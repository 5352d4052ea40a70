package controller

import (
	"context"
	"net/http"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/SaiNageswarS/go-api-boot/odm"
	"github.com/SaiNageswarS/go-api-boot/server"
	"github.com/svergara/ramos-rag/db"
	"github.com/svergara/ramos-rag/middleware"
	"github.com/svergara/ramos-rag/model"
	"go.uber.org/zap"
)

type professorReader interface {
	ByName(ctx context.Context, name string, limit int64) ([]db.ProfessorModel, error)
	All(ctx context.Context, limit int64) ([]db.ProfessorModel, error)
}

// ProfessorController exposes reads over the professor documents.
type ProfessorController struct {
	professors professorReader
}

func ProvideProfessorController(mongo odm.MongoClient) *ProfessorController {
	return &ProfessorController{
		professors: db.NewProfessorRepository(mongo, db.Tenant()),
	}
}

// HandleProfessors lists professors, filtered by partial name match when the
// 'name' parameter is present.
func (pc *ProfessorController) HandleProfessors(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")

	var (
		professors []db.ProfessorModel
		err        error
	)
	if name != "" {
		professors, err = pc.professors.ByName(r.Context(), name, db.DefaultSearchLimit)
	} else {
		professors, err = pc.professors.All(r.Context(), db.DefaultSearchLimit)
	}
	if err != nil {
		logger.Error("failed to fetch professors", zap.String("name", name), zap.Error(err))
		http.Error(w, "Failed to fetch professors", http.StatusInternalServerError)
		return
	}

	writeJSON(w, model.NewProfessorListResponse(professors))
}

func (pc *ProfessorController) Routes() []server.Route {
	return []server.Route{
		{
			Pattern: "/professors",
			Method:  http.MethodGet,
			Handler: middleware.RequestLogging(pc.HandleProfessors),
		},
	}
}
