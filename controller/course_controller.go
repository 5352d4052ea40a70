package controller

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/SaiNageswarS/go-api-boot/odm"
	"github.com/SaiNageswarS/go-api-boot/server"
	"github.com/svergara/ramos-rag/db"
	"github.com/svergara/ramos-rag/middleware"
	"github.com/svergara/ramos-rag/model"
	"go.uber.org/zap"
)

type courseReader interface {
	CoursesByCode(ctx context.Context, code string, limit int64) ([]db.CourseModel, error)
	CourseByNRC(ctx context.Context, nrc string) (*db.CourseModel, error)
	Search(ctx context.Context, f db.CourseSearchFilter) ([]db.CourseModel, error)
}

// CourseController exposes plain reads over the course documents.
type CourseController struct {
	courses courseReader
}

func ProvideCourseController(mongo odm.MongoClient) *CourseController {
	return &CourseController{
		courses: db.NewCourseRepository(mongo, db.Tenant()),
	}
}

// HandleByCode lists every section of a course code.
func (cc *CourseController) HandleByCode(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		http.Error(w, "Query parameter 'code' is required", http.StatusBadRequest)
		return
	}

	courses, err := cc.courses.CoursesByCode(r.Context(), code, db.DefaultSearchLimit)
	if err != nil {
		logger.Error("failed to fetch courses by code", zap.String("code", code), zap.Error(err))
		http.Error(w, "Failed to fetch courses", http.StatusInternalServerError)
		return
	}

	writeJSON(w, model.NewCourseListResponse(courses))
}

// HandleByNRC returns the single section behind a unique NRC.
func (cc *CourseController) HandleByNRC(w http.ResponseWriter, r *http.Request) {
	nrc := r.URL.Query().Get("nrc")
	if nrc == "" {
		http.Error(w, "Query parameter 'nrc' is required", http.StatusBadRequest)
		return
	}

	course, err := cc.courses.CourseByNRC(r.Context(), nrc)
	if err != nil {
		logger.Error("failed to fetch course by nrc", zap.String("nrc", nrc), zap.Error(err))
		http.Error(w, "Failed to fetch course", http.StatusInternalServerError)
		return
	}
	if course == nil {
		http.Error(w, fmt.Sprintf("Course with NRC %s not found", nrc), http.StatusNotFound)
		return
	}

	writeJSON(w, model.NewCourseResponse(*course))
}

// HandleSearch runs the multi-criteria search. Every parameter is optional;
// criteria left empty are not applied.
func (cc *CourseController) HandleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := db.CourseSearchFilter{
		Name:       q.Get("name"),
		Code:       q.Get("code"),
		Professor:  q.Get("professor"),
		NRC:        q.Get("nrc"),
		Workload:   q.Get("workload"),
		Difficulty: q.Get("difficulty"),
	}

	if raw := q.Get("min_professor_rating"); raw != "" {
		rating, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			http.Error(w, "Invalid 'min_professor_rating' value", http.StatusBadRequest)
			return
		}
		filter.MinProfessorRating = &rating
	}

	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || limit <= 0 {
			http.Error(w, "Invalid 'limit' value", http.StatusBadRequest)
			return
		}
		filter.Limit = limit
	}

	courses, err := cc.courses.Search(r.Context(), filter)
	if err != nil {
		logger.Error("course search failed", zap.Error(err))
		http.Error(w, "Failed to search courses", http.StatusInternalServerError)
		return
	}

	writeJSON(w, model.NewCourseListResponse(courses))
}

func (cc *CourseController) Routes() []server.Route {
	return []server.Route{
		{
			Pattern: "/courses/by-code",
			Method:  http.MethodGet,
			Handler: middleware.RequestLogging(cc.HandleByCode),
		},
		{
			Pattern: "/courses/by-nrc",
			Method:  http.MethodGet,
			Handler: middleware.RequestLogging(cc.HandleByNRC),
		},
		{
			Pattern: "/courses/search",
			Method:  http.MethodGet,
			Handler: middleware.RequestLogging(cc.HandleSearch),
		},
	}
}
