package db

import (
	"context"
	"os"

	"github.com/SaiNageswarS/go-api-boot/odm"
	"github.com/SaiNageswarS/go-collection-boot/async"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// DefaultSearchLimit caps multi-criteria searches when the caller does not
// ask for a limit of its own.
const DefaultSearchLimit = 50

// Tenant returns the Mongo database holding the course documents.
func Tenant() string {
	if name := os.Getenv("MONGODB_DB_NAME"); name != "" {
		return name
	}
	return "ramosdb"
}

// CourseRepository wraps the courses collection with the read operations the
// REST surface and the RAG retriever need.
type CourseRepository struct {
	col odm.OdmCollectionInterface[CourseModel]
}

func NewCourseRepository(mongo odm.MongoClient, tenant string) *CourseRepository {
	return &CourseRepository{
		col: odm.CollectionOf[CourseModel](mongo, tenant),
	}
}

// CoursesByCode returns all sections for a course code, up to limit.
// An empty result is not an error.
func (r *CourseRepository) CoursesByCode(ctx context.Context, code string, limit int64) ([]CourseModel, error) {
	return async.Await(r.col.Find(ctx, bson.M{"course_code": code}, nil, limit, 0))
}

// CourseByNRC returns the single section identified by nrc, or nil when no
// such section exists.
func (r *CourseRepository) CourseByNRC(ctx context.Context, nrc string) (*CourseModel, error) {
	courses, err := async.Await(r.col.Find(ctx, bson.M{"nrc": nrc}, nil, 1, 0))
	if err != nil {
		return nil, err
	}
	if len(courses) == 0 {
		return nil, nil
	}
	return &courses[0], nil
}

// CourseSearchFilter holds the optional criteria of the search endpoint.
// Zero values mean the criterion is not applied.
type CourseSearchFilter struct {
	Name               string
	Code               string
	Professor          string
	NRC                string
	Workload           string
	Difficulty         string
	MinProfessorRating *float64
	Limit              int64
}

// query builds the Mongo filter document. Name and professor match partially
// and case-insensitively; code, nrc, workload and difficulty match exactly.
func (f CourseSearchFilter) query() bson.M {
	filter := bson.M{}

	if f.Code != "" {
		filter["course_code"] = f.Code
	}
	if f.Name != "" {
		filter["course_name"] = bson.M{"$regex": f.Name, "$options": "i"}
	}
	if f.Professor != "" {
		filter["professor"] = bson.M{"$regex": f.Professor, "$options": "i"}
	}
	if f.NRC != "" {
		filter["nrc"] = f.NRC
	}
	if f.Workload != "" {
		filter["workload"] = f.Workload
	}
	if f.Difficulty != "" {
		filter["difficulty_level"] = f.Difficulty
	}
	if f.MinProfessorRating != nil {
		filter["professor_ratings.overall"] = bson.M{"$gte": *f.MinProfessorRating}
	}

	return filter
}

// Search returns the sections matching every criterion set on the filter.
func (r *CourseRepository) Search(ctx context.Context, f CourseSearchFilter) ([]CourseModel, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	return async.Await(r.col.Find(ctx, f.query(), nil, limit, 0))
}

// Ping issues a cheap query so the health endpoint can report database
// reachability.
func (r *CourseRepository) Ping(ctx context.Context) error {
	_, err := async.Await(r.col.Find(ctx, bson.M{}, nil, 1, 0))
	return err
}
