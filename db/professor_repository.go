package db

import (
	"context"

	"github.com/SaiNageswarS/go-api-boot/odm"
	"github.com/SaiNageswarS/go-collection-boot/async"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// ProfessorRepository wraps the professors collection.
type ProfessorRepository struct {
	col odm.OdmCollectionInterface[ProfessorModel]
}

func NewProfessorRepository(mongo odm.MongoClient, tenant string) *ProfessorRepository {
	return &ProfessorRepository{
		col: odm.CollectionOf[ProfessorModel](mongo, tenant),
	}
}

// ByName returns professors whose name matches partially and
// case-insensitively.
func (r *ProfessorRepository) ByName(ctx context.Context, name string, limit int64) ([]ProfessorModel, error) {
	filter := bson.M{"name": bson.M{"$regex": name, "$options": "i"}}
	return async.Await(r.col.Find(ctx, filter, nil, limit, 0))
}

// All lists professors up to limit.
func (r *ProfessorRepository) All(ctx context.Context, limit int64) ([]ProfessorModel, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	return async.Await(r.col.Find(ctx, bson.M{}, nil, limit, 0))
}
