package rag

import (
	"context"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/SaiNageswarS/go-collection-boot/async"
	"github.com/svergara/ramos-rag/db"
	"go.uber.org/zap"
)

// CoursesPerCode caps how many sections a single course code may contribute
// to the answer context.
const CoursesPerCode = 5

// CourseStore is the slice of the record repository the retriever needs.
// *db.CourseRepository satisfies it.
type CourseStore interface {
	CoursesByCode(ctx context.Context, code string, limit int64) ([]db.CourseModel, error)
}

// Retriever fetches course sections for the classified codes.
type Retriever struct {
	store CourseStore
}

func NewRetriever(store CourseStore) *Retriever {
	return &Retriever{store: store}
}

// Retrieve looks up every code concurrently and returns whatever succeeded,
// in code order. A failed code is logged and skipped; partial context is
// acceptable and expected. An empty code set never touches the store.
func (r *Retriever) Retrieve(ctx context.Context, codes []string) []db.CourseModel {
	if len(codes) == 0 {
		return nil
	}

	tasks := make([]<-chan async.Result[[]db.CourseModel], 0, len(codes))
	for _, code := range codes {
		tasks = append(tasks, async.Go(func() ([]db.CourseModel, error) {
			return r.store.CoursesByCode(ctx, code, CoursesPerCode)
		}))
	}

	records := make([]db.CourseModel, 0, len(codes)*CoursesPerCode)
	for i, task := range tasks {
		courses, err := async.Await(task)
		if err != nil {
			logger.Error("course lookup failed, skipping code",
				zap.String("code", codes[i]), zap.Error(err))
			continue
		}
		if len(courses) > CoursesPerCode {
			courses = courses[:CoursesPerCode]
		}
		records = append(records, courses...)
	}

	return records
}
