package rag

import (
	"context"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/svergara/ramos-rag/llm"
	"github.com/svergara/ramos-rag/model"
	"go.uber.org/zap"
)

// FallbackAnswer is returned when retrieval produced no context at all.
// It is a defined success outcome with a fixed payload, not an error path,
// and it skips the second model call entirely.
const FallbackAnswer = "No tengo información específica sobre los cursos mencionados en la base de datos."

// Pipeline runs the two-stage RAG flow: classify the conversation against
// the course vocabulary, retrieve sections for the relevant codes, then
// generate an answer grounded in those sections.
type Pipeline struct {
	classifier *Classifier
	retriever  *Retriever
	generator  *Generator
	vocabulary *Vocabulary
}

func NewPipeline(client llm.Client, store CourseStore) *Pipeline {
	return &Pipeline{
		classifier: NewClassifier(client),
		retriever:  NewRetriever(store),
		generator:  NewGenerator(client),
		vocabulary: NewVocabulary(AvailableCourses),
	}
}

// Answer runs the stages strictly in order. Classification and generation
// failures propagate untouched; retrieval is best-effort and absorbed per
// code inside the retriever.
func (p *Pipeline) Answer(ctx context.Context, conversation []model.Message) (string, error) {
	codes, err := p.classifier.Classify(ctx, conversation, p.vocabulary)
	if err != nil {
		return "", err
	}

	courses := p.retriever.Retrieve(ctx, codes)
	if len(courses) == 0 {
		logger.Info("no course context retrieved, returning fallback answer",
			zap.Strings("codes", codes))
		return FallbackAnswer, nil
	}

	logger.Info("course context assembled", zap.Int("sections", len(courses)))
	return p.generator.Generate(ctx, conversation, courses)
}
