package rag

import (
	"context"
	"fmt"
	"strings"

	"github.com/SaiNageswarS/go-collection-boot/linq"
	"github.com/svergara/ramos-rag/db"
	"github.com/svergara/ramos-rag/llm"
	"github.com/svergara/ramos-rag/model"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// maxProsAndCons limits how many pros and cons a single section contributes
// to the prompt context.
const maxProsAndCons = 3

const answerPromptTemplate = `Eres un asistente académico que responde preguntas sobre cursos universitarios usando SOLO la información proporcionada.

INFORMACIÓN DE CURSOS DISPONIBLE:
%s

ÚLTIMA PREGUNTA DEL USUARIO:
%s

INSTRUCCIONES CRÍTICAS:
- Responde SOLO usando la información de cursos proporcionada arriba
- Si la información no está en el contexto, di "No tengo esa información específica disponible"
- Sé BREVE: máximo 3-4 oraciones
- Responde directamente la pregunta, sin introducciones largas
- Usa datos concretos del contexto (nombres, siglas, ratings, etc.)
- Responde en el mismo idioma del usuario

RESPUESTA BREVE:`

// Generator produces the grounded answer from the retrieved sections.
type Generator struct {
	llm llm.Client
}

func NewGenerator(client llm.Client) *Generator {
	return &Generator{llm: client}
}

// Generate answers the most recent user message using only the retrieved
// course context. The pipeline never calls it with empty context.
func (g *Generator) Generate(ctx context.Context, conversation []model.Message, courses []db.CourseModel) (string, error) {
	contextBlock, err := renderCoursesContext(ctx, courses)
	if err != nil {
		return "", status.Errorf(codes.Internal, "render course context: %v", err)
	}

	prompt := fmt.Sprintf(answerPromptTemplate, contextBlock, lastUserMessage(conversation))

	answer, err := g.llm.GenerateText(ctx, prompt)
	if err != nil {
		return "", status.Errorf(codes.Internal, "generate answer: %v", err)
	}

	return strings.TrimSpace(answer), nil
}

// lastUserMessage scans the conversation from the end for the question to
// answer. Empty string when no user message exists.
func lastUserMessage(conversation []model.Message) string {
	for i := len(conversation) - 1; i >= 0; i-- {
		if conversation[i].Role == model.RoleUser {
			return conversation[i].Content
		}
	}
	return ""
}

// renderCoursesContext formats the sections into one compact paragraph each.
func renderCoursesContext(ctx context.Context, courses []db.CourseModel) (string, error) {
	blocks := make([]string, 0, len(courses))

	_, err := linq.Pipe2(
		linq.FromSlice(ctx, courses),
		linq.Select(renderCourse),
		linq.ForEach(func(block string) {
			blocks = append(blocks, block)
		}),
	)
	if err != nil {
		return "", err
	}

	return strings.Join(blocks, "\n\n"), nil
}

// renderCourse writes one section as a single context paragraph. Optional
// fields are left out entirely rather than rendered as placeholders.
func renderCourse(c db.CourseModel) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s (%s) - Profesor: %s", c.CourseName, c.CourseCode, c.Professor)

	if len(c.ProfessorRatings) > 0 && c.ProfessorRatings[0].Overall != nil {
		fmt.Fprintf(&b, " - Rating: %.1f", *c.ProfessorRatings[0].Overall)
	}
	if c.Workload != "" {
		fmt.Fprintf(&b, " - Carga: %s", c.Workload)
	}
	if c.DifficultyLevel != "" {
		fmt.Fprintf(&b, " - Dificultad: %s", c.DifficultyLevel)
	}
	if c.Campus != "" {
		fmt.Fprintf(&b, " - Campus: %s", c.Campus)
	}
	if c.AvailableSlots != nil && c.TotalSlots != nil {
		fmt.Fprintf(&b, " - Cupos: %d/%d", *c.AvailableSlots, *c.TotalSlots)
	}
	if c.OverallSummary != "" {
		fmt.Fprintf(&b, "\n  Resumen: %s", c.OverallSummary)
	}
	if len(c.Pros) > 0 {
		fmt.Fprintf(&b, "\n  Pros: %s", strings.Join(capped(c.Pros), ", "))
	}
	if len(c.Cons) > 0 {
		fmt.Fprintf(&b, "\n  Contras: %s", strings.Join(capped(c.Cons), ", "))
	}

	return b.String()
}

func capped(items []string) []string {
	if len(items) > maxProsAndCons {
		return items[:maxProsAndCons]
	}
	return items
}
