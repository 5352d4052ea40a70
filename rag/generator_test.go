package rag

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/svergara/ramos-rag/db"
	"github.com/svergara/ramos-rag/model"
)

func TestLastUserMessage(t *testing.T) {
	conversation := []model.Message{
		{Role: model.RoleUser, Content: "primera"},
		{Role: model.RoleAssistant, Content: "respuesta"},
		{Role: model.RoleUser, Content: "segunda"},
		{Role: model.RoleAssistant, Content: "otra respuesta"},
	}

	if got := lastUserMessage(conversation); got != "segunda" {
		t.Fatalf("expected most recent user message, got %q", got)
	}

	onlyAssistant := []model.Message{{Role: model.RoleAssistant, Content: "hola"}}
	if got := lastUserMessage(onlyAssistant); got != "" {
		t.Fatalf("expected empty string without user messages, got %q", got)
	}
}

func TestRenderCourse_FullRecord(t *testing.T) {
	overall := 4.5
	available, total := 12, 40
	course := db.CourseModel{
		CourseCode:      "ICS1113",
		CourseName:      "Optimización",
		Professor:       "Klapp Mathias",
		Campus:          "San Joaquín",
		Workload:        "intensa",
		DifficultyLevel: "alta",
		AvailableSlots:  &available,
		TotalSlots:      &total,
		OverallSummary:  "Curso exigente pero muy bien evaluado",
		Pros:            []string{"buen profesor", "material claro", "ayudantías útiles", "un cuarto pro"},
		Cons:            []string{"mucha carga"},
		ProfessorRatings: []db.ProfessorRating{
			{Name: "Klapp Mathias", Overall: &overall},
		},
	}

	block := renderCourse(course)

	for _, want := range []string{
		"Optimización (ICS1113) - Profesor: Klapp Mathias",
		"Rating: 4.5",
		"Carga: intensa",
		"Dificultad: alta",
		"Campus: San Joaquín",
		"Cupos: 12/40",
		"Resumen: Curso exigente pero muy bien evaluado",
		"Pros: buen profesor, material claro, ayudantías útiles",
		"Contras: mucha carga",
	} {
		if !strings.Contains(block, want) {
			t.Errorf("rendered block missing %q:\n%s", want, block)
		}
	}

	if strings.Contains(block, "un cuarto pro") {
		t.Errorf("pros should be capped at %d:\n%s", maxProsAndCons, block)
	}
}

func TestRenderCourse_OmitsAbsentFields(t *testing.T) {
	course := db.CourseModel{
		CourseCode: "MAT1620",
		CourseName: "Calculo 2",
		Professor:  "Alguien",
	}

	block := renderCourse(course)

	if block != "Calculo 2 (MAT1620) - Profesor: Alguien" {
		t.Fatalf("expected only the mandatory fields, got:\n%s", block)
	}
	for _, absent := range []string{"Rating", "Carga", "Dificultad", "Campus", "Cupos", "Resumen", "Pros", "Contras", "null", "N/A"} {
		if strings.Contains(block, absent) {
			t.Errorf("rendered block should not mention %q:\n%s", absent, block)
		}
	}
}

func TestRenderCoursesContext_JoinsWithBlankLine(t *testing.T) {
	courses := []db.CourseModel{
		{CourseCode: "A1", CourseName: "A", Professor: "PA"},
		{CourseCode: "B1", CourseName: "B", Professor: "PB"},
	}

	block, err := renderCoursesContext(context.Background(), courses)
	if err != nil {
		t.Fatal(err)
	}
	if block != "A (A1) - Profesor: PA\n\nB (B1) - Profesor: PB" {
		t.Fatalf("unexpected context block:\n%s", block)
	}
}

func TestGenerate_PromptCarriesContextAndQuestion(t *testing.T) {
	llmClient := &mockLLM{responses: []string{" La carga de Optimización es intensa. "}}
	generator := NewGenerator(llmClient)

	conversation := []model.Message{
		{Role: model.RoleUser, Content: "¿Cuál es la carga de Optimización?"},
	}
	courses := []db.CourseModel{
		{CourseCode: "ICS1113", CourseName: "Optimización", Professor: "Klapp Mathias", Workload: "intensa"},
	}

	answer, err := generator.Generate(context.Background(), conversation, courses)
	if err != nil {
		t.Fatal(err)
	}

	if answer != "La carga de Optimización es intensa." {
		t.Fatalf("expected trimmed answer, got %q", answer)
	}

	prompt := llmClient.prompts[0]
	if !strings.Contains(prompt, "Optimización (ICS1113) - Profesor: Klapp Mathias - Carga: intensa") {
		t.Errorf("prompt missing rendered course block:\n%s", prompt)
	}
	if !strings.Contains(prompt, "¿Cuál es la carga de Optimización?") {
		t.Errorf("prompt missing user question:\n%s", prompt)
	}
}

func TestGenerate_ProviderErrorPropagates(t *testing.T) {
	llmClient := &mockLLM{err: errors.New("provider down")}
	generator := NewGenerator(llmClient)

	conversation := []model.Message{{Role: model.RoleUser, Content: "hola"}}
	courses := []db.CourseModel{{CourseCode: "A1", CourseName: "A", Professor: "P"}}

	if _, err := generator.Generate(context.Background(), conversation, courses); err == nil {
		t.Fatal("expected error")
	}
}
