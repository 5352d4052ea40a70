package rag

import (
	"fmt"
	"strings"
)

// CourseEntry maps a course display name to its course codes. Some courses
// carry equivalent codes across departments.
type CourseEntry struct {
	Name  string
	Codes []string
}

// AvailableCourses is the closed vocabulary the classifier may answer with.
// Fixed at process start, never mutated.
var AvailableCourses = []CourseEntry{
	{"Calculo 2", []string{"MAT1620"}},
	{"Optimización", []string{"ICS1113"}},
	{"Electricidad y Magnetismo", []string{"FIS1533"}},
	{"Termodinamica", []string{"FIS1523", "IIQ1003"}},
	{"Programacion Avanzada", []string{"IIC2233"}},
	{"Probabilidades y Estadistica", []string{"EYP1113"}},
	{"Analisis Forense", []string{"QIM122"}},
	{"Biologia de la Celula", []string{"BIO141C"}},
	{"Introduccion a la Argumentacion", []string{"FIL2006"}},
	{"Tenis 1", []string{"DPT6500"}},
	{"Dinamica", []string{"FIS0154", "ICE1514"}},
	{"Introduccion a la Programacion", []string{"IIC1103"}},
	{"Calculo 3", []string{"MAT1630"}},
	{"Ecuaciones Diferenciales", []string{"MAT1640"}},
	{"Busqueda Religiosa y Cristianismo", []string{"TTF202"}},
	{"Introduccion a la Economia", []string{"ICS1513"}},
	{"Etica para Ingenieria", []string{"ETI188"}},
	{"Modelos Estocasticos", []string{"ICS2123"}},
	{"Investigacion, Innovacion y Emprendimiento", []string{"ING2030"}},
}

// Vocabulary is the read-only course table plus its derived flat code list.
type Vocabulary struct {
	Entries  []CourseEntry
	allCodes []string
}

func NewVocabulary(entries []CourseEntry) *Vocabulary {
	v := &Vocabulary{Entries: entries}
	for _, e := range entries {
		for _, code := range e.Codes {
			v.allCodes = append(v.allCodes, strings.ToUpper(code))
		}
	}
	return v
}

// AllCodes returns every known course code, uppercase, in table order.
func (v *Vocabulary) AllCodes() []string {
	return v.allCodes
}

// renderList formats the table for the classification prompt, one line per
// course showing the display name and its codes.
func (v *Vocabulary) renderList() string {
	lines := make([]string, 0, len(v.Entries))
	for _, e := range v.Entries {
		lines = append(lines, fmt.Sprintf("- %s (%s)", e.Name, strings.Join(e.Codes, ", ")))
	}
	return strings.Join(lines, "\n")
}
