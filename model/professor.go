package model

import "github.com/svergara/ramos-rag/db"

// ProfessorResponse is a professor document as exposed on the read endpoints.
type ProfessorResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Department    string   `json:"department,omitempty"`
	OverallRating *float64 `json:"overall_rating,omitempty"`
	Summary       string   `json:"summary,omitempty"`
	CourseCodes   []string `json:"course_codes,omitempty"`
}

// ProfessorListResponse wraps a list of professors with its count.
type ProfessorListResponse struct {
	Professors []ProfessorResponse `json:"professors"`
	Count      int                 `json:"count"`
}

func NewProfessorListResponse(professors []db.ProfessorModel) ProfessorListResponse {
	resp := ProfessorListResponse{
		Professors: make([]ProfessorResponse, 0, len(professors)),
		Count:      len(professors),
	}
	for _, p := range professors {
		resp.Professors = append(resp.Professors, ProfessorResponse{
			ID:            p.ID,
			Name:          p.Name,
			Department:    p.Department,
			OverallRating: p.OverallRating,
			Summary:       p.Summary,
			CourseCodes:   p.CourseCodes,
		})
	}
	return resp
}
