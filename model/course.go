package model

import "github.com/svergara/ramos-rag/db"

// ProfessorRatingResponse mirrors the embedded rating shape of a course
// section document.
type ProfessorRatingResponse struct {
	Name    string   `json:"name"`
	Overall *float64 `json:"overall,omitempty"`
	Summary string   `json:"summary,omitempty"`
}

// CourseResponse is one course section as exposed on the read endpoints.
// Optional fields are dropped from the payload when the document lacks them.
type CourseResponse struct {
	ID               string                    `json:"id"`
	CourseCode       string                    `json:"course_code"`
	CourseName       string                    `json:"course_name"`
	NRC              string                    `json:"nrc"`
	Professor        string                    `json:"professor"`
	Campus           string                    `json:"campus,omitempty"`
	Workload         string                    `json:"workload,omitempty"`
	DifficultyLevel  string                    `json:"difficulty_level,omitempty"`
	AvailableSlots   *int                      `json:"available_slots,omitempty"`
	TotalSlots       *int                      `json:"total_slots,omitempty"`
	OverallSummary   string                    `json:"overall_summary,omitempty"`
	Pros             []string                  `json:"pros,omitempty"`
	Cons             []string                  `json:"cons,omitempty"`
	ProfessorRatings []ProfessorRatingResponse `json:"professor_ratings,omitempty"`
}

// CourseListResponse wraps a list of sections with its count.
type CourseListResponse struct {
	Courses []CourseResponse `json:"courses"`
	Count   int              `json:"count"`
}

func NewCourseResponse(c db.CourseModel) CourseResponse {
	resp := CourseResponse{
		ID:              c.ID,
		CourseCode:      c.CourseCode,
		CourseName:      c.CourseName,
		NRC:             c.NRC,
		Professor:       c.Professor,
		Campus:          c.Campus,
		Workload:        c.Workload,
		DifficultyLevel: c.DifficultyLevel,
		AvailableSlots:  c.AvailableSlots,
		TotalSlots:      c.TotalSlots,
		OverallSummary:  c.OverallSummary,
		Pros:            c.Pros,
		Cons:            c.Cons,
	}
	for _, r := range c.ProfessorRatings {
		resp.ProfessorRatings = append(resp.ProfessorRatings, ProfessorRatingResponse{
			Name:    r.Name,
			Overall: r.Overall,
			Summary: r.Summary,
		})
	}
	return resp
}

func NewCourseListResponse(courses []db.CourseModel) CourseListResponse {
	resp := CourseListResponse{
		Courses: make([]CourseResponse, 0, len(courses)),
		Count:   len(courses),
	}
	for _, c := range courses {
		resp.Courses = append(resp.Courses, NewCourseResponse(c))
	}
	return resp
}
