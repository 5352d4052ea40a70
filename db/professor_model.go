package db

// ProfessorModel is a professor document aggregated from course reviews.
type ProfessorModel struct {
	ID            string   `bson:"_id"`
	Name          string   `bson:"name"`
	Department    string   `bson:"department,omitempty"`
	OverallRating *float64 `bson:"overall_rating,omitempty"`
	Summary       string   `bson:"summary,omitempty"`
	CourseCodes   []string `bson:"course_codes,omitempty"`
}

func (m ProfessorModel) Id() string {
	return m.ID
}

func (m ProfessorModel) CollectionName() string {
	return "professors"
}
