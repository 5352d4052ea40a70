package db

// ProfessorRating is a per-professor review summary embedded in a course
// section document.
type ProfessorRating struct {
	Name    string   `bson:"name"`
	Overall *float64 `bson:"overall,omitempty"`
	Summary string   `bson:"summary,omitempty"`
}

// CourseModel is one section of a course as stored in Mongo. Code, name and
// professor are always present; everything else is optional and a missing
// field is simply omitted wherever the document is rendered. Fields the
// scraper adds beyond these are ignored by decoding.
type CourseModel struct {
	ID               string            `bson:"_id"`
	CourseCode       string            `bson:"course_code"`
	CourseName       string            `bson:"course_name"`
	NRC              string            `bson:"nrc"`
	Professor        string            `bson:"professor"`
	Campus           string            `bson:"campus,omitempty"`
	Workload         string            `bson:"workload,omitempty"`
	DifficultyLevel  string            `bson:"difficulty_level,omitempty"`
	AvailableSlots   *int              `bson:"available_slots,omitempty"`
	TotalSlots       *int              `bson:"total_slots,omitempty"`
	OverallSummary   string            `bson:"overall_summary,omitempty"`
	Pros             []string          `bson:"pros,omitempty"`
	Cons             []string          `bson:"cons,omitempty"`
	ProfessorRatings []ProfessorRating `bson:"professor_ratings,omitempty"`
}

func (m CourseModel) Id() string {
	return m.ID
}

func (m CourseModel) CollectionName() string {
	return "courses"
}
