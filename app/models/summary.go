package models

// StudentExamSummary is the pivoted per-student row for an exam: one
// entry per subject plus the aggregated totals, overall grade and rank.
// Derived by the grading package, never persisted.
type StudentExamSummary struct {
	StudentID          string                    `json:"student_id"`
	StudentName        string                    `json:"student_name"`
	ClassName          string                    `json:"class_name"`
	Subjects           map[string]*SubjectResult `json:"subjects"`
	HasAllSubjects     bool                      `json:"has_all_subjects"`
	TotalObtainedMarks float64                   `json:"total_obtained_marks"`
	TotalPossibleMarks float64                   `json:"total_possible_marks"`
	AveragePercentage  float64                   `json:"average_percentage"`
	AverageGPA         float64                   `json:"average_gpa"`
	OverallGrade       string                    `json:"overall_grade"`
	IsPass             bool                      `json:"is_pass"`
	// Rank is 1-based and dense. 0 marks a student excluded from
	// ranking for missing required subjects.
	Rank int `json:"rank"`
}
