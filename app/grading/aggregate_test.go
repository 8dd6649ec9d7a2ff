package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdlavlusheikh1/demoschool-sub003/app/models"
)

func result(studentID, subject string, obtained, total float64) *models.SubjectResult {
	band := GradeFor(obtained, total)
	pct := 0.0
	if total > 0 {
		pct = obtained / total * 100
	}
	return &models.SubjectResult{
		StudentID:     studentID,
		Subject:       subject,
		ObtainedMarks: obtained,
		TotalMarks:    total,
		Percentage:    pct,
		Grade:         band.Grade,
		GPA:           band.GPA,
	}
}

func roster(ids ...string) []Roster {
	r := make([]Roster, len(ids))
	for i, id := range ids {
		r[i] = Roster{StudentID: id, StudentName: "Student " + id}
	}
	return r
}

func summaryFor(t *testing.T, summaries []*models.StudentExamSummary, studentID string) *models.StudentExamSummary {
	t.Helper()
	for _, s := range summaries {
		if s.StudentID == studentID {
			return s
		}
	}
	t.Fatalf("no summary for student %s", studentID)
	return nil
}

func TestAggregateCompleteStudent(t *testing.T) {
	results := []*models.SubjectResult{
		result("s1", "Math", 35, 50),
		result("s1", "English", 90, 100),
	}

	summaries := Aggregate(results, roster("s1"), []string{"Math", "English"}, Options{})
	require.Len(t, summaries, 1)

	s := summaries[0]
	assert.True(t, s.HasAllSubjects)
	assert.True(t, s.IsPass, "35/50 and 90/100 both clear their pass marks")
	assert.Equal(t, 125.0, s.TotalObtainedMarks)
	assert.Equal(t, 150.0, s.TotalPossibleMarks)
	// mean of 70% and 90%, not 125/150
	assert.InDelta(t, 80.0, s.AveragePercentage, 1e-9)
	assert.Equal(t, "A+", s.OverallGrade)
	assert.InDelta(t, 4.5, s.AverageGPA, 1e-9) // mean of A (4.00) and A+ (5.00)
	assert.Equal(t, 1, s.Rank)
}

func TestAggregateMissingSubjectFailsOutright(t *testing.T) {
	results := []*models.SubjectResult{
		result("s1", "Math", 48, 50),
	}

	summaries := Aggregate(results, roster("s1"), []string{"Math", "English"}, Options{})
	require.Len(t, summaries, 1)

	s := summaries[0]
	assert.False(t, s.HasAllSubjects)
	assert.False(t, s.IsPass)
	assert.Equal(t, "F", s.OverallGrade)
	assert.Equal(t, 0.0, s.AveragePercentage)
	assert.Equal(t, 0.0, s.AverageGPA)
	assert.Equal(t, 48.0, s.TotalObtainedMarks, "present subjects still sum")
	assert.Equal(t, 0, s.Rank)
}

func TestAggregateOneFailedSubjectFailsTheExam(t *testing.T) {
	results := []*models.SubjectResult{
		result("s1", "Math", 16, 50), // below the 17 pass mark
		result("s1", "English", 95, 100),
	}

	summaries := Aggregate(results, roster("s1"), []string{"Math", "English"}, Options{})
	s := summaries[0]
	assert.True(t, s.HasAllSubjects)
	assert.False(t, s.IsPass)
	assert.Equal(t, "F", s.OverallGrade)
	assert.Greater(t, s.AveragePercentage, 0.0, "averages are still computed")
}

func TestAggregateDuplicateSubjectFirstWins(t *testing.T) {
	results := []*models.SubjectResult{
		result("s1", "Math", 40, 50),
		result("s1", " Math ", 10, 50), // same subject after trimming
	}

	summaries := Aggregate(results, roster("s1"), []string{"Math"}, Options{})
	s := summaries[0]
	require.Len(t, s.Subjects, 1)
	assert.Equal(t, 40.0, s.Subjects["Math"].ObtainedMarks)
}

func TestAggregateZeroResultStudentsAppear(t *testing.T) {
	summaries := Aggregate(nil, roster("s1", "s2"), []string{"Math"}, Options{})
	require.Len(t, summaries, 2)
	for _, s := range summaries {
		assert.False(t, s.IsPass)
		assert.Equal(t, "F", s.OverallGrade)
	}
}

func TestAggregateEmptyRequiredSubjects(t *testing.T) {
	results := []*models.SubjectResult{
		result("s1", "Math", 45, 50),
	}
	summaries := Aggregate(results, roster("s1"), nil, Options{})
	s := summaries[0]
	assert.True(t, s.HasAllSubjects, "no required subjects means trivially complete")
	assert.True(t, s.IsPass)
}

func TestAggregateUnknownStudentResultsIgnored(t *testing.T) {
	results := []*models.SubjectResult{
		result("ghost", "Math", 45, 50),
	}
	summaries := Aggregate(results, roster("s1"), nil, Options{})
	require.Len(t, summaries, 1)
	assert.Empty(t, summaries[0].Subjects)
}

func TestAggregateRankingDenseNoTieSkip(t *testing.T) {
	results := []*models.SubjectResult{
		result("a", "Math", 90, 100),
		result("b", "Math", 90, 100),
		result("c", "Math", 70, 100),
	}

	summaries := Aggregate(results, roster("a", "b", "c"), []string{"Math"}, Options{})
	require.Len(t, summaries, 3)

	// ties keep roster order and ranks stay dense: 1, 2, 3 and never 1, 1, 3
	assert.Equal(t, "a", summaries[0].StudentID)
	assert.Equal(t, 1, summaries[0].Rank)
	assert.Equal(t, "b", summaries[1].StudentID)
	assert.Equal(t, 2, summaries[1].Rank)
	assert.Equal(t, "c", summaries[2].StudentID)
	assert.Equal(t, 3, summaries[2].Rank)
}

func TestAggregateIncompleteRankPolicies(t *testing.T) {
	results := []*models.SubjectResult{
		result("complete", "Math", 60, 100),
		result("partial", "Math", 95, 100), // missing English, despite the top score
	}

	summaries := Aggregate(results, roster("complete", "partial"), []string{"Math", "English"}, Options{})
	assert.Equal(t, 1, summaryFor(t, summaries, "complete").Rank)
	assert.Equal(t, 0, summaryFor(t, summaries, "partial").Rank, "sentinel rank by default")

	summaries = Aggregate(results, roster("complete", "partial"), []string{"Math", "English"},
		Options{IncompleteRank: RankIncompleteLast})
	assert.Equal(t, 1, summaryFor(t, summaries, "complete").Rank)
	assert.Equal(t, 2, summaryFor(t, summaries, "partial").Rank, "incomplete students rank after complete ones")
}

func TestAggregateFiltersApplyAfterRanking(t *testing.T) {
	results := []*models.SubjectResult{
		result("a", "Math", 90, 100),
		result("b", "Math", 70, 100),
	}
	ros := []Roster{
		{StudentID: "a", StudentName: "Amina Nakato"},
		{StudentID: "b", StudentName: "Brian Okello"},
	}

	summaries := Aggregate(results, ros, []string{"Math"}, Options{NameFilter: "okello"})
	require.Len(t, summaries, 1)
	assert.Equal(t, "b", summaries[0].StudentID)
	assert.Equal(t, 2, summaries[0].Rank, "rank assigned before filtering sticks")
}

func TestAggregateIdempotent(t *testing.T) {
	results := []*models.SubjectResult{
		result("s1", "Math", 35, 50),
		result("s1", "English", 90, 100),
		result("s2", "Math", 20, 50),
		result("s2", "English", 40, 100),
	}
	ros := roster("s1", "s2")
	req := []string{"Math", "English"}

	first := Aggregate(results, ros, req, Options{})
	second := Aggregate(results, ros, req, Options{})

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].StudentID, second[i].StudentID)
		assert.Equal(t, first[i].TotalObtainedMarks, second[i].TotalObtainedMarks)
		assert.Equal(t, first[i].OverallGrade, second[i].OverallGrade)
		assert.Equal(t, first[i].Rank, second[i].Rank)
	}
}
