package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGradeForPercentageBands(t *testing.T) {
	tests := []struct {
		name     string
		obtained float64
		total    float64
		grade    string
		gpa      float64
	}{
		{"pass mark out of 100", 33, 100, "D", 1.00},
		{"one below pass mark out of 100", 32, 100, "F", 0.00},
		{"a plus out of 100", 80, 100, "A+", 5.00},
		{"zero marks always fail", 0, 100, "F", 0.00},
		{"a out of 100", 75, 100, "A", 4.00},
		{"a minus out of 100", 60, 100, "A-", 3.50},
		{"b out of 100", 55, 100, "B", 3.00},
		{"c out of 100", 40, 100, "C", 2.00},
		{"full marks", 100, 100, "A+", 5.00},
		// ceil(20*0.33) = 7 and 7/20 = 35% lands in the D band
		{"pass mark ceil for odd total", 7, 20, "D", 1.00},
		{"below ceil pass mark for odd total", 6, 20, "F", 0.00},
		{"seventy percent of odd total", 14, 20, "A", 4.00},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			band := GradeFor(tt.obtained, tt.total)
			assert.Equal(t, tt.grade, band.Grade)
			assert.Equal(t, tt.gpa, band.GPA)
		})
	}
}

func TestGradeForAbsoluteBandsOutOf50(t *testing.T) {
	tests := []struct {
		obtained float64
		grade    string
		gpa      float64
	}{
		{40, "A+", 5.00},
		{39, "A", 4.00},
		{35, "A", 4.00},
		{30, "A-", 3.50},
		{25, "B", 3.00},
		{20, "C", 2.00},
		{17, "D", 1.00},
		{16, "F", 0.00},
		{0, "F", 0.00},
	}
	for _, tt := range tests {
		band := GradeFor(tt.obtained, 50)
		assert.Equal(t, tt.grade, band.Grade, "obtained %v out of 50", tt.obtained)
		assert.Equal(t, tt.gpa, band.GPA, "obtained %v out of 50", tt.obtained)
	}
}

func TestGradeForInvalidInputs(t *testing.T) {
	assert.Equal(t, failBand, GradeFor(10, 0), "zero total always fails")
	assert.Equal(t, failBand, GradeFor(-5, 100))
	assert.Equal(t, failBand, GradeFor(10, -1))
}

func TestPassMark(t *testing.T) {
	assert.Equal(t, 17.0, PassMark(50))
	assert.Equal(t, 33.0, PassMark(100))
	assert.Equal(t, 7.0, PassMark(20)) // ceil(6.6)
	assert.Equal(t, 25.0, PassMark(75))
}

func TestSubjectPasses(t *testing.T) {
	assert.True(t, SubjectPasses(17, 50))
	assert.False(t, SubjectPasses(16, 50))
	assert.True(t, SubjectPasses(33, 100))
	assert.False(t, SubjectPasses(0, 100))
}
