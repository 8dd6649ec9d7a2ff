package grading

import "math"

// Band is a letter grade with its grade point value.
type Band struct {
	Grade string  `json:"grade"`
	GPA   float64 `json:"gpa"`
}

var failBand = Band{Grade: "F", GPA: 0.00}

// GradeFor maps obtained marks over total marks to a grade band.
//
// Exams out of 50 use absolute-mark bands; everything else is banded on
// percentage with a pass mark of ceil(total * 0.33), fixed at 33 for
// exams out of 100. Zero (or negative) obtained marks always fail, as
// does a non-positive total. Never errors.
func GradeFor(obtained, total float64) Band {
	if obtained <= 0 || total <= 0 {
		return failBand
	}

	if total == 50 {
		switch {
		case obtained >= 40:
			return Band{"A+", 5.00}
		case obtained >= 35:
			return Band{"A", 4.00}
		case obtained >= 30:
			return Band{"A-", 3.50}
		case obtained >= 25:
			return Band{"B", 3.00}
		case obtained >= 20:
			return Band{"C", 2.00}
		case obtained >= 17:
			return Band{"D", 1.00}
		default:
			return failBand
		}
	}

	if obtained < PassMark(total) {
		return failBand
	}
	return bandForPercentage(obtained / total * 100)
}

// PassMark returns the minimum obtained marks needed to pass a subject
// with the given total. Exams out of 50 pass at 17 (the D band floor),
// exams out of 100 at a fixed 33, everything else at ceil(total * 0.33).
func PassMark(total float64) float64 {
	switch total {
	case 50:
		return 17
	case 100:
		return 33
	default:
		return math.Ceil(total * 0.33)
	}
}

// bandForPercentage applies the percentage band table. Shared by
// GradeFor and the overall-grade computation in Aggregate.
func bandForPercentage(pct float64) Band {
	switch {
	case pct >= 80:
		return Band{"A+", 5.00}
	case pct >= 70:
		return Band{"A", 4.00}
	case pct >= 60:
		return Band{"A-", 3.50}
	case pct >= 50:
		return Band{"B", 3.00}
	case pct >= 40:
		return Band{"C", 2.00}
	case pct >= 33:
		return Band{"D", 1.00}
	default:
		return failBand
	}
}

// SubjectPasses reports whether obtained marks clear the pass mark for
// the subject's total. Zero marks never pass.
func SubjectPasses(obtained, total float64) bool {
	if obtained <= 0 {
		return false
	}
	return obtained >= PassMark(total)
}
