package grading

import (
	"sort"
	"strings"

	"github.com/mdlavlusheikh1/demoschool-sub003/app/models"
)

// IncompleteRankPolicy controls how students missing required subjects
// are placed in the ranking.
type IncompleteRankPolicy int

const (
	// RankIncompleteZero leaves incomplete students with the rank 0
	// sentinel, excluded from the ranking. This is the default.
	RankIncompleteZero IncompleteRankPolicy = iota
	// RankIncompleteLast ranks incomplete students after every
	// complete student, still ordered by total obtained marks.
	RankIncompleteLast
)

// Options tunes aggregation. The zero value is valid: no filters,
// incomplete students keep the rank 0 sentinel.
type Options struct {
	IncompleteRank IncompleteRankPolicy
	// NameFilter and IDFilter are case-insensitive substring filters
	// applied after ranks are assigned, so filtering a list for
	// display never renumbers it.
	NameFilter string
	IDFilter   string
}

// Roster identifies the students a summary must be produced for, so
// students with no results still appear (as incomplete).
type Roster struct {
	StudentID   string
	StudentName string
	ClassName   string
}

// Aggregate pivots raw per-subject results into one summary row per
// roster student and computes totals, averages, overall grade,
// pass/fail and rank for the exam.
//
// Subject names are trimmed before use. When the same subject appears
// twice for a student the first record wins; later duplicates are
// dropped, not merged. Results for students not on the roster are
// ignored. A student missing any required subject keeps their summed
// marks but is failed outright: zero averages, overall grade F and no
// regular rank. An empty requiredSubjects list makes every student
// trivially complete.
func Aggregate(results []*models.SubjectResult, roster []Roster, requiredSubjects []string, opts Options) []*models.StudentExamSummary {
	summaries := make([]*models.StudentExamSummary, 0, len(roster))
	byStudent := make(map[string]*models.StudentExamSummary, len(roster))

	for _, r := range roster {
		s := &models.StudentExamSummary{
			StudentID:   r.StudentID,
			StudentName: r.StudentName,
			ClassName:   r.ClassName,
			Subjects:    make(map[string]*models.SubjectResult),
		}
		summaries = append(summaries, s)
		byStudent[r.StudentID] = s
	}

	for _, res := range results {
		s, ok := byStudent[res.StudentID]
		if !ok {
			continue
		}
		subject := strings.TrimSpace(res.Subject)
		if subject == "" {
			continue
		}
		if _, exists := s.Subjects[subject]; exists {
			continue
		}
		s.Subjects[subject] = res
	}

	for _, s := range summaries {
		computeSummary(s, requiredSubjects)
	}

	assignRanks(summaries, opts.IncompleteRank)

	return applyFilters(summaries, opts)
}

func computeSummary(s *models.StudentExamSummary, requiredSubjects []string) {
	s.HasAllSubjects = true
	for _, subject := range requiredSubjects {
		if _, ok := s.Subjects[strings.TrimSpace(subject)]; !ok {
			s.HasAllSubjects = false
			break
		}
	}

	for _, res := range s.Subjects {
		s.TotalObtainedMarks += res.ObtainedMarks
		s.TotalPossibleMarks += res.TotalMarks
	}

	// Missing a required subject is itself a failing condition: totals
	// keep whatever was scored but everything derived is zeroed.
	if !s.HasAllSubjects {
		s.OverallGrade = "F"
		return
	}

	var pctSum, gpaSum float64
	pass := true
	for _, res := range s.Subjects {
		pct := res.Percentage
		if pct == 0 && res.TotalMarks > 0 {
			pct = res.ObtainedMarks / res.TotalMarks * 100
		}
		pctSum += pct
		gpaSum += res.GPA
		if !SubjectPasses(res.ObtainedMarks, res.TotalMarks) {
			pass = false
		}
	}

	if n := float64(len(s.Subjects)); n > 0 {
		s.AveragePercentage = pctSum / n
		s.AverageGPA = gpaSum / n
	}
	// One failed subject fails the exam regardless of the average.
	s.IsPass = pass
	if pass {
		s.OverallGrade = bandForPercentage(s.AveragePercentage).Grade
	} else {
		s.OverallGrade = "F"
	}
}

// assignRanks sorts by total obtained marks descending and numbers the
// list densely from 1. The sort is stable, so tied totals keep their
// input order and still receive distinct consecutive ranks.
func assignRanks(summaries []*models.StudentExamSummary, policy IncompleteRankPolicy) {
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].TotalObtainedMarks > summaries[j].TotalObtainedMarks
	})

	switch policy {
	case RankIncompleteLast:
		// Complete students first, then incomplete, both orderings
		// preserved; everyone gets a rank.
		sort.SliceStable(summaries, func(i, j int) bool {
			return summaries[i].HasAllSubjects && !summaries[j].HasAllSubjects
		})
		for i, s := range summaries {
			s.Rank = i + 1
		}
	default:
		rank := 0
		for _, s := range summaries {
			if !s.HasAllSubjects {
				s.Rank = 0
				continue
			}
			rank++
			s.Rank = rank
		}
	}
}

func applyFilters(summaries []*models.StudentExamSummary, opts Options) []*models.StudentExamSummary {
	if opts.NameFilter == "" && opts.IDFilter == "" {
		return summaries
	}
	name := strings.ToLower(opts.NameFilter)
	id := strings.ToLower(opts.IDFilter)

	filtered := make([]*models.StudentExamSummary, 0, len(summaries))
	for _, s := range summaries {
		if name != "" && !strings.Contains(strings.ToLower(s.StudentName), name) {
			continue
		}
		if id != "" && !strings.Contains(strings.ToLower(s.StudentID), id) {
			continue
		}
		filtered = append(filtered, s)
	}
	return filtered
}
