package coach

import "math"

type Group struct {
	ID      string
	Name    string
	Members []string
	Admins  []string
}

// Assignment is a group workout assigned to an athlete.
type Assignment struct {
	GroupID   string
	AthleteID string
	Completed bool
}

// Athletes returns the group members, without the coach.
func Athletes(coachID string, g Group) []string {
	athletes := make([]string, 0, len(g.Members))
	for _, id := range g.Members {
		if id != coachID {
			athletes = append(athletes, id)
		}
	}
	return athletes
}

// CompletionRate returns round(completed/assigned*100) clamped to [0, 100].
// The rate is not applicable (false) when nothing was assigned.
func CompletionRate(assigned, completed int) (int, bool) {
	if assigned <= 0 {
		return 0, false
	}
	rate := math.Round(float64(completed) / float64(assigned) * 100)
	return int(math.Min(100, math.Max(0, rate))), true
}

// CountCompleted returns the number of assignments and how many of them
// were completed.
func CountCompleted(assignments []Assignment) (assigned, completed int) {
	for _, a := range assignments {
		if a.Completed {
			completed++
		}
	}
	return len(assignments), completed
}

type GroupSummary struct {
	Name         string `json:"name"`
	AthleteCount int    `json:"athleteCount"`
}

type Summary struct {
	TotalGroups   int
	TotalAthletes int
	Groups        []GroupSummary
}

// Summarize counts the athletes across the coached groups. An athlete in
// two groups counts twice.
func Summarize(coachID string, groups []Group) Summary {
	s := Summary{
		TotalGroups: len(groups),
		Groups:      make([]GroupSummary, 0, len(groups)),
	}
	for _, g := range groups {
		n := len(Athletes(coachID, g))
		s.TotalAthletes += n
		s.Groups = append(s.Groups, GroupSummary{Name: g.Name, AthleteCount: n})
	}
	return s
}
