package history

import (
	"cmp"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/2beens/fittrack/internal/adherence"
)

type Period string

const (
	PeriodAll   Period = ""
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

type SortBy string

const (
	SortDateDesc     SortBy = "date_desc"
	SortDateAsc      SortBy = "date_asc"
	SortDurationDesc SortBy = "duration_desc"
	SortDurationAsc  SortBy = "duration_asc"
)

var periodDays = map[Period]int{
	PeriodWeek:  7,
	PeriodMonth: 30,
	PeriodYear:  365,
}

func ParsePeriod(s string) (Period, bool) {
	p := Period(strings.ToLower(s))
	if p == PeriodAll || p == "all" {
		return PeriodAll, true
	}
	_, ok := periodDays[p]
	return p, ok
}

func ParseSortBy(s string) (SortBy, bool) {
	switch sb := SortBy(strings.ToLower(s)); sb {
	case "":
		return SortDateDesc, true
	case SortDateDesc, SortDateAsc, SortDurationDesc, SortDurationAsc:
		return sb, true
	default:
		return "", false
	}
}

type FilterParams struct {
	Query  string
	Period Period
	SortBy SortBy
}

type Summary struct {
	TotalWorkouts          int `json:"totalWorkouts"`
	TotalDurationMinutes   int `json:"totalDurationMinutes"`
	AverageDurationMinutes int `json:"averageDurationMinutes"`
	// CompletionRate is the rounded percentage of completed over planned exercises.
	CompletionRate int `json:"completionRate"`
	CurrentStreak  int `json:"currentStreak"`
	LongestStreak  int `json:"longestStreak"`
}

func Summarize(sessions []Session, today adherence.Date) Summary {
	summary := Summary{
		TotalWorkouts: len(sessions),
	}

	var completed, total int
	for _, s := range sessions {
		summary.TotalDurationMinutes += s.DurationMinutes
		// rows stored before the completion check may overshoot
		completed += min(s.ExercisesCompleted, s.TotalExercises)
		total += s.TotalExercises
	}

	if len(sessions) > 0 {
		summary.AverageDurationMinutes = roundDiv(summary.TotalDurationMinutes, len(sessions))
	}
	if total > 0 {
		summary.CompletionRate = roundDiv(completed*100, total)
	}

	adherenceSessions := AdherenceSessions(sessions)
	summary.CurrentStreak = adherence.CurrentStreak(adherenceSessions, today)
	summary.LongestStreak = adherence.LongestStreak(adherenceSessions)

	return summary
}

// Filter returns a new slice, the input is left untouched.
func Filter(sessions []Session, params FilterParams, today adherence.Date) []Session {
	query := strings.ToLower(strings.TrimSpace(params.Query))

	var from adherence.Date
	if days, ok := periodDays[params.Period]; ok {
		from = today.AddDays(-days)
	}

	filtered := make([]Session, 0, len(sessions))
	for _, s := range sessions {
		if query != "" && !strings.Contains(strings.ToLower(s.Name), query) {
			continue
		}
		if !from.IsZero() && s.Date.Before(from) {
			continue
		}
		filtered = append(filtered, s)
	}

	slices.SortStableFunc(filtered, func(a, b Session) int {
		switch params.SortBy {
		case SortDateAsc:
			return cmp.Or(a.Date.Compare(b.Date), a.CreatedAt.Compare(b.CreatedAt))
		case SortDurationDesc:
			return cmp.Compare(b.DurationMinutes, a.DurationMinutes)
		case SortDurationAsc:
			return cmp.Compare(a.DurationMinutes, b.DurationMinutes)
		default:
			return cmp.Or(b.Date.Compare(a.Date), b.CreatedAt.Compare(a.CreatedAt))
		}
	})

	return filtered
}

// DurationMinutes converts the elapsed workout time into whole minutes, rounding half up.
func DurationMinutes(elapsed time.Duration) int {
	if elapsed <= 0 {
		return 0
	}
	return int(math.Round(elapsed.Seconds() / 60))
}

func roundDiv(a, b int) int {
	return int(math.Round(float64(a) / float64(b)))
}
