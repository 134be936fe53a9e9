// Package adherence computes workout adherence figures (streaks, weekly
// completion, next planned workout) from a snapshot of completed sessions
// and the active routine's training days.
//
// Everything here is a pure function of its inputs: no I/O, no shared state,
// and no errors. Invalid or missing data degrades to zero values.
package adherence

import "slices"

// Session is one completed workout, stamped with the calendar day it happened on.
type Session struct {
	Date               Date   `json:"date"`
	Name               string `json:"name"`
	DurationMinutes    int    `json:"durationMinutes"`
	ExercisesCompleted int    `json:"exercisesCompleted"`
	TotalExercises     int    `json:"totalExercises"`
}

// TrainingDay is a slot in a routine's weekly cycle. DayNumber 1 is Monday.
type TrainingDay struct {
	ID         string `json:"id"`
	WeekNumber int    `json:"weekNumber"`
	DayNumber  int    `json:"dayNumber"`
	Name       string `json:"name"`
	IsRestDay  bool   `json:"isRestDay"`
}

type Report struct {
	CurrentStreak    int     `json:"currentStreak"`
	LongestStreak    int     `json:"longestStreak"`
	WeeklyCompleted  int     `json:"weeklyCompleted"`
	WeeklyPlanned    int     `json:"weeklyPlanned"`
	WeeklyPercentage float64 `json:"weeklyPercentage"`
	LastWorkoutDate  *Date   `json:"lastWorkoutDate"`
}

// Compute builds the full adherence report. A nil activeRoutineDays means
// the user has no active routine.
func Compute(sessions []Session, activeRoutineDays []TrainingDay, today Date) Report {
	dates := distinctDates(sessions)

	completed := weeklyCompleted(dates, today)
	planned := WeeklyPlanned(activeRoutineDays)

	report := Report{
		CurrentStreak:    currentStreak(dates, today),
		LongestStreak:    longestStreak(dates),
		WeeklyCompleted:  completed,
		WeeklyPlanned:    planned,
		WeeklyPercentage: WeeklyPercentage(completed, planned),
	}
	if len(dates) > 0 {
		last := dates[len(dates)-1]
		report.LastWorkoutDate = &last
	}

	return report
}

// LastWorkoutDate returns the most recent session date, or nil without sessions.
func LastWorkoutDate(sessions []Session) *Date {
	dates := distinctDates(sessions)
	if len(dates) == 0 {
		return nil
	}
	last := dates[len(dates)-1]
	return &last
}

// distinctDates returns the unique session dates in ascending order.
func distinctDates(sessions []Session) []Date {
	seen := make(map[Date]struct{}, len(sessions))
	dates := make([]Date, 0, len(sessions))
	for _, s := range sessions {
		if _, ok := seen[s.Date]; ok {
			continue
		}
		seen[s.Date] = struct{}{}
		dates = append(dates, s.Date)
	}
	slices.SortFunc(dates, Date.Compare)
	return dates
}

func containsDate(ascending []Date, d Date) bool {
	_, found := slices.BinarySearchFunc(ascending, d, Date.Compare)
	return found
}
