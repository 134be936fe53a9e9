package adherence

import "time"

// WeekWindow returns the Monday and Sunday of the week containing today.
func WeekWindow(today Date) (monday, sunday Date) {
	offset := int(today.Weekday()) - 1
	if today.Weekday() == time.Sunday {
		offset = 6
	}
	monday = today.AddDays(-offset)
	return monday, monday.AddDays(6)
}

// WeeklyCompleted counts the distinct trained days in the current week window.
func WeeklyCompleted(sessions []Session, today Date) int {
	return weeklyCompleted(distinctDates(sessions), today)
}

func weeklyCompleted(ascending []Date, today Date) int {
	monday, sunday := WeekWindow(today)
	count := 0
	for _, d := range ascending {
		if d.Before(monday) {
			continue
		}
		if d.After(sunday) {
			break
		}
		count++
	}
	return count
}

// WeeklyPlanned counts distinct non-rest day numbers across all weeks.
// A routine that repeats the same day in several weeks plans it once.
func WeeklyPlanned(days []TrainingDay) int {
	planned := make(map[int]struct{}, len(days))
	for _, d := range days {
		if d.IsRestDay {
			continue
		}
		planned[d.DayNumber] = struct{}{}
	}
	return len(planned)
}

// WeeklyPercentage is completed/planned in percent, within [0, 100].
func WeeklyPercentage(completed, planned int) float64 {
	if planned <= 0 || completed <= 0 {
		return 0
	}
	return min(float64(completed)/float64(planned)*100, 100)
}
