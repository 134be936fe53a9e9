package adherence

import "cmp"

// FirstWeek returns the lowest configured week number, 0 when there are no days.
func FirstWeek(days []TrainingDay) int {
	first := 0
	for _, d := range days {
		if first == 0 || d.WeekNumber < first {
			first = d.WeekNumber
		}
	}
	return first
}

// NextTrainingDay picks the next planned workout from the routine's first week:
// the lowest non-rest day number after today's weekday, wrapping around to
// the lowest one of next week. The bool is false when nothing is planned.
func NextTrainingDay(days []TrainingDay, today Date) (TrainingDay, bool) {
	week := FirstWeek(days)
	todayNumber := today.ISOWeekday()

	var (
		next, earliest           TrainingDay
		foundNext, foundEarliest bool
	)
	for _, d := range days {
		if d.WeekNumber != week || d.IsRestDay {
			continue
		}
		if !foundEarliest || lessTrainingDay(d, earliest) {
			earliest, foundEarliest = d, true
		}
		if d.DayNumber > todayNumber && (!foundNext || lessTrainingDay(d, next)) {
			next, foundNext = d, true
		}
	}

	if foundNext {
		return next, true
	}
	return earliest, foundEarliest
}

// lessTrainingDay orders by day number; ties are broken by id and name so the
// pick does not depend on input order.
func lessTrainingDay(a, b TrainingDay) bool {
	return cmp.Or(
		cmp.Compare(a.DayNumber, b.DayNumber),
		cmp.Compare(a.ID, b.ID),
		cmp.Compare(a.Name, b.Name),
	) < 0
}
