package adherence

// ScheduleDay is one day of the current calendar week matched against the routine.
type ScheduleDay struct {
	Date          Date   `json:"date"`
	DayNumber     int    `json:"dayNumber"`
	TrainingDayID string `json:"trainingDayId,omitempty"`
	Name          string `json:"name"`
	// IsRestDay is also set for days the routine does not configure.
	IsRestDay bool `json:"isRestDay"`
	IsToday   bool `json:"isToday"`
	Completed bool `json:"completed"`
}

// WeekSchedule lays the given routine week over the Monday..Sunday window of today.
// Completed is set when at least one session was recorded on that date.
func WeekSchedule(sessions []Session, days []TrainingDay, weekNumber int, today Date) []ScheduleDay {
	byNumber := make(map[int]TrainingDay, 7)
	for _, d := range days {
		if d.WeekNumber != weekNumber {
			continue
		}
		if existing, ok := byNumber[d.DayNumber]; ok && !lessTrainingDay(d, existing) {
			continue
		}
		byNumber[d.DayNumber] = d
	}

	dates := distinctDates(sessions)
	monday, _ := WeekWindow(today)

	schedule := make([]ScheduleDay, 0, 7)
	for i := 0; i < 7; i++ {
		date := monday.AddDays(i)
		sd := ScheduleDay{
			Date:      date,
			DayNumber: i + 1,
			IsRestDay: true,
			IsToday:   date == today,
			Completed: containsDate(dates, date),
		}
		if td, ok := byNumber[i+1]; ok {
			sd.TrainingDayID = td.ID
			sd.Name = td.Name
			sd.IsRestDay = td.IsRestDay
		}
		schedule = append(schedule, sd)
	}

	return schedule
}
