package adherence

// CurrentStreak counts consecutive trained days ending today, or ending
// yesterday when there is no session today yet.
func CurrentStreak(sessions []Session, today Date) int {
	return currentStreak(distinctDates(sessions), today)
}

func currentStreak(ascending []Date, today Date) int {
	cursor := today
	if !containsDate(ascending, cursor) {
		cursor = cursor.AddDays(-1)
	}

	streak := 0
	for i := len(ascending) - 1; i >= 0; i-- {
		switch c := ascending[i].Compare(cursor); {
		case c == 0:
			streak++
			cursor = cursor.AddDays(-1)
		case c < 0:
			// gap found
			return streak
		}
		// dates after the cursor (future sessions) are skipped
	}

	return streak
}

// LongestStreak is the longest run of consecutive trained days in the history.
func LongestStreak(sessions []Session) int {
	return longestStreak(distinctDates(sessions))
}

func longestStreak(ascending []Date) int {
	longest, run := 0, 0
	for i, d := range ascending {
		if i > 0 && ascending[i-1].AddDays(1) == d {
			run++
		} else {
			run = 1
		}
		longest = max(longest, run)
	}
	return longest
}
