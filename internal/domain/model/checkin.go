package model

import "time"

// CheckIn marks one calendar day the user checked in. At most one per day.
type CheckIn struct {
	ID        int64
	UserID    int64
	Day       time.Time
	Points    int64
	CreatedAt time.Time
}

// StreakSummary describes the consecutive-day run ending at today or
// yesterday.
type StreakSummary struct {
	Streak         int
	CheckedInToday bool
}

// ComputeStreak derives the streak from a newest-first check-in history.
// A history whose latest day is neither today nor yesterday yields zero:
// the run is broken and the next check-in starts over.
func ComputeStreak(history []CheckIn, today time.Time) StreakSummary {
	if len(history) == 0 {
		return StreakSummary{}
	}

	today = DateOf(today)
	latest := DateOf(history[0].Day)
	yesterday := today.AddDate(0, 0, -1)
	if !latest.Equal(today) && !latest.Equal(yesterday) {
		return StreakSummary{}
	}

	streak := 1
	prev := latest
	for _, rec := range history[1:] {
		day := DateOf(rec.Day)
		if !day.Equal(prev.AddDate(0, 0, -1)) {
			break
		}
		streak++
		prev = day
	}

	return StreakSummary{Streak: streak, CheckedInToday: latest.Equal(today)}
}

// CheckInReward computes points for the next check-in given the streak
// before it. The reward grows with the streak and caps at maxStreakDays.
func CheckInReward(streakBefore, maxStreakDays int, baseReward int64) int64 {
	day := streakBefore + 1
	if maxStreakDays > 0 && day > maxStreakDays {
		day = maxStreakDays
	}
	return int64(day) * baseReward
}
