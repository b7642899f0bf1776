package engine

import (
	"time"

	"github.com/julianstephens/bloom/internal/constants"
	"github.com/julianstephens/bloom/internal/models"
	"github.com/julianstephens/bloom/internal/utils"
)

// Rollover applies the day-boundary transition and returns a new snapshot.
// When the snapshot's last active day differs from now's calendar day (or
// is absent), every habit's completed flag is cleared and the last active
// day is advanced; streaks and lastCompletedDate are never touched by
// rollover alone. The daily score history is pruned to the retention
// window in either case. Running it twice on the same input is equivalent
// to running it once.
func Rollover(state models.AppState, now time.Time) models.AppState {
	next := state.Clone()
	next.Normalize()

	today := utils.DayKey(now)
	if next.LastActiveDate != today {
		next.LastActiveDate = today
		for i := range next.Habits {
			next.Habits[i].Completed = false
		}
	}

	pruneHistory(next.DailyBloomScores, now)
	return next
}

// pruneHistory drops daily scores older than the retention window. Day
// keys sort lexicographically, so a plain string compare against the
// oldest retained key suffices.
func pruneHistory(history map[string]models.BloomScore, now time.Time) {
	oldest := utils.DayKey(now.AddDate(0, 0, -(constants.ScoreWindowDays - 1)))
	for k := range history {
		if k < oldest {
			delete(history, k)
		}
	}
}
