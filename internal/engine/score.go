package engine

import (
	"math"
	"time"

	"github.com/julianstephens/bloom/internal/constants"
	"github.com/julianstephens/bloom/internal/models"
	"github.com/julianstephens/bloom/internal/utils"
)

// recompute derives the composite score from the three signal streams and
// writes it to both the current score field and the daily history under
// today's key. It is deterministic and idempotent: recomputing with no
// intervening mutation yields an identical result.
func recompute(state *models.AppState, now time.Time) {
	mood := moodScore(state.MoodEntries, now)
	habits := habitScore(state.Habits)
	reflection := reflectionScore(state.JournalEntries, now)

	score := models.BloomScore{
		Mood:       mood,
		Habits:     habits,
		Reflection: reflection,
		Overall:    roundDiv(mood+habits+reflection, 3),
	}

	state.BloomScore = score
	history := make(map[string]models.BloomScore, len(state.DailyBloomScores)+1)
	for k, v := range state.DailyBloomScores {
		history[k] = v
	}
	history[utils.DayKey(now)] = score
	state.DailyBloomScores = history
}

// habitScore is the completed percentage of today's habits. An empty habit
// list scores 0, not an error.
func habitScore(habits []models.Habit) int {
	if len(habits) == 0 {
		return 0
	}
	completed := 0
	for _, h := range habits {
		if h.Completed {
			completed++
		}
	}
	return int(math.Round(float64(constants.MaxDimensionScore*completed) / float64(len(habits))))
}

// moodScore averages the intensity of mood entries within the score window
// and scales the 1-5 average to 0-100. No entries in the window scores 0.
func moodScore(entries []models.MoodEntry, now time.Time) int {
	sum, count := 0, 0
	for _, m := range entries {
		if utils.IsWithinLastNDays(m.Date, now, constants.ScoreWindowDays) {
			sum += models.MoodValue(m.Emoji)
			count++
		}
	}
	if count == 0 {
		return 0
	}
	avg := float64(sum) / float64(count)
	return int(math.Round(avg / constants.MaxMoodValue * constants.MaxDimensionScore))
}

// reflectionScore awards PointsPerJournalEntry for each journal entry
// within the score window, capped at the dimension maximum.
func reflectionScore(entries []models.JournalEntry, now time.Time) int {
	count := 0
	for _, j := range entries {
		if utils.IsWithinLastNDays(j.Date, now, constants.ScoreWindowDays) {
			count++
		}
	}
	score := count * constants.PointsPerJournalEntry
	if score > constants.MaxDimensionScore {
		score = constants.MaxDimensionScore
	}
	return score
}

func roundDiv(sum, parts int) int {
	return int(math.Round(float64(sum) / float64(parts)))
}
