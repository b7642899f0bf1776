package models

import "github.com/julianstephens/bloom/internal/constants"

// Mood maps a mood symbol to the intensity value used by scoring.
type Mood struct {
	Emoji string
	Label string
	Value int // 1 (low) to 5 (high)
}

// Moods is the fixed set of selectable moods.
var Moods = []Mood{
	{Emoji: "😊", Label: "Happy", Value: 5},
	{Emoji: "😌", Label: "Calm", Value: 4},
	{Emoji: "😐", Label: "Neutral", Value: 3},
	{Emoji: "😔", Label: "Sad", Value: 2},
	{Emoji: "😰", Label: "Anxious", Value: 1},
	{Emoji: "😴", Label: "Tired", Value: 2},
	{Emoji: "🤗", Label: "Grateful", Value: 5},
	{Emoji: "😤", Label: "Frustrated", Value: 2},
}

// MoodValue returns the intensity value for a mood symbol. Unrecognized
// symbols map to the neutral value so scoring never fails on stale or
// foreign data.
func MoodValue(emoji string) int {
	for _, m := range Moods {
		if m.Emoji == emoji {
			return m.Value
		}
	}
	return constants.NeutralMoodValue
}

// MoodLabel returns the display label for a mood symbol, or "Unknown".
func MoodLabel(emoji string) string {
	for _, m := range Moods {
		if m.Emoji == emoji {
			return m.Label
		}
	}
	return "Unknown"
}
