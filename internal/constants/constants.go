package constants

const (
	// DateFormat is the standard calendar-day format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// DefaultTimezone uses the system local timezone for day boundaries
	DefaultTimezone = "Local"
)

const (
	// ScoreWindowDays is the rolling window, in calendar days, used for mood
	// and reflection scoring and for daily score history retention.
	ScoreWindowDays = 7

	// PointsPerJournalEntry is awarded for each journal entry written within
	// the score window. Five entries a week max out the reflection dimension.
	PointsPerJournalEntry = 20

	// MaxDimensionScore is the ceiling for each score dimension and the overall score.
	MaxDimensionScore = 100

	// NeutralMoodValue is assumed when a mood symbol is not in the registry.
	// Scoring never fails on an unknown symbol.
	NeutralMoodValue = 3

	// MaxMoodValue is the top of the mood intensity scale.
	MaxMoodValue = 5
)

const (
	// DefaultTheme is the theme selected on first run.
	DefaultTheme = "calm-forest"

	// InitialScreen is the screen shown before a user profile exists.
	InitialScreen = "login"
)
