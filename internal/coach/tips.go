package coach

import "math/rand"

// Tip is a single wellness suggestion.
type Tip struct {
	Text     string
	Category string
	Icon     string
}

var wellnessTips = []Tip{
	{Text: "Take three deep breaths before starting any task. This simple practice helps center your mind and reduce stress.", Category: "Breathing", Icon: "🌬️"},
	{Text: "Practice gratitude by writing down three things you're thankful for each morning. It shifts your mindset to positivity.", Category: "Gratitude", Icon: "🙏"},
	{Text: "Drink a glass of water as soon as you wake up. Your body has been without hydration for hours and needs replenishment.", Category: "Hydration", Icon: "💧"},
	{Text: "Take a 5-minute walk outside. Fresh air and movement can instantly boost your mood and energy levels.", Category: "Movement", Icon: "🚶‍♀️"},
	{Text: "Practice the 20-20-20 rule: Every 20 minutes, look at something 20 feet away for 20 seconds to rest your eyes.", Category: "Eye Care", Icon: "👁️"},
	{Text: "Set a gentle reminder to check in with your emotions throughout the day. Awareness is the first step to emotional wellness.", Category: "Mindfulness", Icon: "🧘‍♀️"},
	{Text: "Keep healthy snacks nearby. When you're hungry, you're more likely to make better choices if they're easily accessible.", Category: "Nutrition", Icon: "🥕"},
	{Text: "Create a bedtime routine that starts 30 minutes before sleep. Consistency helps signal to your body that it's time to rest.", Category: "Sleep", Icon: "😴"},
	{Text: "Stretch your neck and shoulders every hour. Tension builds up quickly, especially when working at a desk.", Category: "Stretching", Icon: "🤸‍♀️"},
	{Text: "Smile at yourself in the mirror. This simple act can trigger the release of feel-good hormones and boost self-compassion.", Category: "Self-Love", Icon: "😊"},
	{Text: "Put your phone in another room for 30 minutes. Give your mind a break from constant notifications and digital stimulation.", Category: "Digital Wellness", Icon: "📱"},
	{Text: "Listen to your favorite song and really focus on the music. Let it wash over you and notice how it makes you feel.", Category: "Music Therapy", Icon: "🎵"},
}

// RandomTip returns a random wellness tip.
func RandomTip() Tip {
	return wellnessTips[rand.Intn(len(wellnessTips))]
}

// Tips returns the full tip list.
func Tips() []Tip {
	return wellnessTips
}
