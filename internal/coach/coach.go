// Package coach generates canned wellness-coach replies by keyword
// matching. There is no model behind it; the point is a gentle,
// deterministic-enough companion for the chat screen.
package coach

import (
	"math/rand"
	"strings"
)

type rule struct {
	keywords []string
	reply    string
}

var rules = []rule{
	{
		keywords: []string{"stress", "anxious"},
		reply:    "I understand you're feeling stressed. Try taking 5 deep breaths: inhale for 4 counts, hold for 4, exhale for 6. Remember, this feeling is temporary. What's one small thing you can do right now to care for yourself?",
	},
	{
		keywords: []string{"habit", "routine"},
		reply:    "Building habits is like planting seeds - they need time and consistency to grow. Start small: pick one tiny habit you can do for just 2 minutes daily. What habit would you like to focus on first?",
	},
	{
		keywords: []string{"motivation", "motivated"},
		reply:    "Motivation comes and goes, but systems and small daily actions create lasting change. You've already taken a step by being here. What's one thing you accomplished today, no matter how small?",
	},
	{
		keywords: []string{"overwhelm", "too much"},
		reply:    "When everything feels overwhelming, let's break it down. What's the most important thing you need to focus on right now? Sometimes we just need to take things one breath, one moment at a time.",
	},
	{
		keywords: []string{"sleep", "tired"},
		reply:    "Good sleep is the foundation of wellness. Try creating a calming bedtime routine: dim lights 1 hour before bed, avoid screens, and practice gentle breathing. Your body and mind will thank you.",
	},
}

var fallbacks = []string{
	"I'm here to support you on your wellness journey. What's on your mind today?",
	"Remember, every small step counts. You're doing better than you think!",
	"It's okay to have challenging days. What matters is that you're here, trying to grow.",
	"Self-care isn't selfish - it's necessary. How can you be kind to yourself today?",
	"Progress isn't always linear. Celebrate the small victories along the way.",
	"Your feelings are valid. Take a deep breath and be gentle with yourself.",
	"What's one thing you're grateful for today? Gratitude can shift our perspective.",
	"Remember: you have the strength to overcome challenges. I believe in you!",
}

// QuickPrompts are suggested openers shown in the chat UI.
var QuickPrompts = []string{
	"I'm feeling stressed today",
	"How can I build better habits?",
	"I need motivation",
	"Help me with self-care",
	"I'm feeling overwhelmed",
	"Tips for better sleep",
}

// Respond returns the reply for a user message. Keyword rules are checked
// in order; a message matching none gets a random encouragement.
func Respond(message string) string {
	lower := strings.ToLower(message)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.reply
			}
		}
	}
	return fallbacks[rand.Intn(len(fallbacks))]
}

// moodResponses maps a mood intensity value (1-5) to the acknowledgement
// shown after a check-in.
var moodResponses = map[int]string{
	5: "That's wonderful! Your positive energy is shining bright today. Keep spreading those good vibes! ✨",
	4: "Beautiful! A calm mind is a powerful mind. Take a moment to appreciate this peaceful feeling. 🌸",
	3: "Neutral days are perfectly okay. Sometimes we just need to be present and that's enough. 🌿",
	2: "I hear you. It's okay to have difficult moments. Remember, this feeling is temporary and you're stronger than you know. 💙",
	1: "Thank you for sharing how you're feeling. Take some deep breaths and be gentle with yourself today. You're not alone. 🤗",
}

// MoodResponse returns the acknowledgement for a mood intensity value.
func MoodResponse(value int) string {
	if r, ok := moodResponses[value]; ok {
		return r
	}
	return moodResponses[3]
}
