package journal

import "strings"

// LexiconPrompts resolves an emotion label against the static lexicon,
// matching case-insensitively. A hit returns the fixed three-prompt list; ok
// reports whether the lexicon covers the label.
func LexiconPrompts(emotion string) ([]string, bool) {
	prompts, ok := emotionLexicon[strings.ToLower(emotion)]
	if !ok {
		return nil, false
	}
	return append([]string(nil), prompts...), true
}

// emotionLexicon maps a closed set of lowercase emotion words to three
// reflective prompts each. Read-only; hits never reach the completion API.
var emotionLexicon = map[string][]string{
	"sadness": {
		"What gentle memories bring a soft smile to your face today?",
		"How might you show kindness to yourself in this moment?",
		"What small step could you take today to nurture your heart?",
	},
	"anxiety": {
		"What would you tell a dear friend feeling this way?",
		"What small action could help you feel more grounded right now?",
		"What brings you a sense of safety and comfort?",
	},
	"loneliness": {
		"What meaningful connection would you like to cultivate today?",
		"How might you show yourself the companionship you seek?",
		"What brings you joy when you're alone?",
	},
	"joy": {
		"What made this moment of happiness possible?",
		"How might you share this joy with others?",
		"What does this feeling teach you about what matters most?",
	},
	"anger": {
		"What boundary might need to be set or respected?",
		"How can you channel this energy constructively?",
		"What underlying need is this emotion pointing to?",
	},
	"guilt": {
		"What would self-forgiveness look like in this situation?",
		"How might you make amends or learn from this experience?",
		"What would you tell someone you love who felt this way?",
	},
	"gratitude": {
		"What small detail are you thankful for today?",
		"How has someone's kindness touched your life recently?",
		"What challenge has made you stronger?",
	},
	"boredom": {
		"What creative spark would you like to explore?",
		"What have you been putting off that might bring fulfillment?",
		"How might you find wonder in the ordinary?",
	},
	"emptiness": {
		"What would fill your cup today?",
		"What small joy could you create for yourself?",
		"What meaningful connection would you like to nurture?",
	},
	"fulfillment": {
		"What made this achievement meaningful to you?",
		"How might you share this sense of purpose?",
		"What does this feeling teach you about your values?",
	},
	"healing": {
		"What small step toward healing feels possible today?",
		"What brings you comfort in difficult moments?",
		"How might you honor your journey so far?",
	},
	"fear": {
		"What would courage look like in this situation?",
		"What support do you need to feel safe?",
		"What small step could you take despite the fear?",
	},
	"hope": {
		"What possibilities are you excited about?",
		"How might you nurture this hope today?",
		"What small action could bring you closer to your vision?",
	},
	"confusion": {
		"What clarity would you like to find?",
		"What questions feel most important to explore?",
		"What would help you feel more centered?",
	},
	"focus": {
		"What matters most to you right now?",
		"How might you create space for what's important?",
		"What small step would move you forward?",
	},
	"love": {
		"How do you want to express your love today?",
		"What makes your heart feel full?",
		"How might you show yourself the same love you give others?",
	},
	"loss": {
		"What beautiful memory brings you comfort?",
		"How might you honor what you've lost?",
		"What support do you need in this moment?",
	},
	"self-worth": {
		"What quality do you appreciate about yourself today?",
		"How might you celebrate your progress?",
		"What would self-compassion look like right now?",
	},
	"calmness": {
		"What brings you peace in this moment?",
		"How might you extend this calm to others?",
		"What helps you maintain this sense of balance?",
	},
	"inspired": {
		"What creative idea would you like to explore?",
		"How might you share this inspiration?",
		"What small step could you take toward your vision?",
	},
}
