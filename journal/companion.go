package journal

import "math/rand"

// Companion is the per-emotion care content shown alongside a journal entry:
// a quote, a short tip, a suggested activity, and a music link. Tips and
// activities are in Korean, as shipped.
type Companion struct {
	Quote    string `json:"quote"`
	Tip      string `json:"tip"`
	Activity string `json:"activity"`
	Music    Music  `json:"music"`
}

// Music is an embeddable playlist link.
type Music struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// CompanionFor assembles companion content for one of the ten suggested
// emotion labels (exact case). The quote is picked at random from the
// label's three quotes. ok is false for labels outside the fixed set.
func CompanionFor(emotion string) (Companion, bool) {
	fb, ok := emotionFeedback[emotion]
	if !ok {
		return Companion{}, false
	}
	c := fb
	c.Quote = RandomQuote(emotion)
	c.Music = emotionMusic[emotion]
	return c, true
}

// RandomQuote returns one of the label's quotes, or "" for labels outside
// the fixed set.
func RandomQuote(emotion string) string {
	quotes := emotionQuotes[emotion]
	if len(quotes) == 0 {
		return ""
	}
	return quotes[rand.Intn(len(quotes))]
}

var emotionQuotes = map[string][]string{
	"Happy": {
		"Happiness is not by chance, but by choice. – Jim Rohn",
		"Let your smile change the world.",
		"Joy is the simplest form of gratitude.",
	},
	"Sad": {
		"Tears are words that need to be written. – Paulo Coelho",
		"It's okay to feel sad. This too shall pass.",
		"Sadness flies away on the wings of time.",
	},
	"Angry": {
		"For every minute you are angry you lose sixty seconds of happiness. – Emerson",
		"Breathe in calm, breathe out anger.",
		"Anger is one letter short of danger.",
	},
	"Calm": {
		"Peace comes from within. – Buddha",
		"Keep calm and carry on.",
		"Serenity is not freedom from the storm, but peace amid the storm.",
	},
	"Anxious": {
		"You don't have to control your thoughts. You just have to stop letting them control you. – Dan Millman",
		"This feeling is temporary. You are safe.",
		"Breathe. You are stronger than you think.",
	},
	"Love": {
		"Where there is love, there is life. – Gandhi",
		"You are loved more than you know.",
		"Love is the bridge between you and everything.",
	},
	"Lonely": {
		"You are never alone. You are eternally connected with everyone. – Amit Ray",
		"Solitude is the soul's holiday.",
		"Reach out. Someone cares.",
	},
	"Frustrated": {
		"Frustration is fuel that can lead to the development of an innovative and useful idea. – Marley Dias",
		"Take a break. You're doing your best.",
		"Every struggle is a step forward.",
	},
	"Grateful": {
		"Gratitude turns what we have into enough.",
		"Start each day with a grateful heart.",
		"Gratitude is the fairest blossom which springs from the soul.",
	},
	"Tired": {
		"Rest is not idleness.",
		"Take time to recharge. You deserve it.",
		"Even the sun needs to set to rise again.",
	},
}

var emotionFeedback = map[string]Companion{
	"Happy":      {Tip: "오늘의 행복을 주변 사람과 나눠보세요!", Activity: "산책하며 기분 좋은 음악 듣기"},
	"Sad":        {Tip: "마음이 힘들 땐 잠시 쉬어가도 괜찮아요.", Activity: "따뜻한 차 한잔 마시기"},
	"Angry":      {Tip: "깊게 숨을 들이마시고 천천히 내쉬어보세요.", Activity: "조용한 곳에서 명상하기"},
	"Calm":       {Tip: "이 평온함을 오래 간직해보세요.", Activity: "자연 소리 들으며 휴식하기"},
	"Anxious":    {Tip: "불안할 땐 천천히 호흡을 가다듬어보세요.", Activity: "마음챙김 명상 앱 사용해보기"},
	"Love":       {Tip: "사랑하는 마음을 표현해보세요.", Activity: "고마운 사람에게 메시지 보내기"},
	"Lonely":     {Tip: "혼자여도 괜찮아요. 나 자신을 더 아껴주세요.", Activity: "좋아하는 영화 보기"},
	"Frustrated": {Tip: "잠시 멈추고 심호흡을 해보세요.", Activity: "가벼운 스트레칭"},
	"Grateful":   {Tip: "감사한 마음을 일기로 남겨보세요.", Activity: "감사 일기 쓰기"},
	"Tired":      {Tip: "충분한 휴식이 필요해요. 오늘은 일찍 쉬어보세요.", Activity: "따뜻한 물로 반신욕"},
}

var emotionMusic = map[string]Music{
	"Happy":      {Title: "Happy Vibes Playlist", URL: "https://www.youtube.com/embed/ZbZSe6N_BXs"},
	"Sad":        {Title: "Calm Piano for Sad Days", URL: "https://www.youtube.com/embed/4Tr0otuiQuU"},
	"Angry":      {Title: "Chill Out Music", URL: "https://www.youtube.com/embed/2OEL4P1Rz04"},
	"Calm":       {Title: "Ocean Waves for Relaxation", URL: "https://www.youtube.com/embed/B4nA5Ue3g1w"},
	"Anxious":    {Title: "Peaceful Mindfulness Music", URL: "https://www.youtube.com/embed/1ZYbU82GVz4"},
	"Love":       {Title: "Romantic Jazz", URL: "https://www.youtube.com/embed/VMnjF1O4eH0"},
	"Lonely":     {Title: "Soothing Acoustic", URL: "https://www.youtube.com/embed/1ZYbU82GVz4"},
	"Frustrated": {Title: "Stress Relief Music", URL: "https://www.youtube.com/embed/2OEL4P1Rz04"},
	"Grateful":   {Title: "Gratitude Meditation", URL: "https://www.youtube.com/embed/8a8Bf5hF0sY"},
	"Tired":      {Title: "Deep Sleep Music", URL: "https://www.youtube.com/embed/Mk7-GRWq7wA"},
}
