package questions

import (
	"log"

	"github.com/daybook/backend/internal/models"
)

type seedQuestion struct {
	text     string
	category string
	tag      string
}

// The static sample pool. Clients also ship a copy of these so the daily
// flow keeps working when the backend is unreachable.
var seedQuestions = []seedQuestion{
	{"What is one thing you did today that your past self would be proud of?", "growth", "progress"},
	{"What skill are you deliberately practicing right now, and why?", "growth", "learning"},
	{"What mistake taught you the most this month?", "growth", "learning"},
	{"If you could master one new habit in 30 days, what would it be?", "growth", "habits"},
	{"What are three small things that went well today?", "gratitude", "daily"},
	{"Who made your life easier this week, and did you thank them?", "gratitude", "people"},
	{"What ordinary thing would you miss most if it disappeared tomorrow?", "gratitude", "perspective"},
	{"When did you last feel genuinely rested, and what made it possible?", "health", "rest"},
	{"How did your body feel today, and what is it telling you?", "health", "awareness"},
	{"What is one change to your evenings that would improve your mornings?", "health", "habits"},
	{"Which conversation this week deserved more of your attention?", "relationships", "presence"},
	{"Who do you want to reconnect with, and what is stopping you?", "relationships", "connection"},
	{"What did someone do recently that you want to do for others?", "relationships", "kindness"},
	{"What occupied your mind most today, and did it deserve that space?", "mindfulness", "attention"},
	{"Describe a moment today when you were fully present.", "mindfulness", "presence"},
	{"What worry can you set down tonight because it is outside your control?", "mindfulness", "letting-go"},
	{"What part of your work gave you energy today, and what drained it?", "career", "energy"},
	{"What would you attempt at work if you knew you could not fail?", "career", "ambition"},
	{"What did you do today that only you could have done?", "career", "strengths"},
	{"What idea have you been circling that deserves an hour of play?", "creativity", "ideas"},
	{"When did you last make something just for the joy of making it?", "creativity", "play"},
	{"How was today different from yesterday?", "reflection", "daily"},
	{"What would you tell a friend who had the exact day you just had?", "reflection", "compassion"},
	{"If today had a title, what would it be and why?", "reflection", "framing"},
}

// Seed inserts the sample question pool on first boot. A non-empty table
// is left untouched so AI-generated and user-era questions survive restarts.
func (s *Store) Seed() error {
	count, err := s.CountQuestions()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, sq := range seedQuestions {
		category := sq.category
		tag := sq.tag
		if _, err := s.InsertQuestion(sq.text, &category, &tag, models.QuestionSourceSeed); err != nil {
			return err
		}
	}

	log.Printf("[seed] inserted %d sample questions", len(seedQuestions))
	return nil
}
