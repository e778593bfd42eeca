package generator

import (
	"fmt"
	"strings"
)

const basePrompt = `You are a thoughtful journaling coach who writes daily reflection questions.

Questions must be open-ended, answerable in a few sentences, and anchored in the reader's own recent experience. Avoid yes/no phrasing, therapy jargon, and questions that require remembering anything older than a month.`

const formatInstructions = `Respond with a single JSON object and nothing else. No prose, no markdown fences:

{"questions": [{"question": "...", "category": "..."}]}

Each category must be a single lowercase word such as "growth", "gratitude", "relationships", "mindfulness", "career", "health", "creativity", or "reflection".`

// SystemPrompt builds the system prompt, substituting the user's custom
// role prompt for the default coach persona when one is configured. The
// output format contract is always appended; it is not user-overridable.
func SystemPrompt(rolePrompt string) string {
	role := basePrompt
	if strings.TrimSpace(rolePrompt) != "" {
		role = strings.TrimSpace(rolePrompt)
	}
	return role + "\n\n" + formatInstructions
}

func BuildUserPrompt(count int, categories []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write %d daily reflection questions.", count)
	if len(categories) > 0 {
		fmt.Fprintf(&b, " The reader responds best to these themes: %s. Draw most questions from them, but include at least one question outside them.",
			strings.Join(categories, ", "))
	} else {
		b.WriteString(" Spread the questions across varied themes.")
	}
	return b.String()
}
