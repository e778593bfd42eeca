package generator

import (
	"encoding/json"
	"fmt"
	"strings"
)

type questionPayload struct {
	Questions []GeneratedQuestion `json:"questions"`
}

// ParseQuestions decodes the provider reply. The prompt demands a bare JSON
// object, but models wrap replies in markdown fences often enough that we
// strip those before the strict decode. Anything else fails: no regex
// scanning, no best-effort recovery.
func ParseQuestions(responseBody string) ([]GeneratedQuestion, error) {
	cleaned := stripCodeFences(responseBody)

	dec := json.NewDecoder(strings.NewReader(cleaned))
	dec.DisallowUnknownFields()

	var payload questionPayload
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("trailing content after JSON response")
	}

	if len(payload.Questions) == 0 {
		return nil, fmt.Errorf("no questions in response")
	}

	for i, q := range payload.Questions {
		if strings.TrimSpace(q.Question) == "" {
			return nil, fmt.Errorf("question %d: empty text", i+1)
		}
	}

	return payload.Questions, nil
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimSpace(s)
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSpace(s)
	}
	if strings.HasSuffix(s, "```") {
		s = strings.TrimSuffix(s, "```")
		s = strings.TrimSpace(s)
	}
	return s
}
