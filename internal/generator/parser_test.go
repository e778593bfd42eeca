package generator

import (
	"strings"
	"testing"
)

func TestParseQuestions_Valid(t *testing.T) {
	body := `{"questions": [
		{"question": "What surprised you today?", "category": "reflection"},
		{"question": "Who are you grateful for right now?", "category": "gratitude"}
	]}`

	questions, err := ParseQuestions(body)
	if err != nil {
		t.Fatalf("ParseQuestions: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}
	if questions[0].Question != "What surprised you today?" {
		t.Errorf("question text = %q", questions[0].Question)
	}
	if questions[1].Category != "gratitude" {
		t.Errorf("category = %q, want gratitude", questions[1].Category)
	}
}

func TestParseQuestions_MarkdownFences(t *testing.T) {
	body := "```json\n{\"questions\": [{\"question\": \"What did you learn?\", \"category\": \"growth\"}]}\n```"

	questions, err := ParseQuestions(body)
	if err != nil {
		t.Fatalf("ParseQuestions: %v", err)
	}
	if len(questions) != 1 || questions[0].Question != "What did you learn?" {
		t.Fatalf("unexpected result: %+v", questions)
	}
}

func TestParseQuestions_BareFences(t *testing.T) {
	body := "```\n{\"questions\": [{\"question\": \"What energized you?\", \"category\": \"health\"}]}\n```"

	questions, err := ParseQuestions(body)
	if err != nil {
		t.Fatalf("ParseQuestions: %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(questions))
	}
}

func TestParseQuestions_MalformedJSON(t *testing.T) {
	if _, err := ParseQuestions(`Sure! Here are your questions: 1. What...`); err == nil {
		t.Fatal("expected error for non-JSON response")
	}
}

func TestParseQuestions_EmptyList(t *testing.T) {
	if _, err := ParseQuestions(`{"questions": []}`); err == nil {
		t.Fatal("expected error for empty question list")
	}
}

func TestParseQuestions_EmptyQuestionText(t *testing.T) {
	body := `{"questions": [{"question": "  ", "category": "growth"}]}`
	_, err := ParseQuestions(body)
	if err == nil {
		t.Fatal("expected error for blank question text")
	}
	if !strings.Contains(err.Error(), "empty text") {
		t.Errorf("error = %v, want mention of empty text", err)
	}
}

func TestParseQuestions_TrailingContentRejected(t *testing.T) {
	body := `{"questions": [{"question": "What went well?", "category": "reflection"}]}
Sure, hope these help!`
	if _, err := ParseQuestions(body); err == nil {
		t.Fatal("expected error for prose after the JSON payload")
	}
}

func TestParseQuestions_UnknownFieldRejected(t *testing.T) {
	body := `{"questions": [{"question": "What matters most?", "category": "reflection"}], "reasoning": "..."}`
	if _, err := ParseQuestions(body); err == nil {
		t.Fatal("expected error for unknown top-level field")
	}
}
