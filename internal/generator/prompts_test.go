package generator

import (
	"strings"
	"testing"
)

func TestSystemPrompt_Default(t *testing.T) {
	prompt := SystemPrompt("")
	if !strings.Contains(prompt, "journaling coach") {
		t.Error("default persona missing from system prompt")
	}
	if !strings.Contains(prompt, `{"questions"`) {
		t.Error("output format contract missing from system prompt")
	}
}

func TestSystemPrompt_RoleOverride(t *testing.T) {
	prompt := SystemPrompt("You are a stoic philosophy mentor.")
	if !strings.Contains(prompt, "stoic philosophy mentor") {
		t.Error("custom role prompt not applied")
	}
	if strings.Contains(prompt, "journaling coach") {
		t.Error("default persona should be replaced by the custom role")
	}
	// The format contract survives the override.
	if !strings.Contains(prompt, `{"questions"`) {
		t.Error("output format contract missing after role override")
	}
}

func TestSystemPrompt_WhitespaceRoleFallsBack(t *testing.T) {
	prompt := SystemPrompt("   \n ")
	if !strings.Contains(prompt, "journaling coach") {
		t.Error("blank role prompt should fall back to the default persona")
	}
}

func TestBuildUserPrompt_Count(t *testing.T) {
	prompt := BuildUserPrompt(7, nil)
	if !strings.Contains(prompt, "Write 7 daily reflection questions.") {
		t.Errorf("count missing from prompt: %q", prompt)
	}
	if !strings.Contains(prompt, "varied themes") {
		t.Errorf("expected varied-themes guidance without categories: %q", prompt)
	}
}

func TestBuildUserPrompt_CategorySteering(t *testing.T) {
	prompt := BuildUserPrompt(5, []string{"growth", "gratitude"})
	if !strings.Contains(prompt, "growth, gratitude") {
		t.Errorf("preferred categories missing from prompt: %q", prompt)
	}
	if !strings.Contains(prompt, "outside them") {
		t.Errorf("expected instruction to include questions outside preferred themes: %q", prompt)
	}
}
