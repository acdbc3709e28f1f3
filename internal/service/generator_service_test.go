package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/rimamd894-svg/ai-quiz-pro/config"
)

func TestFallbackQuestionsAreDeterministic(t *testing.T) {
	questions := finalizeQuestions(fallbackQuestions("History", "Easy", 3), "History", "Easy")

	if len(questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(questions))
	}
	for i, q := range questions {
		wantID := fmt.Sprintf("fallback_%d", i+1)
		if q.ID != wantID {
			t.Errorf("question %d: expected id %q, got %q", i, wantID, q.ID)
		}
		if len(q.Options) != 4 {
			t.Errorf("question %d: expected 4 options, got %d", i, len(q.Options))
		}
		if q.CorrectAnswer != 0 {
			t.Errorf("question %d: expected correct answer index 0, got %d", i, q.CorrectAnswer)
		}
		if q.Points != 10 {
			t.Errorf("question %d: expected 10 points for Easy, got %d", i, q.Points)
		}
		if q.Category != "History" || q.Difficulty != "Easy" {
			t.Errorf("question %d: missing category/difficulty stamp: %+v", i, q)
		}
	}
}

func TestPointsForDifficulty(t *testing.T) {
	cases := []struct {
		difficulty string
		want       int
	}{
		{"Easy", 10},
		{"Medium", 20},
		{"Hard", 30},
		{"Impossible", 10},
		{"", 10},
	}
	for _, tc := range cases {
		if got := pointsForDifficulty(tc.difficulty); got != tc.want {
			t.Errorf("pointsForDifficulty(%q) = %d, want %d", tc.difficulty, got, tc.want)
		}
	}
}

func TestFinalizeQuestionsOverridesUpstreamPoints(t *testing.T) {
	raw := `[
		{"id": "q1", "question": "Q?", "options": ["a","b","c","d"], "correct_answer": 2, "explanation": "e", "points": 999},
		{"id": "q2", "question": "Q2?", "options": ["a","b","c","d"], "correct_answer": 1, "explanation": "e2", "points": -5}
	]`
	parsed, err := parseGeneratedQuestions(raw)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	questions := finalizeQuestions(parsed, "Science & Technology", "Hard")
	for i, q := range questions {
		if q.Points != 30 {
			t.Errorf("question %d: upstream points not overridden, got %d", i, q.Points)
		}
		if q.Category != "Science & Technology" || q.Difficulty != "Hard" {
			t.Errorf("question %d: category/difficulty not stamped: %+v", i, q)
		}
	}
	if questions[0].CorrectAnswer != 2 || questions[1].CorrectAnswer != 1 {
		t.Errorf("correct answer indexes changed during finalize")
	}
}

func TestParseGeneratedQuestions(t *testing.T) {
	valid := `[{"id": "q1", "question": "Q?", "options": ["a","b","c","d"], "correct_answer": 0, "explanation": "e", "points": 10}]`

	cases := []struct {
		name    string
		raw     string
		wantErr bool
		wantLen int
	}{
		{"plain array", valid, false, 1},
		{"fenced array", "```json\n" + valid + "\n```", false, 1},
		{"fenced without language", "```\n" + valid + "\n```", false, 1},
		{"leading whitespace", "\n\n  " + valid + "  \n", false, 1},
		{"not an array", `{"id": "q1"}`, true, 0},
		{"prose around json", "Here are your questions: " + valid, true, 0},
		{"garbage", "no json here", true, 0},
		{"wrong option count", `[{"id": "q1", "question": "Q?", "options": ["a","b","c"], "correct_answer": 0}]`, true, 0},
		{"answer index out of range", `[{"id": "q1", "question": "Q?", "options": ["a","b","c","d"], "correct_answer": 4}]`, true, 0},
		{"mixed element types", `[{"id": "q1", "question": "Q?", "options": ["a","b","c","d"], "correct_answer": 0}, "oops"]`, true, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			questions, err := parseGeneratedQuestions(tc.raw)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %d questions", len(questions))
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(questions) != tc.wantLen {
				t.Fatalf("expected %d questions, got %d", tc.wantLen, len(questions))
			}
		})
	}
}

func TestGenerateFallsBackWithoutClient(t *testing.T) {
	generator, err := NewQuestionGeneratorService(&config.Config{})
	if err != nil {
		t.Fatalf("constructor failed: %v", err)
	}

	questions := generator.Generate(context.Background(), "Geography", "Medium", 4)
	if len(questions) != 4 {
		t.Fatalf("expected 4 fallback questions, got %d", len(questions))
	}
	for i, q := range questions {
		if q.ID != fmt.Sprintf("fallback_%d", i+1) {
			t.Errorf("question %d: unexpected id %q", i, q.ID)
		}
		if q.Points != 20 {
			t.Errorf("question %d: expected 20 points for Medium, got %d", i, q.Points)
		}
	}
}
