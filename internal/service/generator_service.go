package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/rimamd894-svg/ai-quiz-pro/config"
	"github.com/rimamd894-svg/ai-quiz-pro/internal/model"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// Points awarded per question by difficulty. Unrecognized difficulties get
// the Easy value.
var difficultyPoints = map[string]int{
	"Easy":   10,
	"Medium": 20,
	"Hard":   30,
}

func pointsForDifficulty(difficulty string) int {
	if points, ok := difficultyPoints[difficulty]; ok {
		return points
	}
	return 10
}

// QuestionGeneratorService produces the question set for one quiz. It never
// fails: any upstream error degrades to deterministic fallback questions, so
// a quiz is always producible.
type QuestionGeneratorService interface {
	Generate(ctx context.Context, category string, difficulty string, count int) []model.Question
}

type geminiGeneratorService struct {
	client *genai.GenerativeModel
	cfg    *config.Config
}

func NewQuestionGeneratorService(cfg *config.Config) (QuestionGeneratorService, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. Quiz generation will use fallback questions only.")
		return &geminiGeneratorService{cfg: cfg, client: nil}, nil
	}
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	generativeModel := client.GenerativeModel("gemini-1.5-flash")
	return &geminiGeneratorService{client: generativeModel, cfg: cfg}, nil
}

func (s *geminiGeneratorService) Generate(ctx context.Context, category string, difficulty string, count int) []model.Question {
	questions, err := s.generateWithGemini(ctx, category, difficulty, count)
	if err != nil {
		log.Warn().Err(err).Str("category", category).Str("difficulty", difficulty).Int("count", count).
			Msg("AI generation failed, using fallback questions")
		questions = fallbackQuestions(category, difficulty, count)
	}
	return finalizeQuestions(questions, category, difficulty)
}

// generateWithGemini asks the model for a strict JSON array of questions and
// parses it. Any error here is absorbed by the fallback path in Generate.
func (s *geminiGeneratorService) generateWithGemini(ctx context.Context, category string, difficulty string, count int) ([]model.Question, error) {
	if s.client == nil {
		return nil, fmt.Errorf("gemini client not initialized")
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	prompt := buildGenerationPrompt(category, difficulty, count)
	resp, err := s.client.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini API error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("gemini returned no content")
	}

	fullResponseText := ""
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			fullResponseText += string(txt)
		}
	}
	if fullResponseText == "" {
		return nil, fmt.Errorf("gemini returned no text content")
	}

	return parseGeneratedQuestions(fullResponseText)
}

func buildGenerationPrompt(category string, difficulty string, count int) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf(
		"You are an AI quiz generator. Generate exactly %d multiple-choice questions for the category '%s' at '%s' difficulty level.\n\n",
		count, category, difficulty))
	b.WriteString("IMPORTANT: Return ONLY a valid JSON array with this exact format:\n")
	b.WriteString(`[
  {
    "id": "q1",
    "question": "Question text here?",
    "options": ["Option A", "Option B", "Option C", "Option D"],
    "correct_answer": 0,
    "explanation": "Brief explanation why this is correct",
    "points": 10
  }
]
`)
	b.WriteString("\nRules:\n")
	b.WriteString("- Each question should have exactly 4 options\n")
	b.WriteString("- correct_answer should be index (0-3) of the correct option\n")
	b.WriteString("- Points: Easy=10, Medium=20, Hard=30\n")
	b.WriteString("- Questions should be educational and factual\n")
	b.WriteString("- No markdown, no extra text, just the JSON array\n")
	return b.String()
}

// parseGeneratedQuestions decodes the model output as a homogeneous JSON
// array of questions. Markdown code fences around the array are tolerated
// since the model emits them despite instructions.
func parseGeneratedQuestions(raw string) ([]model.Question, error) {
	cleaned := stripMarkdownFences(raw)

	var questions []model.Question
	if err := json.Unmarshal([]byte(cleaned), &questions); err != nil {
		return nil, fmt.Errorf("response is not a valid question array: %w", err)
	}

	for i, q := range questions {
		if len(q.Options) != 4 {
			return nil, fmt.Errorf("question %d has %d options, want 4", i, len(q.Options))
		}
		if q.CorrectAnswer < 0 || q.CorrectAnswer > 3 {
			return nil, fmt.Errorf("question %d has correct_answer %d out of range", i, q.CorrectAnswer)
		}
	}
	return questions, nil
}

func stripMarkdownFences(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
	}
	return strings.TrimSpace(s)
}

// fallbackQuestions synthesizes a deterministic placeholder quiz when the
// upstream generation is unavailable or unparsable.
func fallbackQuestions(category string, difficulty string, count int) []model.Question {
	points := pointsForDifficulty(difficulty)

	questions := make([]model.Question, 0, count)
	for i := 1; i <= count; i++ {
		questions = append(questions, model.Question{
			ID:            fmt.Sprintf("fallback_%d", i),
			Question:      fmt.Sprintf("Sample %s question %d about %s?", difficulty, i, category),
			Options:       []string{"Option A", "Option B", "Option C", "Option D"},
			CorrectAnswer: 0,
			Explanation:   fmt.Sprintf("This is a sample explanation for %s", category),
			Points:        points,
		})
	}
	return questions
}

// finalizeQuestions normalizes both generation paths: point values come from
// the difficulty mapping, never from the upstream response, and every
// question is stamped with its quiz's category and difficulty.
func finalizeQuestions(questions []model.Question, category string, difficulty string) []model.Question {
	points := pointsForDifficulty(difficulty)
	for i := range questions {
		questions[i].Points = points
		questions[i].Category = category
		questions[i].Difficulty = difficulty
	}
	return questions
}
