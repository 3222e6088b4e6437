package service

import (
	"context"
	"encoding/json"
	"fmt"
	"trait_tracer_backend/internal/model"
	"trait_tracer_backend/pkg/logger"
	"trait_tracer_backend/pkg/monitoring"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// QuestionCount is the fixed size of a generated assessment.
const QuestionCount = 20

var knownTraits = map[string]bool{
	model.TraitOpenness:          true,
	model.TraitConscientiousness: true,
	model.TraitExtraversion:      true,
	model.TraitAgreeableness:     true,
	model.TraitNeuroticism:       true,
}

// QuestionService generates the per-job psychometric question set. A live
// call that fails in any way (network, breaker, schema) yields the static
// fallback bank, so a session can always start.
type QuestionService struct {
	Gemini *GeminiService
}

func NewQuestionService(gemini *GeminiService) *QuestionService {
	return &QuestionService{Gemini: gemini}
}

// Generate returns exactly QuestionCount questions for the job, and whether
// the fallback bank was substituted. The fallback bank is title-independent:
// two different jobs get identical questions on the fallback path.
func (s *QuestionService) Generate(ctx context.Context, jobTitle, jobDescription string) ([]model.Question, bool) {
	prompt := buildQuestionPrompt(jobTitle, jobDescription)

	text, err := s.Gemini.GenerateJSON(ctx, prompt, &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(0.7)),
		TopK:            genai.Ptr(float32(40)),
		TopP:            genai.Ptr(float32(0.95)),
		MaxOutputTokens: 4000,
		ResponseSchema:  questionSchema(),
	})
	if err != nil {
		logger.Log.Warn("question generation falling back to static bank",
			zap.String("job_title", jobTitle), zap.Error(err))
		monitoring.QuestionGenerations.WithLabelValues("true").Inc()
		return FallbackQuestions(), true
	}

	questions, err := parseQuestions(text)
	if err != nil {
		logger.Log.Warn("generated questions failed validation, using static bank",
			zap.String("job_title", jobTitle), zap.Error(err))
		monitoring.QuestionGenerations.WithLabelValues("true").Inc()
		return FallbackQuestions(), true
	}

	monitoring.QuestionGenerations.WithLabelValues("false").Inc()
	return questions, false
}

func buildQuestionPrompt(jobTitle, jobDescription string) string {
	return fmt.Sprintf(`Generate %d psychometric questions for a %s position.

Job Description: %s

Return a JSON object of the form:
{
  "questions": [
    {
      "id": 1,
      "question": "Question text here",
      "options": ["Option A", "Option B", "Option C", "Option D"],
      "category": "personality|work-style|problem-solving|communication|leadership|stress-management|teamwork",
      "trait": "openness|conscientiousness|extraversion|agreeableness|neuroticism",
      "scoring": {"A": 4, "B": 3, "C": 2, "D": 1}
    }
  ]
}

Focus on questions that assess:
1. Personality traits relevant to the role
2. Work style preferences
3. Problem-solving approaches
4. Communication and collaboration skills
5. Leadership potential
6. Stress management abilities
7. Technical mindset and learning approach

Make questions specific to %s requirements and ensure they help evaluate cultural fit and job performance potential.`,
		QuestionCount, jobTitle, jobDescription, jobTitle)
}

func questionSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"questions": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"id":       {Type: genai.TypeInteger},
						"question": {Type: genai.TypeString},
						"options": {
							Type:  genai.TypeArray,
							Items: &genai.Schema{Type: genai.TypeString},
						},
						"category": {Type: genai.TypeString},
						"trait":    {Type: genai.TypeString},
						"scoring": {
							Type: genai.TypeObject,
							Properties: map[string]*genai.Schema{
								"A": {Type: genai.TypeInteger},
								"B": {Type: genai.TypeInteger},
								"C": {Type: genai.TypeInteger},
								"D": {Type: genai.TypeInteger},
							},
							Required: []string{"A", "B", "C", "D"},
						},
					},
					Required: []string{"id", "question", "options", "category", "trait", "scoring"},
				},
			},
		},
		Required: []string{"questions"},
	}
}

// parseQuestions validates the constrained model output against the question
// contract. Schema validation failure is treated exactly like a network
// failure upstream.
func parseQuestions(text string) ([]model.Question, error) {
	raw := gjson.Get(text, "questions")
	if !raw.Exists() {
		return nil, fmt.Errorf("response has no questions array")
	}

	var questions []model.Question
	if err := json.Unmarshal([]byte(raw.Raw), &questions); err != nil {
		return nil, fmt.Errorf("unmarshal questions: %w", err)
	}

	if len(questions) != QuestionCount {
		return nil, fmt.Errorf("expected %d questions, got %d", QuestionCount, len(questions))
	}

	seen := make(map[int]bool, QuestionCount)
	for i, q := range questions {
		if q.ID <= 0 || q.ID > QuestionCount || seen[q.ID] {
			return nil, fmt.Errorf("question %d: bad or duplicate id %d", i+1, q.ID)
		}
		seen[q.ID] = true
		if q.Question == "" {
			return nil, fmt.Errorf("question %d: empty text", q.ID)
		}
		if len(q.Options) != 4 {
			return nil, fmt.Errorf("question %d: expected 4 options, got %d", q.ID, len(q.Options))
		}
		if q.Category == "" {
			return nil, fmt.Errorf("question %d: empty category", q.ID)
		}
		if !knownTraits[q.Trait] {
			return nil, fmt.Errorf("question %d: unknown trait %q", q.ID, q.Trait)
		}
		if len(q.Scoring) == 0 {
			return nil, fmt.Errorf("question %d: empty scoring map", q.ID)
		}
	}

	return questions, nil
}
