package service

import (
	"encoding/json"
	"fmt"
	"testing"
	"trait_tracer_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validQuestionsJSON(t *testing.T, mutate func([]model.Question) []model.Question) string {
	t.Helper()
	questions := FallbackQuestions()
	if mutate != nil {
		questions = mutate(questions)
	}
	payload, err := json.Marshal(map[string][]model.Question{"questions": questions})
	require.NoError(t, err)
	return string(payload)
}

func TestFallbackQuestionsContract(t *testing.T) {
	questions := FallbackQuestions()

	require.Len(t, questions, QuestionCount)

	seen := make(map[int]bool)
	for _, q := range questions {
		assert.False(t, seen[q.ID], "duplicate id %d", q.ID)
		seen[q.ID] = true
		assert.Greater(t, q.ID, 0)
		assert.LessOrEqual(t, q.ID, QuestionCount)

		assert.NotEmpty(t, q.Question)
		assert.Len(t, q.Options, 4, "question %d", q.ID)
		assert.NotEmpty(t, q.Category, "question %d", q.ID)
		assert.True(t, knownTraits[q.Trait], "question %d has unknown trait %q", q.ID, q.Trait)
		assert.NotEmpty(t, q.Scoring, "question %d", q.ID)
	}
}

func TestFallbackQuestionsStable(t *testing.T) {
	first := FallbackQuestions()
	second := FallbackQuestions()
	assert.Equal(t, first, second)
}

func TestParseQuestionsValid(t *testing.T) {
	questions, err := parseQuestions(validQuestionsJSON(t, nil))
	require.NoError(t, err)
	assert.Len(t, questions, QuestionCount)
	assert.Equal(t, "When working on a complex project, I prefer to:", questions[0].Question)
}

func TestParseQuestionsRejectsBadSets(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{
			name: "not json",
			text: "here are your questions",
		},
		{
			name: "missing questions key",
			text: `{"items": []}`,
		},
		{
			name: "wrong count",
			text: validQuestionsJSON(t, func(qs []model.Question) []model.Question {
				return qs[:19]
			}),
		},
		{
			name: "duplicate id",
			text: validQuestionsJSON(t, func(qs []model.Question) []model.Question {
				qs[5].ID = qs[4].ID
				return qs
			}),
		},
		{
			name: "zero id",
			text: validQuestionsJSON(t, func(qs []model.Question) []model.Question {
				qs[0].ID = 0
				return qs
			}),
		},
		{
			name: "id above question count",
			text: validQuestionsJSON(t, func(qs []model.Question) []model.Question {
				qs[19].ID = QuestionCount + 1
				return qs
			}),
		},
		{
			name: "empty question text",
			text: validQuestionsJSON(t, func(qs []model.Question) []model.Question {
				qs[3].Question = ""
				return qs
			}),
		},
		{
			name: "three options",
			text: validQuestionsJSON(t, func(qs []model.Question) []model.Question {
				qs[7].Options = qs[7].Options[:3]
				return qs
			}),
		},
		{
			name: "unknown trait",
			text: validQuestionsJSON(t, func(qs []model.Question) []model.Question {
				qs[2].Trait = "charisma"
				return qs
			}),
		},
		{
			name: "empty scoring",
			text: validQuestionsJSON(t, func(qs []model.Question) []model.Question {
				qs[9].Scoring = map[string]int{}
				return qs
			}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseQuestions(tt.text)
			assert.Error(t, err)
		})
	}
}

func TestBuildQuestionPromptMentionsJob(t *testing.T) {
	prompt := buildQuestionPrompt("Senior Frontend Developer", "Build delightful UIs")
	assert.Contains(t, prompt, "Senior Frontend Developer")
	assert.Contains(t, prompt, "Build delightful UIs")
	assert.Contains(t, prompt, fmt.Sprintf("Generate %d psychometric questions", QuestionCount))
}
