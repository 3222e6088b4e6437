package service

import (
	"encoding/json"
	"testing"
	"trait_tracer_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEvaluationJSON(t *testing.T, mutate func(map[string]interface{})) string {
	t.Helper()
	payload := map[string]interface{}{
		"overallScore": 85,
		"personalityTraits": map[string]int{
			"openness":          78,
			"conscientiousness": 92,
			"extraversion":      65,
			"agreeableness":     88,
			"neuroticism":       32,
		},
		"strengths":           []string{"Strong problem-solving abilities"},
		"developmentAreas":    []string{"Could improve communication under pressure"},
		"culturalFit":         8.5,
		"technicalMindset":    9.0,
		"leadershipPotential": 7.5,
		"stressResilience":    8.0,
		"githubInsights": map[string]float64{
			"codeQuality":          8.5,
			"activityLevel":        7.0,
			"collaborationScore":   6.5,
			"projectDiversity":     8.0,
			"professionalPresence": 7.5,
		},
		"recommendations": "Proceed to technical interview.",
		"interviewFocus":  []string{"Problem-solving approach"},
		"riskFactors":     []string{"May need support under deadline pressure"},
	}
	if mutate != nil {
		mutate(payload)
	}
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	return string(raw)
}

func TestParseEvaluationValid(t *testing.T) {
	a, err := parseEvaluation(validEvaluationJSON(t, nil), true)
	require.NoError(t, err)

	assert.True(t, a.Completed)
	assert.Equal(t, 85, a.OverallScore)
	assert.Equal(t, 92, a.Traits.Conscientiousness)
	assert.Equal(t, 8.5, a.CulturalFit)
	require.NotNil(t, a.GithubInsights)
	assert.Equal(t, 7.0, a.GithubInsights.ActivityLevel)
	assert.False(t, a.CompletedAt.IsZero())
}

func TestParseEvaluationDropsInsightsWithoutGithubData(t *testing.T) {
	a, err := parseEvaluation(validEvaluationJSON(t, nil), false)
	require.NoError(t, err)
	assert.Nil(t, a.GithubInsights)
}

func TestParseEvaluationRejectsBadPayloads(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(map[string]interface{})
		text   string
	}{
		{name: "not json", text: "the candidate seems fine"},
		{
			name: "overall score above range",
			mutate: func(p map[string]interface{}) {
				p["overallScore"] = 140
			},
		},
		{
			name: "negative overall score",
			mutate: func(p map[string]interface{}) {
				p["overallScore"] = -5
			},
		},
		{
			name: "trait above range",
			mutate: func(p map[string]interface{}) {
				p["personalityTraits"] = map[string]int{
					"openness":          220,
					"conscientiousness": 92,
					"extraversion":      65,
					"agreeableness":     88,
					"neuroticism":       32,
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := tt.text
			if text == "" {
				text = validEvaluationJSON(t, tt.mutate)
			}
			_, err := parseEvaluation(text, true)
			assert.Error(t, err)
		})
	}
}

func TestParseEvaluationNeverReturnsNilLists(t *testing.T) {
	a, err := parseEvaluation(validEvaluationJSON(t, func(p map[string]interface{}) {
		delete(p, "strengths")
		delete(p, "interviewFocus")
	}), true)
	require.NoError(t, err)
	assert.NotNil(t, a.Strengths)
	assert.NotNil(t, a.InterviewFocus)
	assert.Empty(t, a.Strengths)
}

func TestFallbackEvaluationCompletionBand(t *testing.T) {
	tests := []struct {
		name     string
		answered int
		total    int
		min      int
		max      int
	}{
		{name: "full completion", answered: 20, total: 20, min: 80, max: 100},
		{name: "half completion", answered: 10, total: 20, min: 40, max: 50},
		{name: "no answers", answered: 0, total: 20, min: 0, max: 0},
		{name: "empty session", answered: 0, total: 0, min: 0, max: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 50; i++ {
				a := FallbackEvaluation(tt.answered, tt.total, nil)
				assert.GreaterOrEqual(t, a.OverallScore, tt.min)
				assert.LessOrEqual(t, a.OverallScore, tt.max)
			}
		})
	}
}

func TestFallbackEvaluationShape(t *testing.T) {
	a := FallbackEvaluation(15, 20, nil)

	assert.True(t, a.Completed)
	assert.Contains(t, a.RiskFactors, LimitedDataRisk)
	assert.NotEmpty(t, a.Strengths)
	assert.NotEmpty(t, a.DevelopmentAreas)
	assert.NotEmpty(t, a.InterviewFocus)
	assert.NotEmpty(t, a.Recommendations)
	assert.Nil(t, a.GithubInsights)

	for name, v := range map[string]int{
		"openness":          a.Traits.Openness,
		"conscientiousness": a.Traits.Conscientiousness,
		"extraversion":      a.Traits.Extraversion,
		"agreeableness":     a.Traits.Agreeableness,
		"neuroticism":       a.Traits.Neuroticism,
	} {
		assert.GreaterOrEqual(t, v, 0, name)
		assert.LessOrEqual(t, v, 100, name)
	}
}

func TestFallbackEvaluationGithubInsights(t *testing.T) {
	summary := &model.GithubSummary{Repositories: 12, Languages: []string{"Go"}}
	a := FallbackEvaluation(20, 20, summary)
	require.NotNil(t, a.GithubInsights)
	assert.GreaterOrEqual(t, a.GithubInsights.CodeQuality, 70.0)
	assert.LessOrEqual(t, a.GithubInsights.CodeQuality, 100.0)

	failed := &model.GithubSummary{Error: "profile lookup failed"}
	a = FallbackEvaluation(20, 20, failed)
	assert.Nil(t, a.GithubInsights)
}

func TestBuildEvaluationPromptRestatesAnswers(t *testing.T) {
	questions := FallbackQuestions()[:2]
	questions[0].ID = 1
	questions[1].ID = 2

	prompt := buildEvaluationPrompt(EvaluationInput{
		JobTitle:       "Data Scientist",
		JobDescription: "Analyze things",
		Questions:      questions,
		Answers:        map[int]int{1: 2},
		Candidate:      &model.CandidateProfile{FullName: "Sam Doe", GithubUsername: "samdoe"},
	})

	assert.Contains(t, prompt, "Data Scientist")
	assert.Contains(t, prompt, questions[0].Options[2])
	assert.Contains(t, prompt, "Not answered")
	assert.Contains(t, prompt, "GitHub profile data not available")
}
