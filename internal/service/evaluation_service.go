package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"
	"trait_tracer_backend/internal/model"
	"trait_tracer_backend/pkg/logger"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// LimitedDataRisk is the risk-factor entry that marks a fallback evaluation.
const LimitedDataRisk = "Limited assessment data - recommend additional evaluation"

// EvaluationInput bundles everything the evaluator prompt restates: the job,
// the frozen question set, the sparse answer map (question id to option
// index; unanswered questions are absent), candidate identity and the
// optional enrichment summary.
type EvaluationInput struct {
	JobTitle       string
	JobDescription string
	Questions      []model.Question
	Answers        map[int]int
	Candidate      *model.CandidateProfile
	Github         *model.GithubSummary
}

// EvaluationService turns a submitted session into a complete Assessment.
// Any live-call failure produces a synthetic but schema-valid evaluation, so
// the caller always receives a result it can persist.
type EvaluationService struct {
	Gemini *GeminiService
}

func NewEvaluationService(gemini *GeminiService) *EvaluationService {
	return &EvaluationService{Gemini: gemini}
}

// Evaluate scores the candidate and reports whether the fallback evaluator
// was substituted.
func (s *EvaluationService) Evaluate(ctx context.Context, in EvaluationInput) (model.Assessment, bool) {
	prompt := buildEvaluationPrompt(in)

	text, err := s.Gemini.GenerateJSON(ctx, prompt, &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(0.3)),
		TopK:            genai.Ptr(float32(40)),
		TopP:            genai.Ptr(float32(0.95)),
		MaxOutputTokens: 2500,
		ResponseSchema:  evaluationSchema(),
	})
	if err != nil {
		logger.Log.Warn("candidate evaluation falling back to synthetic scoring",
			zap.String("job_title", in.JobTitle), zap.Error(err))
		return FallbackEvaluation(len(in.Answers), len(in.Questions), in.Github), true
	}

	assessment, err := parseEvaluation(text, in.Github != nil)
	if err != nil {
		logger.Log.Warn("evaluation response failed validation, using synthetic scoring",
			zap.String("job_title", in.JobTitle), zap.Error(err))
		return FallbackEvaluation(len(in.Answers), len(in.Questions), in.Github), true
	}

	return assessment, false
}

func buildEvaluationPrompt(in EvaluationInput) string {
	var answers strings.Builder
	for i, q := range in.Questions {
		optionText := "Not answered"
		if idx, ok := in.Answers[q.ID]; ok && idx >= 0 && idx < len(q.Options) {
			optionText = q.Options[idx]
		}
		fmt.Fprintf(&answers, "Question %d: %s\nSelected Answer: %s\nCategory: %s\n\n",
			i+1, q.Question, optionText, q.Category)
	}

	githubAnalysis := "GitHub profile data not available"
	if gh := in.Github; gh != nil && gh.Error == "" {
		githubAnalysis = fmt.Sprintf(`GitHub Profile Analysis:
- Public Repositories: %d
- Followers: %d
- Languages: %s
- Total Stars: %d
- Total Forks: %d
- Account Age: %s
- Professional Profile: %t`,
			gh.Repositories, gh.Followers, strings.Join(gh.Languages, ", "),
			gh.TotalStars, gh.TotalForks, gh.AccountAge, gh.ProfessionalProfile)
	}

	candidate := in.Candidate
	if candidate == nil {
		candidate = &model.CandidateProfile{}
	}

	return fmt.Sprintf(`Evaluate a candidate applying for %s position based on their psychometric test responses and GitHub profile.

Job Title: %s
Job Description: %s

Candidate Information:
- Name: %s
- Location: %s
- GitHub: %s

%s

Psychometric Test Responses:
%s
Provide a comprehensive evaluation as a JSON object with: overallScore (0-100),
personalityTraits (openness, conscientiousness, extraversion, agreeableness,
neuroticism, each 0-100), strengths, developmentAreas, culturalFit,
technicalMindset, leadershipPotential, stressResilience (each 0-10),
githubInsights (codeQuality, activityLevel, collaborationScore,
projectDiversity, professionalPresence, each 0-10) when GitHub data is
available, recommendations (one paragraph), interviewFocus, riskFactors.
Provide specific, actionable insights based on both the psychometric responses
and the GitHub profile that would help recruiters make informed decisions.`,
		in.JobTitle, in.JobTitle, in.JobDescription,
		candidate.FullName, candidate.Location, candidate.GithubUsername,
		githubAnalysis, answers.String())
}

func evaluationSchema() *genai.Schema {
	stringArray := &genai.Schema{Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}}
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"overallScore": {Type: genai.TypeInteger},
			"personalityTraits": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"openness":          {Type: genai.TypeInteger},
					"conscientiousness": {Type: genai.TypeInteger},
					"extraversion":      {Type: genai.TypeInteger},
					"agreeableness":     {Type: genai.TypeInteger},
					"neuroticism":       {Type: genai.TypeInteger},
				},
				Required: []string{"openness", "conscientiousness", "extraversion", "agreeableness", "neuroticism"},
			},
			"strengths":           stringArray,
			"developmentAreas":    stringArray,
			"culturalFit":         {Type: genai.TypeNumber},
			"technicalMindset":    {Type: genai.TypeNumber},
			"leadershipPotential": {Type: genai.TypeNumber},
			"stressResilience":    {Type: genai.TypeNumber},
			"githubInsights": {
				Type:     genai.TypeObject,
				Nullable: genai.Ptr(true),
				Properties: map[string]*genai.Schema{
					"codeQuality":          {Type: genai.TypeNumber},
					"activityLevel":        {Type: genai.TypeNumber},
					"collaborationScore":   {Type: genai.TypeNumber},
					"projectDiversity":     {Type: genai.TypeNumber},
					"professionalPresence": {Type: genai.TypeNumber},
				},
			},
			"recommendations": {Type: genai.TypeString},
			"interviewFocus":  stringArray,
			"riskFactors":     stringArray,
		},
		Required: []string{"overallScore", "personalityTraits", "strengths", "developmentAreas",
			"culturalFit", "technicalMindset", "leadershipPotential", "stressResilience",
			"recommendations", "interviewFocus", "riskFactors"},
	}
}

// evaluationPayload is the wire shape of the model's evaluation response.
type evaluationPayload struct {
	OverallScore        int                   `json:"overallScore"`
	PersonalityTraits   model.TraitScores     `json:"personalityTraits"`
	Strengths           []string              `json:"strengths"`
	DevelopmentAreas    []string              `json:"developmentAreas"`
	CulturalFit         float64               `json:"culturalFit"`
	TechnicalMindset    float64               `json:"technicalMindset"`
	LeadershipPotential float64               `json:"leadershipPotential"`
	StressResilience    float64               `json:"stressResilience"`
	GithubInsights      *model.GithubInsights `json:"githubInsights"`
	Recommendations     string                `json:"recommendations"`
	InterviewFocus      []string              `json:"interviewFocus"`
	RiskFactors         []string              `json:"riskFactors"`
}

func parseEvaluation(text string, githubAvailable bool) (model.Assessment, error) {
	var a model.Assessment

	if !gjson.Valid(text) {
		return a, fmt.Errorf("response is not valid JSON")
	}

	var payload evaluationPayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return a, fmt.Errorf("unmarshal evaluation: %w", err)
	}

	if payload.OverallScore < 0 || payload.OverallScore > 100 {
		return a, fmt.Errorf("overall score %d out of range", payload.OverallScore)
	}
	for name, v := range map[string]int{
		"openness":          payload.PersonalityTraits.Openness,
		"conscientiousness": payload.PersonalityTraits.Conscientiousness,
		"extraversion":      payload.PersonalityTraits.Extraversion,
		"agreeableness":     payload.PersonalityTraits.Agreeableness,
		"neuroticism":       payload.PersonalityTraits.Neuroticism,
	} {
		if v < 0 || v > 100 {
			return a, fmt.Errorf("trait %s score %d out of range", name, v)
		}
	}

	a = model.Assessment{
		Completed:           true,
		OverallScore:        payload.OverallScore,
		Traits:              payload.PersonalityTraits,
		Strengths:           ensureList(payload.Strengths),
		DevelopmentAreas:    ensureList(payload.DevelopmentAreas),
		CulturalFit:         payload.CulturalFit,
		TechnicalMindset:    payload.TechnicalMindset,
		LeadershipPotential: payload.LeadershipPotential,
		StressResilience:    payload.StressResilience,
		Recommendations:     payload.Recommendations,
		InterviewFocus:      ensureList(payload.InterviewFocus),
		RiskFactors:         ensureList(payload.RiskFactors),
		CompletedAt:         time.Now(),
	}
	if githubAvailable {
		a.GithubInsights = payload.GithubInsights
	}
	return a, nil
}

// FallbackEvaluation produces a synthetic assessment when the generative API
// is unavailable. The overall score is the completion ratio scaled by a
// random multiplier in [0.8, 1.0]. The risk factors always flag the limited
// data.
func FallbackEvaluation(answered, total int, github *model.GithubSummary) model.Assessment {
	completionRate := 0.0
	if total > 0 {
		completionRate = float64(answered) / float64(total) * 100
	}
	baseScore := math.Min(completionRate, 100)
	overallScore := int(math.Round(baseScore * (0.8 + rand.Float64()*0.2)))

	var insights *model.GithubInsights
	if github != nil && github.Error == "" {
		insights = &model.GithubInsights{
			CodeQuality:          round1(70 + rand.Float64()*30),
			ActivityLevel:        round1(60 + rand.Float64()*40),
			CollaborationScore:   round1(50 + rand.Float64()*50),
			ProjectDiversity:     round1(60 + rand.Float64()*40),
			ProfessionalPresence: round1(60 + rand.Float64()*40),
		}
	}

	return model.Assessment{
		Completed:    true,
		OverallScore: overallScore,
		Traits: model.TraitScores{
			Openness:          60 + rand.Intn(41),
			Conscientiousness: 60 + rand.Intn(41),
			Extraversion:      40 + rand.Intn(61),
			Agreeableness:     60 + rand.Intn(41),
			Neuroticism:       20 + rand.Intn(41),
		},
		Strengths: []string{
			"Problem-solving abilities",
			"Team collaboration",
			"Technical aptitude",
			"Adaptability",
		},
		DevelopmentAreas: []string{
			"Communication under pressure",
			"Leadership development",
			"Time management optimization",
		},
		CulturalFit:         round1(70 + rand.Float64()*30),
		TechnicalMindset:    round1(70 + rand.Float64()*30),
		LeadershipPotential: round1(60 + rand.Float64()*40),
		StressResilience:    round1(60 + rand.Float64()*40),
		GithubInsights:      insights,
		Recommendations:     "Candidate shows good potential for the role. Recommend proceeding to next interview stage with focus on technical and behavioral assessment.",
		InterviewFocus: []string{
			"Technical problem-solving",
			"Team collaboration examples",
			"Project management experience",
			"Learning and adaptation strategies",
		},
		RiskFactors: []string{LimitedDataRisk},
		CompletedAt: time.Now(),
	}
}

func ensureList(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
