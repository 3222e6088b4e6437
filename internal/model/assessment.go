package model

import "time"

// GithubInsights are the optional enrichment-derived sub-scores of an
// evaluation, present only when a GitHub summary was available.
type GithubInsights struct {
	CodeQuality          float64 `json:"codeQuality"`
	ActivityLevel        float64 `json:"activityLevel"`
	CollaborationScore   float64 `json:"collaborationScore"`
	ProjectDiversity     float64 `json:"projectDiversity"`
	ProfessionalPresence float64 `json:"professionalPresence"`
}

// Assessment is the scored outcome of one application's psychometric session.
// One row per application; a retake overwrites it.
// swagger:model Assessment
type Assessment struct {
	BaseModel
	ApplicationID       uint            `gorm:"uniqueIndex;type:bigint unsigned;not null" json:"applicationId"`
	Completed           bool            `gorm:"default:false" json:"completed"`
	OverallScore        int             `gorm:"default:0" json:"overallScore"`
	Traits              TraitScores     `gorm:"serializer:json" json:"personalityTraits"`
	Strengths           []string        `gorm:"serializer:json" json:"strengths"`
	DevelopmentAreas    []string        `gorm:"serializer:json" json:"developmentAreas"`
	CulturalFit         float64         `gorm:"default:0" json:"culturalFit"`
	TechnicalMindset    float64         `gorm:"default:0" json:"technicalMindset"`
	LeadershipPotential float64         `gorm:"default:0" json:"leadershipPotential"`
	StressResilience    float64         `gorm:"default:0" json:"stressResilience"`
	GithubInsights      *GithubInsights `gorm:"serializer:json" json:"githubInsights,omitempty"`
	Recommendations     string          `gorm:"type:text" json:"recommendations"`
	InterviewFocus      []string        `gorm:"serializer:json" json:"interviewFocus"`
	RiskFactors         []string        `gorm:"serializer:json" json:"riskFactors"`
	CompletedAt         time.Time       `json:"completedAt"`
}

func (Assessment) TableName() string {
	return "assessments"
}

type SessionStatus string

const (
	SessionInProgress SessionStatus = "in_progress"
	SessionEvaluating SessionStatus = "evaluating"
	SessionCompleted  SessionStatus = "completed"
)

// AssessmentSession is the bounded interaction from question loading through
// submitted evaluation for one application. Questions are generated once at
// start and frozen with the session; answers map question id to the selected
// option index and may change while the session is in progress.
// swagger:model AssessmentSession
type AssessmentSession struct {
	UUIDBase
	ApplicationID uint          `gorm:"index;type:bigint unsigned;not null" json:"applicationId"`
	Status        SessionStatus `gorm:"size:20;default:'in_progress'" json:"status"`
	Questions     []Question    `gorm:"serializer:json" json:"questions"`
	Answers       map[int]int   `gorm:"serializer:json" json:"answers"`
	Fallback      bool          `gorm:"default:false" json:"-"`
	StartedAt     time.Time     `json:"startedAt"`
	ExpiresAt     time.Time     `gorm:"index" json:"expiresAt"`
	CompletedAt   *time.Time    `json:"completedAt,omitempty"`
}

func (AssessmentSession) TableName() string {
	return "assessment_sessions"
}

// Remaining reports the whole seconds left on the session countdown, never
// negative.
func (s *AssessmentSession) Remaining(now time.Time) int {
	left := int(s.ExpiresAt.Sub(now).Seconds())
	if left < 0 {
		return 0
	}
	return left
}
