package model

import "time"

type ApplicationStatus string

const (
	ApplicationApplied  ApplicationStatus = "applied"
	ApplicationAssessed ApplicationStatus = "assessed"
)

// GithubSummary is the enrichment derived from a candidate's public GitHub
// profile at application time. A failed lookup stores a zero-valued summary
// with Error set; the application itself always goes through.
type GithubSummary struct {
	Repositories        int      `json:"repositories"`
	Languages           []string `json:"languages"`
	TotalStars          int      `json:"totalStars"`
	TotalForks          int      `json:"totalForks"`
	AccountAge          string   `json:"accountAge"`
	Followers           int      `json:"followers"`
	ProfessionalProfile bool     `json:"professionalProfile"`
	Error               string   `json:"error,omitempty"`
}

// swagger:model Application
type Application struct {
	BaseModel
	CandidateID   uint              `gorm:"index:idx_candidate_job,unique;type:bigint unsigned;not null" json:"candidateId"`
	Candidate     *CandidateProfile `gorm:"foreignKey:CandidateID" json:"candidate,omitempty"`
	JobOpeningID  uint              `gorm:"index:idx_candidate_job,unique;index;type:bigint unsigned;not null" json:"jobOpeningId"`
	JobOpening    *JobOpening       `gorm:"foreignKey:JobOpeningID" json:"jobOpening,omitempty"`
	Status        ApplicationStatus `gorm:"size:20;default:'applied'" json:"status"`
	GithubSummary *GithubSummary    `gorm:"serializer:json" json:"githubSummary,omitempty"`
	AppliedAt     time.Time         `json:"appliedAt"`
	Assessment    *Assessment       `gorm:"foreignKey:ApplicationID" json:"assessment,omitempty"`
}

func (Application) TableName() string {
	return "applications"
}
