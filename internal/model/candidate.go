package model

// CandidateProfile carries the personal information collected on the
// application form. One row per authenticated candidate user.
// swagger:model CandidateProfile
type CandidateProfile struct {
	BaseModel
	UserID          uint   `gorm:"uniqueIndex;type:bigint unsigned;not null" json:"userId"`
	FullName        string `gorm:"size:100;not null" json:"fullName"`
	Email           string `gorm:"size:100;not null" json:"email"`
	Phone           string `gorm:"size:50;not null" json:"phone"`
	Location        string `gorm:"size:255" json:"location"`
	GithubUsername  string `gorm:"size:100" json:"githubUsername"`
	LinkedinProfile string `gorm:"size:255" json:"linkedinProfile,omitempty"`
}

func (CandidateProfile) TableName() string {
	return "candidate_profiles"
}
