package model

type ExperienceLevel string

const (
	Entry  ExperienceLevel = "Entry"
	Mid    ExperienceLevel = "Mid"
	Senior ExperienceLevel = "Senior"
)

// swagger:model JobOpening
type JobOpening struct {
	BaseModel
	OrganizationID uint            `gorm:"index;type:bigint unsigned;not null" json:"organizationId"`
	Organization   *Organization   `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`
	Title          string          `gorm:"size:255;not null" json:"title"`
	Description    string          `gorm:"type:text;not null" json:"description"`
	Requirements   []string        `gorm:"serializer:json" json:"requirements"`
	RequiredSkills []string        `gorm:"serializer:json" json:"requiredSkills"`
	Experience     ExperienceLevel `gorm:"type:enum('Entry','Mid','Senior');default:'Mid'" json:"experience"`
	EmploymentType string          `gorm:"size:50;default:'Full-time'" json:"employmentType"`
	Location       string          `gorm:"size:255" json:"location,omitempty"`
	SalaryRange    string          `gorm:"size:100" json:"salaryRange,omitempty"`
	IsActive       bool            `gorm:"default:true" json:"isActive"`
}

func (JobOpening) TableName() string {
	return "job_openings"
}
