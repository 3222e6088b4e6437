package model

// swagger:model Organization
type Organization struct {
	BaseModel
	RecruiterID uint   `gorm:"index;type:bigint unsigned;not null" json:"recruiterId"`
	Name        string `gorm:"size:255;not null" json:"name"`
	Industry    string `gorm:"size:100" json:"industry,omitempty"`
	CompanySize string `gorm:"size:50" json:"companySize,omitempty"`
	Website     string `gorm:"size:255" json:"website,omitempty"`
	LogoURL     string `gorm:"size:255" json:"logoUrl,omitempty"`
	Description string `gorm:"type:text" json:"description,omitempty"`
}

func (Organization) TableName() string {
	return "organizations"
}
