package repository

import (
	"errors"
	"trait_tracer_backend/internal/model"

	"gorm.io/gorm"
)

type CandidateRepository struct {
	DB *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) *CandidateRepository {
	return &CandidateRepository{DB: db}
}

func (r *CandidateRepository) FindByUserID(userID uint) (*model.CandidateProfile, error) {
	var profile model.CandidateProfile
	err := r.DB.Where("user_id = ?", userID).First(&profile).Error
	return &profile, err
}

func (r *CandidateRepository) FindByID(id uint) (*model.CandidateProfile, error) {
	var profile model.CandidateProfile
	err := r.DB.First(&profile, id).Error
	return &profile, err
}

// Upsert creates the profile on first application and refreshes it on later
// ones. One profile row per user.
func (r *CandidateRepository) Upsert(profile *model.CandidateProfile) error {
	var existing model.CandidateProfile
	err := r.DB.Where("user_id = ?", profile.UserID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.DB.Create(profile).Error
	}
	if err != nil {
		return err
	}
	profile.ID = existing.ID
	profile.CreatedAt = existing.CreatedAt
	return r.DB.Save(profile).Error
}
