package repository

import (
	"trait_tracer_backend/internal/model"

	"gorm.io/gorm"
)

type ApplicationRepository struct {
	DB *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{DB: db}
}

func (r *ApplicationRepository) Create(app *model.Application) error {
	return r.DB.Create(app).Error
}

func (r *ApplicationRepository) FindByID(id uint) (*model.Application, error) {
	var app model.Application
	err := r.DB.Preload("Candidate").Preload("JobOpening").Preload("Assessment").
		First(&app, id).Error
	return &app, err
}

func (r *ApplicationRepository) FindByCandidateAndJob(candidateID, jobID uint) (*model.Application, error) {
	var app model.Application
	err := r.DB.Where("candidate_id = ? AND job_opening_id = ?", candidateID, jobID).
		First(&app).Error
	return &app, err
}

// ListByJob returns a job's applications with candidate and assessment rows
// embedded, newest application first. This is the recruiter review view.
func (r *ApplicationRepository) ListByJob(jobID uint) ([]model.Application, error) {
	var apps []model.Application
	err := r.DB.Where("job_opening_id = ?", jobID).
		Preload("Candidate").Preload("Assessment").
		Order("applied_at desc").Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepository) ListByCandidate(candidateID uint) ([]model.Application, error) {
	var apps []model.Application
	err := r.DB.Where("candidate_id = ?", candidateID).
		Preload("JobOpening").Preload("JobOpening.Organization").Preload("Assessment").
		Order("applied_at desc").Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepository) UpdateStatus(id uint, status model.ApplicationStatus) error {
	return r.DB.Model(&model.Application{}).Where("id = ?", id).
		Update("status", status).Error
}
