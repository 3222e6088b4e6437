package repository

import (
	"trait_tracer_backend/internal/model"

	"gorm.io/gorm"
)

type JobRepository struct {
	DB *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{DB: db}
}

func (r *JobRepository) Create(job *model.JobOpening) error {
	return r.DB.Create(job).Error
}

func (r *JobRepository) FindByID(id uint) (*model.JobOpening, error) {
	var job model.JobOpening
	err := r.DB.Preload("Organization").First(&job, id).Error
	return &job, err
}

// ListActive returns every active opening across organizations, for the
// public job board.
func (r *JobRepository) ListActive(page, limit int) ([]model.JobOpening, int64, error) {
	var jobs []model.JobOpening
	var total int64
	query := r.DB.Model(&model.JobOpening{}).Where("is_active = ?", true)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Preload("Organization").
		Order("created_at desc").Offset(offset).Limit(limit).Find(&jobs).Error
	return jobs, total, err
}

func (r *JobRepository) ListByOrganization(organizationID uint) ([]model.JobOpening, error) {
	var jobs []model.JobOpening
	err := r.DB.Where("organization_id = ?", organizationID).
		Order("created_at desc").Find(&jobs).Error
	return jobs, err
}

func (r *JobRepository) Update(job *model.JobOpening) error {
	return r.DB.Save(job).Error
}

func (r *JobRepository) Deactivate(id uint) error {
	return r.DB.Model(&model.JobOpening{}).Where("id = ?", id).
		Update("is_active", false).Error
}
