package repository

import (
	"trait_tracer_backend/internal/model"

	"gorm.io/gorm"
)

type OrganizationRepository struct {
	DB *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{DB: db}
}

func (r *OrganizationRepository) Create(org *model.Organization) error {
	return r.DB.Create(org).Error
}

func (r *OrganizationRepository) FindByID(id uint) (*model.Organization, error) {
	var org model.Organization
	err := r.DB.First(&org, id).Error
	return &org, err
}

// ListByRecruiter scopes organizations to their owning recruiter, newest
// first.
func (r *OrganizationRepository) ListByRecruiter(recruiterID uint) ([]model.Organization, error) {
	var orgs []model.Organization
	err := r.DB.Where("recruiter_id = ?", recruiterID).
		Order("created_at desc").Find(&orgs).Error
	return orgs, err
}

func (r *OrganizationRepository) Update(org *model.Organization) error {
	return r.DB.Save(org).Error
}

func (r *OrganizationRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Organization{}, id).Error
}
