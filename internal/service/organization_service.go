package service

import (
	"errors"
	"trait_tracer_backend/internal/model"
	"trait_tracer_backend/internal/repository"
	"trait_tracer_backend/internal/util"

	"gorm.io/gorm"
)

// OrganizationService manages the recruiter-owned company records that job
// openings hang off.
type OrganizationService struct {
	OrgRepo *repository.OrganizationRepository
}

func NewOrganizationService(orgRepo *repository.OrganizationRepository) *OrganizationService {
	return &OrganizationService{OrgRepo: orgRepo}
}

func (s *OrganizationService) Create(recruiterID uint, org *model.Organization) error {
	org.RecruiterID = recruiterID
	return s.OrgRepo.Create(org)
}

func (s *OrganizationService) List(recruiterID uint) ([]model.Organization, error) {
	return s.OrgRepo.ListByRecruiter(recruiterID)
}

func (s *OrganizationService) Get(recruiterID, orgID uint) (*model.Organization, error) {
	org, err := s.OrgRepo.FindByID(orgID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrOrganizationMissing
	}
	if err != nil {
		return nil, err
	}
	if org.RecruiterID != recruiterID {
		return nil, util.ErrPermissionDenied
	}
	return org, nil
}

func (s *OrganizationService) Update(recruiterID uint, orgID uint, update *model.Organization) (*model.Organization, error) {
	org, err := s.Get(recruiterID, orgID)
	if err != nil {
		return nil, err
	}

	org.Name = update.Name
	org.Industry = update.Industry
	org.CompanySize = update.CompanySize
	org.Website = update.Website
	org.Description = update.Description
	if update.LogoURL != "" {
		org.LogoURL = update.LogoURL
	}

	if err := s.OrgRepo.Update(org); err != nil {
		return nil, err
	}
	return org, nil
}

func (s *OrganizationService) SetLogo(recruiterID, orgID uint, logoURL string) (*model.Organization, error) {
	org, err := s.Get(recruiterID, orgID)
	if err != nil {
		return nil, err
	}
	org.LogoURL = logoURL
	if err := s.OrgRepo.Update(org); err != nil {
		return nil, err
	}
	return org, nil
}

func (s *OrganizationService) Delete(recruiterID, orgID uint) error {
	if _, err := s.Get(recruiterID, orgID); err != nil {
		return err
	}
	return s.OrgRepo.Delete(orgID)
}
