package service

import (
	"errors"
	"trait_tracer_backend/internal/model"
	"trait_tracer_backend/internal/repository"
	"trait_tracer_backend/internal/util"

	"gorm.io/gorm"
)

// JobService manages job openings. Recruiters publish and retire openings
// under their organizations; candidates browse the active ones.
type JobService struct {
	JobRepo *repository.JobRepository
	OrgRepo *repository.OrganizationRepository
}

func NewJobService(jobRepo *repository.JobRepository, orgRepo *repository.OrganizationRepository) *JobService {
	return &JobService{JobRepo: jobRepo, OrgRepo: orgRepo}
}

func (s *JobService) Create(recruiterID uint, job *model.JobOpening) error {
	org, err := s.OrgRepo.FindByID(job.OrganizationID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrOrganizationMissing
	}
	if err != nil {
		return err
	}
	if org.RecruiterID != recruiterID {
		return util.ErrPermissionDenied
	}

	job.Requirements = util.FilterBlank(job.Requirements)
	job.RequiredSkills = util.FilterBlank(job.RequiredSkills)
	job.IsActive = true
	return s.JobRepo.Create(job)
}

// ListActive returns the candidate-facing job board page.
func (s *JobService) ListActive(page, limit int) ([]model.JobOpening, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.JobRepo.ListActive(page, limit)
}

func (s *JobService) Get(jobID uint) (*model.JobOpening, error) {
	job, err := s.JobRepo.FindByID(jobID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrJobNotFound
	}
	return job, err
}

func (s *JobService) ListByOrganization(recruiterID, orgID uint) ([]model.JobOpening, error) {
	if err := s.authorizeOrg(recruiterID, orgID); err != nil {
		return nil, err
	}
	return s.JobRepo.ListByOrganization(orgID)
}

func (s *JobService) Update(recruiterID, jobID uint, update *model.JobOpening) (*model.JobOpening, error) {
	job, err := s.ownedJob(recruiterID, jobID)
	if err != nil {
		return nil, err
	}

	job.Title = update.Title
	job.Description = update.Description
	job.Requirements = util.FilterBlank(update.Requirements)
	job.RequiredSkills = util.FilterBlank(update.RequiredSkills)
	job.Experience = update.Experience
	job.EmploymentType = update.EmploymentType
	job.Location = update.Location
	job.SalaryRange = update.SalaryRange

	if err := s.JobRepo.Update(job); err != nil {
		return nil, err
	}
	return job, nil
}

// Deactivate retires an opening from the board. Existing applications and
// assessments stay readable.
func (s *JobService) Deactivate(recruiterID, jobID uint) error {
	if _, err := s.ownedJob(recruiterID, jobID); err != nil {
		return err
	}
	return s.JobRepo.Deactivate(jobID)
}

func (s *JobService) ownedJob(recruiterID, jobID uint) (*model.JobOpening, error) {
	job, err := s.JobRepo.FindByID(jobID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrJobNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := s.authorizeOrg(recruiterID, job.OrganizationID); err != nil {
		return nil, err
	}
	return job, nil
}

func (s *JobService) authorizeOrg(recruiterID, orgID uint) error {
	org, err := s.OrgRepo.FindByID(orgID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrOrganizationMissing
	}
	if err != nil {
		return err
	}
	if org.RecruiterID != recruiterID {
		return util.ErrPermissionDenied
	}
	return nil
}
