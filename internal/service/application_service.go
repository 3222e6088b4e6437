package service

import (
	"context"
	"errors"
	"time"
	"trait_tracer_backend/internal/model"
	"trait_tracer_backend/internal/repository"
	"trait_tracer_backend/internal/util"
	"trait_tracer_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ApplicationService handles the candidate side of the pipeline: profile
// upkeep, applying to openings with GitHub enrichment, and both parties'
// application views.
type ApplicationService struct {
	AppRepo       *repository.ApplicationRepository
	CandidateRepo *repository.CandidateRepository
	JobRepo       *repository.JobRepository
	OrgRepo       *repository.OrganizationRepository
	Github        *GithubService
}

func NewApplicationService(appRepo *repository.ApplicationRepository, candidateRepo *repository.CandidateRepository,
	jobRepo *repository.JobRepository, orgRepo *repository.OrganizationRepository, github *GithubService) *ApplicationService {
	return &ApplicationService{
		AppRepo:       appRepo,
		CandidateRepo: candidateRepo,
		JobRepo:       jobRepo,
		OrgRepo:       orgRepo,
		Github:        github,
	}
}

func (s *ApplicationService) Profile(userID uint) (*model.CandidateProfile, error) {
	profile, err := s.CandidateRepo.FindByUserID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrProfileIncomplete
	}
	return profile, err
}

// SaveProfile creates or updates the candidate's profile. Full name and email
// are mandatory; everything else is optional.
func (s *ApplicationService) SaveProfile(userID uint, profile *model.CandidateProfile) error {
	if profile.FullName == "" || !util.IsValidEmail(profile.Email) {
		return util.ErrProfileIncomplete
	}
	profile.UserID = userID
	return s.CandidateRepo.Upsert(profile)
}

// Apply files an application against an active opening. The GitHub lookup is
// best-effort: a failure stores a marker summary and the application still
// goes through.
func (s *ApplicationService) Apply(ctx context.Context, userID, jobID uint) (*model.Application, error) {
	profile, err := s.CandidateRepo.FindByUserID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrProfileIncomplete
	}
	if err != nil {
		return nil, err
	}

	job, err := s.JobRepo.FindByID(jobID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrJobNotFound
	}
	if err != nil {
		return nil, err
	}
	if !job.IsActive {
		return nil, util.ErrJobInactive
	}

	if _, err := s.AppRepo.FindByCandidateAndJob(profile.ID, jobID); err == nil {
		return nil, util.ErrAlreadyApplied
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var summary *model.GithubSummary
	if profile.GithubUsername != "" {
		summary = s.Github.Analyze(ctx, profile.GithubUsername)
		if summary == nil {
			summary = &model.GithubSummary{Error: "profile lookup failed"}
			logger.Log.Warn("application filed without github enrichment",
				zap.Uint("candidate_id", profile.ID),
				zap.String("github_username", profile.GithubUsername))
		}
	}

	app := &model.Application{
		CandidateID:   profile.ID,
		JobOpeningID:  jobID,
		Status:        model.ApplicationApplied,
		GithubSummary: summary,
		AppliedAt:     time.Now(),
	}
	if err := s.AppRepo.Create(app); err != nil {
		return nil, err
	}

	logger.Log.Info("application filed",
		zap.Uint("application_id", app.ID),
		zap.Uint("candidate_id", profile.ID),
		zap.Uint("job_id", jobID))
	return app, nil
}

// ListForCandidate returns the user's applications with job and assessment
// context, newest first.
func (s *ApplicationService) ListForCandidate(userID uint) ([]model.Application, error) {
	profile, err := s.CandidateRepo.FindByUserID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []model.Application{}, nil
	}
	if err != nil {
		return nil, err
	}
	return s.AppRepo.ListByCandidate(profile.ID)
}

// ListForJob is the recruiter review view: candidates plus assessment rows
// for one opening the recruiter owns.
func (s *ApplicationService) ListForJob(recruiterID, jobID uint) ([]model.Application, error) {
	job, err := s.JobRepo.FindByID(jobID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrJobNotFound
	}
	if err != nil {
		return nil, err
	}
	org, err := s.OrgRepo.FindByID(job.OrganizationID)
	if err != nil {
		return nil, err
	}
	if org.RecruiterID != recruiterID {
		return nil, util.ErrPermissionDenied
	}
	return s.AppRepo.ListByJob(jobID)
}

func (s *ApplicationService) GetForCandidate(userID, applicationID uint) (*model.Application, error) {
	profile, err := s.CandidateRepo.FindByUserID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrApplicationMissing
	}
	if err != nil {
		return nil, err
	}
	app, err := s.AppRepo.FindByID(applicationID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrApplicationMissing
	}
	if err != nil {
		return nil, err
	}
	if app.CandidateID != profile.ID {
		return nil, util.ErrPermissionDenied
	}
	return app, nil
}
