package repository

import (
	"time"
	"trait_tracer_backend/internal/model"

	"gorm.io/gorm"
)

type AnalyticsRepository struct {
	DB *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{DB: db}
}

// TopPerformer is one row of the recruiter leaderboard.
type TopPerformer struct {
	ApplicationID uint   `json:"applicationId"`
	CandidateName string `json:"candidateName"`
	JobTitle      string `json:"jobTitle"`
	OverallScore  int    `json:"overallScore"`
}

func (r *AnalyticsRepository) CountJobs(organizationID uint) (int64, error) {
	var n int64
	err := r.DB.Model(&model.JobOpening{}).
		Where("organization_id = ?", organizationID).Count(&n).Error
	return n, err
}

func (r *AnalyticsRepository) CountApplications(organizationID uint) (int64, error) {
	var n int64
	err := r.DB.Model(&model.Application{}).
		Joins("JOIN job_openings ON job_openings.id = applications.job_opening_id").
		Where("job_openings.organization_id = ?", organizationID).
		Count(&n).Error
	return n, err
}

func (r *AnalyticsRepository) CountCompletedAssessments(organizationID uint) (int64, error) {
	var n int64
	err := r.DB.Model(&model.Assessment{}).
		Joins("JOIN applications ON applications.id = assessments.application_id").
		Joins("JOIN job_openings ON job_openings.id = applications.job_opening_id").
		Where("job_openings.organization_id = ? AND assessments.completed = ?", organizationID, true).
		Count(&n).Error
	return n, err
}

// AverageScore is the mean overall score across an organization's completed
// assessments, zero when none exist.
func (r *AnalyticsRepository) AverageScore(organizationID uint) (float64, error) {
	var avg *float64
	err := r.DB.Model(&model.Assessment{}).
		Select("AVG(assessments.overall_score)").
		Joins("JOIN applications ON applications.id = assessments.application_id").
		Joins("JOIN job_openings ON job_openings.id = applications.job_opening_id").
		Where("job_openings.organization_id = ? AND assessments.completed = ?", organizationID, true).
		Scan(&avg).Error
	if err != nil || avg == nil {
		return 0, err
	}
	return *avg, nil
}

func (r *AnalyticsRepository) TopPerformers(organizationID uint, limit int) ([]TopPerformer, error) {
	var rows []TopPerformer
	err := r.DB.Model(&model.Assessment{}).
		Select("applications.id as application_id, candidate_profiles.full_name as candidate_name, job_openings.title as job_title, assessments.overall_score").
		Joins("JOIN applications ON applications.id = assessments.application_id").
		Joins("JOIN candidate_profiles ON candidate_profiles.id = applications.candidate_id").
		Joins("JOIN job_openings ON job_openings.id = applications.job_opening_id").
		Where("job_openings.organization_id = ? AND assessments.completed = ?", organizationID, true).
		Order("assessments.overall_score desc").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// RecentActivity counts applications, jobs and completed assessments created
// inside the trailing window.
func (r *AnalyticsRepository) RecentActivity(organizationID uint, since time.Time) (newApplications, newJobs, completedTests int64, err error) {
	err = r.DB.Model(&model.Application{}).
		Joins("JOIN job_openings ON job_openings.id = applications.job_opening_id").
		Where("job_openings.organization_id = ? AND applications.applied_at > ?", organizationID, since).
		Count(&newApplications).Error
	if err != nil {
		return
	}

	err = r.DB.Model(&model.JobOpening{}).
		Where("organization_id = ? AND created_at > ?", organizationID, since).
		Count(&newJobs).Error
	if err != nil {
		return
	}

	err = r.DB.Model(&model.Assessment{}).
		Joins("JOIN applications ON applications.id = assessments.application_id").
		Joins("JOIN job_openings ON job_openings.id = applications.job_opening_id").
		Where("job_openings.organization_id = ? AND assessments.completed = ? AND assessments.completed_at > ?",
			organizationID, true, since).
		Count(&completedTests).Error
	return
}
