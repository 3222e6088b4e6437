package repository

import (
	"errors"
	"time"
	"trait_tracer_backend/internal/model"

	"gorm.io/gorm"
)

type AssessmentRepository struct {
	DB *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{DB: db}
}

// UpsertForApplication writes an application's assessment, overwriting any
// earlier one. Retakes keep the row identity and replace the scores.
func (r *AssessmentRepository) UpsertForApplication(a *model.Assessment) error {
	var existing model.Assessment
	err := r.DB.Where("application_id = ?", a.ApplicationID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.DB.Create(a).Error
	}
	if err != nil {
		return err
	}
	a.ID = existing.ID
	a.CreatedAt = existing.CreatedAt
	return r.DB.Save(a).Error
}

func (r *AssessmentRepository) FindByApplicationID(applicationID uint) (*model.Assessment, error) {
	var a model.Assessment
	err := r.DB.Where("application_id = ?", applicationID).First(&a).Error
	return &a, err
}

// Session methods

func (r *AssessmentRepository) CreateSession(s *model.AssessmentSession) error {
	return r.DB.Create(s).Error
}

func (r *AssessmentRepository) FindSessionByID(id string) (*model.AssessmentSession, error) {
	var s model.AssessmentSession
	err := r.DB.Where("id = ?", id).First(&s).Error
	return &s, err
}

func (r *AssessmentRepository) FindOpenSessionByApplication(applicationID uint) (*model.AssessmentSession, error) {
	var s model.AssessmentSession
	err := r.DB.Where("application_id = ? AND status = ?", applicationID, model.SessionInProgress).
		Order("started_at desc").First(&s).Error
	return &s, err
}

func (r *AssessmentRepository) SaveAnswers(sessionID string, answers map[int]int) error {
	return r.DB.Model(&model.AssessmentSession{}).Where("id = ?", sessionID).
		Update("answers", answers).Error
}

// BeginEvaluation moves a session from in_progress to evaluating. The status
// precondition makes the transition win-once: when the deadline sweep and an
// explicit submit race, exactly one caller sees true.
func (r *AssessmentRepository) BeginEvaluation(sessionID string) (bool, error) {
	res := r.DB.Model(&model.AssessmentSession{}).
		Where("id = ? AND status = ?", sessionID, model.SessionInProgress).
		Update("status", model.SessionEvaluating)
	return res.RowsAffected == 1, res.Error
}

func (r *AssessmentRepository) CompleteSession(sessionID string, at time.Time) error {
	return r.DB.Model(&model.AssessmentSession{}).Where("id = ?", sessionID).
		Updates(map[string]interface{}{
			"status":       model.SessionCompleted,
			"completed_at": at,
		}).Error
}

// ListExpiredInProgress returns sessions whose countdown has run out but that
// were never submitted; the sweeper evaluates them with whatever answers
// exist.
func (r *AssessmentRepository) ListExpiredInProgress(now time.Time) ([]model.AssessmentSession, error) {
	var sessions []model.AssessmentSession
	err := r.DB.Where("status = ? AND expires_at <= ?", model.SessionInProgress, now).
		Find(&sessions).Error
	return sessions, err
}
