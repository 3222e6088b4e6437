package service

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"
	"trait_tracer_backend/internal/model"
	"trait_tracer_backend/internal/util"
	"trait_tracer_backend/pkg/logger"
	"trait_tracer_backend/pkg/monitoring"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SessionStore is the persistence surface the session workflow depends on.
type SessionStore interface {
	CreateSession(s *model.AssessmentSession) error
	FindSessionByID(id string) (*model.AssessmentSession, error)
	FindOpenSessionByApplication(applicationID uint) (*model.AssessmentSession, error)
	SaveAnswers(sessionID string, answers map[int]int) error
	BeginEvaluation(sessionID string) (bool, error)
	CompleteSession(sessionID string, at time.Time) error
	ListExpiredInProgress(now time.Time) ([]model.AssessmentSession, error)
	UpsertForApplication(a *model.Assessment) error
	FindByApplicationID(applicationID uint) (*model.Assessment, error)
}

// ApplicationStore is the slice of application persistence the workflow needs.
type ApplicationStore interface {
	FindByID(id uint) (*model.Application, error)
	UpdateStatus(id uint, status model.ApplicationStatus) error
}

// AssessmentService drives the assessment lifecycle: one bounded session per
// application, from generated questions through a persisted evaluation.
type AssessmentService struct {
	Sessions     SessionStore
	Applications ApplicationStore
	Questions    *QuestionService
	Evaluator    *EvaluationService

	mu       sync.RWMutex
	duration time.Duration
}

func NewAssessmentService(sessions SessionStore, applications ApplicationStore,
	questions *QuestionService, evaluator *EvaluationService, duration time.Duration) *AssessmentService {
	return &AssessmentService{
		Sessions:     sessions,
		Applications: applications,
		Questions:    questions,
		Evaluator:    evaluator,
		duration:     duration,
	}
}

// Duration returns the current session length.
func (s *AssessmentService) Duration() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.duration
}

// SetDuration adjusts the session length for sessions started after the call.
// Running sessions keep the deadline stamped at start.
func (s *AssessmentService) SetDuration(d time.Duration) {
	if d <= 0 {
		return
	}
	s.mu.Lock()
	s.duration = d
	s.mu.Unlock()
}

// StartSession opens a session for the candidate's application. An open
// session for the same application is resumed rather than replaced, so a page
// reload does not regenerate questions or reset the countdown.
func (s *AssessmentService) StartSession(ctx context.Context, candidateID, applicationID uint) (*model.AssessmentSession, error) {
	app, err := s.Applications.FindByID(applicationID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrApplicationMissing
	}
	if err != nil {
		return nil, err
	}
	if app.CandidateID != candidateID {
		return nil, util.ErrPermissionDenied
	}

	if open, err := s.Sessions.FindOpenSessionByApplication(applicationID); err == nil {
		if time.Now().Before(open.ExpiresAt) {
			return open, nil
		}
		// Retire the expired session before replacing it, so the deadline
		// sweep cannot later overwrite the new session's assessment with a
		// stale zero-answer result.
		if won, err := s.Sessions.BeginEvaluation(open.ID); err != nil {
			return nil, err
		} else if won {
			if err := s.Sessions.CompleteSession(open.ID, time.Now()); err != nil {
				return nil, err
			}
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	jobTitle, jobDescription := "", ""
	if app.JobOpening != nil {
		jobTitle = app.JobOpening.Title
		jobDescription = app.JobOpening.Description
	}

	questions, fallback := s.Questions.Generate(ctx, jobTitle, jobDescription)

	now := time.Now()
	session := &model.AssessmentSession{
		ApplicationID: applicationID,
		Status:        model.SessionInProgress,
		Questions:     questions,
		Answers:       map[int]int{},
		Fallback:      fallback,
		StartedAt:     now,
		ExpiresAt:     now.Add(s.Duration()),
	}
	if err := s.Sessions.CreateSession(session); err != nil {
		return nil, err
	}

	logger.Log.Info("assessment session started",
		zap.String("session_id", session.ID),
		zap.Uint("application_id", applicationID),
		zap.Bool("fallback_questions", fallback))
	return session, nil
}

// SaveAnswers replaces the session's answer map. Answers referring to unknown
// question ids or out-of-range option indexes are rejected.
func (s *AssessmentService) SaveAnswers(candidateID uint, sessionID string, answers map[int]int) (*model.AssessmentSession, error) {
	session, err := s.loadOwnedSession(candidateID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status != model.SessionInProgress || !time.Now().Before(session.ExpiresAt) {
		return nil, util.ErrSessionClosed
	}

	options := make(map[int]int, len(session.Questions))
	for _, q := range session.Questions {
		options[q.ID] = len(q.Options)
	}
	for id, choice := range answers {
		max, ok := options[id]
		if !ok || choice < 0 || choice >= max {
			return nil, util.ErrInvalidAnswer
		}
	}

	if err := s.Sessions.SaveAnswers(sessionID, answers); err != nil {
		return nil, err
	}
	session.Answers = answers
	return session, nil
}

// Submit closes the session and evaluates it with the answers given so far.
// The status transition is guarded, so a submit racing the deadline sweep
// evaluates exactly once; the loser gets the already persisted assessment.
func (s *AssessmentService) Submit(ctx context.Context, candidateID uint, sessionID string, answers map[int]int) (*model.Assessment, error) {
	session, err := s.loadOwnedSession(candidateID, sessionID)
	if err != nil {
		return nil, err
	}

	if answers != nil {
		if session.Status == model.SessionInProgress {
			if _, err := s.SaveAnswers(candidateID, sessionID, answers); err != nil && !errors.Is(err, util.ErrSessionClosed) {
				return nil, err
			}
			session.Answers = answers
		}
	}

	won, err := s.Sessions.BeginEvaluation(sessionID)
	if err != nil {
		return nil, err
	}
	if !won {
		return s.awaitResult(session.ApplicationID)
	}

	return s.evaluate(ctx, session, "submit")
}

// SweepExpired evaluates every session whose deadline passed without a
// submit. Run from a background ticker.
func (s *AssessmentService) SweepExpired(ctx context.Context) {
	sessions, err := s.Sessions.ListExpiredInProgress(time.Now())
	if err != nil {
		logger.Log.Error("expired session sweep failed", zap.Error(err))
		return
	}
	for i := range sessions {
		session := sessions[i]
		won, err := s.Sessions.BeginEvaluation(session.ID)
		if err != nil {
			logger.Log.Error("expired session transition failed",
				zap.String("session_id", session.ID), zap.Error(err))
			continue
		}
		if !won {
			continue
		}
		if _, err := s.evaluate(ctx, &session, "timeout"); err != nil {
			logger.Log.Error("expired session evaluation failed",
				zap.String("session_id", session.ID), zap.Error(err))
		}
	}
}

// Result returns the persisted assessment for an application the candidate
// owns.
func (s *AssessmentService) Result(candidateID, applicationID uint) (*model.Assessment, error) {
	app, err := s.Applications.FindByID(applicationID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrApplicationMissing
	}
	if err != nil {
		return nil, err
	}
	if app.CandidateID != candidateID {
		return nil, util.ErrPermissionDenied
	}
	assessment, err := s.Sessions.FindByApplicationID(applicationID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrAssessmentMissing
	}
	return assessment, err
}

// evaluate runs after a won BeginEvaluation transition. The session is
// already fenced, so the evaluation and write happen exactly once.
func (s *AssessmentService) evaluate(ctx context.Context, session *model.AssessmentSession, trigger string) (*model.Assessment, error) {
	app, err := s.Applications.FindByID(session.ApplicationID)
	if err != nil {
		return nil, err
	}

	jobTitle, jobDescription := "", ""
	if app.JobOpening != nil {
		jobTitle = app.JobOpening.Title
		jobDescription = app.JobOpening.Description
	}

	assessment, fallback := s.Evaluator.Evaluate(ctx, EvaluationInput{
		JobTitle:       jobTitle,
		JobDescription: jobDescription,
		Questions:      session.Questions,
		Answers:        session.Answers,
		Candidate:      app.Candidate,
		Github:         usableSummary(app.GithubSummary),
	})
	assessment.ApplicationID = session.ApplicationID
	monitoring.Evaluations.WithLabelValues(strconv.FormatBool(fallback), trigger).Inc()

	if err := s.Sessions.UpsertForApplication(&assessment); err != nil {
		return nil, err
	}
	if err := s.Sessions.CompleteSession(session.ID, assessment.CompletedAt); err != nil {
		return nil, err
	}
	if err := s.Applications.UpdateStatus(session.ApplicationID, model.ApplicationAssessed); err != nil {
		return nil, err
	}

	logger.Log.Info("assessment completed",
		zap.String("session_id", session.ID),
		zap.Uint("application_id", session.ApplicationID),
		zap.String("trigger", trigger),
		zap.Int("overall_score", assessment.OverallScore),
		zap.Bool("fallback", fallback))
	return &assessment, nil
}

// awaitResult covers the losing side of a submit/sweep race: the winner is
// writing the assessment, so poll briefly for it before giving up.
func (s *AssessmentService) awaitResult(applicationID uint) (*model.Assessment, error) {
	for i := 0; i < 20; i++ {
		assessment, err := s.Sessions.FindByApplicationID(applicationID)
		if err == nil {
			return assessment, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		time.Sleep(250 * time.Millisecond)
	}
	return nil, util.ErrSessionClosed
}

func (s *AssessmentService) loadOwnedSession(candidateID uint, sessionID string) (*model.AssessmentSession, error) {
	session, err := s.Sessions.FindSessionByID(sessionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	app, err := s.Applications.FindByID(session.ApplicationID)
	if err != nil {
		return nil, err
	}
	if app.CandidateID != candidateID {
		return nil, util.ErrPermissionDenied
	}
	return session, nil
}

// usableSummary filters out the error-marker summary stored when enrichment
// failed, so the evaluator treats it the same as no summary at all.
func usableSummary(summary *model.GithubSummary) *model.GithubSummary {
	if summary == nil || summary.Error != "" {
		return nil
	}
	return summary
}
