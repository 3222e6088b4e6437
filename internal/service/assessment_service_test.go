package service

import (
	"context"
	"sync"
	"testing"
	"time"
	"trait_tracer_backend/internal/config"
	"trait_tracer_backend/internal/model"
	"trait_tracer_backend/internal/util"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeSessionStore struct {
	mu          sync.Mutex
	sessions    map[string]*model.AssessmentSession
	assessments map[uint]*model.Assessment
	upserts     int
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{
		sessions:    map[string]*model.AssessmentSession{},
		assessments: map[uint]*model.Assessment{},
	}
}

func (f *fakeSessionStore) CreateSession(s *model.AssessmentSession) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	copied := *s
	f.sessions[s.ID] = &copied
	return nil
}

func (f *fakeSessionStore) FindSessionByID(id string) (*model.AssessmentSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *s
	return &copied, nil
}

func (f *fakeSessionStore) FindOpenSessionByApplication(applicationID uint) (*model.AssessmentSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.sessions {
		if s.ApplicationID == applicationID && s.Status == model.SessionInProgress {
			copied := *s
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSessionStore) SaveAnswers(sessionID string, answers map[int]int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s, ok := f.sessions[sessionID]; ok {
		s.Answers = answers
	}
	return nil
}

func (f *fakeSessionStore) BeginEvaluation(sessionID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[sessionID]
	if !ok || s.Status != model.SessionInProgress {
		return false, nil
	}
	s.Status = model.SessionEvaluating
	return true, nil
}

func (f *fakeSessionStore) CompleteSession(sessionID string, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s, ok := f.sessions[sessionID]; ok {
		s.Status = model.SessionCompleted
		s.CompletedAt = &at
	}
	return nil
}

func (f *fakeSessionStore) ListExpiredInProgress(now time.Time) ([]model.AssessmentSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var expired []model.AssessmentSession
	for _, s := range f.sessions {
		if s.Status == model.SessionInProgress && !s.ExpiresAt.After(now) {
			expired = append(expired, *s)
		}
	}
	return expired, nil
}

func (f *fakeSessionStore) UpsertForApplication(a *model.Assessment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.upserts++
	copied := *a
	f.assessments[a.ApplicationID] = &copied
	return nil
}

func (f *fakeSessionStore) FindByApplicationID(applicationID uint) (*model.Assessment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.assessments[applicationID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *a
	return &copied, nil
}

type fakeApplicationStore struct {
	mu       sync.Mutex
	apps     map[uint]*model.Application
	statuses map[uint]model.ApplicationStatus
}

func newFakeApplicationStore(apps ...*model.Application) *fakeApplicationStore {
	f := &fakeApplicationStore{
		apps:     map[uint]*model.Application{},
		statuses: map[uint]model.ApplicationStatus{},
	}
	for _, app := range apps {
		f.apps[app.ID] = app
	}
	return f
}

func (f *fakeApplicationStore) FindByID(id uint) (*model.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	app, ok := f.apps[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return app, nil
}

func (f *fakeApplicationStore) UpdateStatus(id uint, status model.ApplicationStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statuses[id] = status
	return nil
}

func newTestAssessmentService(t *testing.T, apps *fakeApplicationStore, sessions *fakeSessionStore, duration time.Duration) *AssessmentService {
	t.Helper()
	gemini, err := NewGeminiService(config.GeminiConfig{Disabled: true})
	require.NoError(t, err)
	return NewAssessmentService(sessions, apps,
		NewQuestionService(gemini), NewEvaluationService(gemini), duration)
}

func testApplication(id uint) *model.Application {
	app := &model.Application{
		CandidateID:  7,
		JobOpeningID: 3,
		Status:       model.ApplicationApplied,
		JobOpening:   &model.JobOpening{Title: "Backend Engineer", Description: "APIs all day"},
		Candidate:    &model.CandidateProfile{FullName: "Sam Doe"},
		AppliedAt:    time.Now(),
	}
	app.ID = id
	return app
}

func TestStartSessionGeneratesTimedSession(t *testing.T) {
	sessions := newFakeSessionStore()
	apps := newFakeApplicationStore(testApplication(1))
	svc := newTestAssessmentService(t, apps, sessions, 20*time.Minute)

	before := time.Now()
	session, err := svc.StartSession(context.Background(), 7, 1)
	require.NoError(t, err)

	assert.Equal(t, model.SessionInProgress, session.Status)
	assert.Len(t, session.Questions, QuestionCount)
	assert.True(t, session.Fallback)
	assert.Empty(t, session.Answers)
	assert.WithinDuration(t, before.Add(20*time.Minute), session.ExpiresAt, 2*time.Second)
}

func TestStartSessionResumesOpenSession(t *testing.T) {
	sessions := newFakeSessionStore()
	apps := newFakeApplicationStore(testApplication(1))
	svc := newTestAssessmentService(t, apps, sessions, 20*time.Minute)

	first, err := svc.StartSession(context.Background(), 7, 1)
	require.NoError(t, err)
	second, err := svc.StartSession(context.Background(), 7, 1)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, sessions.sessions, 1)
}

func TestSetDurationAppliesToNewSessions(t *testing.T) {
	sessions := newFakeSessionStore()
	apps := newFakeApplicationStore(testApplication(1))
	svc := newTestAssessmentService(t, apps, sessions, 20*time.Minute)

	svc.SetDuration(time.Minute)
	assert.Equal(t, time.Minute, svc.Duration())

	// Non-positive reload values are ignored.
	svc.SetDuration(0)
	assert.Equal(t, time.Minute, svc.Duration())

	before := time.Now()
	session, err := svc.StartSession(context.Background(), 7, 1)
	require.NoError(t, err)
	assert.WithinDuration(t, before.Add(time.Minute), session.ExpiresAt, 2*time.Second)
}

func TestStartSessionRetiresExpiredSession(t *testing.T) {
	sessions := newFakeSessionStore()
	apps := newFakeApplicationStore(testApplication(1))
	svc := newTestAssessmentService(t, apps, sessions, time.Millisecond)

	stale, err := svc.StartSession(context.Background(), 7, 1)
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	svc.SetDuration(time.Hour)

	fresh, err := svc.StartSession(context.Background(), 7, 1)
	require.NoError(t, err)
	assert.NotEqual(t, stale.ID, fresh.ID)

	retired, err := sessions.FindSessionByID(stale.ID)
	require.NoError(t, err)
	assert.Equal(t, model.SessionCompleted, retired.Status)

	// The retired session is out of the sweep's reach, so a late sweep
	// cannot write a stale zero-answer assessment over the retake.
	svc.SweepExpired(context.Background())
	assert.Equal(t, 0, sessions.upserts)
}

func TestStartSessionRejectsForeignApplication(t *testing.T) {
	sessions := newFakeSessionStore()
	apps := newFakeApplicationStore(testApplication(1))
	svc := newTestAssessmentService(t, apps, sessions, 20*time.Minute)

	_, err := svc.StartSession(context.Background(), 99, 1)
	assert.ErrorIs(t, err, util.ErrPermissionDenied)

	_, err = svc.StartSession(context.Background(), 7, 42)
	assert.ErrorIs(t, err, util.ErrApplicationMissing)
}

func TestSaveAnswersValidatesAgainstQuestions(t *testing.T) {
	sessions := newFakeSessionStore()
	apps := newFakeApplicationStore(testApplication(1))
	svc := newTestAssessmentService(t, apps, sessions, 20*time.Minute)

	session, err := svc.StartSession(context.Background(), 7, 1)
	require.NoError(t, err)

	_, err = svc.SaveAnswers(7, session.ID, map[int]int{1: 2, 2: 0})
	require.NoError(t, err)

	_, err = svc.SaveAnswers(7, session.ID, map[int]int{999: 0})
	assert.ErrorIs(t, err, util.ErrInvalidAnswer)

	_, err = svc.SaveAnswers(7, session.ID, map[int]int{1: 4})
	assert.ErrorIs(t, err, util.ErrInvalidAnswer)

	_, err = svc.SaveAnswers(7, session.ID, map[int]int{1: -1})
	assert.ErrorIs(t, err, util.ErrInvalidAnswer)
}

func TestSubmitEvaluatesAndCompletes(t *testing.T) {
	sessions := newFakeSessionStore()
	apps := newFakeApplicationStore(testApplication(1))
	svc := newTestAssessmentService(t, apps, sessions, 20*time.Minute)

	session, err := svc.StartSession(context.Background(), 7, 1)
	require.NoError(t, err)

	answers := map[int]int{}
	for _, q := range session.Questions {
		answers[q.ID] = 0
	}

	assessment, err := svc.Submit(context.Background(), 7, session.ID, answers)
	require.NoError(t, err)

	assert.True(t, assessment.Completed)
	assert.Equal(t, uint(1), assessment.ApplicationID)
	assert.GreaterOrEqual(t, assessment.OverallScore, 80)
	assert.LessOrEqual(t, assessment.OverallScore, 100)
	assert.Contains(t, assessment.RiskFactors, LimitedDataRisk)

	stored, err := sessions.FindSessionByID(session.ID)
	require.NoError(t, err)
	assert.Equal(t, model.SessionCompleted, stored.Status)
	assert.Equal(t, model.ApplicationAssessed, apps.statuses[1])
}

func TestSubmitAfterSweepReturnsExistingAssessment(t *testing.T) {
	sessions := newFakeSessionStore()
	apps := newFakeApplicationStore(testApplication(1))
	svc := newTestAssessmentService(t, apps, sessions, time.Millisecond)

	session, err := svc.StartSession(context.Background(), 7, 1)
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	svc.SweepExpired(context.Background())
	assert.Equal(t, 1, sessions.upserts)

	assessment, err := svc.Submit(context.Background(), 7, session.ID, nil)
	require.NoError(t, err)
	assert.True(t, assessment.Completed)

	// The losing submit must not evaluate a second time.
	assert.Equal(t, 1, sessions.upserts)
}

func TestSweepEvaluatesExpiredWithZeroAnswers(t *testing.T) {
	sessions := newFakeSessionStore()
	apps := newFakeApplicationStore(testApplication(1))
	svc := newTestAssessmentService(t, apps, sessions, time.Millisecond)

	_, err := svc.StartSession(context.Background(), 7, 1)
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	svc.SweepExpired(context.Background())

	assessment, err := sessions.FindByApplicationID(1)
	require.NoError(t, err)
	assert.True(t, assessment.Completed)
	assert.Equal(t, 0, assessment.OverallScore)
	assert.Contains(t, assessment.RiskFactors, LimitedDataRisk)
}

func TestSweepSkipsLiveSessions(t *testing.T) {
	sessions := newFakeSessionStore()
	apps := newFakeApplicationStore(testApplication(1))
	svc := newTestAssessmentService(t, apps, sessions, time.Hour)

	_, err := svc.StartSession(context.Background(), 7, 1)
	require.NoError(t, err)

	svc.SweepExpired(context.Background())
	assert.Equal(t, 0, sessions.upserts)
}

func TestResultRequiresOwnership(t *testing.T) {
	sessions := newFakeSessionStore()
	apps := newFakeApplicationStore(testApplication(1))
	svc := newTestAssessmentService(t, apps, sessions, time.Minute)

	_, err := svc.Result(99, 1)
	assert.ErrorIs(t, err, util.ErrPermissionDenied)

	_, err = svc.Result(7, 1)
	assert.ErrorIs(t, err, util.ErrAssessmentMissing)
}
