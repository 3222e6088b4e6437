package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
	"trait_tracer_backend/internal/model"
	"trait_tracer_backend/internal/repository"
	"trait_tracer_backend/internal/util"
	"trait_tracer_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const dashboardCacheTTL = 2 * time.Minute

// DashboardService aggregates the recruiter and candidate landing views.
// Recruiter analytics are cached in Redis briefly since they join across the
// whole pipeline.
type DashboardService struct {
	Analytics     *repository.AnalyticsRepository
	OrgRepo       *repository.OrganizationRepository
	AppRepo       *repository.ApplicationRepository
	CandidateRepo *repository.CandidateRepository
	Redis         *redis.Client
}

func NewDashboardService(analytics *repository.AnalyticsRepository, orgRepo *repository.OrganizationRepository,
	appRepo *repository.ApplicationRepository, candidateRepo *repository.CandidateRepository,
	rdb *redis.Client) *DashboardService {
	return &DashboardService{
		Analytics:     analytics,
		OrgRepo:       orgRepo,
		AppRepo:       appRepo,
		CandidateRepo: candidateRepo,
		Redis:         rdb,
	}
}

type RecruiterDashboard struct {
	OrganizationID     uint                      `json:"organizationId"`
	TotalJobs          int64                     `json:"totalJobs"`
	TotalApplications  int64                     `json:"totalApplications"`
	CompletedTests     int64                     `json:"completedTests"`
	AverageScore       float64                   `json:"averageScore"`
	TopPerformers      []repository.TopPerformer `json:"topPerformers"`
	WeeklyApplications int64                     `json:"weeklyApplications"`
	WeeklyJobs         int64                     `json:"weeklyJobs"`
	WeeklyTests        int64                     `json:"weeklyTests"`
	GeneratedAt        time.Time                 `json:"generatedAt"`
}

type CandidateDashboard struct {
	TotalApplications int                 `json:"totalApplications"`
	AssessedCount     int                 `json:"assessedCount"`
	PendingCount      int                 `json:"pendingCount"`
	BestScore         int                 `json:"bestScore"`
	Applications      []model.Application `json:"applications"`
}

// ForRecruiter builds the org-scoped analytics view, serving from cache when
// a fresh copy exists.
func (s *DashboardService) ForRecruiter(ctx context.Context, recruiterID, orgID uint) (*RecruiterDashboard, error) {
	org, err := s.OrgRepo.FindByID(orgID)
	if err != nil {
		return nil, util.ErrOrganizationMissing
	}
	if org.RecruiterID != recruiterID {
		return nil, util.ErrPermissionDenied
	}

	cacheKey := fmt.Sprintf("dashboard:org:%d", orgID)
	if cached, err := s.Redis.Get(ctx, cacheKey).Result(); err == nil {
		var dash RecruiterDashboard
		if json.Unmarshal([]byte(cached), &dash) == nil {
			return &dash, nil
		}
	}

	dash := &RecruiterDashboard{OrganizationID: orgID, GeneratedAt: time.Now()}
	if dash.TotalJobs, err = s.Analytics.CountJobs(orgID); err != nil {
		return nil, err
	}
	if dash.TotalApplications, err = s.Analytics.CountApplications(orgID); err != nil {
		return nil, err
	}
	if dash.CompletedTests, err = s.Analytics.CountCompletedAssessments(orgID); err != nil {
		return nil, err
	}
	if dash.AverageScore, err = s.Analytics.AverageScore(orgID); err != nil {
		return nil, err
	}
	if dash.TopPerformers, err = s.Analytics.TopPerformers(orgID, 5); err != nil {
		return nil, err
	}
	weekAgo := time.Now().AddDate(0, 0, -7)
	if dash.WeeklyApplications, dash.WeeklyJobs, dash.WeeklyTests, err = s.Analytics.RecentActivity(orgID, weekAgo); err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(dash); err == nil {
		if err := s.Redis.Set(ctx, cacheKey, payload, dashboardCacheTTL).Err(); err != nil {
			logger.Log.Warn("dashboard cache write failed", zap.Uint("org_id", orgID), zap.Error(err))
		}
	}
	return dash, nil
}

// ForCandidate summarizes the user's own application pipeline. No caching;
// the per-candidate queries are cheap.
func (s *DashboardService) ForCandidate(userID uint) (*CandidateDashboard, error) {
	dash := &CandidateDashboard{Applications: []model.Application{}}

	profile, err := s.CandidateRepo.FindByUserID(userID)
	if err != nil {
		return dash, nil
	}

	apps, err := s.AppRepo.ListByCandidate(profile.ID)
	if err != nil {
		return nil, err
	}

	dash.Applications = apps
	dash.TotalApplications = len(apps)
	for _, app := range apps {
		if app.Status == model.ApplicationAssessed {
			dash.AssessedCount++
		} else {
			dash.PendingCount++
		}
		if app.Assessment != nil && app.Assessment.OverallScore > dash.BestScore {
			dash.BestScore = app.Assessment.OverallScore
		}
	}
	return dash, nil
}
