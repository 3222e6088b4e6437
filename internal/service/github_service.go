package service

import (
	"context"
	"fmt"
	"time"
	"trait_tracer_backend/internal/config"
	"trait_tracer_backend/internal/model"
	"trait_tracer_backend/pkg/logger"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// GithubService fetches public profile data used to enrich applications.
// Enrichment is best-effort: any failure returns a nil summary and the
// application proceeds without it.
type GithubService struct {
	client *resty.Client
}

type githubUser struct {
	PublicRepos int    `json:"public_repos"`
	Followers   int    `json:"followers"`
	Bio         string `json:"bio"`
	Company     string `json:"company"`
	CreatedAt   string `json:"created_at"`
}

type githubRepo struct {
	Language        string `json:"language"`
	StargazersCount int    `json:"stargazers_count"`
	ForksCount      int    `json:"forks_count"`
}

func NewGithubService(cfg config.GithubConfig) *GithubService {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(10 * time.Second).
		SetHeader("Accept", "application/vnd.github+json").
		SetRetryCount(1)
	if cfg.Token != "" {
		client.SetAuthToken(cfg.Token)
	}
	return &GithubService{client: client}
}

// Analyze fetches the user's profile and ten most recently updated
// repositories and condenses them into a GithubSummary. A nil summary means
// the profile could not be fetched.
func (s *GithubService) Analyze(ctx context.Context, username string) *model.GithubSummary {
	if username == "" {
		return nil
	}

	var user githubUser
	resp, err := s.client.R().
		SetContext(ctx).
		SetResult(&user).
		SetPathParam("username", username).
		Get("/users/{username}")
	if err != nil {
		logger.Log.Warn("github profile fetch failed", zap.String("username", username), zap.Error(err))
		return nil
	}
	if resp.IsError() {
		logger.Log.Warn("github profile fetch failed",
			zap.String("username", username), zap.Int("status", resp.StatusCode()))
		return nil
	}

	var repos []githubRepo
	resp, err = s.client.R().
		SetContext(ctx).
		SetResult(&repos).
		SetPathParam("username", username).
		SetQueryParams(map[string]string{"sort": "updated", "per_page": "10"}).
		Get("/users/{username}/repos")
	if err != nil || resp.IsError() {
		repos = nil
	}

	seen := make(map[string]bool)
	var languages []string
	totalStars, totalForks := 0, 0
	for _, repo := range repos {
		if repo.Language != "" && !seen[repo.Language] {
			seen[repo.Language] = true
			languages = append(languages, repo.Language)
		}
		totalStars += repo.StargazersCount
		totalForks += repo.ForksCount
	}

	return &model.GithubSummary{
		Repositories:        user.PublicRepos,
		Followers:           user.Followers,
		Languages:           languages,
		TotalStars:          totalStars,
		TotalForks:          totalForks,
		AccountAge:          accountAge(user.CreatedAt, time.Now()),
		ProfessionalProfile: user.Bio != "" && user.Company != "",
	}
}

// accountAge renders the span since createdAt as "X years, Y months",
// omitting the years part for accounts younger than a year.
func accountAge(createdAt string, now time.Time) string {
	created, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return ""
	}
	days := int(now.Sub(created).Hours() / 24)
	if days < 0 {
		days = 0
	}
	years := days / 365
	months := (days % 365) / 30

	if years > 0 {
		return fmt.Sprintf("%s, %s", plural(years, "year"), plural(months, "month"))
	}
	return plural(months, "month")
}

func plural(n int, unit string) string {
	if n > 1 {
		return fmt.Sprintf("%d %ss", n, unit)
	}
	return fmt.Sprintf("%d %s", n, unit)
}
