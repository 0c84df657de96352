package service

import (
	"context"

	"github.com/Egor213/NewsReport/internal/domain"
	"github.com/Egor213/NewsReport/internal/repo"
)

type Report interface {
	TopArticles(ctx context.Context, n int) ([]domain.ArticleViews, error)
	TopAuthors(ctx context.Context) ([]domain.AuthorViews, error)
	HighErrorDays(ctx context.Context, thresholdPct float64) ([]domain.DailyErrorRate, error)
}

// Transactor runs fn inside one unit of work; *manager.Manager satisfies it.
type Transactor interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type Services struct {
	Report
}

type ServicesDependencies struct {
	Repos      *repo.Repositories
	Transactor Transactor
	Settings   ReportSettings
}

func NewServices(deps ServicesDependencies) *Services {
	return &Services{
		Report: NewReportService(deps.Repos.Content, deps.Repos.Traffic, deps.Transactor, deps.Settings),
	}
}
