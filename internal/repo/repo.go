package repo

import (
	"context"
	"fmt"

	"github.com/Egor213/NewsReport/internal/domain"
	"github.com/Egor213/NewsReport/internal/repo/pgdb"
	"github.com/Egor213/NewsReport/internal/repo/repoerrs"
	"github.com/Egor213/NewsReport/pkg/postgres"
)

const (
	StrategyRaw   = "raw"
	StrategyViews = "views"
)

type Content interface {
	ListArticles(ctx context.Context) ([]domain.Article, error)
	ListAuthors(ctx context.Context) ([]domain.Author, error)
}

type Traffic interface {
	PathHits(ctx context.Context) ([]domain.PathHits, error)
	DailyStatusCounts(ctx context.Context) ([]domain.DailyStatusCount, error)
}

type Repositories struct {
	Content
	Traffic
}

// NewRepositories picks how traffic is rolled up: "raw" groups the log table
// on every run, "views" reads the precomputed views created by migrations.
func NewRepositories(pg *postgres.Postgres, strategy string) (*Repositories, error) {
	var queries pgdb.TrafficQueries
	switch strategy {
	case StrategyRaw:
		queries = pgdb.RawTrafficQueries(pg.Builder)
	case StrategyViews:
		queries = pgdb.ViewTrafficQueries(pg.Builder)
	default:
		return nil, fmt.Errorf("%w: %q", repoerrs.ErrUnknownStrategy, strategy)
	}

	return &Repositories{
		Content: pgdb.NewContentRepo(pg),
		Traffic: pgdb.NewTrafficRepo(pg, queries),
	}, nil
}
