package service

import (
	"context"

	"github.com/Egor213/NewsReport/internal/domain"
	"github.com/Egor213/NewsReport/internal/repo"
	errorsUtils "github.com/Egor213/NewsReport/pkg/errors"
)

const (
	DefaultSuccessStatus     = "200 OK"
	DefaultArticlePathPrefix = "/article/"
)

type ReportSettings struct {
	// SuccessStatus is the status line that does not count as an error.
	SuccessStatus string
	// ArticlePathPrefix + slug is the exact request path of an article view.
	ArticlePathPrefix string
	// IncludeZeroViews keeps articles and authors without traffic in rankings.
	IncludeZeroViews bool
}

func DefaultReportSettings() ReportSettings {
	return ReportSettings{
		SuccessStatus:     DefaultSuccessStatus,
		ArticlePathPrefix: DefaultArticlePathPrefix,
		IncludeZeroViews:  true,
	}
}

type ReportService struct {
	content  repo.Content
	traffic  repo.Traffic
	tx       Transactor
	settings ReportSettings
}

// NewReportService builds the aggregator. tx may be nil, then reads run
// without a surrounding transaction.
func NewReportService(content repo.Content, traffic repo.Traffic, tx Transactor, settings ReportSettings) *ReportService {
	return &ReportService{
		content:  content,
		traffic:  traffic,
		tx:       tx,
		settings: settings,
	}
}

func (s *ReportService) TopArticles(ctx context.Context, n int) ([]domain.ArticleViews, error) {
	var tallies []articleTally
	err := s.read(ctx, "top articles", func(ctx context.Context) error {
		articles, err := s.content.ListArticles(ctx)
		if err != nil {
			return err
		}
		hits, err := s.traffic.PathHits(ctx)
		if err != nil {
			return err
		}
		tallies = tallyArticles(articles, hits, s.settings.ArticlePathPrefix)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return rankArticles(tallies, n, s.settings.IncludeZeroViews), nil
}

func (s *ReportService) TopAuthors(ctx context.Context) ([]domain.AuthorViews, error) {
	var (
		authors []domain.Author
		tallies []articleTally
	)
	err := s.read(ctx, "top authors", func(ctx context.Context) error {
		var err error
		authors, err = s.content.ListAuthors(ctx)
		if err != nil {
			return err
		}
		articles, err := s.content.ListArticles(ctx)
		if err != nil {
			return err
		}
		hits, err := s.traffic.PathHits(ctx)
		if err != nil {
			return err
		}
		tallies = tallyArticles(articles, hits, s.settings.ArticlePathPrefix)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return rollupAuthors(authors, tallies, s.settings.IncludeZeroViews), nil
}

func (s *ReportService) HighErrorDays(ctx context.Context, thresholdPct float64) ([]domain.DailyErrorRate, error) {
	var counts []domain.DailyStatusCount
	err := s.read(ctx, "high error days", func(ctx context.Context) error {
		var err error
		counts, err = s.traffic.DailyStatusCounts(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	return errorRates(counts, s.settings.SuccessStatus, thresholdPct), nil
}

func (s *ReportService) read(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	var err error
	if s.tx != nil {
		err = s.tx.Do(ctx, fn)
	} else {
		err = fn(ctx)
	}

	if err != nil {
		return errorsUtils.WrapPathErr(&DataAccessError{Op: op, Err: err})
	}
	return nil
}
