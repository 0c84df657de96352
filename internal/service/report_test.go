package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Egor213/NewsReport/internal/domain"
	repository_mock "github.com/Egor213/NewsReport/internal/mocks/repository"
	service_mock "github.com/Egor213/NewsReport/internal/mocks/service"
	"github.com/Egor213/NewsReport/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func articleHits(slug string, hits int64) domain.PathHits {
	return domain.PathHits{Path: service.DefaultArticlePathPrefix + slug, Hits: hits}
}

func TestReportService_TopArticles(t *testing.T) {
	type mockBehavior func(c *repository_mock.MockContent, tr *repository_mock.MockTraffic)

	testCases := []struct {
		name         string
		n            int
		includeZero  bool
		mockBehavior mockBehavior
		want         []domain.ArticleViews
		wantErr      bool
	}{
		{
			name:        "three most viewed in order",
			n:           3,
			includeZero: true,
			mockBehavior: func(c *repository_mock.MockContent, tr *repository_mock.MockTraffic) {
				c.EXPECT().ListArticles(gomock.Any()).Return([]domain.Article{
					{Slug: "bad-things-gone", Title: "Bad things gone, say good people", AuthorID: 1},
					{Slug: "balloon-goons-doomed", Title: "Balloon goons doomed", AuthorID: 2},
					{Slug: "bears-love-berries", Title: "Bears love berries, alleges bear", AuthorID: 3},
					{Slug: "candidate-is-jerk", Title: "Candidate is jerk, alleges rival", AuthorID: 1},
				}, nil)
				tr.EXPECT().PathHits(gomock.Any()).Return([]domain.PathHits{
					{Path: "/", Hits: 5000},
					articleHits("bears-love-berries", 553),
					articleHits("candidate-is-jerk", 1201),
					articleHits("balloon-goons-doomed", 100),
					articleHits("bad-things-gone", 915),
				}, nil)
			},
			want: []domain.ArticleViews{
				{Title: "Candidate is jerk, alleges rival", Views: 1201},
				{Title: "Bad things gone, say good people", Views: 915},
				{Title: "Bears love berries, alleges bear", Views: 553},
			},
		},
		{
			name:        "zero view article is eligible when fewer than n exist",
			n:           3,
			includeZero: true,
			mockBehavior: func(c *repository_mock.MockContent, tr *repository_mock.MockTraffic) {
				c.EXPECT().ListArticles(gomock.Any()).Return([]domain.Article{
					{Slug: "quiet", Title: "Quiet", AuthorID: 1},
					{Slug: "loud", Title: "Loud", AuthorID: 1},
				}, nil)
				tr.EXPECT().PathHits(gomock.Any()).Return([]domain.PathHits{
					articleHits("loud", 7),
				}, nil)
			},
			want: []domain.ArticleViews{
				{Title: "Loud", Views: 7},
				{Title: "Quiet", Views: 0},
			},
		},
		{
			name:        "zero view article omitted when excluded",
			n:           3,
			includeZero: false,
			mockBehavior: func(c *repository_mock.MockContent, tr *repository_mock.MockTraffic) {
				c.EXPECT().ListArticles(gomock.Any()).Return([]domain.Article{
					{Slug: "quiet", Title: "Quiet", AuthorID: 1},
					{Slug: "loud", Title: "Loud", AuthorID: 1},
				}, nil)
				tr.EXPECT().PathHits(gomock.Any()).Return([]domain.PathHits{
					articleHits("loud", 7),
				}, nil)
			},
			want: []domain.ArticleViews{
				{Title: "Loud", Views: 7},
			},
		},
		{
			name:        "ties broken by title",
			n:           2,
			includeZero: true,
			mockBehavior: func(c *repository_mock.MockContent, tr *repository_mock.MockTraffic) {
				c.EXPECT().ListArticles(gomock.Any()).Return([]domain.Article{
					{Slug: "c", Title: "Gamma", AuthorID: 1},
					{Slug: "a", Title: "Alpha", AuthorID: 1},
					{Slug: "b", Title: "Beta", AuthorID: 1},
				}, nil)
				tr.EXPECT().PathHits(gomock.Any()).Return([]domain.PathHits{
					articleHits("a", 10),
					articleHits("b", 10),
					articleHits("c", 10),
				}, nil)
			},
			want: []domain.ArticleViews{
				{Title: "Alpha", Views: 10},
				{Title: "Beta", Views: 10},
			},
		},
		{
			name:        "slug that is a suffix of another slug does not steal its views",
			n:           0,
			includeZero: true,
			mockBehavior: func(c *repository_mock.MockContent, tr *repository_mock.MockTraffic) {
				c.EXPECT().ListArticles(gomock.Any()).Return([]domain.Article{
					{Slug: "goons", Title: "Goons", AuthorID: 1},
					{Slug: "balloon-goons", Title: "Balloon goons", AuthorID: 1},
				}, nil)
				tr.EXPECT().PathHits(gomock.Any()).Return([]domain.PathHits{
					articleHits("balloon-goons", 40),
					articleHits("goons", 3),
					{Path: "/article/goons?utm=x", Hits: 99},
				}, nil)
			},
			want: []domain.ArticleViews{
				{Title: "Balloon goons", Views: 40},
				{Title: "Goons", Views: 3},
			},
		},
		{
			name:        "articles error",
			n:           3,
			includeZero: true,
			mockBehavior: func(c *repository_mock.MockContent, tr *repository_mock.MockTraffic) {
				c.EXPECT().ListArticles(gomock.Any()).Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
		{
			name:        "traffic error",
			n:           3,
			includeZero: true,
			mockBehavior: func(c *repository_mock.MockContent, tr *repository_mock.MockTraffic) {
				c.EXPECT().ListArticles(gomock.Any()).Return([]domain.Article{{Slug: "a", Title: "A"}}, nil)
				tr.EXPECT().PathHits(gomock.Any()).Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			content := repository_mock.NewMockContent(ctrl)
			traffic := repository_mock.NewMockTraffic(ctrl)
			tc.mockBehavior(content, traffic)

			settings := service.DefaultReportSettings()
			settings.IncludeZeroViews = tc.includeZero
			s := service.NewReportService(content, traffic, nil, settings)

			got, err := s.TopArticles(context.Background(), tc.n)

			if tc.wantErr {
				assert.ErrorIs(t, err, service.ErrDataAccess)
				assert.Nil(t, got)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestReportService_TopAuthors(t *testing.T) {
	type mockBehavior func(c *repository_mock.MockContent, tr *repository_mock.MockTraffic)

	articles := []domain.Article{
		{Slug: "one", Title: "One", AuthorID: 1},
		{Slug: "two", Title: "Two", AuthorID: 1},
		{Slug: "three", Title: "Three", AuthorID: 2},
		{Slug: "orphan", Title: "Orphan", AuthorID: 99},
	}

	testCases := []struct {
		name         string
		includeZero  bool
		mockBehavior mockBehavior
		want         []domain.AuthorViews
		wantErr      bool
	}{
		{
			name:        "totals summed per author",
			includeZero: true,
			mockBehavior: func(c *repository_mock.MockContent, tr *repository_mock.MockTraffic) {
				c.EXPECT().ListAuthors(gomock.Any()).Return([]domain.Author{
					{ID: 1, Name: "Ursula La Multa"},
					{ID: 2, Name: "Rudolf von Treppenwitz"},
				}, nil)
				c.EXPECT().ListArticles(gomock.Any()).Return(articles, nil)
				tr.EXPECT().PathHits(gomock.Any()).Return([]domain.PathHits{
					articleHits("one", 1000),
					articleHits("two", 300),
					articleHits("three", 1985),
					articleHits("orphan", 5000),
				}, nil)
			},
			want: []domain.AuthorViews{
				{Name: "Rudolf von Treppenwitz", Views: 1985},
				{Name: "Ursula La Multa", Views: 1300},
			},
		},
		{
			name:        "author without traffic kept with zero",
			includeZero: true,
			mockBehavior: func(c *repository_mock.MockContent, tr *repository_mock.MockTraffic) {
				c.EXPECT().ListAuthors(gomock.Any()).Return([]domain.Author{
					{ID: 1, Name: "Ursula La Multa"},
					{ID: 3, Name: "Anonymous Contributor"},
				}, nil)
				c.EXPECT().ListArticles(gomock.Any()).Return(articles, nil)
				tr.EXPECT().PathHits(gomock.Any()).Return([]domain.PathHits{
					articleHits("one", 10),
				}, nil)
			},
			want: []domain.AuthorViews{
				{Name: "Ursula La Multa", Views: 10},
				{Name: "Anonymous Contributor", Views: 0},
			},
		},
		{
			name:        "author without traffic omitted when excluded",
			includeZero: false,
			mockBehavior: func(c *repository_mock.MockContent, tr *repository_mock.MockTraffic) {
				c.EXPECT().ListAuthors(gomock.Any()).Return([]domain.Author{
					{ID: 1, Name: "Ursula La Multa"},
					{ID: 3, Name: "Anonymous Contributor"},
				}, nil)
				c.EXPECT().ListArticles(gomock.Any()).Return(articles, nil)
				tr.EXPECT().PathHits(gomock.Any()).Return([]domain.PathHits{
					articleHits("one", 10),
				}, nil)
			},
			want: []domain.AuthorViews{
				{Name: "Ursula La Multa", Views: 10},
			},
		},
		{
			name:        "large totals stay exact",
			includeZero: true,
			mockBehavior: func(c *repository_mock.MockContent, tr *repository_mock.MockTraffic) {
				c.EXPECT().ListAuthors(gomock.Any()).Return([]domain.Author{{ID: 1, Name: "Big"}}, nil)
				c.EXPECT().ListArticles(gomock.Any()).Return(articles, nil)
				tr.EXPECT().PathHits(gomock.Any()).Return([]domain.PathHits{
					articleHits("one", 1<<53),
					articleHits("two", 1),
				}, nil)
			},
			want: []domain.AuthorViews{
				{Name: "Big", Views: 1<<53 + 1},
			},
		},
		{
			name:        "authors error",
			includeZero: true,
			mockBehavior: func(c *repository_mock.MockContent, tr *repository_mock.MockTraffic) {
				c.EXPECT().ListAuthors(gomock.Any()).Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			content := repository_mock.NewMockContent(ctrl)
			traffic := repository_mock.NewMockTraffic(ctrl)
			tc.mockBehavior(content, traffic)

			settings := service.DefaultReportSettings()
			settings.IncludeZeroViews = tc.includeZero
			s := service.NewReportService(content, traffic, nil, settings)

			got, err := s.TopAuthors(context.Background())

			if tc.wantErr {
				assert.ErrorIs(t, err, service.ErrDataAccess)
				assert.Nil(t, got)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestReportService_HighErrorDays(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2016, time.July, d, 0, 0, 0, 0, time.UTC)
	}

	testCases := []struct {
		name      string
		threshold float64
		counts    []domain.DailyStatusCount
		want      []domain.DailyErrorRate
	}{
		{
			name:      "above threshold kept, exactly at threshold dropped",
			threshold: 1.0,
			counts: []domain.DailyStatusCount{
				{Day: day(2), Status: "200 OK", Requests: 990},
				{Day: day(2), Status: "404 NOT FOUND", Requests: 10},
				{Day: day(1), Status: "200 OK", Requests: 974},
				{Day: day(1), Status: "404 NOT FOUND", Requests: 26},
			},
			want: []domain.DailyErrorRate{
				{Day: day(1), ErrorPct: 2.6},
			},
		},
		{
			name:      "error statuses summed, days ordered",
			threshold: 1.0,
			counts: []domain.DailyStatusCount{
				{Day: day(17), Status: "404 NOT FOUND", Requests: 1},
				{Day: day(17), Status: "500 INTERNAL SERVER ERROR", Requests: 1},
				{Day: day(17), Status: "200 OK", Requests: 98},
				{Day: day(3), Status: "404 NOT FOUND", Requests: 5},
			},
			want: []domain.DailyErrorRate{
				{Day: day(3), ErrorPct: 100},
				{Day: day(17), ErrorPct: 2},
			},
		},
		{
			name:      "day without requests never appears",
			threshold: 1.0,
			counts: []domain.DailyStatusCount{
				{Day: day(4), Status: "404 NOT FOUND", Requests: 0},
				{Day: day(5), Status: "200 OK", Requests: 100},
			},
			want: nil,
		},
		{
			name:      "no rows",
			threshold: 1.0,
			counts:    nil,
			want:      nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			content := repository_mock.NewMockContent(ctrl)
			traffic := repository_mock.NewMockTraffic(ctrl)
			traffic.EXPECT().DailyStatusCounts(gomock.Any()).Return(tc.counts, nil)

			s := service.NewReportService(content, traffic, nil, service.DefaultReportSettings())

			got, err := s.HighErrorDays(context.Background(), tc.threshold)

			require.NoError(t, err)
			require.Len(t, got, len(tc.want))
			for i := range tc.want {
				assert.Equal(t, tc.want[i].Day, got[i].Day)
				assert.InDelta(t, tc.want[i].ErrorPct, got[i].ErrorPct, 1e-9)
			}
		})
	}
}

func TestReportService_HighErrorDays_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dbErr := errors.New("connection reset")
	traffic := repository_mock.NewMockTraffic(ctrl)
	traffic.EXPECT().DailyStatusCounts(gomock.Any()).Return(nil, dbErr)

	s := service.NewReportService(repository_mock.NewMockContent(ctrl), traffic, nil, service.DefaultReportSettings())

	got, err := s.HighErrorDays(context.Background(), 1.0)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, service.ErrDataAccess)
	assert.ErrorIs(t, err, dbErr)

	var dae *service.DataAccessError
	require.ErrorAs(t, err, &dae)
	assert.Equal(t, "high error days", dae.Op)
}

func TestReportService_Transactor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	type txKey struct{}

	content := repository_mock.NewMockContent(ctrl)
	traffic := repository_mock.NewMockTraffic(ctrl)
	tx := service_mock.NewMockTransactor(ctrl)

	tx.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(context.WithValue(ctx, txKey{}, true))
		})

	inTx := gomock.Cond(func(x any) bool {
		ctx, ok := x.(context.Context)
		return ok && ctx.Value(txKey{}) == true
	})
	content.EXPECT().ListArticles(inTx).Return([]domain.Article{{Slug: "a", Title: "A", AuthorID: 1}}, nil)
	traffic.EXPECT().PathHits(inTx).Return([]domain.PathHits{articleHits("a", 2)}, nil)

	s := service.NewReportService(content, traffic, tx, service.DefaultReportSettings())

	got, err := s.TopArticles(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, []domain.ArticleViews{{Title: "A", Views: 2}}, got)
}

func TestReportService_TransactorError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	txErr := errors.New("could not begin")
	tx := service_mock.NewMockTransactor(ctrl)
	tx.EXPECT().Do(gomock.Any(), gomock.Any()).Return(txErr)

	s := service.NewReportService(
		repository_mock.NewMockContent(ctrl),
		repository_mock.NewMockTraffic(ctrl),
		tx,
		service.DefaultReportSettings(),
	)

	got, err := s.TopAuthors(context.Background())

	assert.Nil(t, got)
	assert.ErrorIs(t, err, service.ErrDataAccess)
	assert.ErrorIs(t, err, txErr)
}
