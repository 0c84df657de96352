package service

import (
	"cmp"
	"slices"
	"time"

	"github.com/Egor213/NewsReport/internal/domain"
)

type articleTally struct {
	article domain.Article
	views   int64
}

// tallyArticles counts views per article. A hit belongs to an article only
// when its path equals prefix+slug exactly. Every article gets a tally, even
// with no hits.
func tallyArticles(articles []domain.Article, hits []domain.PathHits, prefix string) []articleTally {
	byPath := make(map[string]int64, len(hits))
	for _, h := range hits {
		byPath[h.Path] += h.Hits
	}

	tallies := make([]articleTally, 0, len(articles))
	for _, a := range articles {
		tallies = append(tallies, articleTally{
			article: a,
			views:   byPath[prefix+a.Slug],
		})
	}
	return tallies
}

// rankArticles orders by views desc, then title and slug asc. n <= 0 keeps all.
func rankArticles(tallies []articleTally, n int, includeZero bool) []domain.ArticleViews {
	ranked := make([]articleTally, 0, len(tallies))
	for _, t := range tallies {
		if t.views == 0 && !includeZero {
			continue
		}
		ranked = append(ranked, t)
	}

	slices.SortFunc(ranked, func(a, b articleTally) int {
		return cmp.Or(
			cmp.Compare(b.views, a.views),
			cmp.Compare(a.article.Title, b.article.Title),
			cmp.Compare(a.article.Slug, b.article.Slug),
		)
	})

	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}

	out := make([]domain.ArticleViews, 0, len(ranked))
	for _, t := range ranked {
		out = append(out, domain.ArticleViews{Title: t.article.Title, Views: t.views})
	}
	return out
}

// rollupAuthors sums article views per author. Articles pointing at an
// unknown author are dropped.
func rollupAuthors(authors []domain.Author, tallies []articleTally, includeZero bool) []domain.AuthorViews {
	totals := make(map[int64]int64, len(authors))
	for _, t := range tallies {
		totals[t.article.AuthorID] += t.views
	}

	type authorTotal struct {
		author domain.Author
		views  int64
	}

	ranked := make([]authorTotal, 0, len(authors))
	for _, a := range authors {
		views := totals[a.ID]
		if views == 0 && !includeZero {
			continue
		}
		ranked = append(ranked, authorTotal{author: a, views: views})
	}

	slices.SortFunc(ranked, func(a, b authorTotal) int {
		return cmp.Or(
			cmp.Compare(b.views, a.views),
			cmp.Compare(a.author.Name, b.author.Name),
			cmp.Compare(a.author.ID, b.author.ID),
		)
	})

	out := make([]domain.AuthorViews, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, domain.AuthorViews{Name: r.author.Name, Views: r.views})
	}
	return out
}

// errorRates returns days whose share of non-success requests is strictly
// above thresholdPct, ordered by day. The comparison uses the unrounded value.
func errorRates(counts []domain.DailyStatusCount, successStatus string, thresholdPct float64) []domain.DailyErrorRate {
	type dayTotals struct {
		day        time.Time
		total, bad int64
	}

	byDay := make(map[int64]*dayTotals)
	for _, c := range counts {
		key := c.Day.Unix()
		t, ok := byDay[key]
		if !ok {
			t = &dayTotals{day: c.Day}
			byDay[key] = t
		}
		t.total += c.Requests
		if c.Status != successStatus {
			t.bad += c.Requests
		}
	}

	var out []domain.DailyErrorRate
	for _, t := range byDay {
		if t.total == 0 {
			continue
		}
		pct := 100 * float64(t.bad) / float64(t.total)
		if pct > thresholdPct {
			out = append(out, domain.DailyErrorRate{Day: t.day, ErrorPct: pct})
		}
	}

	slices.SortFunc(out, func(a, b domain.DailyErrorRate) int {
		return a.Day.Compare(b.Day)
	})
	return out
}
