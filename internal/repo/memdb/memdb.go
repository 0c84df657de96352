// Package memdb is an in-memory news store. It rolls raw requests up in Go
// the same way the Postgres strategies do in SQL.
package memdb

import (
	"context"
	"slices"

	"github.com/Egor213/NewsReport/internal/domain"
)

type Store struct {
	Articles []domain.Article
	Authors  []domain.Author
	Requests []domain.Request

	// Err, when set, is returned by every read.
	Err error
}

func New(articles []domain.Article, authors []domain.Author, requests []domain.Request) *Store {
	return &Store{
		Articles: articles,
		Authors:  authors,
		Requests: requests,
	}
}

func (s *Store) ListArticles(ctx context.Context) ([]domain.Article, error) {
	if err := s.check(ctx); err != nil {
		return nil, err
	}
	return slices.Clone(s.Articles), nil
}

func (s *Store) ListAuthors(ctx context.Context) ([]domain.Author, error) {
	if err := s.check(ctx); err != nil {
		return nil, err
	}
	return slices.Clone(s.Authors), nil
}

func (s *Store) PathHits(ctx context.Context) ([]domain.PathHits, error) {
	if err := s.check(ctx); err != nil {
		return nil, err
	}

	idx := make(map[string]int)
	var hits []domain.PathHits
	for _, r := range s.Requests {
		i, ok := idx[r.Path]
		if !ok {
			i = len(hits)
			idx[r.Path] = i
			hits = append(hits, domain.PathHits{Path: r.Path})
		}
		hits[i].Hits++
	}
	return hits, nil
}

func (s *Store) DailyStatusCounts(ctx context.Context) ([]domain.DailyStatusCount, error) {
	if err := s.check(ctx); err != nil {
		return nil, err
	}

	type key struct {
		day    int64
		status string
	}

	idx := make(map[key]int)
	var counts []domain.DailyStatusCount
	for _, r := range s.Requests {
		day := domain.Day(r.Time)
		k := key{day: day.Unix(), status: r.Status}
		i, ok := idx[k]
		if !ok {
			i = len(counts)
			idx[k] = i
			counts = append(counts, domain.DailyStatusCount{Day: day, Status: r.Status})
		}
		counts[i].Requests++
	}
	return counts, nil
}

func (s *Store) check(ctx context.Context) error {
	if s.Err != nil {
		return s.Err
	}
	return ctx.Err()
}
