package pgdb

import (
	"context"

	"github.com/Egor213/NewsReport/internal/domain"
	errorsUtils "github.com/Egor213/NewsReport/pkg/errors"
	"github.com/Egor213/NewsReport/pkg/postgres"
	"github.com/jackc/pgx/v5"
)

type TrafficRepo struct {
	*postgres.Postgres
	queries TrafficQueries
}

func NewTrafficRepo(pg *postgres.Postgres, queries TrafficQueries) *TrafficRepo {
	return &TrafficRepo{
		Postgres: pg,
		queries:  queries,
	}
}

func (r *TrafficRepo) PathHits(ctx context.Context) ([]domain.PathHits, error) {
	sql, args, err := r.queries.PathHits.ToSql()
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	defer rows.Close()

	hits, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.PathHits])
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	return hits, nil
}

func (r *TrafficRepo) DailyStatusCounts(ctx context.Context) ([]domain.DailyStatusCount, error) {
	sql, args, err := r.queries.DailyStatusCounts.ToSql()
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	defer rows.Close()

	var counts []domain.DailyStatusCount
	for rows.Next() {
		var c domain.DailyStatusCount
		if err := rows.Scan(&c.Day, &c.Status, &c.Requests); err != nil {
			return nil, errorsUtils.WrapPathErr(err)
		}
		c.Day = domain.Day(c.Day)
		counts = append(counts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	return counts, nil
}
