package pgdb

import (
	"context"

	"github.com/Egor213/NewsReport/internal/domain"
	errorsUtils "github.com/Egor213/NewsReport/pkg/errors"
	"github.com/Egor213/NewsReport/pkg/postgres"
	"github.com/jackc/pgx/v5"
)

type ContentRepo struct {
	*postgres.Postgres
}

func NewContentRepo(pg *postgres.Postgres) *ContentRepo {
	return &ContentRepo{pg}
}

func (r *ContentRepo) ListArticles(ctx context.Context) ([]domain.Article, error) {
	sql, args, err := r.Builder.
		Select("slug", "title", "author AS author_id").
		From("articles").
		ToSql()
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	defer rows.Close()

	articles, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Article])
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	return articles, nil
}

func (r *ContentRepo) ListAuthors(ctx context.Context) ([]domain.Author, error) {
	sql, args, err := r.Builder.
		Select("id", "name").
		From("authors").
		ToSql()
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	defer rows.Close()

	authors, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Author])
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	return authors, nil
}
