package postgres

import (
	"context"
	"time"

	errorsUtils "github.com/Egor213/NewsReport/pkg/errors"

	"github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/avito-tech/go-transaction-manager/trm/v2/settings"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultMaxPoolSize  = 1
	DefaultConnAttempts = 1
	DefaultConnTimeout  = time.Second
)

type PgxPool interface {
	Close()
	Acquire(ctx context.Context) (*pgxpool.Conn, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
	Begin(ctx context.Context) (pgx.Tx, error)
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
	Ping(ctx context.Context) error
}

type Postgres struct {
	maxPoolSize  int
	connAttempts int
	connTimeout  time.Duration

	Builder   squirrel.StatementBuilderType
	CtxGetter *trmpgx.CtxGetter
	Pool      PgxPool
	TrManager *manager.Manager
}

func New(ctx context.Context, pgUrl string, opts ...Option) (*Postgres, error) {
	pg := &Postgres{
		maxPoolSize:  DefaultMaxPoolSize,
		connAttempts: DefaultConnAttempts,
		connTimeout:  DefaultConnTimeout,
		CtxGetter:    trmpgx.DefaultCtxGetter,
		Builder:      squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}

	for _, opt := range opts {
		opt(pg)
	}

	poolConfig, err := pgxpool.ParseConfig(pgUrl)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	poolConfig.MaxConns = int32(pg.maxPoolSize)

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	pg.Pool = pool

	if pg.connAttempts < 1 {
		pg.connAttempts = 1
	}

	for attempt := 1; ; attempt++ {
		if err = pg.Pool.Ping(ctx); err == nil {
			break
		}
		if attempt >= pg.connAttempts {
			pg.Close()
			return nil, errorsUtils.WrapPathErr(err)
		}

		log.Infof("Postgres trying to connect, attempts left: %d", pg.connAttempts-attempt)

		select {
		case <-ctx.Done():
			pg.Close()
			return nil, errorsUtils.WrapPathErr(ctx.Err())
		case <-time.After(pg.connTimeout):
		}
	}

	pg.TrManager = newReadOnlyManager(pg.Pool)

	return pg, nil
}

// newReadOnlyManager runs every unit of work in a REPEATABLE READ, READ ONLY
// transaction, so all reads inside it see one snapshot.
func newReadOnlyManager(pool PgxPool) *manager.Manager {
	return manager.Must(
		trmpgx.NewDefaultFactory(pool),
		manager.WithSettings(trmpgx.MustSettings(
			settings.Must(),
			trmpgx.WithTxOptions(pgx.TxOptions{
				IsoLevel:   pgx.RepeatableRead,
				AccessMode: pgx.ReadOnly,
			}),
		)),
	)
}

func (p *Postgres) Close() {
	if p.Pool != nil {
		p.Pool.Close()
	}
}
