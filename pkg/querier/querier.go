package querier

import (
	"context"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var queryDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "db_query_duration_seconds",
		Help:    "Duration of postgres calls by kind and transaction presence",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
	},
	[]string{"kind", "in_tx"},
)

// Querier выполняет запросы внутри транзакции из контекста, а без нее - на пуле.
type Querier struct {
	pool   *pgxpool.Pool
	getter *pgxv5.CtxGetter
}

func New(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *Querier {
	return &Querier{
		pool:   pool,
		getter: getter,
	}
}

func (q *Querier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	tr := q.get(ctx)
	defer q.observe(tr, "exec", time.Now())
	return tr.Exec(ctx, sql, args...)
}

func (q *Querier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	tr := q.get(ctx)
	defer q.observe(tr, "query", time.Now())
	return tr.Query(ctx, sql, args...)
}

func (q *Querier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	tr := q.get(ctx)
	defer q.observe(tr, "query_row", time.Now())
	return tr.QueryRow(ctx, sql, args...)
}

func (q *Querier) get(ctx context.Context) pgxv5.Tr {
	return q.getter.DefaultTrOrDB(ctx, q.pool)
}

func (q *Querier) observe(tr pgxv5.Tr, kind string, start time.Time) {
	inTx := "true"
	if pool, ok := tr.(*pgxpool.Pool); ok && pool == q.pool {
		inTx = "false"
	}
	queryDuration.WithLabelValues(kind, inTx).Observe(time.Since(start).Seconds())
}
