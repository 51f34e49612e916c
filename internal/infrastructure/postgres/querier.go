// Package postgres implementa os adaptadores de persistência sobre PostgreSQL
// (pgx v5). Os repositórios aceitam um Querier: funcionam tanto com o pool
// quanto com uma transação aberta pelo TxRunner.
package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier é o subconjunto de pgx satisfeito por *pgxpool.Pool e pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
