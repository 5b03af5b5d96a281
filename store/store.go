package store

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
)

const (
	userTableName            = "usuarios"
	collectionPointTableName = "pontos_coleta"
	pickupRequestTableName   = "agendamentos"
)

// Querier is satisfied by *sql.Conn, *sql.DB and *sql.Tx.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// Store runs every statement on a single handle. It holds no state of its
// own, so each call re-reads storage.
type Store struct {
	q Querier
}

func New(q Querier) *Store {
	return &Store{q: q}
}

func builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}
