package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type PoolInterface interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close()
}

// errNoRowsUpdated はUPDATE/DELETEの対象行が存在しなかった場合の内部エラー
// リポジトリ層でdomain.ErrNotFoundに変換される
var errNoRowsUpdated = errors.New("no rows affected")

// uniqueViolationCode はPostgreSQLのunique_violationのSQLSTATE
const uniqueViolationCode = "23505"

// uniqueViolation はerrがユニーク制約違反かどうかを判定し、
// 違反した制約名を返す
// 「同一ペアの予約・評価は1件まで」といった不変条件は
// DB側のユニークインデックスによるアトミックなcheck-and-insertで
// 担保されており、アプリ側はこの拒否を検出して変換するだけでよい
func uniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return pgErr.ConstraintName, true
	}
	return "", false
}
