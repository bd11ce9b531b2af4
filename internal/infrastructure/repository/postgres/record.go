package postgres

import (
	"context"
	"fmt"

	qb "github.com/gridironhq/gridiron-sync/internal/platform/querybuilder"
	"github.com/jmoiron/sqlx"
)

// Record binds one table to a pair of row models and gives any entity type
// get-or-create and conflict-safe upsert semantics. R is the full row as
// read back from the store; W is the writable column set, its db tags
// defining exactly which columns an upsert may touch. Entity repositories
// wrap a Record instead of duplicating SQL per type.
type Record[R any, W any] struct {
	db    *sqlx.DB
	table string
}

func NewRecord[R any, W any](db *sqlx.DB, table string) *Record[R, W] {
	return &Record[R, W]{db: db, table: table}
}

// FindByColumn loads the single row where column equals value. A miss is
// (zero, false, nil); store and query failures are surfaced.
func (r *Record[R, W]) FindByColumn(ctx context.Context, column string, value any) (R, bool, error) {
	var row R

	query, args, err := qb.Select("*").
		From(r.table).
		Where(qb.Eq(column, value)).
		Limit(1).
		ToSQL()
	if err != nil {
		return row, false, fmt.Errorf("build select %s by %s query: %w", r.table, column, err)
	}

	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			var zero R
			return zero, false, nil
		}
		return row, false, fmt.Errorf("select %s by %s: %w", r.table, column, err)
	}

	return row, true, nil
}

// Upsert inserts the model or, when a row with the same conflictColumn
// value exists, overwrites its writable columns in place. The conflict
// column must be uniquely constrained in the schema; that precondition is
// the migration's job, not this adapter's. Returns the affected row's id.
func (r *Record[R, W]) Upsert(ctx context.Context, model W, conflictColumn string) (int64, error) {
	query, args, err := qb.UpsertModel(r.table, model, conflictColumn, "updated_at = NOW()")
	if err != nil {
		return 0, fmt.Errorf("build upsert %s query: %w", r.table, err)
	}

	var id int64
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		return 0, fmt.Errorf("upsert %s on %s: %w", r.table, conflictColumn, err)
	}

	return id, nil
}
