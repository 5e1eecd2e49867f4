package sqlconfig

import (
	"context"
	"database/sql"
	"errors"
	"sort"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

// recordTable implements the owner-scoped document-store operations shared
// by the transaction and category tables: id-keyed lookup without ownership
// filtering (callers check ownership themselves), insert with a generated
// id, owner-filtered listing in insertion order, merge-style partial update,
// and physical delete. The typed tables layer column knowledge on top.
type recordTable[T any] struct {
	exec    bob.Executor
	table   string
	columns []string
}

func newRecordTable[T any](exec bob.Executor, table string, columns []string) recordTable[T] {
	return recordTable[T]{exec: exec, table: table, columns: columns}
}

// findByID returns the record with the given id, or nil when absent.
func (t *recordTable[T]) findByID(ctx context.Context, id uuid.UUID) (*T, error) {
	query := psql.Select(
		sm.Columns(anySlice(t.columns)...),
		sm.From(t.table),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[T]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// insertReturning inserts the column/value pairs and returns the stored row.
func (t *recordTable[T]) insertReturning(ctx context.Context, values map[string]any) (*T, error) {
	cols := sortedKeys(values)
	args := make([]any, len(cols))
	for i, col := range cols {
		args[i] = values[col]
	}

	query := psql.Insert(
		im.Into(t.table, cols...),
		im.Values(psql.Arg(args...)),
		im.Returning(anySlice(t.columns)...),
	)

	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[T]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// selectWhere lists records matching the given where mods in insertion order.
func (t *recordTable[T]) selectWhere(ctx context.Context, whereMods ...bob.Mod[*dialect.SelectQuery]) ([]*T, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(anySlice(t.columns)...),
		sm.From(t.table),
	}
	queryMods = append(queryMods, whereMods...)
	queryMods = append(queryMods,
		sm.OrderBy(psql.Quote("created_at")).Asc(),
		sm.OrderBy(psql.Quote("id")).Asc(),
	)

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[T]())
	if err != nil {
		return nil, err
	}

	result := make([]*T, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

// updateByID merges the column/value pairs into the record and returns the
// number of rows matched. Zero means no record had that id; columns absent
// from set are left untouched.
func (t *recordTable[T]) updateByID(ctx context.Context, id uuid.UUID, set map[string]any) (int64, error) {
	queryMods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table(t.table),
	}
	for _, col := range sortedKeys(set) {
		queryMods = append(queryMods, um.SetCol(col).ToArg(set[col]))
	}
	queryMods = append(queryMods, um.Where(psql.Quote("id").EQ(psql.Arg(id))))

	result, err := bob.Exec(ctx, t.exec, psql.Update(queryMods...))
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// deleteByID removes the record and returns the number of rows deleted.
func (t *recordTable[T]) deleteByID(ctx context.Context, id uuid.UUID) (int64, error) {
	query := psql.Delete(
		dm.From(t.table),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	result, err := bob.Exec(ctx, t.exec, query)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func anySlice(columns []string) []any {
	out := make([]any, len(columns))
	for i, col := range columns {
		out[i] = psql.Quote(col)
	}
	return out
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
