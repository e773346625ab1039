package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/yourusername/paddock/internal/models"
)

// querier is satisfied by *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// table describes one entity table: its name and the columns every read selects.
type table struct {
	name    string
	columns []string
}

func (t table) selectSQL() string {
	return fmt.Sprintf("SELECT %s FROM %s", strings.Join(t.columns, ", "), t.name)
}

// writeColumns are the columns a save writes, i.e. everything but id.
func (t table) writeColumns() []string {
	return t.columns[1:]
}

var (
	addressesTable = table{name: "addresses", columns: []string{
		"id", "street", "street2", "city", "state", "zipcode", "country"}}
	classesTable = table{name: "classes", columns: []string{"id", "name"}}
	carsTable    = table{name: "cars", columns: []string{"id", "make", "model", "class_id", "team_id"}}
	driversTable = table{name: "drivers", columns: []string{
		"id", "first_name", "last_name", "nationality", "home_address_id", "management_address_id"}}
	teamsTable = table{name: "teams", columns: []string{
		"id", "name", "nationality", "business_address_id"}}
	racesTable       = table{name: "races", columns: []string{"id", "name"}}
	raceResultsTable = table{name: "race_results", columns: []string{
		"id", "race_id", "car_id", "driver_id", "class_id", "race_number", "start_position", "finish_position"}}
)

// selectWhere runs the table's select with an optional WHERE clause and
// collects rows into T by column name.
func selectWhere[T any](ctx context.Context, q querier, t table, where string, args ...any) ([]*T, error) {
	sql := t.selectSQL()
	if where != "" {
		sql += " WHERE " + where
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[T])
}

// selectByID returns nil, nil when no row matches.
func selectByID[T any](ctx context.Context, q querier, t table, id uuid.UUID) (*T, error) {
	rows, err := q.Query(ctx, t.selectSQL()+" WHERE id = $1", id)
	if err != nil {
		return nil, err
	}

	item, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[T])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return item, err
}

func selectByIDs[T any](ctx context.Context, q querier, t table, ids []uuid.UUID) ([]*T, error) {
	if len(ids) == 0 {
		return []*T{}, nil
	}
	return selectWhere[T](ctx, q, t, "id = ANY($1)", ids)
}

// upsert inserts a row when id is uuid.Nil, letting storage assign the id.
// Otherwise it writes every column for id, inserting or overwriting.
func upsert(ctx context.Context, q querier, t table, id uuid.UUID, values ...any) (uuid.UUID, error) {
	columns := t.writeColumns()
	if len(values) != len(columns) {
		return uuid.Nil, fmt.Errorf("%s: %d values for %d columns", t.name, len(values), len(columns))
	}

	var sql string
	args := values
	if id == uuid.Nil {
		sql = fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING id",
			t.name, strings.Join(columns, ", "), placeholders(1, len(columns)))
	} else {
		sets := make([]string, len(columns))
		for i, col := range columns {
			sets[i] = fmt.Sprintf("%s = EXCLUDED.%s", col, col)
		}
		sql = fmt.Sprintf("INSERT INTO %s (id, %s) VALUES ($1, %s) ON CONFLICT (id) DO UPDATE SET %s RETURNING id",
			t.name, strings.Join(columns, ", "), placeholders(2, len(columns)), strings.Join(sets, ", "))
		args = append([]any{id}, values...)
	}

	var saved uuid.UUID
	if err := q.QueryRow(ctx, sql, args...).Scan(&saved); err != nil {
		return uuid.Nil, err
	}
	return saved, nil
}

func deleteByID(ctx context.Context, q querier, t table, id uuid.UUID) (models.DeletionOutcome, error) {
	tag, err := q.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", t.name), id)
	if err != nil {
		return models.DeletionOutcome{}, err
	}
	return models.DeletionOutcome{Affected: tag.RowsAffected()}, nil
}

// placeholders returns "$from, $from+1, ..." for n parameters.
func placeholders(from, n int) string {
	ps := make([]string, n)
	for i := range ps {
		ps[i] = fmt.Sprintf("$%d", from+i)
	}
	return strings.Join(ps, ", ")
}

// filter accumulates AND-ed WHERE conditions with positional arguments.
type filter struct {
	conds []string
	args  []any
}

// add appends a condition; each "?" in cond becomes the next placeholder.
func (f *filter) add(cond string, arg any) {
	f.args = append(f.args, arg)
	f.conds = append(f.conds, strings.ReplaceAll(cond, "?", fmt.Sprintf("$%d", len(f.args))))
}

func (f *filter) where() string {
	return strings.Join(f.conds, " AND ")
}
