package records

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	database "github.com/sebuszqo/LanaApp/internal/db"
)

type Gateway[T any] struct {
	db        *sql.DB
	schema    Schema[T]
	selectSQL string
}

// NewGateway panics on an incomplete schema: schemas are package-level
// declarations and a broken one is a programming error.
func NewGateway[T any](db *sql.DB, schema Schema[T]) *Gateway[T] {
	if err := schema.validate(); err != nil {
		panic(err)
	}
	return &Gateway[T]{
		db:        db,
		schema:    schema,
		selectSQL: fmt.Sprintf("SELECT %s FROM %s", strings.Join(schema.Projection, ", "), schema.Table),
	}
}

func (g *Gateway[T]) Table() string { return g.schema.Table }

// Create inserts rec and returns the id assigned by the store.
func (g *Gateway[T]) Create(ctx context.Context, rec *T) (int64, error) {
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING id",
		g.schema.Table, strings.Join(g.schema.Columns, ", "), placeholders(1, len(g.schema.Columns)))

	var id int64
	err := database.InTx(ctx, g.db, func(ctx context.Context, tx database.Querier) error {
		return tx.QueryRowContext(ctx, query, g.schema.Values(rec)...).Scan(&id)
	})
	if err != nil {
		return 0, g.schema.translate(err)
	}
	return id, nil
}

// CreateMany inserts every record in a single transaction; either all rows
// are written or none.
func (g *Gateway[T]) CreateMany(ctx context.Context, recs []*T) ([]int64, error) {
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING id",
		g.schema.Table, strings.Join(g.schema.Columns, ", "), placeholders(1, len(g.schema.Columns)))

	ids := make([]int64, 0, len(recs))
	err := database.InTx(ctx, g.db, func(ctx context.Context, tx database.Querier) error {
		for i, rec := range recs {
			var id int64
			if err := tx.QueryRowContext(ctx, query, g.schema.Values(rec)...).Scan(&id); err != nil {
				return fmt.Errorf("row %d: %w", i+1, err)
			}
			ids = append(ids, id)
		}
		return nil
	})
	if err != nil {
		return nil, g.schema.translate(err)
	}
	return ids, nil
}

func (g *Gateway[T]) Get(ctx context.Context, id int64) (*T, error) {
	var rec T
	row := g.db.QueryRowContext(ctx, g.selectSQL+" WHERE id = $1", id)
	if err := g.schema.Scan(row, &rec); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s %d: %w", g.schema.Table, id, ErrNotFound)
		}
		return nil, fmt.Errorf("could not get %s %d: %w", g.schema.Table, id, err)
	}
	return &rec, nil
}

// List returns the rows matching q. The result is never nil.
func (g *Gateway[T]) List(ctx context.Context, q Query) ([]T, error) {
	clause, args := where(q.Filters, 1)
	order := q.OrderBy
	if order == "" {
		order = "id ASC"
	}

	rows, err := g.db.QueryContext(ctx, g.selectSQL+clause+" ORDER BY "+order, args...)
	if err != nil {
		return nil, fmt.Errorf("could not list %s: %w", g.schema.Table, err)
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		var rec T
		if err := g.schema.Scan(rows, &rec); err != nil {
			return nil, fmt.Errorf("could not scan %s: %w", g.schema.Table, err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not list %s: %w", g.schema.Table, err)
	}
	return out, nil
}

// First returns the first row matching q or ErrNotFound.
func (g *Gateway[T]) First(ctx context.Context, q Query) (*T, error) {
	list, err := g.List(ctx, q)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("%s: %w", g.schema.Table, ErrNotFound)
	}
	return &list[0], nil
}

// Update overwrites every writable column of row id. It returns ErrNotFound
// when no row has that id.
func (g *Gateway[T]) Update(ctx context.Context, id int64, rec *T) error {
	values := g.schema.Values(rec)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d",
		g.schema.Table, setClause(g.schema.Columns, g.schema.Touch), len(values)+1)

	err := database.InTx(ctx, g.db, func(ctx context.Context, tx database.Querier) error {
		res, err := tx.ExecContext(ctx, query, append(values, id)...)
		if err != nil {
			return err
		}
		return g.requireRow(res, id)
	})
	if errors.Is(err, ErrNotFound) {
		return err
	}
	return g.schema.translate(err)
}

func (g *Gateway[T]) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", g.schema.Table)

	return database.InTx(ctx, g.db, func(ctx context.Context, tx database.Querier) error {
		res, err := tx.ExecContext(ctx, query, id)
		if err != nil {
			return err
		}
		return g.requireRow(res, id)
	})
}

// Toggle flips a boolean column of row id and returns its new value.
func (g *Gateway[T]) Toggle(ctx context.Context, id int64, column string) (bool, error) {
	set := fmt.Sprintf("%s = NOT %s", column, column)
	if g.schema.Touch != "" {
		set += ", " + g.schema.Touch + " = NOW()"
	}
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $1 RETURNING %s", g.schema.Table, set, column)

	var value bool
	err := database.InTx(ctx, g.db, func(ctx context.Context, tx database.Querier) error {
		return tx.QueryRowContext(ctx, query, id).Scan(&value)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return false, fmt.Errorf("%s %d: %w", g.schema.Table, id, ErrNotFound)
	}
	if err != nil {
		return false, err
	}
	return value, nil
}

// Assign sets the given columns on every row matching filters and returns
// the number of rows affected. Zero rows is not an error here.
func (g *Gateway[T]) Assign(ctx context.Context, set []Assignment, filters ...Filter) (int64, error) {
	columns := make([]string, len(set))
	args := make([]any, len(set))
	for i, a := range set {
		columns[i] = a.Column
		args[i] = a.Value
	}
	clause, whereArgs := where(filters, len(set)+1)
	query := fmt.Sprintf("UPDATE %s SET %s%s", g.schema.Table, setClause(columns, g.schema.Touch), clause)

	var affected int64
	err := database.InTx(ctx, g.db, func(ctx context.Context, tx database.Querier) error {
		res, err := tx.ExecContext(ctx, query, append(args, whereArgs...)...)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return 0, g.schema.translate(err)
	}
	return affected, nil
}

func (g *Gateway[T]) requireRow(res sql.Result, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s %d: %w", g.schema.Table, id, ErrNotFound)
	}
	return nil
}
