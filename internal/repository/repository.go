package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/ahmadqo/posyandu-desa/internal/model"
)

// ErrRecordNotFound dikembalikan Update/Delete jika id tidak ada.
var ErrRecordNotFound = errors.New("record tidak ditemukan")

const pgUniqueViolation = "23505"

// IsUniqueViolation melaporkan apakah err berasal dari constraint unik
// tertentu. constraint kosong berarti constraint unik apa saja.
func IsUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgUniqueViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}

// likeEscaper membuat %, _ dan \ pada kata kunci dicari secara literal.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// listQuery mendeskripsikan listing satu tabel: kolom pencarian (ILIKE,
// digabung OR), satu kolom filter eksak dan urutan.
type listQuery struct {
	table   string
	columns string
	search  []string
	filter  string
	orderBy string
}

func (q listQuery) where(f model.ListFilter) (string, []interface{}) {
	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if f.Search != "" && len(q.search) > 0 {
		parts := make([]string, len(q.search))
		for i, col := range q.search {
			parts[i] = fmt.Sprintf(`%s ILIKE $%d ESCAPE '\'`, col, argIdx)
		}
		conditions = append(conditions, "("+strings.Join(parts, " OR ")+")")
		args = append(args, "%"+likeEscaper.Replace(f.Search)+"%")
		argIdx++
	}

	if f.Status != "" && q.filter != "" {
		conditions = append(conditions, fmt.Sprintf("%s = $%d", q.filter, argIdx))
		args = append(args, f.Status)
	}

	return strings.Join(conditions, " AND "), args
}

// findPage menjalankan COUNT lalu SELECT dengan LIMIT/OFFSET. Halaman di
// luar jangkauan menghasilkan slice kosong (bukan nil) tanpa SELECT.
func findPage[T any](ctx context.Context, db sqlx.QueryerContext, q listQuery, f model.ListFilter) ([]*T, int64, error) {
	f = f.Normalize()
	where, args := q.where(f)

	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s", q.table, where)
	if err := sqlx.GetContext(ctx, db, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count %s: %w", q.table, err)
	}

	items := []*T{}
	if f.PastLastPage(total) {
		return items, total, nil
	}

	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s ORDER BY %s LIMIT $%d OFFSET $%d",
		q.columns, q.table, where, q.orderBy, len(args)+1, len(args)+2)
	args = append(args, model.PerPage, f.Offset())

	if err := sqlx.SelectContext(ctx, db, &items, query, args...); err != nil {
		return nil, 0, fmt.Errorf("select %s: %w", q.table, err)
	}
	return items, total, nil
}

// findAll sama dengan findPage tanpa pagination, untuk export.
func findAll[T any](ctx context.Context, db sqlx.QueryerContext, q listQuery, f model.ListFilter) ([]*T, error) {
	where, args := q.where(f)
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s ORDER BY %s", q.columns, q.table, where, q.orderBy)

	items := []*T{}
	if err := sqlx.SelectContext(ctx, db, &items, query, args...); err != nil {
		return nil, fmt.Errorf("select %s: %w", q.table, err)
	}
	return items, nil
}

func findByID[T any](ctx context.Context, db sqlx.QueryerContext, table, columns string, id int64) (*T, error) {
	var item T
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", columns, table)
	if err := sqlx.GetContext(ctx, db, &item, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // not found, bukan error
		}
		return nil, err
	}
	return &item, nil
}

// namedReturning menjalankan query bernama dengan RETURNING lalu mengisi
// ulang dest dari baris yang dikembalikan database.
func namedReturning(ctx context.Context, db sqlx.ExtContext, query string, dest interface{}) error {
	q, args, err := sqlx.Named(query, dest)
	if err != nil {
		return err
	}
	q = db.Rebind(q)

	if err := db.QueryRowxContext(ctx, q, args...).StructScan(dest); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrRecordNotFound
		}
		return err
	}
	return nil
}

func deleteByID(ctx context.Context, db sqlx.ExecerContext, table string, id int64) error {
	res, err := db.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", table), id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func existsBy(ctx context.Context, db sqlx.QueryerContext, table, column, value string, excludeID int64) (bool, error) {
	var exists bool
	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE %s = $1 AND id <> $2)", table, column)
	if err := sqlx.GetContext(ctx, db, &exists, query, value, excludeID); err != nil {
		return false, err
	}
	return exists, nil
}
