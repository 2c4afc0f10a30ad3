package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ahmadqo/posyandu-desa/internal/model"
)

// StatistikRepository menghitung ringkasan untuk dashboard.
type StatistikRepository interface {
	// CountBy mengembalikan jumlah baris per nilai kolom. NULL dihitung
	// sebagai "belum_diisi".
	CountBy(ctx context.Context, table, column string) (map[string]int64, error)
	CountUpcomingJadwal(ctx context.Context, today model.Date) (int64, error)
}

type statistikRepository struct {
	db *sqlx.DB
}

func NewStatistikRepository(db *sqlx.DB) StatistikRepository {
	return &statistikRepository{db: db}
}

// hanya kombinasi ini yang boleh masuk ke query
var countableColumns = map[string]map[string]bool{
	"balita":    {"status_gizi": true},
	"ibu_hamil": {"resiko_kehamilan": true, "status_kehamilan": true},
	"pengaduan": {"status": true},
	"users":     {"role": true},
}

type countRow struct {
	Value string `db:"value"`
	Total int64  `db:"total"`
}

func (r *statistikRepository) CountBy(ctx context.Context, table, column string) (map[string]int64, error) {
	if !countableColumns[table][column] {
		return nil, fmt.Errorf("kolom %s.%s tidak bisa dihitung", table, column)
	}

	query := fmt.Sprintf(
		"SELECT COALESCE(%[2]s, 'belum_diisi') AS value, COUNT(*) AS total FROM %[1]s GROUP BY 1 ORDER BY 1",
		table, column)

	var rows []countRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}

	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.Value] = row.Total
	}
	return out, nil
}

func (r *statistikRepository) CountUpcomingJadwal(ctx context.Context, today model.Date) (int64, error) {
	var total int64
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM jadwal WHERE tanggal >= $1", today)
	return total, err
}

var _ StatistikRepository = (*statistikRepository)(nil)
