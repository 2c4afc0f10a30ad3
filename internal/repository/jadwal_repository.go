package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ahmadqo/posyandu-desa/internal/model"
)

const jadwalColumns = `id, judul, deskripsi, tanggal, waktu_mulai, waktu_selesai, lokasi, petugas, jenis,
	created_at, updated_at`

var jadwalList = listQuery{
	table:   "jadwal",
	columns: jadwalColumns,
	search:  []string{"judul", "lokasi"},
	filter:  "jenis",
	orderBy: "tanggal ASC, waktu_mulai ASC, id ASC",
}

type JadwalRepository interface {
	FindAll(ctx context.Context, filter model.ListFilter) ([]*model.Jadwal, int64, error)
	FindUpcoming(ctx context.Context, today model.Date) ([]*model.Jadwal, error)
	FindByID(ctx context.Context, id int64) (*model.Jadwal, error)
	Create(ctx context.Context, jadwal *model.Jadwal) error
	Update(ctx context.Context, jadwal *model.Jadwal) error
	Delete(ctx context.Context, id int64) error
}

type jadwalRepository struct {
	db *sqlx.DB
}

func NewJadwalRepository(db *sqlx.DB) JadwalRepository {
	return &jadwalRepository{db: db}
}

func (r *jadwalRepository) FindAll(ctx context.Context, filter model.ListFilter) ([]*model.Jadwal, int64, error) {
	return findPage[model.Jadwal](ctx, r.db, jadwalList, filter)
}

// FindUpcoming mengembalikan jadwal mulai hari ini, tanpa pagination.
func (r *jadwalRepository) FindUpcoming(ctx context.Context, today model.Date) ([]*model.Jadwal, error) {
	query := fmt.Sprintf("SELECT %s FROM jadwal WHERE tanggal >= $1 ORDER BY %s", jadwalColumns, jadwalList.orderBy)

	items := []*model.Jadwal{}
	if err := r.db.SelectContext(ctx, &items, query, today); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *jadwalRepository) FindByID(ctx context.Context, id int64) (*model.Jadwal, error) {
	return findByID[model.Jadwal](ctx, r.db, "jadwal", jadwalColumns, id)
}

func (r *jadwalRepository) Create(ctx context.Context, jadwal *model.Jadwal) error {
	query := `
		INSERT INTO jadwal (judul, deskripsi, tanggal, waktu_mulai, waktu_selesai, lokasi, petugas, jenis,
		                    created_at, updated_at)
		VALUES (:judul, :deskripsi, :tanggal, :waktu_mulai, :waktu_selesai, :lokasi, :petugas, :jenis,
		        NOW(), NOW())
		RETURNING ` + jadwalColumns
	return namedReturning(ctx, r.db, query, jadwal)
}

func (r *jadwalRepository) Update(ctx context.Context, jadwal *model.Jadwal) error {
	query := `
		UPDATE jadwal SET
			judul = :judul, deskripsi = :deskripsi, tanggal = :tanggal, waktu_mulai = :waktu_mulai,
			waktu_selesai = :waktu_selesai, lokasi = :lokasi, petugas = :petugas, jenis = :jenis,
			updated_at = NOW()
		WHERE id = :id
		RETURNING ` + jadwalColumns
	return namedReturning(ctx, r.db, query, jadwal)
}

func (r *jadwalRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "jadwal", id)
}

var _ JadwalRepository = (*jadwalRepository)(nil)
