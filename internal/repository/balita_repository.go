package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/ahmadqo/posyandu-desa/internal/model"
)

// BalitaNIKConstraint adalah nama constraint unik kolom nik.
const BalitaNIKConstraint = "balita_nik_key"

const balitaColumns = `id, nama, nik, jenis_kelamin, tempat_lahir, tanggal_lahir, nama_ortu, nik_ortu,
	alamat, berat_lahir, tinggi_lahir, berat_sekarang, tinggi_sekarang, status_gizi,
	status_imunisasi, status_vitamin_a, catatan, created_at, updated_at`

var balitaList = listQuery{
	table:   "balita",
	columns: balitaColumns,
	search:  []string{"nama", "nama_ortu"},
	filter:  "status_gizi",
	orderBy: "id ASC",
}

type BalitaRepository interface {
	FindAll(ctx context.Context, filter model.ListFilter) ([]*model.Balita, int64, error)
	FindAllForExport(ctx context.Context, filter model.ListFilter) ([]*model.Balita, error)
	FindByID(ctx context.Context, id int64) (*model.Balita, error)
	ExistsByNIK(ctx context.Context, nik string, excludeID int64) (bool, error)
	Create(ctx context.Context, balita *model.Balita) error
	Update(ctx context.Context, balita *model.Balita) error
	Delete(ctx context.Context, id int64) error
}

type balitaRepository struct {
	db *sqlx.DB
}

func NewBalitaRepository(db *sqlx.DB) BalitaRepository {
	return &balitaRepository{db: db}
}

func (r *balitaRepository) FindAll(ctx context.Context, filter model.ListFilter) ([]*model.Balita, int64, error) {
	return findPage[model.Balita](ctx, r.db, balitaList, filter)
}

func (r *balitaRepository) FindAllForExport(ctx context.Context, filter model.ListFilter) ([]*model.Balita, error) {
	return findAll[model.Balita](ctx, r.db, balitaList, filter)
}

func (r *balitaRepository) FindByID(ctx context.Context, id int64) (*model.Balita, error) {
	return findByID[model.Balita](ctx, r.db, "balita", balitaColumns, id)
}

func (r *balitaRepository) ExistsByNIK(ctx context.Context, nik string, excludeID int64) (bool, error) {
	return existsBy(ctx, r.db, "balita", "nik", nik, excludeID)
}

func (r *balitaRepository) Create(ctx context.Context, balita *model.Balita) error {
	query := `
		INSERT INTO balita (nama, nik, jenis_kelamin, tempat_lahir, tanggal_lahir, nama_ortu, nik_ortu,
		                    alamat, berat_lahir, tinggi_lahir, berat_sekarang, tinggi_sekarang,
		                    status_gizi, status_imunisasi, status_vitamin_a, catatan, created_at, updated_at)
		VALUES (:nama, :nik, :jenis_kelamin, :tempat_lahir, :tanggal_lahir, :nama_ortu, :nik_ortu,
		        :alamat, :berat_lahir, :tinggi_lahir, :berat_sekarang, :tinggi_sekarang,
		        :status_gizi, :status_imunisasi, :status_vitamin_a, :catatan, NOW(), NOW())
		RETURNING ` + balitaColumns
	return namedReturning(ctx, r.db, query, balita)
}

func (r *balitaRepository) Update(ctx context.Context, balita *model.Balita) error {
	query := `
		UPDATE balita SET
			nama = :nama, nik = :nik, jenis_kelamin = :jenis_kelamin, tempat_lahir = :tempat_lahir,
			tanggal_lahir = :tanggal_lahir, nama_ortu = :nama_ortu, nik_ortu = :nik_ortu,
			alamat = :alamat, berat_lahir = :berat_lahir, tinggi_lahir = :tinggi_lahir,
			berat_sekarang = :berat_sekarang, tinggi_sekarang = :tinggi_sekarang,
			status_gizi = :status_gizi, status_imunisasi = :status_imunisasi,
			status_vitamin_a = :status_vitamin_a, catatan = :catatan, updated_at = NOW()
		WHERE id = :id
		RETURNING ` + balitaColumns
	return namedReturning(ctx, r.db, query, balita)
}

func (r *balitaRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "balita", id)
}

// Pastikan interface terpenuhi
var _ BalitaRepository = (*balitaRepository)(nil)
