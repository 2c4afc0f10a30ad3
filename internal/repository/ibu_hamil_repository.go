package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/ahmadqo/posyandu-desa/internal/model"
)

const IbuHamilNIKConstraint = "ibu_hamil_nik_key"

const ibuHamilColumns = `id, nama, nik, tempat_lahir, tanggal_lahir, alamat, no_hp, nama_suami, nik_suami,
	pekerjaan_suami, hpht, tanggal_periksa_pertama, status_kehamilan, resiko_kehamilan,
	berat_badan, tinggi_badan, lila, tekanan_darah, hemoglobin, golongan_darah, catatan,
	created_at, updated_at`

var ibuHamilList = listQuery{
	table:   "ibu_hamil",
	columns: ibuHamilColumns,
	search:  []string{"nama", "nama_suami"},
	filter:  "status_kehamilan",
	orderBy: "id ASC",
}

type IbuHamilRepository interface {
	FindAll(ctx context.Context, filter model.ListFilter) ([]*model.IbuHamil, int64, error)
	FindAllForExport(ctx context.Context, filter model.ListFilter) ([]*model.IbuHamil, error)
	FindByID(ctx context.Context, id int64) (*model.IbuHamil, error)
	ExistsByNIK(ctx context.Context, nik string, excludeID int64) (bool, error)
	Create(ctx context.Context, ibuHamil *model.IbuHamil) error
	Update(ctx context.Context, ibuHamil *model.IbuHamil) error
	Delete(ctx context.Context, id int64) error
}

type ibuHamilRepository struct {
	db *sqlx.DB
}

func NewIbuHamilRepository(db *sqlx.DB) IbuHamilRepository {
	return &ibuHamilRepository{db: db}
}

func (r *ibuHamilRepository) FindAll(ctx context.Context, filter model.ListFilter) ([]*model.IbuHamil, int64, error) {
	return findPage[model.IbuHamil](ctx, r.db, ibuHamilList, filter)
}

func (r *ibuHamilRepository) FindAllForExport(ctx context.Context, filter model.ListFilter) ([]*model.IbuHamil, error) {
	return findAll[model.IbuHamil](ctx, r.db, ibuHamilList, filter)
}

func (r *ibuHamilRepository) FindByID(ctx context.Context, id int64) (*model.IbuHamil, error) {
	return findByID[model.IbuHamil](ctx, r.db, "ibu_hamil", ibuHamilColumns, id)
}

func (r *ibuHamilRepository) ExistsByNIK(ctx context.Context, nik string, excludeID int64) (bool, error) {
	return existsBy(ctx, r.db, "ibu_hamil", "nik", nik, excludeID)
}

func (r *ibuHamilRepository) Create(ctx context.Context, ibuHamil *model.IbuHamil) error {
	query := `
		INSERT INTO ibu_hamil (nama, nik, tempat_lahir, tanggal_lahir, alamat, no_hp, nama_suami, nik_suami,
		                       pekerjaan_suami, hpht, tanggal_periksa_pertama, status_kehamilan,
		                       resiko_kehamilan, berat_badan, tinggi_badan, lila, tekanan_darah,
		                       hemoglobin, golongan_darah, catatan, created_at, updated_at)
		VALUES (:nama, :nik, :tempat_lahir, :tanggal_lahir, :alamat, :no_hp, :nama_suami, :nik_suami,
		        :pekerjaan_suami, :hpht, :tanggal_periksa_pertama, :status_kehamilan,
		        :resiko_kehamilan, :berat_badan, :tinggi_badan, :lila, :tekanan_darah,
		        :hemoglobin, :golongan_darah, :catatan, NOW(), NOW())
		RETURNING ` + ibuHamilColumns
	return namedReturning(ctx, r.db, query, ibuHamil)
}

func (r *ibuHamilRepository) Update(ctx context.Context, ibuHamil *model.IbuHamil) error {
	query := `
		UPDATE ibu_hamil SET
			nama = :nama, nik = :nik, tempat_lahir = :tempat_lahir, tanggal_lahir = :tanggal_lahir,
			alamat = :alamat, no_hp = :no_hp, nama_suami = :nama_suami, nik_suami = :nik_suami,
			pekerjaan_suami = :pekerjaan_suami, hpht = :hpht,
			tanggal_periksa_pertama = :tanggal_periksa_pertama, status_kehamilan = :status_kehamilan,
			resiko_kehamilan = :resiko_kehamilan, berat_badan = :berat_badan,
			tinggi_badan = :tinggi_badan, lila = :lila, tekanan_darah = :tekanan_darah,
			hemoglobin = :hemoglobin, golongan_darah = :golongan_darah, catatan = :catatan,
			updated_at = NOW()
		WHERE id = :id
		RETURNING ` + ibuHamilColumns
	return namedReturning(ctx, r.db, query, ibuHamil)
}

func (r *ibuHamilRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "ibu_hamil", id)
}

var _ IbuHamilRepository = (*ibuHamilRepository)(nil)
