package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ahmadqo/posyandu-desa/internal/model"
)

const pengaduanColumns = `id, nama, nik, email, no_hp, kategori, subjek, pesan, status, tanggapan,
	created_at, updated_at`

var pengaduanList = listQuery{
	table:   "pengaduan",
	columns: pengaduanColumns,
	search:  []string{"nama", "subjek"},
	filter:  "status",
	orderBy: "created_at DESC, id DESC",
}

// ComposeFunc merender email dari pengaduan yang baru saja ditanggapi.
type ComposeFunc func(p *model.Pengaduan) (*model.EmailMessage, error)

type PengaduanRepository interface {
	FindAll(ctx context.Context, filter model.ListFilter) ([]*model.Pengaduan, int64, error)
	FindByID(ctx context.Context, id int64) (*model.Pengaduan, error)
	Create(ctx context.Context, pengaduan *model.Pengaduan) error
	// UpdateStatus mengubah status dan/atau tanggapan; argumen nil berarti
	// kolom tersebut dipertahankan.
	UpdateStatus(ctx context.Context, id int64, status *model.StatusPengaduan, tanggapan *string) (*model.Pengaduan, error)
	// Respond menyimpan tanggapan, mengubah status ke selesai dan menulis
	// event notifikasi dalam satu transaksi.
	Respond(ctx context.Context, id int64, tanggapan string, compose ComposeFunc) (*model.Pengaduan, *model.Notification, error)
	Delete(ctx context.Context, id int64) error
}

type pengaduanRepository struct {
	db *sqlx.DB
}

func NewPengaduanRepository(db *sqlx.DB) PengaduanRepository {
	return &pengaduanRepository{db: db}
}

func (r *pengaduanRepository) FindAll(ctx context.Context, filter model.ListFilter) ([]*model.Pengaduan, int64, error) {
	return findPage[model.Pengaduan](ctx, r.db, pengaduanList, filter)
}

func (r *pengaduanRepository) FindByID(ctx context.Context, id int64) (*model.Pengaduan, error) {
	return findByID[model.Pengaduan](ctx, r.db, "pengaduan", pengaduanColumns, id)
}

func (r *pengaduanRepository) Create(ctx context.Context, pengaduan *model.Pengaduan) error {
	query := `
		INSERT INTO pengaduan (nama, nik, email, no_hp, kategori, subjek, pesan, status, created_at, updated_at)
		VALUES (:nama, :nik, :email, :no_hp, :kategori, :subjek, :pesan, 'baru', NOW(), NOW())
		RETURNING ` + pengaduanColumns
	return namedReturning(ctx, r.db, query, pengaduan)
}

func (r *pengaduanRepository) UpdateStatus(ctx context.Context, id int64, status *model.StatusPengaduan, tanggapan *string) (*model.Pengaduan, error) {
	query := fmt.Sprintf(`
		UPDATE pengaduan SET status = COALESCE($2, status), tanggapan = COALESCE($3, tanggapan), updated_at = NOW()
		WHERE id = $1
		RETURNING %s`, pengaduanColumns)

	var statusArg, tanggapanArg interface{}
	if status != nil {
		statusArg = string(*status)
	}
	if tanggapan != nil {
		tanggapanArg = *tanggapan
	}

	var p model.Pengaduan
	if err := r.db.GetContext(ctx, &p, query, id, statusArg, tanggapanArg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *pengaduanRepository) Respond(ctx context.Context, id int64, tanggapan string, compose ComposeFunc) (*model.Pengaduan, *model.Notification, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, nil, err
	}
	defer tx.Rollback()

	query := fmt.Sprintf(`
		UPDATE pengaduan SET tanggapan = $2, status = 'selesai', updated_at = NOW()
		WHERE id = $1
		RETURNING %s`, pengaduanColumns)

	var p model.Pengaduan
	if err := tx.GetContext(ctx, &p, query, id, tanggapan); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, ErrRecordNotFound
		}
		return nil, nil, fmt.Errorf("update tanggapan: %w", err)
	}

	msg, err := compose(&p)
	if err != nil {
		return nil, nil, fmt.Errorf("render email: %w", err)
	}

	pengaduanID := p.ID
	n := &model.Notification{
		EventType:   model.EventPengaduanResponded,
		PengaduanID: &pengaduanID,
		Recipient:   msg.To,
		Subject:     msg.Subject,
		Body:        msg.HTML,
	}
	if err := insertNotification(ctx, tx, n); err != nil {
		return nil, nil, fmt.Errorf("insert outbox: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, err
	}
	return &p, n, nil
}

func (r *pengaduanRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "pengaduan", id)
}

var _ PengaduanRepository = (*pengaduanRepository)(nil)
