package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmadqo/posyandu-desa/internal/model"
)

var pengaduanRowColumns = []string{"id", "nama", "nik", "email", "no_hp", "kategori", "subjek", "pesan",
	"status", "tanggapan", "created_at", "updated_at"}

var notificationRowColumns = []string{"id", "event_type", "pengaduan_id", "recipient", "subject", "body",
	"status", "attempts", "last_error", "next_attempt_at", "sent_at", "created_at", "updated_at"}

func respondedRow(tanggapan string) *sqlmock.Rows {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	return sqlmock.NewRows(pengaduanRowColumns).AddRow(5, "Warga", "3201010101010005", "warga@example.com",
		"08123", "pelayanan", "Antrian lama", "Antrian di posyandu terlalu lama sekali", "selesai", tanggapan, now, now)
}

func composeStub(p *model.Pengaduan) (*model.EmailMessage, error) {
	return &model.EmailMessage{To: p.Email, Subject: "Tanggapan", HTML: "<p>" + *p.Tanggapan + "</p>"}, nil
}

func TestPengaduanRepository_Respond(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPengaduanRepository(db)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE pengaduan SET tanggapan = $2, status = 'selesai'")).
		WithArgs(int64(5), "Sudah kami perbaiki").
		WillReturnRows(respondedRow("Sudah kami perbaiki"))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO notification_outbox")).
		WithArgs(model.EventPengaduanResponded, int64(5), "warga@example.com", "Tanggapan", "<p>Sudah kami perbaiki</p>").
		WillReturnRows(sqlmock.NewRows(notificationRowColumns).AddRow(
			1, model.EventPengaduanResponded, 5, "warga@example.com", "Tanggapan", "<p>Sudah kami perbaiki</p>",
			"pending", 0, nil, now, nil, now, now))
	mock.ExpectCommit()

	p, n, err := repo.Respond(context.Background(), 5, "Sudah kami perbaiki", composeStub)
	require.NoError(t, err)
	assert.Equal(t, model.StatusSelesai, p.Status)
	require.NotNil(t, p.Tanggapan)
	assert.Equal(t, "Sudah kami perbaiki", *p.Tanggapan)
	assert.Equal(t, int64(1), n.ID)
	assert.Equal(t, model.OutboxPending, n.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPengaduanRepository_Respond_NotFoundRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPengaduanRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE pengaduan SET tanggapan")).
		WillReturnRows(sqlmock.NewRows(pengaduanRowColumns))
	mock.ExpectRollback()

	_, _, err := repo.Respond(context.Background(), 404, "x", composeStub)
	assert.ErrorIs(t, err, ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPengaduanRepository_Respond_OutboxFailureRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPengaduanRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE pengaduan SET tanggapan")).
		WillReturnRows(respondedRow("ok"))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO notification_outbox")).
		WillReturnError(errors.New("disk penuh"))
	mock.ExpectRollback()

	_, _, err := repo.Respond(context.Background(), 5, "ok", composeStub)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert outbox")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPengaduanRepository_FindAll_NewestFirst(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPengaduanRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM pengaduan WHERE 1=1 AND status = $1")).
		WithArgs("baru").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3")).
		WillReturnRows(respondedRow("x"))

	items, total, err := repo.FindAll(context.Background(), model.ListFilter{Status: "baru"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, items, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPengaduanRepository_UpdateStatus_NilKeepsColumns(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPengaduanRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SET status = COALESCE($2, status), tanggapan = COALESCE($3, tanggapan)")).
		WithArgs(int64(5), nil, "Sedang dicek").
		WillReturnRows(respondedRow("Sedang dicek"))

	tanggapan := "Sedang dicek"
	p, err := repo.UpdateStatus(context.Background(), 5, nil, &tanggapan)
	require.NoError(t, err)
	require.NotNil(t, p.Tanggapan)
	assert.Equal(t, "Sedang dicek", *p.Tanggapan)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPengaduanRepository_UpdateStatus_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPengaduanRepository(db)

	status := model.StatusDiproses
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE pengaduan")).
		WithArgs(int64(9), "diproses", nil).
		WillReturnRows(sqlmock.NewRows(pengaduanRowColumns))

	_, err := repo.UpdateStatus(context.Background(), 9, &status, nil)
	assert.ErrorIs(t, err, ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
