package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmadqo/posyandu-desa/internal/model"
	"github.com/ahmadqo/posyandu-desa/internal/validation"
)

func validJadwalRequest() *model.JadwalRequest {
	return &model.JadwalRequest{
		Judul:        "Penimbangan Balita",
		Tanggal:      "2024-06-10",
		WaktuMulai:   "08:00",
		WaktuSelesai: "11:00",
		Lokasi:       "Balai Desa",
		Petugas:      "Bidan Rina",
		Jenis:        "balita",
	}
}

func TestJadwalService_Create(t *testing.T) {
	svc := NewJadwalService(&fakeJadwalRepo{}, testValidator())

	j, err := svc.Create(context.Background(), validJadwalRequest())
	require.NoError(t, err)
	assert.Equal(t, model.NewDate(2024, 6, 10), j.Tanggal)
	assert.Equal(t, model.JenisBalita, j.Jenis)
	assert.Nil(t, j.Deskripsi)
}

func TestJadwalService_RejectsPastDateAndInvertedTimes(t *testing.T) {
	svc := NewJadwalService(&fakeJadwalRepo{}, testValidator())

	req := validJadwalRequest()
	req.Tanggal = "2024-05-31"
	req.WaktuSelesai = "08:00"
	_, err := svc.Create(context.Background(), req)

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.True(t, verrs.Has("tanggal"))
	assert.True(t, verrs.Has("waktu_selesai"))
}

func TestJadwalService_UpcomingUsesToday(t *testing.T) {
	repo := &fakeJadwalRepo{rows: []*model.Jadwal{
		{ID: 1, Tanggal: model.NewDate(2024, 5, 20)},
		{ID: 2, Tanggal: model.NewDate(2024, 6, 1)},
		{ID: 3, Tanggal: model.NewDate(2024, 6, 15)},
	}}
	svc := NewJadwalService(repo, testValidator())

	items, err := svc.Upcoming(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.NewDate(2024, 6, 1), repo.upcomingToday)
	require.Len(t, items, 2)
	assert.Equal(t, int64(2), items[0].ID)
	assert.Equal(t, int64(3), items[1].ID)
}

func TestJadwalService_NotFound(t *testing.T) {
	svc := NewJadwalService(&fakeJadwalRepo{}, testValidator())
	ctx := context.Background()

	_, err := svc.Get(ctx, 1)
	assert.ErrorIs(t, err, ErrJadwalNotFound)
	_, err = svc.Update(ctx, 1, validJadwalRequest())
	assert.ErrorIs(t, err, ErrJadwalNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, 1), ErrJadwalNotFound)
}
