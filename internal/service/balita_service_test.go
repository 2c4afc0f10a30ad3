package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmadqo/posyandu-desa/internal/model"
	"github.com/ahmadqo/posyandu-desa/internal/repository"
	"github.com/ahmadqo/posyandu-desa/internal/validation"
)

func newTestBalitaService(repo *fakeBalitaRepo) *balitaService {
	svc := NewBalitaService(repo, testValidator(), testConfig()).(*balitaService)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func validBalitaRequest(nik string) *model.BalitaRequest {
	return &model.BalitaRequest{
		Nama:         "Aisyah Putri",
		NIK:          nik,
		JenisKelamin: "P",
		TempatLahir:  "Sleman",
		TanggalLahir: "2021-03-15",
		NamaOrtu:     "Siti Aminah",
		NIKOrtu:      "3404015501900001",
		Alamat:       "Dusun Krajan RT 02",
		BeratLahir:   model.NewNumber(3.1),
		TinggiLahir:  model.NewNumber(49),
		StatusGizi:   "baik",
	}
}

func TestBalitaService_CreateThenGet(t *testing.T) {
	svc := newTestBalitaService(newFakeBalitaRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, validBalitaRequest("3404011503210001"))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "3 tahun 2 bulan", created.Umur)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Aisyah Putri", got.Nama)
	assert.Equal(t, "3404011503210001", got.NIK)
	require.NotNil(t, got.StatusGizi)
	assert.Equal(t, "baik", *got.StatusGizi)
	assert.Nil(t, got.BeratSekarang)
}

func TestBalitaService_DuplicateNIK(t *testing.T) {
	svc := newTestBalitaService(newFakeBalitaRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, validBalitaRequest("3404011503210001"))
	require.NoError(t, err)

	_, err = svc.Create(ctx, validBalitaRequest("3404011503210001"))
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, []string{"NIK sudah terdaftar."}, verrs["nik"])
}

func TestBalitaService_DuplicateNIKReportedWithOtherErrors(t *testing.T) {
	svc := newTestBalitaService(newFakeBalitaRepo(&model.Balita{ID: 1, NIK: "3404011503210001"}))

	req := validBalitaRequest("3404011503210001")
	req.Nama = ""
	_, err := svc.Create(context.Background(), req)

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.True(t, verrs.Has("nama"))
	assert.True(t, verrs.Has("nik"))
}

func TestBalitaService_UniqueViolationFromDatabase(t *testing.T) {
	repo := newFakeBalitaRepo()
	repo.createErr = uniqueViolation(repository.BalitaNIKConstraint)
	svc := newTestBalitaService(repo)

	_, err := svc.Create(context.Background(), validBalitaRequest("3404011503210001"))

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, []string{"NIK sudah terdaftar."}, verrs["nik"])
}

func TestBalitaService_UpdateKeepsOwnNIK(t *testing.T) {
	repo := newFakeBalitaRepo(&model.Balita{ID: 1, NIK: "3404011503210001"})
	svc := newTestBalitaService(repo)

	req := validBalitaRequest("3404011503210001")
	req.BeratSekarang = model.NewNumber(14.2)
	updated, err := svc.Update(context.Background(), 1, req)

	require.NoError(t, err)
	require.NotNil(t, updated.BeratSekarang)
	assert.Equal(t, 14.2, *updated.BeratSekarang)
}

func TestBalitaService_UpdateRejectsOtherRecordsNIK(t *testing.T) {
	repo := newFakeBalitaRepo(
		&model.Balita{ID: 1, NIK: "3404011503210001"},
		&model.Balita{ID: 2, NIK: "3404011503210002"},
	)
	svc := newTestBalitaService(repo)

	_, err := svc.Update(context.Background(), 2, validBalitaRequest("3404011503210001"))

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.True(t, verrs.Has("nik"))
}

func TestBalitaService_NotFound(t *testing.T) {
	svc := newTestBalitaService(newFakeBalitaRepo())
	ctx := context.Background()

	_, err := svc.Get(ctx, 99)
	assert.ErrorIs(t, err, ErrBalitaNotFound)

	_, err = svc.Update(ctx, 99, validBalitaRequest("3404011503210001"))
	assert.ErrorIs(t, err, ErrBalitaNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, 99), ErrBalitaNotFound)
}

func TestBalitaService_Delete(t *testing.T) {
	repo := newFakeBalitaRepo(&model.Balita{ID: 1, NIK: "3404011503210001"})
	svc := newTestBalitaService(repo)

	require.NoError(t, svc.Delete(context.Background(), 1))
	_, err := svc.Get(context.Background(), 1)
	assert.ErrorIs(t, err, ErrBalitaNotFound)
}

func TestBalitaService_Export(t *testing.T) {
	gizi := "kurang"
	repo := newFakeBalitaRepo(
		&model.Balita{ID: 1, Nama: "Aisyah", NIK: "3404011503210001", TanggalLahir: model.NewDate(2021, 3, 15), StatusGizi: &gizi},
	)
	svc := newTestBalitaService(repo)

	file, err := svc.Export(context.Background(), model.ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, "data-balita-2024-06-01.xlsx", file.Name)
	assert.Equal(t, contentTypeXLSX, file.ContentType)
	assert.True(t, bytes.HasPrefix(file.Data, []byte("PK")), "xlsx adalah arsip zip")
}

func TestBalitaService_Kartu(t *testing.T) {
	repo := newFakeBalitaRepo(
		&model.Balita{ID: 7, Nama: "Aisyah", NIK: "3404011503210001", JenisKelamin: "P", TanggalLahir: model.NewDate(2021, 3, 15)},
	)
	svc := newTestBalitaService(repo)

	file, err := svc.Kartu(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "kartu-balita-7.pdf", file.Name)
	assert.Equal(t, contentTypePDF, file.ContentType)
	assert.True(t, bytes.HasPrefix(file.Data, []byte("%PDF")))

	_, err = svc.Kartu(context.Background(), 8)
	assert.ErrorIs(t, err, ErrBalitaNotFound)
}
