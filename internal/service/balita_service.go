package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ahmadqo/posyandu-desa/internal/config"
	"github.com/ahmadqo/posyandu-desa/internal/model"
	"github.com/ahmadqo/posyandu-desa/internal/repository"
	"github.com/ahmadqo/posyandu-desa/internal/utils"
	"github.com/ahmadqo/posyandu-desa/internal/validation"
)

var ErrBalitaNotFound = errors.New("data balita tidak ditemukan")

type BalitaService interface {
	List(ctx context.Context, filter model.ListFilter) ([]*model.BalitaView, int64, error)
	Get(ctx context.Context, id int64) (*model.BalitaView, error)
	Create(ctx context.Context, req *model.BalitaRequest) (*model.BalitaView, error)
	Update(ctx context.Context, id int64, req *model.BalitaRequest) (*model.BalitaView, error)
	Delete(ctx context.Context, id int64) error
	Export(ctx context.Context, filter model.ListFilter) (*File, error)
	Kartu(ctx context.Context, id int64) (*File, error)
}

type balitaService struct {
	repo      repository.BalitaRepository
	validator *validation.Validator
	cfg       *config.Config
	now       func() time.Time
}

func NewBalitaService(repo repository.BalitaRepository, v *validation.Validator, cfg *config.Config) BalitaService {
	return &balitaService{repo: repo, validator: v, cfg: cfg, now: time.Now}
}

func (s *balitaService) view(b *model.Balita) *model.BalitaView {
	return &model.BalitaView{
		Balita: b,
		Umur:   utils.CalculateAge(b.TanggalLahir.Time, s.now()).String(),
	}
}

func (s *balitaService) List(ctx context.Context, filter model.ListFilter) ([]*model.BalitaView, int64, error) {
	items, total, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list balita: %w", err)
	}
	views := make([]*model.BalitaView, len(items))
	for i, b := range items {
		views[i] = s.view(b)
	}
	return views, total, nil
}

func (s *balitaService) find(ctx context.Context, id int64) (*model.Balita, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find balita %d: %w", id, err)
	}
	if b == nil {
		return nil, ErrBalitaNotFound
	}
	return b, nil
}

func (s *balitaService) Get(ctx context.Context, id int64) (*model.BalitaView, error) {
	b, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.view(b), nil
}

// check menjalankan validasi field dan pre-check NIK unik (mengabaikan
// record dengan id excludeID).
func (s *balitaService) check(ctx context.Context, req *model.BalitaRequest, excludeID int64) error {
	errs, err := validate(s.validator, req)
	if err != nil {
		return err
	}
	if !errs.Has("nik") {
		exists, err := s.repo.ExistsByNIK(ctx, req.NIK, excludeID)
		if err != nil {
			return fmt.Errorf("cek nik balita: %w", err)
		}
		if exists {
			errs.Add("nik", validation.Unique("NIK"))
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (s *balitaService) Create(ctx context.Context, req *model.BalitaRequest) (*model.BalitaView, error) {
	if err := s.check(ctx, req, 0); err != nil {
		return nil, err
	}

	b := &model.Balita{}
	req.ToBalita(b)
	if err := s.repo.Create(ctx, b); err != nil {
		if repository.IsUniqueViolation(err, repository.BalitaNIKConstraint) {
			return nil, uniqueError("nik", "NIK")
		}
		return nil, fmt.Errorf("create balita: %w", err)
	}
	return s.view(b), nil
}

func (s *balitaService) Update(ctx context.Context, id int64, req *model.BalitaRequest) (*model.BalitaView, error) {
	b, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.check(ctx, req, id); err != nil {
		return nil, err
	}

	req.ToBalita(b)
	if err := s.repo.Update(ctx, b); err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrBalitaNotFound
		case repository.IsUniqueViolation(err, repository.BalitaNIKConstraint):
			return nil, uniqueError("nik", "NIK")
		}
		return nil, fmt.Errorf("update balita %d: %w", id, err)
	}
	return s.view(b), nil
}

func (s *balitaService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return ErrBalitaNotFound
		}
		return fmt.Errorf("delete balita %d: %w", id, err)
	}
	return nil
}

var balitaExportColumns = []utils.ExcelColumn{
	{Header: "No", Width: 6},
	{Header: "Nama", Width: 25},
	{Header: "NIK", Width: 20},
	{Header: "Jenis Kelamin", Width: 14},
	{Header: "Tempat Lahir", Width: 18},
	{Header: "Tanggal Lahir", Width: 14},
	{Header: "Umur", Width: 18},
	{Header: "Nama Orang Tua", Width: 25},
	{Header: "NIK Orang Tua", Width: 20},
	{Header: "Alamat", Width: 35},
	{Header: "Berat Lahir (kg)", Width: 16},
	{Header: "Tinggi Lahir (cm)", Width: 16},
	{Header: "Berat Sekarang (kg)", Width: 18},
	{Header: "Tinggi Sekarang (cm)", Width: 18},
	{Header: "Status Gizi", Width: 14},
	{Header: "Status Imunisasi", Width: 16},
	{Header: "Status Vitamin A", Width: 16},
	{Header: "Catatan", Width: 30},
}

// Export menghasilkan xlsx semua balita yang cocok dengan filter (tanpa
// pagination).
func (s *balitaService) Export(ctx context.Context, filter model.ListFilter) (*File, error) {
	items, err := s.repo.FindAllForExport(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("export balita: %w", err)
	}

	now := s.now()
	rows := make([][]interface{}, len(items))
	for i, b := range items {
		rows[i] = []interface{}{
			i + 1,
			b.Nama,
			b.NIK,
			b.JenisKelamin,
			b.TempatLahir,
			b.TanggalLahir.String(),
			utils.CalculateAge(b.TanggalLahir.Time, now).String(),
			b.NamaOrtu,
			b.NIKOrtu,
			b.Alamat,
			b.BeratLahir,
			b.TinggiLahir,
			floatOrNil(b.BeratSekarang),
			floatOrNil(b.TinggiSekarang),
			stringOrNil(b.StatusGizi),
			stringOrNil(b.StatusImunisasi),
			stringOrNil(b.StatusVitaminA),
			stringOrNil(b.Catatan),
		}
	}

	data, err := utils.GenerateExcel("Data Balita", balitaExportColumns, rows)
	if err != nil {
		return nil, err
	}
	return &File{Name: exportName("data-balita", now), ContentType: contentTypeXLSX, Data: data}, nil
}

func (s *balitaService) Kartu(ctx context.Context, id int64) (*File, error) {
	b, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	qr, err := utils.GenerateQRCodePNG(utils.RecordURL(s.cfg.App.URL, "balita", b.ID), 256)
	if err != nil {
		return nil, err
	}

	jenisKelamin := "Laki-laki"
	if b.JenisKelamin == "P" {
		jenisKelamin = "Perempuan"
	}

	data, err := utils.GenerateKartuPDF(utils.KartuPDFData{
		Title:       "KARTU DATA BALITA",
		Posyandu:    s.cfg.App.Name,
		RecordLabel: "No. Registrasi",
		RecordID:    b.ID,
		Identity: []utils.KartuRow{
			{Label: "Nama", Value: b.Nama},
			{Label: "NIK", Value: b.NIK},
			{Label: "Jenis Kelamin", Value: jenisKelamin},
			{Label: "Tempat, Tgl Lahir", Value: b.TempatLahir + ", " + utils.FormatTanggal(b.TanggalLahir.Time)},
			{Label: "Umur", Value: utils.CalculateAge(b.TanggalLahir.Time, now).String()},
			{Label: "Nama Orang Tua", Value: b.NamaOrtu},
			{Label: "Alamat", Value: b.Alamat},
		},
		Health: []utils.KartuRow{
			{Label: "Berat / Tinggi Lahir", Value: fmt.Sprintf("%g kg / %g cm", b.BeratLahir, b.TinggiLahir)},
			{Label: "Berat Sekarang", Value: formatMeasure(b.BeratSekarang, "kg")},
			{Label: "Tinggi Sekarang", Value: formatMeasure(b.TinggiSekarang, "cm")},
			{Label: "Status Gizi", Value: derefString(b.StatusGizi)},
			{Label: "Status Imunisasi", Value: derefString(b.StatusImunisasi)},
			{Label: "Vitamin A", Value: derefString(b.StatusVitaminA)},
		},
		Notes:     derefString(b.Catatan),
		QRCodePNG: qr,
		PrintedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("kartu balita %d: %w", id, err)
	}
	return &File{Name: fmt.Sprintf("kartu-balita-%d.pdf", b.ID), ContentType: contentTypePDF, Data: data}, nil
}

func formatMeasure(v *float64, unit string) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%g %s", *v, unit)
}
