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

var ErrIbuHamilNotFound = errors.New("data ibu hamil tidak ditemukan")

type IbuHamilService interface {
	List(ctx context.Context, filter model.ListFilter) ([]*model.IbuHamilView, int64, error)
	Get(ctx context.Context, id int64) (*model.IbuHamilView, error)
	Create(ctx context.Context, req *model.IbuHamilRequest) (*model.IbuHamilView, error)
	Update(ctx context.Context, id int64, req *model.IbuHamilRequest) (*model.IbuHamilView, error)
	Delete(ctx context.Context, id int64) error
	Export(ctx context.Context, filter model.ListFilter) (*File, error)
	Kartu(ctx context.Context, id int64) (*File, error)
}

type ibuHamilService struct {
	repo      repository.IbuHamilRepository
	validator *validation.Validator
	cfg       *config.Config
	now       func() time.Time
}

func NewIbuHamilService(repo repository.IbuHamilRepository, v *validation.Validator, cfg *config.Config) IbuHamilService {
	return &ibuHamilService{repo: repo, validator: v, cfg: cfg, now: time.Now}
}

func (s *ibuHamilService) view(ih *model.IbuHamil) *model.IbuHamilView {
	ga := utils.CalculateGestationalAge(ih.HPHT.Time, s.now())
	return &model.IbuHamilView{
		IbuHamil:      ih,
		UsiaKehamilan: ga.String(),
		TrimesterHPHT: utils.TrimesterFromWeeks(ga.Weeks),
	}
}

func (s *ibuHamilService) List(ctx context.Context, filter model.ListFilter) ([]*model.IbuHamilView, int64, error) {
	items, total, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list ibu hamil: %w", err)
	}
	views := make([]*model.IbuHamilView, len(items))
	for i, ih := range items {
		views[i] = s.view(ih)
	}
	return views, total, nil
}

func (s *ibuHamilService) find(ctx context.Context, id int64) (*model.IbuHamil, error) {
	ih, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find ibu hamil %d: %w", id, err)
	}
	if ih == nil {
		return nil, ErrIbuHamilNotFound
	}
	return ih, nil
}

func (s *ibuHamilService) Get(ctx context.Context, id int64) (*model.IbuHamilView, error) {
	ih, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.view(ih), nil
}

func (s *ibuHamilService) check(ctx context.Context, req *model.IbuHamilRequest, excludeID int64) error {
	errs, err := validate(s.validator, req)
	if err != nil {
		return err
	}
	if !errs.Has("nik") {
		exists, err := s.repo.ExistsByNIK(ctx, req.NIK, excludeID)
		if err != nil {
			return fmt.Errorf("cek nik ibu hamil: %w", err)
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

func (s *ibuHamilService) Create(ctx context.Context, req *model.IbuHamilRequest) (*model.IbuHamilView, error) {
	if err := s.check(ctx, req, 0); err != nil {
		return nil, err
	}

	ih := &model.IbuHamil{}
	req.ToIbuHamil(ih)
	if err := s.repo.Create(ctx, ih); err != nil {
		if repository.IsUniqueViolation(err, repository.IbuHamilNIKConstraint) {
			return nil, uniqueError("nik", "NIK")
		}
		return nil, fmt.Errorf("create ibu hamil: %w", err)
	}
	return s.view(ih), nil
}

func (s *ibuHamilService) Update(ctx context.Context, id int64, req *model.IbuHamilRequest) (*model.IbuHamilView, error) {
	ih, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.check(ctx, req, id); err != nil {
		return nil, err
	}

	req.ToIbuHamil(ih)
	if err := s.repo.Update(ctx, ih); err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrIbuHamilNotFound
		case repository.IsUniqueViolation(err, repository.IbuHamilNIKConstraint):
			return nil, uniqueError("nik", "NIK")
		}
		return nil, fmt.Errorf("update ibu hamil %d: %w", id, err)
	}
	return s.view(ih), nil
}

func (s *ibuHamilService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return ErrIbuHamilNotFound
		}
		return fmt.Errorf("delete ibu hamil %d: %w", id, err)
	}
	return nil
}

var ibuHamilExportColumns = []utils.ExcelColumn{
	{Header: "No", Width: 6},
	{Header: "Nama", Width: 25},
	{Header: "NIK", Width: 20},
	{Header: "Tempat Lahir", Width: 18},
	{Header: "Tanggal Lahir", Width: 14},
	{Header: "Alamat", Width: 35},
	{Header: "No. HP", Width: 16},
	{Header: "Nama Suami", Width: 25},
	{Header: "NIK Suami", Width: 20},
	{Header: "Pekerjaan Suami", Width: 18},
	{Header: "HPHT", Width: 14},
	{Header: "Usia Kehamilan", Width: 18},
	{Header: "Tanggal Periksa Pertama", Width: 20},
	{Header: "Status Kehamilan", Width: 16},
	{Header: "Resiko Kehamilan", Width: 16},
	{Header: "Berat Badan (kg)", Width: 16},
	{Header: "Tinggi Badan (cm)", Width: 16},
	{Header: "LILA (cm)", Width: 12},
	{Header: "Tekanan Darah", Width: 14},
	{Header: "Hemoglobin (g/dL)", Width: 16},
	{Header: "Golongan Darah", Width: 14},
	{Header: "Catatan", Width: 30},
}

func (s *ibuHamilService) Export(ctx context.Context, filter model.ListFilter) (*File, error) {
	items, err := s.repo.FindAllForExport(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("export ibu hamil: %w", err)
	}

	now := s.now()
	rows := make([][]interface{}, len(items))
	for i, ih := range items {
		rows[i] = []interface{}{
			i + 1,
			ih.Nama,
			ih.NIK,
			ih.TempatLahir,
			ih.TanggalLahir.String(),
			ih.Alamat,
			ih.NoHP,
			ih.NamaSuami,
			ih.NIKSuami,
			ih.PekerjaanSuami,
			ih.HPHT.String(),
			utils.CalculateGestationalAge(ih.HPHT.Time, now).String(),
			ih.TanggalPeriksaPertama.String(),
			ih.StatusKehamilan,
			ih.ResikoKehamilan,
			ih.BeratBadan,
			ih.TinggiBadan,
			ih.LILA,
			ih.TekananDarah,
			ih.Hemoglobin,
			ih.GolonganDarah,
			stringOrNil(ih.Catatan),
		}
	}

	data, err := utils.GenerateExcel("Data Ibu Hamil", ibuHamilExportColumns, rows)
	if err != nil {
		return nil, err
	}
	return &File{Name: exportName("data-ibu-hamil", now), ContentType: contentTypeXLSX, Data: data}, nil
}

func (s *ibuHamilService) Kartu(ctx context.Context, id int64) (*File, error) {
	ih, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	qr, err := utils.GenerateQRCodePNG(utils.RecordURL(s.cfg.App.URL, "ibu-hamil", ih.ID), 256)
	if err != nil {
		return nil, err
	}
	ga := utils.CalculateGestationalAge(ih.HPHT.Time, now)

	data, err := utils.GenerateKartuPDF(utils.KartuPDFData{
		Title:       "KARTU DATA IBU HAMIL",
		Posyandu:    s.cfg.App.Name,
		RecordLabel: "No. Registrasi",
		RecordID:    ih.ID,
		Identity: []utils.KartuRow{
			{Label: "Nama", Value: ih.Nama},
			{Label: "NIK", Value: ih.NIK},
			{Label: "Tempat, Tgl Lahir", Value: ih.TempatLahir + ", " + utils.FormatTanggal(ih.TanggalLahir.Time)},
			{Label: "No. HP", Value: ih.NoHP},
			{Label: "Nama Suami", Value: ih.NamaSuami},
			{Label: "Pekerjaan Suami", Value: ih.PekerjaanSuami},
			{Label: "Alamat", Value: ih.Alamat},
		},
		Health: []utils.KartuRow{
			{Label: "HPHT", Value: utils.FormatTanggal(ih.HPHT.Time)},
			{Label: "Usia Kehamilan", Value: fmt.Sprintf("%s (trimester %d)", ga, utils.TrimesterFromWeeks(ga.Weeks))},
			{Label: "Periksa Pertama", Value: utils.FormatTanggal(ih.TanggalPeriksaPertama.Time)},
			{Label: "Resiko", Value: ih.ResikoKehamilan},
			{Label: "Berat / Tinggi", Value: fmt.Sprintf("%g kg / %g cm", ih.BeratBadan, ih.TinggiBadan)},
			{Label: "LILA", Value: fmt.Sprintf("%g cm", ih.LILA)},
			{Label: "Tekanan Darah", Value: ih.TekananDarah + " mmHg"},
			{Label: "Hemoglobin", Value: fmt.Sprintf("%g g/dL", ih.Hemoglobin)},
			{Label: "Golongan Darah", Value: ih.GolonganDarah},
		},
		Notes:     derefString(ih.Catatan),
		QRCodePNG: qr,
		PrintedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("kartu ibu hamil %d: %w", id, err)
	}
	return &File{Name: fmt.Sprintf("kartu-ibu-hamil-%d.pdf", ih.ID), ContentType: contentTypePDF, Data: data}, nil
}
