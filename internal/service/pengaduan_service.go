package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/ahmadqo/posyandu-desa/internal/model"
	"github.com/ahmadqo/posyandu-desa/internal/notifier"
	"github.com/ahmadqo/posyandu-desa/internal/repository"
	"github.com/ahmadqo/posyandu-desa/internal/validation"
)

var ErrPengaduanNotFound = errors.New("pengaduan tidak ditemukan")

type PengaduanService interface {
	// List menyembunyikan nik, email dan no_hp jika viewer nil (anonim).
	List(ctx context.Context, viewer *model.Identity, filter model.ListFilter) ([]*model.Pengaduan, int64, error)
	Get(ctx context.Context, id int64) (*model.Pengaduan, error)
	Create(ctx context.Context, req *model.CreatePengaduanRequest) (*model.Pengaduan, error)
	Update(ctx context.Context, id int64, req *model.UpdatePengaduanRequest) (*model.Pengaduan, error)
	// Respond menyimpan tanggapan, menandai selesai dan mengantrikan email ke
	// pelapor. Kegagalan pengiriman email tidak memengaruhi hasil.
	Respond(ctx context.Context, id int64, req *model.RespondPengaduanRequest) (*model.Pengaduan, error)
	Delete(ctx context.Context, id int64) error
}

type pengaduanService struct {
	repo      repository.PengaduanRepository
	validator *validation.Validator
	composer  *notifier.Composer
	kicker    Kicker
	log       *zap.Logger
}

func NewPengaduanService(
	repo repository.PengaduanRepository,
	v *validation.Validator,
	composer *notifier.Composer,
	kicker Kicker,
	log *zap.Logger,
) PengaduanService {
	if kicker == nil {
		kicker = noopKicker{}
	}
	return &pengaduanService{repo: repo, validator: v, composer: composer, kicker: kicker, log: log}
}

func (s *pengaduanService) List(ctx context.Context, viewer *model.Identity, filter model.ListFilter) ([]*model.Pengaduan, int64, error) {
	items, total, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list pengaduan: %w", err)
	}
	if viewer == nil {
		for i, p := range items {
			items[i] = p.Redacted()
		}
	}
	return items, total, nil
}

func (s *pengaduanService) Get(ctx context.Context, id int64) (*model.Pengaduan, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find pengaduan %d: %w", id, err)
	}
	if p == nil {
		return nil, ErrPengaduanNotFound
	}
	return p, nil
}

func (s *pengaduanService) Create(ctx context.Context, req *model.CreatePengaduanRequest) (*model.Pengaduan, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	p := &model.Pengaduan{
		Nama:     req.Nama,
		NIK:      req.NIK,
		Email:    req.Email,
		NoHP:     req.NoHP,
		Kategori: req.Kategori,
		Subjek:   req.Subjek,
		Pesan:    req.Pesan,
		Status:   model.StatusBaru,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create pengaduan: %w", err)
	}
	return p, nil
}

func (s *pengaduanService) Update(ctx context.Context, id int64, req *model.UpdatePengaduanRequest) (*model.Pengaduan, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	var status *model.StatusPengaduan
	if req.Status != nil {
		st := model.StatusPengaduan(*req.Status)
		status = &st
	}

	p, err := s.repo.UpdateStatus(ctx, id, status, req.Tanggapan)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrPengaduanNotFound
		}
		return nil, fmt.Errorf("update pengaduan %d: %w", id, err)
	}
	return p, nil
}

func (s *pengaduanService) Respond(ctx context.Context, id int64, req *model.RespondPengaduanRequest) (*model.Pengaduan, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	p, n, err := s.repo.Respond(ctx, id, req.Response, s.composer.PengaduanResponded)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrPengaduanNotFound
		}
		return nil, fmt.Errorf("respond pengaduan %d: %w", id, err)
	}

	s.log.Info("notifikasi tanggapan diantrikan",
		zap.Int64("pengaduan_id", p.ID),
		zap.Int64("notification_id", n.ID),
	)
	s.kicker.Kick()
	return p, nil
}

func (s *pengaduanService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return ErrPengaduanNotFound
		}
		return fmt.Errorf("delete pengaduan %d: %w", id, err)
	}
	return nil
}
