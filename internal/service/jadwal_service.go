package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ahmadqo/posyandu-desa/internal/model"
	"github.com/ahmadqo/posyandu-desa/internal/repository"
	"github.com/ahmadqo/posyandu-desa/internal/validation"
)

var ErrJadwalNotFound = errors.New("jadwal tidak ditemukan")

type JadwalService interface {
	List(ctx context.Context, filter model.ListFilter) ([]*model.Jadwal, int64, error)
	// Upcoming mengembalikan semua jadwal mulai hari ini, urut tanggal lalu waktu mulai.
	Upcoming(ctx context.Context) ([]*model.Jadwal, error)
	Get(ctx context.Context, id int64) (*model.Jadwal, error)
	Create(ctx context.Context, req *model.JadwalRequest) (*model.Jadwal, error)
	Update(ctx context.Context, id int64, req *model.JadwalRequest) (*model.Jadwal, error)
	Delete(ctx context.Context, id int64) error
}

type jadwalService struct {
	repo      repository.JadwalRepository
	validator *validation.Validator
}

func NewJadwalService(repo repository.JadwalRepository, v *validation.Validator) JadwalService {
	return &jadwalService{repo: repo, validator: v}
}

func (s *jadwalService) List(ctx context.Context, filter model.ListFilter) ([]*model.Jadwal, int64, error) {
	items, total, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list jadwal: %w", err)
	}
	return items, total, nil
}

func (s *jadwalService) Upcoming(ctx context.Context) ([]*model.Jadwal, error) {
	items, err := s.repo.FindUpcoming(ctx, s.validator.Today())
	if err != nil {
		return nil, fmt.Errorf("jadwal mendatang: %w", err)
	}
	return items, nil
}

func (s *jadwalService) Get(ctx context.Context, id int64) (*model.Jadwal, error) {
	j, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find jadwal %d: %w", id, err)
	}
	if j == nil {
		return nil, ErrJadwalNotFound
	}
	return j, nil
}

func (s *jadwalService) Create(ctx context.Context, req *model.JadwalRequest) (*model.Jadwal, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	j := &model.Jadwal{}
	req.ToJadwal(j)
	if err := s.repo.Create(ctx, j); err != nil {
		return nil, fmt.Errorf("create jadwal: %w", err)
	}
	return j, nil
}

func (s *jadwalService) Update(ctx context.Context, id int64, req *model.JadwalRequest) (*model.Jadwal, error) {
	j, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	req.ToJadwal(j)
	if err := s.repo.Update(ctx, j); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrJadwalNotFound
		}
		return nil, fmt.Errorf("update jadwal %d: %w", id, err)
	}
	return j, nil
}

func (s *jadwalService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return ErrJadwalNotFound
		}
		return fmt.Errorf("delete jadwal %d: %w", id, err)
	}
	return nil
}
