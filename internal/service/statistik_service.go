package service

import (
	"context"
	"fmt"

	"github.com/ahmadqo/posyandu-desa/internal/model"
	"github.com/ahmadqo/posyandu-desa/internal/repository"
	"github.com/ahmadqo/posyandu-desa/internal/validation"
)

type StatistikService interface {
	// Get menghitung ringkasan dashboard. Jumlah user per role hanya untuk admin.
	Get(ctx context.Context, viewer *model.Identity) (*model.Statistik, error)
}

type statistikService struct {
	repo      repository.StatistikRepository
	validator *validation.Validator
}

func NewStatistikService(repo repository.StatistikRepository, v *validation.Validator) StatistikService {
	return &statistikService{repo: repo, validator: v}
}

func (s *statistikService) Get(ctx context.Context, viewer *model.Identity) (*model.Statistik, error) {
	var (
		out = &model.Statistik{}
		err error
	)

	if out.BalitaPerGizi, err = s.repo.CountBy(ctx, "balita", "status_gizi"); err != nil {
		return nil, fmt.Errorf("statistik balita: %w", err)
	}
	if out.IbuHamilPerResiko, err = s.repo.CountBy(ctx, "ibu_hamil", "resiko_kehamilan"); err != nil {
		return nil, fmt.Errorf("statistik ibu hamil: %w", err)
	}
	if out.PengaduanPerStatus, err = s.repo.CountBy(ctx, "pengaduan", "status"); err != nil {
		return nil, fmt.Errorf("statistik pengaduan: %w", err)
	}
	if out.JadwalMendatang, err = s.repo.CountUpcomingJadwal(ctx, s.validator.Today()); err != nil {
		return nil, fmt.Errorf("statistik jadwal: %w", err)
	}

	out.TotalBalita = sum(out.BalitaPerGizi)
	out.TotalIbuHamil = sum(out.IbuHamilPerResiko)
	out.TotalPengaduan = sum(out.PengaduanPerStatus)

	if viewer != nil && viewer.Role == model.RoleAdmin {
		if out.UserPerRole, err = s.repo.CountBy(ctx, "users", "role"); err != nil {
			return nil, fmt.Errorf("statistik user: %w", err)
		}
	}
	return out, nil
}

func sum(m map[string]int64) int64 {
	var total int64
	for _, v := range m {
		total += v
	}
	return total
}
