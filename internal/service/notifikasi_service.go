package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ahmadqo/posyandu-desa/internal/model"
	"github.com/ahmadqo/posyandu-desa/internal/repository"
)

var (
	ErrNotifikasiNotFound  = errors.New("notifikasi tidak ditemukan")
	ErrNotifikasiNotFailed = errors.New("hanya notifikasi yang gagal yang dapat dikirim ulang")
)

// NotifikasiService memberi admin akses ke outbox email.
type NotifikasiService interface {
	List(ctx context.Context, filter model.ListFilter) ([]*model.Notification, int64, error)
	Retry(ctx context.Context, id int64) (*model.Notification, error)
}

type notifikasiService struct {
	repo   repository.NotificationRepository
	kicker Kicker
}

func NewNotifikasiService(repo repository.NotificationRepository, kicker Kicker) NotifikasiService {
	if kicker == nil {
		kicker = noopKicker{}
	}
	return &notifikasiService{repo: repo, kicker: kicker}
}

func (s *notifikasiService) List(ctx context.Context, filter model.ListFilter) ([]*model.Notification, int64, error) {
	items, total, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list notifikasi: %w", err)
	}
	return items, total, nil
}

func (s *notifikasiService) Retry(ctx context.Context, id int64) (*model.Notification, error) {
	n, err := s.repo.Retry(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("retry notifikasi %d: %w", id, err)
	}
	if n == nil {
		existing, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("find notifikasi %d: %w", id, err)
		}
		if existing == nil {
			return nil, ErrNotifikasiNotFound
		}
		return nil, ErrNotifikasiNotFailed
	}
	s.kicker.Kick()
	return n, nil
}
