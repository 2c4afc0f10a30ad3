package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/ahmadqo/posyandu-desa/internal/config"
	"github.com/ahmadqo/posyandu-desa/internal/model"
	"github.com/ahmadqo/posyandu-desa/internal/repository"
	"github.com/ahmadqo/posyandu-desa/internal/utils"
	"github.com/ahmadqo/posyandu-desa/internal/validation"
)

type AuthService interface {
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	// Verify mengubah bearer token menjadi Identity. Token harus bertanda
	// tangan valid, belum kedaluwarsa, masih terdaftar di registry sesi,
	// dan usernya masih ada.
	Verify(ctx context.Context, token string) (*model.Identity, error)
	Logout(ctx context.Context, identity *model.Identity) error
	Me(ctx context.Context, identity *model.Identity) (*model.User, error)
}

type authService struct {
	userRepo  repository.UserRepository
	sessions  repository.SessionRepository
	validator *validation.Validator
	cfg       *config.Config
	log       *zap.Logger
}

func NewAuthService(
	userRepo repository.UserRepository,
	sessions repository.SessionRepository,
	v *validation.Validator,
	cfg *config.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		userRepo:  userRepo,
		sessions:  sessions,
		validator: v,
		cfg:       cfg,
		log:       log,
	}
}

var (
	dummyHashOnce sync.Once
	dummyHash     []byte
)

// compareDummy menyamakan waktu respons login untuk email yang tidak terdaftar.
func compareDummy(password string) {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("posyandu-desa"), bcrypt.DefaultCost)
	})
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}

func (s *authService) tokenTTL() time.Duration {
	hours := s.cfg.JWT.ExpireHours
	if hours <= 0 {
		hours = 24
	}
	return time.Duration(hours) * time.Hour
}

func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		compareDummy(req.Password)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	ttl := s.tokenTTL()
	issued, err := utils.GenerateToken(user.ID, string(user.Role), s.cfg.JWT.Secret, ttl)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}
	if err := s.sessions.Save(ctx, issued.ID, user.ID, ttl); err != nil {
		return nil, fmt.Errorf("simpan sesi: %w", err)
	}

	s.log.Info("login berhasil", zap.Int64("user_id", user.ID), zap.String("role", string(user.Role)))
	return &model.LoginResponse{User: user, Token: issued.Token}, nil
}

func (s *authService) Verify(ctx context.Context, token string) (*model.Identity, error) {
	claims, err := utils.ValidateToken(token, s.cfg.JWT.Secret)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	userID, ok, err := s.sessions.Find(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("cek sesi: %w", err)
	}
	if !ok || userID != claims.UserID {
		return nil, ErrUnauthenticated
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		// user sudah dihapus; bersihkan sisa sesinya
		if err := s.sessions.DeleteAllForUser(ctx, userID); err != nil {
			s.log.Warn("gagal menghapus sesi user terhapus", zap.Int64("user_id", userID), zap.Error(err))
		}
		return nil, ErrUnauthenticated
	}

	return user.Identity(claims.ID), nil
}

func (s *authService) Logout(ctx context.Context, identity *model.Identity) error {
	if identity == nil {
		return ErrUnauthenticated
	}
	if err := s.sessions.Delete(ctx, identity.TokenID); err != nil {
		return fmt.Errorf("hapus sesi: %w", err)
	}
	return nil
}

func (s *authService) Me(ctx context.Context, identity *model.Identity) (*model.User, error) {
	if identity == nil {
		return nil, ErrUnauthenticated
	}
	user, err := s.userRepo.FindByID(ctx, identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, ErrUnauthenticated
	}
	return user, nil
}

