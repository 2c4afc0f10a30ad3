package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/ahmadqo/posyandu-desa/internal/model"
	"github.com/ahmadqo/posyandu-desa/internal/repository"
	"github.com/ahmadqo/posyandu-desa/internal/validation"
)

var (
	ErrUserNotFound     = errors.New("user tidak ditemukan")
	ErrCannotDeleteSelf = errors.New("tidak dapat menghapus akun sendiri")
)

type UserService interface {
	List(ctx context.Context, filter model.ListFilter) ([]*model.User, int64, error)
	Create(ctx context.Context, req *model.CreateUserRequest) (*model.User, error)
	// Update mencabut semua sesi user jika password atau role berubah.
	Update(ctx context.Context, id int64, req *model.UpdateUserRequest) (*model.User, error)
	Delete(ctx context.Context, actor *model.Identity, id int64) error
}

type userService struct {
	repo      repository.UserRepository
	sessions  repository.SessionRepository
	validator *validation.Validator
	log       *zap.Logger
}

func NewUserService(repo repository.UserRepository, sessions repository.SessionRepository, v *validation.Validator, log *zap.Logger) UserService {
	return &userService{repo: repo, sessions: sessions, validator: v, log: log}
}

func (s *userService) List(ctx context.Context, filter model.ListFilter) ([]*model.User, int64, error) {
	items, total, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list user: %w", err)
	}
	return items, total, nil
}

func (s *userService) checkEmail(ctx context.Context, errs validation.Errors, email string, excludeID int64) error {
	if errs.Has("email") {
		return nil
	}
	exists, err := s.repo.ExistsByEmail(ctx, email, excludeID)
	if err != nil {
		return fmt.Errorf("cek email: %w", err)
	}
	if exists {
		errs.Add("email", validation.Unique("Email"))
	}
	return nil
}

func (s *userService) Create(ctx context.Context, req *model.CreateUserRequest) (*model.User, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	errs, err := validate(s.validator, req)
	if err != nil {
		return nil, err
	}
	if err := s.checkEmail(ctx, errs, req.Email, 0); err != nil {
		return nil, err
	}
	if len(errs) > 0 {
		return nil, errs
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Role:     model.Role(req.Role),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if repository.IsUniqueViolation(err, repository.UserEmailConstraint) {
			return nil, uniqueError("email", "Email")
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *userService) Update(ctx context.Context, id int64, req *model.UpdateUserRequest) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find user %d: %w", id, err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	errs, err := validate(s.validator, req)
	if err != nil {
		return nil, err
	}
	if err := s.checkEmail(ctx, errs, req.Email, id); err != nil {
		return nil, err
	}
	if len(errs) > 0 {
		return nil, errs
	}

	revoke := req.Password != "" || model.Role(req.Role) != user.Role

	user.Name = req.Name
	user.Email = req.Email
	user.Role = model.Role(req.Role)
	user.Password = ""
	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hashed)
	}

	if err := s.repo.Update(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrUserNotFound
		case repository.IsUniqueViolation(err, repository.UserEmailConstraint):
			return nil, uniqueError("email", "Email")
		}
		return nil, fmt.Errorf("update user %d: %w", id, err)
	}

	if revoke {
		s.revokeSessions(ctx, id)
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, actor *model.Identity, id int64) error {
	if actor != nil && actor.UserID == id {
		return ErrCannotDeleteSelf
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	s.revokeSessions(ctx, id)
	return nil
}

// revokeSessions tidak menggagalkan operasi; Verify tetap menolak token
// milik user yang sudah dihapus.
func (s *userService) revokeSessions(ctx context.Context, userID int64) {
	if err := s.sessions.DeleteAllForUser(ctx, userID); err != nil {
		s.log.Error("gagal mencabut sesi user", zap.Int64("user_id", userID), zap.Error(err))
	}
}
