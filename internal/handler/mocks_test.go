package handler_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ahmadqo/posyandu-desa/internal/model"
	"github.com/ahmadqo/posyandu-desa/internal/service"
)

type stubVerifier map[string]*model.Identity

func (s stubVerifier) Verify(_ context.Context, token string) (*model.Identity, error) {
	if id, ok := s[token]; ok {
		return id, nil
	}
	return nil, service.ErrUnauthenticated
}

type mockAuthService struct{ mock.Mock }

func (m *mockAuthService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*model.LoginResponse)
	return res, args.Error(1)
}

func (m *mockAuthService) Verify(ctx context.Context, token string) (*model.Identity, error) {
	args := m.Called(ctx, token)
	id, _ := args.Get(0).(*model.Identity)
	return id, args.Error(1)
}

func (m *mockAuthService) Logout(ctx context.Context, identity *model.Identity) error {
	return m.Called(ctx, identity).Error(0)
}

func (m *mockAuthService) Me(ctx context.Context, identity *model.Identity) (*model.User, error) {
	args := m.Called(ctx, identity)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

type mockBalitaService struct{ mock.Mock }

func (m *mockBalitaService) List(ctx context.Context, f model.ListFilter) ([]*model.BalitaView, int64, error) {
	args := m.Called(ctx, f)
	items, _ := args.Get(0).([]*model.BalitaView)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *mockBalitaService) Get(ctx context.Context, id int64) (*model.BalitaView, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*model.BalitaView)
	return b, args.Error(1)
}

func (m *mockBalitaService) Create(ctx context.Context, req *model.BalitaRequest) (*model.BalitaView, error) {
	args := m.Called(ctx, req)
	b, _ := args.Get(0).(*model.BalitaView)
	return b, args.Error(1)
}

func (m *mockBalitaService) Update(ctx context.Context, id int64, req *model.BalitaRequest) (*model.BalitaView, error) {
	args := m.Called(ctx, id, req)
	b, _ := args.Get(0).(*model.BalitaView)
	return b, args.Error(1)
}

func (m *mockBalitaService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockBalitaService) Export(ctx context.Context, f model.ListFilter) (*service.File, error) {
	args := m.Called(ctx, f)
	file, _ := args.Get(0).(*service.File)
	return file, args.Error(1)
}

func (m *mockBalitaService) Kartu(ctx context.Context, id int64) (*service.File, error) {
	args := m.Called(ctx, id)
	file, _ := args.Get(0).(*service.File)
	return file, args.Error(1)
}

type mockPengaduanService struct{ mock.Mock }

func (m *mockPengaduanService) List(ctx context.Context, viewer *model.Identity, f model.ListFilter) ([]*model.Pengaduan, int64, error) {
	args := m.Called(ctx, viewer, f)
	items, _ := args.Get(0).([]*model.Pengaduan)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *mockPengaduanService) Get(ctx context.Context, id int64) (*model.Pengaduan, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*model.Pengaduan)
	return p, args.Error(1)
}

func (m *mockPengaduanService) Create(ctx context.Context, req *model.CreatePengaduanRequest) (*model.Pengaduan, error) {
	args := m.Called(ctx, req)
	p, _ := args.Get(0).(*model.Pengaduan)
	return p, args.Error(1)
}

func (m *mockPengaduanService) Update(ctx context.Context, id int64, req *model.UpdatePengaduanRequest) (*model.Pengaduan, error) {
	args := m.Called(ctx, id, req)
	p, _ := args.Get(0).(*model.Pengaduan)
	return p, args.Error(1)
}

func (m *mockPengaduanService) Respond(ctx context.Context, id int64, req *model.RespondPengaduanRequest) (*model.Pengaduan, error) {
	args := m.Called(ctx, id, req)
	p, _ := args.Get(0).(*model.Pengaduan)
	return p, args.Error(1)
}

func (m *mockPengaduanService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockUserService struct{ mock.Mock }

func (m *mockUserService) List(ctx context.Context, f model.ListFilter) ([]*model.User, int64, error) {
	args := m.Called(ctx, f)
	items, _ := args.Get(0).([]*model.User)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *mockUserService) Create(ctx context.Context, req *model.CreateUserRequest) (*model.User, error) {
	args := m.Called(ctx, req)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *mockUserService) Update(ctx context.Context, id int64, req *model.UpdateUserRequest) (*model.User, error) {
	args := m.Called(ctx, id, req)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *mockUserService) Delete(ctx context.Context, actor *model.Identity, id int64) error {
	return m.Called(ctx, actor, id).Error(0)
}

type mockJadwalService struct{ mock.Mock }

func (m *mockJadwalService) List(ctx context.Context, f model.ListFilter) ([]*model.Jadwal, int64, error) {
	args := m.Called(ctx, f)
	items, _ := args.Get(0).([]*model.Jadwal)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *mockJadwalService) Upcoming(ctx context.Context) ([]*model.Jadwal, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]*model.Jadwal)
	return items, args.Error(1)
}

func (m *mockJadwalService) Get(ctx context.Context, id int64) (*model.Jadwal, error) {
	args := m.Called(ctx, id)
	j, _ := args.Get(0).(*model.Jadwal)
	return j, args.Error(1)
}

func (m *mockJadwalService) Create(ctx context.Context, req *model.JadwalRequest) (*model.Jadwal, error) {
	args := m.Called(ctx, req)
	j, _ := args.Get(0).(*model.Jadwal)
	return j, args.Error(1)
}

func (m *mockJadwalService) Update(ctx context.Context, id int64, req *model.JadwalRequest) (*model.Jadwal, error) {
	args := m.Called(ctx, id, req)
	j, _ := args.Get(0).(*model.Jadwal)
	return j, args.Error(1)
}

func (m *mockJadwalService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
