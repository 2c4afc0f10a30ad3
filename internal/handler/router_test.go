package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ahmadqo/posyandu-desa/internal/handler"
	"github.com/ahmadqo/posyandu-desa/internal/model"
	"github.com/ahmadqo/posyandu-desa/internal/service"
	"github.com/ahmadqo/posyandu-desa/internal/utils"
	"github.com/ahmadqo/posyandu-desa/internal/validation"
)

var (
	admin = &model.Identity{UserID: 1, Name: "Admin", Email: "admin@posyandu.desa.id", Role: model.RoleAdmin, TokenID: "jti-admin"}
	kader = &model.Identity{UserID: 2, Name: "Kader", Email: "kader@posyandu.desa.id", Role: model.RoleKader, TokenID: "jti-kader"}
)

type testServer struct {
	handler   http.Handler
	auth      *mockAuthService
	balita    *mockBalitaService
	jadwal    *mockJadwalService
	pengaduan *mockPengaduanService
	user      *mockUserService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	log := zap.NewNop()
	ts := &testServer{
		auth:      &mockAuthService{},
		balita:    &mockBalitaService{},
		jadwal:    &mockJadwalService{},
		pengaduan: &mockPengaduanService{},
		user:      &mockUserService{},
	}
	verifier := stubVerifier{"admin-token": admin, "kader-token": kader}

	ts.handler = handler.NewRouter(handler.Handlers{
		Auth:       handler.NewAuthHandler(ts.auth, log),
		Balita:     handler.NewBalitaHandler(ts.balita, log),
		IbuHamil:   handler.NewIbuHamilHandler(nil, log),
		Jadwal:     handler.NewJadwalHandler(ts.jadwal, log),
		Pengaduan:  handler.NewPengaduanHandler(ts.pengaduan, log),
		User:       handler.NewUserHandler(ts.user, log),
		Notifikasi: handler.NewNotifikasiHandler(nil, log),
		Statistik:  handler.NewStatistikHandler(nil, log),
	}, verifier, []string{"http://localhost:5173"}, log).Setup()

	t.Cleanup(func() {
		ts.auth.AssertExpectations(t)
		ts.balita.AssertExpectations(t)
		ts.jadwal.AssertExpectations(t)
		ts.pengaduan.AssertExpectations(t)
		ts.user.AssertExpectations(t)
	})
	return ts
}

func (ts *testServer) do(method, path, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]interface{}{"status": "ok"}, decodeBody(t, rec)["data"])
}

func TestUnknownRoute_ReturnsJSON404(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/api/tidak-ada", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Halaman tidak ditemukan", decodeBody(t, rec)["message"])
}

func TestBalita_AnonymousGets401(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/api/balita", "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Silakan login terlebih dahulu", decodeBody(t, rec)["message"])
}

func TestBalita_InvalidTokenTreatedAsAnonymous(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/api/balita", "kedaluwarsa", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUsers_KaderGets403(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/api/users", "kader-token", "")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, service.ErrForbidden.Error(), decodeBody(t, rec)["message"])
	ts.user.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestUsers_AdminListsUsers(t *testing.T) {
	ts := newTestServer(t)
	users := []*model.User{{ID: 1, Name: "Admin", Email: "admin@posyandu.desa.id", Role: model.RoleAdmin, Password: "hash"}}
	ts.user.On("List", mock.Anything, model.ListFilter{Status: "admin", Page: 1}).Return(users, int64(1), nil)

	rec := ts.do(http.MethodGet, "/api/users?role=admin", "admin-token", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "hash")
	body := decodeBody(t, rec)
	assert.EqualValues(t, 1, body["total"])
	assert.EqualValues(t, 1, body["from"])
	assert.EqualValues(t, 1, body["to"])
}

func TestUsers_DeleteSelfGets403(t *testing.T) {
	ts := newTestServer(t)
	ts.user.On("Delete", mock.Anything, admin, int64(1)).Return(service.ErrCannotDeleteSelf)

	rec := ts.do(http.MethodDelete, "/api/users/1", "admin-token", "")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, service.ErrCannotDeleteSelf.Error(), decodeBody(t, rec)["message"])
}

func TestBalita_PagePastEndReturnsEmptyData(t *testing.T) {
	ts := newTestServer(t)
	ts.balita.On("List", mock.Anything, model.ListFilter{Page: 9}).Return([]*model.BalitaView{}, int64(12), nil)

	rec := ts.do(http.MethodGet, "/api/balita?page=9", "kader-token", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, []interface{}{}, body["data"])
	assert.EqualValues(t, 9, body["current_page"])
	assert.EqualValues(t, 2, body["last_page"])
	assert.EqualValues(t, 10, body["per_page"])
	assert.Nil(t, body["from"])
	assert.Nil(t, body["to"])
}

func TestBalita_ValidationErrorIsBareMap(t *testing.T) {
	ts := newTestServer(t)
	verrs := validation.Errors{"nik": {"NIK sudah terdaftar."}}
	ts.balita.On("Create", mock.Anything, mock.AnythingOfType("*model.BalitaRequest")).Return(nil, verrs)

	rec := ts.do(http.MethodPost, "/api/balita", "kader-token", `{"nama":"Budi","nik":"3201010101010001"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"nik":["NIK sudah terdaftar."]}`, rec.Body.String())
}

func TestBalita_EmptyBodyReachesValidation(t *testing.T) {
	ts := newTestServer(t)
	ts.balita.On("Create", mock.Anything, &model.BalitaRequest{}).
		Return(nil, validation.Errors{"nama": {"Nama wajib diisi."}})

	rec := ts.do(http.MethodPost, "/api/balita", "kader-token", "")

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestBalita_MalformedJSONGets400(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPost, "/api/balita", "kader-token", `{"nama":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Format request tidak valid", decodeBody(t, rec)["message"])
}

func TestBalita_NonNumericIDGets404(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/api/balita/abc", "kader-token", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	ts.balita.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestBalita_NotFound(t *testing.T) {
	ts := newTestServer(t)
	ts.balita.On("Get", mock.Anything, int64(99)).Return(nil, service.ErrBalitaNotFound)

	rec := ts.do(http.MethodGet, "/api/balita/99", "kader-token", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, service.ErrBalitaNotFound.Error(), decodeBody(t, rec)["message"])
}

func TestBalita_CreateReturns201(t *testing.T) {
	ts := newTestServer(t)
	view := &model.BalitaView{Balita: &model.Balita{ID: 7}}
	ts.balita.On("Create", mock.Anything, mock.AnythingOfType("*model.BalitaRequest")).Return(view, nil)

	rec := ts.do(http.MethodPost, "/api/balita", "admin-token", `{"nama":"Budi"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Data balita berhasil dibuat", body["message"])
	assert.EqualValues(t, 7, body["data"].(map[string]interface{})["id"])
}

func TestBalita_KartuServesPDF(t *testing.T) {
	ts := newTestServer(t)
	ts.balita.On("Kartu", mock.Anything, int64(3)).Return(&service.File{
		Name:        "kartu-balita-3.pdf",
		ContentType: "application/pdf",
		Data:        []byte("%PDF-1.3"),
	}, nil)

	rec := ts.do(http.MethodGet, "/api/balita/3/kartu", "kader-token", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, `inline; filename="kartu-balita-3.pdf"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF-1.3", rec.Body.String())
}

func TestBalita_UnexpectedErrorGets500(t *testing.T) {
	ts := newTestServer(t)
	ts.balita.On("Delete", mock.Anything, int64(4)).Return(assert.AnError)

	rec := ts.do(http.MethodDelete, "/api/balita/4", "kader-token", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Terjadi kesalahan pada server", decodeBody(t, rec)["message"])
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}

func TestPengaduan_AnonymousListPassesNilViewer(t *testing.T) {
	ts := newTestServer(t)
	redacted := (&model.Pengaduan{ID: 1, Nama: "Siti", NIK: "3201010101010001", Email: "siti@example.com", NoHP: "0812"}).Redacted()
	ts.pengaduan.On("List", mock.Anything, (*model.Identity)(nil), model.ListFilter{Status: "baru", Page: 1}).
		Return([]*model.Pengaduan{redacted}, int64(1), nil)

	rec := ts.do(http.MethodGet, "/api/pengaduan?status=baru", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	item := decodeBody(t, rec)["data"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "Siti", item["nama"])
	assert.NotContains(t, item, "nik")
	assert.NotContains(t, item, "email")
	assert.NotContains(t, item, "no_hp")
}

func TestPengaduan_StaffListPassesIdentity(t *testing.T) {
	ts := newTestServer(t)
	ts.pengaduan.On("List", mock.Anything, kader, model.ListFilter{Page: 1}).Return([]*model.Pengaduan{}, int64(0), nil)

	rec := ts.do(http.MethodGet, "/api/pengaduan", "kader-token", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPengaduan_AnonymousCanSubmit(t *testing.T) {
	ts := newTestServer(t)
	ts.pengaduan.On("Create", mock.Anything, mock.AnythingOfType("*model.CreatePengaduanRequest")).
		Return(&model.Pengaduan{ID: 5, Status: model.StatusBaru}, nil)

	rec := ts.do(http.MethodPost, "/api/pengaduan", "", `{"nama":"Siti"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestPengaduan_OversizedBodyGets413(t *testing.T) {
	ts := newTestServer(t)
	big := `{"nama":"` + strings.Repeat("x", utils.MaxBodyBytes) + `"}`

	rec := ts.do(http.MethodPost, "/api/pengaduan", "", big)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "Ukuran request terlalu besar", decodeBody(t, rec)["message"])
	ts.pengaduan.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPengaduan_UpdateWithoutStatus(t *testing.T) {
	ts := newTestServer(t)
	tanggapan := "Sedang dicek"
	ts.pengaduan.On("Update", mock.Anything, int64(5), &model.UpdatePengaduanRequest{Tanggapan: &tanggapan}).
		Return(&model.Pengaduan{ID: 5, Status: model.StatusBaru, Tanggapan: &tanggapan}, nil)

	rec := ts.do(http.MethodPut, "/api/pengaduan/5", "kader-token", `{"tanggapan":"Sedang dicek"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "baru", decodeBody(t, rec)["data"].(map[string]interface{})["status"])
}

func TestPengaduan_AnonymousCannotRespond(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPost, "/api/pengaduan/5/respond", "", `{"tanggapan":"ok"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMe_WrapsUserInData(t *testing.T) {
	ts := newTestServer(t)
	ts.auth.On("Me", mock.Anything, kader).Return(&model.User{ID: 2, Name: "Kader", Email: "kader@posyandu.desa.id", Role: model.RoleKader, Password: "hash"}, nil)

	rec := ts.do(http.MethodGet, "/api/user", "kader-token", "")

	require.Equal(t, http.StatusOK, rec.Code)
	data, ok := decodeBody(t, rec)["data"].(map[string]interface{})
	require.True(t, ok, "body harus berbentuk {data: {user: ...}}")
	user, ok := data["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "kader@posyandu.desa.id", user["email"])
	assert.Equal(t, "kader", user["role"])
	assert.NotContains(t, user, "password")
}

func TestLogin_WrapsUserAndTokenInData(t *testing.T) {
	ts := newTestServer(t)
	ts.auth.On("Login", mock.Anything, &model.LoginRequest{Email: "kader@posyandu.desa.id", Password: "password"}).
		Return(&model.LoginResponse{User: &model.User{ID: 2, Email: "kader@posyandu.desa.id"}, Token: "jwt"}, nil)

	rec := ts.do(http.MethodPost, "/api/login", "", `{"email":"kader@posyandu.desa.id","password":"password"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, "jwt", data["token"])
	assert.Equal(t, "kader@posyandu.desa.id", data["user"].(map[string]interface{})["email"])
}

func TestJadwalUpcoming_IsPublic(t *testing.T) {
	ts := newTestServer(t)
	items := []*model.Jadwal{
		{ID: 3, Judul: "Posyandu Juni", Tanggal: model.NewDate(2024, 6, 1), WaktuMulai: "08:00"},
		{ID: 2, Judul: "Posyandu Juli", Tanggal: model.NewDate(2024, 7, 5), WaktuMulai: "08:00"},
	}
	ts.jadwal.On("Upcoming", mock.Anything).Return(items, nil)

	rec := ts.do(http.MethodGet, "/api/jadwal/upcoming", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].([]interface{})
	require.Len(t, data, 2)
	assert.Equal(t, "2024-06-01", data[0].(map[string]interface{})["tanggal"])
	assert.Equal(t, "2024-07-05", data[1].(map[string]interface{})["tanggal"])
}

func TestJadwalUpcoming_EmptyIsArray(t *testing.T) {
	ts := newTestServer(t)
	ts.jadwal.On("Upcoming", mock.Anything).Return([]*model.Jadwal{}, nil)

	rec := ts.do(http.MethodGet, "/api/jadwal/upcoming", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[]}`, rec.Body.String())
}

func TestJadwal_AnonymousCannotCreate(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPost, "/api/jadwal", "", `{"judul":"x"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin_InvalidCredentialsGets401(t *testing.T) {
	ts := newTestServer(t)
	ts.auth.On("Login", mock.Anything, &model.LoginRequest{Email: "x@y.id", Password: "salah"}).
		Return(nil, service.ErrInvalidCredentials)

	rec := ts.do(http.MethodPost, "/api/login", "", `{"email":"x@y.id","password":"salah"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, service.ErrInvalidCredentials.Error(), decodeBody(t, rec)["message"])
}

func TestLogout_RequiresLogin(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPost, "/api/logout", "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
