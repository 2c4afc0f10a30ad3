package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/ahmadqo/posyandu-desa/internal/middleware"
	"github.com/ahmadqo/posyandu-desa/internal/model"
	"github.com/ahmadqo/posyandu-desa/internal/response"
	"github.com/ahmadqo/posyandu-desa/internal/service"
)

type UserHandler struct {
	svc service.UserService
	log *zap.Logger
}

func NewUserHandler(svc service.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: log}
}

// GetAll godoc
// @Summary      Daftar user
// @Tags         users
// @Produce      json
// @Param        search  query  string  false  "Cari nama atau email"
// @Param        role    query  string  false  "admin | kader"
// @Param        page    query  int     false  "Halaman"
// @Security     BearerAuth
// @Success      200  {object}  response.Paginated
// @Failure      403  {object}  response.MessageResponse
// @Router       /users [get]
func (h *UserHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	filter := listFilter(r, "role")
	items, total, err := h.svc.List(r.Context(), filter)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writePage(w, items, len(items), filter, total)
}

// Create godoc
// @Summary      Tambah user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  model.CreateUserRequest  true  "Data user"
// @Security     BearerAuth
// @Success      201  {object}  response.MutationResponse
// @Failure      422  {object}  map[string][]string
// @Router       /users [post]
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateUserRequest
	if !decode(w, r, &req) {
		return
	}
	u, err := h.svc.Create(r.Context(), &req)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	response.Created(w, "User berhasil dibuat", u)
}

// Update godoc
// @Summary      Ubah user
// @Description  Password kosong berarti tidak diubah. Perubahan password atau role mencabut semua sesi user.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path  int                      true  "ID user"
// @Param        body  body  model.UpdateUserRequest  true  "Data user"
// @Security     BearerAuth
// @Success      200  {object}  response.MutationResponse
// @Router       /users/{id} [put]
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req model.UpdateUserRequest
	if !decode(w, r, &req) {
		return
	}
	u, err := h.svc.Update(r.Context(), id, &req)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	response.Success(w, "User berhasil diperbarui", u)
}

// Delete godoc
// @Summary      Hapus user
// @Tags         users
// @Param        id   path  int  true  "ID user"
// @Security     BearerAuth
// @Success      200  {object}  response.MessageResponse
// @Failure      403  {object}  response.MessageResponse
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), middleware.IdentityFromContext(r.Context()), id); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	response.Message(w, "User berhasil dihapus")
}
