package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/ahmadqo/posyandu-desa/internal/model"
	"github.com/ahmadqo/posyandu-desa/internal/response"
	"github.com/ahmadqo/posyandu-desa/internal/service"
)

type JadwalHandler struct {
	svc service.JadwalService
	log *zap.Logger
}

func NewJadwalHandler(svc service.JadwalService, log *zap.Logger) *JadwalHandler {
	return &JadwalHandler{svc: svc, log: log}
}

// GetAll godoc
// @Summary      Daftar jadwal
// @Tags         jadwal
// @Produce      json
// @Param        search  query  string  false  "Cari judul atau lokasi"
// @Param        jenis   query  string  false  "balita | ibu_hamil"
// @Param        page    query  int     false  "Halaman"
// @Success      200  {object}  response.Paginated
// @Router       /jadwal [get]
func (h *JadwalHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	filter := listFilter(r, "jenis")
	items, total, err := h.svc.List(r.Context(), filter)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writePage(w, items, len(items), filter, total)
}

// Upcoming godoc
// @Summary      Jadwal mulai hari ini
// @Tags         jadwal
// @Produce      json
// @Success      200  {object}  response.DataResponse
// @Router       /jadwal/upcoming [get]
func (h *JadwalHandler) Upcoming(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Upcoming(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	response.Data(w, items)
}

// GetByID godoc
// @Summary      Detail jadwal
// @Tags         jadwal
// @Produce      json
// @Param        id   path  int  true  "ID jadwal"
// @Success      200  {object}  response.DataResponse
// @Failure      404  {object}  response.MessageResponse
// @Router       /jadwal/{id} [get]
func (h *JadwalHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	j, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	response.Data(w, j)
}

// Create godoc
// @Summary      Tambah jadwal
// @Tags         jadwal
// @Accept       json
// @Produce      json
// @Param        body  body  model.JadwalRequest  true  "Data jadwal"
// @Security     BearerAuth
// @Success      201  {object}  response.MutationResponse
// @Failure      422  {object}  map[string][]string
// @Router       /jadwal [post]
func (h *JadwalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.JadwalRequest
	if !decode(w, r, &req) {
		return
	}
	j, err := h.svc.Create(r.Context(), &req)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	response.Created(w, "Jadwal berhasil dibuat", j)
}

// Update godoc
// @Summary      Ubah jadwal
// @Tags         jadwal
// @Accept       json
// @Produce      json
// @Param        id    path  int                  true  "ID jadwal"
// @Param        body  body  model.JadwalRequest  true  "Data jadwal"
// @Security     BearerAuth
// @Success      200  {object}  response.MutationResponse
// @Failure      422  {object}  map[string][]string
// @Router       /jadwal/{id} [put]
func (h *JadwalHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req model.JadwalRequest
	if !decode(w, r, &req) {
		return
	}
	j, err := h.svc.Update(r.Context(), id, &req)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	response.Success(w, "Jadwal berhasil diperbarui", j)
}

// Delete godoc
// @Summary      Hapus jadwal
// @Tags         jadwal
// @Param        id   path  int  true  "ID jadwal"
// @Security     BearerAuth
// @Success      200  {object}  response.MessageResponse
// @Router       /jadwal/{id} [delete]
func (h *JadwalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	response.Message(w, "Jadwal berhasil dihapus")
}
