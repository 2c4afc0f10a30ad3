package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/ahmadqo/posyandu-desa/internal/middleware"
	"github.com/ahmadqo/posyandu-desa/internal/model"
	"github.com/ahmadqo/posyandu-desa/internal/response"
	"github.com/ahmadqo/posyandu-desa/internal/service"
)

type PengaduanHandler struct {
	svc service.PengaduanService
	log *zap.Logger
}

func NewPengaduanHandler(svc service.PengaduanService, log *zap.Logger) *PengaduanHandler {
	return &PengaduanHandler{svc: svc, log: log}
}

// GetAll godoc
// @Summary      Daftar pengaduan
// @Description  Pengunjung tanpa login tidak melihat nik, email dan no_hp pelapor.
// @Tags         pengaduan
// @Produce      json
// @Param        search  query  string  false  "Cari nama atau subjek"
// @Param        status  query  string  false  "baru | diproses | selesai"
// @Param        page    query  int     false  "Halaman"
// @Success      200  {object}  response.Paginated
// @Router       /pengaduan [get]
func (h *PengaduanHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	filter := listFilter(r, "status")
	viewer := middleware.IdentityFromContext(r.Context())
	items, total, err := h.svc.List(r.Context(), viewer, filter)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writePage(w, items, len(items), filter, total)
}

// GetByID godoc
// @Summary      Detail pengaduan
// @Tags         pengaduan
// @Produce      json
// @Param        id   path  int  true  "ID pengaduan"
// @Security     BearerAuth
// @Success      200  {object}  response.DataResponse
// @Failure      404  {object}  response.MessageResponse
// @Router       /pengaduan/{id} [get]
func (h *PengaduanHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	response.Data(w, p)
}

// Create godoc
// @Summary      Kirim pengaduan
// @Tags         pengaduan
// @Accept       json
// @Produce      json
// @Param        body  body  model.CreatePengaduanRequest  true  "Data pengaduan"
// @Success      201  {object}  response.MutationResponse
// @Failure      422  {object}  map[string][]string
// @Router       /pengaduan [post]
func (h *PengaduanHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreatePengaduanRequest
	if !decode(w, r, &req) {
		return
	}
	p, err := h.svc.Create(r.Context(), &req)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	response.Created(w, "Pengaduan berhasil dikirim", p)
}

// Update godoc
// @Summary      Ubah status pengaduan
// @Tags         pengaduan
// @Accept       json
// @Produce      json
// @Param        id    path  int                           true  "ID pengaduan"
// @Param        body  body  model.UpdatePengaduanRequest  true  "Status dan tanggapan"
// @Security     BearerAuth
// @Success      200  {object}  response.MutationResponse
// @Router       /pengaduan/{id} [put]
func (h *PengaduanHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req model.UpdatePengaduanRequest
	if !decode(w, r, &req) {
		return
	}
	p, err := h.svc.Update(r.Context(), id, &req)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	response.Success(w, "Pengaduan berhasil diperbarui", p)
}

// Respond godoc
// @Summary      Tanggapi pengaduan
// @Description  Menyimpan tanggapan, menandai selesai dan mengirim email ke pelapor di background.
// @Tags         pengaduan
// @Accept       json
// @Produce      json
// @Param        id    path  int                            true  "ID pengaduan"
// @Param        body  body  model.RespondPengaduanRequest  true  "Tanggapan"
// @Security     BearerAuth
// @Success      200  {object}  response.MutationResponse
// @Router       /pengaduan/{id}/respond [post]
func (h *PengaduanHandler) Respond(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req model.RespondPengaduanRequest
	if !decode(w, r, &req) {
		return
	}
	p, err := h.svc.Respond(r.Context(), id, &req)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	response.Success(w, "Tanggapan berhasil dikirim", p)
}

// Delete godoc
// @Summary      Hapus pengaduan
// @Tags         pengaduan
// @Param        id   path  int  true  "ID pengaduan"
// @Security     BearerAuth
// @Success      200  {object}  response.MessageResponse
// @Router       /pengaduan/{id} [delete]
func (h *PengaduanHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	response.Message(w, "Pengaduan berhasil dihapus")
}
