package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/ahmadqo/posyandu-desa/internal/model"
	"github.com/ahmadqo/posyandu-desa/internal/response"
	"github.com/ahmadqo/posyandu-desa/internal/service"
)

type BalitaHandler struct {
	svc service.BalitaService
	log *zap.Logger
}

func NewBalitaHandler(svc service.BalitaService, log *zap.Logger) *BalitaHandler {
	return &BalitaHandler{svc: svc, log: log}
}

// GetAll godoc
// @Summary      Daftar balita
// @Tags         balita
// @Produce      json
// @Param        search       query  string  false  "Cari nama balita atau nama orang tua"
// @Param        status_gizi  query  string  false  "baik | kurang | buruk"
// @Param        page         query  int     false  "Halaman (10 data per halaman)"
// @Security     BearerAuth
// @Success      200  {object}  response.Paginated
// @Failure      401  {object}  response.MessageResponse
// @Router       /balita [get]
func (h *BalitaHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	filter := listFilter(r, "status_gizi")
	items, total, err := h.svc.List(r.Context(), filter)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writePage(w, items, len(items), filter, total)
}

// GetByID godoc
// @Summary      Detail balita
// @Tags         balita
// @Produce      json
// @Param        id   path  int  true  "ID balita"
// @Security     BearerAuth
// @Success      200  {object}  response.DataResponse
// @Failure      404  {object}  response.MessageResponse
// @Router       /balita/{id} [get]
func (h *BalitaHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	b, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	response.Data(w, b)
}

// Create godoc
// @Summary      Tambah balita
// @Tags         balita
// @Accept       json
// @Produce      json
// @Param        body  body  model.BalitaRequest  true  "Data balita"
// @Security     BearerAuth
// @Success      201  {object}  response.MutationResponse
// @Failure      422  {object}  map[string][]string
// @Router       /balita [post]
func (h *BalitaHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.BalitaRequest
	if !decode(w, r, &req) {
		return
	}
	b, err := h.svc.Create(r.Context(), &req)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	response.Created(w, "Data balita berhasil dibuat", b)
}

// Update godoc
// @Summary      Ubah balita
// @Tags         balita
// @Accept       json
// @Produce      json
// @Param        id    path  int                  true  "ID balita"
// @Param        body  body  model.BalitaRequest  true  "Data balita"
// @Security     BearerAuth
// @Success      200  {object}  response.MutationResponse
// @Failure      404  {object}  response.MessageResponse
// @Failure      422  {object}  map[string][]string
// @Router       /balita/{id} [put]
func (h *BalitaHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req model.BalitaRequest
	if !decode(w, r, &req) {
		return
	}
	b, err := h.svc.Update(r.Context(), id, &req)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	response.Success(w, "Data balita berhasil diperbarui", b)
}

// Delete godoc
// @Summary      Hapus balita
// @Tags         balita
// @Produce      json
// @Param        id   path  int  true  "ID balita"
// @Security     BearerAuth
// @Success      200  {object}  response.MessageResponse
// @Failure      404  {object}  response.MessageResponse
// @Router       /balita/{id} [delete]
func (h *BalitaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	response.Message(w, "Data balita berhasil dihapus")
}

// Export godoc
// @Summary      Export balita ke Excel
// @Tags         balita
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        search       query  string  false  "Cari nama balita atau nama orang tua"
// @Param        status_gizi  query  string  false  "baik | kurang | buruk"
// @Security     BearerAuth
// @Success      200  {file}  file
// @Router       /balita/export [get]
func (h *BalitaHandler) Export(w http.ResponseWriter, r *http.Request) {
	file, err := h.svc.Export(r.Context(), listFilter(r, "status_gizi"))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeFile(w, file, "attachment")
}

// Kartu godoc
// @Summary      Kartu balita (PDF)
// @Tags         balita
// @Produce      application/pdf
// @Param        id   path  int  true  "ID balita"
// @Security     BearerAuth
// @Success      200  {file}  file
// @Failure      404  {object}  response.MessageResponse
// @Router       /balita/{id}/kartu [get]
func (h *BalitaHandler) Kartu(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	file, err := h.svc.Kartu(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeFile(w, file, "inline")
}
