package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/ahmadqo/posyandu-desa/internal/model"
	"github.com/ahmadqo/posyandu-desa/internal/response"
	"github.com/ahmadqo/posyandu-desa/internal/service"
)

type IbuHamilHandler struct {
	svc service.IbuHamilService
	log *zap.Logger
}

func NewIbuHamilHandler(svc service.IbuHamilService, log *zap.Logger) *IbuHamilHandler {
	return &IbuHamilHandler{svc: svc, log: log}
}

// GetAll godoc
// @Summary      Daftar ibu hamil
// @Tags         ibu-hamil
// @Produce      json
// @Param        search       query  string  false  "Cari nama ibu atau nama suami"
// @Param        status_kehamilan  query  string  false  "trimester_1 | trimester_2 | trimester_3"
// @Param        page         query  int     false  "Halaman (10 data per halaman)"
// @Security     BearerAuth
// @Success      200  {object}  response.Paginated
// @Failure      401  {object}  response.MessageResponse
// @Router       /ibu-hamil [get]
func (h *IbuHamilHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	filter := listFilter(r, "status_kehamilan")
	items, total, err := h.svc.List(r.Context(), filter)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writePage(w, items, len(items), filter, total)
}

// GetByID godoc
// @Summary      Detail ibu hamil
// @Tags         ibu-hamil
// @Produce      json
// @Param        id   path  int  true  "ID ibu hamil"
// @Security     BearerAuth
// @Success      200  {object}  response.DataResponse
// @Failure      404  {object}  response.MessageResponse
// @Router       /ibu-hamil/{id} [get]
func (h *IbuHamilHandler) GetByID(w http.ResponseWriter, r *http.Request) {
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
// @Summary      Tambah ibu hamil
// @Tags         ibu-hamil
// @Accept       json
// @Produce      json
// @Param        body  body  model.IbuHamilRequest  true  "Data ibu hamil"
// @Security     BearerAuth
// @Success      201  {object}  response.MutationResponse
// @Failure      422  {object}  map[string][]string
// @Router       /ibu-hamil [post]
func (h *IbuHamilHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.IbuHamilRequest
	if !decode(w, r, &req) {
		return
	}
	b, err := h.svc.Create(r.Context(), &req)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	response.Created(w, "Data ibu hamil berhasil dibuat", b)
}

// Update godoc
// @Summary      Ubah ibu hamil
// @Tags         ibu-hamil
// @Accept       json
// @Produce      json
// @Param        id    path  int                  true  "ID ibu hamil"
// @Param        body  body  model.IbuHamilRequest  true  "Data ibu hamil"
// @Security     BearerAuth
// @Success      200  {object}  response.MutationResponse
// @Failure      404  {object}  response.MessageResponse
// @Failure      422  {object}  map[string][]string
// @Router       /ibu-hamil/{id} [put]
func (h *IbuHamilHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req model.IbuHamilRequest
	if !decode(w, r, &req) {
		return
	}
	b, err := h.svc.Update(r.Context(), id, &req)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	response.Success(w, "Data ibu hamil berhasil diperbarui", b)
}

// Delete godoc
// @Summary      Hapus ibu hamil
// @Tags         ibu-hamil
// @Produce      json
// @Param        id   path  int  true  "ID ibu hamil"
// @Security     BearerAuth
// @Success      200  {object}  response.MessageResponse
// @Failure      404  {object}  response.MessageResponse
// @Router       /ibu-hamil/{id} [delete]
func (h *IbuHamilHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	response.Message(w, "Data ibu hamil berhasil dihapus")
}

// Export godoc
// @Summary      Export ibu hamil ke Excel
// @Tags         ibu-hamil
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        search       query  string  false  "Cari nama ibu atau nama suami"
// @Param        status_kehamilan  query  string  false  "trimester_1 | trimester_2 | trimester_3"
// @Security     BearerAuth
// @Success      200  {file}  file
// @Router       /ibu-hamil/export [get]
func (h *IbuHamilHandler) Export(w http.ResponseWriter, r *http.Request) {
	file, err := h.svc.Export(r.Context(), listFilter(r, "status_kehamilan"))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeFile(w, file, "attachment")
}

// Kartu godoc
// @Summary      Kartu ibu hamil (PDF)
// @Tags         ibu-hamil
// @Produce      application/pdf
// @Param        id   path  int  true  "ID ibu hamil"
// @Security     BearerAuth
// @Success      200  {file}  file
// @Failure      404  {object}  response.MessageResponse
// @Router       /ibu-hamil/{id}/kartu [get]
func (h *IbuHamilHandler) Kartu(w http.ResponseWriter, r *http.Request) {
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
