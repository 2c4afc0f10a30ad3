package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/ahmadqo/posyandu-desa/internal/response"
	"github.com/ahmadqo/posyandu-desa/internal/service"
)

type NotifikasiHandler struct {
	svc service.NotifikasiService
	log *zap.Logger
}

func NewNotifikasiHandler(svc service.NotifikasiService, log *zap.Logger) *NotifikasiHandler {
	return &NotifikasiHandler{svc: svc, log: log}
}

// GetAll godoc
// @Summary      Daftar outbox email
// @Tags         notifikasi
// @Produce      json
// @Param        search  query  string  false  "Cari penerima atau subjek"
// @Param        status  query  string  false  "pending | processing | sent | failed"
// @Param        page    query  int     false  "Halaman"
// @Security     BearerAuth
// @Success      200  {object}  response.Paginated
// @Router       /notifikasi [get]
func (h *NotifikasiHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	filter := listFilter(r, "status")
	items, total, err := h.svc.List(r.Context(), filter)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writePage(w, items, len(items), filter, total)
}

// Retry godoc
// @Summary      Kirim ulang notifikasi gagal
// @Tags         notifikasi
// @Produce      json
// @Param        id   path  int  true  "ID notifikasi"
// @Security     BearerAuth
// @Success      200  {object}  response.MutationResponse
// @Failure      400  {object}  response.MessageResponse
// @Router       /notifikasi/{id}/retry [post]
func (h *NotifikasiHandler) Retry(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	n, err := h.svc.Retry(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	response.Success(w, "Notifikasi dijadwalkan untuk dikirim ulang", n)
}
