package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/ahmadqo/posyandu-desa/internal/middleware"
	"github.com/ahmadqo/posyandu-desa/internal/response"
	"github.com/ahmadqo/posyandu-desa/internal/service"
)

type StatistikHandler struct {
	svc service.StatistikService
	log *zap.Logger
}

func NewStatistikHandler(svc service.StatistikService, log *zap.Logger) *StatistikHandler {
	return &StatistikHandler{svc: svc, log: log}
}

// Get godoc
// @Summary      Ringkasan dashboard
// @Tags         statistik
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.DataResponse
// @Router       /statistik [get]
func (h *StatistikHandler) Get(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Get(r.Context(), middleware.IdentityFromContext(r.Context()))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	response.Data(w, stats)
}
