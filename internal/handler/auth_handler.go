package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/ahmadqo/posyandu-desa/internal/middleware"
	"github.com/ahmadqo/posyandu-desa/internal/model"
	"github.com/ahmadqo/posyandu-desa/internal/response"
	"github.com/ahmadqo/posyandu-desa/internal/service"
)

type AuthHandler struct {
	authService service.AuthService
	log         *zap.Logger
}

func NewAuthHandler(authService service.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, log: log}
}

// Login godoc
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  model.LoginRequest  true  "Email dan password"
// @Success      200  {object}  response.MutationResponse
// @Failure      401  {object}  response.MessageResponse
// @Failure      422  {object}  map[string][]string
// @Router       /login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !decode(w, r, &req) {
		return
	}

	result, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	response.Success(w, "Login berhasil", result)
}

// Logout godoc
// @Summary      Logout
// @Description  Mencabut token yang dipakai request ini.
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.MessageResponse
// @Router       /logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.authService.Logout(r.Context(), middleware.IdentityFromContext(r.Context())); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	response.Message(w, "Logout berhasil")
}

// Me godoc
// @Summary      User yang sedang login
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.DataResponse{data=model.MeResponse}
// @Failure      401  {object}  response.MessageResponse
// @Router       /user [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.authService.Me(r.Context(), middleware.IdentityFromContext(r.Context()))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	response.Data(w, model.MeResponse{User: user})
}
