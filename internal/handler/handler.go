package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/ahmadqo/posyandu-desa/internal/model"
	"github.com/ahmadqo/posyandu-desa/internal/response"
	"github.com/ahmadqo/posyandu-desa/internal/service"
	"github.com/ahmadqo/posyandu-desa/internal/utils"
	"github.com/ahmadqo/posyandu-desa/internal/validation"
)

const msgServerError = "Terjadi kesalahan pada server"

var notFoundErrors = []error{
	service.ErrInvalidID,
	service.ErrBalitaNotFound,
	service.ErrIbuHamilNotFound,
	service.ErrJadwalNotFound,
	service.ErrPengaduanNotFound,
	service.ErrUserNotFound,
	service.ErrNotifikasiNotFound,
}

// writeError memetakan error service ke status HTTP. Error yang tidak
// dikenal dicatat lalu dijawab 500 tanpa detail.
func writeError(w http.ResponseWriter, r *http.Request, log *zap.Logger, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		response.ValidationFailed(w, verrs)
		return
	}

	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			response.NotFound(w, err.Error())
			return
		}
	}

	switch {
	case errors.Is(err, service.ErrUnauthenticated), errors.Is(err, service.ErrInvalidCredentials):
		response.Unauthorized(w, err.Error())
	case errors.Is(err, service.ErrForbidden), errors.Is(err, service.ErrCannotDeleteSelf):
		response.Forbidden(w, err.Error())
	case errors.Is(err, service.ErrNotifikasiNotFailed):
		response.BadRequest(w, err.Error())
	default:
		log.Error("request gagal",
			zap.Error(err),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("request_id", chiMiddleware.GetReqID(r.Context())),
		)
		response.InternalError(w, msgServerError)
	}
}

// decode membaca body JSON. Body kosong dibiarkan agar validasi melaporkan
// field wajib; JSON rusak dijawab 400, body di atas batas 413.
func decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	err := utils.DecodeJSON(w, r, dst)
	if err == nil || errors.Is(err, utils.ErrEmptyBody) {
		return true
	}
	if errors.Is(err, utils.ErrBodyTooLarge) {
		response.JSON(w, http.StatusRequestEntityTooLarge, response.MessageResponse{Message: "Ukuran request terlalu besar"})
		return false
	}
	response.BadRequest(w, "Format request tidak valid")
	return false
}

// pathID membaca {id}. Id yang bukan angka positif tidak akan pernah cocok
// dengan record mana pun sehingga dijawab 404.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		response.NotFound(w, service.ErrInvalidID.Error())
		return 0, false
	}
	return id, true
}

// listFilter membaca search, page dan satu parameter filter eksak.
func listFilter(r *http.Request, filterParam string) model.ListFilter {
	q := r.URL.Query()
	f := model.ListFilter{
		Search: utils.SanitizeString(q.Get("search")),
		Page:   utils.ParseIntQuery(q.Get("page"), 1),
	}
	if filterParam != "" {
		f.Status = utils.SanitizeString(q.Get(filterParam))
	}
	return f
}

func writePage(w http.ResponseWriter, items interface{}, count int, filter model.ListFilter, total int64) {
	filter = filter.Normalize()
	response.List(w, response.NewPaginated(items, count, filter.Page, model.PerPage, total))
}

func writeFile(w http.ResponseWriter, f *service.File, disposition string) {
	w.Header().Set("Content-Type", f.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`%s; filename="%s"`, disposition, f.Name))
	w.Header().Set("Content-Length", strconv.Itoa(len(f.Data)))
	w.WriteHeader(http.StatusOK)
	w.Write(f.Data)
}
