package response

import (
	"encoding/json"
	"net/http"
)

// MessageResponse adalah body untuk delete dan semua error non-validasi.
type MessageResponse struct {
	Message string `json:"message"`
}

// DataResponse adalah body untuk satu resource.
type DataResponse struct {
	Data interface{} `json:"data"`
}

// MutationResponse adalah body untuk create dan update.
type MutationResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// Paginated mengikuti bentuk paginator yang dipakai frontend.
type Paginated struct {
	Data        interface{} `json:"data"`
	CurrentPage int         `json:"current_page"`
	PerPage     int         `json:"per_page"`
	Total       int64       `json:"total"`
	LastPage    int         `json:"last_page"`
	From        *int        `json:"from"`
	To          *int        `json:"to"`
}

// NewPaginated menghitung last_page, from dan to. items harus berupa slice;
// halaman di luar jangkauan menghasilkan data kosong dengan from/to null.
func NewPaginated(items interface{}, count, page, perPage int, total int64) *Paginated {
	lastPage := int((total + int64(perPage) - 1) / int64(perPage))
	if lastPage < 1 {
		lastPage = 1
	}

	p := &Paginated{
		Data:        items,
		CurrentPage: page,
		PerPage:     perPage,
		Total:       total,
		LastPage:    lastPage,
	}
	if count > 0 {
		from := (page-1)*perPage + 1
		to := from + count - 1
		p.From = &from
		p.To = &to
	}
	return p
}

func JSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}

func Data(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusOK, DataResponse{Data: data})
}

func Success(w http.ResponseWriter, message string, data interface{}) {
	JSON(w, http.StatusOK, MutationResponse{Message: message, Data: data})
}

func Created(w http.ResponseWriter, message string, data interface{}) {
	JSON(w, http.StatusCreated, MutationResponse{Message: message, Data: data})
}

func Message(w http.ResponseWriter, message string) {
	JSON(w, http.StatusOK, MessageResponse{Message: message})
}

func List(w http.ResponseWriter, page *Paginated) {
	JSON(w, http.StatusOK, page)
}

// ValidationFailed menulis map field -> pesan apa adanya dengan status 422.
func ValidationFailed(w http.ResponseWriter, errs map[string][]string) {
	JSON(w, http.StatusUnprocessableEntity, errs)
}

func BadRequest(w http.ResponseWriter, message string) {
	JSON(w, http.StatusBadRequest, MessageResponse{Message: message})
}

func Unauthorized(w http.ResponseWriter, message string) {
	JSON(w, http.StatusUnauthorized, MessageResponse{Message: message})
}

func Forbidden(w http.ResponseWriter, message string) {
	JSON(w, http.StatusForbidden, MessageResponse{Message: message})
}

func NotFound(w http.ResponseWriter, message string) {
	JSON(w, http.StatusNotFound, MessageResponse{Message: message})
}

func InternalError(w http.ResponseWriter, message string) {
	JSON(w, http.StatusInternalServerError, MessageResponse{Message: message})
}
