package utils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
)

// MaxBodyBytes adalah ukuran maksimum body JSON yang dibaca DecodeJSON.
const MaxBodyBytes = 1 << 20

var (
	// ErrEmptyBody dikembalikan DecodeJSON jika body kosong.
	ErrEmptyBody    = errors.New("body request kosong")
	ErrBodyTooLarge = errors.New("body request terlalu besar")
)

// DecodeJSON decode request body ke struct. Field yang tidak dikenal
// diabaikan seperti pada form frontend yang mengirim seluruh objek.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return ErrEmptyBody
	}
	body := http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	err := json.NewDecoder(body).Decode(dst)

	var tooLarge *http.MaxBytesError
	switch {
	case errors.Is(err, io.EOF):
		return ErrEmptyBody
	case errors.As(err, &tooLarge):
		return ErrBodyTooLarge
	}
	return err
}

func SanitizeString(s string) string {
	return strings.TrimSpace(s)
}

// ParseID mengubah parameter path menjadi id positif.
func ParseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func ParseIntQuery(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
