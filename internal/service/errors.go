package service

import (
	"errors"
	"time"

	"github.com/ahmadqo/posyandu-desa/internal/validation"
)

// Errors umum lintas resource
var (
	ErrInvalidID          = errors.New("data tidak ditemukan")
	ErrUnauthenticated    = errors.New("sesi tidak valid, silakan login kembali")
	ErrInvalidCredentials = errors.New("email atau password salah")
	ErrForbidden          = errors.New("anda tidak memiliki akses untuk tindakan ini")
)

// File adalah hasil export atau kartu cetak yang siap dikirim ke client.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypePDF  = "application/pdf"
)

// Kicker membangunkan pengirim notifikasi tanpa menunggu.
type Kicker interface {
	Kick()
}

type noopKicker struct{}

func (noopKicker) Kick() {}

// validate mengembalikan peta error (kosong jika valid) agar pemanggil
// bisa menambahkan error keunikan sebelum dikembalikan.
func validate(v *validation.Validator, req interface{}) (validation.Errors, error) {
	err := v.Struct(req)
	if err == nil {
		return validation.Errors{}, nil
	}
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return verrs, nil
	}
	return nil, err
}

func uniqueError(field, label string) validation.Errors {
	return validation.Errors{field: {validation.Unique(label)}}
}

func derefString(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func stringOrNil(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

func floatOrNil(f *float64) interface{} {
	if f == nil {
		return nil
	}
	return *f
}

func exportName(prefix string, now time.Time) string {
	return prefix + "-" + now.Format("2006-01-02") + ".xlsx"
}
