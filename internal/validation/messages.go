package validation

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
)

func message(label string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s wajib diisi.", label)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s maksimal %s karakter.", label, fe.Param())
		}
		return fmt.Sprintf("%s maksimal %s.", label, fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s minimal %s karakter.", label, fe.Param())
		}
		return fmt.Sprintf("%s minimal %s.", label, fe.Param())
	case "numeric":
		return fmt.Sprintf("%s harus berupa angka.", label)
	case "oneof":
		return fmt.Sprintf("%s yang dipilih tidak valid.", label)
	case "email":
		return fmt.Sprintf("%s harus berupa alamat email yang valid.", label)
	case "nik":
		return fmt.Sprintf("%s harus terdiri dari 16 digit angka.", label)
	case "date":
		return fmt.Sprintf("%s bukan tanggal yang valid (format YYYY-MM-DD).", label)
	case "not_past":
		return fmt.Sprintf("%s harus tanggal hari ini atau sesudahnya.", label)
	case "clock":
		return fmt.Sprintf("%s harus berformat JJ:MM.", label)
	case "after_start":
		return fmt.Sprintf("%s harus setelah waktu mulai.", label)
	case "blood_pressure":
		return fmt.Sprintf("%s harus berformat sistolik/diastolik, contoh 120/80.", label)
	default:
		return fmt.Sprintf("%s tidak valid.", label)
	}
}

// Unique adalah pesan untuk nilai yang sudah dipakai record lain.
func Unique(label string) string {
	return fmt.Sprintf("%s sudah terdaftar.", label)
}
