package model

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout adalah format tanggal pada request, response dan export.
const DateLayout = "2006-01-02"

// Date adalah tanggal kalender tanpa jam (kolom DATE).
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate membaca tanggal berformat YYYY-MM-DD.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

// DateOf memotong jam dari t sesuai zona waktunya.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
	case time.Time:
		*d = DateOf(v)
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	default:
		return fmt.Errorf("model.Date: tipe %T tidak didukung", src)
	}
	return nil
}

func (d *Date) scanString(s string) error {
	if len(s) > len(DateLayout) {
		s = s[:len(DateLayout)]
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Format(DateLayout), nil
}

// Number adalah input angka dari JSON. Angka maupun string angka diterima,
// null dan "" dianggap tidak diisi. Teks lain disimpan di Raw agar aturan
// numeric pada validator gagal.
type Number struct {
	Value   float64
	Present bool
	Invalid bool
	Raw     string
}

// NewNumber membuat Number yang terisi.
func NewNumber(v float64) Number {
	return Number{Value: v, Present: true}
}

func (n *Number) UnmarshalJSON(b []byte) error {
	*n = Number{}
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		return nil
	}

	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			return nil
		}
	}

	n.Present = true
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		n.Invalid = true
		n.Raw = raw
		return nil
	}
	n.Value = f
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	switch {
	case !n.Present:
		return []byte("null"), nil
	case n.Invalid:
		return json.Marshal(n.Raw)
	default:
		return json.Marshal(n.Value)
	}
}

// Ptr mengembalikan nil jika tidak diisi.
func (n Number) Ptr() *float64 {
	if !n.Present || n.Invalid {
		return nil
	}
	v := n.Value
	return &v
}

// NullableString mengubah string kosong menjadi nil.
func NullableString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
