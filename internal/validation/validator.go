// Package validation membungkus go-playground/validator dengan aturan
// tambahan (nik, date, not_past, clock, blood_pressure) dan pesan
// berbahasa Indonesia per field.
package validation

import (
	"errors"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/ahmadqo/posyandu-desa/internal/model"
)

var (
	nikRegex           = regexp.MustCompile(`^\d{16}$`)
	clockRegex         = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
	bloodPressureRegex = regexp.MustCompile(`^\d{2,3}/\d{2,3}$`)
)

// Errors adalah hasil validasi: nama field JSON -> daftar pesan.
type Errors map[string][]string

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "validasi gagal: " + strings.Join(fields, ", ")
}

func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Validator adalah satu instance validator yang dipakai bersama.
type Validator struct {
	v      *validator.Validate
	now    func() time.Time
	labels sync.Map // reflect.Type -> map[string]string
}

type Option func(*Validator)

// WithClock mengganti sumber waktu untuk aturan not_past.
func WithClock(now func() time.Time) Option {
	return func(v *Validator) { v.now = now }
}

func New(opts ...Option) *Validator {
	val := &Validator{
		v:   validator.New(validator.WithRequiredStructEnabled()),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(val)
	}

	val.v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	val.v.RegisterCustomTypeFunc(numberValue, model.Number{})

	_ = val.v.RegisterValidation("nik", matchString(nikRegex))
	_ = val.v.RegisterValidation("clock", matchString(clockRegex))
	_ = val.v.RegisterValidation("blood_pressure", matchString(bloodPressureRegex))
	_ = val.v.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		_, err := model.ParseDate(fl.Field().String())
		return err == nil
	})
	_ = val.v.RegisterValidation("not_past", val.notPast)
	val.v.RegisterStructValidation(jadwalTimeRange, model.JadwalRequest{})

	return val
}

// Struct memvalidasi seluruh field s dan mengembalikan Errors (bukan
// fail-fast) atau nil. Jika s pointer ke struct, field string di-trim dulu.
func (val *Validator) Struct(s interface{}) error {
	trimStrings(s)

	err := val.v.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	labels := val.labelsFor(s)
	out := Errors{}
	for _, fe := range fieldErrs {
		label, ok := labels[fe.StructField()]
		if !ok {
			label = strings.ReplaceAll(fe.Field(), "_", " ")
		}
		out.Add(fe.Field(), message(label, fe))
	}
	return out
}

// Today adalah tanggal hari ini menurut clock validator.
func (val *Validator) Today() model.Date {
	return model.DateOf(val.now())
}

func (val *Validator) notPast(fl validator.FieldLevel) bool {
	d, err := model.ParseDate(fl.Field().String())
	if err != nil {
		// format salah sudah dilaporkan oleh aturan date
		return true
	}
	return !d.Before(val.Today().Time)
}

func (val *Validator) labelsFor(s interface{}) map[string]string {
	t := reflect.TypeOf(s)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if cached, ok := val.labels.Load(t); ok {
		return cached.(map[string]string)
	}

	labels := map[string]string{}
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if l := f.Tag.Get("label"); l != "" {
				labels[f.Name] = l
			}
		}
	}
	val.labels.Store(t, labels)
	return labels
}

func trimStrings(s interface{}) {
	rv := reflect.ValueOf(s)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return
	}
	rv = rv.Elem()
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if f.Kind() == reflect.String && f.CanSet() {
			f.SetString(strings.TrimSpace(f.String()))
		}
	}
}

func matchString(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

// numberValue: tidak diisi -> nil, teks bukan angka -> string mentah,
// angka -> *float64 (agar nilai 0 tetap divalidasi oleh omitempty).
func numberValue(field reflect.Value) interface{} {
	n, ok := field.Interface().(model.Number)
	if !ok || !n.Present {
		return nil
	}
	if n.Invalid {
		return n.Raw
	}
	return n.Ptr()
}

// jadwalTimeRange mewajibkan waktu_selesai setelah waktu_mulai. Format HH:MM
// dua digit sehingga perbandingan string sama dengan perbandingan waktu.
func jadwalTimeRange(sl validator.StructLevel) {
	req, ok := sl.Current().Interface().(model.JadwalRequest)
	if !ok {
		return
	}
	if !clockRegex.MatchString(req.WaktuMulai) || !clockRegex.MatchString(req.WaktuSelesai) {
		return
	}
	if req.WaktuSelesai <= req.WaktuMulai {
		sl.ReportError(req.WaktuSelesai, "waktu_selesai", "WaktuSelesai", "after_start", "waktu_mulai")
	}
}
