package model

import "time"

type Balita struct {
	ID              int64     `db:"id"               json:"id"`
	Nama            string    `db:"nama"             json:"nama"`
	NIK             string    `db:"nik"              json:"nik"`
	JenisKelamin    string    `db:"jenis_kelamin"    json:"jenis_kelamin"`
	TempatLahir     string    `db:"tempat_lahir"     json:"tempat_lahir"`
	TanggalLahir    Date      `db:"tanggal_lahir"    json:"tanggal_lahir"`
	NamaOrtu        string    `db:"nama_ortu"        json:"nama_ortu"`
	NIKOrtu         string    `db:"nik_ortu"         json:"nik_ortu"`
	Alamat          string    `db:"alamat"           json:"alamat"`
	BeratLahir      float64   `db:"berat_lahir"      json:"berat_lahir"`
	TinggiLahir     float64   `db:"tinggi_lahir"     json:"tinggi_lahir"`
	BeratSekarang   *float64  `db:"berat_sekarang"   json:"berat_sekarang"`
	TinggiSekarang  *float64  `db:"tinggi_sekarang"  json:"tinggi_sekarang"`
	StatusGizi      *string   `db:"status_gizi"      json:"status_gizi"`
	StatusImunisasi *string   `db:"status_imunisasi" json:"status_imunisasi"`
	StatusVitaminA  *string   `db:"status_vitamin_a" json:"status_vitamin_a"`
	Catatan         *string   `db:"catatan"          json:"catatan"`
	CreatedAt       time.Time `db:"created_at"       json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"       json:"updated_at"`
}

// BalitaView adalah Balita beserta umur yang dihitung saat response dibuat.
type BalitaView struct {
	*Balita
	Umur string `json:"umur"`
}

// BalitaRequest dipakai untuk create maupun update (PUT mengganti seluruh field).
type BalitaRequest struct {
	Nama            string `json:"nama"             validate:"required,max=255"                          label:"Nama"`
	NIK             string `json:"nik"              validate:"required,nik"                              label:"NIK"`
	JenisKelamin    string `json:"jenis_kelamin"    validate:"required,oneof=L P"                        label:"Jenis kelamin"`
	TempatLahir     string `json:"tempat_lahir"     validate:"required,max=255"                          label:"Tempat lahir"`
	TanggalLahir    string `json:"tanggal_lahir"    validate:"required,date"                             label:"Tanggal lahir"`
	NamaOrtu        string `json:"nama_ortu"        validate:"required,max=255"                          label:"Nama orang tua"`
	NIKOrtu         string `json:"nik_ortu"         validate:"required,nik"                              label:"NIK orang tua"`
	Alamat          string `json:"alamat"           validate:"required"                                  label:"Alamat"`
	BeratLahir      Number `json:"berat_lahir"      validate:"required,numeric,min=0.5,max=10"           label:"Berat lahir"`
	TinggiLahir     Number `json:"tinggi_lahir"     validate:"required,numeric,min=20,max=100"           label:"Tinggi lahir"`
	BeratSekarang   Number `json:"berat_sekarang"   validate:"omitempty,numeric,min=0.5,max=50"          label:"Berat sekarang"`
	TinggiSekarang  Number `json:"tinggi_sekarang"  validate:"omitempty,numeric,min=20,max=150"          label:"Tinggi sekarang"`
	StatusGizi      string `json:"status_gizi"      validate:"omitempty,oneof=baik kurang buruk"         label:"Status gizi"`
	StatusImunisasi string `json:"status_imunisasi" validate:"omitempty,oneof=lengkap tidak_lengkap belum" label:"Status imunisasi"`
	StatusVitaminA  string `json:"status_vitamin_a" validate:"omitempty,oneof=sudah belum"               label:"Status vitamin A"`
	Catatan         string `json:"catatan"                                                               label:"Catatan"`
}

// ToBalita mengisi record dari request yang sudah lolos validasi.
func (r BalitaRequest) ToBalita(b *Balita) {
	tgl, _ := ParseDate(r.TanggalLahir)
	b.Nama = r.Nama
	b.NIK = r.NIK
	b.JenisKelamin = r.JenisKelamin
	b.TempatLahir = r.TempatLahir
	b.TanggalLahir = tgl
	b.NamaOrtu = r.NamaOrtu
	b.NIKOrtu = r.NIKOrtu
	b.Alamat = r.Alamat
	b.BeratLahir = r.BeratLahir.Value
	b.TinggiLahir = r.TinggiLahir.Value
	b.BeratSekarang = r.BeratSekarang.Ptr()
	b.TinggiSekarang = r.TinggiSekarang.Ptr()
	b.StatusGizi = NullableString(r.StatusGizi)
	b.StatusImunisasi = NullableString(r.StatusImunisasi)
	b.StatusVitaminA = NullableString(r.StatusVitaminA)
	b.Catatan = NullableString(r.Catatan)
}
