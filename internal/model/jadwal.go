package model

import "time"

type JenisJadwal string

const (
	JenisBalita   JenisJadwal = "balita"
	JenisIbuHamil JenisJadwal = "ibu_hamil"
)

type Jadwal struct {
	ID           int64       `db:"id"            json:"id"`
	Judul        string      `db:"judul"         json:"judul"`
	Deskripsi    *string     `db:"deskripsi"     json:"deskripsi"`
	Tanggal      Date        `db:"tanggal"       json:"tanggal"`
	WaktuMulai   string      `db:"waktu_mulai"   json:"waktu_mulai"`
	WaktuSelesai string      `db:"waktu_selesai" json:"waktu_selesai"`
	Lokasi       string      `db:"lokasi"        json:"lokasi"`
	Petugas      string      `db:"petugas"       json:"petugas"`
	Jenis        JenisJadwal `db:"jenis"         json:"jenis"`
	CreatedAt    time.Time   `db:"created_at"    json:"created_at"`
	UpdatedAt    time.Time   `db:"updated_at"    json:"updated_at"`
}

// JadwalRequest: waktu_selesai harus setelah waktu_mulai (validasi level struct).
type JadwalRequest struct {
	Judul        string `json:"judul"         validate:"required,max=255"               label:"Judul"`
	Deskripsi    string `json:"deskripsi"                                               label:"Deskripsi"`
	Tanggal      string `json:"tanggal"       validate:"required,date,not_past"         label:"Tanggal"`
	WaktuMulai   string `json:"waktu_mulai"   validate:"required,clock"                 label:"Waktu mulai"`
	WaktuSelesai string `json:"waktu_selesai" validate:"required,clock"                 label:"Waktu selesai"`
	Lokasi       string `json:"lokasi"        validate:"required,max=255"               label:"Lokasi"`
	Petugas      string `json:"petugas"       validate:"required,max=255"               label:"Petugas"`
	Jenis        string `json:"jenis"         validate:"required,oneof=balita ibu_hamil" label:"Jenis"`
}

func (r JadwalRequest) ToJadwal(j *Jadwal) {
	tgl, _ := ParseDate(r.Tanggal)
	j.Judul = r.Judul
	j.Deskripsi = NullableString(r.Deskripsi)
	j.Tanggal = tgl
	j.WaktuMulai = r.WaktuMulai
	j.WaktuSelesai = r.WaktuSelesai
	j.Lokasi = r.Lokasi
	j.Petugas = r.Petugas
	j.Jenis = JenisJadwal(r.Jenis)
}
