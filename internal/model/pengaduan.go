package model

import "time"

type StatusPengaduan string

const (
	StatusBaru     StatusPengaduan = "baru"
	StatusDiproses StatusPengaduan = "diproses"
	StatusSelesai  StatusPengaduan = "selesai"
)

type Pengaduan struct {
	ID        int64           `db:"id"         json:"id"`
	Nama      string          `db:"nama"       json:"nama"`
	NIK       string          `db:"nik"        json:"nik,omitempty"`
	Email     string          `db:"email"      json:"email,omitempty"`
	NoHP      string          `db:"no_hp"      json:"no_hp,omitempty"`
	Kategori  string          `db:"kategori"   json:"kategori"`
	Subjek    string          `db:"subjek"     json:"subjek"`
	Pesan     string          `db:"pesan"      json:"pesan"`
	Status    StatusPengaduan `db:"status"     json:"status"`
	Tanggapan *string         `db:"tanggapan"  json:"tanggapan"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt time.Time       `db:"updated_at" json:"updated_at"`
}

// Redacted menyembunyikan data pribadi pelapor untuk pengunjung anonim.
func (p Pengaduan) Redacted() *Pengaduan {
	p.NIK = ""
	p.Email = ""
	p.NoHP = ""
	return &p
}

type CreatePengaduanRequest struct {
	Nama     string `json:"nama"     validate:"required,max=255"                                              label:"Nama"`
	NIK      string `json:"nik"      validate:"required,nik"                                                  label:"NIK"`
	Email    string `json:"email"    validate:"required,email,max=255"                                        label:"Email"`
	NoHP     string `json:"no_hp"    validate:"required,max=15"                                               label:"No. HP"`
	Kategori string `json:"kategori" validate:"required,oneof=pelayanan informasi kritik_saran pengaduan_lain" label:"Kategori"`
	Subjek   string `json:"subjek"   validate:"required,max=255"                                              label:"Subjek"`
	Pesan    string `json:"pesan"    validate:"required,min=20"                                               label:"Pesan"`
}

// UpdatePengaduanRequest untuk perubahan umum; tidak mengirim notifikasi.
// Field yang tidak dikirim tidak diubah, tetapi status yang dikirim tidak
// boleh kosong.
type UpdatePengaduanRequest struct {
	Status    *string `json:"status"    validate:"omitnil,required,oneof=baru diproses selesai" label:"Status"`
	Tanggapan *string `json:"tanggapan"                                                         label:"Tanggapan"`
}

type RespondPengaduanRequest struct {
	Response string `json:"response" validate:"required" label:"Tanggapan"`
}
