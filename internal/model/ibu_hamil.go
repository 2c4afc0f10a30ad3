package model

import "time"

type IbuHamil struct {
	ID                    int64     `db:"id"                      json:"id"`
	Nama                  string    `db:"nama"                    json:"nama"`
	NIK                   string    `db:"nik"                     json:"nik"`
	TempatLahir           string    `db:"tempat_lahir"            json:"tempat_lahir"`
	TanggalLahir          Date      `db:"tanggal_lahir"           json:"tanggal_lahir"`
	Alamat                string    `db:"alamat"                  json:"alamat"`
	NoHP                  string    `db:"no_hp"                   json:"no_hp"`
	NamaSuami             string    `db:"nama_suami"              json:"nama_suami"`
	NIKSuami              string    `db:"nik_suami"               json:"nik_suami"`
	PekerjaanSuami        string    `db:"pekerjaan_suami"         json:"pekerjaan_suami"`
	HPHT                  Date      `db:"hpht"                    json:"hpht"`
	TanggalPeriksaPertama Date      `db:"tanggal_periksa_pertama" json:"tanggal_periksa_pertama"`
	StatusKehamilan       string    `db:"status_kehamilan"        json:"status_kehamilan"`
	ResikoKehamilan       string    `db:"resiko_kehamilan"        json:"resiko_kehamilan"`
	BeratBadan            float64   `db:"berat_badan"             json:"berat_badan"`
	TinggiBadan           float64   `db:"tinggi_badan"            json:"tinggi_badan"`
	LILA                  float64   `db:"lila"                    json:"lila"`
	TekananDarah          string    `db:"tekanan_darah"           json:"tekanan_darah"`
	Hemoglobin            float64   `db:"hemoglobin"              json:"hemoglobin"`
	GolonganDarah         string    `db:"golongan_darah"          json:"golongan_darah"`
	Catatan               *string   `db:"catatan"                 json:"catatan"`
	CreatedAt             time.Time `db:"created_at"              json:"created_at"`
	UpdatedAt             time.Time `db:"updated_at"              json:"updated_at"`
}

// IbuHamilView menambahkan usia kehamilan dan trimester yang dihitung dari HPHT.
type IbuHamilView struct {
	*IbuHamil
	UsiaKehamilan string `json:"usia_kehamilan"`
	TrimesterHPHT int    `json:"trimester_hpht"`
}

type IbuHamilRequest struct {
	Nama                  string `json:"nama"                    validate:"required,max=255"                                   label:"Nama"`
	NIK                   string `json:"nik"                     validate:"required,nik"                                       label:"NIK"`
	TempatLahir           string `json:"tempat_lahir"            validate:"required,max=255"                                   label:"Tempat lahir"`
	TanggalLahir          string `json:"tanggal_lahir"           validate:"required,date"                                      label:"Tanggal lahir"`
	Alamat                string `json:"alamat"                  validate:"required"                                           label:"Alamat"`
	NoHP                  string `json:"no_hp"                   validate:"required,max=15"                                    label:"No. HP"`
	NamaSuami             string `json:"nama_suami"              validate:"required,max=255"                                   label:"Nama suami"`
	NIKSuami              string `json:"nik_suami"               validate:"required,nik"                                       label:"NIK suami"`
	PekerjaanSuami        string `json:"pekerjaan_suami"         validate:"required,max=255"                                   label:"Pekerjaan suami"`
	HPHT                  string `json:"hpht"                    validate:"required,date"                                      label:"HPHT"`
	TanggalPeriksaPertama string `json:"tanggal_periksa_pertama" validate:"required,date"                                      label:"Tanggal periksa pertama"`
	StatusKehamilan       string `json:"status_kehamilan"        validate:"required,oneof=trimester_1 trimester_2 trimester_3" label:"Status kehamilan"`
	ResikoKehamilan       string `json:"resiko_kehamilan"        validate:"required,oneof=rendah sedang tinggi"                label:"Resiko kehamilan"`
	BeratBadan            Number `json:"berat_badan"             validate:"required,numeric,min=30,max=150"                    label:"Berat badan"`
	TinggiBadan           Number `json:"tinggi_badan"            validate:"required,numeric,min=100,max=220"                   label:"Tinggi badan"`
	LILA                  Number `json:"lila"                    validate:"required,numeric,min=10,max=50"                     label:"LILA"`
	TekananDarah          string `json:"tekanan_darah"           validate:"required,blood_pressure"                            label:"Tekanan darah"`
	Hemoglobin            Number `json:"hemoglobin"              validate:"required,numeric,min=5,max=20"                      label:"Hemoglobin"`
	GolonganDarah         string `json:"golongan_darah"          validate:"required,oneof=A B AB O"                            label:"Golongan darah"`
	Catatan               string `json:"catatan"                                                                               label:"Catatan"`
}

func (r IbuHamilRequest) ToIbuHamil(ih *IbuHamil) {
	tglLahir, _ := ParseDate(r.TanggalLahir)
	hpht, _ := ParseDate(r.HPHT)
	periksa, _ := ParseDate(r.TanggalPeriksaPertama)

	ih.Nama = r.Nama
	ih.NIK = r.NIK
	ih.TempatLahir = r.TempatLahir
	ih.TanggalLahir = tglLahir
	ih.Alamat = r.Alamat
	ih.NoHP = r.NoHP
	ih.NamaSuami = r.NamaSuami
	ih.NIKSuami = r.NIKSuami
	ih.PekerjaanSuami = r.PekerjaanSuami
	ih.HPHT = hpht
	ih.TanggalPeriksaPertama = periksa
	ih.StatusKehamilan = r.StatusKehamilan
	ih.ResikoKehamilan = r.ResikoKehamilan
	ih.BeratBadan = r.BeratBadan.Value
	ih.TinggiBadan = r.TinggiBadan.Value
	ih.LILA = r.LILA.Value
	ih.TekananDarah = r.TekananDarah
	ih.Hemoglobin = r.Hemoglobin.Value
	ih.GolonganDarah = r.GolonganDarah
	ih.Catatan = NullableString(r.Catatan)
}
