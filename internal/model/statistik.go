package model

// Statistik adalah ringkasan hitungan untuk dashboard.
type Statistik struct {
	TotalBalita        int64            `json:"total_balita"`
	BalitaPerGizi      map[string]int64 `json:"balita_per_status_gizi"`
	TotalIbuHamil      int64            `json:"total_ibu_hamil"`
	IbuHamilPerResiko  map[string]int64 `json:"ibu_hamil_per_resiko"`
	JadwalMendatang    int64            `json:"jadwal_mendatang"`
	TotalPengaduan     int64            `json:"total_pengaduan"`
	PengaduanPerStatus map[string]int64 `json:"pengaduan_per_status"`
	UserPerRole        map[string]int64 `json:"user_per_role,omitempty"`
}
