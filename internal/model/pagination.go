package model

import "math"

// PerPage adalah jumlah data per halaman untuk semua listing.
const PerPage = 10

// ListFilter adalah parameter query untuk listing.
// Status berisi nilai filter eksak (status_gizi, status_kehamilan, jenis,
// status atau role) sesuai resource.
type ListFilter struct {
	Search string
	Status string
	Page   int
}

func (f ListFilter) Normalize() ListFilter {
	if f.Page <= 0 {
		f.Page = 1
	}
	return f
}

// Offset tidak pernah negatif; halaman yang terlalu besar dibatasi ke
// offset maksimum alih-alih overflow.
func (f ListFilter) Offset() int {
	page := f.Normalize().Page
	if page-1 > math.MaxInt/PerPage {
		return math.MaxInt / PerPage * PerPage
	}
	return (page - 1) * PerPage
}

// PastLastPage melaporkan apakah halaman f berada setelah halaman terakhir
// untuk total baris tertentu.
func (f ListFilter) PastLastPage(total int64) bool {
	lastPage := (total + PerPage - 1) / PerPage
	return int64(f.Normalize().Page) > lastPage
}
