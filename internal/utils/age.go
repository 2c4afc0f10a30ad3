package utils

import (
	"fmt"
	"time"
)

// Age adalah selisih kalender antara dua tanggal.
type Age struct {
	Years  int
	Months int
	Days   int
}

// CalculateAge menghitung umur pada tanggal asOf. Jika hari negatif, pinjam
// jumlah hari bulan sebelum asOf; jika bulan negatif, pinjam 12 bulan.
func CalculateAge(birth, asOf time.Time) Age {
	years := asOf.Year() - birth.Year()
	months := int(asOf.Month()) - int(birth.Month())
	days := asOf.Day() - birth.Day()

	// tanggal 29-31 bisa perlu pinjam lebih dari satu bulan (mis. 31 Jan -> 1 Mar)
	borrow := asOf.Month() - 1
	for days < 0 {
		months--
		days += daysInMonth(asOf.Year(), borrow)
		borrow--
	}
	if months < 0 {
		years--
		months += 12
	}
	return Age{Years: years, Months: months, Days: days}
}

func (a Age) String() string {
	switch {
	case a.Years > 0:
		if a.Months > 0 {
			return fmt.Sprintf("%d tahun %d bulan", a.Years, a.Months)
		}
		return fmt.Sprintf("%d tahun", a.Years)
	case a.Months > 0:
		if a.Days > 0 {
			return fmt.Sprintf("%d bulan %d hari", a.Months, a.Days)
		}
		return fmt.Sprintf("%d bulan", a.Months)
	default:
		return fmt.Sprintf("%d hari", a.Days)
	}
}

// daysInMonth menerima month 0 sebagai Desember tahun sebelumnya.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

type GestationalAge struct {
	Weeks int
	Days  int
}

// CalculateGestationalAge memakai selisih hari kalender antara HPHT dan asOf.
func CalculateGestationalAge(hpht, asOf time.Time) GestationalAge {
	days := calendarDays(hpht, asOf)
	if days < 0 {
		days = -days
	}
	return GestationalAge{Weeks: days / 7, Days: days % 7}
}

func (g GestationalAge) String() string {
	return fmt.Sprintf("%d minggu %d hari", g.Weeks, g.Days)
}

// TrimesterFromWeeks: sampai minggu 13 trimester 1, sampai 27 trimester 2.
func TrimesterFromWeeks(weeks int) int {
	switch {
	case weeks <= 13:
		return 1
	case weeks <= 27:
		return 2
	default:
		return 3
	}
}

func calendarDays(from, to time.Time) int {
	a := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
