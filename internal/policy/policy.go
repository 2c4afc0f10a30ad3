// Package policy menentukan operasi apa yang boleh dilakukan setiap peran.
package policy

import "github.com/ahmadqo/posyandu-desa/internal/model"

type Resource string

const (
	Balita     Resource = "balita"
	IbuHamil   Resource = "ibu_hamil"
	Jadwal     Resource = "jadwal"
	Pengaduan  Resource = "pengaduan"
	User       Resource = "user"
	Session    Resource = "session"
	Statistik  Resource = "statistik"
	Notifikasi Resource = "notifikasi"
)

type Operation string

const (
	List     Operation = "list"
	Read     Operation = "read"
	Create   Operation = "create"
	Update   Operation = "update"
	Delete   Operation = "delete"
	Upcoming Operation = "upcoming"
	Respond  Operation = "respond"
	Export   Operation = "export"
	Card     Operation = "card"
	Logout   Operation = "logout"
	Retry    Operation = "retry"
)

// audience adalah kelompok minimum yang boleh melakukan operasi.
type audience int

const (
	everyone audience = iota
	staff
	adminOnly
)

var rules = map[Resource]map[Operation]audience{
	Pengaduan: {
		Create:  everyone,
		List:    everyone,
		Read:    staff,
		Update:  staff,
		Delete:  staff,
		Respond: staff,
	},
	Jadwal: {
		List:     everyone,
		Read:     everyone,
		Upcoming: everyone,
		Create:   staff,
		Update:   staff,
		Delete:   staff,
	},
	Balita:   recordRules(),
	IbuHamil: recordRules(),
	Session: {
		Read:   staff,
		Logout: staff,
	},
	Statistik: {
		Read: staff,
	},
	// show user sengaja tidak ada
	User: {
		List:   adminOnly,
		Create: adminOnly,
		Update: adminOnly,
		Delete: adminOnly,
	},
	Notifikasi: {
		List:  adminOnly,
		Retry: adminOnly,
	},
}

func recordRules() map[Operation]audience {
	return map[Operation]audience{
		List:   staff,
		Read:   staff,
		Create: staff,
		Update: staff,
		Delete: staff,
		Export: staff,
		Card:   staff,
	}
}

// CanPerform melaporkan apakah identity boleh melakukan op pada res.
// identity nil berarti pengunjung anonim. Kombinasi yang tidak terdaftar
// selalu ditolak.
func CanPerform(identity *model.Identity, res Resource, op Operation) bool {
	aud, ok := rules[res][op]
	if !ok {
		return false
	}

	switch aud {
	case everyone:
		return true
	case staff:
		return identity != nil && identity.Role.Valid()
	case adminOnly:
		return identity != nil && identity.Role == model.RoleAdmin
	default:
		return false
	}
}
