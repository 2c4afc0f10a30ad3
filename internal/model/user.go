package model

import "time"

type Role string

const (
	RoleAdmin Role = "admin"
	RoleKader Role = "kader"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleKader
}

type User struct {
	ID        int64     `db:"id"         json:"id"`
	Name      string    `db:"name"       json:"name"`
	Email     string    `db:"email"      json:"email"`
	Password  string    `db:"password"   json:"-"` // never expose hash
	Role      Role      `db:"role"       json:"role"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Identity adalah user yang sedang login, hasil verifikasi token.
type Identity struct {
	UserID int64
	Name   string
	Email  string
	Role   Role
	// TokenID adalah jti dari token yang dipakai pada request ini.
	TokenID string
}

func (u *User) Identity(tokenID string) *Identity {
	return &Identity{
		UserID:  u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Role:    u.Role,
		TokenID: tokenID,
	}
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"  label:"Email"`
	Password string `json:"password" validate:"required"        label:"Password"`
}

// MeResponse dibungkus sama seperti LoginResponse agar client membaca
// data.user pada kedua endpoint.
type MeResponse struct {
	User *User `json:"user"`
}

type LoginResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

type CreateUserRequest struct {
	Name     string `json:"name"     validate:"required,max=255"                label:"Nama"`
	Email    string `json:"email"    validate:"required,email,max=255"          label:"Email"`
	Password string `json:"password" validate:"required,min=6"                  label:"Password"`
	Role     string `json:"role"     validate:"required,oneof=admin kader"      label:"Role"`
}

// UpdateUserRequest: password kosong berarti tidak diubah.
type UpdateUserRequest struct {
	Name     string `json:"name"     validate:"required,max=255"                label:"Nama"`
	Email    string `json:"email"    validate:"required,email,max=255"          label:"Email"`
	Password string `json:"password" validate:"omitempty,min=6"                 label:"Password"`
	Role     string `json:"role"     validate:"required,oneof=admin kader"      label:"Role"`
}
