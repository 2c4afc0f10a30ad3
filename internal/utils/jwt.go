package utils

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("token tidak valid")

// TokenClaims adalah isi bearer token. Role hanya informasi; hak akses
// selalu dibaca ulang dari database saat verifikasi.
type TokenClaims struct {
	UserID int64  `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// IssuedToken adalah token yang baru dibuat beserta id dan masa berlakunya.
type IssuedToken struct {
	Token     string
	ID        string
	ExpiresAt time.Time
}

func GenerateToken(userID int64, role, secret string, ttl time.Duration) (*IssuedToken, error) {
	now := time.Now()
	exp := now.Add(ttl)
	jti := uuid.NewString()

	c := TokenClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Subject:   strconv.FormatInt(userID, 10),
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(secret))
	if err != nil {
		return nil, err
	}
	return &IssuedToken{Token: signed, ID: jti, ExpiresAt: exp}, nil
}

func ValidateToken(tokenString, secret string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid || claims.ID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
