package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/ahmadqo/posyandu-desa/internal/model"
	"github.com/ahmadqo/posyandu-desa/internal/policy"
	"github.com/ahmadqo/posyandu-desa/internal/response"
	"github.com/ahmadqo/posyandu-desa/internal/service"
)

type contextKey string

const ContextKeyIdentity contextKey = "identity"

// Verifier mengubah bearer token menjadi Identity.
type Verifier interface {
	Verify(ctx context.Context, token string) (*model.Identity, error)
}

// Authenticate membaca bearer token jika ada. Request tanpa token atau
// dengan token tidak valid diteruskan sebagai anonim; Authorize yang
// memutuskan apakah anonim boleh lewat.
func Authenticate(v Verifier, log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := BearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			identity, err := v.Verify(r.Context(), token)
			if err != nil {
				if errors.Is(err, service.ErrUnauthenticated) {
					next.ServeHTTP(w, r)
					return
				}
				log.Error("gagal verifikasi token", zap.Error(err), zap.String("path", r.URL.Path))
				response.InternalError(w, "Terjadi kesalahan pada server")
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyIdentity, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Authorize menolak request yang tidak diizinkan policy: 401 untuk anonim,
// 403 untuk user yang sudah login.
func Authorize(res policy.Resource, op policy.Operation) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity := IdentityFromContext(r.Context())
			if policy.CanPerform(identity, res, op) {
				next.ServeHTTP(w, r)
				return
			}
			if identity == nil {
				response.Unauthorized(w, "Silakan login terlebih dahulu")
				return
			}
			response.Forbidden(w, service.ErrForbidden.Error())
		})
	}
}

// BearerToken mengambil token dari header "Authorization: Bearer <token>".
func BearerToken(r *http.Request) string {
	parts := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// IdentityFromContext mengembalikan nil untuk request anonim.
func IdentityFromContext(ctx context.Context) *model.Identity {
	identity, _ := ctx.Value(ContextKeyIdentity).(*model.Identity)
	return identity
}

// WithIdentity dipakai test dan kode lain yang perlu menyusun context login.
func WithIdentity(ctx context.Context, identity *model.Identity) context.Context {
	return context.WithValue(ctx, ContextKeyIdentity, identity)
}
