package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	_ "github.com/ahmadqo/posyandu-desa/docs" // swagger spec
	appMiddleware "github.com/ahmadqo/posyandu-desa/internal/middleware"
	"github.com/ahmadqo/posyandu-desa/internal/policy"
	"github.com/ahmadqo/posyandu-desa/internal/response"
)

// Handlers mengumpulkan semua handler resource untuk router.
type Handlers struct {
	Auth       *AuthHandler
	Balita     *BalitaHandler
	IbuHamil   *IbuHamilHandler
	Jadwal     *JadwalHandler
	Pengaduan  *PengaduanHandler
	User       *UserHandler
	Notifikasi *NotifikasiHandler
	Statistik  *StatistikHandler
}

type Router struct {
	h           Handlers
	verifier    appMiddleware.Verifier
	corsOrigins []string
	log         *zap.Logger
}

func NewRouter(h Handlers, verifier appMiddleware.Verifier, corsOrigins []string, log *zap.Logger) *Router {
	return &Router{h: h, verifier: verifier, corsOrigins: corsOrigins, log: log}
}

func (ro *Router) Setup() http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(appMiddleware.RequestLogger(ro.log))
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   ro.corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Halaman tidak ditemukan")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, http.StatusMethodNotAllowed, response.MessageResponse{Message: "Metode tidak diizinkan"})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		response.Data(w, map[string]string{"status": "ok"})
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	can := appMiddleware.Authorize

	r.Route("/api", func(r chi.Router) {
		r.Use(appMiddleware.Authenticate(ro.verifier, ro.log))

		// ── Auth ─────────────────────────────────────────
		r.Post("/login", ro.h.Auth.Login)
		r.With(can(policy.Session, policy.Logout)).Post("/logout", ro.h.Auth.Logout)
		r.With(can(policy.Session, policy.Read)).Get("/user", ro.h.Auth.Me)

		r.With(can(policy.Statistik, policy.Read)).Get("/statistik", ro.h.Statistik.Get)

		// ── Balita ───────────────────────────────────────
		r.Route("/balita", func(r chi.Router) {
			r.With(can(policy.Balita, policy.List)).Get("/", ro.h.Balita.GetAll)
			r.With(can(policy.Balita, policy.Create)).Post("/", ro.h.Balita.Create)
			r.With(can(policy.Balita, policy.Export)).Get("/export", ro.h.Balita.Export)
			r.With(can(policy.Balita, policy.Read)).Get("/{id}", ro.h.Balita.GetByID)
			r.With(can(policy.Balita, policy.Update)).Put("/{id}", ro.h.Balita.Update)
			r.With(can(policy.Balita, policy.Delete)).Delete("/{id}", ro.h.Balita.Delete)
			r.With(can(policy.Balita, policy.Card)).Get("/{id}/kartu", ro.h.Balita.Kartu)
		})

		// ── Ibu hamil ────────────────────────────────────
		r.Route("/ibu-hamil", func(r chi.Router) {
			r.With(can(policy.IbuHamil, policy.List)).Get("/", ro.h.IbuHamil.GetAll)
			r.With(can(policy.IbuHamil, policy.Create)).Post("/", ro.h.IbuHamil.Create)
			r.With(can(policy.IbuHamil, policy.Export)).Get("/export", ro.h.IbuHamil.Export)
			r.With(can(policy.IbuHamil, policy.Read)).Get("/{id}", ro.h.IbuHamil.GetByID)
			r.With(can(policy.IbuHamil, policy.Update)).Put("/{id}", ro.h.IbuHamil.Update)
			r.With(can(policy.IbuHamil, policy.Delete)).Delete("/{id}", ro.h.IbuHamil.Delete)
			r.With(can(policy.IbuHamil, policy.Card)).Get("/{id}/kartu", ro.h.IbuHamil.Kartu)
		})

		// ── Jadwal (baca publik) ─────────────────────────
		r.Route("/jadwal", func(r chi.Router) {
			r.With(can(policy.Jadwal, policy.List)).Get("/", ro.h.Jadwal.GetAll)
			r.With(can(policy.Jadwal, policy.Upcoming)).Get("/upcoming", ro.h.Jadwal.Upcoming)
			r.With(can(policy.Jadwal, policy.Read)).Get("/{id}", ro.h.Jadwal.GetByID)
			r.With(can(policy.Jadwal, policy.Create)).Post("/", ro.h.Jadwal.Create)
			r.With(can(policy.Jadwal, policy.Update)).Put("/{id}", ro.h.Jadwal.Update)
			r.With(can(policy.Jadwal, policy.Delete)).Delete("/{id}", ro.h.Jadwal.Delete)
		})

		// ── Pengaduan (kirim dan daftar publik) ──────────
		r.Route("/pengaduan", func(r chi.Router) {
			r.With(can(policy.Pengaduan, policy.List)).Get("/", ro.h.Pengaduan.GetAll)
			r.With(can(policy.Pengaduan, policy.Create)).Post("/", ro.h.Pengaduan.Create)
			r.With(can(policy.Pengaduan, policy.Read)).Get("/{id}", ro.h.Pengaduan.GetByID)
			r.With(can(policy.Pengaduan, policy.Update)).Put("/{id}", ro.h.Pengaduan.Update)
			r.With(can(policy.Pengaduan, policy.Delete)).Delete("/{id}", ro.h.Pengaduan.Delete)
			r.With(can(policy.Pengaduan, policy.Respond)).Post("/{id}/respond", ro.h.Pengaduan.Respond)
		})

		// ── Admin ────────────────────────────────────────
		r.Route("/users", func(r chi.Router) {
			r.With(can(policy.User, policy.List)).Get("/", ro.h.User.GetAll)
			r.With(can(policy.User, policy.Create)).Post("/", ro.h.User.Create)
			r.With(can(policy.User, policy.Update)).Put("/{id}", ro.h.User.Update)
			r.With(can(policy.User, policy.Delete)).Delete("/{id}", ro.h.User.Delete)
		})

		r.Route("/notifikasi", func(r chi.Router) {
			r.With(can(policy.Notifikasi, policy.List)).Get("/", ro.h.Notifikasi.GetAll)
			r.With(can(policy.Notifikasi, policy.Retry)).Post("/{id}/retry", ro.h.Notifikasi.Retry)
		})
	})

	return r
}
