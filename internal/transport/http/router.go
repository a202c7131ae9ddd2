package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-otp-api/internal/application/notify"
	"github.com/go-otp-api/internal/application/otp"
	"github.com/go-otp-api/internal/config"
	"github.com/go-otp-api/internal/transport/http/handler"
	appmiddleware "github.com/go-otp-api/internal/transport/http/middleware"
	"golang.org/x/time/rate"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	var authMw func(http.Handler) http.Handler
	if deps.JWTProvider != nil {
		authMw = appmiddleware.Auth(deps.JWTProvider)
	} else {
		authMw = func(next http.Handler) http.Handler { return next }
	}

	// 5 requests/second, burst of 10 — all OTP endpoints are public and
	// code issuance triggers outbound mail, so keep them behind a limiter.
	sensitiveRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	notifSvc := notify.NewService(deps.Mailer, deps.SMSSender, deps.DeadLetters, notify.Branding{
		AppName:  cfg.AppName,
		AppColor: cfg.AppColor,
		LogoURL:  cfg.LogoURL,
	})
	otpSvc := otp.NewService(otp.ServiceDeps{
		Verifications: deps.VerificationRepo,
		Accounts:      deps.AccountRepo,
		Notifier:      notifSvc,
	})

	healthH := handler.NewHealthHandler()
	pwH := handler.NewPasswordResetHandler(otpSvc)
	evH := handler.NewEmailVerificationHandler(otpSvc)
	hooksH := handler.NewHooksHandler(notifSvc)

	r.Route("/v1", func(r chi.Router) {
		// ── Public routes (no auth) ──────────────────────────────────────────
		r.Get("/health-check/{action}", healthH.Ping)
		r.Post("/health-check/{action}", healthH.Ping)
		r.With(sensitiveRL.Limit).Post("/password-reset/{action}", pwH.Action)
		r.With(sensitiveRL.Limit).Post("/email-verification/{action}", evH.Action)

		// ── Service-to-service routes ────────────────────────────────────────
		r.Group(func(r chi.Router) {
			r.Use(authMw)
			r.Post("/hooks/account-created", hooksH.AccountCreated)
		})
	})

	return r
}
