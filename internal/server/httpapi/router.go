// Package httpapi serves the small HTTP surface next to gRPC: a health check
// and the admin overview for dashboards that cannot speak gRPC.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophportal/internal/aggregate"
	"github.com/dmitrijs2005/gophportal/internal/common"
	"github.com/dmitrijs2005/gophportal/internal/domain"
	"github.com/dmitrijs2005/gophportal/internal/logging"
	"github.com/dmitrijs2005/gophportal/internal/server/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
)

// OverviewSource produces the admin overview.
type OverviewSource interface {
	Overview(ctx context.Context) (aggregate.Overview, error)
}

// TenantLister lists the tenant directory.
type TenantLister interface {
	List() []domain.Tenant
}

// RouterConfig holds the router dependencies.
type RouterConfig struct {
	Logger    logging.Logger
	Overview  OverviewSource
	Tenants   TenantLister
	JWTSecret []byte
	// RateLimit is the per-IP request budget per minute; 0 disables limiting.
	RateLimit int
}

// NewRouter creates the HTTP router with all routes registered.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(Logging(cfg.Logger))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Group(func(r chi.Router) {
		if cfg.RateLimit > 0 {
			r.Use(RateLimit(cfg.RateLimit, time.Minute, cfg.Logger))
		}
		r.Use(RequireAdmin(cfg.JWTSecret))

		r.Get("/v1/overview", func(w http.ResponseWriter, r *http.Request) {
			ov, err := cfg.Overview.Overview(r.Context())
			if err != nil {
				cfg.Logger.Error(r.Context(), "overview failed", "error", err)
				writeError(w, http.StatusInternalServerError, "internal error")
				return
			}
			writeJSON(w, http.StatusOK, ov)
		})

		r.Get("/v1/tenants", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{"tenants": cfg.Tenants.List()})
		})
	})

	return r
}

// RateLimit creates an IP-based rate limiter that logs rejected requests.
func RateLimit(requests int, window time.Duration, logger logging.Logger) func(http.Handler) http.Handler {
	return httprate.Limit(
		requests,
		window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			logger.Warn(r.Context(), "rate limit exceeded", "ip", r.RemoteAddr, "path", r.URL.Path)
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded. please try again later")
		}),
	)
}

type ctxKey string

const identityKey ctxKey = "identity"

// IdentityFrom returns the identity stored by RequireAdmin.
func IdentityFrom(ctx context.Context) (domain.Identity, bool) {
	id, ok := ctx.Value(identityKey).(domain.Identity)
	return id, ok
}

// RequireAdmin validates a bearer access token and rejects non-admins.
func RequireAdmin(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var token string
			parts := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				token = strings.TrimSpace(parts[1])
			}
			if token == "" {
				writeError(w, http.StatusUnauthorized, "missing authorization")
				return
			}

			id, err := auth.ParseToken(token, secret)
			if err != nil {
				msg := "invalid token"
				if errors.Is(err, common.ErrTokenExpired) {
					msg = "token expired"
				}
				writeError(w, http.StatusUnauthorized, msg)
				return
			}
			if !id.IsAdmin() {
				writeError(w, http.StatusForbidden, "admin role required")
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), identityKey, id)))
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
