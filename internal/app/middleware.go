package app

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/unrolled/secure"
)

const defaultRateWindow = time.Minute

// MiddlewareStack installs the Paperdesk middleware chain: security headers,
// per-IP rate limiting and the usual chi request plumbing.
func MiddlewareStack(cfg *Config) []func(http.Handler) http.Handler {
	secureMiddleware := secure.New(secure.Options{
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		BrowserXssFilter:      true,
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: "default-src 'self'",
		SSLRedirect:           cfg != nil && cfg.IsProduction(),
		SSLProxyHeaders:       map[string]string{"X-Forwarded-Proto": "https"},
	})

	limit := 120
	window := defaultRateWindow
	if cfg != nil {
		if cfg.RateLimit > 0 {
			limit = cfg.RateLimit
		}
		if cfg.RateLimitWindow > 0 {
			window = cfg.RateLimitWindow
		}
	}

	return []func(http.Handler) http.Handler{
		chimw.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		secureMiddleware.Handler,
		httprate.LimitByIP(limit, window),
	}
}
