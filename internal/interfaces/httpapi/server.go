package httpapi

import (
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/riskibarqy/sports-catalog/internal/platform/id"
	"github.com/riskibarqy/sports-catalog/internal/platform/logging"
)

// RouterConfig carries the knobs the router wires into middleware.
// An empty AppSecret disables the signature gate entirely.
type RouterConfig struct {
	AppSecret          string
	SignatureWindow    time.Duration
	CORSAllowedOrigins []string
}

func NewRouter(
	handler *Handler,
	logger *logging.Logger,
	ids id.Generator,
	clock clockwork.Clock,
	cfg RouterConfig,
) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}
	if ids == nil {
		ids = id.NewRandomGenerator()
	}

	guard := func(next http.Handler) http.Handler { return next }
	if cfg.AppSecret != "" {
		guard = func(next http.Handler) http.Handler {
			return RequireAppSignature(cfg.AppSecret, cfg.SignatureWindow, clock, next)
		}
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler)
	registerCatalogRoutes(mux, handler, guard)

	return RequestTracing(RequestLogging(logger, ids, CORS(cfg.CORSAllowedOrigins, recoverPanic(logger, mux))))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
