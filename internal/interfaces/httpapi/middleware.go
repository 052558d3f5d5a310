package httpapi

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/trace"

	"github.com/riskibarqy/sports-catalog/internal/platform/id"
	"github.com/riskibarqy/sports-catalog/internal/platform/logging"
	"github.com/riskibarqy/sports-catalog/internal/usecase"
)

const (
	headerAppSignature = "X-App-Signature"
	headerAppTimestamp = "X-App-Timestamp"
	headerRequestID    = "X-Request-Id"
)

// RequireAppSignature authenticates first-party clients: the caller
// sends a unix-second timestamp and hex(sha256(secret + timestamp)),
// and the timestamp must fall within the accepted window of now.
func RequireAppSignature(secret string, window time.Duration, clock clockwork.Clock, next http.Handler) http.Handler {
	expectedSecret := strings.TrimSpace(secret)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.RequireAppSignature")
		defer span.End()

		if expectedSecret == "" {
			writeError(ctx, w, fmt.Errorf("%w: app signature secret is not configured", usecase.ErrDependencyUnavailable))
			return
		}

		signature := strings.TrimSpace(r.Header.Get(headerAppSignature))
		timestamp := strings.TrimSpace(r.Header.Get(headerAppTimestamp))
		if signature == "" || timestamp == "" {
			writeError(ctx, w, fmt.Errorf("%w: missing app signature headers", usecase.ErrUnauthorized))
			return
		}

		sentAt, err := strconv.ParseInt(timestamp, 10, 64)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: malformed app timestamp", usecase.ErrUnauthorized))
			return
		}

		skew := clock.Now().UTC().Sub(time.Unix(sentAt, 0))
		if skew < 0 {
			skew = -skew
		}
		if skew > window {
			writeError(ctx, w, fmt.Errorf("%w: app timestamp outside accepted window", usecase.ErrUnauthorized))
			return
		}

		expected := computeAppSignature(expectedSecret, timestamp)
		if subtle.ConstantTimeCompare([]byte(expected), []byte(strings.ToLower(signature))) != 1 {
			writeError(ctx, w, fmt.Errorf("%w: invalid app signature", usecase.ErrUnauthorized))
			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func computeAppSignature(secret, timestamp string) string {
	sum := sha256.Sum256([]byte(secret + timestamp))
	return hex.EncodeToString(sum[:])
}

func RequestLogging(logger *logging.Logger, ids id.Generator, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.RequestLogging")
		defer span.End()

		requestID := strings.TrimSpace(r.Header.Get(headerRequestID))
		if requestID == "" {
			if generated, err := ids.NewID(); err == nil {
				requestID = generated
			}
		}
		w.Header().Set(headerRequestID, requestID)

		started := time.Now()
		next.ServeHTTP(w, r.WithContext(ctx))

		spanContext := trace.SpanContextFromContext(ctx)
		traceID := ""
		if spanContext.IsValid() {
			traceID = spanContext.TraceID().String()
		}

		logger.InfoContext(ctx, "http request",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"request_id", requestID,
			"duration_ms", time.Since(started).Milliseconds(),
			"trace_id", traceID,
		)
	})
}

func RequestTracing(next http.Handler) http.Handler {
	return otelhttp.NewHandler(next, "sports-catalog-http",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
		otelhttp.WithFilter(func(r *http.Request) bool {
			return shouldTraceRequest(r.URL.Path)
		}),
	)
}

func shouldTraceRequest(path string) bool {
	normalized := strings.ToLower(strings.TrimSpace(path))
	switch normalized {
	case "/healthz", "/health", "/livez", "/readyz":
		return false
	default:
		return true
	}
}

func CORS(allowedOrigins []string, next http.Handler) http.Handler {
	allowAll := false
	allowMap := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		candidate := strings.TrimSpace(origin)
		if candidate == "" {
			continue
		}
		if candidate == "*" {
			allowAll = true
			continue
		}
		allowMap[candidate] = struct{}{}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.CORS")
		defer span.End()

		origin := strings.TrimSpace(r.Header.Get("Origin"))
		if origin == "" {
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		allowed := allowAll
		if !allowed {
			_, allowed = allowMap[origin]
		}
		if allowed {
			if allowAll {
				w.Header().Set("Access-Control-Allow-Origin", "*")
			} else {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Add("Vary", "Origin")
			}
			w.Header().Set("Access-Control-Allow-Methods", "GET,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type,Accept,"+headerAppSignature+","+headerAppTimestamp)
			w.Header().Set("Access-Control-Max-Age", "600")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
