// Package middleware holds the site's own HTTP middleware.
package middleware

import (
	"context"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"zoo-web/visitor"
)

// VisitorCookie names the cookie carrying the visitor id
const VisitorCookie = "zoo_visitor"

const visitorCookieMaxAge = 365 * 24 * 60 * 60

// VisitorLoader returns the visitor context for an id
type VisitorLoader interface {
	Get(ctx context.Context, visitorID string) (*visitor.Context, error)
}

// Visitor attaches the caller's visitor context to the request, issuing a
// new visitor cookie when the request has none or an invalid one
func Visitor(loader VisitorLoader, secure bool, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := ""
			if c, err := r.Cookie(VisitorCookie); err == nil {
				if _, err := uuid.Parse(c.Value); err == nil {
					id = c.Value
				}
			}
			if id == "" {
				id = uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     VisitorCookie,
					Value:    id,
					Path:     "/",
					MaxAge:   visitorCookieMaxAge,
					HttpOnly: true,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			vc, err := loader.Get(r.Context(), id)
			if err != nil {
				logger.Error("failed to load visitor", zap.String("visitor", id), zap.Error(err))
				http.Error(w, `{"error":"failed to load visitor"}`, http.StatusInternalServerError)
				return
			}
			next.ServeHTTP(w, r.WithContext(visitor.WithContext(r.Context(), vc)))
		})
	}
}

// Logger logs one line per request with zap
func Logger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				fields := []zap.Field{
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Int("status", ww.Status()),
					zap.Int("bytes", ww.BytesWritten()),
					zap.Duration("duration", time.Since(start)),
					zap.String("request_id", chimw.GetReqID(r.Context())),
				}
				if c, err := r.Cookie(VisitorCookie); err == nil {
					fields = append(fields, zap.String("visitor", c.Value))
				}
				logger.Info("request", fields...)
			}()
			next.ServeHTTP(ww, r)
		})
	}
}
