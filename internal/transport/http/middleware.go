package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/YusovID/refugee-case-service/internal/apperrors"
	"github.com/YusovID/refugee-case-service/internal/domain"
	"github.com/YusovID/refugee-case-service/pkg/api"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type contextKey string

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = contextKey("requestID")
	actorKey        = contextKey("actor")
)

func (s *Server) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := getRequestID(r.Context())

		log := s.log.With(
			slog.String("request_id", requestID),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr),
			slog.String("user_agent", r.UserAgent()),
		)
		log.Info("request started")

		t1 := time.Now()

		next.ServeHTTP(w, r)

		log.Info("request completed",
			slog.String("duration", time.Since(t1).String()),
		)
	})
}

func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		w.Header().Set(requestIDHeader, requestID)

		ctx := context.WithValue(r.Context(), requestIDKey, requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func getRequestID(ctx context.Context) string {
	if reqID, ok := ctx.Value(requestIDKey).(string); ok {
		return reqID
	}

	return ""
}

// authenticate resolves the bearer token to an actor and stores it in the
// request context. Operations the OpenAPI document marks as public carry no
// bearer scopes and pass through untouched. The actor is loaded from the
// store on every request so a deleted account stops working immediately.
func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		const op = "internal.transport.http.authenticate"

		if _, secured := r.Context().Value(api.BearerScopes).([]string); !secured {
			next.ServeHTTP(w, r)
			return
		}

		header := r.Header.Get("Authorization")
		scheme, raw, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "bearer") || raw == "" {
			s.handleServiceError(w, r, op, fmt.Errorf("%w: missing bearer token", apperrors.ErrUnauthorized))
			return
		}

		actorID, err := s.tokens.Parse(raw)
		if err != nil {
			s.handleServiceError(w, r, op, err)
			return
		}

		actor, err := s.svc.Actors.GetActor(r.Context(), actorID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				err = fmt.Errorf("%w: unknown actor", apperrors.ErrUnauthorized)
			}
			s.handleServiceError(w, r, op, err)
			return
		}

		ctx := context.WithValue(r.Context(), actorKey, *actor)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// submissionRoutes are the operations counted by limitSubmissions.
var submissionRoutes = map[string]bool{
	"/housing/{id}/apply": true,
	"/jobs/{id}/apply":    true,
}

// limitSubmissions caps application submissions per actor. It must run
// after authenticate.
func (s *Server) limitSubmissions(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		const op = "internal.transport.http.limitSubmissions"

		if s.limiter == nil || !isSubmission(r) {
			next.ServeHTTP(w, r)
			return
		}

		actor, _ := actorFromContext(r.Context())
		if !s.limiter.Allow(r.Context(), actor.ID) {
			w.Header().Set("Retry-After", retryAfter(s.limiter.Window()))
			s.handleServiceError(w, r, op, apperrors.ErrRateLimited)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func isSubmission(r *http.Request) bool {
	rctx := chi.RouteContext(r.Context())
	return rctx != nil && r.Method == http.MethodPost && submissionRoutes[rctx.RoutePattern()]
}

// retryAfter renders window as whole seconds, rounded up and at least one.
func retryAfter(window time.Duration) string {
	secs := int64(math.Ceil(window.Seconds()))
	if secs < 1 {
		secs = 1
	}

	return strconv.FormatInt(secs, 10)
}

func actorFromContext(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorKey).(domain.Actor)
	return actor, ok
}
