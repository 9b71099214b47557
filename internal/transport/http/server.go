// package http implements the HTTP transport layer for the service.
// It authenticates the caller, decodes requests, calls the services with the
// acting actor and encodes the responses.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/YusovID/refugee-case-service/internal/apperrors"
	"github.com/YusovID/refugee-case-service/internal/ratelimit"
	"github.com/YusovID/refugee-case-service/internal/service"
	"github.com/YusovID/refugee-case-service/internal/validation"
	"github.com/YusovID/refugee-case-service/pkg/api"
	"github.com/YusovID/refugee-case-service/pkg/logger/sl"
	"github.com/YusovID/refugee-case-service/swagger"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// TokenIssuer signs and verifies bearer tokens carrying an actor id.
type TokenIssuer interface {
	Issue(actorID string) (string, time.Time, error)
	Parse(raw string) (string, error)
}

// Services bundles the application services the handlers call.
type Services struct {
	Actors      service.ActorService
	Profiles    service.ProfileService
	Listings    service.ListingService
	HousingApps service.HousingApplicationService
	JobApps     service.JobApplicationService
}

// Server holds the dependencies for the HTTP server.
type Server struct {
	log     *slog.Logger
	svc     Services
	tokens  TokenIssuer
	limiter ratelimit.Limiter
}

var _ api.ServerInterface = (*Server)(nil)

// NewServer creates a new instance of the HTTP server.
func NewServer(log *slog.Logger, svc Services, tokens TokenIssuer, limiter ratelimit.Limiter) *Server {
	return &Server{
		log:     log,
		svc:     svc,
		tokens:  tokens,
		limiter: limiter,
	}
}

// Routes sets up the router with all middleware and API endpoints.
func (s *Server) Routes() http.Handler {
	mux := chi.NewRouter()

	mux.Use(s.requestID)
	mux.Use(s.logRequest)
	mux.Use(s.metricsMiddleware)

	swaggerHandler, err := swagger.GetHandler()
	if err != nil {
		s.log.Error("failed to get swagger handler", sl.Err(err))
	} else {
		mux.Mount("/swagger", http.StripPrefix("/swagger", swaggerHandler))
	}

	mux.Handle("/metrics", promhttp.Handler())

	// Middlewares run innermost first: authenticate wraps limitSubmissions.
	return api.HandlerWithOptions(s, api.ChiServerOptions{
		BaseRouter:       mux,
		Middlewares:      []api.MiddlewareFunc{s.limitSubmissions, s.authenticate},
		ErrorHandlerFunc: s.handleParamError,
	})
}

// respond is a helper function to encode data to JSON and write it to the response.
// It centralizes setting the Content-Type header and writing the status code.
func (s *Server) respond(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)

	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			s.log.Error("failed to encode response", sl.Err(err))
		}
	}
}

// respondAPIError formats and sends a structured error response that conforms to the OpenAPI specification.
func (s *Server) respondAPIError(w http.ResponseWriter, code int, apiCode api.ErrorResponseErrorCode, message string) {
	errResp := api.ErrorResponse{
		Error: struct {
			Code    api.ErrorResponseErrorCode `json:"code"`
			Message string                     `json:"message"`
		}{
			Code:    apiCode,
			Message: message,
		},
	}
	s.respond(w, code, errResp)
}

// decodeAndValidate is a helper that deserializes a JSON request body into a struct
// and then runs validation checks on it.
func (s *Server) decodeAndValidate(r *http.Request, v interface{}) error {
	if err := s.decode(r.Body, v); err != nil {
		return err
	}

	return validation.ValidateStruct(v)
}

// decodeOptional is decodeAndValidate for endpoints whose body may be empty.
func (s *Server) decodeOptional(r *http.Request, v interface{}) error {
	err := s.decode(r.Body, v)
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return validation.ValidateStruct(v)
}

// decode is a helper function to decode a JSON request body.
func (s *Server) decode(body io.ReadCloser, v interface{}) error {
	defer body.Close()

	if err := json.NewDecoder(body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrInvalidRequest, err)
	}

	return nil
}

// handleParamError reports path and query parameters the router could not bind.
func (s *Server) handleParamError(w http.ResponseWriter, r *http.Request, err error) {
	const op = "internal.transport.http.handleParamError"

	var formatErr *api.InvalidParamFormatError
	if errors.As(err, &formatErr) {
		err = fmt.Errorf("%w: invalid %s: %w", apperrors.ErrInvalidRequest, formatErr.ParamName, formatErr.Err)
	} else {
		err = fmt.Errorf("%w: %w", apperrors.ErrInvalidRequest, err)
	}

	s.handleServiceError(w, r, op, err)
}

// handleServiceError provides centralized error handling for all HTTP handlers.
// It logs the error and maps it to a status code and error body.
func (s *Server) handleServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	log := s.log.With(slog.String("op", op), slog.String("request_id", getRequestID(r.Context())))

	var validationErr *validation.ValidationError

	switch {
	case errors.As(err, &validationErr):
		log.Warn("validation failed", sl.Err(err))
		s.respondAPIError(w, http.StatusBadRequest, api.INVALIDREQUEST, validationErr.Error())
	case errors.Is(err, apperrors.ErrInvalidRequest):
		log.Warn("invalid request", sl.Err(err))
		s.respondAPIError(w, http.StatusBadRequest, api.INVALIDREQUEST, err.Error())
	case errors.Is(err, apperrors.ErrUnauthorized):
		log.Warn("unauthorized", sl.Err(err))
		s.respondAPIError(w, http.StatusUnauthorized, api.UNAUTHORIZED, apperrors.ErrUnauthorized.Error())
	case errors.Is(err, apperrors.ErrDenied):
		log.Warn("operation denied", sl.Err(err))
		s.respondAPIError(w, http.StatusForbidden, api.DENIED, err.Error())
	case errors.Is(err, apperrors.ErrNotEligible):
		log.Warn("actor not eligible", sl.Err(err))
		s.respondAPIError(w, http.StatusUnprocessableEntity, api.NOTELIGIBLE, err.Error())
	case errors.Is(err, apperrors.ErrNotFound):
		s.respondAPIError(w, http.StatusNotFound, api.NOTFOUND, "resource not found")
	case errors.Is(err, apperrors.ErrUnavailable):
		s.respondAPIError(w, http.StatusConflict, api.UNAVAILABLE, apperrors.ErrUnavailable.Error())
	case errors.Is(err, apperrors.ErrJobClosed):
		s.respondAPIError(w, http.StatusConflict, api.JOBCLOSED, apperrors.ErrJobClosed.Error())
	case errors.Is(err, apperrors.ErrDuplicateApplication):
		s.respondAPIError(w, http.StatusConflict, api.DUPLICATEAPPLICATION, apperrors.ErrDuplicateApplication.Error())
	case errors.Is(err, apperrors.ErrInvalidTransition):
		s.respondAPIError(w, http.StatusConflict, api.INVALIDTRANSITION, err.Error())
	case errors.Is(err, apperrors.ErrCapacityExceeded):
		s.respondAPIError(w, http.StatusConflict, api.CAPACITYEXCEEDED, err.Error())
	case errors.Is(err, apperrors.ErrAlreadyExists):
		s.respondAPIError(w, http.StatusConflict, api.ALREADYEXISTS, err.Error())
	case errors.Is(err, apperrors.ErrRateLimited):
		s.respondAPIError(w, http.StatusTooManyRequests, api.RATELIMITED, apperrors.ErrRateLimited.Error())
	default:
		log.Error("service error occurred", sl.Err(err))
		s.respondAPIError(w, http.StatusInternalServerError, api.INTERNAL, "internal server error")
	}
}
