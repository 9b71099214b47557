package http

import (
	"net/http"

	"github.com/YusovID/refugee-case-service/internal/domain"
	"github.com/YusovID/refugee-case-service/pkg/api"
)

// flag treats an absent query parameter as false.
func flag(v *bool) bool {
	return v != nil && *v
}

func (s *Server) GetHousingList(w http.ResponseWriter, r *http.Request, params api.GetHousingListParams) {
	const op = "internal.transport.http.GetHousingList"

	units, err := s.svc.Listings.ListHousing(r.Context(), flag(params.Available))
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, map[string][]domain.Housing{"housing": units})
}

func (s *Server) GetHousing(w http.ResponseWriter, r *http.Request, id int64) {
	const op = "internal.transport.http.GetHousing"

	housing, err := s.svc.Listings.GetHousing(r.Context(), id)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, map[string]*domain.Housing{"housing": housing})
}

func (s *Server) PostHousing(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.PostHousing"
	actor, _ := actorFromContext(r.Context())

	var req housingRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	housing, err := s.svc.Listings.CreateHousing(r.Context(), actor, req.toInput())
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusCreated, map[string]*domain.Housing{"housing": housing})
}

func (s *Server) PutHousing(w http.ResponseWriter, r *http.Request, id int64) {
	const op = "internal.transport.http.PutHousing"
	actor, _ := actorFromContext(r.Context())

	var req housingRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	housing, err := s.svc.Listings.UpdateHousing(r.Context(), actor, id, req.toInput())
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, map[string]*domain.Housing{"housing": housing})
}

func (s *Server) DeleteHousing(w http.ResponseWriter, r *http.Request, id int64) {
	const op = "internal.transport.http.DeleteHousing"
	actor, _ := actorFromContext(r.Context())

	if err := s.svc.Listings.DeleteHousing(r.Context(), actor, id); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) GetJobList(w http.ResponseWriter, r *http.Request, params api.GetJobListParams) {
	const op = "internal.transport.http.GetJobList"

	jobs, err := s.svc.Listings.ListJobs(r.Context(), flag(params.Open))
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, map[string][]domain.Job{"jobs": jobs})
}

func (s *Server) GetJob(w http.ResponseWriter, r *http.Request, id int64) {
	const op = "internal.transport.http.GetJob"

	job, err := s.svc.Listings.GetJob(r.Context(), id)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, map[string]*domain.Job{"job": job})
}

func (s *Server) PostJob(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.PostJob"
	actor, _ := actorFromContext(r.Context())

	var req jobRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	job, err := s.svc.Listings.CreateJob(r.Context(), actor, req.toInput())
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusCreated, map[string]*domain.Job{"job": job})
}

func (s *Server) PutJob(w http.ResponseWriter, r *http.Request, id int64) {
	const op = "internal.transport.http.PutJob"
	actor, _ := actorFromContext(r.Context())

	var req jobRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	job, err := s.svc.Listings.UpdateJob(r.Context(), actor, id, req.toInput())
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, map[string]*domain.Job{"job": job})
}

func (s *Server) DeleteJob(w http.ResponseWriter, r *http.Request, id int64) {
	const op = "internal.transport.http.DeleteJob"
	actor, _ := actorFromContext(r.Context())

	if err := s.svc.Listings.DeleteJob(r.Context(), actor, id); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
