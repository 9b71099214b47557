package http

import (
	"net/http"

	"github.com/YusovID/refugee-case-service/internal/domain"
)

func (s *Server) PostRefugee(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.PostRefugee"
	actor, _ := actorFromContext(r.Context())

	var req refugeeRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	in, err := req.toInput()
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	refugee, created, err := s.svc.Profiles.CreateRefugeeProfile(r.Context(), actor, in)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	code := http.StatusOK
	if created {
		code = http.StatusCreated
	}

	s.respond(w, code, map[string]*domain.Refugee{"refugee": refugee})
}

func (s *Server) GetRefugeeList(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.GetRefugeeList"
	actor, _ := actorFromContext(r.Context())

	refugees, err := s.svc.Profiles.ListRefugees(r.Context(), actor)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, map[string][]domain.Refugee{"refugees": refugees})
}

func (s *Server) GetRefugee(w http.ResponseWriter, r *http.Request, id int64) {
	const op = "internal.transport.http.GetRefugee"
	actor, _ := actorFromContext(r.Context())

	refugee, err := s.svc.Profiles.GetRefugee(r.Context(), actor, id)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, map[string]*domain.Refugee{"refugee": refugee})
}

func (s *Server) PutRefugee(w http.ResponseWriter, r *http.Request, id int64) {
	const op = "internal.transport.http.PutRefugee"
	actor, _ := actorFromContext(r.Context())

	var req refugeeRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	in, err := req.toInput()
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	refugee, err := s.svc.Profiles.UpdateRefugee(r.Context(), actor, id, in)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, map[string]*domain.Refugee{"refugee": refugee})
}

func (s *Server) PostRefugeeReview(w http.ResponseWriter, r *http.Request, id int64) {
	const op = "internal.transport.http.PostRefugeeReview"
	actor, _ := actorFromContext(r.Context())

	var req reviewRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	refugee, err := s.svc.Profiles.ReviewRefugee(r.Context(), actor, id, domain.RegistrationStatus(req.Status))
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, map[string]*domain.Refugee{"refugee": refugee})
}

func (s *Server) DeleteRefugee(w http.ResponseWriter, r *http.Request, id int64) {
	const op = "internal.transport.http.DeleteRefugee"
	actor, _ := actorFromContext(r.Context())

	if err := s.svc.Profiles.DeleteRefugee(r.Context(), actor, id); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) PostNGO(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.PostNGO"
	actor, _ := actorFromContext(r.Context())

	var req ngoRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	ngo, created, err := s.svc.Profiles.CreateNGOProfile(r.Context(), actor, req.toInput())
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	code := http.StatusOK
	if created {
		code = http.StatusCreated
	}

	s.respond(w, code, map[string]*domain.NGO{"ngo": ngo})
}

func (s *Server) GetNGO(w http.ResponseWriter, r *http.Request, id int64) {
	const op = "internal.transport.http.GetNGO"

	ngo, err := s.svc.Profiles.GetNGO(r.Context(), id)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, map[string]*domain.NGO{"ngo": ngo})
}

func (s *Server) PutNGO(w http.ResponseWriter, r *http.Request, id int64) {
	const op = "internal.transport.http.PutNGO"
	actor, _ := actorFromContext(r.Context())

	var req ngoRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	ngo, err := s.svc.Profiles.UpdateNGO(r.Context(), actor, id, req.toInput())
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, map[string]*domain.NGO{"ngo": ngo})
}
