package http

import (
	"net/http"

	"github.com/YusovID/refugee-case-service/internal/domain"
)

func (s *Server) PostHousingApply(w http.ResponseWriter, r *http.Request, id int64) {
	const op = "internal.transport.http.PostHousingApply"
	actor, _ := actorFromContext(r.Context())

	var req housingApplyRequest
	if err := s.decodeOptional(r, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	app, err := s.svc.HousingApps.Submit(r.Context(), actor, id, req.Notes)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	applicationsSubmitted.WithLabelValues(string(domain.KindHousing)).Inc()

	s.respond(w, http.StatusCreated, map[string]*domain.HousingApplication{"application": app})
}

func (s *Server) PostJobApply(w http.ResponseWriter, r *http.Request, id int64) {
	const op = "internal.transport.http.PostJobApply"
	actor, _ := actorFromContext(r.Context())

	var req jobApplyRequest
	if err := s.decodeOptional(r, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	app, err := s.svc.JobApps.Submit(r.Context(), actor, id, req.CoverLetter, req.Resume)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	applicationsSubmitted.WithLabelValues(string(domain.KindJob)).Inc()

	s.respond(w, http.StatusCreated, map[string]*domain.JobApplication{"application": app})
}

func (s *Server) GetHousingApplications(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.GetHousingApplications"
	actor, _ := actorFromContext(r.Context())

	apps, err := s.svc.HousingApps.List(r.Context(), actor)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, map[string][]domain.HousingApplication{"applications": apps})
}

func (s *Server) GetJobApplications(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.GetJobApplications"
	actor, _ := actorFromContext(r.Context())

	apps, err := s.svc.JobApps.List(r.Context(), actor)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, map[string][]domain.JobApplication{"applications": apps})
}

func (s *Server) PostHousingDecision(w http.ResponseWriter, r *http.Request, id int64) {
	const op = "internal.transport.http.PostHousingDecision"
	actor, _ := actorFromContext(r.Context())

	var req decisionRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	app, err := s.svc.HousingApps.Decide(r.Context(), actor, id, domain.Decision(req.Decision))
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	applicationDecisions.WithLabelValues(string(domain.KindHousing), string(app.Status)).Inc()

	s.respond(w, http.StatusOK, map[string]*domain.HousingApplication{"application": app})
}

func (s *Server) PostJobDecision(w http.ResponseWriter, r *http.Request, id int64) {
	const op = "internal.transport.http.PostJobDecision"
	actor, _ := actorFromContext(r.Context())

	var req decisionRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	app, err := s.svc.JobApps.Decide(r.Context(), actor, id, domain.Decision(req.Decision))
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	applicationDecisions.WithLabelValues(string(domain.KindJob), string(app.Status)).Inc()

	s.respond(w, http.StatusOK, map[string]*domain.JobApplication{"application": app})
}

func (s *Server) PostJobStatus(w http.ResponseWriter, r *http.Request, id int64) {
	const op = "internal.transport.http.PostJobStatus"
	actor, _ := actorFromContext(r.Context())

	var req statusRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	app, err := s.svc.JobApps.Advance(r.Context(), actor, id, req.toInput())
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	applicationDecisions.WithLabelValues(string(domain.KindJob), string(app.Status)).Inc()

	s.respond(w, http.StatusOK, map[string]*domain.JobApplication{"application": app})
}

func (s *Server) GetHousingApplicationEvents(w http.ResponseWriter, r *http.Request, id int64) {
	const op = "internal.transport.http.GetHousingApplicationEvents"
	actor, _ := actorFromContext(r.Context())

	events, err := s.svc.HousingApps.History(r.Context(), actor, id)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, map[string][]domain.ApplicationEvent{"events": events})
}

func (s *Server) GetJobApplicationEvents(w http.ResponseWriter, r *http.Request, id int64) {
	const op = "internal.transport.http.GetJobApplicationEvents"
	actor, _ := actorFromContext(r.Context())

	events, err := s.svc.JobApps.History(r.Context(), actor, id)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, map[string][]domain.ApplicationEvent{"events": events})
}
