package http

import (
	"net/http"

	"github.com/YusovID/refugee-case-service/internal/domain"
	"github.com/YusovID/refugee-case-service/pkg/api"
)

func (s *Server) PostRegister(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.PostRegister"

	var req registerRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	actor, err := s.svc.Actors.Register(r.Context(), req.toInput())
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	token, expiresAt, err := s.tokens.Issue(actor.ID)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusCreated, api.RegisterResponse{
		Actor:     toAPIActor(*actor),
		Token:     token,
		ExpiresAt: expiresAt.UTC(),
	})
}

func (s *Server) GetMe(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFromContext(r.Context())

	s.respond(w, http.StatusOK, map[string]api.Actor{"actor": toAPIActor(actor)})
}

// toAPIActor includes the id of the linked profile, if any.
func toAPIActor(a domain.Actor) api.Actor {
	role := api.ActorRole(a.Role)

	apiActor := api.Actor{
		Id:          &a.ID,
		Username:    &a.Username,
		Email:       &a.Email,
		FirstName:   &a.FirstName,
		LastName:    &a.LastName,
		Role:        &role,
		PhoneNumber: &a.PhoneNumber,
		CreatedAt:   &a.CreatedAt,
	}

	if id, ok := a.Profile.RefugeeID(); ok {
		apiActor.RefugeeId = &id
	}
	if id, ok := a.Profile.NGOID(); ok {
		apiActor.NgoId = &id
	}

	return apiActor
}
