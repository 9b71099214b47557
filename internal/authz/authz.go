// Package authz decides whether an actor may perform an operation on a
// target. Every rule lives in one table keyed by operation; callers never
// branch on roles themselves.
package authz

import (
	"fmt"
	"slices"

	"github.com/YusovID/refugee-case-service/internal/apperrors"
	"github.com/YusovID/refugee-case-service/internal/domain"
)

type Operation string

const (
	OpCreateRefugeeProfile   Operation = "create_refugee_profile"
	OpCreateNGOProfile       Operation = "create_ngo_profile"
	OpListRefugees           Operation = "list_refugees"
	OpViewRefugee            Operation = "view_refugee"
	OpUpdateRefugee          Operation = "update_refugee"
	OpReviewRefugee          Operation = "review_refugee"
	OpDeleteRefugee          Operation = "delete_refugee"
	OpUpdateNGO              Operation = "update_ngo"
	OpListApplications       Operation = "list_applications"
	OpCreateListing          Operation = "create_listing"
	OpUpdateListing          Operation = "update_listing"
	OpDeleteListing          Operation = "delete_listing"
	OpApply                  Operation = "apply"
	OpDecide                 Operation = "decide"
	OpAdvanceJobApplication  Operation = "advance_job_application"
	OpWithdrawApplication    Operation = "withdraw_application"
	OpViewApplicationHistory Operation = "view_application_history"
)

const (
	ReasonRole             = "role"
	ReasonOwnership        = "ownership"
	ReasonProfileMissing   = "profile_missing"
	ReasonProfileExists    = "profile_exists"
	ReasonUnknownOperation = "unknown_operation"
)

// Target describes the record an operation acts on. Only the fields relevant
// to the operation need to be set.
type Target struct {
	// OwnerNGOID is the NGO owning the listing, or the listing an
	// application points at.
	OwnerNGOID int64
	// RefugeeID is the refugee profile the record belongs to.
	RefugeeID int64
	// NGOID is the NGO profile being edited.
	NGOID int64
	// LinkedNGOIDs lists NGOs whose listings the refugee applied to.
	LinkedNGOIDs []int64
}

type Decision struct {
	Allowed   bool
	Operation Operation
	Reason    string
}

// Err converts a negative decision into the matching typed error.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}

	switch d.Reason {
	case ReasonProfileMissing:
		return &apperrors.NotEligibleError{Operation: string(d.Operation), Reason: d.Reason}
	case ReasonProfileExists:
		return fmt.Errorf("%s: %w", d.Operation, apperrors.ErrProfileExists)
	default:
		return &apperrors.DeniedError{Operation: string(d.Operation), Reason: d.Reason}
	}
}

type rule func(actor domain.Actor, t Target) (bool, string)

var rules = map[Operation]rule{
	OpCreateRefugeeProfile: func(a domain.Actor, _ Target) (bool, string) {
		if a.Role != domain.RoleRefugee {
			return false, ReasonRole
		}
		if a.Profile.Kind == domain.RefugeeProfile {
			return false, ReasonProfileExists
		}
		return true, ""
	},
	OpCreateNGOProfile: func(a domain.Actor, _ Target) (bool, string) {
		if a.Role != domain.RoleNGO {
			return false, ReasonRole
		}
		if a.Profile.Kind == domain.NGOProfile {
			return false, ReasonProfileExists
		}
		return true, ""
	},
	OpListRefugees:     anyRole,
	OpListApplications: anyRole,
	OpViewRefugee: func(a domain.Actor, t Target) (bool, string) {
		switch a.Role {
		case domain.RoleAdmin:
			return true, ""
		case domain.RoleRefugee:
			return ownsRefugee(a, t)
		case domain.RoleNGO:
			ngoID, ok := a.Profile.NGOID()
			if !ok {
				return false, ReasonProfileMissing
			}
			if slices.Contains(t.LinkedNGOIDs, ngoID) {
				return true, ""
			}
			return false, ReasonOwnership
		}
		return false, ReasonRole
	},
	OpUpdateRefugee: func(a domain.Actor, t Target) (bool, string) {
		switch a.Role {
		case domain.RoleAdmin:
			return true, ""
		case domain.RoleRefugee:
			return ownsRefugee(a, t)
		}
		return false, ReasonRole
	},
	OpReviewRefugee: adminOnly,
	OpDeleteRefugee: adminOnly,
	OpUpdateNGO: func(a domain.Actor, t Target) (bool, string) {
		switch a.Role {
		case domain.RoleAdmin:
			return true, ""
		case domain.RoleNGO:
			ngoID, ok := a.Profile.NGOID()
			if !ok {
				return false, ReasonProfileMissing
			}
			if ngoID == t.NGOID {
				return true, ""
			}
			return false, ReasonOwnership
		}
		return false, ReasonRole
	},
	OpCreateListing: func(a domain.Actor, _ Target) (bool, string) {
		switch a.Role {
		case domain.RoleAdmin:
			return true, ""
		case domain.RoleNGO:
			if _, ok := a.Profile.NGOID(); !ok {
				return false, ReasonProfileMissing
			}
			return true, ""
		}
		return false, ReasonRole
	},
	OpUpdateListing:         adminOrOwningNGO,
	OpDeleteListing:         adminOrOwningNGO,
	OpDecide:                adminOrOwningNGO,
	OpAdvanceJobApplication: adminOrOwningNGO,
	OpApply: func(a domain.Actor, _ Target) (bool, string) {
		if a.Role != domain.RoleRefugee {
			return false, ReasonRole
		}
		if _, ok := a.Profile.RefugeeID(); !ok {
			return false, ReasonProfileMissing
		}
		return true, ""
	},
	OpWithdrawApplication: func(a domain.Actor, t Target) (bool, string) {
		if a.Role != domain.RoleRefugee {
			return false, ReasonRole
		}
		return ownsRefugee(a, t)
	},
	OpViewApplicationHistory: func(a domain.Actor, t Target) (bool, string) {
		switch a.Role {
		case domain.RoleAdmin:
			return true, ""
		case domain.RoleNGO:
			return adminOrOwningNGO(a, t)
		case domain.RoleRefugee:
			return ownsRefugee(a, t)
		}
		return false, ReasonRole
	},
}

// Check evaluates the rule for op. It has no side effects.
func Check(actor domain.Actor, op Operation, target Target) Decision {
	r, ok := rules[op]
	if !ok {
		return Decision{Operation: op, Reason: ReasonUnknownOperation}
	}

	allowed, reason := r(actor, target)

	return Decision{Allowed: allowed, Operation: op, Reason: reason}
}

func Can(actor domain.Actor, op Operation, target Target) bool {
	return Check(actor, op, target).Allowed
}

// Authorize is Check followed by Decision.Err.
func Authorize(actor domain.Actor, op Operation, target Target) error {
	return Check(actor, op, target).Err()
}

// ScopeFor returns the visibility scope of list views for actor. The boolean
// is false when the actor can see nothing, e.g. an ngo without a profile.
func ScopeFor(actor domain.Actor) (domain.Scope, bool) {
	switch actor.Role {
	case domain.RoleAdmin:
		return domain.Scope{}, true
	case domain.RoleNGO:
		if id, ok := actor.Profile.NGOID(); ok {
			return domain.Scope{NGOID: &id}, true
		}
	case domain.RoleRefugee:
		if id, ok := actor.Profile.RefugeeID(); ok {
			return domain.Scope{RefugeeID: &id}, true
		}
	}

	return domain.Scope{}, false
}

func anyRole(a domain.Actor, _ Target) (bool, string) {
	if a.Role.Valid() {
		return true, ""
	}
	return false, ReasonRole
}

func adminOnly(a domain.Actor, _ Target) (bool, string) {
	if a.Role == domain.RoleAdmin {
		return true, ""
	}
	return false, ReasonRole
}

func adminOrOwningNGO(a domain.Actor, t Target) (bool, string) {
	switch a.Role {
	case domain.RoleAdmin:
		return true, ""
	case domain.RoleNGO:
		if ngoID, ok := a.Profile.NGOID(); ok && ngoID == t.OwnerNGOID {
			return true, ""
		}
		return false, ReasonOwnership
	}
	return false, ReasonRole
}

func ownsRefugee(a domain.Actor, t Target) (bool, string) {
	if id, ok := a.Profile.RefugeeID(); ok && id == t.RefugeeID {
		return true, ""
	}
	return false, ReasonOwnership
}
