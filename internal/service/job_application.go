package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/YusovID/refugee-case-service/internal/apperrors"
	"github.com/YusovID/refugee-case-service/internal/authz"
	"github.com/YusovID/refugee-case-service/internal/domain"
	"github.com/YusovID/refugee-case-service/internal/repository"
	"github.com/jmoiron/sqlx"
)

type AdvanceInput struct {
	Status        domain.ApplicationStatus
	InterviewDate *time.Time
	Notes         *string
}

type JobApplicationService interface {
	Submit(ctx context.Context, actor domain.Actor, jobID int64, coverLetter, resume string) (*domain.JobApplication, error)
	Decide(ctx context.Context, actor domain.Actor, applicationID int64, decision domain.Decision) (*domain.JobApplication, error)
	Advance(ctx context.Context, actor domain.Actor, applicationID int64, in AdvanceInput) (*domain.JobApplication, error)
	List(ctx context.Context, actor domain.Actor) ([]domain.JobApplication, error)
	History(ctx context.Context, actor domain.Actor, applicationID int64) ([]domain.ApplicationEvent, error)
}

type JobApplicationServiceImpl struct {
	BaseService
	listings repository.ListingRepository
	apps     repository.ApplicationRepository
}

func NewJobApplicationService(
	db DB,
	log *slog.Logger,
	actors repository.ActorRepository,
	listings repository.ListingRepository,
	apps repository.ApplicationRepository,
) *JobApplicationServiceImpl {
	return &JobApplicationServiceImpl{
		BaseService: NewBaseService(db, log, actors),
		listings:    listings,
		apps:        apps,
	}
}

func (s *JobApplicationServiceImpl) Submit(ctx context.Context, actor domain.Actor, jobID int64, coverLetter, resume string) (*domain.JobApplication, error) {
	const op = "internal.service.jobapplication.Submit"
	log := s.log.With(slog.String("op", op), slog.String("actor_id", actor.ID), slog.Int64("job_id", jobID))

	var app *domain.JobApplication

	err := s.transaction(ctx, op, func(ctx context.Context, tx *sqlx.Tx) error {
		current, err := s.currentActor(ctx, tx, actor)
		if err != nil {
			return err
		}

		if err := authz.Authorize(current, authz.OpApply, authz.Target{}); err != nil {
			return err
		}

		job, err := s.listings.GetJob(ctx, tx, jobID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		if !job.AcceptsApplications(now) {
			return fmt.Errorf("%w: job %d active=%t deadline=%s",
				apperrors.ErrJobClosed, job.ID, job.IsActive, job.Deadline.Format(time.RFC3339))
		}

		refugeeID, _ := current.Profile.RefugeeID()
		app = &domain.JobApplication{
			RefugeeID:   refugeeID,
			JobID:       job.ID,
			Status:      domain.StatusPending,
			CoverLetter: coverLetter,
			Resume:      resume,
			AppliedAt:   now,
			LastUpdated: now,
		}

		return s.apps.CreateJobApplication(ctx, tx, app)
	})
	if err != nil {
		log.Warn("job application rejected", slog.String("reason", err.Error()))
		return nil, err
	}

	log.Info("job application submitted", slog.Int64("application_id", app.ID))

	return app, nil
}

func (s *JobApplicationServiceImpl) Decide(ctx context.Context, actor domain.Actor, applicationID int64, decision domain.Decision) (*domain.JobApplication, error) {
	const op = "internal.service.jobapplication.Decide"
	log := s.log.With(slog.String("op", op), slog.Int64("application_id", applicationID), slog.String("decision", string(decision)))

	if !decision.Valid() {
		return nil, fmt.Errorf("%w: unknown decision %q", apperrors.ErrInvalidRequest, decision)
	}

	app, err := s.change(ctx, op, actor, applicationID, authz.OpDecide, func(app *domain.JobApplication) error {
		next := decision.Status()
		if app.Status != domain.StatusPending {
			return &apperrors.InvalidTransitionError{Kind: string(domain.KindJob), From: string(app.Status), To: string(next)}
		}

		app.Status = next

		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("job application decided")

	return app, nil
}

// Advance moves an application along the recruitment pipeline. Withdrawal is
// reserved to the applicant; every other step to an admin or the owning NGO.
func (s *JobApplicationServiceImpl) Advance(ctx context.Context, actor domain.Actor, applicationID int64, in AdvanceInput) (*domain.JobApplication, error) {
	const op = "internal.service.jobapplication.Advance"
	log := s.log.With(slog.String("op", op), slog.Int64("application_id", applicationID), slog.String("status", string(in.Status)))

	if !domain.IsJobPipelineStatus(in.Status) {
		return nil, fmt.Errorf("%w: unknown pipeline status %q", apperrors.ErrInvalidRequest, in.Status)
	}

	gate := authz.OpAdvanceJobApplication
	if in.Status == domain.StatusWithdrawn {
		gate = authz.OpWithdrawApplication
	}

	app, err := s.change(ctx, op, actor, applicationID, gate, func(app *domain.JobApplication) error {
		if !domain.CanAdvanceJob(app.Status, in.Status) {
			return &apperrors.InvalidTransitionError{Kind: string(domain.KindJob), From: string(app.Status), To: string(in.Status)}
		}

		app.Status = in.Status
		if in.InterviewDate != nil {
			app.InterviewDate = in.InterviewDate
		}
		if in.Notes != nil {
			app.Notes = *in.Notes
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("job application advanced")

	return app, nil
}

// change locks the application, checks the gate for gateOp, lets mutate
// apply the transition and persists it together with an audit event.
func (s *JobApplicationServiceImpl) change(
	ctx context.Context,
	op string,
	actor domain.Actor,
	applicationID int64,
	gateOp authz.Operation,
	mutate func(app *domain.JobApplication) error,
) (*domain.JobApplication, error) {
	var app *domain.JobApplication

	err := s.transaction(ctx, op, func(ctx context.Context, tx *sqlx.Tx) error {
		current, err := s.currentActor(ctx, tx, actor)
		if err != nil {
			return err
		}

		app, err = s.apps.GetJobApplicationForUpdate(ctx, tx, applicationID)
		if err != nil {
			return err
		}

		job, err := s.listings.GetJob(ctx, tx, app.JobID)
		if err != nil {
			return err
		}

		target := authz.Target{OwnerNGOID: job.NGOID, RefugeeID: app.RefugeeID}
		if err := authz.Authorize(current, gateOp, target); err != nil {
			return err
		}

		from := app.Status
		if err := mutate(app); err != nil {
			return err
		}

		now := time.Now().UTC()
		app.LastUpdated = now

		if err := s.apps.UpdateJobApplication(ctx, tx, app); err != nil {
			return err
		}

		return s.apps.AppendEvent(ctx, tx, &domain.ApplicationEvent{
			Kind:          domain.KindJob,
			ApplicationID: app.ID,
			ActorID:       current.ID,
			FromStatus:    from,
			ToStatus:      app.Status,
			CreatedAt:     now,
		})
	})
	if err != nil {
		return nil, err
	}

	return app, nil
}

func (s *JobApplicationServiceImpl) List(ctx context.Context, actor domain.Actor) ([]domain.JobApplication, error) {
	const op = "internal.service.jobapplication.List"

	if err := authz.Authorize(actor, authz.OpListApplications, authz.Target{}); err != nil {
		return nil, err
	}

	scope, ok := authz.ScopeFor(actor)
	if !ok {
		return []domain.JobApplication{}, nil
	}

	apps, err := s.apps.ListJobApplications(ctx, s.db, scope)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return apps, nil
}

func (s *JobApplicationServiceImpl) History(ctx context.Context, actor domain.Actor, applicationID int64) ([]domain.ApplicationEvent, error) {
	const op = "internal.service.jobapplication.History"

	app, err := s.apps.GetJobApplication(ctx, s.db, applicationID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	job, err := s.listings.GetJob(ctx, s.db, app.JobID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	target := authz.Target{OwnerNGOID: job.NGOID, RefugeeID: app.RefugeeID}
	if err := authz.Authorize(actor, authz.OpViewApplicationHistory, target); err != nil {
		return nil, err
	}

	events, err := s.apps.ListEvents(ctx, s.db, domain.KindJob, app.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return events, nil
}
