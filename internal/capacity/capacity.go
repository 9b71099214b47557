// Package capacity keeps housing occupancy consistent with approvals.
package capacity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/YusovID/refugee-case-service/internal/apperrors"
	"github.com/YusovID/refugee-case-service/internal/domain"
	"github.com/jmoiron/sqlx"
)

var ErrNothingToRelease = errors.New("housing has no occupants to release")

// Reserve returns h with one more occupant. Every reservation marks the unit
// occupied, even when free places remain.
func Reserve(h domain.Housing) (domain.Housing, error) {
	if h.CurrentOccupancy >= h.Capacity {
		return h, &apperrors.CapacityExceededError{HousingID: h.ID, Capacity: h.Capacity}
	}

	h.CurrentOccupancy++
	h.Status = domain.HousingOccupied

	return h, nil
}

// Release is the inverse of Reserve. An occupied unit becomes available
// again; other statuses are left alone.
func Release(h domain.Housing) (domain.Housing, error) {
	if h.CurrentOccupancy <= 0 {
		return h, fmt.Errorf("housing %d: %w", h.ID, ErrNothingToRelease)
	}

	h.CurrentOccupancy--
	if h.Status == domain.HousingOccupied {
		h.Status = domain.HousingAvailable
	}

	return h, nil
}

// Store persists occupancy with a compare-and-swap on the previous value.
type Store interface {
	// SetOccupancy writes occupancy and status only if the row still holds
	// expected and the new occupancy stays within capacity. It reports
	// whether a row was updated.
	SetOccupancy(ctx context.Context, tx *sqlx.Tx, housingID int64, expected, occupancy int, status domain.HousingStatus) (bool, error)
}

type Tracker struct {
	store Store
	log   *slog.Logger
}

func NewTracker(store Store, log *slog.Logger) *Tracker {
	return &Tracker{store: store, log: log}
}

// Reserve applies Reserve to the locked snapshot h and persists it in tx.
func (t *Tracker) Reserve(ctx context.Context, tx *sqlx.Tx, h domain.Housing) (domain.Housing, error) {
	const op = "internal.capacity.Reserve"
	log := t.log.With(slog.String("op", op), slog.Int64("housing_id", h.ID))

	next, err := Reserve(h)
	if err != nil {
		log.Warn("housing is full", slog.Int("capacity", h.Capacity))
		return h, err
	}

	if err := t.persist(ctx, tx, h, next); err != nil {
		return h, fmt.Errorf("%s: %w", op, err)
	}

	log.Debug("place reserved", slog.Int("occupancy", next.CurrentOccupancy))

	return next, nil
}

func (t *Tracker) Release(ctx context.Context, tx *sqlx.Tx, h domain.Housing) (domain.Housing, error) {
	const op = "internal.capacity.Release"

	next, err := Release(h)
	if err != nil {
		return h, err
	}

	if err := t.persist(ctx, tx, h, next); err != nil {
		return h, fmt.Errorf("%s: %w", op, err)
	}

	return next, nil
}

func (t *Tracker) persist(ctx context.Context, tx *sqlx.Tx, prev, next domain.Housing) error {
	ok, err := t.store.SetOccupancy(ctx, tx, prev.ID, prev.CurrentOccupancy, next.CurrentOccupancy, next.Status)
	if err != nil {
		return err
	}

	if !ok {
		return &apperrors.CapacityExceededError{HousingID: prev.ID, Capacity: prev.Capacity}
	}

	return nil
}
