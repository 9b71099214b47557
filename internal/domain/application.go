package domain

import "time"

type ApplicationKind string

const (
	KindHousing ApplicationKind = "housing"
	KindJob     ApplicationKind = "job"
)

type ApplicationStatus string

const (
	StatusPending     ApplicationStatus = "pending"
	StatusApproved    ApplicationStatus = "approved"
	StatusRejected    ApplicationStatus = "rejected"
	StatusShortlisted ApplicationStatus = "shortlisted"
	StatusInterview   ApplicationStatus = "interview"
	StatusOffered     ApplicationStatus = "offered"
	StatusAccepted    ApplicationStatus = "accepted"
	StatusWithdrawn   ApplicationStatus = "withdrawn"
)

// Decision is the outcome an admin or owning NGO gives a pending application.
type Decision string

const (
	DecisionApproved Decision = "approved"
	DecisionRejected Decision = "rejected"
)

func (d Decision) Valid() bool {
	return d == DecisionApproved || d == DecisionRejected
}

func (d Decision) Status() ApplicationStatus {
	if d == DecisionApproved {
		return StatusApproved
	}

	return StatusRejected
}

type HousingApplication struct {
	ID              int64             `db:"id" json:"id"`
	RefugeeID       int64             `db:"refugee_id" json:"refugee_id"`
	HousingID       int64             `db:"housing_id" json:"housing_id"`
	Status          ApplicationStatus `db:"status" json:"status"`
	Notes           string            `db:"notes" json:"notes"`
	ApplicationDate time.Time         `db:"application_date" json:"application_date"`
	DecisionDate    *time.Time        `db:"decision_date" json:"decision_date,omitempty"`
}

type JobApplication struct {
	ID            int64             `db:"id" json:"id"`
	RefugeeID     int64             `db:"refugee_id" json:"refugee_id"`
	JobID         int64             `db:"job_id" json:"job_id"`
	Status        ApplicationStatus `db:"status" json:"status"`
	CoverLetter   string            `db:"cover_letter" json:"cover_letter"`
	Resume        string            `db:"resume" json:"resume"`
	AppliedAt     time.Time         `db:"applied_at" json:"applied_at"`
	LastUpdated   time.Time         `db:"last_updated" json:"last_updated"`
	InterviewDate *time.Time        `db:"interview_date" json:"interview_date,omitempty"`
	Notes         string            `db:"notes" json:"notes"`
}

// ApplicationEvent records one status change of an application.
type ApplicationEvent struct {
	ID            int64             `db:"id" json:"id"`
	Kind          ApplicationKind   `db:"kind" json:"kind"`
	ApplicationID int64             `db:"application_id" json:"application_id"`
	ActorID       string            `db:"actor_id" json:"actor_id"`
	FromStatus    ApplicationStatus `db:"from_status" json:"from_status"`
	ToStatus      ApplicationStatus `db:"to_status" json:"to_status"`
	CreatedAt     time.Time         `db:"created_at" json:"created_at"`
}

var jobTransitions = map[ApplicationStatus][]ApplicationStatus{
	StatusPending:     {StatusShortlisted, StatusInterview, StatusOffered, StatusRejected, StatusWithdrawn},
	StatusShortlisted: {StatusInterview, StatusOffered, StatusRejected, StatusWithdrawn},
	StatusInterview:   {StatusOffered, StatusRejected, StatusWithdrawn},
	StatusOffered:     {StatusAccepted, StatusRejected, StatusWithdrawn},
}

// CanAdvanceJob reports whether the recruitment pipeline allows from -> to.
// Approved, accepted, rejected and withdrawn are terminal.
func CanAdvanceJob(from, to ApplicationStatus) bool {
	for _, s := range jobTransitions[from] {
		if s == to {
			return true
		}
	}

	return false
}

func IsJobPipelineStatus(s ApplicationStatus) bool {
	switch s {
	case StatusShortlisted, StatusInterview, StatusOffered, StatusAccepted, StatusRejected, StatusWithdrawn:
		return true
	}

	return false
}

// Scope narrows list queries to what an actor may see. A zero Scope means
// everything.
type Scope struct {
	NGOID     *int64
	RefugeeID *int64
}

func (s Scope) All() bool {
	return s.NGOID == nil && s.RefugeeID == nil
}
