package domain

import (
	"time"
)

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleNGO     Role = "ngo"
	RoleRefugee Role = "refugee"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleNGO, RoleRefugee:
		return true
	}

	return false
}

type ProfileKind int

const (
	NoProfile ProfileKind = iota
	RefugeeProfile
	NGOProfile
)

// ProfileRef links an actor to at most one profile record.
type ProfileRef struct {
	Kind ProfileKind
	ID   int64
}

func (p ProfileRef) RefugeeID() (int64, bool) {
	return p.ID, p.Kind == RefugeeProfile
}

func (p ProfileRef) NGOID() (int64, bool) {
	return p.ID, p.Kind == NGOProfile
}

type Actor struct {
	ID          string    `db:"id" json:"id"`
	Username    string    `db:"username" json:"username"`
	Email       string    `db:"email" json:"email"`
	FirstName   string    `db:"first_name" json:"first_name"`
	LastName    string    `db:"last_name" json:"last_name"`
	Role        Role      `db:"role" json:"role"`
	PhoneNumber string    `db:"phone_number" json:"phone_number"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`

	Profile ProfileRef `db:"-" json:"-"`
}

type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
	GenderOther  Gender = "O"
)

// RegistrationStatus is the review state of a refugee registration. It is
// unrelated to the status of the refugee's applications.
type RegistrationStatus string

const (
	RegistrationPending  RegistrationStatus = "pending"
	RegistrationApproved RegistrationStatus = "approved"
	RegistrationRejected RegistrationStatus = "rejected"
)

type Refugee struct {
	ID                int64              `db:"id" json:"id"`
	ActorID           string             `db:"actor_id" json:"actor_id"`
	DateOfBirth       time.Time          `db:"date_of_birth" json:"date_of_birth"`
	Gender            Gender             `db:"gender" json:"gender"`
	FamilySize        int                `db:"family_size" json:"family_size"`
	CountryOfOrigin   string             `db:"country_of_origin" json:"country_of_origin"`
	NativeLanguage    string             `db:"native_language" json:"native_language"`
	EducationLevel    string             `db:"education_level" json:"education_level"`
	Skills            string             `db:"skills" json:"skills"`
	MedicalConditions string             `db:"medical_conditions" json:"medical_conditions"`
	EmergencyContact  string             `db:"emergency_contact" json:"emergency_contact"`
	Documents         string             `db:"documents" json:"documents"`
	Status            RegistrationStatus `db:"status" json:"status"`
	RegisteredAt      time.Time          `db:"registered_at" json:"registered_at"`
	LastUpdated       time.Time          `db:"last_updated" json:"last_updated"`
}

type NGO struct {
	ID               int64     `db:"id" json:"id"`
	ActorID          string    `db:"actor_id" json:"actor_id"`
	OrganizationName string    `db:"organization_name" json:"organization_name"`
	OrganizationType string    `db:"organization_type" json:"organization_type"`
	Location         string    `db:"location" json:"location"`
	ContactNumber    string    `db:"contact_number" json:"contact_number"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
}
