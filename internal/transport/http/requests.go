package http

import (
	"fmt"
	"time"

	"github.com/YusovID/refugee-case-service/internal/apperrors"
	"github.com/YusovID/refugee-case-service/internal/domain"
	"github.com/YusovID/refugee-case-service/internal/service"
)

const dateLayout = "2006-01-02"

type registerRequest struct {
	Username    string `json:"username" validate:"required,custom_id,min=3,max=150"`
	Email       string `json:"email" validate:"required,email,max=254"`
	FirstName   string `json:"first_name" validate:"max=150"`
	LastName    string `json:"last_name" validate:"max=150"`
	Role        string `json:"role" validate:"required,signup_role"`
	PhoneNumber string `json:"phone_number" validate:"max=15"`
}

func (r registerRequest) toInput() service.RegisterInput {
	return service.RegisterInput{
		Username:    r.Username,
		Email:       r.Email,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Role:        domain.Role(r.Role),
		PhoneNumber: r.PhoneNumber,
	}
}

type refugeeRequest struct {
	DateOfBirth       string `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	Gender            string `json:"gender" validate:"required,gender"`
	FamilySize        int    `json:"family_size" validate:"gte=1,lte=50"`
	CountryOfOrigin   string `json:"country_of_origin" validate:"required,max=100"`
	NativeLanguage    string `json:"native_language" validate:"max=50"`
	EducationLevel    string `json:"education_level" validate:"max=100"`
	Skills            string `json:"skills"`
	MedicalConditions string `json:"medical_conditions"`
	EmergencyContact  string `json:"emergency_contact" validate:"max=100"`
	Documents         string `json:"documents" validate:"max=255"`
}

func (r refugeeRequest) toInput() (service.RefugeeInput, error) {
	dob, err := time.Parse(dateLayout, r.DateOfBirth)
	if err != nil {
		return service.RefugeeInput{}, fmt.Errorf("%w: date_of_birth: %w", apperrors.ErrInvalidRequest, err)
	}

	return service.RefugeeInput{
		DateOfBirth:       dob,
		Gender:            domain.Gender(r.Gender),
		FamilySize:        r.FamilySize,
		CountryOfOrigin:   r.CountryOfOrigin,
		NativeLanguage:    r.NativeLanguage,
		EducationLevel:    r.EducationLevel,
		Skills:            r.Skills,
		MedicalConditions: r.MedicalConditions,
		EmergencyContact:  r.EmergencyContact,
		Documents:         r.Documents,
	}, nil
}

type reviewRequest struct {
	Status string `json:"status" validate:"required,registration_status,ne=pending"`
}

type ngoRequest struct {
	OrganizationName string `json:"organization_name" validate:"required,max=200"`
	OrganizationType string `json:"organization_type" validate:"max=100"`
	Location         string `json:"location" validate:"required,max=200"`
	ContactNumber    string `json:"contact_number" validate:"max=15"`
}

func (r ngoRequest) toInput() service.NGOInput {
	return service.NGOInput{
		OrganizationName: r.OrganizationName,
		OrganizationType: r.OrganizationType,
		Location:         r.Location,
		ContactNumber:    r.ContactNumber,
	}
}

type housingRequest struct {
	NGOID        *int64   `json:"ngo_id" validate:"omitempty,gt=0"`
	Name         string   `json:"name" validate:"required,max=200"`
	Description  string   `json:"description"`
	Location     string   `json:"location" validate:"required,max=200"`
	Address      string   `json:"address"`
	Capacity     int      `json:"capacity" validate:"gte=1"`
	HousingType  string   `json:"housing_type" validate:"required,housing_type"`
	Amenities    string   `json:"amenities"`
	Status       string   `json:"status" validate:"omitempty,housing_status"`
	CostPerMonth *float64 `json:"cost_per_month" validate:"omitempty,gte=0"`
}

func (r housingRequest) toInput() service.HousingInput {
	return service.HousingInput{
		NGOID:        r.NGOID,
		Name:         r.Name,
		Description:  r.Description,
		Location:     r.Location,
		Address:      r.Address,
		Capacity:     r.Capacity,
		HousingType:  domain.HousingType(r.HousingType),
		Amenities:    r.Amenities,
		Status:       domain.HousingStatus(r.Status),
		CostPerMonth: r.CostPerMonth,
	}
}

type jobRequest struct {
	NGOID        *int64    `json:"ngo_id" validate:"omitempty,gt=0"`
	Title        string    `json:"title" validate:"required,max=200"`
	Description  string    `json:"description"`
	Location     string    `json:"location" validate:"required,max=200"`
	Employer     string    `json:"employer" validate:"required,max=200"`
	JobType      string    `json:"job_type" validate:"required,job_type"`
	SalaryRange  string    `json:"salary_range" validate:"max=100"`
	Requirements string    `json:"requirements"`
	Benefits     string    `json:"benefits"`
	Deadline     time.Time `json:"deadline" validate:"required"`
	IsActive     *bool     `json:"is_active"`
}

func (r jobRequest) toInput() service.JobInput {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}

	return service.JobInput{
		NGOID:        r.NGOID,
		Title:        r.Title,
		Description:  r.Description,
		Location:     r.Location,
		Employer:     r.Employer,
		JobType:      domain.JobType(r.JobType),
		SalaryRange:  r.SalaryRange,
		Requirements: r.Requirements,
		Benefits:     r.Benefits,
		Deadline:     r.Deadline,
		IsActive:     active,
	}
}

type housingApplyRequest struct {
	Notes string `json:"notes" validate:"max=2000"`
}

type jobApplyRequest struct {
	CoverLetter string `json:"cover_letter" validate:"max=5000"`
	Resume      string `json:"resume" validate:"max=255"`
}

type decisionRequest struct {
	Decision string `json:"decision" validate:"required,decision"`
}

type statusRequest struct {
	Status        string     `json:"status" validate:"required,job_status"`
	InterviewDate *time.Time `json:"interview_date"`
	Notes         *string    `json:"notes" validate:"omitempty,max=2000"`
}

func (r statusRequest) toInput() service.AdvanceInput {
	return service.AdvanceInput{
		Status:        domain.ApplicationStatus(r.Status),
		InterviewDate: r.InterviewDate,
		Notes:         r.Notes,
	}
}
