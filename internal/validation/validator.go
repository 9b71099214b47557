// package validation provides helper functions for request data validation.
// It uses the go-playground/validator library and registers the domain
// enumerations as custom tags.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/YusovID/refugee-case-service/internal/domain"
	"github.com/go-playground/validator/v10"
)

var (
	validate = validator.New()
	idRe     = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)
)

// enumTags maps a tag to the values it accepts.
var enumTags = map[string][]string{
	"role":           {string(domain.RoleAdmin), string(domain.RoleNGO), string(domain.RoleRefugee)},
	"signup_role":    {string(domain.RoleNGO), string(domain.RoleRefugee)},
	"decision":       {string(domain.DecisionApproved), string(domain.DecisionRejected)},
	"gender":         {string(domain.GenderMale), string(domain.GenderFemale), string(domain.GenderOther)},
	"housing_type":   {string(domain.HousingCamp), string(domain.HousingPrivate), string(domain.HousingApartment), string(domain.HousingShelter)},
	"housing_status": {string(domain.HousingAvailable), string(domain.HousingOccupied), string(domain.HousingMaintenance), string(domain.HousingReserved)},
	"job_type":       {string(domain.JobFullTime), string(domain.JobPartTime), string(domain.JobContract), string(domain.JobTemporary)},
	"job_status": {
		string(domain.StatusShortlisted), string(domain.StatusInterview), string(domain.StatusOffered),
		string(domain.StatusAccepted), string(domain.StatusRejected), string(domain.StatusWithdrawn),
	},
	"registration_status": {string(domain.RegistrationPending), string(domain.RegistrationApproved), string(domain.RegistrationRejected)},
}

func init() {
	// custom_id allows letters, numbers, dots, hyphens and underscores.
	// Empty strings are left to the 'required' tag.
	mustRegister("custom_id", func(fl validator.FieldLevel) bool {
		if fl.Field().String() == "" {
			return true
		}

		return idRe.MatchString(fl.Field().String())
	})

	for tag, values := range enumTags {
		mustRegister(tag, oneOf(values))
	}
}

func mustRegister(tag string, fn validator.Func) {
	if err := validate.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("failed to register custom validation %q: %v", tag, err))
	}
}

func oneOf(values []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		v := fl.Field().String()
		if v == "" {
			return true
		}

		for _, allowed := range values {
			if v == allowed {
				return true
			}
		}

		return false
	}
}

// ValidationError is a custom error type that holds a slice of validation error messages.
type ValidationError struct {
	Errors []string
}

// Error returns a single string concatenating all validation error messages.
func (v *ValidationError) Error() string {
	return strings.Join(v.Errors, ", ")
}

// ValidateStruct performs validation on a given struct based on its validation tags.
// If validation fails, it returns a *ValidationError with user-friendly messages.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return &ValidationError{Errors: []string{err.Error()}}
	}

	messages := make([]string, 0, len(fieldErrs))

	for _, fe := range fieldErrs {
		var message string

		switch tag := fe.Tag(); {
		case tag == "custom_id":
			message = fmt.Sprintf(
				"field '%s' must contain only letters, numbers, dots, hyphens, and underscores",
				fe.Field(),
			)
		case enumTags[tag] != nil:
			message = fmt.Sprintf(
				"field '%s' must be one of: %s",
				fe.Field(),
				strings.Join(enumTags[tag], ", "),
			)
		default:
			message = fmt.Sprintf(
				"field '%s' failed on the '%s' tag",
				fe.Field(),
				fe.Tag(),
			)
		}

		messages = append(messages, message)
	}

	return &ValidationError{Errors: messages}
}
