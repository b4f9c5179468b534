package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// fieldMessages maps (field, tag) to a user-facing message. Tags without
// an entry fall back to a generic message.
var fieldMessages = map[string]string{
	"Hours/shift_hours":                  "Hours must be between 1 and 12",
	"HoursPerDay/shift_hours":            "Hours per day must be between 1 and 12",
	"Date/future_date":                   "Date must be in the future",
	"Dates/future_dates":                 "All dates must be in the future",
	"Dates/min":                          "At least one date is required",
	"Dates/max":                          "At most 30 dates are allowed",
	"HourlyRate/min":                     "Hourly rate is below the allowed minimum",
	"HourlyRate/max":                     "Hourly rate is above the allowed maximum",
	"SalaryMin/min":                      "Salary must be at least 20000",
	"SalaryMin/max":                      "Salary must be at most 500000",
	"SalaryMax/gtfield":                  "Maximum salary must be greater than minimum salary",
	"EmploymentType/employment_type":     "Employment type must be full_time or part_time",
	"Benefits/min":                       "At least one benefit is required",
	"ProfessionalRole/professional_role": "Unknown professional role",
	"Role/professional_role":             "Unknown professional role",
	"ProfessionalSubs/min":               "At least one professional is required",
}

// translate converts validator errors into user-facing messages.
func translate(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		key := fe.Field() + "/" + fe.Tag()
		if msg, ok := fieldMessages[key]; ok {
			messages = append(messages, msg)
			continue
		}
		messages = append(messages, fmt.Sprintf("%s failed validation on '%s'", fe.Field(), fe.Tag()))
	}

	return fmt.Errorf("%s", strings.Join(messages, "; "))
}
