package validator

import "github.com/go-playground/validator/v10"

func registerFn(tag string, fn func(fl validator.FieldLevel) bool) func(v *validator.Validate) {
	return func(v *validator.Validate) {
		_ = v.RegisterValidation(tag, fn)
	}
}

// NewJobValidationRules covers every custom tag used by the job create and
// update payloads.
func NewJobValidationRules() []ValidationRule {
	return []ValidationRule{
		{
			Rule: registerFn("future_date", futureDateValidator),
		},
		{
			Rule: registerFn("future_dates", futureDatesValidator),
		},
		{
			Rule: registerFn("shift_hours", shiftHoursValidator),
		},
		{
			Rule: registerFn("employment_type", employmentTypeValidator),
		},
		{
			Rule: registerFn("professional_role", professionalRoleValidator),
		},
	}
}

// NewProfessionalValidationRules covers the profile payload.
func NewProfessionalValidationRules() []ValidationRule {
	return []ValidationRule{
		{
			Rule: registerFn("professional_role", professionalRoleValidator),
		},
	}
}
