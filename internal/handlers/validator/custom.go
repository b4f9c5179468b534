package validator

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/dentamatch/marketplace/internal/matching"
	"github.com/dentamatch/marketplace/internal/store/model"
)

func futureDateValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	return val.After(time.Now())
}

func futureDatesValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().([]time.Time)
	if !ok {
		return false
	}
	now := time.Now()
	for _, d := range val {
		if !d.After(now) {
			return false
		}
	}
	return true
}

func shiftHoursValidator(fl validator.FieldLevel) bool {
	hours, ok := fl.Field().Interface().(int)
	if !ok {
		return false
	}
	return hours >= 1 && hours <= 12
}

func employmentTypeValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return val == model.EmploymentFullTime || val == model.EmploymentPartTime
}

func professionalRoleValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	_, err := matching.ParseRole(val)
	return err == nil
}
