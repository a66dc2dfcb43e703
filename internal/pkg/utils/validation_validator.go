package utils

import (
	"github.com/go-playground/validator/v10"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/constvars"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("weekday", validateWeekday)
	validate.RegisterValidation("clock_time", validateClockTime)
	validate.RegisterValidation("specialization", validateSpecialization)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateWeekday(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.WeekdayAll || IsValidWeekday(value)
}

func validateClockTime(fl validator.FieldLevel) bool {
	return IsValidTime(fl.Field().String())
}

func validateSpecialization(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.SpecializationGeneral || value == constvars.SpecializationSpecialized
}
