package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/kubev2v/vdi-migration-planner/internal/reference"
)

func userTypeValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	_, err := reference.ParseUserType(val)
	return err == nil
}

func complexityValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	_, err := reference.ParseComplexity(val)
	return err == nil
}

func serviceNameValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	_, err := reference.ParseServiceName(val)
	return err == nil
}

func timelineValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	_, err := reference.ParseTimeline(val)
	return err == nil
}
