package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var tagMessages = map[string]string{
	"required":     "is required",
	"user_type":    "must be one of task_worker, knowledge_worker, power_user, graphics_user",
	"complexity":   "must be one of Low, Medium, High",
	"service_name": "must be one of workspaces, appstream, ec2_vdi",
	"timeline":     "must be one of Aggressive, Standard, Conservative",
	"gte":          "must be greater than or equal to %s",
	"lte":          "must be less than or equal to %s",
	"max":          "must be at most %s characters",
}

// Message turns a validation error into one line per failed field.
// Errors not produced by the validator are returned as is.
func Message(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msg, ok := tagMessages[fe.Tag()]
		if !ok {
			msg = fmt.Sprintf("failed on %q", fe.Tag())
		} else if strings.Contains(msg, "%s") {
			msg = fmt.Sprintf(msg, fe.Param())
		}
		parts = append(parts, fmt.Sprintf("%s %s", fieldName(fe), msg))
	}
	return strings.Join(parts, "; ")
}

// fieldName drops the struct name prefix: "AssessmentRequest.Population[x]" -> "Population[x]".
func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}
