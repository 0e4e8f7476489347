package exceptions

import (
	"errors"
	"proacolhe-service/internal/pkg/constvars"
	"strings"

	"github.com/go-playground/validator/v10"
)

func FormatFirstValidationError(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return constvars.ErrDevInvalidInput
	}

	firstErr := validationErrors[0]
	fieldName := toSnakeCase(firstErr.Field())
	tag := firstErr.Tag()
	customMessage, ok := constvars.CustomValidationErrorMessages[tag]
	if !ok {
		customMessage = "is invalid"
	}

	if constvars.TagsWithParams[tag] {
		if tag == "oneof" {
			customMessage = strings.Replace(customMessage, "%s", strings.Join(strings.Fields(firstErr.Param()), ", "), 1)
		} else {
			customMessage = strings.Replace(customMessage, "%s", firstErr.Param(), 1)
		}
	}
	return fieldName + " " + customMessage
}

func toSnakeCase(field string) string {
	var builder strings.Builder
	var previous rune
	for _, r := range field {
		if r >= 'A' && r <= 'Z' {
			if previous >= 'a' && previous <= 'z' {
				builder.WriteByte('_')
			}
			builder.WriteRune(r + ('a' - 'A'))
		} else {
			builder.WriteRune(r)
		}
		previous = r
	}
	return builder.String()
}
