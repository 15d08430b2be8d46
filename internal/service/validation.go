// internal/service/validation.go
package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/dangerclosesec/adoptionhub/internal/domain"
	"github.com/go-playground/validator/v10"
)

// newValidator reports field errors under their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validationError wraps validator failures with domain.ErrInvalidInput and a
// readable summary. Score range failures also match domain.ErrInvalidScore.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}

	var (
		parts []string
		score bool
	)
	for _, fe := range verrs {
		if fe.Field() == "adoption_score" {
			score = true
		}
		switch fe.Tag() {
		case "min", "gte":
			parts = append(parts, fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param()))
		case "max", "lte":
			parts = append(parts, fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param()))
		case "oneof":
			parts = append(parts, fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param()))
		default:
			parts = append(parts, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
	}

	msg := strings.Join(parts, "; ")
	if score {
		return fmt.Errorf("%w: %w: %s", domain.ErrInvalidInput, domain.ErrInvalidScore, msg)
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, msg)
}
