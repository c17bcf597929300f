package config

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
	"github.com/go-playground/validator/v10"

	clarivuserrors "github.com/alexisbeaulieu97/clarivus/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	cssIdentPattern = regexp.MustCompile(`^-?[A-Za-z_][A-Za-z0-9_-]*-?$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// Report mapstructure keys so messages match what users write in clarivus.yaml.
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("mapstructure"), ",")
			if name == "" || name == "-" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			_, err := semver.NewVersion(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("css_ident", func(fl validator.FieldLevel) bool {
			return cssIdentPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns a configured validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// convertValidationError normalizes validator errors into clarivus validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := ve.Field()
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return clarivuserrors.NewValidationError(field, msg, err)
	}

	return clarivuserrors.NewValidationError("config", err.Error(), err)
}
