package config

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/swipecal/swipecal/internal/date"
	"github.com/swipecal/swipecal/internal/selection"
	apperrors "github.com/swipecal/swipecal/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern = regexp.MustCompile(`^\d+\.\d+\.\d+(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
)

// validatorInstance configures and returns the shared validator instance used
// across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("pickerdate", func(fl validator.FieldLevel) bool {
			_, err := date.Parse(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("pickerview", func(fl validator.FieldLevel) bool {
			_, err := date.ParseView(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("pickermode", func(fl validator.FieldLevel) bool {
			_, err := selection.ParseMode(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("weekday", func(fl validator.FieldLevel) bool {
			_, err := ParseWeekday(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns the configured validator instance for use outside the
// config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// ValidateConfig runs structural validation plus the cross-field checks the
// tag language cannot express.
func ValidateConfig(cfg *Config) error {
	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	// Tags check each date in isolation; the bound ordering needs both.
	if cfg.Picker.MinDate != "" && cfg.Picker.MaxDate != "" {
		min, _ := date.Parse(cfg.Picker.MinDate)
		max, _ := date.Parse(cfg.Picker.MaxDate)
		if min.After(max) {
			return apperrors.NewValidationError("min_date",
				"min_date must not be after max_date", nil)
		}
	}

	return nil
}

// convertValidationError rewrites validator's error into the package error
// type, reporting the first offending field.
func convertValidationError(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return apperrors.NewValidationError("", err.Error(), err)
	}
	fe := verrs[0]
	return apperrors.NewValidationError(fe.Namespace(),
		fmt.Sprintf("failed %q validation", fe.Tag()), err)
}
