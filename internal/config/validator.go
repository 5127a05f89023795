package config

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidateConfig performs validation on the GlobalConfig structure.
func ValidateConfig(cfg *GlobalConfig) error {
	validate := validator.New()

	// Register custom validation for general file path (does not check existence)
	_ = validate.RegisterValidation("filepath", func(fl validator.FieldLevel) bool {
		return fl.Field().String() != ""
	})

	// Register custom validation for slices of URLs (ensure they are valid http(s) URLs)
	_ = validate.RegisterValidation("urls", func(fl validator.FieldLevel) bool {
		if fl.Field().Kind() != reflect.Slice {
			return false
		}
		slice, ok := fl.Field().Interface().([]string)
		if !ok {
			return false
		}
		for _, s := range slice {
			parsed, err := url.Parse(s)
			if err != nil || parsed.Host == "" {
				return false
			}
			if parsed.Scheme != "http" && parsed.Scheme != "https" {
				return false
			}
		}
		return true
	})

	// Register custom validation for run mode
	_ = validate.RegisterValidation("mode", func(fl validator.FieldLevel) bool {
		mode := fl.Field().String()
		return mode == "onetime" || mode == "automated"
	})

	// Register custom validation for log level
	_ = validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		level := strings.ToLower(fl.Field().String())
		switch level {
		case "trace", "debug", "info", "warn", "warning", "error", "fatal":
			return true
		}
		return false
	})

	// Register custom validation for log format
	_ = validate.RegisterValidation("logformat", func(fl validator.FieldLevel) bool {
		format := strings.ToLower(fl.Field().String())
		switch format {
		case "console", "json", "text":
			return true
		}
		return false
	})

	if err := validate.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			messages := make([]string, 0, len(validationErrors))
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("field '%s' failed on '%s' rule", fieldErr.Namespace(), fieldErr.Tag()))
			}
			return fmt.Errorf("config validation failed: %s", strings.Join(messages, "; "))
		}
		return err
	}

	return nil
}
