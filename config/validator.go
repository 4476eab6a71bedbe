package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Path    string
	Message string
}

// Error returns the error message.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidateConfig validates the configuration and returns all problems
// found.
func ValidateConfig(config *Config) []ValidationError {
	var errors []ValidationError

	if _, err := ParseLevel(string(config.Level)); err != nil {
		errors = append(errors, ValidationError{
			Path:    "level",
			Message: err.Error(),
		})
	}

	if _, err := ParseFormat(string(config.Format)); err != nil {
		errors = append(errors, ValidationError{
			Path:    "format",
			Message: err.Error(),
		})
	}

	switch config.Console.Stream {
	case "", "stdout", "stderr":
	default:
		errors = append(errors, ValidationError{
			Path:    "console.stream",
			Message: fmt.Sprintf("must be stdout or stderr, got %q", config.Console.Stream),
		})
	}

	if config.Console.Level != "" {
		if _, err := ParseLevel(string(config.Console.Level)); err != nil {
			errors = append(errors, ValidationError{
				Path:    "console.level",
				Message: err.Error(),
			})
		}
	}

	if config.Console.Format != "" {
		if _, err := ParseFormat(string(config.Console.Format)); err != nil {
			errors = append(errors, ValidationError{
				Path:    "console.format",
				Message: err.Error(),
			})
		}
	}

	if f := config.File; f != nil && f.Enabled {
		if f.Filename == "" && f.Directory == "" {
			errors = append(errors, ValidationError{
				Path:    "file",
				Message: "either filename or directory is required",
			})
		}
		if f.MaxSizeMB < 0 {
			errors = append(errors, ValidationError{
				Path:    "file.maxSizeMb",
				Message: "must not be negative",
			})
		}
		if f.MaxBackups < 0 {
			errors = append(errors, ValidationError{
				Path:    "file.maxBackups",
				Message: "must not be negative",
			})
		}
		if f.MaxAgeDays < 0 {
			errors = append(errors, ValidationError{
				Path:    "file.maxAgeDays",
				Message: "must not be negative",
			})
		}
		if f.Level != "" {
			if _, err := ParseLevel(string(f.Level)); err != nil {
				errors = append(errors, ValidationError{
					Path:    "file.level",
					Message: err.Error(),
				})
			}
		}
		if f.Format != "" {
			if _, err := ParseFormat(string(f.Format)); err != nil {
				errors = append(errors, ValidationError{
					Path:    "file.format",
					Message: err.Error(),
				})
			}
		}
	}

	if config.Performance.ThresholdMS < 0 {
		errors = append(errors, ValidationError{
			Path:    "performance.thresholdMs",
			Message: "must not be negative",
		})
	}

	if config.Performance.IntervalSeconds < 0 {
		errors = append(errors, ValidationError{
			Path:    "performance.intervalSeconds",
			Message: "must not be negative",
		})
	}

	return errors
}

// Validate validates the configuration, joining all problems into one
// error.
func (c *Config) Validate() error {
	errors := ValidateConfig(c)
	if len(errors) == 0 {
		return nil
	}

	msgs := make([]string, len(errors))
	for i, err := range errors {
		msgs[i] = err.Error()
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}
