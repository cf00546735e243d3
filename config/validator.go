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

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	return e.Message
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// HasErrors returns true if there are validation errors.
func (e ValidationErrors) HasErrors() bool {
	return len(e) > 0
}

// ValidateConfig validates the root configuration. It returns nil when the
// configuration is valid.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return ValidationErrors{{Message: "configuration is nil"}}
	}

	var errs ValidationErrors
	errs = append(errs, validateNegotiation(cfg.Negotiation)...)
	errs = append(errs, validateLogging(cfg.Logging)...)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// validateNegotiation checks the negotiation section.
func validateNegotiation(nc *NegotiationConfig) ValidationErrors {
	var errs ValidationErrors

	if nc.IsEmpty() {
		errs = append(errs, ValidationError{
			Path:    "negotiation",
			Message: "at least one family must list supported values",
		})
		return errs
	}

	errs = append(errs, validateValues("negotiation.mediaTypes", nc.MediaTypes, true)...)
	errs = append(errs, validateValues("negotiation.languages", nc.Languages, false)...)
	errs = append(errs, validateValues("negotiation.encodings", nc.Encodings, false)...)
	errs = append(errs, validateValues("negotiation.charsets", nc.Charsets, false)...)

	return errs
}

// validateValues checks one family's value list for empty entries,
// duplicates and, for media types, the type/subtype shape.
func validateValues(path string, values []string, mediaType bool) ValidationErrors {
	var errs ValidationErrors

	seen := make(map[string]struct{}, len(values))
	for i, raw := range values {
		trimmed := strings.TrimSpace(raw)
		value := trimmed
		if idx := strings.IndexByte(value, ';'); idx >= 0 {
			value = strings.TrimSpace(value[:idx])
		}

		entryPath := fmt.Sprintf("%s[%d]", path, i)

		if value == "" {
			errs = append(errs, ValidationError{
				Path:    entryPath,
				Message: "value must not be empty",
			})
			continue
		}

		if strings.ContainsAny(value, " \t") {
			errs = append(errs, ValidationError{
				Path:    entryPath,
				Message: fmt.Sprintf("value %q must not contain whitespace", value),
			})
		}

		if mediaType && strings.Count(value, "/") != 1 {
			errs = append(errs, ValidationError{
				Path:    entryPath,
				Message: fmt.Sprintf("media type %q must be of the form type/subtype", value),
			})
		}

		// Parameters distinguish entries, so duplicates are detected on the
		// full configured value.
		key := strings.ToLower(trimmed)
		if _, dup := seen[key]; dup {
			errs = append(errs, ValidationError{
				Path:    entryPath,
				Message: fmt.Sprintf("duplicate value %q", value),
			})
		}
		seen[key] = struct{}{}
	}

	return errs
}

// validateLogging checks the logging section.
func validateLogging(lc *LoggingConfig) ValidationErrors {
	if lc == nil {
		return nil
	}

	var errs ValidationErrors

	switch lc.Level {
	case "", "debug", "info", "warn", "error":
	default:
		errs = append(errs, ValidationError{
			Path:    "logging.level",
			Message: fmt.Sprintf("unknown level %q", lc.Level),
		})
	}

	switch lc.Format {
	case "", "json", "console":
	default:
		errs = append(errs, ValidationError{
			Path:    "logging.format",
			Message: fmt.Sprintf("unknown format %q", lc.Format),
		})
	}

	switch lc.Output {
	case "", "stdout", "stderr":
	default:
		errs = append(errs, ValidationError{
			Path:    "logging.output",
			Message: fmt.Sprintf("unknown output %q", lc.Output),
		})
	}

	return errs
}
