// Package validate provides shared validation functions for form fields and
// journal input. Each check takes a raw string so it can back both a huh
// input and a criterio field.
package validate

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/hay-kot/criterio"
)

// Required validates a value is non-empty after trimming whitespace.
func Required(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("is required")
	}
	return nil
}

// Date validates an optional YYYY-MM-DD date.
func Date(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse(time.DateOnly, s); err != nil {
		return fmt.Errorf("must be a date like 2006-01-02")
	}
	return nil
}

// PositiveInt validates s parses as an integer greater than zero.
func PositiveInt(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("must be a whole number")
	}
	if n <= 0 {
		return fmt.Errorf("must be greater than zero")
	}
	return nil
}

// OptionalInt validates s is empty or a non-negative integer.
func OptionalInt(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("must be a whole number")
	}
	if n < 0 {
		return fmt.Errorf("cannot be negative")
	}
	return nil
}

// PositiveFloat validates s parses as a number greater than zero.
func PositiveFloat(s string) error {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if f <= 0 {
		return fmt.Errorf("must be greater than zero")
	}
	return nil
}

// OneOf returns a validator accepting only the given values.
func OneOf[S ~string](allowed ...S) func(string) error {
	return func(s string) error {
		if !slices.Contains(allowed, S(s)) {
			return fmt.Errorf("must be one of %v", allowed)
		}
		return nil
	}
}

// RequiredField returns a criterio validator for a required text field.
func RequiredField(field, value string) error {
	return criterio.Run(field, value, Required)
}

// DateField returns a criterio validator for an optional date field.
func DateField(field, value string) error {
	return criterio.Run(field, value, Date)
}
