// Package errors provides custom error types for domain-specific errors.
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors
var (
	ErrEmptySeries         = errors.New("empty bar series")
	ErrInsufficientHistory = errors.New("insufficient history for rolling window")
	ErrDataNotFound        = errors.New("data not found")
	ErrConfigInvalid       = errors.New("invalid configuration")
	ErrRateLimited         = errors.New("rate limited")
	ErrDatabaseError       = errors.New("database error")
)

// ProviderError represents an error from a market data provider.
type ProviderError struct {
	Provider string
	Ticker   string
	Message  string
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("provider error [%s] %s: %s: %v", e.Provider, e.Ticker, e.Message, e.Err)
	}
	return fmt.Sprintf("provider error [%s] %s: %s", e.Provider, e.Ticker, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError creates a new ProviderError.
func NewProviderError(provider, ticker, message string, err error) *ProviderError {
	return &ProviderError{
		Provider: provider,
		Ticker:   ticker,
		Message:  message,
		Err:      err,
	}
}

// ValidationError represents a validation error.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s (%v): %s", e.Field, e.Value, e.Message)
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// SeriesError reports a bar series that cannot support the requested
// analysis, such as one shorter than the rolling-window buffer.
type SeriesError struct {
	Have int
	Need int
	Err  error
}

func (e *SeriesError) Error() string {
	return fmt.Sprintf("series error: have %d bars, need %d: %v", e.Have, e.Need, e.Err)
}

func (e *SeriesError) Unwrap() error {
	return e.Err
}

// NewSeriesError creates a new SeriesError wrapping a sentinel.
func NewSeriesError(have, need int, err error) *SeriesError {
	return &SeriesError{
		Have: have,
		Need: need,
		Err:  err,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
