package errors

import "fmt"

// Error codes
const (
	CodeEngine     = "ENGINE_ERROR"
	CodeValidation = "VALIDATION_ERROR"
	CodeCache      = "CACHE_ERROR"
	CodeStore      = "STORE_ERROR"
)

type EngineError struct {
	Message    string
	Code       string
	StatusCode int
	Context    map[string]any
	Cause      error
}

func (e *EngineError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *EngineError) Unwrap() error {
	return e.Cause
}

func NewEngineError(message, code string, statusCode int, context map[string]any) *EngineError {
	return &EngineError{
		Message:    message,
		Code:       code,
		StatusCode: statusCode,
		Context:    context,
	}
}

func (e *EngineError) WithCause(cause error) *EngineError {
	e.Cause = cause
	return e
}

type ValidationError struct {
	*EngineError
	Field string
	Value any
}

func NewValidationError(message, field string, value any) *ValidationError {
	return &ValidationError{
		EngineError: &EngineError{
			Message:    message,
			Code:       CodeValidation,
			StatusCode: 400,
			Context: map[string]any{
				"field": field,
				"value": value,
			},
		},
		Field: field,
		Value: value,
	}
}

type CacheError struct {
	*EngineError
	Operation string
	Key       string
}

func NewCacheError(message, operation, key string, cause error) *CacheError {
	return &CacheError{
		EngineError: &EngineError{
			Message:    message,
			Code:       CodeCache,
			StatusCode: 500,
			Context: map[string]any{
				"operation": operation,
				"key":       key,
			},
			Cause: cause,
		},
		Operation: operation,
		Key:       key,
	}
}

// StoreError wraps persistence failures on the industry aggregate row. Callers
// treat read failures as "fall back to seeds" and write failures as
// log-and-continue; neither blocks a questionnaire submission.
type StoreError struct {
	*EngineError
	Operation string
	Industry  string
}

func NewStoreError(message, operation, industry string, cause error) *StoreError {
	return &StoreError{
		EngineError: &EngineError{
			Message:    message,
			Code:       CodeStore,
			StatusCode: 500,
			Context: map[string]any{
				"operation": operation,
				"industry":  industry,
			},
			Cause: cause,
		},
		Operation: operation,
		Industry:  industry,
	}
}
