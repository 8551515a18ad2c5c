package helpers

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"stock-dashboard/src/logger"
)

// -----------------------------------------------------------------------------
// Custom Error Types
// -----------------------------------------------------------------------------

type DashboardError struct {
	Message string
	Cause   error
}

func (e *DashboardError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DashboardError) Unwrap() error {
	return e.Cause
}

// Distinct error types for errors.As checks
type ConfigurationError struct{ DashboardError }

// ShapeError reports an upstream body that is neither a bare instrument array
// nor an object carrying one at the configured result path.
type ShapeError struct{ DashboardError }

// TransportError reports a failed or non-2xx upstream request.
// StatusCode is 0 when no response was received.
type TransportError struct {
	DashboardError
	StatusCode int
}

// -----------------------------------------------------------------------------

func NewShapeError(message string, cause error) error {
	return &ShapeError{DashboardError{Message: message, Cause: cause}}
}

func NewTransportError(message string, status int, cause error) error {
	return &TransportError{DashboardError: DashboardError{Message: message, Cause: cause}, StatusCode: status}
}

func NewConfigurationError(message string, cause error) error {
	return &ConfigurationError{DashboardError{Message: message, Cause: cause}}
}

// IsShapeError reports whether err (or anything it wraps) is a ShapeError
func IsShapeError(err error) bool {
	var target *ShapeError
	return errors.As(err, &target)
}

// IsTransportError reports whether err (or anything it wraps) is a TransportError
func IsTransportError(err error) bool {
	var target *TransportError
	return errors.As(err, &target)
}

// -----------------------------------------------------------------------------
// Error Handler
// -----------------------------------------------------------------------------

// ErrorHandler logs failed operations and keeps a running count of consecutive
// failures. A success resets the count.
type ErrorHandler struct {
	logger *logger.Logger

	mu          sync.Mutex
	consecutive int
	lastError   error
	lastErrorAt time.Time
}

func NewErrorHandler(log *logger.Logger) *ErrorHandler {
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &ErrorHandler{logger: log}
}

// -----------------------------------------------------------------------------

// Handle records and logs err. nil errors are ignored.
func (e *ErrorHandler) Handle(err error, context string) {
	if err == nil {
		return
	}

	e.mu.Lock()
	e.consecutive++
	e.lastError = err
	e.lastErrorAt = time.Now()
	count := e.consecutive
	e.mu.Unlock()

	switch {
	case IsShapeError(err):
		e.logger.Error("Unexpected upstream shape in %s (failure #%d): %v", context, count, err)
	case IsTransportError(err):
		e.logger.Warning("Transport failure in %s (failure #%d): %v", context, count, err)
	default:
		e.logger.Error("Error in %s (failure #%d): %v", context, count, err)
	}
}

// -----------------------------------------------------------------------------

func (e *ErrorHandler) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.consecutive = 0
}

func (e *ErrorHandler) Count() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.consecutive
}

// LastError returns the most recent error and when it was recorded.
// The last error survives Reset so the status endpoint can still show it.
func (e *ErrorHandler) LastError() (error, time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastError, e.lastErrorAt
}
