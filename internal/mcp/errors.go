package mcp

import (
	"errors"
	"fmt"

	"github.com/spitfire8790/learn2code/internal/domain/curriculum"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// mapError maps domain errors to MCP error codes. Lookup misses are
// explicit not-found signals, never panics or opaque failures.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, curriculum.ErrPhaseNotFound):
		return &APIError{Code: "PHASE_NOT_FOUND", Message: "phase not found", RecoveryHint: "Call list_phases for valid ids"}
	case errors.Is(err, curriculum.ErrModuleNotFound):
		return &APIError{Code: "MODULE_NOT_FOUND", Message: "module not found in phase", RecoveryHint: "Call get_phase for valid module ids"}
	default:
		return err
	}
}
