package usecase

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hemant-mistri/portfolio/internal/mailer"
)

// ValidationError means the submission is incomplete. Maps to 400.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Missing, ", "))
}

// ConfigurationError means the server lacks mail credentials. Maps to 500.
type ConfigurationError struct {
	Missing []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("email service not configured: %s unset", strings.Join(e.Missing, ", "))
}

// DeliveryError wraps a transport or provider failure. Maps to 500.
type DeliveryError struct {
	Code     string
	Response string
	Err      error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("deliver contact email: %v", e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

func newDeliveryError(err error) *DeliveryError {
	de := &DeliveryError{Err: err}
	var se *mailer.SendError
	if errors.As(err, &se) {
		de.Code = se.Code
		de.Response = se.Response
	}
	return de
}

// Debug returns the provider diagnostics safe to hand back to a client.
func (e *DeliveryError) Debug() map[string]any {
	debug := map[string]any{"message": e.Err.Error()}
	if e.Code != "" {
		debug["code"] = e.Code
	}
	if e.Response != "" {
		debug["response"] = e.Response
	}
	return debug
}
