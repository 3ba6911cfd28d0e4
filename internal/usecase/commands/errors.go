package commands

import (
	"errors"
	"fmt"

	"ctmBot/internal/domain"
)

// UsageError tells the dispatcher to answer with the command's registered usage string.
type UsageError struct {
	Reason string
}

func (e *UsageError) Error() string {
	if e.Reason == "" {
		return "usage error"
	}
	return "usage error: " + e.Reason
}

// MessageError carries a literal, user-facing explanation.
type MessageError struct {
	Message string
}

func (e *MessageError) Error() string { return e.Message }

// ConfigurationError is raised while building the registry and must abort startup.
type ConfigurationError struct {
	Platform domain.Platform
	Alias    string
	Reason   string
}

func (e *ConfigurationError) Error() string {
	if e.Alias == "" {
		return "commands: configuration: " + e.Reason
	}
	return fmt.Sprintf("commands: configuration: alias %q on %s: %s", e.Alias, e.Platform, e.Reason)
}

// Usage returns a usage error. The optional reason is only logged.
func Usage(reason ...string) error {
	if len(reason) > 0 {
		return &UsageError{Reason: reason[0]}
	}
	return &UsageError{}
}

// Fail returns a message error rendered verbatim to the user.
func Fail(msg string) error {
	return &MessageError{Message: msg}
}

func Failf(format string, args ...any) error {
	return &MessageError{Message: fmt.Sprintf(format, args...)}
}

func IsUsageError(err error) bool {
	var target *UsageError
	return errors.As(err, &target)
}

func IsConfigurationError(err error) bool {
	var target *ConfigurationError
	return errors.As(err, &target)
}
