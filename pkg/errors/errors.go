package errors

import "fmt"

// Common error types.
var (
	// Config errors.
	ErrEmptyConfigPath   = fmt.Errorf("config file path cannot be empty")
	ErrInvalidConfigPath = fmt.Errorf("invalid config file path")
	ErrConfigParse       = fmt.Errorf("failed to parse config")
	ErrConfigValidation  = fmt.Errorf("invalid configuration")
	ErrConfigEncode      = fmt.Errorf("failed to encode config")
	ErrConfigDirectory   = fmt.Errorf("failed to create config directory")
	ErrConfigFileCreate  = fmt.Errorf("failed to create config file")
	ErrConfigVersion     = fmt.Errorf("unsupported config version")

	// Hook errors. These are only raised during pre-flight validation;
	// hook runtime failures are logged and swallowed, never returned.
	ErrHookNotFound      = fmt.Errorf("hook command not found")
	ErrHookNotExecutable = fmt.Errorf("hook command not executable")

	// Renewal errors.
	ErrRenewalIncomplete = fmt.Errorf("some renewals failed")
	ErrRenewCommand      = fmt.Errorf("renew command failed")
)

// Wrap wraps an error with additional context.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf wraps an error with additional formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
