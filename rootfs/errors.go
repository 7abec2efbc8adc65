package rootfs

import (
	"errors"
	"fmt"
)

// ConfigurationError is returned for an unknown configuration, an unsupported architecture or
// an unusable configuration file. No build is attempted after it.
type ConfigurationError struct {
	Message string
	Err     error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap ...
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// IsConfigurationError ...
func IsConfigurationError(err error) bool {
	var target *ConfigurationError
	return err != nil && errors.As(err, &target)
}

// RuntimeUnavailableError is returned when the container runtime can't be used.
type RuntimeUnavailableError struct {
	Sudo    bool
	Message string
	Err     error
}

func (e *RuntimeUnavailableError) Error() string {
	return e.Message
}

// Unwrap ...
func (e *RuntimeUnavailableError) Unwrap() error {
	return e.Err
}

// IsRuntimeUnavailableError ...
func IsRuntimeUnavailableError(err error) bool {
	var target *RuntimeUnavailableError
	return err != nil && errors.As(err, &target)
}
