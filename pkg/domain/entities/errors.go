package entities

import "fmt"

// InvalidParameterError reports a malformed or out-of-range input value.
// The calculator and simulator validate eagerly and fail with this error
// rather than producing silently wrong numbers.
type InvalidParameterError struct {
	Field  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s", e.Field, e.Reason)
}

// ConfigurationError reports an internal mapping gap, such as a business
// priority with no configured service level. Unreachable for values built
// through this package.
type ConfigurationError struct {
	Detail string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s", e.Detail)
}
