package growplan

import (
	"errors"
	"fmt"
)

// InvalidParameterError reports a caller contract violation: a value the
// engine cannot compute with, such as a non-positive yield, a negative stage
// duration, or a malformed recurrence definition. The engine fails fast on
// these instead of substituting defaults; yield fallbacks are caller policy
// and must stay in calling code.
type InvalidParameterError struct {
	Param  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s", e.Param, e.Reason)
}

// IsInvalidParameter reports whether err is, or wraps, an InvalidParameterError.
func IsInvalidParameter(err error) bool {
	var ipe *InvalidParameterError
	return errors.As(err, &ipe)
}

func invalidParam(param, format string, args ...interface{}) error {
	return &InvalidParameterError{Param: param, Reason: fmt.Sprintf(format, args...)}
}
