package benchmark

import "github.com/pkg/errors"

// ErrConfig marks configuration errors. They are detected before any
// measurement starts and always abort the run.
var ErrConfig = errors.New("configuration error")

// ConfigError wraps ErrConfig with a description of the offending setting.
func ConfigError(format string, args ...interface{}) error {
	return errors.Wrapf(ErrConfig, format, args...)
}
