package configcache

import "github.com/jmgilman/go/errors"

/*
The cache has exactly two failure modes and each gets its own error code:

- Configuration errors: the constructor was handed arguments that can never
  work (zero capacity, non-positive TTL, nil factory). Fatal, synchronous.
- Construction errors: the Factory failed to build a configuration. The
  cause is preserved in the chain; cache state is left untouched.

Invalidate never fails, including invalidating an absent release.
*/

func newConfigurationError(format string, args ...interface{}) error {
	return errors.Newf(errors.CodeInvalidConfig, format, args...)
}

func newConstructionError(cause error, release string) error {
	return errors.Wrapf(cause, errors.CodeBuildFailed, "building configuration for release %q", release)
}

// IsConfigurationError reports whether err came from constructor validation.
func IsConfigurationError(err error) bool {
	return errors.GetCode(err) == errors.CodeInvalidConfig
}

// IsConstructionError reports whether err wraps a Factory failure.
func IsConstructionError(err error) bool {
	return errors.GetCode(err) == errors.CodeBuildFailed
}
