// Package apperr classifies the failure modes of the write and read paths
// so handlers can map them to HTTP statuses without inspecting driver
// errors. Four kinds exist: invalid input, missing target, uniqueness
// conflict, and storage unavailable.
package apperr

import (
	"errors"
	"fmt"
)

// Kind sentinels. Classified errors wrap exactly one of these, so
// errors.Is(err, KindNotFound) etc. works through arbitrary wrapping.
var (
	KindValidation  = errors.New("validation")
	KindNotFound    = errors.New("not found")
	KindConflict    = errors.New("conflict")
	KindUnavailable = errors.New("storage unavailable")
)

type classified struct {
	kind error
	err  error
}

func (c *classified) Error() string { return c.err.Error() }
func (c *classified) Unwrap() error { return c.err }

// Is reports kind membership in addition to normal unwrapping, so a
// classified error matches both its kind sentinel and its cause chain.
func (c *classified) Is(target error) bool { return target == c.kind }

func classify(kind, err error) error {
	if err == nil {
		return nil
	}
	return &classified{kind: kind, err: err}
}

// Validation marks err as invalid caller input.
func Validation(err error) error { return classify(KindValidation, err) }

// Validationf builds a validation error from a format string.
func Validationf(format string, args ...any) error {
	return classify(KindValidation, fmt.Errorf(format, args...))
}

// NotFound marks err as an absent operation target.
func NotFound(err error) error { return classify(KindNotFound, err) }

// NotFoundf builds a not-found error from a format string.
func NotFoundf(format string, args ...any) error {
	return classify(KindNotFound, fmt.Errorf(format, args...))
}

// Conflict marks err as a uniqueness violation.
func Conflict(err error) error { return classify(KindConflict, err) }

// Unavailable marks err as a transport or transaction failure.
func Unavailable(err error) error { return classify(KindUnavailable, err) }

// IsValidation reports whether err is classified as invalid input.
func IsValidation(err error) bool { return errors.Is(err, KindValidation) }

// IsNotFound reports whether err is classified as an absent target.
func IsNotFound(err error) bool { return errors.Is(err, KindNotFound) }

// IsConflict reports whether err is classified as a uniqueness violation.
func IsConflict(err error) bool { return errors.Is(err, KindConflict) }

// IsUnavailable reports whether err is classified as a storage failure.
func IsUnavailable(err error) bool { return errors.Is(err, KindUnavailable) }
