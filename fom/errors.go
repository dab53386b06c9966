package fom

import (
	"errors"
	"fmt"
)

// Configuration errors are construction-time failures. None of them are
// recoverable mid-federation: the configuration input must be fixed and the
// pass re-run. There are no retry semantics.

// ConfigurationError reports a missing or inconsistent required field on a
// descriptor or federate.
type ConfigurationError struct {
	FOMType  string // FOM type of the offending descriptor, if any
	Instance string // instance name, if known
	Field    string // the field that failed validation
	Reason   string // human-readable description
}

func (e *ConfigurationError) Error() string {
	if e.Instance != "" {
		return fmt.Sprintf("configuration error: %s %q: %s: %s", e.FOMType, e.Instance, e.Field, e.Reason)
	}
	return fmt.Sprintf("configuration error: %s: %s: %s", e.FOMType, e.Field, e.Reason)
}

// DuplicateAttributeError reports two attributes registered under the same
// logical name on one object.
type DuplicateAttributeError struct {
	Instance    string // owning object instance name
	FOMType     string // owning object FOM type
	LogicalName string // colliding attribute name
}

func (e *DuplicateAttributeError) Error() string {
	return fmt.Sprintf("duplicate attribute %q on %s %q", e.LogicalName, e.FOMType, e.Instance)
}

// MultipleRootsError reports a second parentless reference frame in a
// registry that already holds a root.
type MultipleRootsError struct {
	ExistingRoot string // instance name of the frame already marked root
	Instance     string // instance name of the rejected frame
}

func (e *MultipleRootsError) Error() string {
	return fmt.Sprintf("reference frame %q declared as root but %q is already the root", e.Instance, e.ExistingRoot)
}

// DanglingParentError reports a reference frame whose declared parent does
// not match any frame registered so far. Parents must be registered before
// their children.
type DanglingParentError struct {
	Instance   string // instance name of the rejected frame
	ParentName string // the unresolved parent name
}

func (e *DanglingParentError) Error() string {
	return fmt.Sprintf("reference frame %q names unknown parent %q", e.Instance, e.ParentName)
}

// IsConfigurationError reports whether err is, or wraps, a ConfigurationError.
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}

// IsDuplicateAttribute reports whether err is, or wraps, a DuplicateAttributeError.
func IsDuplicateAttribute(err error) bool {
	var de *DuplicateAttributeError
	return errors.As(err, &de)
}

// IsDanglingParent reports whether err is, or wraps, a DanglingParentError.
func IsDanglingParent(err error) bool {
	var de *DanglingParentError
	return errors.As(err, &de)
}

// IsMultipleRoots reports whether err is, or wraps, a MultipleRootsError.
func IsMultipleRoots(err error) bool {
	var me *MultipleRootsError
	return errors.As(err, &me)
}
