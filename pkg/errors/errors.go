// Package errors provides structured error handling for the vane runtime.
package errors

import (
	"fmt"
	"strings"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindRegistration indicates that no manager is registered for a
	// helper definition.
	KindRegistration
	// KindContract indicates a helper definition that violates the manager
	// protocol, such as a factory producing an instance without Compute.
	KindContract
	// KindCapability indicates an unrecognized capability protocol version.
	KindCapability
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindRegistration:
		return "registration"
	case KindContract:
		return "contract"
	case KindCapability:
		return "capability"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// VaneError represents a structured error in the vane runtime.
type VaneError struct {
	// Op is the operation that failed (e.g., "manager.Resolve").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *VaneError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *VaneError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "manager.GetValue").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// RegistrationError reports that no manager factory is registered for a
// helper definition or any of its fallbacks. This is a programmer error:
// registration happens at startup and a miss is fatal, never retried.
type RegistrationError struct {
	// Definition is the debug name of the unresolvable definition.
	Definition string
}

func (e *RegistrationError) Error() string {
	return fmt.Sprintf("no helper manager registered for definition %s", e.Definition)
}

// ContractError reports a helper definition that violates the manager
// protocol. Surfaced at CreateHelper time so a misbehaving definition fails
// before it can produce a broken bucket deep inside a render pass.
type ContractError struct {
	// Definition is the debug name of the offending definition.
	Definition string
	// Missing names the required methods the produced instance lacks.
	Missing []string
	// Got describes what the factory produced instead.
	Got string
}

func (e *ContractError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("helper definition %s produced %s, which is missing %s",
			e.Definition, e.Got, strings.Join(e.Missing, " and "))
	}
	return fmt.Sprintf("helper definition %s violates the manager contract: %s", e.Definition, e.Got)
}

// CapabilityError reports an unrecognized capability protocol version,
// surfaced when a manager's capability descriptor is constructed.
type CapabilityError struct {
	// Version is the rejected version string.
	Version string
	// Recognized lists the protocol revisions this runtime understands.
	Recognized []string
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("unrecognized helper capabilities version %q (recognized: %s)",
		e.Version, strings.Join(e.Recognized, ", "))
}

// ErrorHandler receives errors reported by the vane runtime.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *VaneError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
