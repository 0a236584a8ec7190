package manager

import (
	"github.com/go-vane/vane/pkg/errors"
)

// report routes a typed failure through the global error handler before it
// is returned to the caller, so handlers observe every protocol violation
// even when the call site discards the error.
func report(op string, kind errors.ErrorKind, err error) error {
	errors.Report(&errors.VaneError{
		Op:         op,
		Kind:       kind,
		Err:        err,
		StackTrace: errors.CaptureStack(),
	})
	return err
}

// reportPanics is deferred around user helper code. A recovered panic is
// reported through the global handler and then rethrown, so the host's
// handler sees the failure before the host's own recovery runs.
func reportPanics(op string) {
	if r := recover(); r != nil {
		errors.ReportPanic(&errors.PanicError{
			Op:         op,
			Value:      r,
			StackTrace: errors.CaptureStack(),
		})
		panic(r)
	}
}
