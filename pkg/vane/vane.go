// Package vane is the host-facing entry point of the helper runtime.
//
// It re-exports the common construction and lookup operations so rendering
// engines can drive helpers without importing each subsystem package:
//
//	double := vane.Helper(func(positional []any, named map[string]any) any {
//	    return positional[0].(int) * 2
//	})
//	mgr, err := vane.Lookup(double, nil)
package vane

import (
	"github.com/go-vane/vane/pkg/helper"
	"github.com/go-vane/vane/pkg/manager"
	"github.com/go-vane/vane/pkg/owner"
	"github.com/go-vane/vane/pkg/scheduler"
)

// Helper wraps fn as a function-based helper definition.
func Helper(fn helper.Function) helper.FunctionDefinition {
	return helper.New(fn)
}

// Lookup resolves the manager responsible for definition under o through
// the process-wide registry.
func Lookup(definition any, o owner.Owner) (manager.Manager, error) {
	return manager.Default().Resolve(definition, o)
}

// Flush drains the process-wide invalidation queue, dirtying every tag
// scheduled since the previous flush exactly once. Hosts call this once per
// run-loop turn, before reading tracked values.
func Flush() {
	scheduler.Default().Flush()
}
