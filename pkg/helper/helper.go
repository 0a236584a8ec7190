// Package helper defines the user-facing surface for authoring helpers.
//
// A helper is a named computation invoked from a template. Two authoring
// styles exist:
//
// Function helpers wrap a plain function and have no lifecycle:
//
//	double := helper.New(func(positional []any, named map[string]any) any {
//	    return positional[0].(int) * 2
//	})
//
// Class helpers are factories producing long-lived instances with a
// Compute/Destroy lifecycle and optional dependency injection:
//
//	type Formatter struct{ locale string }
//
//	type FormatterDefinition struct{}
//
//	func (FormatterDefinition) NewHelper(env *owner.Env) any {
//	    return &Formatter{locale: env.Owner().Lookup("locale").(string)}
//	}
//
//	func (f *Formatter) Compute(positional []any, named map[string]any) any { ... }
//	func (f *Formatter) Destroy() {}
//
// Definitions are immutable once created and are referenced, never owned,
// by the runtime.
package helper

import "github.com/go-vane/vane/pkg/owner"

// Args carries the arguments of one helper invocation. The rendering engine
// supplies a fresh Args per call; the runtime forwards it verbatim and never
// mutates it.
type Args struct {
	// Positional holds the ordered positional arguments.
	Positional []any
	// Named holds the keyword arguments.
	Named map[string]any
}

// Function is the body signature for function-based helpers.
type Function func(positional []any, named map[string]any) any

// FunctionDefinition is the opaque handle produced by New. The concrete
// type is unexported, so the only way to obtain one is through New; there
// is no literal syntax that yields a usable definition.
type FunctionDefinition interface {
	// Func returns the wrapped function body.
	Func() Function
}

type funcDefinition struct {
	fn Function
}

func (d *funcDefinition) Func() Function {
	return d.fn
}

// New wraps fn as a helper definition that the registry resolves to the
// functional manager.
func New(fn Function) FunctionDefinition {
	return &funcDefinition{fn: fn}
}

// Factory is implemented by class-style definitions whose instances receive
// the injected environment at construction.
type Factory interface {
	NewHelper(env *owner.Env) any
}

// PlainFactory is implemented by class-style definitions constructed
// without dependency injection. A definition implements either Factory or
// PlainFactory, never both.
type PlainFactory interface {
	NewHelper() any
}

// Computer is the computation half of the class helper contract.
type Computer interface {
	Compute(positional []any, named map[string]any) any
}

// Destroyer is the teardown half of the class helper contract. Destroy is
// called exactly once, when the call site is torn down.
type Destroyer interface {
	Destroy()
}
