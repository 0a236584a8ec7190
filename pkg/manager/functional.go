package manager

import (
	"fmt"

	"github.com/go-vane/vane/pkg/errors"
	"github.com/go-vane/vane/pkg/helper"
)

type functionBucket struct {
	thunk func() any
}

func (*functionBucket) bucket() {}

// FunctionalManager adapts plain-function helper definitions. Function
// helpers have no instance, no injected environment, and no recompute tag:
// the caller re-invokes the helper when its arguments change, so there is
// no per-instance staleness to track. The capability descriptor declares no
// destroyable, and GetDestroyable must never be called.
type FunctionalManager struct{}

// NewFunctionalManager creates the manager for function definitions.
func NewFunctionalManager() *FunctionalManager {
	return &FunctionalManager{}
}

// Capabilities returns the functional descriptor: value only.
func (m *FunctionalManager) Capabilities() Capabilities {
	return functionalCapabilities
}

// CreateHelper wraps the function and arguments in a zero-argument thunk.
func (m *FunctionalManager) CreateHelper(definition any, args helper.Args) (Bucket, error) {
	def, ok := definition.(helper.FunctionDefinition)
	if !ok {
		return nil, report("manager.CreateHelper", errors.KindContract, &errors.ContractError{
			Definition: debugName(definition),
			Got:        fmt.Sprintf("a definition of type %T, which is not a function definition", definition),
		})
	}
	fn := def.Func()
	if fn == nil {
		return nil, report("manager.CreateHelper", errors.KindContract, &errors.ContractError{
			Definition: debugName(definition),
			Got:        "a nil function body",
		})
	}
	return &functionBucket{
		thunk: func() any {
			return fn(args.Positional, args.Named)
		},
	}, nil
}

// GetValue invokes the bucket's thunk. A panic in the helper function is
// reported through the global error handler and rethrown.
func (m *FunctionalManager) GetValue(bucket Bucket) any {
	defer reportPanics("manager.GetValue")

	return bucket.(*functionBucket).thunk()
}

// GetDebugName returns the symbol name of the wrapped function.
func (m *FunctionalManager) GetDebugName(definition any) string {
	return debugName(definition)
}
