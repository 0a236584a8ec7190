package manager

import "github.com/go-vane/vane/pkg/helper"

// Bucket is the per-call-site state materialized by a manager: for class
// helpers, the live instance bundled with its call arguments; for function
// helpers, a zero-argument thunk. Buckets are opaque to the engine and must
// only be handed back to the manager that created them.
type Bucket interface {
	bucket()
}

// Manager adapts one helper authoring style to the engine's invocation
// protocol.
type Manager interface {
	// Capabilities returns the manager's immutable capability descriptor.
	Capabilities() Capabilities

	// CreateHelper materializes the per-call-site bucket for definition.
	// Definitions that violate the authoring contract fail here with a
	// *errors.ContractError.
	CreateHelper(definition any, args helper.Args) (Bucket, error)

	// GetValue computes the bucket's current value. The result is returned
	// unmodified, including nil.
	GetValue(bucket Bucket) any

	// GetDebugName returns a best-effort diagnostic name for definition.
	// It never fails.
	GetDebugName(definition any) string
}

// Destroyable is implemented by managers whose capability descriptor
// declares HasDestroyable. The engine must consult Capabilities before
// asserting to this interface.
type Destroyable interface {
	Manager

	// GetDestroyable returns the handle the engine routes into its own
	// destruction scheduling. The manager itself never destroys it.
	GetDestroyable(bucket Bucket) any
}
