// Package manager implements the dispatch protocol between a rendering
// engine and user-supplied helpers.
//
// A helper definition is adapted into a live computation by a Manager, one
// implementation per authoring style: StatefulManager for class-style
// definitions with a Compute/Destroy lifecycle, FunctionalManager for plain
// functions. The rendering engine resolves a definition's manager through a
// Registry, asks the manager to materialize a Bucket for the call site,
// reads the current value with GetValue, and at teardown routes the
// destroyable handle into its own destruction scheduling.
//
// Which optional operations a manager supports is declared up front by its
// Capabilities descriptor; the engine must consult it before calling
// GetDestroyable.
//
// The call-site lifecycle is:
//
//	mgr, err := manager.Default().Resolve(definition, owner)
//	bucket, err := mgr.CreateHelper(definition, args)
//	value := mgr.GetValue(bucket) // repeated as needed
//	if mgr.Capabilities().HasDestroyable() {
//	    destroyable := mgr.(manager.Destroyable).GetDestroyable(bucket)
//	    // hand destroyable to the teardown scheduler
//	}
//
// All operations are single-threaded under the host run loop, matching the
// rendering engine's cooperative scheduling model.
package manager
