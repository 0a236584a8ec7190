package manager

import (
	"fmt"

	"github.com/go-vane/vane/pkg/errors"
	"github.com/go-vane/vane/pkg/helper"
	"github.com/go-vane/vane/pkg/owner"
	"github.com/go-vane/vane/pkg/scheduler"
	"github.com/go-vane/vane/pkg/tags"
)

// Instance pairs a live helper object with its invalidation tag. It is an
// explicit wrapper record: the user object itself stays untouched, and the
// tag is exclusively owned by its instance.
//
// The per-call-site lifecycle is created, any number of value reads, then
// destroyed; there is no transition out of the destroyed state.
type Instance struct {
	base      helper.Computer
	destroyer helper.Destroyer
	tag       *tags.Tag
	queue     *scheduler.Queue
	destroyed bool
}

// Compute invokes the underlying helper with the given arguments. Panics if
// the instance has been destroyed: values must never be read from a
// torn-down call site.
func (i *Instance) Compute(positional []any, named map[string]any) any {
	if i.destroyed {
		panic("manager: Compute called on a destroyed helper instance")
	}
	return i.base.Compute(positional, named)
}

// Tag returns the instance's invalidation tag.
func (i *Instance) Tag() *tags.Tag {
	return i.tag
}

// Recompute schedules the instance's tag to be dirtied on the next flush of
// the coalescing queue, so repeated synchronous calls collapse into one
// invalidation pulse. This is the sole externally triggerable invalidation
// entry point for class helpers. No-op after destruction.
func (i *Instance) Recompute() {
	if i.destroyed {
		return
	}
	i.queue.ScheduleDirty(i.tag)
}

// Destroy tears down the underlying helper. Calling it more than once is a
// no-op.
func (i *Instance) Destroy() {
	if i.destroyed {
		return
	}
	i.destroyed = true
	i.destroyer.Destroy()
}

// Destroyed reports whether Destroy has run.
func (i *Instance) Destroyed() bool {
	return i.destroyed
}

type statefulBucket struct {
	instance *Instance
	args     helper.Args
}

func (*statefulBucket) bucket() {}

// StatefulManager adapts class-style helper definitions: it constructs
// instances, injects the owner environment, tracks recompute tags, and
// exposes the destroyable handle. One manager serves every definition
// resolved under the same owner.
type StatefulManager struct {
	owner owner.Owner
	queue *scheduler.Queue
}

// NewStatefulManager creates a manager bound to o. The owner may be nil.
// A nil queue falls back to the process-wide scheduler queue.
func NewStatefulManager(o owner.Owner, queue *scheduler.Queue) *StatefulManager {
	if queue == nil {
		queue = scheduler.Default()
	}
	return &StatefulManager{owner: o, queue: queue}
}

// Capabilities returns the stateful descriptor: value and destroyable.
func (m *StatefulManager) Capabilities() Capabilities {
	return statefulCapabilities
}

// CreateHelper constructs the helper instance through the definition's
// factory. Factories that declare an Env parameter receive the injected
// environment; plain factories are constructed bare and offered the owner
// through owner.Attach. The produced object must expose both Compute and
// Destroy, validated here so a misbehaving definition cannot silently
// produce a broken bucket.
func (m *StatefulManager) CreateHelper(definition any, args helper.Args) (Bucket, error) {
	defer reportPanics("manager.CreateHelper")

	var produced any
	switch def := definition.(type) {
	case helper.Factory:
		produced = def.NewHelper(owner.NewEnv(m.owner))
	case helper.PlainFactory:
		produced = def.NewHelper()
		owner.Attach(produced, m.owner)
	default:
		return nil, report("manager.CreateHelper", errors.KindContract, &errors.ContractError{
			Definition: debugName(definition),
			Got:        fmt.Sprintf("a definition of type %T, which is not a helper factory", definition),
		})
	}

	base, hasCompute := produced.(helper.Computer)
	destroyer, hasDestroy := produced.(helper.Destroyer)
	if !hasCompute || !hasDestroy {
		var missing []string
		if !hasCompute {
			missing = append(missing, "Compute")
		}
		if !hasDestroy {
			missing = append(missing, "Destroy")
		}
		return nil, report("manager.CreateHelper", errors.KindContract, &errors.ContractError{
			Definition: debugName(definition),
			Missing:    missing,
			Got:        fmt.Sprintf("%T", produced),
		})
	}

	instance := &Instance{
		base:      base,
		destroyer: destroyer,
		tag:       tags.New(),
		queue:     m.queue,
	}
	return &statefulBucket{instance: instance, args: args}, nil
}

// GetValue invokes Compute with the bucket's arguments and returns the
// result unmodified. The instance's tag is consumed after the call returns,
// so tag reads performed inside Compute land in the same tracking frame
// before the instance's own tag is recorded. A panic in Compute is reported
// through the global error handler and rethrown.
func (m *StatefulManager) GetValue(bucket Bucket) any {
	defer reportPanics("manager.GetValue")

	b := bucket.(*statefulBucket)
	value := b.instance.Compute(b.args.Positional, b.args.Named)
	tags.Consume(b.instance.tag)
	return value
}

// GetDestroyable returns the bucket's instance so the engine can route it
// into its own destruction scheduling. The manager never calls Destroy
// itself.
func (m *StatefulManager) GetDestroyable(bucket Bucket) any {
	return bucket.(*statefulBucket).instance
}

// GetDebugName returns a diagnostic name derived from the definition's
// type.
func (m *StatefulManager) GetDebugName(definition any) string {
	return debugName(definition)
}
