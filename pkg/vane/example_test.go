package vane_test

import (
	"fmt"

	"github.com/go-vane/vane/pkg/helper"
	"github.com/go-vane/vane/pkg/manager"
	"github.com/go-vane/vane/pkg/owner"
	"github.com/go-vane/vane/pkg/tags"
	"github.com/go-vane/vane/pkg/vane"
)

// This example shows the simplest authoring style: a function helper
// invoked through its manager.
func ExampleHelper() {
	double := vane.Helper(func(positional []any, named map[string]any) any {
		return positional[0].(int) * 2
	})

	mgr, err := vane.Lookup(double, nil)
	if err != nil {
		fmt.Println(err)
		return
	}

	bucket, err := mgr.CreateHelper(double, helper.Args{Positional: []any{21}})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(mgr.GetValue(bucket))

	// Output:
	// 42
}

// calculator is a class-style helper with a full lifecycle.
type calculator struct{}

func (c *calculator) Compute(positional []any, named map[string]any) any {
	a := positional[0].(int)
	b := positional[1].(int)
	if named["op"] == "add" {
		return a + b
	}
	return a - b
}

func (c *calculator) Destroy() {}

type calculatorDefinition struct{}

func (calculatorDefinition) NewHelper() any { return &calculator{} }

// This example shows a class helper: the manager constructs the instance,
// tracks its recompute tag, and exposes the destroyable handle for the
// host's teardown scheduling.
func ExampleLookup_classHelper() {
	def := calculatorDefinition{}
	mgr, err := vane.Lookup(def, nil)
	if err != nil {
		fmt.Println(err)
		return
	}

	bucket, err := mgr.CreateHelper(def, helper.Args{
		Positional: []any{2, 3},
		Named:      map[string]any{"op": "add"},
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(mgr.GetValue(bucket))

	// The destroyable handle is only valid to request when the manager
	// declares the capability.
	if mgr.Capabilities().HasDestroyable() {
		instance := mgr.(manager.Destroyable).GetDestroyable(bucket).(*manager.Instance)
		instance.Destroy()
	}

	// Output:
	// 5
}

// This example shows how recompute requests coalesce: many synchronous
// requests collapse into a single invalidation pulse at the next flush.
func ExampleFlush() {
	def := calculatorDefinition{}
	mgr, _ := vane.Lookup(def, nil)
	bucket, _ := mgr.CreateHelper(def, helper.Args{
		Positional: []any{2, 3},
		Named:      map[string]any{"op": "add"},
	})

	tags.Begin()
	mgr.GetValue(bucket)
	snapshot := tags.End()
	fmt.Println("fresh:", snapshot.Valid())

	instance := mgr.(manager.Destroyable).GetDestroyable(bucket).(*manager.Instance)
	instance.Recompute()
	instance.Recompute()
	instance.Recompute()
	vane.Flush()
	fmt.Println("after flush:", snapshot.Valid())

	// Output:
	// fresh: true
	// after flush: false
}

// appOwner is a minimal DI owner; real hosts supply their container here.
type appOwner struct {
	services map[string]any
}

func (o *appOwner) Lookup(name string) any { return o.services[name] }

// prefixer receives the injected environment at construction and resolves a
// service from the owner.
type prefixer struct {
	prefix string
}

func (p *prefixer) Compute(positional []any, named map[string]any) any {
	return p.prefix + positional[0].(string)
}

func (p *prefixer) Destroy() {}

type prefixerDefinition struct{}

func (prefixerDefinition) NewHelper(env *owner.Env) any {
	prefix, _ := env.Owner().Lookup("prefix").(string)
	return &prefixer{prefix: prefix}
}

// This example shows dependency injection: definitions whose factory takes
// an Env get an owner-scoped environment at construction.
func ExampleLookup_dependencyInjection() {
	o := &appOwner{services: map[string]any{"prefix": ">> "}}

	def := prefixerDefinition{}
	mgr, _ := vane.Lookup(def, o)
	bucket, _ := mgr.CreateHelper(def, helper.Args{Positional: []any{"ready"}})
	fmt.Println(mgr.GetValue(bucket))

	// Output:
	// >> ready
}
