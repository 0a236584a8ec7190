package manager

import (
	"reflect"
	"sync"

	"github.com/go-vane/vane/pkg/errors"
	"github.com/go-vane/vane/pkg/helper"
	"github.com/go-vane/vane/pkg/owner"
	"github.com/go-vane/vane/pkg/scheduler"
)

// Factory produces a manager bound to the dependency-injection owner in
// effect at resolution time. The owner may be nil in owner-less contexts.
type Factory func(o owner.Owner) Manager

// Registry associates helper definitions with the manager factories
// responsible for them. Lookup is by the definition's concrete type first,
// then by an explicit fallback chain of interface types consulted in
// registration order.
//
// Registries are written at startup, before any rendering activity, and
// read thereafter. Tests construct isolated registries with NewRegistry;
// production code normally uses Default.
type Registry struct {
	mu        sync.RWMutex
	exact     map[reflect.Type]Factory
	fallbacks []fallback
	resolved  map[resolveKey]Manager
}

type fallback struct {
	iface   reflect.Type
	factory Factory
}

// resolveKey caches resolved managers per definition type and owner.
// Owners used with the registry must be comparable.
type resolveKey struct {
	definition reflect.Type
	owner      owner.Owner
}

// NewRegistry creates an empty registry with no registered styles.
func NewRegistry() *Registry {
	return &Registry{
		exact:    make(map[reflect.Type]Factory),
		resolved: make(map[resolveKey]Manager),
	}
}

// Register associates factory with the concrete type of prototype.
// Registering the same type again silently overwrites the previous entry:
// registration happens at module-definition time, not per call, so the last
// writer wins.
func (r *Registry) Register(prototype any, factory Factory) {
	if prototype == nil || factory == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.exact[reflect.TypeOf(prototype)] = factory
}

// RegisterFallback appends an interface type to the fallback chain. A
// definition with no exact-type registration resolves to the first fallback
// interface it implements, in registration order. Panics if iface is not an
// interface type; this is a startup-time programming error.
func (r *Registry) RegisterFallback(iface reflect.Type, factory Factory) {
	if iface == nil || iface.Kind() != reflect.Interface {
		panic("manager: RegisterFallback requires an interface type")
	}
	if factory == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fallbacks = append(r.fallbacks, fallback{iface: iface, factory: factory})
}

// Resolve returns the manager responsible for definition, constructing it
// through the registered factory on first use and caching it per definition
// type and owner. A definition with no registered factory (exact or
// fallback) fails with a *errors.RegistrationError; this indicates a
// programmer error, not a recoverable runtime condition.
func (r *Registry) Resolve(definition any, o owner.Owner) (Manager, error) {
	if definition == nil {
		return nil, report("manager.Resolve", errors.KindRegistration,
			&errors.RegistrationError{Definition: debugName(definition)})
	}
	t := reflect.TypeOf(definition)
	key := resolveKey{definition: t, owner: o}

	r.mu.RLock()
	m := r.resolved[key]
	r.mu.RUnlock()
	if m != nil {
		return m, nil
	}

	factory := r.lookup(t)
	if factory == nil {
		return nil, report("manager.Resolve", errors.KindRegistration,
			&errors.RegistrationError{Definition: debugName(definition)})
	}

	m = factory(o)
	r.mu.Lock()
	r.resolved[key] = m
	r.mu.Unlock()
	return m, nil
}

func (r *Registry) lookup(t reflect.Type) Factory {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if factory, ok := r.exact[t]; ok {
		return factory
	}
	for _, fb := range r.fallbacks {
		if t.Implements(fb.iface) {
			return fb.factory
		}
	}
	return nil
}

var (
	defaultRegistry *Registry
	defaultOnce     sync.Once
)

// Default returns the process-wide registry, pre-populated with the two
// built-in authoring styles: function definitions resolve to the functional
// manager, factory definitions to the stateful manager. It is populated
// once at startup and is immutable thereafter in practice.
func Default() *Registry {
	defaultOnce.Do(func() {
		r := NewRegistry()
		queue := scheduler.Default()
		r.RegisterFallback(reflect.TypeOf((*helper.FunctionDefinition)(nil)).Elem(), func(owner.Owner) Manager {
			return NewFunctionalManager()
		})
		stateful := func(o owner.Owner) Manager {
			return NewStatefulManager(o, queue)
		}
		r.RegisterFallback(reflect.TypeOf((*helper.Factory)(nil)).Elem(), stateful)
		r.RegisterFallback(reflect.TypeOf((*helper.PlainFactory)(nil)).Elem(), stateful)
		defaultRegistry = r
	})
	return defaultRegistry
}
