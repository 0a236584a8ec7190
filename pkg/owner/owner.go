// Package owner models the dependency-injection context threaded into
// stateful helpers.
//
// The runtime never constructs owners itself; the host's DI container hands
// one in, and the stateful manager forwards it to helper factories through
// an Env record. Owners may be absent (nil) in owner-less contexts.
package owner

// Owner gives injected helpers access to application-level services. The
// concrete implementation belongs to the host's DI container; this package
// only states the lookup surface helpers may rely on.
type Owner interface {
	// Lookup resolves a registered service by name. Returns nil when the
	// service is unknown.
	Lookup(name string) any
}

// Env is the environment record injected into helper factories that request
// dependency injection. It carries a back-reference to the owner so
// constructed instances can resolve services.
type Env struct {
	owner Owner
}

// NewEnv wraps o in an injectable environment record. A nil owner is valid
// and yields an env whose Owner method returns nil.
func NewEnv(o Owner) *Env {
	return &Env{owner: o}
}

// Owner returns the owner this environment was built for, or nil.
func (e *Env) Owner() Owner {
	if e == nil {
		return nil
	}
	return e.owner
}

// Settable is implemented by objects that accept an owner after
// construction, for definitions not managed through a factory.
type Settable interface {
	SetOwner(o Owner)
}

// Attach assigns o to target if target implements Settable. Returns true if
// the owner was attached.
func Attach(target any, o Owner) bool {
	settable, ok := target.(Settable)
	if !ok {
		return false
	}
	settable.SetOwner(o)
	return true
}

// Get returns the owner previously attached to target, or nil. Target
// objects expose it through an Owner() accessor.
func Get(target any) Owner {
	if provider, ok := target.(interface{ Owner() Owner }); ok {
		return provider.Owner()
	}
	return nil
}
