package manager

import (
	"slices"

	"golang.org/x/mod/semver"

	"github.com/go-vane/vane/pkg/errors"
)

// Version is the capability protocol revision implemented by the built-in
// managers.
const Version = "v1.0.0"

// recognizedVersions lists the protocol revisions this runtime understands,
// in canonical semver form.
var recognizedVersions = []string{Version}

// IsRecognizedVersion reports whether version canonicalizes to a recognized
// protocol revision. Short forms are accepted: "v1.0" and "v1" both match
// "v1.0.0".
func IsRecognizedVersion(version string) bool {
	if !semver.IsValid(version) {
		return false
	}
	return slices.Contains(recognizedVersions, semver.Canonical(version))
}

// Options selects the optional manager operations a capabilities descriptor
// declares.
type Options struct {
	// HasValue declares that GetValue is supported.
	HasValue bool
	// HasDestroyable declares that GetDestroyable is supported.
	HasDestroyable bool
}

// Capabilities is the immutable descriptor declaring which optional
// operations a manager supports. It is created once per manager type and
// shared by all invocations of that manager. The engine inspects it before
// calling the corresponding methods: a manager whose descriptor reports
// HasDestroyable false must never have GetDestroyable invoked on it.
type Capabilities struct {
	version        string
	hasValue       bool
	hasDestroyable bool
}

// NewCapabilities builds a descriptor for the given protocol version.
// Construction fails with a *errors.CapabilityError if the version is not a
// recognized protocol revision.
func NewCapabilities(version string, opts Options) (Capabilities, error) {
	if !IsRecognizedVersion(version) {
		return Capabilities{}, report("manager.NewCapabilities", errors.KindCapability, &errors.CapabilityError{
			Version:    version,
			Recognized: slices.Clone(recognizedVersions),
		})
	}
	return Capabilities{
		version:        semver.Canonical(version),
		hasValue:       opts.HasValue,
		hasDestroyable: opts.HasDestroyable,
	}, nil
}

// Version returns the canonical protocol revision of the descriptor.
func (c Capabilities) Version() string {
	return c.version
}

// HasValue reports whether GetValue may be called.
func (c Capabilities) HasValue() bool {
	return c.hasValue
}

// HasDestroyable reports whether GetDestroyable may be called.
func (c Capabilities) HasDestroyable() bool {
	return c.hasDestroyable
}

// mustCapabilities builds a descriptor for the current protocol revision,
// panicking on failure. Only for the built-in descriptors below, where a
// construction error means Version itself is broken.
func mustCapabilities(opts Options) Capabilities {
	caps, err := NewCapabilities(Version, opts)
	if err != nil {
		panic(err)
	}
	return caps
}

// Descriptors for the built-in managers, validated through NewCapabilities
// so an edit to Version cannot ship an unrecognized descriptor.
var (
	statefulCapabilities   = mustCapabilities(Options{HasValue: true, HasDestroyable: true})
	functionalCapabilities = mustCapabilities(Options{HasValue: true})
)
