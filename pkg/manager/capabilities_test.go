package manager

import (
	"testing"

	vanerrors "github.com/go-vane/vane/pkg/errors"
)

func TestNewCapabilities_RecognizedVersion(t *testing.T) {
	caps, err := NewCapabilities(Version, Options{HasValue: true, HasDestroyable: true})
	if err != nil {
		t.Fatalf("NewCapabilities failed: %v", err)
	}
	if caps.Version() != Version {
		t.Errorf("expected version %s, got %s", Version, caps.Version())
	}
	if !caps.HasValue() || !caps.HasDestroyable() {
		t.Error("options should carry through to the descriptor")
	}
}

func TestNewCapabilities_ShortFormCanonicalized(t *testing.T) {
	caps, err := NewCapabilities("v1.0", Options{HasValue: true})
	if err != nil {
		t.Fatalf("NewCapabilities failed: %v", err)
	}
	if caps.Version() != Version {
		t.Errorf("short form should canonicalize to %s, got %s", Version, caps.Version())
	}
	if caps.HasDestroyable() {
		t.Error("HasDestroyable should default to false")
	}
}

func TestNewCapabilities_UnrecognizedVersion(t *testing.T) {
	_, err := NewCapabilities("v2.0.0", Options{})
	cerr, ok := err.(*vanerrors.CapabilityError)
	if !ok {
		t.Fatalf("expected *CapabilityError, got %v (%T)", err, err)
	}
	if cerr.Version != "v2.0.0" {
		t.Errorf("error should carry the rejected version, got %q", cerr.Version)
	}
	if len(cerr.Recognized) == 0 {
		t.Error("error should list the recognized revisions")
	}
}

func TestNewCapabilities_InvalidSemver(t *testing.T) {
	for _, version := range []string{"", "1.0.0", "one", "v1.x"} {
		if _, err := NewCapabilities(version, Options{}); err == nil {
			t.Errorf("version %q should be rejected", version)
		}
	}
}

func TestBuiltinDescriptorsCarryRecognizedVersion(t *testing.T) {
	for _, caps := range []Capabilities{statefulCapabilities, functionalCapabilities} {
		if !IsRecognizedVersion(caps.Version()) {
			t.Errorf("built-in descriptor carries unrecognized version %q", caps.Version())
		}
	}
	if !statefulCapabilities.HasValue() || !statefulCapabilities.HasDestroyable() {
		t.Error("stateful descriptor should declare value and destroyable")
	}
	if !functionalCapabilities.HasValue() || functionalCapabilities.HasDestroyable() {
		t.Error("functional descriptor should declare value only")
	}
}

func TestIsRecognizedVersion(t *testing.T) {
	cases := []struct {
		version string
		want    bool
	}{
		{"v1.0.0", true},
		{"v1.0", true},
		{"v1", true},
		{"v1.0.1", false},
		{"v2.0.0", false},
		{"1.0.0", false},
		{"", false},
	}
	for _, c := range cases {
		if got := IsRecognizedVersion(c.version); got != c.want {
			t.Errorf("IsRecognizedVersion(%q) = %v, want %v", c.version, got, c.want)
		}
	}
}
