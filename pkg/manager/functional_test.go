package manager

import (
	"strings"
	"testing"

	vanerrors "github.com/go-vane/vane/pkg/errors"
	"github.com/go-vane/vane/pkg/helper"
)

func TestFunctionalManager_Capabilities(t *testing.T) {
	m := NewFunctionalManager()
	caps := m.Capabilities()
	if !caps.HasValue() {
		t.Error("functional manager should declare HasValue")
	}
	if caps.HasDestroyable() {
		t.Error("functional manager must not declare HasDestroyable")
	}
}

func TestFunctionalManager_NotDestroyable(t *testing.T) {
	var m Manager = NewFunctionalManager()
	if _, ok := m.(Destroyable); ok {
		t.Error("functional manager must not satisfy Destroyable")
	}
}

func TestFunctionalManager_GetValueDoubles(t *testing.T) {
	m := NewFunctionalManager()
	double := helper.New(func(positional []any, named map[string]any) any {
		return positional[0].(int) * 2
	})

	bucket := mustCreate(t, m, double, helper.Args{Positional: []any{21}})
	if got := m.GetValue(bucket); got != 42 {
		t.Errorf("expected 42, got %v", got)
	}
}

func TestFunctionalManager_NamedArgsForwarded(t *testing.T) {
	m := NewFunctionalManager()
	pick := helper.New(func(positional []any, named map[string]any) any {
		return named["key"]
	})

	bucket := mustCreate(t, m, pick, helper.Args{Named: map[string]any{"key": "value"}})
	if got := m.GetValue(bucket); got != "value" {
		t.Errorf("expected named argument forwarded, got %v", got)
	}
}

func TestFunctionalManager_ThunkDefersInvocation(t *testing.T) {
	m := NewFunctionalManager()
	calls := 0
	counting := helper.New(func(positional []any, named map[string]any) any {
		calls++
		return calls
	})

	bucket := mustCreate(t, m, counting, helper.Args{})
	if calls != 0 {
		t.Fatal("CreateHelper must not invoke the function body")
	}

	m.GetValue(bucket)
	m.GetValue(bucket)
	if calls != 2 {
		t.Errorf("expected one invocation per GetValue, got %d", calls)
	}
}

func TestFunctionalManager_NonFunctionDefinition(t *testing.T) {
	m := NewFunctionalManager()
	_, err := m.CreateHelper(mathDefinition{}, helper.Args{})
	if _, ok := err.(*vanerrors.ContractError); !ok {
		t.Fatalf("expected *ContractError, got %v (%T)", err, err)
	}
}

func TestFunctionalManager_NilFunctionBody(t *testing.T) {
	m := NewFunctionalManager()
	_, err := m.CreateHelper(helper.New(nil), helper.Args{})
	if _, ok := err.(*vanerrors.ContractError); !ok {
		t.Fatalf("expected *ContractError, got %v (%T)", err, err)
	}
}

func namedDouble(positional []any, named map[string]any) any {
	return positional[0].(int) * 2
}

func TestFunctionalManager_GetDebugName(t *testing.T) {
	m := NewFunctionalManager()
	name := m.GetDebugName(helper.New(namedDouble))
	if !strings.Contains(name, "namedDouble") {
		t.Errorf("expected function symbol in debug name, got %q", name)
	}
	if m.GetDebugName(helper.New(nil)) == "" {
		t.Error("debug name for a nil body should fall back, not be empty")
	}
}
