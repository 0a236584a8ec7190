package manager

import (
	"reflect"
	"runtime"
	"strings"

	"github.com/go-vane/vane/pkg/helper"
)

// debugName derives a diagnostic name from a definition's shape. It never
// panics and falls back to a type description when nothing better exists.
func debugName(definition any) string {
	switch def := definition.(type) {
	case nil:
		return "(unknown helper)"
	case helper.FunctionDefinition:
		return functionName(def.Func())
	}
	t := reflect.TypeOf(definition)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}

// functionName resolves the symbol name of a helper function body.
func functionName(fn helper.Function) string {
	if fn == nil {
		return "(anonymous function)"
	}
	pc := reflect.ValueOf(fn).Pointer()
	f := runtime.FuncForPC(pc)
	if f == nil {
		return "(anonymous function)"
	}
	name := f.Name()
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	return name
}
