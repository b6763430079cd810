package native

import (
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/lofx/gl"
)

func TestLoadReportsMissingFunctions(t *testing.T) {
	var asked []string
	f, err := load(func(name string) uintptr {
		asked = append(asked, name)
		return 0
	})

	if f != nil {
		t.Error("load() returned Functions with missing entry points")
	}
	if !errors.Is(err, ErrMissingFunction) {
		t.Fatalf("load() error = %v, want %v", err, ErrMissingFunction)
	}
	for _, name := range []string{"glCreateBuffers", "glUseProgramStages", "glGetError"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error %q does not name %s", err, name)
		}
	}
	if strings.Contains(err.Error(), "glDebugMessageCallback") {
		t.Error("optional glDebugMessageCallback reported as missing")
	}
	if len(asked) != len((&Functions{}).entries()) {
		t.Errorf("resolved %d names, want %d", len(asked), len((&Functions{}).entries()))
	}
}

func TestEntriesAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, e := range (&Functions{}).entries() {
		if !strings.HasPrefix(e.name, "gl") {
			t.Errorf("entry %q is not a GL function name", e.name)
		}
		if seen[e.name] {
			t.Errorf("entry %q listed twice", e.name)
		}
		seen[e.name] = true
	}
}

func TestDebugMessageCallbackWithoutExtension(t *testing.T) {
	f := &Functions{}
	// Must not call through the nil entry points.
	f.DebugMessageCallback(func(_, _ gl.Enum, _ uint32, _ gl.Enum, _ string) {})
}

func TestFunctionsImplementsInterfaces(t *testing.T) {
	var _ gl.Functions = (*Functions)(nil)
	var _ gl.DebugOutput = (*Functions)(nil)
}
