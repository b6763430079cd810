package backend

import (
	"errors"
	"slices"
	"testing"

	"github.com/gogpu/lofx/gl"
)

// stubSurface is a minimal Surface for registry tests.
type stubSurface struct {
	name   string
	inited bool
	fail   error
}

func (s *stubSurface) Name() string { return s.name }

func (s *stubSurface) Init(Config) error {
	if s.fail != nil {
		return s.fail
	}
	s.inited = true
	return nil
}

func (s *stubSurface) Functions() gl.Functions     { return nil }
func (s *stubSurface) ShouldClose() bool           { return true }
func (s *stubSurface) FramebufferSize() (int, int) { return 0, 0 }

func (s *stubSurface) SwapBuffers() {}
func (s *stubSurface) PollEvents()  {}
func (s *stubSurface) Close()       {}

// withRegistry runs fn against an empty registry and restores the previous
// one afterwards.
func withRegistry(t *testing.T, fn func()) {
	t.Helper()
	registryMu.Lock()
	saved := backends
	backends = make(map[string]Factory)
	registryMu.Unlock()
	defer func() {
		registryMu.Lock()
		backends = saved
		registryMu.Unlock()
	}()
	fn()
}

func stub(name string) Factory {
	return func() Surface { return &stubSurface{name: name} }
}

func TestRegistryRegisterAndGet(t *testing.T) {
	withRegistry(t, func() {
		Register("stub", stub("stub"))
		if !IsRegistered("stub") {
			t.Error("stub backend should be registered")
		}
		s := Get("stub")
		if s == nil {
			t.Fatal("Get(stub) returned nil")
		}
		if s.Name() != "stub" {
			t.Errorf("Get(stub).Name() = %q, want %q", s.Name(), "stub")
		}
	})
}

func TestRegistryGetUnregistered(t *testing.T) {
	withRegistry(t, func() {
		if s := Get("nonexistent"); s != nil {
			t.Error("Get(nonexistent) should return nil")
		}
	})
}

func TestRegistryAvailable(t *testing.T) {
	withRegistry(t, func() {
		Register("zeta", stub("zeta"))
		Register("alpha", stub("alpha"))
		got := Available()
		want := []string{"alpha", "zeta"}
		if !slices.Equal(got, want) {
			t.Errorf("Available() = %v, want %v", got, want)
		}
	})
}

func TestRegistryDefaultPriority(t *testing.T) {
	withRegistry(t, func() {
		Register("aaa", stub("aaa"))
		Register(BackendHeadless, stub(BackendHeadless))
		if got := Default().Name(); got != BackendHeadless {
			t.Errorf("Default() = %q, want %q", got, BackendHeadless)
		}
		Register(BackendGLFW, stub(BackendGLFW))
		if got := Default().Name(); got != BackendGLFW {
			t.Errorf("Default() = %q, want %q", got, BackendGLFW)
		}
	})
}

func TestRegistryDefaultFallback(t *testing.T) {
	withRegistry(t, func() {
		Register("zeta", stub("zeta"))
		Register("beta", stub("beta"))
		if got := Default().Name(); got != "beta" {
			t.Errorf("Default() = %q, want %q", got, "beta")
		}
	})
}

func TestRegistryDefaultEmpty(t *testing.T) {
	withRegistry(t, func() {
		if s := Default(); s != nil {
			t.Errorf("Default() = %v, want nil", s)
		}
	})
}

func TestRegistryMustDefault(t *testing.T) {
	withRegistry(t, func() {
		defer func() {
			if r := recover(); r == nil {
				t.Error("MustDefault() should panic with no backends")
			}
		}()
		MustDefault()
	})
}

func TestRegistryUnregister(t *testing.T) {
	withRegistry(t, func() {
		Register("stub", stub("stub"))
		Unregister("stub")
		if IsRegistered("stub") {
			t.Error("stub should not be registered after Unregister")
		}
	})
}

func TestSelect(t *testing.T) {
	withRegistry(t, func() {
		if _, err := Select(""); !errors.Is(err, ErrBackendNotAvailable) {
			t.Errorf("Select(\"\") error = %v, want %v", err, ErrBackendNotAvailable)
		}
		Register("stub", stub("stub"))
		s, err := Select("stub")
		if err != nil {
			t.Fatalf("Select(stub) error = %v", err)
		}
		if s.Name() != "stub" {
			t.Errorf("Select(stub).Name() = %q, want %q", s.Name(), "stub")
		}
		if _, err := Select("missing"); !errors.Is(err, ErrBackendNotAvailable) {
			t.Errorf("Select(missing) error = %v, want %v", err, ErrBackendNotAvailable)
		}
	})
}

func TestRegistryInitDefault(t *testing.T) {
	withRegistry(t, func() {
		Register("stub", stub("stub"))
		s, err := InitDefault(DefaultConfig())
		if err != nil {
			t.Fatalf("InitDefault() error = %v", err)
		}
		if !s.(*stubSurface).inited {
			t.Error("InitDefault() did not initialize the surface")
		}
	})
}

func TestRegistryInitDefaultError(t *testing.T) {
	withRegistry(t, func() {
		boom := errors.New("boom")
		Register("stub", func() Surface { return &stubSurface{name: "stub", fail: boom} })
		if _, err := InitDefault(DefaultConfig()); !errors.Is(err, boom) {
			t.Errorf("InitDefault() error = %v, want %v", err, boom)
		}
	})
}

func TestConfigVersion(t *testing.T) {
	tests := []struct {
		version      string
		major, minor int
		wantErr      bool
	}{
		{"", 4, 5, false},
		{"4.5", 4, 5, false},
		{"3.3", 3, 3, false},
		{"4", 0, 0, true},
		{"4.5core", 0, 0, true},
		{"x.y", 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			major, minor, err := Config{GLVersion: tt.version}.Version()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidVersion) {
					t.Errorf("Version() error = %v, want %v", err, ErrInvalidVersion)
				}
				return
			}
			if err != nil {
				t.Fatalf("Version() error = %v", err)
			}
			if major != tt.major || minor != tt.minor {
				t.Errorf("Version() = %d.%d, want %d.%d", major, minor, tt.major, tt.minor)
			}
		})
	}
}
