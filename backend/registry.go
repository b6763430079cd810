package backend

import (
	"fmt"
	"slices"
	"sync"
)

// Backend names.
const (
	BackendGLFW     = "glfw"
	BackendHeadless = "headless"
)

// Factory creates a new, uninitialized surface.
type Factory func() Surface

// registry holds registered backends.
var (
	registryMu sync.RWMutex
	backends   = make(map[string]Factory)
	// Priority order for backend selection (first available wins).
	// A real window beats the headless recorder.
	backendPriority = []string{BackendGLFW, BackendHeadless}
)

// Register registers a surface factory with the given name.
// This is typically called from init() functions in backend packages.
// If a backend with the same name is already registered, it will be replaced.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	backends[name] = factory
}

// Unregister removes a backend from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// Available returns the registered backend names in sorted order.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// IsRegistered checks if a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}

// Get returns a surface by name.
// Returns nil if the backend is not registered.
func Get(name string) Surface {
	registryMu.RLock()
	defer registryMu.RUnlock()

	factory, ok := backends[name]
	if !ok {
		return nil
	}
	return factory()
}

// Default returns a surface from the best available backend.
// Priority order: glfw > headless, then any other registered backend in
// name order.
// Returns nil if no backends are registered.
func Default() Surface {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range backendPriority {
		if factory, ok := backends[name]; ok {
			if s := factory(); s != nil {
				return s
			}
		}
	}

	// Fallback: first other backend, in name order.
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		if s := backends[name](); s != nil {
			return s
		}
	}

	return nil
}

// MustDefault returns the default surface or panics.
func MustDefault() Surface {
	s := Default()
	if s == nil {
		panic("backend: no backend available")
	}
	return s
}

// Select returns a surface from the named backend, or the default one when
// name is empty.
func Select(name string) (Surface, error) {
	var s Surface
	if name == "" {
		s = Default()
	} else {
		s = Get(name)
	}
	if s == nil {
		if name == "" {
			return nil, ErrBackendNotAvailable
		}
		return nil, fmt.Errorf("%w: %q", ErrBackendNotAvailable, name)
	}
	Logger().Debug("backend selected", "name", s.Name())
	return s, nil
}

// InitDefault selects the default surface and initializes it with cfg.
func InitDefault(cfg Config) (Surface, error) {
	s := Default()
	if s == nil {
		return nil, ErrBackendNotAvailable
	}

	if err := s.Init(cfg); err != nil {
		return nil, err
	}

	return s, nil
}
