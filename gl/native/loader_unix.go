//go:build !windows

package native

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/ebitengine/purego"
)

func libraryNames() []string {
	if runtime.GOOS == "darwin" {
		return []string{"/System/Library/Frameworks/OpenGL.framework/OpenGL"}
	}
	return []string{"libGL.so.1", "libGL.so", "libOpenGL.so.0"}
}

var (
	libOnce sync.Once
	libGL   uintptr
	libErr  error

	glXGetProcAddress func(name *byte) uintptr
)

func openLibrary() (uintptr, error) {
	libOnce.Do(func() {
		var errs []error
		for _, name := range libraryNames() {
			lib, err := purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			libGL = lib
			if addr, err := purego.Dlsym(lib, "glXGetProcAddressARB"); err == nil && addr != 0 {
				purego.RegisterFunc(&glXGetProcAddress, addr)
			}
			return
		}
		libErr = fmt.Errorf("%w: %v", ErrLibraryNotFound, errs)
	})
	return libGL, libErr
}

// LoadSystem resolves entry points from the platform GL library, using
// glXGetProcAddressARB where the library exports it. A context must be
// current on the calling thread.
func LoadSystem() (*Functions, error) {
	lib, err := openLibrary()
	if err != nil {
		return nil, err
	}
	return load(func(name string) uintptr {
		if glXGetProcAddress != nil {
			if addr := glXGetProcAddress(cstr(name)); addr != 0 {
				return addr
			}
		}
		addr, err := purego.Dlsym(lib, name)
		if err != nil {
			return 0
		}
		return addr
	})
}
