//go:build windows

package native

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	opengl32              = windows.NewLazySystemDLL("opengl32.dll")
	procWglGetProcAddress = opengl32.NewProc("wglGetProcAddress")
)

// LoadSystem resolves entry points through wglGetProcAddress, falling back
// to the exports of opengl32.dll for GL 1.1 functions. A context must be
// current on the calling thread.
func LoadSystem() (*Functions, error) {
	if err := opengl32.Load(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLibraryNotFound, err)
	}
	if err := procWglGetProcAddress.Find(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLibraryNotFound, err)
	}
	return load(func(name string) uintptr {
		p := cstr(name)
		addr, _, _ := procWglGetProcAddress.Call(uintptr(unsafe.Pointer(p)))
		switch int(addr) {
		case 0, 1, 2, 3, -1:
			// Not an extension entry point; opengl32.dll exports it directly.
			proc := opengl32.NewProc(name)
			if proc.Find() != nil {
				return 0
			}
			return proc.Addr()
		}
		return addr
	})
}
