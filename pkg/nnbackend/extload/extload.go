// Package extload resolves and dlopens the OEM/proprietary extension
// shared library a Backend Registry may want to hand off to, without
// linking against it at build time. The load goes through
// github.com/ebitengine/purego so no cgo is involved.
package extload

import (
	"github.com/ebitengine/purego"

	"github.com/hyperifyio/nnrt/pkg/nnlog"
)

// ExtensionLibraryName is the fixed file name of the OEM extension
// library; discovery never searches for anything else.
const ExtensionLibraryName = "libneural_network_runtime_ext.so"

// Loader dlopens a single, fixed library path with RTLD_NOW|RTLD_GLOBAL
// binding the first time Load is called. Subsequent calls are no-ops that
// report the first result.
type Loader struct {
	path    string
	loaded  bool
	handle  uintptr
	present bool
}

// NewLoader creates a Loader for the extension library at path.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// NewDefaultLoader creates a Loader for the fixed extension library name,
// resolved through the normal dynamic-linker search path.
func NewDefaultLoader() *Loader {
	return NewLoader(ExtensionLibraryName)
}

// Load attempts to dlopen the library. Any dlopen failure, a missing
// file or a malformed binary alike, is logged as a warning and reported
// as false with a nil error — not fatal, just absent. Load never returns
// a non-nil error.
func (l *Loader) Load() (bool, error) {
	if l.loaded {
		return l.present, nil
	}
	l.loaded = true

	handle, err := purego.Dlopen(l.path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		nnlog.Warnf(nnlog.ExtLoad, "dlopen %s: %v", l.path, err)
		return false, nil
	}
	l.handle = handle
	l.present = true
	return true, nil
}

// Handle returns the dlopen'd library handle, or 0 if Load has not
// succeeded.
func (l *Loader) Handle() uintptr { return l.handle }
