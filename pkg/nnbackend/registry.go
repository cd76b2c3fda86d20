package nnbackend

import (
	"sync"

	"github.com/hyperifyio/nnrt/pkg/nnerr"
	"github.com/hyperifyio/nnrt/pkg/nnlog"
)

// ExtensionLoader resolves and loads the OEM/proprietary extension shared
// library on first access. Kept as an interface so the registry never
// imports the dlopen-specific extload package directly — only whichever
// caller wires a real loader in needs that dependency.
type ExtensionLoader interface {
	// Load attempts to dlopen the extension library, returning whether it
	// is now resident. A false return with a nil error means "not found,
	// not fatal".
	Load() (bool, error)
}

// Registry is the process-wide backend registry: a mutex-guarded map
// keyed by backend_id, a name table filled in at registration so name
// queries never call back into a possibly-busy driver, plus lazy
// extension-library resolution.
type Registry struct {
	mu       sync.Mutex
	backends map[int]Backend
	names    map[int]string
	order    []int

	extLoader  ExtensionLoader
	extLoaded  bool
	extPresent bool
}

// NewRegistry creates an empty registry. extLoader may be nil, in which
// case extension-library resolution is skipped entirely.
func NewRegistry(extLoader ExtensionLoader) *Registry {
	return &Registry{
		backends:  make(map[int]Backend),
		names:     make(map[int]string),
		extLoader: extLoader,
	}
}

// DefaultRegistry is the package-wide singleton, matching the function-
// local-static initialization the runtime relies on for race-free setup;
// Go's package-level var initializer runs exactly once before any other
// goroutine can observe it.
var DefaultRegistry = NewRegistry(nil)

// Register invokes factory once and keeps the resulting backend only if
// it passes the status validity check. Re-registration under an ID
// already present fails.
func (r *Registry) Register(id int, factory func() (Backend, error)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.backends[id]; exists {
		return nnerr.New("BackendRegistry", "Register: duplicate backend id", nnerr.Failed)
	}
	b, err := factory()
	if err != nil {
		return err
	}
	if b.GetBackendID() != id {
		return nnerr.New("BackendRegistry", "Register: factory produced mismatched backend id", nnerr.InvalidParameter)
	}
	if !b.GetBackendStatus().Valid() {
		return nnerr.New("BackendRegistry", "Register: backend failed validity check", nnerr.Failed)
	}
	r.backends[id] = b
	r.names[id] = b.GetBackendName()
	r.order = append(r.order, id)
	return nil
}

// GetBackendName returns the name cached when id was registered, without
// touching the backend itself. id==0 aliases the first registered
// backend, same as GetBackend.
func (r *Registry) GetBackendName(id int) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id == 0 {
		if len(r.order) == 0 {
			return "", nnerr.New("BackendRegistry", "GetBackendName: no backends registered", nnerr.UnavailableDevice)
		}
		return r.names[r.order[0]], nil
	}
	name, ok := r.names[id]
	if !ok {
		return "", nnerr.New("BackendRegistry", "GetBackendName: unknown backend id", nnerr.UnavailableDevice)
	}
	return name, nil
}

// GetBackend looks a backend up by id. id==0 is an alias for "the first
// registered backend"; any other id is looked up exactly. Also triggers
// lazy extension-library resolution on first access.
func (r *Registry) GetBackend(id int) (Backend, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.resolveExtensionLocked()

	if id == 0 {
		if len(r.order) == 0 {
			return nil, nnerr.New("BackendRegistry", "GetBackend: no backends registered", nnerr.UnavailableDevice)
		}
		return r.backends[r.order[0]], nil
	}
	b, ok := r.backends[id]
	if !ok {
		return nil, nnerr.New("BackendRegistry", "GetBackend: unknown backend id", nnerr.UnavailableDevice)
	}
	return b, nil
}

func (r *Registry) resolveExtensionLocked() {
	if r.extLoaded || r.extLoader == nil {
		return
	}
	r.extLoaded = true
	present, err := r.extLoader.Load()
	if err != nil {
		nnlog.Warnf(nnlog.Registry, "extension library load failed: %v", err)
		return
	}
	r.extPresent = present
}

// ExtensionPresent reports whether the extension library was resolved as
// resident, after at least one GetBackend call has triggered resolution.
func (r *Registry) ExtensionPresent() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.extPresent
}
