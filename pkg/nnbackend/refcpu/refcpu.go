// Package refcpu implements a minimal in-tree reference Backend used to
// exercise the compiler and execution drivers in tests, without shipping
// any real accelerator driver (out of scope for this runtime).
package refcpu

import (
	"github.com/hyperifyio/nnrt/pkg/nnbackend"
	"github.com/hyperifyio/nnrt/pkg/nnerr"
	"github.com/hyperifyio/nnrt/pkg/nngraph"
	"github.com/hyperifyio/nnrt/pkg/nntensor"
)

// Backend is a trivial CPU-hosted Backend: PrepareModel just snapshots
// the lowered graph's node count, and Run writes no data: it reports each
// output's own dimensions back unchanged, and counts an output sufficient
// when it has a non-empty buffer or no dimensions. It exists to drive the rest of the runtime
// through its full lifecycle in tests, not to compute real results.
type Backend struct {
	id     int
	status nnbackend.BackendStatus
}

// New creates a ready reference backend with the given backend_id.
func New(id int) *Backend {
	return &Backend{id: id, status: nnbackend.BackendStatusAvailable}
}

func (b *Backend) GetBackendID() int                        { return b.id }
func (b *Backend) GetBackendName() string                   { return "refcpu" }
func (b *Backend) GetBackendType() nnbackend.BackendType     { return nnbackend.BackendTypeCPU }
func (b *Backend) GetBackendStatus() nnbackend.BackendStatus { return b.status }

func (b *Backend) IsFloat16PrecisionSupported() bool { return false }
func (b *Backend) IsPerformanceModeSupported() bool  { return false }
func (b *Backend) IsPrioritySupported() bool         { return false }
func (b *Backend) IsDynamicInputSupported() bool     { return true }
func (b *Backend) IsModelCacheSupported() bool       { return true }

func (b *Backend) ReadOpVersion() (int32, error) { return 1, nil }

func (b *Backend) GetSupportedOperation(lite *nngraph.LiteGraph) ([]bool, error) {
	out := make([]bool, len(lite.Nodes))
	for i := range out {
		out[i] = true
	}
	return out, nil
}

func (b *Backend) PrepareModel(lite *nngraph.LiteGraph, cfg nnbackend.Config) (*nnbackend.PreparedModel, error) {
	if lite == nil {
		return nil, nnerr.New("refcpu", "PrepareModel: nil graph", nnerr.NullPtr)
	}
	blob := make([]byte, len(lite.Nodes))
	return &nnbackend.PreparedModel{Backend: b, Handle: lite, CacheBuffers: [][]byte{blob}, Profiling: cfg.EnableProfiling}, nil
}

func (b *Backend) PrepareModelFromModelCache(buffers [][]byte, cfg nnbackend.Config) (*nnbackend.PreparedModel, bool, error) {
	if len(buffers) == 0 {
		return nil, true, nnerr.New("refcpu", "PrepareModelFromModelCache: empty cache", nnerr.InvalidFile)
	}
	// The caller owns the unmap lifetime of restored cache buffers, so
	// anything kept past this call has to be copied out of them.
	kept := make([][]byte, len(buffers))
	for i, buf := range buffers {
		kept[i] = append([]byte(nil), buf...)
	}
	return &nnbackend.PreparedModel{Backend: b, CacheBuffers: kept, Profiling: cfg.EnableProfiling}, false, nil
}

func (b *Backend) Run(inputs, outputs []nntensor.IOTensor) ([][]int64, []bool, error) {
	dims := make([][]int64, len(outputs))
	sufficient := make([]bool, len(outputs))
	for i, out := range outputs {
		dims[i] = out.Dimensions
		sufficient[i] = len(out.Data) > 0 || len(out.Dimensions) == 0
	}
	return dims, sufficient, nil
}

func (b *Backend) AllocateBuffer(size int) ([]byte, error) {
	if size < 0 {
		return nil, nnerr.New("refcpu", "AllocateBuffer: negative size", nnerr.InvalidParameter)
	}
	return make([]byte, size), nil
}

func (b *Backend) ReleaseBuffer(buf []byte) {}
