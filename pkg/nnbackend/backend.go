// Package nnbackend defines the Backend capability contract every
// accelerator driver implements, plus a process-wide registry that looks
// devices up by ID and lazily loads the extension library.
package nnbackend

import (
	"github.com/hyperifyio/nnrt/pkg/nngraph"
	"github.com/hyperifyio/nnrt/pkg/nntensor"
)

// BackendType classifies the kind of compute device a Backend wraps.
type BackendType int

const (
	BackendTypeUnknown BackendType = iota
	BackendTypeCPU
	BackendTypeGPU
	BackendTypeAccelerator
	BackendTypeOther
)

// BackendStatus reports a backend's current operational state.
type BackendStatus int

const (
	BackendStatusUnknown BackendStatus = iota
	BackendStatusAvailable
	BackendStatusBusy
	BackendStatusOffline
)

// Valid reports whether status is acceptable for a backend to be kept in
// the registry — UNKNOWN and OFFLINE are both rejected.
func (s BackendStatus) Valid() bool {
	return s != BackendStatusUnknown && s != BackendStatusOffline
}

// Config configures a compile pathway call.
type Config struct {
	EnableFloat16   bool
	PerformanceMode int
	Priority        int
	EnableProfiling bool
}

// PreparedModel is the backend-owned result of a successful compile.
type PreparedModel struct {
	Backend Backend
	Handle  interface{}
	// CacheBuffers holds the byte buffers the compiler driver should
	// persist via the cache subsystem, if any.
	CacheBuffers [][]byte
	// Profiling records whether this compile honored Config.EnableProfiling.
	Profiling bool
}

// ProfilingEnabled reports whether the compile that produced p had
// profiling turned on.
func (p *PreparedModel) ProfilingEnabled() bool { return p.Profiling }

// Backend is the capability set every concrete accelerator driver
// implements.
type Backend interface {
	GetBackendID() int
	GetBackendName() string
	GetBackendType() BackendType
	GetBackendStatus() BackendStatus

	PrepareModel(lite *nngraph.LiteGraph, cfg Config) (*PreparedModel, error)
	PrepareModelFromModelCache(buffers [][]byte, cfg Config) (prepared *PreparedModel, needsRecompile bool, err error)

	IsFloat16PrecisionSupported() bool
	IsPerformanceModeSupported() bool
	IsPrioritySupported() bool
	IsDynamicInputSupported() bool
	IsModelCacheSupported() bool
	GetSupportedOperation(lite *nngraph.LiteGraph) ([]bool, error)
	ReadOpVersion() (int32, error)

	Run(inputs, outputs []nntensor.IOTensor) (outputDims [][]int64, sufficient []bool, err error)

	AllocateBuffer(size int) ([]byte, error)
	ReleaseBuffer(buf []byte)
}
