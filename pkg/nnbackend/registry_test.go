package nnbackend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyperifyio/nnrt/pkg/nnerr"
	"github.com/hyperifyio/nnrt/pkg/nngraph"
	"github.com/hyperifyio/nnrt/pkg/nntensor"
)

type fakeBackend struct {
	id     int
	status BackendStatus
}

func (f *fakeBackend) GetBackendID() int                    { return f.id }
func (f *fakeBackend) GetBackendName() string                { return "fake" }
func (f *fakeBackend) GetBackendType() BackendType            { return BackendTypeCPU }
func (f *fakeBackend) GetBackendStatus() BackendStatus        { return f.status }
func (f *fakeBackend) IsFloat16PrecisionSupported() bool      { return false }
func (f *fakeBackend) IsPerformanceModeSupported() bool       { return false }
func (f *fakeBackend) IsPrioritySupported() bool              { return false }
func (f *fakeBackend) IsDynamicInputSupported() bool          { return false }
func (f *fakeBackend) IsModelCacheSupported() bool            { return false }
func (f *fakeBackend) ReadOpVersion() (int32, error)          { return 0, nil }

func (f *fakeBackend) GetSupportedOperation(lite *nngraph.LiteGraph) ([]bool, error) {
	return make([]bool, len(lite.Nodes)), nil
}

func (f *fakeBackend) PrepareModel(lite *nngraph.LiteGraph, cfg Config) (*PreparedModel, error) {
	return &PreparedModel{Backend: f}, nil
}

func (f *fakeBackend) PrepareModelFromModelCache(buffers [][]byte, cfg Config) (*PreparedModel, bool, error) {
	return &PreparedModel{Backend: f}, false, nil
}

func (f *fakeBackend) Run(inputs, outputs []nntensor.IOTensor) ([][]int64, []bool, error) {
	return nil, nil, nil
}

func (f *fakeBackend) AllocateBuffer(size int) ([]byte, error) { return make([]byte, size), nil }
func (f *fakeBackend) ReleaseBuffer(buf []byte)                {}

func TestRegisterAndGetBackendByID(t *testing.T) {
	r := NewRegistry(nil)
	require.NoError(t, r.Register(7, func() (Backend, error) {
		return &fakeBackend{id: 7, status: BackendStatusAvailable}, nil
	}))

	b, err := r.GetBackend(7)
	require.NoError(t, err)
	assert.Equal(t, 7, b.GetBackendID())
}

func TestGetBackendZeroAliasesFirst(t *testing.T) {
	r := NewRegistry(nil)
	require.NoError(t, r.Register(3, func() (Backend, error) {
		return &fakeBackend{id: 3, status: BackendStatusAvailable}, nil
	}))

	b, err := r.GetBackend(0)
	require.NoError(t, err)
	assert.Equal(t, 3, b.GetBackendID())
}

func TestRegisterRejectsDuplicateID(t *testing.T) {
	r := NewRegistry(nil)
	factory := func() (Backend, error) { return &fakeBackend{id: 1, status: BackendStatusAvailable}, nil }
	require.NoError(t, r.Register(1, factory))
	err := r.Register(1, factory)
	require.Error(t, err)
	assert.Equal(t, nnerr.Failed, nnerr.CodeOf(err))
}

func TestRegisterRejectsInvalidStatus(t *testing.T) {
	r := NewRegistry(nil)
	err := r.Register(1, func() (Backend, error) {
		return &fakeBackend{id: 1, status: BackendStatusOffline}, nil
	})
	assert.Error(t, err)
}

func TestGetBackendUnknownID(t *testing.T) {
	r := NewRegistry(nil)
	_, err := r.GetBackend(99)
	assert.Error(t, err)
}

func TestGetBackendNameServedFromCache(t *testing.T) {
	r := NewRegistry(nil)
	require.NoError(t, r.Register(7, func() (Backend, error) {
		return &fakeBackend{id: 7, status: BackendStatusAvailable}, nil
	}))

	name, err := r.GetBackendName(7)
	require.NoError(t, err)
	assert.Equal(t, "fake", name)

	// id 0 aliases the first registered backend here too.
	name, err = r.GetBackendName(0)
	require.NoError(t, err)
	assert.Equal(t, "fake", name)

	_, err = r.GetBackendName(99)
	assert.Error(t, err)
}
