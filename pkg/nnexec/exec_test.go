package nnexec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyperifyio/nnrt/pkg/nnbackend"
	"github.com/hyperifyio/nnrt/pkg/nnbackend/refcpu"
	"github.com/hyperifyio/nnrt/pkg/nntensor"
)

// dynBackend resolves every output to a fixed concrete shape, standing in
// for a device that only knows its output dimensions at run time.
type dynBackend struct {
	*refcpu.Backend
	dims       [][]int64
	sufficient []bool
}

func (d *dynBackend) Run(inputs, outputs []nntensor.IOTensor) ([][]int64, []bool, error) {
	return d.dims, d.sufficient, nil
}

var _ nnbackend.Backend = (*dynBackend)(nil)

func desc(t *testing.T, name string, shape []int64) *nntensor.TensorDescriptor {
	t.Helper()
	d := nntensor.NewTensorDescriptor()
	require.NoError(t, d.SetDType(nntensor.DTypeFloat32))
	require.NoError(t, d.SetFormat(nntensor.FormatNCHW))
	require.NoError(t, d.SetShape(shape))
	require.NoError(t, d.SetName(name))
	return d
}

func TestRunRejectsMissingBackend(t *testing.T) {
	e := &Executor{}
	in := nntensor.NewTensor(desc(t, "in", []int64{1}), nntensor.RoleTensor)
	require.NoError(t, in.SetBuffer(make([]byte, 4)))
	out := nntensor.NewTensor(desc(t, "out", []int64{1}), nntensor.RoleTensor)
	require.NoError(t, out.SetBuffer(make([]byte, 4)))

	err := e.Run([]*nntensor.Tensor{in}, []*nntensor.Tensor{out})
	assert.Error(t, err)
}

func TestRunSucceedsAgainstRefCPU(t *testing.T) {
	b := refcpu.New(1)
	e := New(b)

	in := nntensor.NewTensor(desc(t, "in", []int64{1}), nntensor.RoleTensor)
	require.NoError(t, in.SetBuffer(make([]byte, 4)))
	out := nntensor.NewTensor(desc(t, "out", []int64{1}), nntensor.RoleTensor)
	require.NoError(t, out.SetBuffer(make([]byte, 4)))

	err := e.Run([]*nntensor.Tensor{in}, []*nntensor.Tensor{out})
	require.NoError(t, err)
}

func TestRunRebindsDynamicOutputShape(t *testing.T) {
	b := &dynBackend{Backend: refcpu.New(1), dims: [][]int64{{1, 7}}, sufficient: []bool{true}}
	e := New(b)

	in := nntensor.NewTensor(desc(t, "in", []int64{1, 7}), nntensor.RoleTensor)
	require.NoError(t, in.SetBuffer(make([]byte, 28)))
	out := nntensor.NewTensor(desc(t, "out", []int64{1, -1}), nntensor.RoleTensor)
	require.NoError(t, out.BindBuffer(make([]byte, 28)))

	require.NoError(t, e.Run([]*nntensor.Tensor{in}, []*nntensor.Tensor{out}))

	assert.Equal(t, []int64{1, 7}, out.Descriptor().Shape())
	size, err := out.Descriptor().ByteSize()
	require.NoError(t, err)
	assert.EqualValues(t, 28, size)
}

func TestRunReportsInsufficientOutputsWithoutRebinding(t *testing.T) {
	b := &dynBackend{Backend: refcpu.New(1), dims: [][]int64{{1, 100}}, sufficient: []bool{false}}
	e := New(b)

	in := nntensor.NewTensor(desc(t, "in", []int64{1, 7}), nntensor.RoleTensor)
	require.NoError(t, in.SetBuffer(make([]byte, 28)))
	out := nntensor.NewTensor(desc(t, "out", []int64{1, -1}), nntensor.RoleTensor)
	require.NoError(t, out.BindBuffer(make([]byte, 28)))

	err := e.Run([]*nntensor.Tensor{in}, []*nntensor.Tensor{out})
	require.Error(t, err)
	assert.Equal(t, []int64{1, -1}, out.Descriptor().Shape())
}
