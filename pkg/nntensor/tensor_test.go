package nntensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeDesc(t *testing.T, dtype DType, shape []int64) *TensorDescriptor {
	t.Helper()
	d := NewTensorDescriptor()
	require.NoError(t, d.SetDType(dtype))
	require.NoError(t, d.SetShape(shape))
	return d
}

func TestTensorSetBufferOneShot(t *testing.T) {
	tensor := NewTensor(makeDesc(t, DTypeFloat32, []int64{1, 2}), RoleTensor)

	require.NoError(t, tensor.SetBuffer(make([]byte, 8)))
	assert.True(t, tensor.HasBuffer())

	err := tensor.SetBuffer(make([]byte, 8))
	assert.Error(t, err)
}

func TestTensorSetBufferRejectsWrongLength(t *testing.T) {
	tensor := NewTensor(makeDesc(t, DTypeFloat32, []int64{1, 2}), RoleTensor)
	err := tensor.SetBuffer(make([]byte, 4))
	assert.Error(t, err)
}

func TestTensorSetBufferForbiddenOnDynamicShape(t *testing.T) {
	tensor := NewTensor(makeDesc(t, DTypeFloat32, []int64{1, -1}), RoleTensor)
	err := tensor.SetBuffer(make([]byte, 4))
	assert.Error(t, err)
}

func TestTensorQuantization(t *testing.T) {
	tensor := NewTensor(makeDesc(t, DTypeInt8, []int64{4}), RoleTensor)
	assert.False(t, tensor.IsQuantized())

	require.NoError(t, tensor.SetQuantParams([]QuantizationParam{{NumBits: 8, Scale: 0.1, ZeroPoint: 0}}))
	assert.True(t, tensor.IsQuantized())

	tensor.MarkCompiled()
	err := tensor.SetQuantParams([]QuantizationParam{{NumBits: 8, Scale: 0.2, ZeroPoint: 0}})
	assert.Error(t, err)
}

func TestConvertToIOTensor(t *testing.T) {
	desc := makeDesc(t, DTypeFloat32, []int64{1, 2})
	require.NoError(t, desc.SetName("x"))
	tensor := NewTensor(desc, RoleTensor)
	buf := make([]byte, 8)
	require.NoError(t, tensor.SetBuffer(buf))

	io := tensor.ConvertToIOTensor()
	assert.Equal(t, "x", io.Name)
	assert.Equal(t, DTypeFloat32, io.DType)
	assert.Equal(t, []int64{1, 2}, io.Dimensions)
	assert.Len(t, io.Data, 8)
}

func TestBindBufferAllowsDynamicShape(t *testing.T) {
	tensor := NewTensor(makeDesc(t, DTypeFloat32, []int64{1, -1}), RoleTensor)

	require.Error(t, tensor.SetBuffer(make([]byte, 28)))
	require.NoError(t, tensor.BindBuffer(make([]byte, 28)))
	assert.True(t, tensor.HasBuffer())

	err := tensor.BindBuffer(nil)
	assert.Error(t, err)
}

func TestSetDimensionsRevalidatesBuffer(t *testing.T) {
	desc := makeDesc(t, DTypeFloat32, []int64{1, -1})
	tensor := NewTensor(desc, RoleTensor)

	// Dynamic shape tensors get their buffer bound at execution time, after
	// a concrete shape is known.
	require.NoError(t, tensor.SetDimensions([]int64{1, 7}))
	require.NoError(t, tensor.SetBuffer(make([]byte, 28)))

	err := tensor.SetDimensions([]int64{1, 100})
	assert.Error(t, err)
}
