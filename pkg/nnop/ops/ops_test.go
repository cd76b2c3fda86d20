package ops

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyperifyio/nnrt/pkg/nnop"
	"github.com/hyperifyio/nnrt/pkg/nntensor"
)

func f32(shape []int64) *nntensor.Tensor {
	d := nntensor.NewTensorDescriptor()
	_ = d.SetDType(nntensor.DTypeFloat32)
	_ = d.SetShape(shape)
	return nntensor.NewTensor(d, nntensor.RoleTensor)
}

func i32Scalar(tag nnop.ParamTag, v int32) *nntensor.Tensor {
	d := nntensor.NewTensorDescriptor()
	_ = d.SetDType(nntensor.DTypeInt32)
	_ = d.SetShape([]int64{1})
	t := nntensor.NewTensor(d, nntensor.RoleOpParameter)
	t.SetParamTag(int(tag))
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, uint32(v))
	_ = t.SetBuffer(buf)
	return t
}

func f32Scalar(tag nnop.ParamTag, v float32) *nntensor.Tensor {
	d := nntensor.NewTensorDescriptor()
	_ = d.SetDType(nntensor.DTypeFloat32)
	_ = d.SetShape([]int64{1})
	t := nntensor.NewTensor(d, nntensor.RoleOpParameter)
	t.SetParamTag(int(tag))
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, math.Float32bits(v))
	_ = t.SetBuffer(buf)
	return t
}

func boolScalar(tag nnop.ParamTag, v bool) *nntensor.Tensor {
	d := nntensor.NewTensorDescriptor()
	_ = d.SetDType(nntensor.DTypeBool)
	_ = d.SetShape([]int64{1})
	t := nntensor.NewTensor(d, nntensor.RoleOpParameter)
	t.SetParamTag(int(tag))
	b := byte(0)
	if v {
		b = 1
	}
	_ = t.SetBuffer([]byte{b})
	return t
}

// i32Input is an ordinary (non-parameter) int32 input tensor, e.g. a
// reduction's axes operand.
func i32Input(v int32) *nntensor.Tensor {
	d := nntensor.NewTensorDescriptor()
	_ = d.SetDType(nntensor.DTypeInt32)
	_ = d.SetShape([]int64{1})
	t := nntensor.NewTensor(d, nntensor.RoleTensor)
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, uint32(v))
	_ = t.SetBuffer(buf)
	return t
}

func TestReluOneInOneOutNoParams(t *testing.T) {
	all := []*nntensor.Tensor{f32([]int64{4}), f32([]int64{4})}
	b := NewRelu("Relu")
	require.NoError(t, b.Build(nil, []nnop.TensorIndex{0}, []nnop.TensorIndex{1}, all))
	assert.True(t, b.Built())
	require.NotNil(t, b.GetPrimitive())

	err := b.Build(nil, []nnop.TensorIndex{0}, []nnop.TensorIndex{1}, all)
	assert.Error(t, err)
}

func TestReluRejectsWrongArity(t *testing.T) {
	all := []*nntensor.Tensor{f32([]int64{4}), f32([]int64{4})}
	b := NewRelu("Relu")
	err := b.Build(nil, []nnop.TensorIndex{0, 1}, []nnop.TensorIndex{1}, all)
	assert.Error(t, err)
}

func TestAddTwoInOneOut(t *testing.T) {
	all := []*nntensor.Tensor{f32([]int64{4}), f32([]int64{4}), f32([]int64{4})}
	b := NewAdd("Add")
	require.NoError(t, b.Build(nil, []nnop.TensorIndex{0, 1}, []nnop.TensorIndex{2}, all))
	assert.True(t, b.Built())
}

func TestClipExtractsMinMaxParams(t *testing.T) {
	minT := f32Scalar(nnop.ParamClipMin, 0)
	require.NoError(t, minT.SetQuantParams(nil))
	all := []*nntensor.Tensor{f32([]int64{4}), f32([]int64{4}), minT, f32Scalar(nnop.ParamClipMax, 6)}
	b := NewClip("Clip")
	require.NoError(t, b.Build([]nnop.TensorIndex{2, 3}, []nnop.TensorIndex{0}, []nnop.TensorIndex{1}, all))
	assert.True(t, b.Built())
	assert.NotNil(t, b.GetPrimitive())
}

func TestClipParamOrderIrrelevant(t *testing.T) {
	// max handed over before min; the tags, not the positions, decide
	// which setter runs.
	all := []*nntensor.Tensor{
		f32([]int64{4}), f32([]int64{4}),
		f32Scalar(nnop.ParamClipMax, 6), f32Scalar(nnop.ParamClipMin, 0),
	}
	b := NewClip("Clip").(*Clip)
	require.NoError(t, b.Build([]nnop.TensorIndex{2, 3}, []nnop.TensorIndex{0}, []nnop.TensorIndex{1}, all))
	assert.Equal(t, 0.0, b.min)
	assert.Equal(t, 6.0, b.max)
}

func TestClipRejectsUnknownParamTag(t *testing.T) {
	all := []*nntensor.Tensor{f32([]int64{4}), f32([]int64{4}), f32Scalar(nnop.ParamLRNAlpha, 1)}
	b := NewClip("Clip")
	err := b.Build([]nnop.TensorIndex{2}, []nnop.TensorIndex{0}, []nnop.TensorIndex{1}, all)
	require.Error(t, err)
	assert.False(t, b.Built())
}

func TestClipRejectsWrongParamDType(t *testing.T) {
	all := []*nntensor.Tensor{f32([]int64{4}), f32([]int64{4}), i32Scalar(nnop.ParamClipMin, 0)}
	b := NewClip("Clip")
	err := b.Build([]nnop.TensorIndex{2}, []nnop.TensorIndex{0}, []nnop.TensorIndex{1}, all)
	require.Error(t, err)
	assert.False(t, b.Built())
	assert.Nil(t, b.GetPrimitive())
}

func TestClipRejectsParamWithoutBuffer(t *testing.T) {
	d := nntensor.NewTensorDescriptor()
	_ = d.SetDType(nntensor.DTypeFloat32)
	_ = d.SetShape([]int64{1})
	noBuf := nntensor.NewTensor(d, nntensor.RoleOpParameter)
	noBuf.SetParamTag(int(nnop.ParamClipMin))
	all := []*nntensor.Tensor{f32([]int64{4}), f32([]int64{4}), noBuf}
	b := NewClip("Clip")
	err := b.Build([]nnop.TensorIndex{2}, []nnop.TensorIndex{0}, []nnop.TensorIndex{1}, all)
	require.Error(t, err)
	assert.False(t, b.Built())
}

func TestClipRejectsParamWithWrongElementCount(t *testing.T) {
	d := nntensor.NewTensorDescriptor()
	_ = d.SetDType(nntensor.DTypeFloat32)
	_ = d.SetShape([]int64{2})
	vec := nntensor.NewTensor(d, nntensor.RoleOpParameter)
	vec.SetParamTag(int(nnop.ParamClipMin))
	require.NoError(t, vec.SetBuffer(make([]byte, 8)))
	all := []*nntensor.Tensor{f32([]int64{4}), f32([]int64{4}), vec}
	b := NewClip("Clip")
	err := b.Build([]nnop.TensorIndex{2}, []nnop.TensorIndex{0}, []nnop.TensorIndex{1}, all)
	require.Error(t, err)
	assert.False(t, b.Built())
}

func TestConcatAcceptsVariadicInputs(t *testing.T) {
	all := []*nntensor.Tensor{f32([]int64{4}), f32([]int64{4}), f32([]int64{4}), f32([]int64{12}), i32Scalar(nnop.ParamConcatAxis, 0)}
	b := NewConcat("Concat")
	require.NoError(t, b.Build([]nnop.TensorIndex{4}, []nnop.TensorIndex{0, 1, 2}, []nnop.TensorIndex{3}, all))
	assert.True(t, b.Built())
}

func TestConcatRejectsSingleInput(t *testing.T) {
	all := []*nntensor.Tensor{f32([]int64{4}), f32([]int64{4})}
	b := NewConcat("Concat")
	err := b.Build(nil, []nnop.TensorIndex{0}, []nnop.TensorIndex{1}, all)
	assert.Error(t, err)
}

func TestSplitAcceptsVariadicOutputs(t *testing.T) {
	all := []*nntensor.Tensor{f32([]int64{4}), f32([]int64{2}), f32([]int64{2})}
	b := NewSplit("Split")
	require.NoError(t, b.Build(nil, []nnop.TensorIndex{0}, []nnop.TensorIndex{1, 2}, all))
	assert.True(t, b.Built())
}

func TestConv2DAcceptsOptionalBias(t *testing.T) {
	all := []*nntensor.Tensor{f32([]int64{1, 3, 8, 8}), f32([]int64{4, 3, 3, 3}), f32([]int64{1, 4, 6, 6})}
	b := NewConv2D("Conv2D")
	require.NoError(t, b.Build(nil, []nnop.TensorIndex{0, 1}, []nnop.TensorIndex{2}, all))
	assert.True(t, b.Built())

	bWithBias := NewConv2D("Conv2DBias")
	allBias := append(all, f32([]int64{4}))
	require.NoError(t, bWithBias.Build(nil, []nnop.TensorIndex{0, 1, 3}, []nnop.TensorIndex{2}, allBias))
	assert.True(t, bWithBias.Built())
}

func TestConv2DRejectsFourInputs(t *testing.T) {
	all := []*nntensor.Tensor{f32([]int64{1}), f32([]int64{1}), f32([]int64{1}), f32([]int64{1}), f32([]int64{1})}
	b := NewConv2D("Conv2D")
	err := b.Build(nil, []nnop.TensorIndex{0, 1, 2, 3}, []nnop.TensorIndex{4}, all)
	assert.Error(t, err)
}

func TestReduceSumExtractsKeepDimsParam(t *testing.T) {
	all := []*nntensor.Tensor{
		f32([]int64{2, 3}), i32Input(1), f32([]int64{2}),
		f32Scalar(nnop.ParamReduceCoeff, 1),
		boolScalar(nnop.ParamReduceToEnd, false),
		boolScalar(nnop.ParamReduceKeepDims, true),
	}
	b := NewReduceSum("ReduceSum")
	require.NoError(t, b.Build([]nnop.TensorIndex{3, 4, 5}, []nnop.TensorIndex{0, 1}, []nnop.TensorIndex{2}, all))
	assert.True(t, b.Built())
	assert.NotNil(t, b.GetPrimitive())
}

func TestLayerNormValidatesGammaAgainstTrailingShape(t *testing.T) {
	all := []*nntensor.Tensor{
		f32([]int64{2, 4}), f32([]int64{4}), f32([]int64{4}), f32([]int64{2, 4}),
		i32Scalar(nnop.ParamLayerNormBeginNormAxis, 1),
		f32Scalar(nnop.ParamLayerNormEpsilon, 1e-5),
		i32Scalar(nnop.ParamLayerNormBeginParamAxis, 1),
	}
	b := NewLayerNorm("LayerNorm")
	require.NoError(t, b.Build([]nnop.TensorIndex{4, 5, 6}, []nnop.TensorIndex{0, 1, 2}, []nnop.TensorIndex{3}, all))
	assert.True(t, b.Built())
}

func TestLayerNormValidatesAgainstBeginNormAxisWhenBeginParamAxisUnset(t *testing.T) {
	all := []*nntensor.Tensor{
		f32([]int64{2, 3, 4}), f32([]int64{3, 4}), f32([]int64{3, 4}), f32([]int64{2, 3, 4}),
		i32Scalar(nnop.ParamLayerNormBeginNormAxis, 1),
	}
	b := NewLayerNorm("LayerNorm")
	err := b.Build([]nnop.TensorIndex{4}, []nnop.TensorIndex{0, 1, 2}, []nnop.TensorIndex{3}, all)
	require.NoError(t, err)
	assert.True(t, b.Built())
}

func TestLayerNormRejectsMismatchedGammaShape(t *testing.T) {
	all := []*nntensor.Tensor{
		f32([]int64{2, 4}), f32([]int64{5}), f32([]int64{4}), f32([]int64{2, 4}),
		i32Scalar(nnop.ParamLayerNormBeginNormAxis, 1),
		f32Scalar(nnop.ParamLayerNormEpsilon, 1e-5),
		i32Scalar(nnop.ParamLayerNormBeginParamAxis, 1),
	}
	b := NewLayerNorm("LayerNorm")
	err := b.Build([]nnop.TensorIndex{4, 5, 6}, []nnop.TensorIndex{0, 1, 2}, []nnop.TensorIndex{3}, all)
	assert.Error(t, err)
}

func TestInstanceNormValidatesChannelVector(t *testing.T) {
	all := []*nntensor.Tensor{f32([]int64{1, 3, 8, 8}), f32([]int64{3}), f32([]int64{3}), f32([]int64{1, 3, 8, 8})}
	b := NewInstanceNorm("InstanceNorm")
	require.NoError(t, b.Build(nil, []nnop.TensorIndex{0, 1, 2}, []nnop.TensorIndex{3}, all))
	assert.True(t, b.Built())
}

func TestInstanceNormRejectsWrongChannelCount(t *testing.T) {
	all := []*nntensor.Tensor{f32([]int64{1, 3, 8, 8}), f32([]int64{4}), f32([]int64{3}), f32([]int64{1, 3, 8, 8})}
	b := NewInstanceNorm("InstanceNorm")
	err := b.Build(nil, []nnop.TensorIndex{0, 1, 2}, []nnop.TensorIndex{3}, all)
	assert.Error(t, err)
}

func TestEveryRegisteredBuilderProducesFreshUnbuiltInstances(t *testing.T) {
	for op := nnop.OpAdd; op <= nnop.OpCast; op++ {
		b := nnop.DefaultRegistry.GetOpsBuilder(op, "x")
		require.NotNilf(t, b, "operator %d has no registered builder", op)
		assert.False(t, b.Built())
		assert.Nil(t, b.GetPrimitive())
	}
}
