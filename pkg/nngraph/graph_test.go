package nngraph

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyperifyio/nnrt/pkg/nnop"
	"github.com/hyperifyio/nnrt/pkg/nnop/ops"
	"github.com/hyperifyio/nnrt/pkg/nntensor"
)

func float32Desc(shape []int64) *nntensor.TensorDescriptor {
	d := nntensor.NewTensorDescriptor()
	_ = d.SetDType(nntensor.DTypeFloat32)
	_ = d.SetShape(shape)
	return d
}

func float32LEBytes(v float32) []byte {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, math.Float32bits(v))
	return buf
}

func TestBuildClipGraph(t *testing.T) {
	g := NewModelGraph("clip-model")

	inIdx, err := g.AddTensorDesc(float32Desc([]int64{1, 3, 2, 2}), nntensor.RoleTensor)
	require.NoError(t, err)
	outIdx, err := g.AddTensorDesc(float32Desc([]int64{1, 3, 2, 2}), nntensor.RoleTensor)
	require.NoError(t, err)

	minIdx, err := g.AddTensorDesc(float32Desc([]int64{1}), nntensor.RoleOpParameter)
	require.NoError(t, err)
	require.NoError(t, g.SetTensorParamTag(minIdx, nnop.ParamClipMin))
	require.NoError(t, g.SetTensorValue(minIdx, float32LEBytes(0.0)))

	maxIdx, err := g.AddTensorDesc(float32Desc([]int64{1}), nntensor.RoleOpParameter)
	require.NoError(t, err)
	require.NoError(t, g.SetTensorParamTag(maxIdx, nnop.ParamClipMax))
	require.NoError(t, g.SetTensorValue(maxIdx, float32LEBytes(6.0)))

	builder := ops.NewClip("Clip")
	_, err = g.AddOperation(builder, []nnop.TensorIndex{minIdx, maxIdx}, []nnop.TensorIndex{inIdx}, []nnop.TensorIndex{outIdx})
	require.NoError(t, err)

	require.NoError(t, g.SpecifyInputsAndOutputs([]nnop.TensorIndex{inIdx}, []nnop.TensorIndex{outIdx}))

	lite, err := g.Build()
	require.NoError(t, err)

	assert.Len(t, lite.Tensors, 2)
	require.Len(t, lite.Nodes, 1)
	assert.Equal(t, "Clip:0", lite.Nodes[0].Name)
	assert.Equal(t, []int{0}, lite.Subgraph.InputIndices)
	assert.Equal(t, []int{1}, lite.Subgraph.OutputIndices)
}

func TestAddOperationAfterBuildForbidden(t *testing.T) {
	g := NewModelGraph("m")
	inIdx, _ := g.AddTensorDesc(float32Desc([]int64{1}), nntensor.RoleTensor)
	outIdx, _ := g.AddTensorDesc(float32Desc([]int64{1}), nntensor.RoleTensor)
	_, err := g.AddOperation(ops.NewCeil("Ceil"), nil, []nnop.TensorIndex{inIdx}, []nnop.TensorIndex{outIdx})
	require.NoError(t, err)
	require.NoError(t, g.SpecifyInputsAndOutputs([]nnop.TensorIndex{inIdx}, []nnop.TensorIndex{outIdx}))
	_, err = g.Build()
	require.NoError(t, err)

	_, err = g.AddOperation(ops.NewCeil("Ceil2"), nil, []nnop.TensorIndex{inIdx}, []nnop.TensorIndex{outIdx})
	assert.Error(t, err)
}

func TestSpecifyInputsAndOutputsOnce(t *testing.T) {
	g := NewModelGraph("m")
	inIdx, _ := g.AddTensorDesc(float32Desc([]int64{1}), nntensor.RoleTensor)
	outIdx, _ := g.AddTensorDesc(float32Desc([]int64{1}), nntensor.RoleTensor)
	require.NoError(t, g.SpecifyInputsAndOutputs([]nnop.TensorIndex{inIdx}, []nnop.TensorIndex{outIdx}))
	err := g.SpecifyInputsAndOutputs([]nnop.TensorIndex{inIdx}, []nnop.TensorIndex{outIdx})
	assert.Error(t, err)
}

func TestSpecifyInputsAndOutputsRejectsOverlap(t *testing.T) {
	g := NewModelGraph("m")
	idx, _ := g.AddTensorDesc(float32Desc([]int64{1}), nntensor.RoleTensor)
	err := g.SpecifyInputsAndOutputs([]nnop.TensorIndex{idx}, []nnop.TensorIndex{idx})
	assert.Error(t, err)
}

func TestBuildRejectsEmptyGraph(t *testing.T) {
	g := NewModelGraph("m")
	_, err := g.Build()
	assert.Error(t, err)
}
