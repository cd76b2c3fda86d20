package nnop

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyperifyio/nnrt/pkg/nnerr"
	"github.com/hyperifyio/nnrt/pkg/nntensor"
)

func paramScalar(t *testing.T, tag ParamTag, v float32) *nntensor.Tensor {
	t.Helper()
	d := nntensor.NewTensorDescriptor()
	require.NoError(t, d.SetDType(nntensor.DTypeFloat32))
	require.NoError(t, d.SetShape([]int64{1}))
	tensor := nntensor.NewTensor(d, nntensor.RoleOpParameter)
	tensor.SetParamTag(int(tag))
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, math.Float32bits(v))
	require.NoError(t, tensor.SetBuffer(buf))
	return tensor
}

func TestApplyParamsDispatchesByTagNotPosition(t *testing.T) {
	var min, max float64
	all := []*nntensor.Tensor{
		paramScalar(t, ParamClipMax, 6),
		paramScalar(t, ParamClipMin, 0),
	}
	table := map[ParamTag]ParamSetter{
		ParamClipMin: SetterFloat("X", nntensor.DTypeFloat32, &min),
		ParamClipMax: SetterFloat("X", nntensor.DTypeFloat32, &max),
	}
	require.NoError(t, ApplyParams("X", []TensorIndex{0, 1}, all, table))
	assert.Equal(t, 0.0, min)
	assert.Equal(t, 6.0, max)
}

func TestApplyParamsRejectsUnknownTag(t *testing.T) {
	var min float64
	all := []*nntensor.Tensor{paramScalar(t, ParamLRNAlpha, 1)}
	err := ApplyParams("X", []TensorIndex{0}, all, map[ParamTag]ParamSetter{
		ParamClipMin: SetterFloat("X", nntensor.DTypeFloat32, &min),
	})
	require.Error(t, err)
	assert.Equal(t, nnerr.InvalidParameter, nnerr.CodeOf(err))
}

func TestApplyParamsRejectsNonParameterRole(t *testing.T) {
	d := nntensor.NewTensorDescriptor()
	require.NoError(t, d.SetDType(nntensor.DTypeFloat32))
	require.NoError(t, d.SetShape([]int64{1}))
	plain := nntensor.NewTensor(d, nntensor.RoleTensor)
	plain.SetParamTag(int(ParamClipMin))

	var min float64
	err := ApplyParams("X", []TensorIndex{0}, []*nntensor.Tensor{plain}, map[ParamTag]ParamSetter{
		ParamClipMin: SetterFloat("X", nntensor.DTypeFloat32, &min),
	})
	require.Error(t, err)
	assert.Equal(t, nnerr.InvalidParameter, nnerr.CodeOf(err))
}

func TestSetterLeavesValueUnchangedOnFailure(t *testing.T) {
	// Wrong dtype: the setter must fail without clobbering the default.
	d := nntensor.NewTensorDescriptor()
	require.NoError(t, d.SetDType(nntensor.DTypeInt32))
	require.NoError(t, d.SetShape([]int64{1}))
	wrong := nntensor.NewTensor(d, nntensor.RoleOpParameter)
	wrong.SetParamTag(int(ParamClipMin))
	require.NoError(t, wrong.SetBuffer(make([]byte, 4)))

	min := 1.5
	err := ApplyParams("X", []TensorIndex{0}, []*nntensor.Tensor{wrong}, map[ParamTag]ParamSetter{
		ParamClipMin: SetterFloat("X", nntensor.DTypeFloat32, &min),
	})
	require.Error(t, err)
	assert.Equal(t, 1.5, min)
}
