package ops

import (
	"github.com/hyperifyio/nnrt/pkg/nnerr"
	"github.com/hyperifyio/nnrt/pkg/nnop"
	"github.com/hyperifyio/nnrt/pkg/nntensor"
)

// LayerNorm takes input, gamma and beta tensors plus begin_norm_axis,
// epsilon and begin_param_axis parameter tensors: 3 inputs, 1 output, up
// to 3 params, dispatched by tag. Unlike the no-shape-check operators,
// LayerNorm additionally validates that gamma and beta's shapes match the
// input's trailing dimensions starting at begin_norm_axis, since a
// mismatch there would not surface until a backend executes the
// primitive. begin_param_axis is an independent parameter fed straight
// into the primitive, not used for this validation.
type LayerNorm struct {
	nnop.BaseBuilder
	beginNormAxis  int64
	epsilon        float64
	beginParamAxis int64
}

func NewLayerNorm(name string) nnop.OperatorBuilder {
	return &LayerNorm{BaseBuilder: nnop.NewBaseBuilder(name), epsilon: 1e-7}
}

func (o *LayerNorm) Build(params, inputs, outputs []nnop.TensorIndex, all []*nntensor.Tensor) error {
	if err := o.ValidateCommon("LayerNorm", params, inputs, outputs, 3, 1, 3, all); err != nil {
		return err
	}
	if err := nnop.ApplyParams("LayerNorm", params, all, map[nnop.ParamTag]nnop.ParamSetter{
		nnop.ParamLayerNormBeginNormAxis:  nnop.SetterInt("LayerNorm", nntensor.DTypeInt32, &o.beginNormAxis),
		nnop.ParamLayerNormEpsilon:        nnop.SetterFloat("LayerNorm", nntensor.DTypeFloat32, &o.epsilon),
		nnop.ParamLayerNormBeginParamAxis: nnop.SetterInt("LayerNorm", nntensor.DTypeInt32, &o.beginParamAxis),
	}); err != nil {
		return err
	}
	input, gamma, beta := all[inputs[0]], all[inputs[1]], all[inputs[2]]
	if err := checkNormTail("LayerNorm", input, gamma, int(o.beginNormAxis)); err != nil {
		return err
	}
	if err := checkNormTail("LayerNorm", input, beta, int(o.beginNormAxis)); err != nil {
		return err
	}
	o.FinishBuild(inputs, outputs, all)
	return nil
}

// checkNormTail validates that param's shape equals input's trailing
// dimensions starting at beginAxis.
func checkNormTail(component string, input, param *nntensor.Tensor, beginAxis int) error {
	inShape := input.Descriptor().Shape()
	if beginAxis < 0 {
		beginAxis += len(inShape)
	}
	if beginAxis < 0 || beginAxis > len(inShape) {
		return nnerr.New(component, "Build: begin axis out of range", nnerr.InvalidParameter)
	}
	want := inShape[beginAxis:]
	got := param.Descriptor().Shape()
	if len(want) != len(got) {
		return nnerr.New(component, "Build: param tail shape mismatch", nnerr.InvalidParameter)
	}
	for i := range want {
		if want[i] > 0 && got[i] > 0 && want[i] != got[i] {
			return nnerr.New(component, "Build: param tail shape mismatch", nnerr.InvalidParameter)
		}
	}
	return nil
}

func (o *LayerNorm) GetPrimitive() *nnop.Primitive {
	return o.EmitPrimitive("LayerNorm", map[string]interface{}{
		"beginNormAxis":  o.beginNormAxis,
		"epsilon":        o.epsilon,
		"beginParamAxis": o.beginParamAxis,
	})
}

func init() { nnop.DefaultRegistry.Register(nnop.OpLayerNorm, NewLayerNorm) }
