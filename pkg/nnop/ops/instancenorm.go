package ops

import (
	"github.com/hyperifyio/nnrt/pkg/nnerr"
	"github.com/hyperifyio/nnrt/pkg/nnop"
	"github.com/hyperifyio/nnrt/pkg/nntensor"
)

// InstanceNorm takes input, gamma and beta tensors plus an epsilon
// parameter tensor: 3 inputs, 1 output, 1 optional param. gamma/beta are
// validated against the input's channel dimension (axis 1, NCHW).
type InstanceNorm struct {
	nnop.BaseBuilder
	epsilon float64
}

func NewInstanceNorm(name string) nnop.OperatorBuilder {
	return &InstanceNorm{BaseBuilder: nnop.NewBaseBuilder(name), epsilon: 1e-5}
}

func (o *InstanceNorm) Build(params, inputs, outputs []nnop.TensorIndex, all []*nntensor.Tensor) error {
	if err := o.ValidateCommon("InstanceNorm", params, inputs, outputs, 3, 1, 1, all); err != nil {
		return err
	}
	if err := nnop.ApplyParams("InstanceNorm", params, all, map[nnop.ParamTag]nnop.ParamSetter{
		nnop.ParamInstanceNormEpsilon: nnop.SetterFloat("InstanceNorm", nntensor.DTypeFloat32, &o.epsilon),
	}); err != nil {
		return err
	}
	input, gamma, beta := all[inputs[0]], all[inputs[1]], all[inputs[2]]
	if err := checkChannelMatch("InstanceNorm", input, gamma); err != nil {
		return err
	}
	if err := checkChannelMatch("InstanceNorm", input, beta); err != nil {
		return err
	}
	o.FinishBuild(inputs, outputs, all)
	return nil
}

// checkChannelMatch validates that param is a 1-D tensor matching input's
// channel dimension (axis 1, NCHW).
func checkChannelMatch(component string, input, param *nntensor.Tensor) error {
	inShape := input.Descriptor().Shape()
	if len(inShape) < 2 {
		return nnerr.New(component, "Build: input rank too low for channel axis", nnerr.InvalidParameter)
	}
	paramShape := param.Descriptor().Shape()
	if len(paramShape) != 1 {
		return nnerr.New(component, "Build: channel param must be 1-D", nnerr.InvalidParameter)
	}
	channels := inShape[1]
	if channels > 0 && paramShape[0] > 0 && channels != paramShape[0] {
		return nnerr.New(component, "Build: channel param size mismatch", nnerr.InvalidParameter)
	}
	return nil
}

func (o *InstanceNorm) GetPrimitive() *nnop.Primitive {
	return o.EmitPrimitive("InstanceNorm", map[string]interface{}{"epsilon": o.epsilon})
}

func init() { nnop.DefaultRegistry.Register(nnop.OpInstanceNorm, NewInstanceNorm) }
