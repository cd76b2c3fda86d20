package ops

import (
	"github.com/hyperifyio/nnrt/pkg/nnop"
	"github.com/hyperifyio/nnrt/pkg/nntensor"
)

// LeakyRelu takes the input tensor plus an alpha parameter tensor: 1
// input, 1 output, 1 optional param.
type LeakyRelu struct {
	nnop.BaseBuilder
	alpha float64
}

func NewLeakyRelu(name string) nnop.OperatorBuilder {
	return &LeakyRelu{BaseBuilder: nnop.NewBaseBuilder(name), alpha: 0.2}
}

func (o *LeakyRelu) Build(params, inputs, outputs []nnop.TensorIndex, all []*nntensor.Tensor) error {
	if err := o.ValidateCommon("LeakyRelu", params, inputs, outputs, 1, 1, 1, all); err != nil {
		return err
	}
	if err := nnop.ApplyParams("LeakyRelu", params, all, map[nnop.ParamTag]nnop.ParamSetter{
		nnop.ParamLeakyReluAlpha: nnop.SetterFloat("LeakyRelu", nntensor.DTypeFloat32, &o.alpha),
	}); err != nil {
		return err
	}
	o.FinishBuild(inputs, outputs, all)
	return nil
}

func (o *LeakyRelu) GetPrimitive() *nnop.Primitive {
	return o.EmitPrimitive("LeakyRelu", map[string]interface{}{"activationType": "leaky_relu", "alpha": o.alpha})
}

func init() { nnop.DefaultRegistry.Register(nnop.OpLeakyRelu, NewLeakyRelu) }
