package ops

import (
	"github.com/hyperifyio/nnrt/pkg/nnop"
	"github.com/hyperifyio/nnrt/pkg/nntensor"
)

// Pad takes the input tensor and a paddings tensor plus a constant_value
// parameter tensor: 2 inputs, 1 output, 1 optional param.
type Pad struct {
	nnop.BaseBuilder
	constantValue float64
}

func NewPad(name string) nnop.OperatorBuilder { return &Pad{BaseBuilder: nnop.NewBaseBuilder(name)} }

func (o *Pad) Build(params, inputs, outputs []nnop.TensorIndex, all []*nntensor.Tensor) error {
	if err := o.ValidateCommon("Pad", params, inputs, outputs, 2, 1, 1, all); err != nil {
		return err
	}
	if err := nnop.ApplyParams("Pad", params, all, map[nnop.ParamTag]nnop.ParamSetter{
		nnop.ParamPadConstantValue: nnop.SetterFloat("Pad", nntensor.DTypeFloat32, &o.constantValue),
	}); err != nil {
		return err
	}
	o.FinishBuild(inputs, outputs, all)
	return nil
}

func (o *Pad) GetPrimitive() *nnop.Primitive {
	return o.EmitPrimitive("Pad", map[string]interface{}{"constantValue": o.constantValue})
}

func init() { nnop.DefaultRegistry.Register(nnop.OpPad, NewPad) }
