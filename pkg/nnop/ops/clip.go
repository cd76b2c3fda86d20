package ops

import (
	"github.com/hyperifyio/nnrt/pkg/nnop"
	"github.com/hyperifyio/nnrt/pkg/nntensor"
)

// Clip takes the input tensor plus min/max parameter tensors: 1 input, 1
// output, up to 2 params, dispatched by tag.
type Clip struct {
	nnop.BaseBuilder
	min, max float64
}

func NewClip(name string) nnop.OperatorBuilder { return &Clip{BaseBuilder: nnop.NewBaseBuilder(name)} }

func (o *Clip) Build(params, inputs, outputs []nnop.TensorIndex, all []*nntensor.Tensor) error {
	if err := o.ValidateCommon("Clip", params, inputs, outputs, 1, 1, 2, all); err != nil {
		return err
	}
	if err := nnop.ApplyParams("Clip", params, all, map[nnop.ParamTag]nnop.ParamSetter{
		nnop.ParamClipMin: nnop.SetterFloat("Clip", nntensor.DTypeFloat32, &o.min),
		nnop.ParamClipMax: nnop.SetterFloat("Clip", nntensor.DTypeFloat32, &o.max),
	}); err != nil {
		return err
	}
	o.FinishBuild(inputs, outputs, all)
	return nil
}

func (o *Clip) GetPrimitive() *nnop.Primitive {
	return o.EmitPrimitive("Clip", map[string]interface{}{"min": o.min, "max": o.max})
}

func init() { nnop.DefaultRegistry.Register(nnop.OpClip, NewClip) }
