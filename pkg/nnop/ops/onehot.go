package ops

import (
	"github.com/hyperifyio/nnrt/pkg/nnop"
	"github.com/hyperifyio/nnrt/pkg/nntensor"
)

// OneHot takes indices, depth, on-value and off-value tensors plus an axis
// parameter tensor: 4 inputs, 1 output, 1 param.
type OneHot struct {
	nnop.BaseBuilder
	axis int64
}

func NewOneHot(name string) nnop.OperatorBuilder { return &OneHot{BaseBuilder: nnop.NewBaseBuilder(name)} }

func (o *OneHot) Build(params, inputs, outputs []nnop.TensorIndex, all []*nntensor.Tensor) error {
	if err := o.ValidateCommon("OneHot", params, inputs, outputs, 4, 1, 1, all); err != nil {
		return err
	}
	if err := nnop.ApplyParams("OneHot", params, all, map[nnop.ParamTag]nnop.ParamSetter{
		nnop.ParamOneHotAxis: nnop.SetterInt("OneHot", nntensor.DTypeInt32, &o.axis),
	}); err != nil {
		return err
	}
	o.FinishBuild(inputs, outputs, all)
	return nil
}

func (o *OneHot) GetPrimitive() *nnop.Primitive {
	return o.EmitPrimitive("OneHot", map[string]interface{}{"axis": o.axis})
}

func init() { nnop.DefaultRegistry.Register(nnop.OpOneHot, NewOneHot) }
