package ops

import (
	"github.com/hyperifyio/nnrt/pkg/nnop"
	"github.com/hyperifyio/nnrt/pkg/nntensor"
)

// Softmax takes the input tensor plus an axis parameter tensor: 1 input,
// 1 output, 1 optional param.
type Softmax struct {
	nnop.BaseBuilder
	axis int64
}

func NewSoftmax(name string) nnop.OperatorBuilder {
	return &Softmax{BaseBuilder: nnop.NewBaseBuilder(name), axis: -1}
}

func (o *Softmax) Build(params, inputs, outputs []nnop.TensorIndex, all []*nntensor.Tensor) error {
	if err := o.ValidateCommon("Softmax", params, inputs, outputs, 1, 1, 1, all); err != nil {
		return err
	}
	if err := nnop.ApplyParams("Softmax", params, all, map[nnop.ParamTag]nnop.ParamSetter{
		nnop.ParamSoftmaxAxis: nnop.SetterInt("Softmax", nntensor.DTypeInt32, &o.axis),
	}); err != nil {
		return err
	}
	o.FinishBuild(inputs, outputs, all)
	return nil
}

func (o *Softmax) GetPrimitive() *nnop.Primitive {
	return o.EmitPrimitive("Softmax", map[string]interface{}{"axis": o.axis})
}

func init() { nnop.DefaultRegistry.Register(nnop.OpSoftmax, NewSoftmax) }
