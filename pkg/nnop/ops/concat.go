package ops

import (
	"github.com/hyperifyio/nnrt/pkg/nnop"
	"github.com/hyperifyio/nnrt/pkg/nntensor"
)

// Concat takes two or more input tensors plus an axis parameter tensor: at
// least 2 inputs, 1 output, 1 param.
type Concat struct {
	nnop.BaseBuilder
	axis int64
}

func NewConcat(name string) nnop.OperatorBuilder { return &Concat{BaseBuilder: nnop.NewBaseBuilder(name)} }

func (o *Concat) Build(params, inputs, outputs []nnop.TensorIndex, all []*nntensor.Tensor) error {
	if err := o.CheckNotBuilt("Concat"); err != nil {
		return err
	}
	if len(inputs) < 2 {
		return nnop.ErrWrongArity("Concat")
	}
	if err := o.CheckArity("Concat", inputs, outputs, len(inputs), 1, all); err != nil {
		return err
	}
	if err := o.CheckParamCount("Concat", params, 1, all); err != nil {
		return err
	}
	if err := nnop.ApplyParams("Concat", params, all, map[nnop.ParamTag]nnop.ParamSetter{
		nnop.ParamConcatAxis: nnop.SetterInt("Concat", nntensor.DTypeInt32, &o.axis),
	}); err != nil {
		return err
	}
	o.FinishBuild(inputs, outputs, all)
	return nil
}

func (o *Concat) GetPrimitive() *nnop.Primitive {
	return o.EmitPrimitive("Concat", map[string]interface{}{"axis": o.axis})
}

func init() { nnop.DefaultRegistry.Register(nnop.OpConcat, NewConcat) }
