package ops

import (
	"github.com/hyperifyio/nnrt/pkg/nnop"
	"github.com/hyperifyio/nnrt/pkg/nntensor"
)

// Fill takes a shape tensor and a scalar value tensor, 1 output.
type Fill struct {
	nnop.BaseBuilder
}

func NewFill(name string) nnop.OperatorBuilder { return &Fill{BaseBuilder: nnop.NewBaseBuilder(name)} }

func (o *Fill) Build(params, inputs, outputs []nnop.TensorIndex, all []*nntensor.Tensor) error {
	return buildSimple(&o.BaseBuilder, "Fill", params, inputs, outputs, 2, 1, 0, all)
}

func (o *Fill) GetPrimitive() *nnop.Primitive {
	return o.EmitPrimitive("Fill", map[string]interface{}{})
}

func init() { nnop.DefaultRegistry.Register(nnop.OpFill, NewFill) }
