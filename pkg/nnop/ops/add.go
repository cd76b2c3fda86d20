package ops

import (
	"github.com/hyperifyio/nnrt/pkg/nnop"
	"github.com/hyperifyio/nnrt/pkg/nntensor"
)

// Add is an elementwise binary builder: 2 inputs, 1 output.
type Add struct {
	nnop.BaseBuilder
}

func NewAdd(name string) nnop.OperatorBuilder { return &Add{BaseBuilder: nnop.NewBaseBuilder(name)} }

func (o *Add) Build(params, inputs, outputs []nnop.TensorIndex, all []*nntensor.Tensor) error {
	return buildSimple(&o.BaseBuilder, "Add", params, inputs, outputs, 2, 1, 0, all)
}

func (o *Add) GetPrimitive() *nnop.Primitive {
	return o.EmitPrimitive("Add", map[string]interface{}{})
}

func init() { nnop.DefaultRegistry.Register(nnop.OpAdd, NewAdd) }
