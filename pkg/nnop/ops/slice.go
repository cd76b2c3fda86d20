package ops

import (
	"github.com/hyperifyio/nnrt/pkg/nnop"
	"github.com/hyperifyio/nnrt/pkg/nntensor"
)

// Slice takes input, begin and size tensors: 3 inputs, 1 output.
type Slice struct {
	nnop.BaseBuilder
}

func NewSlice(name string) nnop.OperatorBuilder { return &Slice{BaseBuilder: nnop.NewBaseBuilder(name)} }

func (o *Slice) Build(params, inputs, outputs []nnop.TensorIndex, all []*nntensor.Tensor) error {
	return buildSimple(&o.BaseBuilder, "Slice", params, inputs, outputs, 3, 1, 0, all)
}

func (o *Slice) GetPrimitive() *nnop.Primitive {
	return o.EmitPrimitive("Slice", map[string]interface{}{})
}

func init() { nnop.DefaultRegistry.Register(nnop.OpSlice, NewSlice) }
