package ops

import (
	"github.com/hyperifyio/nnrt/pkg/nnop"
	"github.com/hyperifyio/nnrt/pkg/nntensor"
)

// Gather takes the input and indices tensors (2 inputs), 1 output, and at
// most one axis parameter tensor whose value is not extracted here.
type Gather struct {
	nnop.BaseBuilder
}

func NewGather(name string) nnop.OperatorBuilder { return &Gather{BaseBuilder: nnop.NewBaseBuilder(name)} }

func (o *Gather) Build(params, inputs, outputs []nnop.TensorIndex, all []*nntensor.Tensor) error {
	return buildSimple(&o.BaseBuilder, "Gather", params, inputs, outputs, 2, 1, 1, all)
}

func (o *Gather) GetPrimitive() *nnop.Primitive {
	return o.EmitPrimitive("Gather", map[string]interface{}{})
}

func init() { nnop.DefaultRegistry.Register(nnop.OpGather, NewGather) }
