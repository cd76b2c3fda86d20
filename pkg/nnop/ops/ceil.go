package ops

import (
	"github.com/hyperifyio/nnrt/pkg/nnop"
	"github.com/hyperifyio/nnrt/pkg/nntensor"
)

// Ceil is a no-param elementwise builder: 1 input, 1 output, no
// parameter tensors.
type Ceil struct {
	nnop.BaseBuilder
}

func NewCeil(name string) nnop.OperatorBuilder { return &Ceil{BaseBuilder: nnop.NewBaseBuilder(name)} }

func (c *Ceil) Build(params, inputs, outputs []nnop.TensorIndex, all []*nntensor.Tensor) error {
	return buildSimple(&c.BaseBuilder, "Ceil", params, inputs, outputs, 1, 1, 0, all)
}

func (c *Ceil) GetPrimitive() *nnop.Primitive {
	return c.EmitPrimitive("Ceil", map[string]interface{}{})
}

func init() { nnop.DefaultRegistry.Register(nnop.OpCeil, NewCeil) }
