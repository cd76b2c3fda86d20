package ops

import (
	"github.com/hyperifyio/nnrt/pkg/nnop"
	"github.com/hyperifyio/nnrt/pkg/nntensor"
)

// Mul is an elementwise binary builder: 2 inputs, 1 output.
type Mul struct {
	nnop.BaseBuilder
}

func NewMul(name string) nnop.OperatorBuilder { return &Mul{BaseBuilder: nnop.NewBaseBuilder(name)} }

func (o *Mul) Build(params, inputs, outputs []nnop.TensorIndex, all []*nntensor.Tensor) error {
	return buildSimple(&o.BaseBuilder, "Mul", params, inputs, outputs, 2, 1, 0, all)
}

func (o *Mul) GetPrimitive() *nnop.Primitive {
	return o.EmitPrimitive("Mul", map[string]interface{}{})
}

func init() { nnop.DefaultRegistry.Register(nnop.OpMul, NewMul) }
