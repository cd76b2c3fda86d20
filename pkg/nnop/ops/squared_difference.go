package ops

import (
	"github.com/hyperifyio/nnrt/pkg/nnop"
	"github.com/hyperifyio/nnrt/pkg/nntensor"
)

// SquaredDifference is an elementwise binary builder: 2 inputs, 1 output.
type SquaredDifference struct {
	nnop.BaseBuilder
}

func NewSquaredDifference(name string) nnop.OperatorBuilder {
	return &SquaredDifference{BaseBuilder: nnop.NewBaseBuilder(name)}
}

func (o *SquaredDifference) Build(params, inputs, outputs []nnop.TensorIndex, all []*nntensor.Tensor) error {
	return buildSimple(&o.BaseBuilder, "SquaredDifference", params, inputs, outputs, 2, 1, 0, all)
}

func (o *SquaredDifference) GetPrimitive() *nnop.Primitive {
	return o.EmitPrimitive("SquaredDifference", map[string]interface{}{})
}

func init() { nnop.DefaultRegistry.Register(nnop.OpSquaredDifference, NewSquaredDifference) }
