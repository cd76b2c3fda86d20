package ops

import (
	"github.com/hyperifyio/nnrt/pkg/nnop"
	"github.com/hyperifyio/nnrt/pkg/nntensor"
)

// Maximum is an elementwise binary builder: 2 inputs, 1 output.
type Maximum struct {
	nnop.BaseBuilder
}

func NewMaximum(name string) nnop.OperatorBuilder {
	return &Maximum{BaseBuilder: nnop.NewBaseBuilder(name)}
}

func (o *Maximum) Build(params, inputs, outputs []nnop.TensorIndex, all []*nntensor.Tensor) error {
	return buildSimple(&o.BaseBuilder, "Maximum", params, inputs, outputs, 2, 1, 0, all)
}

func (o *Maximum) GetPrimitive() *nnop.Primitive {
	return o.EmitPrimitive("Maximum", map[string]interface{}{})
}

func init() { nnop.DefaultRegistry.Register(nnop.OpMaximum, NewMaximum) }
