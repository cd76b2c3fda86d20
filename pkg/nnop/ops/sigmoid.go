package ops

import (
	"github.com/hyperifyio/nnrt/pkg/nnop"
	"github.com/hyperifyio/nnrt/pkg/nntensor"
)

// Sigmoid is an activation-family builder: 1 input, 1 output.
type Sigmoid struct {
	nnop.BaseBuilder
}

func NewSigmoid(name string) nnop.OperatorBuilder {
	return &Sigmoid{BaseBuilder: nnop.NewBaseBuilder(name)}
}

func (o *Sigmoid) Build(params, inputs, outputs []nnop.TensorIndex, all []*nntensor.Tensor) error {
	return buildSimple(&o.BaseBuilder, "Sigmoid", params, inputs, outputs, 1, 1, 0, all)
}

func (o *Sigmoid) GetPrimitive() *nnop.Primitive {
	return o.EmitPrimitive("Sigmoid", map[string]interface{}{"activationType": "sigmoid"})
}

func init() { nnop.DefaultRegistry.Register(nnop.OpSigmoid, NewSigmoid) }
