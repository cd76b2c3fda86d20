package ops

import (
	"github.com/hyperifyio/nnrt/pkg/nnop"
	"github.com/hyperifyio/nnrt/pkg/nntensor"
)

// Reshape takes the input tensor and a target-shape tensor, 1 output.
type Reshape struct {
	nnop.BaseBuilder
}

func NewReshape(name string) nnop.OperatorBuilder {
	return &Reshape{BaseBuilder: nnop.NewBaseBuilder(name)}
}

func (o *Reshape) Build(params, inputs, outputs []nnop.TensorIndex, all []*nntensor.Tensor) error {
	return buildSimple(&o.BaseBuilder, "Reshape", params, inputs, outputs, 2, 1, 0, all)
}

func (o *Reshape) GetPrimitive() *nnop.Primitive {
	return o.EmitPrimitive("Reshape", map[string]interface{}{})
}

func init() { nnop.DefaultRegistry.Register(nnop.OpReshape, NewReshape) }
