package ops

import (
	"github.com/hyperifyio/nnrt/pkg/nnop"
	"github.com/hyperifyio/nnrt/pkg/nntensor"
)

// Floor is a no-param elementwise builder: 1 input, 1 output, no params.
type Floor struct {
	nnop.BaseBuilder
}

func NewFloor(name string) nnop.OperatorBuilder { return &Floor{BaseBuilder: nnop.NewBaseBuilder(name)} }

func (o *Floor) Build(params, inputs, outputs []nnop.TensorIndex, all []*nntensor.Tensor) error {
	return buildSimple(&o.BaseBuilder, "Floor", params, inputs, outputs, 1, 1, 0, all)
}

func (o *Floor) GetPrimitive() *nnop.Primitive {
	return o.EmitPrimitive("Floor", map[string]interface{}{})
}

func init() { nnop.DefaultRegistry.Register(nnop.OpFloor, NewFloor) }
