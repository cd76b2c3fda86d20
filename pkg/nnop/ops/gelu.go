package ops

import (
	"github.com/hyperifyio/nnrt/pkg/nnop"
	"github.com/hyperifyio/nnrt/pkg/nntensor"
)

// Gelu is an activation-family builder.
type Gelu struct {
	nnop.BaseBuilder
}

func NewGelu(name string) nnop.OperatorBuilder { return &Gelu{BaseBuilder: nnop.NewBaseBuilder(name)} }

func (o *Gelu) Build(params, inputs, outputs []nnop.TensorIndex, all []*nntensor.Tensor) error {
	return buildSimple(&o.BaseBuilder, "Gelu", params, inputs, outputs, 1, 1, 0, all)
}

func (o *Gelu) GetPrimitive() *nnop.Primitive {
	return o.EmitPrimitive("Gelu", map[string]interface{}{"activationType": "gelu"})
}

func init() { nnop.DefaultRegistry.Register(nnop.OpGelu, NewGelu) }
