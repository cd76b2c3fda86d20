package ops

import (
	"github.com/hyperifyio/nnrt/pkg/nnop"
	"github.com/hyperifyio/nnrt/pkg/nntensor"
)

// PRelu takes the input tensor and a per-channel slope tensor, 1 output.
type PRelu struct {
	nnop.BaseBuilder
}

func NewPRelu(name string) nnop.OperatorBuilder { return &PRelu{BaseBuilder: nnop.NewBaseBuilder(name)} }

func (o *PRelu) Build(params, inputs, outputs []nnop.TensorIndex, all []*nntensor.Tensor) error {
	return buildSimple(&o.BaseBuilder, "PRelu", params, inputs, outputs, 2, 1, 0, all)
}

func (o *PRelu) GetPrimitive() *nnop.Primitive {
	return o.EmitPrimitive("PRelu", map[string]interface{}{"activationType": "prelu"})
}

func init() { nnop.DefaultRegistry.Register(nnop.OpPRelu, NewPRelu) }
