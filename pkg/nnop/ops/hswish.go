package ops

import (
	"github.com/hyperifyio/nnrt/pkg/nnop"
	"github.com/hyperifyio/nnrt/pkg/nntensor"
)

// HSwish is an activation-family builder.
type HSwish struct {
	nnop.BaseBuilder
}

func NewHSwish(name string) nnop.OperatorBuilder {
	return &HSwish{BaseBuilder: nnop.NewBaseBuilder(name)}
}

func (o *HSwish) Build(params, inputs, outputs []nnop.TensorIndex, all []*nntensor.Tensor) error {
	return buildSimple(&o.BaseBuilder, "HSwish", params, inputs, outputs, 1, 1, 0, all)
}

func (o *HSwish) GetPrimitive() *nnop.Primitive {
	return o.EmitPrimitive("HSwish", map[string]interface{}{"activationType": "hswish"})
}

func init() { nnop.DefaultRegistry.Register(nnop.OpHSwish, NewHSwish) }
