package ops

import (
	"github.com/hyperifyio/nnrt/pkg/nnop"
	"github.com/hyperifyio/nnrt/pkg/nntensor"
)

// HardSigmoid is an activation-family builder.
type HardSigmoid struct {
	nnop.BaseBuilder
}

func NewHardSigmoid(name string) nnop.OperatorBuilder {
	return &HardSigmoid{BaseBuilder: nnop.NewBaseBuilder(name)}
}

func (o *HardSigmoid) Build(params, inputs, outputs []nnop.TensorIndex, all []*nntensor.Tensor) error {
	return buildSimple(&o.BaseBuilder, "HardSigmoid", params, inputs, outputs, 1, 1, 0, all)
}

func (o *HardSigmoid) GetPrimitive() *nnop.Primitive {
	return o.EmitPrimitive("HardSigmoid", map[string]interface{}{"activationType": "hard_sigmoid"})
}

func init() { nnop.DefaultRegistry.Register(nnop.OpHardSigmoid, NewHardSigmoid) }
