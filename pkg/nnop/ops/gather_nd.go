package ops

import (
	"github.com/hyperifyio/nnrt/pkg/nnop"
	"github.com/hyperifyio/nnrt/pkg/nntensor"
)

// GatherND takes the input tensor and an index tensor, 1 output.
type GatherND struct {
	nnop.BaseBuilder
}

func NewGatherND(name string) nnop.OperatorBuilder {
	return &GatherND{BaseBuilder: nnop.NewBaseBuilder(name)}
}

func (o *GatherND) Build(params, inputs, outputs []nnop.TensorIndex, all []*nntensor.Tensor) error {
	return buildSimple(&o.BaseBuilder, "GatherND", params, inputs, outputs, 2, 1, 0, all)
}

func (o *GatherND) GetPrimitive() *nnop.Primitive {
	return o.EmitPrimitive("GatherND", map[string]interface{}{})
}

func init() { nnop.DefaultRegistry.Register(nnop.OpGatherND, NewGatherND) }
