package ops

import (
	"github.com/hyperifyio/nnrt/pkg/nnop"
	"github.com/hyperifyio/nnrt/pkg/nntensor"
)

// Round is a no-param elementwise builder: 1 input, 1 output, no params.
type Round struct {
	nnop.BaseBuilder
}

func NewRound(name string) nnop.OperatorBuilder { return &Round{BaseBuilder: nnop.NewBaseBuilder(name)} }

func (o *Round) Build(params, inputs, outputs []nnop.TensorIndex, all []*nntensor.Tensor) error {
	return buildSimple(&o.BaseBuilder, "Round", params, inputs, outputs, 1, 1, 0, all)
}

func (o *Round) GetPrimitive() *nnop.Primitive {
	return o.EmitPrimitive("Round", map[string]interface{}{})
}

func init() { nnop.DefaultRegistry.Register(nnop.OpRound, NewRound) }
