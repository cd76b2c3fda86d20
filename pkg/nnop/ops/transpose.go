package ops

import (
	"github.com/hyperifyio/nnrt/pkg/nnop"
	"github.com/hyperifyio/nnrt/pkg/nntensor"
)

// Transpose takes the input tensor and a permutation tensor: 2 inputs, 1
// output.
type Transpose struct {
	nnop.BaseBuilder
}

func NewTranspose(name string) nnop.OperatorBuilder {
	return &Transpose{BaseBuilder: nnop.NewBaseBuilder(name)}
}

func (o *Transpose) Build(params, inputs, outputs []nnop.TensorIndex, all []*nntensor.Tensor) error {
	return buildSimple(&o.BaseBuilder, "Transpose", params, inputs, outputs, 2, 1, 0, all)
}

func (o *Transpose) GetPrimitive() *nnop.Primitive {
	return o.EmitPrimitive("Transpose", map[string]interface{}{})
}

func init() { nnop.DefaultRegistry.Register(nnop.OpTranspose, NewTranspose) }
