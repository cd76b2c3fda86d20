package ops

import (
	"github.com/hyperifyio/nnrt/pkg/nnop"
	"github.com/hyperifyio/nnrt/pkg/nntensor"
)

// Relu is a no-param elementwise/activation builder: 1 input, 1 output.
type Relu struct {
	nnop.BaseBuilder
}

func NewRelu(name string) nnop.OperatorBuilder { return &Relu{BaseBuilder: nnop.NewBaseBuilder(name)} }

func (o *Relu) Build(params, inputs, outputs []nnop.TensorIndex, all []*nntensor.Tensor) error {
	return buildSimple(&o.BaseBuilder, "Relu", params, inputs, outputs, 1, 1, 0, all)
}

func (o *Relu) GetPrimitive() *nnop.Primitive {
	return o.EmitPrimitive("Relu", map[string]interface{}{"activationType": "relu"})
}

func init() { nnop.DefaultRegistry.Register(nnop.OpRelu, NewRelu) }
