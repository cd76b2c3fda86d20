package ops

import (
	"github.com/hyperifyio/nnrt/pkg/nnop"
	"github.com/hyperifyio/nnrt/pkg/nntensor"
)

// Relu6 is both a no-param elementwise builder and a member of the
// activation family: it emits an activation-type tag with
// default hyperparameters.
type Relu6 struct {
	nnop.BaseBuilder
}

func NewRelu6(name string) nnop.OperatorBuilder { return &Relu6{BaseBuilder: nnop.NewBaseBuilder(name)} }

func (o *Relu6) Build(params, inputs, outputs []nnop.TensorIndex, all []*nntensor.Tensor) error {
	return buildSimple(&o.BaseBuilder, "Relu6", params, inputs, outputs, 1, 1, 0, all)
}

func (o *Relu6) GetPrimitive() *nnop.Primitive {
	return o.EmitPrimitive("Relu6", map[string]interface{}{"activationType": "relu6"})
}

func init() { nnop.DefaultRegistry.Register(nnop.OpRelu6, NewRelu6) }
