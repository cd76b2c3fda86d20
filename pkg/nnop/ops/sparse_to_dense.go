package ops

import (
	"github.com/hyperifyio/nnrt/pkg/nnop"
	"github.com/hyperifyio/nnrt/pkg/nntensor"
)

// SparseToDense takes indices, output-shape, values and default-value
// tensors: 4 inputs, 1 output.
type SparseToDense struct {
	nnop.BaseBuilder
}

func NewSparseToDense(name string) nnop.OperatorBuilder {
	return &SparseToDense{BaseBuilder: nnop.NewBaseBuilder(name)}
}

func (o *SparseToDense) Build(params, inputs, outputs []nnop.TensorIndex, all []*nntensor.Tensor) error {
	return buildSimple(&o.BaseBuilder, "SparseToDense", params, inputs, outputs, 4, 1, 0, all)
}

func (o *SparseToDense) GetPrimitive() *nnop.Primitive {
	return o.EmitPrimitive("SparseToDense", map[string]interface{}{})
}

func init() { nnop.DefaultRegistry.Register(nnop.OpSparseToDense, NewSparseToDense) }
