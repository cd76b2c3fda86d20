package ops

import (
	"github.com/hyperifyio/nnrt/pkg/nnop"
	"github.com/hyperifyio/nnrt/pkg/nntensor"
)

// StridedSlice takes input, begin, end and strides tensors: 4 inputs, 1
// output.
type StridedSlice struct {
	nnop.BaseBuilder
}

func NewStridedSlice(name string) nnop.OperatorBuilder {
	return &StridedSlice{BaseBuilder: nnop.NewBaseBuilder(name)}
}

func (o *StridedSlice) Build(params, inputs, outputs []nnop.TensorIndex, all []*nntensor.Tensor) error {
	return buildSimple(&o.BaseBuilder, "StridedSlice", params, inputs, outputs, 4, 1, 0, all)
}

func (o *StridedSlice) GetPrimitive() *nnop.Primitive {
	return o.EmitPrimitive("StridedSlice", map[string]interface{}{})
}

func init() { nnop.DefaultRegistry.Register(nnop.OpStridedSlice, NewStridedSlice) }
