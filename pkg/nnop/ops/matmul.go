package ops

import (
	"github.com/hyperifyio/nnrt/pkg/nnop"
	"github.com/hyperifyio/nnrt/pkg/nntensor"
)

// MatMul takes two input tensors plus transpose_a/transpose_b parameter
// tensors: 2 inputs, 1 output, up to 2 params, dispatched by tag.
type MatMul struct {
	nnop.BaseBuilder
	transposeA, transposeB bool
}

func NewMatMul(name string) nnop.OperatorBuilder { return &MatMul{BaseBuilder: nnop.NewBaseBuilder(name)} }

func (o *MatMul) Build(params, inputs, outputs []nnop.TensorIndex, all []*nntensor.Tensor) error {
	if err := o.ValidateCommon("MatMul", params, inputs, outputs, 2, 1, 2, all); err != nil {
		return err
	}
	if err := nnop.ApplyParams("MatMul", params, all, map[nnop.ParamTag]nnop.ParamSetter{
		nnop.ParamMatMulTransposeA: nnop.SetterBool("MatMul", &o.transposeA),
		nnop.ParamMatMulTransposeB: nnop.SetterBool("MatMul", &o.transposeB),
	}); err != nil {
		return err
	}
	o.FinishBuild(inputs, outputs, all)
	return nil
}

func (o *MatMul) GetPrimitive() *nnop.Primitive {
	return o.EmitPrimitive("MatMul", map[string]interface{}{
		"transposeA": o.transposeA,
		"transposeB": o.transposeB,
	})
}

func init() { nnop.DefaultRegistry.Register(nnop.OpMatMul, NewMatMul) }
