package ops

import (
	"github.com/hyperifyio/nnrt/pkg/nnop"
	"github.com/hyperifyio/nnrt/pkg/nntensor"
)

// Any reduces along the axes given by the input's second tensor, gated by
// a keep_dims parameter tensor: 2 inputs, 1 output, 1 optional param.
type Any struct {
	nnop.BaseBuilder
	keepDims bool
}

func NewAny(name string) nnop.OperatorBuilder { return &Any{BaseBuilder: nnop.NewBaseBuilder(name)} }

func (o *Any) Build(params, inputs, outputs []nnop.TensorIndex, all []*nntensor.Tensor) error {
	if err := o.ValidateCommon("Any", params, inputs, outputs, 2, 1, 1, all); err != nil {
		return err
	}
	if err := nnop.ApplyParams("Any", params, all, map[nnop.ParamTag]nnop.ParamSetter{
		nnop.ParamAnyKeepDims: nnop.SetterBool("Any", &o.keepDims),
	}); err != nil {
		return err
	}
	o.FinishBuild(inputs, outputs, all)
	return nil
}

func (o *Any) GetPrimitive() *nnop.Primitive {
	return o.EmitPrimitive("Any", map[string]interface{}{"keepDims": o.keepDims})
}

func init() { nnop.DefaultRegistry.Register(nnop.OpAny, NewAny) }
