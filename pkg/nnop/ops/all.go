package ops

import (
	"github.com/hyperifyio/nnrt/pkg/nnop"
	"github.com/hyperifyio/nnrt/pkg/nntensor"
)

// All reduces along the axes given by the input's second tensor, gated by
// a keep_dims parameter tensor: 2 inputs, 1 output, 1 optional param.
type All struct {
	nnop.BaseBuilder
	keepDims bool
}

func NewAll(name string) nnop.OperatorBuilder { return &All{BaseBuilder: nnop.NewBaseBuilder(name)} }

func (o *All) Build(params, inputs, outputs []nnop.TensorIndex, all []*nntensor.Tensor) error {
	if err := o.ValidateCommon("All", params, inputs, outputs, 2, 1, 1, all); err != nil {
		return err
	}
	if err := nnop.ApplyParams("All", params, all, map[nnop.ParamTag]nnop.ParamSetter{
		nnop.ParamAllKeepDims: nnop.SetterBool("All", &o.keepDims),
	}); err != nil {
		return err
	}
	o.FinishBuild(inputs, outputs, all)
	return nil
}

func (o *All) GetPrimitive() *nnop.Primitive {
	return o.EmitPrimitive("All", map[string]interface{}{"keepDims": o.keepDims})
}

func init() { nnop.DefaultRegistry.Register(nnop.OpAll, NewAll) }
