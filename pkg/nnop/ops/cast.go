package ops

import (
	"github.com/hyperifyio/nnrt/pkg/nnop"
	"github.com/hyperifyio/nnrt/pkg/nntensor"
)

// Cast takes the input tensor plus a destination-dtype parameter tensor:
// 1 input, 1 output, 1 param.
type Cast struct {
	nnop.BaseBuilder
	dstDType int64
}

func NewCast(name string) nnop.OperatorBuilder { return &Cast{BaseBuilder: nnop.NewBaseBuilder(name)} }

func (o *Cast) Build(params, inputs, outputs []nnop.TensorIndex, all []*nntensor.Tensor) error {
	if err := o.ValidateCommon("Cast", params, inputs, outputs, 1, 1, 1, all); err != nil {
		return err
	}
	if err := nnop.ApplyParams("Cast", params, all, map[nnop.ParamTag]nnop.ParamSetter{
		nnop.ParamCastDstT: nnop.SetterInt("Cast", nntensor.DTypeInt32, &o.dstDType),
	}); err != nil {
		return err
	}
	o.FinishBuild(inputs, outputs, all)
	return nil
}

func (o *Cast) GetPrimitive() *nnop.Primitive {
	return o.EmitPrimitive("Cast", map[string]interface{}{"dstDType": o.dstDType})
}

func init() { nnop.DefaultRegistry.Register(nnop.OpCast, NewCast) }
