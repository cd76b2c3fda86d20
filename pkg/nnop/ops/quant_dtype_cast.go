package ops

import (
	"github.com/hyperifyio/nnrt/pkg/nnop"
	"github.com/hyperifyio/nnrt/pkg/nntensor"
)

// QuantDtypeCast takes the input tensor plus src_t/dst_t/axis parameter
// tensors: 1 input, 1 output, up to 3 params, dispatched by tag.
type QuantDtypeCast struct {
	nnop.BaseBuilder
	srcDType, dstDType int64
	axis               int64
}

func NewQuantDtypeCast(name string) nnop.OperatorBuilder {
	return &QuantDtypeCast{BaseBuilder: nnop.NewBaseBuilder(name)}
}

func (o *QuantDtypeCast) Build(params, inputs, outputs []nnop.TensorIndex, all []*nntensor.Tensor) error {
	if err := o.ValidateCommon("QuantDtypeCast", params, inputs, outputs, 1, 1, 3, all); err != nil {
		return err
	}
	if err := nnop.ApplyParams("QuantDtypeCast", params, all, map[nnop.ParamTag]nnop.ParamSetter{
		nnop.ParamQuantDtypeCastSrcT: nnop.SetterInt("QuantDtypeCast", nntensor.DTypeInt32, &o.srcDType),
		nnop.ParamQuantDtypeCastDstT: nnop.SetterInt("QuantDtypeCast", nntensor.DTypeInt32, &o.dstDType),
		nnop.ParamQuantDtypeCastAxis: nnop.SetterInt("QuantDtypeCast", nntensor.DTypeInt32, &o.axis),
	}); err != nil {
		return err
	}
	o.FinishBuild(inputs, outputs, all)
	return nil
}

func (o *QuantDtypeCast) GetPrimitive() *nnop.Primitive {
	return o.EmitPrimitive("QuantDtypeCast", map[string]interface{}{
		"srcDType": o.srcDType,
		"dstDType": o.dstDType,
		"axis":     o.axis,
	})
}

func init() { nnop.DefaultRegistry.Register(nnop.OpQuantDtypeCast, NewQuantDtypeCast) }
