package ops

import (
	"github.com/hyperifyio/nnrt/pkg/nnop"
	"github.com/hyperifyio/nnrt/pkg/nntensor"
)

// DepthwiseConv2DNative takes input, weight and (optional) bias tensors
// plus stride/pad/dilation parameter tensors: 2 or 3 inputs, 1 output, up
// to 3 vector params, dispatched by tag.
type DepthwiseConv2DNative struct {
	nnop.BaseBuilder
	strides   []int64
	pads      []int64
	dilations []int64
}

func NewDepthwiseConv2DNative(name string) nnop.OperatorBuilder {
	return &DepthwiseConv2DNative{BaseBuilder: nnop.NewBaseBuilder(name)}
}

func (o *DepthwiseConv2DNative) Build(params, inputs, outputs []nnop.TensorIndex, all []*nntensor.Tensor) error {
	if err := o.CheckNotBuilt("DepthwiseConv2DNative"); err != nil {
		return err
	}
	if len(inputs) != 2 && len(inputs) != 3 {
		return nnop.ErrWrongArity("DepthwiseConv2DNative")
	}
	if err := o.CheckArity("DepthwiseConv2DNative", inputs, outputs, len(inputs), 1, all); err != nil {
		return err
	}
	if err := o.CheckParamCount("DepthwiseConv2DNative", params, 3, all); err != nil {
		return err
	}
	if err := nnop.ApplyParams("DepthwiseConv2DNative", params, all, map[nnop.ParamTag]nnop.ParamSetter{
		nnop.ParamDepthwiseConv2DStrides:   nnop.SetterIntVector("DepthwiseConv2DNative", nntensor.DTypeInt32, 2, &o.strides),
		nnop.ParamDepthwiseConv2DPads:      nnop.SetterIntVector("DepthwiseConv2DNative", nntensor.DTypeInt32, 4, &o.pads),
		nnop.ParamDepthwiseConv2DDilations: nnop.SetterIntVector("DepthwiseConv2DNative", nntensor.DTypeInt32, 2, &o.dilations),
	}); err != nil {
		return err
	}
	o.FinishBuild(inputs, outputs, all)
	return nil
}

func (o *DepthwiseConv2DNative) GetPrimitive() *nnop.Primitive {
	return o.EmitPrimitive("DepthwiseConv2DNative", map[string]interface{}{
		"strides":   o.strides,
		"pads":      o.pads,
		"dilations": o.dilations,
	})
}

func init() {
	nnop.DefaultRegistry.Register(nnop.OpDepthwiseConv2DNative, NewDepthwiseConv2DNative)
}
