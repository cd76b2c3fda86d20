package ops

import (
	"github.com/hyperifyio/nnrt/pkg/nnop"
	"github.com/hyperifyio/nnrt/pkg/nntensor"
)

// Conv2D takes input, weight and (optional) bias tensors plus stride/pad/
// dilation/group parameter tensors: 2 or 3 inputs, 1 output, up to 4
// vector/scalar params, dispatched by tag.
type Conv2D struct {
	nnop.BaseBuilder
	strides   []int64
	pads      []int64
	dilations []int64
	group     int64
}

func NewConv2D(name string) nnop.OperatorBuilder {
	return &Conv2D{BaseBuilder: nnop.NewBaseBuilder(name), group: 1}
}

func (o *Conv2D) Build(params, inputs, outputs []nnop.TensorIndex, all []*nntensor.Tensor) error {
	if err := o.CheckNotBuilt("Conv2D"); err != nil {
		return err
	}
	if len(inputs) != 2 && len(inputs) != 3 {
		return nnop.ErrWrongArity("Conv2D")
	}
	if err := o.CheckArity("Conv2D", inputs, outputs, len(inputs), 1, all); err != nil {
		return err
	}
	if err := o.CheckParamCount("Conv2D", params, 4, all); err != nil {
		return err
	}
	if err := nnop.ApplyParams("Conv2D", params, all, map[nnop.ParamTag]nnop.ParamSetter{
		nnop.ParamConv2DStrides:   nnop.SetterIntVector("Conv2D", nntensor.DTypeInt32, 2, &o.strides),
		nnop.ParamConv2DPads:      nnop.SetterIntVector("Conv2D", nntensor.DTypeInt32, 4, &o.pads),
		nnop.ParamConv2DDilations: nnop.SetterIntVector("Conv2D", nntensor.DTypeInt32, 2, &o.dilations),
		nnop.ParamConv2DGroup:     nnop.SetterInt("Conv2D", nntensor.DTypeInt32, &o.group),
	}); err != nil {
		return err
	}
	o.FinishBuild(inputs, outputs, all)
	return nil
}

func (o *Conv2D) GetPrimitive() *nnop.Primitive {
	return o.EmitPrimitive("Conv2D", map[string]interface{}{
		"strides":   o.strides,
		"pads":      o.pads,
		"dilations": o.dilations,
		"group":     o.group,
	})
}

func init() { nnop.DefaultRegistry.Register(nnop.OpConv2D, NewConv2D) }
