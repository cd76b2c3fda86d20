package ops

import (
	"github.com/hyperifyio/nnrt/pkg/nnop"
	"github.com/hyperifyio/nnrt/pkg/nntensor"
)

// Split takes the input tensor plus axis and size_splits parameter
// tensors: 1 input, at least 1 output, up to 2 params, dispatched by tag.
type Split struct {
	nnop.BaseBuilder
	axis       int64
	sizeSplits []int64
}

func NewSplit(name string) nnop.OperatorBuilder { return &Split{BaseBuilder: nnop.NewBaseBuilder(name)} }

func (o *Split) Build(params, inputs, outputs []nnop.TensorIndex, all []*nntensor.Tensor) error {
	if err := o.CheckNotBuilt("Split"); err != nil {
		return err
	}
	if len(outputs) < 1 {
		return nnop.ErrWrongArity("Split")
	}
	if err := o.CheckArity("Split", inputs, outputs, 1, len(outputs), all); err != nil {
		return err
	}
	if err := o.CheckParamCount("Split", params, 2, all); err != nil {
		return err
	}
	if err := nnop.ApplyParams("Split", params, all, map[nnop.ParamTag]nnop.ParamSetter{
		nnop.ParamSplitAxis:       nnop.SetterInt("Split", nntensor.DTypeInt32, &o.axis),
		nnop.ParamSplitSizeSplits: nnop.SetterIntVector("Split", nntensor.DTypeInt32, -1, &o.sizeSplits),
	}); err != nil {
		return err
	}
	o.FinishBuild(inputs, outputs, all)
	return nil
}

func (o *Split) GetPrimitive() *nnop.Primitive {
	return o.EmitPrimitive("Split", map[string]interface{}{
		"axis":       o.axis,
		"sizeSplits": o.sizeSplits,
	})
}

func init() { nnop.DefaultRegistry.Register(nnop.OpSplit, NewSplit) }
