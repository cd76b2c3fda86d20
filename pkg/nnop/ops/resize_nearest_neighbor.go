package ops

import (
	"github.com/hyperifyio/nnrt/pkg/nnop"
	"github.com/hyperifyio/nnrt/pkg/nntensor"
)

// ResizeNearestNeighbor takes the input tensor plus new_height/new_width
// and preserve_aspect_ratio parameter tensors: 1 input, 1 output, up to 3
// params, dispatched by tag.
type ResizeNearestNeighbor struct {
	nnop.BaseBuilder
	newHeight, newWidth int64
	preserveAspectRatio bool
}

func NewResizeNearestNeighbor(name string) nnop.OperatorBuilder {
	return &ResizeNearestNeighbor{BaseBuilder: nnop.NewBaseBuilder(name)}
}

func (o *ResizeNearestNeighbor) Build(params, inputs, outputs []nnop.TensorIndex, all []*nntensor.Tensor) error {
	if err := o.ValidateCommon("ResizeNearestNeighbor", params, inputs, outputs, 1, 1, 3, all); err != nil {
		return err
	}
	if err := nnop.ApplyParams("ResizeNearestNeighbor", params, all, map[nnop.ParamTag]nnop.ParamSetter{
		nnop.ParamResizeNewHeight:           nnop.SetterInt("ResizeNearestNeighbor", nntensor.DTypeInt32, &o.newHeight),
		nnop.ParamResizeNewWidth:            nnop.SetterInt("ResizeNearestNeighbor", nntensor.DTypeInt32, &o.newWidth),
		nnop.ParamResizePreserveAspectRatio: nnop.SetterBool("ResizeNearestNeighbor", &o.preserveAspectRatio),
	}); err != nil {
		return err
	}
	o.FinishBuild(inputs, outputs, all)
	return nil
}

func (o *ResizeNearestNeighbor) GetPrimitive() *nnop.Primitive {
	return o.EmitPrimitive("ResizeNearestNeighbor", map[string]interface{}{
		"newHeight":           o.newHeight,
		"newWidth":            o.newWidth,
		"preserveAspectRatio": o.preserveAspectRatio,
	})
}

func init() { nnop.DefaultRegistry.Register(nnop.OpResizeNearestNeighbor, NewResizeNearestNeighbor) }
