package ops

import (
	"github.com/hyperifyio/nnrt/pkg/nnop"
	"github.com/hyperifyio/nnrt/pkg/nntensor"
)

// ResizeBilinear takes the input tensor plus new_height/new_width,
// preserve_aspect_ratio, coordinate_transform_mode and exclude_outside
// parameter tensors: 1 input, 1 output, up to 5 params, dispatched by tag.
type ResizeBilinear struct {
	nnop.BaseBuilder
	newHeight, newWidth     int64
	preserveAspectRatio     bool
	coordinateTransformMode int64
	excludeOutside          int64
}

func NewResizeBilinear(name string) nnop.OperatorBuilder {
	return &ResizeBilinear{BaseBuilder: nnop.NewBaseBuilder(name)}
}

func (o *ResizeBilinear) Build(params, inputs, outputs []nnop.TensorIndex, all []*nntensor.Tensor) error {
	if err := o.ValidateCommon("ResizeBilinear", params, inputs, outputs, 1, 1, 5, all); err != nil {
		return err
	}
	if err := nnop.ApplyParams("ResizeBilinear", params, all, map[nnop.ParamTag]nnop.ParamSetter{
		nnop.ParamResizeNewHeight:               nnop.SetterInt("ResizeBilinear", nntensor.DTypeInt32, &o.newHeight),
		nnop.ParamResizeNewWidth:                nnop.SetterInt("ResizeBilinear", nntensor.DTypeInt32, &o.newWidth),
		nnop.ParamResizePreserveAspectRatio:     nnop.SetterBool("ResizeBilinear", &o.preserveAspectRatio),
		nnop.ParamResizeCoordinateTransformMode: nnop.SetterInt("ResizeBilinear", nntensor.DTypeInt32, &o.coordinateTransformMode),
		nnop.ParamResizeExcludeOutside:          nnop.SetterInt("ResizeBilinear", nntensor.DTypeInt32, &o.excludeOutside),
	}); err != nil {
		return err
	}
	o.FinishBuild(inputs, outputs, all)
	return nil
}

func (o *ResizeBilinear) GetPrimitive() *nnop.Primitive {
	return o.EmitPrimitive("ResizeBilinear", map[string]interface{}{
		"newHeight":               o.newHeight,
		"newWidth":                o.newWidth,
		"preserveAspectRatio":     o.preserveAspectRatio,
		"coordinateTransformMode": o.coordinateTransformMode,
		"excludeOutside":          o.excludeOutside,
	})
}

func init() { nnop.DefaultRegistry.Register(nnop.OpResizeBilinear, NewResizeBilinear) }
