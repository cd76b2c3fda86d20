package ops

import (
	"github.com/hyperifyio/nnrt/pkg/nnop"
	"github.com/hyperifyio/nnrt/pkg/nntensor"
)

// LRN takes the input tensor plus depth_radius/alpha/beta/bias/norm_region
// parameter tensors: 1 input, 1 output, up to 5 params, dispatched by tag.
type LRN struct {
	nnop.BaseBuilder
	depthRadius       int64
	alpha, beta, bias float64
	normRegion        int64
}

func NewLRN(name string) nnop.OperatorBuilder {
	return &LRN{BaseBuilder: nnop.NewBaseBuilder(name), bias: 1.0}
}

func (o *LRN) Build(params, inputs, outputs []nnop.TensorIndex, all []*nntensor.Tensor) error {
	if err := o.ValidateCommon("LRN", params, inputs, outputs, 1, 1, 5, all); err != nil {
		return err
	}
	if err := nnop.ApplyParams("LRN", params, all, map[nnop.ParamTag]nnop.ParamSetter{
		nnop.ParamLRNDepthRadius: nnop.SetterInt("LRN", nntensor.DTypeInt32, &o.depthRadius),
		nnop.ParamLRNAlpha:       nnop.SetterFloat("LRN", nntensor.DTypeFloat32, &o.alpha),
		nnop.ParamLRNBeta:        nnop.SetterFloat("LRN", nntensor.DTypeFloat32, &o.beta),
		nnop.ParamLRNBias:        nnop.SetterFloat("LRN", nntensor.DTypeFloat32, &o.bias),
		nnop.ParamLRNNormRegion:  nnop.SetterInt("LRN", nntensor.DTypeInt32, &o.normRegion),
	}); err != nil {
		return err
	}
	o.FinishBuild(inputs, outputs, all)
	return nil
}

func (o *LRN) GetPrimitive() *nnop.Primitive {
	return o.EmitPrimitive("LRN", map[string]interface{}{
		"depthRadius": o.depthRadius,
		"alpha":       o.alpha,
		"beta":        o.beta,
		"bias":        o.bias,
		"normRegion":  o.normRegion,
	})
}

func init() { nnop.DefaultRegistry.Register(nnop.OpLRN, NewLRN) }
