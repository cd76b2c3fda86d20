package ops

import (
	"github.com/hyperifyio/nnrt/pkg/nnop"
	"github.com/hyperifyio/nnrt/pkg/nntensor"
)

// BatchNorm takes input, scale, offset, mean and variance tensors plus an
// epsilon parameter tensor: 5 inputs, 1 output, 1 param.
type BatchNorm struct {
	nnop.BaseBuilder
	epsilon float64
}

func NewBatchNorm(name string) nnop.OperatorBuilder {
	return &BatchNorm{BaseBuilder: nnop.NewBaseBuilder(name), epsilon: 1e-5}
}

func (o *BatchNorm) Build(params, inputs, outputs []nnop.TensorIndex, all []*nntensor.Tensor) error {
	if err := o.ValidateCommon("BatchNorm", params, inputs, outputs, 5, 1, 1, all); err != nil {
		return err
	}
	if err := nnop.ApplyParams("BatchNorm", params, all, map[nnop.ParamTag]nnop.ParamSetter{
		nnop.ParamBatchNormEpsilon: nnop.SetterFloat("BatchNorm", nntensor.DTypeFloat32, &o.epsilon),
	}); err != nil {
		return err
	}
	o.FinishBuild(inputs, outputs, all)
	return nil
}

func (o *BatchNorm) GetPrimitive() *nnop.Primitive {
	return o.EmitPrimitive("BatchNorm", map[string]interface{}{"epsilon": o.epsilon})
}

func init() { nnop.DefaultRegistry.Register(nnop.OpBatchNorm, NewBatchNorm) }
