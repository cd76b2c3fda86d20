package ops

import (
	"github.com/hyperifyio/nnrt/pkg/nnop"
	"github.com/hyperifyio/nnrt/pkg/nntensor"
)

// reduceBuilder implements the shared shape of the six Reduce* operators:
// input plus axes tensor, 1 output, up to 3 params (coeff, reduce_to_end,
// keep_dims) dispatched by tag.
type reduceBuilder struct {
	nnop.BaseBuilder
	opName      string
	coeff       float64
	reduceToEnd bool
	keepDims    bool
}

func (o *reduceBuilder) Build(params, inputs, outputs []nnop.TensorIndex, all []*nntensor.Tensor) error {
	if err := o.ValidateCommon(o.opName, params, inputs, outputs, 2, 1, 3, all); err != nil {
		return err
	}
	if err := nnop.ApplyParams(o.opName, params, all, map[nnop.ParamTag]nnop.ParamSetter{
		nnop.ParamReduceCoeff:    nnop.SetterFloat(o.opName, nntensor.DTypeFloat32, &o.coeff),
		nnop.ParamReduceToEnd:    nnop.SetterBool(o.opName, &o.reduceToEnd),
		nnop.ParamReduceKeepDims: nnop.SetterBool(o.opName, &o.keepDims),
	}); err != nil {
		return err
	}
	o.FinishBuild(inputs, outputs, all)
	return nil
}

func (o *reduceBuilder) GetPrimitive() *nnop.Primitive {
	return o.EmitPrimitive(o.opName, map[string]interface{}{
		"coeff":       o.coeff,
		"reduceToEnd": o.reduceToEnd,
		"keepDims":    o.keepDims,
	})
}

type ReduceAll struct{ reduceBuilder }
type ReduceMax struct{ reduceBuilder }
type ReduceMin struct{ reduceBuilder }
type ReduceProd struct{ reduceBuilder }
type ReduceMean struct{ reduceBuilder }
type ReduceSum struct{ reduceBuilder }

func NewReduceAll(name string) nnop.OperatorBuilder {
	return &ReduceAll{reduceBuilder{BaseBuilder: nnop.NewBaseBuilder(name), opName: "ReduceAll"}}
}
func NewReduceMax(name string) nnop.OperatorBuilder {
	return &ReduceMax{reduceBuilder{BaseBuilder: nnop.NewBaseBuilder(name), opName: "ReduceMax"}}
}
func NewReduceMin(name string) nnop.OperatorBuilder {
	return &ReduceMin{reduceBuilder{BaseBuilder: nnop.NewBaseBuilder(name), opName: "ReduceMin"}}
}
func NewReduceProd(name string) nnop.OperatorBuilder {
	return &ReduceProd{reduceBuilder{BaseBuilder: nnop.NewBaseBuilder(name), opName: "ReduceProd"}}
}
func NewReduceMean(name string) nnop.OperatorBuilder {
	return &ReduceMean{reduceBuilder{BaseBuilder: nnop.NewBaseBuilder(name), opName: "ReduceMean"}}
}
func NewReduceSum(name string) nnop.OperatorBuilder {
	return &ReduceSum{reduceBuilder{BaseBuilder: nnop.NewBaseBuilder(name), opName: "ReduceSum"}}
}

func init() {
	nnop.DefaultRegistry.Register(nnop.OpReduceAll, NewReduceAll)
	nnop.DefaultRegistry.Register(nnop.OpReduceMax, NewReduceMax)
	nnop.DefaultRegistry.Register(nnop.OpReduceMin, NewReduceMin)
	nnop.DefaultRegistry.Register(nnop.OpReduceProd, NewReduceProd)
	nnop.DefaultRegistry.Register(nnop.OpReduceMean, NewReduceMean)
	nnop.DefaultRegistry.Register(nnop.OpReduceSum, NewReduceSum)
}
