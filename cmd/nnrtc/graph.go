package main

import (
	"github.com/hyperifyio/nnrt/pkg/nngraph"
	"github.com/hyperifyio/nnrt/pkg/nnop"
	"github.com/hyperifyio/nnrt/pkg/nnop/ops"
	"github.com/hyperifyio/nnrt/pkg/nntensor"
)

// buildDemoGraph lowers a single Clip(min=0, max=6) op over a
// length-elementCount float32 vector. Authoring an arbitrary model graph
// is an application concern the runtime's client API exposes one
// AddTensor/AddOperation call at a time — this CLI stands in for that
// application with a single fixed op so compile/run have something real
// to drive end to end.
func buildDemoGraph(elementCount int64) (*nngraph.ModelGraph, error) {
	g := nngraph.NewModelGraph("nnrtc-demo")

	shape := []int64{elementCount}
	inIdx, err := g.AddTensorDesc(float32Desc(shape), nntensor.RoleTensor)
	if err != nil {
		return nil, err
	}
	outIdx, err := g.AddTensorDesc(float32Desc(shape), nntensor.RoleTensor)
	if err != nil {
		return nil, err
	}

	minIdx, err := g.AddTensorDesc(float32Desc([]int64{1}), nntensor.RoleOpParameter)
	if err != nil {
		return nil, err
	}
	if err := g.SetTensorParamTag(minIdx, nnop.ParamClipMin); err != nil {
		return nil, err
	}
	if err := g.SetTensorValue(minIdx, float32LEBytes(0.0)); err != nil {
		return nil, err
	}
	maxIdx, err := g.AddTensorDesc(float32Desc([]int64{1}), nntensor.RoleOpParameter)
	if err != nil {
		return nil, err
	}
	if err := g.SetTensorParamTag(maxIdx, nnop.ParamClipMax); err != nil {
		return nil, err
	}
	if err := g.SetTensorValue(maxIdx, float32LEBytes(6.0)); err != nil {
		return nil, err
	}

	if _, err := g.AddOperation(ops.NewClip("Clip"), []nnop.TensorIndex{minIdx, maxIdx}, []nnop.TensorIndex{inIdx}, []nnop.TensorIndex{outIdx}); err != nil {
		return nil, err
	}
	if err := g.SpecifyInputsAndOutputs([]nnop.TensorIndex{inIdx}, []nnop.TensorIndex{outIdx}); err != nil {
		return nil, err
	}
	return g, nil
}

func float32Desc(shape []int64) *nntensor.TensorDescriptor {
	d := nntensor.NewTensorDescriptor()
	_ = d.SetDType(nntensor.DTypeFloat32)
	_ = d.SetShape(shape)
	return d
}
