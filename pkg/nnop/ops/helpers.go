// Package ops holds the concrete operator builders: one small file per
// operator, each registering itself with nnop.DefaultRegistry from an
// init().
package ops

import (
	"github.com/hyperifyio/nnrt/pkg/nnop"
	"github.com/hyperifyio/nnrt/pkg/nntensor"
)

// buildSimple runs the four shared validation steps plus quant-record and
// built-flag flip, with no parameter extraction — used by the no-param
// elementwise family where params.len() is typically 0 but an
// operator such as Gather (its axis) may carry up to maxParams
// parameter tensors without this module extracting their values, because
// the backend's own primitive consumer does.
func buildSimple(b *nnop.BaseBuilder, component string, params, inputs, outputs []nnop.TensorIndex, wantIn, wantOut, maxParams int, all []*nntensor.Tensor) error {
	if err := b.ValidateCommon(component, params, inputs, outputs, wantIn, wantOut, maxParams, all); err != nil {
		return err
	}
	b.FinishBuild(inputs, outputs, all)
	return nil
}
