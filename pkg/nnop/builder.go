// Package nnop defines the Operator Builder contract, the
// Operator Registry, and the small validation helpers shared by
// every concrete builder in pkg/nnop/ops.
//
// An operator builder validates and lowers rather than executing: Build
// checks arity, index bounds and typed parameters exactly once, and
// GetPrimitive emits the opaque per-node blob a backend consumes.
package nnop

import (
	"encoding/json"

	"github.com/hyperifyio/nnrt/pkg/nnerr"
	"github.com/hyperifyio/nnrt/pkg/nntensor"
)

// TensorIndex indexes into the owning graph's tensor list.
type TensorIndex int

// QuantMode is the quantization-mode tag an operator builder records once
// built.
type QuantMode int

const (
	QuantNone QuantMode = iota
	QuantAll
)

// Primitive is the opaque, builder-produced IR blob a LiteGraph node
// carries. A nil *Primitive is the "not built yet"
// null handle the runtime requires GetPrimitive to return before Build
// succeeds.
type Primitive struct {
	// OpType names the operator this primitive was lowered from, purely
	// for diagnostics — the blob itself is opaque to everything but the
	// backend that consumes it.
	OpType string
	Blob   []byte
}

// OperatorBuilder is the polymorphic contract every concrete operator
// implements.
type OperatorBuilder interface {
	// Name returns the builder's instance name (used to generate the
	// LiteGraph node name "<name>:<index>").
	Name() string
	// Build validates params/inputs/outputs against the operator's
	// exact arity and each index's bounds, extracts typed parameter
	// values, and records the quantization mode. Idempotent-by-failure:
	// a second call returns OPERATION_FORBIDDEN.
	Build(params, inputs, outputs []TensorIndex, all []*nntensor.Tensor) error
	// GetPrimitive returns a null handle if Build has not succeeded yet,
	// else a freshly allocated primitive blob.
	GetPrimitive() *Primitive
	// Built reports whether Build has already succeeded.
	Built() bool
	// Inputs/Outputs expose the graph-relative indices recorded by Build,
	// used by the Model Graph to remap them into the LiteGraph's compact
	// index space.
	Inputs() []TensorIndex
	Outputs() []TensorIndex
}

// BaseBuilder holds the bookkeeping every concrete builder shares: name,
// recorded input/output indices, one-shot built flag, and quant mode.
// Concrete builders embed this and call base.Check*/base.Finish from their
// own Build method.
type BaseBuilder struct {
	name    string
	inputs  []TensorIndex
	outputs []TensorIndex
	quant   QuantMode
	built   bool
}

func NewBaseBuilder(name string) BaseBuilder {
	return BaseBuilder{name: name}
}

func (b *BaseBuilder) Name() string           { return b.name }
func (b *BaseBuilder) Built() bool            { return b.built }
func (b *BaseBuilder) Inputs() []TensorIndex  { return b.inputs }
func (b *BaseBuilder) Outputs() []TensorIndex { return b.outputs }
func (b *BaseBuilder) QuantMode() QuantMode   { return b.quant }

// CheckNotBuilt returns OPERATION_FORBIDDEN if Build has already succeeded.
func (b *BaseBuilder) CheckNotBuilt(component string) error {
	if b.built {
		return nnerr.New(component, "Build: already built", nnerr.OperationForbidden)
	}
	return nil
}

// ErrWrongArity builds the INVALID_PARAMETER error concrete builders
// return when an operator's arity is out of the set of shapes it accepts
// (e.g. Conv2D's optional bias input), before CheckArity's exact-match
// comparison even applies.
func ErrWrongArity(component string) error {
	return nnerr.New(component, "Build: wrong input arity", nnerr.InvalidParameter)
}

// CheckArity validates inputs/outputs against the operator's exact arity
// and every index against len(all).
func (b *BaseBuilder) CheckArity(component string, inputs, outputs []TensorIndex, wantIn, wantOut int, all []*nntensor.Tensor) error {
	if len(inputs) != wantIn {
		return nnerr.New(component, "Build: wrong input arity", nnerr.InvalidParameter)
	}
	if len(outputs) != wantOut {
		return nnerr.New(component, "Build: wrong output arity", nnerr.InvalidParameter)
	}
	for _, idx := range inputs {
		if idx < 0 || int(idx) >= len(all) {
			return nnerr.New(component, "Build: input index out of range", nnerr.InvalidParameter)
		}
	}
	for _, idx := range outputs {
		if idx < 0 || int(idx) >= len(all) {
			return nnerr.New(component, "Build: output index out of range", nnerr.InvalidParameter)
		}
	}
	return nil
}

// CheckParamCount validates params.len() <= allowed and every index is
// in-bounds.
func (b *BaseBuilder) CheckParamCount(component string, params []TensorIndex, allowed int, all []*nntensor.Tensor) error {
	if len(params) > allowed {
		return nnerr.New(component, "Build: too many parameter tensors", nnerr.InvalidParameter)
	}
	for _, idx := range params {
		if idx < 0 || int(idx) >= len(all) {
			return nnerr.New(component, "Build: parameter index out of range", nnerr.InvalidParameter)
		}
	}
	return nil
}

// RecordQuantFromOutput inspects the first output tensor's quantization and
// records the builder's quant mode.
func (b *BaseBuilder) RecordQuantFromOutput(outputs []TensorIndex, all []*nntensor.Tensor) {
	b.quant = QuantNone
	if len(outputs) == 0 {
		return
	}
	idx := outputs[0]
	if int(idx) < 0 || int(idx) >= len(all) {
		return
	}
	if t := all[idx]; t != nil && t.IsQuantized() {
		b.quant = QuantAll
	}
}

// Finish records the input/output indices and flips built=true last.
// Call only after every other validation step has succeeded.
func (b *BaseBuilder) Finish(inputs, outputs []TensorIndex) {
	b.inputs = append([]TensorIndex(nil), inputs...)
	b.outputs = append([]TensorIndex(nil), outputs...)
	b.built = true
}

// ValidateCommon runs the shared first four Build steps: not-already-built, exact arity, index bounds, and param count.
// Concrete builders call this before extracting their own typed
// parameters.
func (b *BaseBuilder) ValidateCommon(component string, params, inputs, outputs []TensorIndex, wantIn, wantOut, maxParams int, all []*nntensor.Tensor) error {
	if err := b.CheckNotBuilt(component); err != nil {
		return err
	}
	if err := b.CheckArity(component, inputs, outputs, wantIn, wantOut, all); err != nil {
		return err
	}
	if err := b.CheckParamCount(component, params, maxParams, all); err != nil {
		return err
	}
	return nil
}

// FinishBuild runs the shared last two Build steps:
// record quant mode from the first output, then flip built=true.
func (b *BaseBuilder) FinishBuild(inputs, outputs []TensorIndex, all []*nntensor.Tensor) {
	b.RecordQuantFromOutput(outputs, all)
	b.Finish(inputs, outputs)
}

// EmitPrimitive returns the null handle if Build hasn't succeeded, else a
// freshly allocated Primitive whose Blob is a JSON encoding of params. The
// wire format of the IR is explicitly out of scope; JSON here is
// just a concrete, inspectable in-memory representation of "opaque bytes".
func (b *BaseBuilder) EmitPrimitive(opType string, params map[string]interface{}) *Primitive {
	if !b.built {
		return nil
	}
	blob, err := json.Marshal(params)
	if err != nil {
		return nil
	}
	return &Primitive{OpType: opType, Blob: blob}
}
