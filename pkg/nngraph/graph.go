// Package nngraph implements the Model Graph: the mutable builder a
// caller uses to describe tensors and operations, and the lowering step
// that produces a backend-neutral LiteGraph from it.
//
// A graph moves through a one-way lifecycle (empty -> defining ->
// built-from-ops / built-from-external); once built, every mutating
// operation is rejected. Operations are lowered in insertion order —
// callers rely on positional binding all the way to the node list.
package nngraph

import (
	"fmt"

	"github.com/hyperifyio/nnrt/pkg/nnerr"
	"github.com/hyperifyio/nnrt/pkg/nnop"
	"github.com/hyperifyio/nnrt/pkg/nntensor"
)

type graphState int

const (
	stateEmpty graphState = iota
	stateDefining
	stateBuiltFromOps
	stateBuiltFromExternal
)

// opRecord is one AddOperation call: the builder plus the param/input/
// output indices it was built with, kept so Build can remap them later.
type opRecord struct {
	builder nnop.OperatorBuilder
	params  []nnop.TensorIndex
	inputs  []nnop.TensorIndex
	outputs []nnop.TensorIndex
}

// ModelGraph owns every tensor and operator builder for one model under
// construction, and lowers them into a LiteGraph on Build.
type ModelGraph struct {
	name    string
	state   graphState
	tensors []*nntensor.Tensor
	ops     []opRecord

	ioSpecified   bool
	inputIndices  []nnop.TensorIndex
	outputIndices []nnop.TensorIndex

	quantBuffer []byte
	profiling   bool
	opLayout    map[int]string

	lite *LiteGraph
}

// NewModelGraph creates an empty, unbuilt graph named name.
func NewModelGraph(name string) *ModelGraph {
	return &ModelGraph{name: name, opLayout: make(map[int]string)}
}

func (g *ModelGraph) Name() string { return g.name }

// SetProfilingEnabled records the graph's profiling flag, read back via
// ProfilingEnabled; nncompiler.Compile does not consult it (it takes
// profiling from its own Config). Forbidden once built.
func (g *ModelGraph) SetProfilingEnabled(enabled bool) error {
	if g.isBuilt() {
		return g.forbidden("SetProfilingEnabled")
	}
	g.profiling = enabled
	return nil
}

func (g *ModelGraph) ProfilingEnabled() bool { return g.profiling }

// SetOpLayout records a per-operation layout preference (e.g. "NHWC") by
// operation index, read back via OpLayout. The preference is kept on the
// graph only; Build does not carry it into the LiteGraph nodes.
func (g *ModelGraph) SetOpLayout(opIndex int, layout string) error {
	if g.isBuilt() {
		return g.forbidden("SetOpLayout")
	}
	if opIndex < 0 || opIndex >= len(g.ops) {
		return nnerr.New("ModelGraph", "SetOpLayout: operation index out of range", nnerr.InvalidParameter)
	}
	g.opLayout[opIndex] = layout
	return nil
}

func (g *ModelGraph) OpLayout(opIndex int) (string, bool) {
	l, ok := g.opLayout[opIndex]
	return l, ok
}

func (g *ModelGraph) isBuilt() bool {
	return g.state == stateBuiltFromOps || g.state == stateBuiltFromExternal
}

func (g *ModelGraph) forbidden(op string) error {
	return nnerr.New("ModelGraph", op+": graph already built", nnerr.OperationForbidden)
}

func (g *ModelGraph) enterDefining() {
	if g.state == stateEmpty {
		g.state = stateDefining
	}
}

// AddTensor appends a fully constructed tensor and returns its index.
func (g *ModelGraph) AddTensor(t *nntensor.Tensor) (nnop.TensorIndex, error) {
	if g.isBuilt() {
		return 0, g.forbidden("AddTensor")
	}
	g.enterDefining()
	g.tensors = append(g.tensors, t)
	return nnop.TensorIndex(len(g.tensors) - 1), nil
}

// AddTensorDesc builds a fresh Tensor from a descriptor and role, then
// appends it — a convenience wrapper around AddTensor for callers that
// don't need to pre-populate a buffer.
func (g *ModelGraph) AddTensorDesc(desc *nntensor.TensorDescriptor, role nntensor.Role) (nnop.TensorIndex, error) {
	return g.AddTensor(nntensor.NewTensor(desc, role))
}

// SetTensorValue assigns idx's buffer, one-shot per Tensor.SetBuffer.
func (g *ModelGraph) SetTensorValue(idx nnop.TensorIndex, data []byte) error {
	if g.isBuilt() {
		return g.forbidden("SetTensorValue")
	}
	t, err := g.tensorAt(idx, "SetTensorValue")
	if err != nil {
		return err
	}
	return t.SetBuffer(data)
}

// SetTensorQuantParam assigns idx's quantization parameters.
func (g *ModelGraph) SetTensorQuantParam(idx nnop.TensorIndex, params []nntensor.QuantizationParam) error {
	if g.isBuilt() {
		return g.forbidden("SetTensorQuantParam")
	}
	t, err := g.tensorAt(idx, "SetTensorQuantParam")
	if err != nil {
		return err
	}
	return t.SetQuantParams(params)
}

// SetTensorType assigns idx's element dtype.
func (g *ModelGraph) SetTensorType(idx nnop.TensorIndex, dtype nntensor.DType) error {
	if g.isBuilt() {
		return g.forbidden("SetTensorType")
	}
	t, err := g.tensorAt(idx, "SetTensorType")
	if err != nil {
		return err
	}
	return t.Descriptor().SetDType(dtype)
}

// SetTensorParamTag assigns idx's semantic parameter tag; operator
// builders dispatch OP_PARAMETER tensors by this tag, not by position.
func (g *ModelGraph) SetTensorParamTag(idx nnop.TensorIndex, tag nnop.ParamTag) error {
	if g.isBuilt() {
		return g.forbidden("SetTensorParamTag")
	}
	t, err := g.tensorAt(idx, "SetTensorParamTag")
	if err != nil {
		return err
	}
	t.SetParamTag(int(tag))
	return nil
}

func (g *ModelGraph) tensorAt(idx nnop.TensorIndex, component string) (*nntensor.Tensor, error) {
	if idx < 0 || int(idx) >= len(g.tensors) {
		return nil, nnerr.New(component, "tensor index out of range", nnerr.InvalidParameter)
	}
	return g.tensors[idx], nil
}

// AddOperation builds builder against the graph's current tensor list and
// records it in insertion order. Returns the operation's index.
func (g *ModelGraph) AddOperation(builder nnop.OperatorBuilder, params, inputs, outputs []nnop.TensorIndex) (int, error) {
	if g.isBuilt() {
		return 0, g.forbidden("AddOperation")
	}
	g.enterDefining()
	if err := builder.Build(params, inputs, outputs, g.tensors); err != nil {
		return 0, err
	}
	g.ops = append(g.ops, opRecord{builder: builder, params: params, inputs: inputs, outputs: outputs})
	return len(g.ops) - 1, nil
}

// SpecifyInputsAndOutputs records the graph-level input/output tensor
// indices. Callable exactly once; every referenced index must name a
// TENSOR-role tensor currently in the graph.
func (g *ModelGraph) SpecifyInputsAndOutputs(inputs, outputs []nnop.TensorIndex) error {
	if g.isBuilt() {
		return g.forbidden("SpecifyInputsAndOutputs")
	}
	if g.ioSpecified {
		return nnerr.New("ModelGraph", "SpecifyInputsAndOutputs: already specified", nnerr.OperationForbidden)
	}
	for _, idx := range inputs {
		if err := g.checkIOIndex(idx); err != nil {
			return err
		}
	}
	for _, idx := range outputs {
		if err := g.checkIOIndex(idx); err != nil {
			return err
		}
	}
	for _, in := range inputs {
		for _, out := range outputs {
			if in == out {
				return nnerr.New("ModelGraph", "SpecifyInputsAndOutputs: index in both inputs and outputs", nnerr.InvalidParameter)
			}
		}
	}
	g.enterDefining()
	g.inputIndices = append([]nnop.TensorIndex(nil), inputs...)
	g.outputIndices = append([]nnop.TensorIndex(nil), outputs...)
	g.ioSpecified = true
	return nil
}

func (g *ModelGraph) checkIOIndex(idx nnop.TensorIndex) error {
	t, err := g.tensorAt(idx, "SpecifyInputsAndOutputs")
	if err != nil {
		return err
	}
	if t.Role() != nntensor.RoleTensor {
		return nnerr.New("ModelGraph", "SpecifyInputsAndOutputs: index does not name a TENSOR-role tensor", nnerr.InvalidParameter)
	}
	return nil
}

// Build lowers the graph into a LiteGraph: non-parameter tensors are
// remapped into a compact index space, each operation becomes a node
// named "<builder name>:<index>" in insertion order, and a single
// subgraph records the node order plus the remapped graph I/O indices.
func (g *ModelGraph) Build() (*LiteGraph, error) {
	if g.isBuilt() {
		return nil, g.forbidden("Build")
	}
	if len(g.tensors) == 0 {
		return nil, nnerr.New("ModelGraph", "Build: no tensors", nnerr.InvalidParameter)
	}
	if len(g.ops) == 0 {
		return nil, nnerr.New("ModelGraph", "Build: no operations", nnerr.InvalidParameter)
	}
	if !g.ioSpecified || (len(g.inputIndices) == 0 && len(g.outputIndices) == 0) {
		return nil, nnerr.New("ModelGraph", "Build: no inputs/outputs specified", nnerr.InvalidParameter)
	}

	remap := make(map[nnop.TensorIndex]int, len(g.tensors))
	lite := &LiteGraph{}
	for i, t := range g.tensors {
		if t.Role() == nntensor.RoleOpParameter {
			continue
		}
		remap[nnop.TensorIndex(i)] = len(lite.Tensors)
		lite.Tensors = append(lite.Tensors, t)
	}

	nodeOrder := make([]int, 0, len(g.ops))
	for i, rec := range g.ops {
		node := LiteNode{
			Name:      fmt.Sprintf("%s:%d", rec.builder.Name(), i),
			Quant:     quantModeOf(rec.builder),
			Primitive: rec.builder.GetPrimitive(),
		}
		for _, idx := range rec.builder.Inputs() {
			node.Inputs = append(node.Inputs, remap[idx])
		}
		for _, idx := range rec.builder.Outputs() {
			node.Outputs = append(node.Outputs, remap[idx])
		}
		lite.Nodes = append(lite.Nodes, node)
		nodeOrder = append(nodeOrder, i)
	}

	sub := Subgraph{NodeOrder: nodeOrder}
	for _, idx := range g.inputIndices {
		sub.InputIndices = append(sub.InputIndices, remap[idx])
	}
	for _, idx := range g.outputIndices {
		sub.OutputIndices = append(sub.OutputIndices, remap[idx])
	}
	lite.Subgraph = sub

	g.lite = lite
	g.state = stateBuiltFromOps
	return lite, nil
}

// BuildFromLiteGraph adopts an externally-supplied LiteGraph as-is,
// bypassing AddOperation/Build entirely.
func (g *ModelGraph) BuildFromLiteGraph(lite *LiteGraph) error {
	if g.isBuilt() {
		return g.forbidden("BuildFromLiteGraph")
	}
	g.lite = lite
	g.state = stateBuiltFromExternal
	return nil
}

// BuildFromMetaGraph adopts externally-supplied IR in metaBytes via
// convert, which knows how to decode that particular meta-graph format
// into a LiteGraph.
func (g *ModelGraph) BuildFromMetaGraph(metaBytes []byte, convert func([]byte) (*LiteGraph, error)) error {
	if g.isBuilt() {
		return g.forbidden("BuildFromMetaGraph")
	}
	lite, err := convert(metaBytes)
	if err != nil {
		return err
	}
	g.lite = lite
	g.state = stateBuiltFromExternal
	return nil
}

// LiteGraph returns the graph's lowered form, or nil if not yet built.
func (g *ModelGraph) LiteGraph() *LiteGraph { return g.lite }

// SupportedOpsBackend is the minimal capability GetSupportedOperations
// needs from a backend — callers resolve the concrete backend (e.g. via
// a backend registry keyed by device ID) and pass it in here, keeping
// this package free of any dependency on how backends are looked up.
type SupportedOpsBackend interface {
	GetSupportedOperation(lite *LiteGraph) ([]bool, error)
}

// GetSupportedOperations asks backend which of the built graph's nodes it
// supports. Requires a built graph.
func (g *ModelGraph) GetSupportedOperations(backend SupportedOpsBackend) ([]bool, error) {
	if !g.isBuilt() || g.lite == nil {
		return nil, nnerr.New("ModelGraph", "GetSupportedOperations: graph not built", nnerr.OperationForbidden)
	}
	return backend.GetSupportedOperation(g.lite)
}

func quantModeOf(b nnop.OperatorBuilder) nnop.QuantMode {
	type quantModer interface{ QuantMode() nnop.QuantMode }
	if qm, ok := b.(quantModer); ok {
		return qm.QuantMode()
	}
	return nnop.QuantNone
}
