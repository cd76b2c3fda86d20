package nngraph

import (
	"github.com/hyperifyio/nnrt/pkg/nnop"
	"github.com/hyperifyio/nnrt/pkg/nntensor"
)

// LiteGraph is the backend-neutral lowered form a ModelGraph's Build
// produces: a compact, parameter-free tensor list, an ordered node list,
// and a single subgraph describing the overall I/O and node order.
type LiteGraph struct {
	Tensors  []*nntensor.Tensor
	Nodes    []LiteNode
	Subgraph Subgraph
}

// LiteNode is one lowered operation: a generated name, its quantization
// tag, remapped input/output indices into LiteGraph.Tensors, and the
// opaque primitive blob its builder produced.
type LiteNode struct {
	Name      string
	Quant     nnop.QuantMode
	Inputs    []int
	Outputs   []int
	Primitive *nnop.Primitive
}

// Subgraph records the node execution order (always 0..len(Nodes)-1 for
// a graph lowered by Build, but kept explicit since an externally
// supplied LiteGraph may order nodes differently) plus the graph-level
// input/output indices into LiteGraph.Tensors.
type Subgraph struct {
	NodeOrder     []int
	InputIndices  []int
	OutputIndices []int
}
