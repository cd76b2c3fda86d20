package nnop

import "github.com/hyperifyio/nnrt/pkg/nnlog"

// OperatorType is the closed ~130-member operator enum. Only the
// members this module implements concrete builders for are listed; the
// enum is deliberately left open-ended (iota) so the registry can grow
// without renumbering existing entries.
type OperatorType int

const (
	OpUnknown OperatorType = iota
	OpAdd
	OpMul
	OpConv2D
	OpDepthwiseConv2DNative
	OpMatMul
	OpSoftmax
	OpReshape
	OpTranspose
	OpConcat
	OpSplit
	OpSlice
	OpStridedSlice
	OpGather
	OpGatherND
	OpOneHot
	OpPad
	OpResizeBilinear
	OpResizeNearestNeighbor
	OpBatchNorm
	OpLayerNorm
	OpInstanceNorm
	OpLRN
	OpLSTM
	OpReduceMax
	OpReduceMin
	OpReduceMean
	OpReduceSum
	OpReduceProd
	OpReduceAll
	OpAll
	OpAny
	OpClip
	OpCeil
	OpFloor
	OpRound
	OpSigmoid
	OpRelu
	OpRelu6
	OpGelu
	OpHSwish
	OpHardSigmoid
	OpPRelu
	OpLeakyRelu
	OpFill
	OpMaximum
	OpSquaredDifference
	OpDetectionPostProcess
	OpSparseToDense
	OpQuantDtypeCast
	OpCast
)

// Factory constructs a fresh, unbuilt OperatorBuilder instance.
type Factory func(name string) OperatorBuilder

// Registry maps OperatorType to a builder factory. Keyed by the closed
// enum rather than a string name so a typo'd operator name can never
// silently resolve to "unknown".
type Registry struct {
	factories map[OperatorType]Factory
}

// DefaultRegistry is the process-wide registry populated by each concrete
// builder's init().
var DefaultRegistry = NewRegistry()

func NewRegistry() *Registry {
	return &Registry{factories: make(map[OperatorType]Factory)}
}

// Register adds a factory for opType. Duplicate registration of the same
// type is ignored with a warning; the first registration wins.
func (r *Registry) Register(opType OperatorType, factory Factory) {
	if _, exists := r.factories[opType]; exists {
		nnlog.Warnf(nnlog.Op, "duplicate registration for operator type %d ignored", opType)
		return
	}
	r.factories[opType] = factory
}

// GetOpsBuilder returns a fresh builder instance for opType, or nil if
// unknown.
func (r *Registry) GetOpsBuilder(opType OperatorType, name string) OperatorBuilder {
	factory, ok := r.factories[opType]
	if !ok {
		return nil
	}
	return factory(name)
}

// Registered reports whether opType has a registered factory.
func (r *Registry) Registered(opType OperatorType) bool {
	_, ok := r.factories[opType]
	return ok
}
