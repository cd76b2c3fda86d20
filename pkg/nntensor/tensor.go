package nntensor

import "github.com/hyperifyio/nnrt/pkg/nnerr"

// Role tags a Tensor's use within a graph.
type Role int

const (
	RoleTensor Role = iota
	RoleOpParameter
)

// QuantizationParam is a single per-channel quantization entry.
type QuantizationParam struct {
	NumBits   uint32
	Scale     float64
	ZeroPoint int32
}

// Tensor is a TensorDescriptor plus a buffer, role tag, and optional
// quantization. Buffer assignment via SetBuffer is one-shot at
// graph-build time; once a buffer is set it cannot be replaced except
// through the execution-time BindBuffer path.
type Tensor struct {
	desc       *TensorDescriptor
	role       Role
	paramTag   int
	buffer     []byte
	bufferSet  bool
	quant      []QuantizationParam
	compiled   bool // true once used in a successful compilation; blocks further quant mutation
}

// NewTensor creates a Tensor wrapping desc with the given role.
func NewTensor(desc *TensorDescriptor, role Role) *Tensor {
	return &Tensor{desc: desc, role: role}
}

func (t *Tensor) Descriptor() *TensorDescriptor { return t.desc }
func (t *Tensor) Role() Role                     { return t.role }
func (t *Tensor) HasBuffer() bool                { return t.bufferSet }
func (t *Tensor) Buffer() []byte                  { return t.buffer }

// ParamTag returns the semantic parameter tag an OP_PARAMETER tensor
// carries, zero if none was set. Operator builders dispatch on it to
// decide which parameter a given tensor supplies; the tag values
// themselves are defined next to the builders.
func (t *Tensor) ParamTag() int { return t.paramTag }

// SetParamTag records which operator parameter this tensor supplies.
// Meaningful only for OP_PARAMETER tensors; builders reject tensors whose
// tag they have no setter for.
func (t *Tensor) SetParamTag(tag int) { t.paramTag = tag }

// IsQuantized reports whether the tensor carries a non-empty quantization
// list.
func (t *Tensor) IsQuantized() bool { return len(t.quant) > 0 }

func (t *Tensor) QuantParams() []QuantizationParam {
	out := make([]QuantizationParam, len(t.quant))
	copy(out, t.quant)
	return out
}

// SetBuffer assigns the tensor's backing buffer. One-shot: rejected if a
// buffer is already set, if len(data) doesn't match the descriptor's static
// byte size, or if the descriptor has a dynamic shape.
func (t *Tensor) SetBuffer(data []byte) error {
	if t.bufferSet {
		return nnerr.New("tensor", "SetBuffer: buffer already set", nnerr.OperationForbidden)
	}
	_, dynamic := t.desc.ElementCount()
	if dynamic {
		return nnerr.New("tensor", "SetBuffer: forbidden on dynamic-shape tensor", nnerr.InvalidParameter)
	}
	size, err := t.desc.ByteSize()
	if err != nil {
		return err
	}
	if int64(len(data)) != size {
		return nnerr.New("tensor", "SetBuffer: length does not match descriptor byte size", nnerr.InvalidParameter)
	}
	t.buffer = data
	t.bufferSet = true
	return nil
}

// BindBuffer is the execution-time counterpart of SetBuffer: it attaches
// a caller-allocated buffer to a tensor whose final shape may still be
// dynamic, so an output can be bound before the backend reports concrete
// dimensions. Capacity is not checked here — SetDimensions re-validates
// it once the real shape is known.
func (t *Tensor) BindBuffer(data []byte) error {
	if data == nil {
		return nnerr.New("tensor", "BindBuffer: nil buffer", nnerr.NullPtr)
	}
	t.buffer = data
	t.bufferSet = true
	return nil
}

// SetQuantParams assigns per-channel quantization, rejected once the tensor
// has been used in a successful compilation.
func (t *Tensor) SetQuantParams(params []QuantizationParam) error {
	if t.compiled {
		return nnerr.New("tensor", "SetQuantParams: forbidden after compilation", nnerr.OperationForbidden)
	}
	cp := make([]QuantizationParam, len(params))
	copy(cp, params)
	t.quant = cp
	return nil
}

// MarkCompiled freezes quantization mutation; called by the compiler
// driver once a LiteGraph holding this tensor has been successfully compiled.
func (t *Tensor) MarkCompiled() { t.compiled = true }

// SetDimensions re-sets the descriptor's shape (used by the execution
// driver to rebind a dynamic output, the runtime step 4) and re-validates
// buffer capacity for the new shape when a buffer is already present.
func (t *Tensor) SetDimensions(shape []int64) error {
	if err := t.desc.SetShape(shape); err != nil {
		return err
	}
	if !t.bufferSet {
		return nil
	}
	size, err := t.desc.ByteSize()
	if err != nil {
		return err
	}
	if int64(len(t.buffer)) < size {
		return nnerr.New("tensor", "SetDimensions: buffer insufficient for new shape", nnerr.MemoryError)
	}
	return nil
}

// IOTensor is the lightweight value passed across the backend boundary at
// execution time.
type IOTensor struct {
	Name       string
	DType      DType
	Format     Format
	Dimensions []int64
	Data       []byte
}

// ConvertToIOTensor shallow-copies name, dtype, format, dims, and the buffer
// slice header without transferring ownership.
func (t *Tensor) ConvertToIOTensor() IOTensor {
	return IOTensor{
		Name:       t.desc.Name(),
		DType:      t.desc.DType(),
		Format:     t.desc.Format(),
		Dimensions: t.desc.Shape(),
		Data:       t.buffer,
	}
}
