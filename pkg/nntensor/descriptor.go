// Package nntensor implements the tensor descriptor and tensor value
// types: shape/dtype bookkeeping, element-count and byte-size derivation,
// and the buffer-plus-quantization value object built on top of a
// descriptor. The pure-value descriptor (this file) is kept separate from
// the buffer-carrying Tensor (tensor.go) so graph metadata can be passed
// around without dragging data ownership with it.
package nntensor

import "github.com/hyperifyio/nnrt/pkg/nnerr"

// TensorDescriptor is a value object carrying dtype, format, shape and an
// optional name.
type TensorDescriptor struct {
	dtype  DType
	format Format
	shape  []int64
	name   string
}

// NewTensorDescriptor returns a zero-value descriptor (dtype/format unknown,
// no shape set yet); callers must call SetDType/SetShape before use.
func NewTensorDescriptor() *TensorDescriptor {
	return &TensorDescriptor{dtype: DTypeUnknown, format: FormatNone}
}

func (d *TensorDescriptor) DType() DType  { return d.dtype }
func (d *TensorDescriptor) Format() Format { return d.format }
func (d *TensorDescriptor) Name() string   { return d.name }

// Shape returns a copy of the dimension list; callers must not rely on
// mutating the returned slice to affect the descriptor.
func (d *TensorDescriptor) Shape() []int64 {
	out := make([]int64, len(d.shape))
	copy(out, d.shape)
	return out
}

// SetDType validates dtype against the closed enum before mutating.
func (d *TensorDescriptor) SetDType(dtype DType) error {
	if !validDType(dtype) {
		return nnerr.New("tensor", "SetDType: dtype out of range", nnerr.InvalidParameter)
	}
	d.dtype = dtype
	return nil
}

// SetFormat validates format against the closed enum before mutating.
func (d *TensorDescriptor) SetFormat(format Format) error {
	if !validFormat(format) {
		return nnerr.New("tensor", "SetFormat: format out of range", nnerr.InvalidParameter)
	}
	d.format = format
	return nil
}

// SetShape replaces the dimension list. The list must be non-empty after
// this call; a dimension <= 0 denotes an unknown
// (dynamic) dimension and is accepted here — dynamism is resolved lazily by
// ElementCount/ByteSize, not rejected at SetShape time.
func (d *TensorDescriptor) SetShape(shape []int64) error {
	if len(shape) == 0 {
		return nnerr.New("tensor", "SetShape: shape must be non-empty", nnerr.InvalidParameter)
	}
	cp := make([]int64, len(shape))
	copy(cp, shape)
	d.shape = cp
	return nil
}

// SetName validates the name is a UTF-8 string (always true for a Go
// string) and stores it.
func (d *TensorDescriptor) SetName(name string) error {
	d.name = name
	return nil
}

// ElementCount returns the product of dimensions, and dynamic=true if any
// dimension is <= 0 — distinct from a legitimate zero element count. A
// dynamic shape is a non-error signal, not a validation failure.
func (d *TensorDescriptor) ElementCount() (count int64, dynamic bool) {
	if len(d.shape) == 0 {
		return 0, true
	}
	product := int64(1)
	for _, dim := range d.shape {
		if dim <= 0 {
			return 0, true
		}
		product *= dim
	}
	return product, false
}

// ByteSize returns element_count * type_size(dtype), or 0 for a dynamic
// shape, or INVALID_PARAMETER if dtype is outside the enum.
func (d *TensorDescriptor) ByteSize() (int64, error) {
	count, dynamic := d.ElementCount()
	if dynamic {
		return 0, nil
	}
	size, err := TypeSize(d.dtype)
	if err != nil {
		return 0, err
	}
	return count * int64(size), nil
}
