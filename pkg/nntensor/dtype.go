package nntensor

import "github.com/hyperifyio/nnrt/pkg/nnerr"

// DType is the closed element data type enum.
type DType int

const (
	DTypeUnknown DType = iota
	DTypeBool
	DTypeInt8
	DTypeInt16
	DTypeInt32
	DTypeInt64
	DTypeUint8
	DTypeUint16
	DTypeUint32
	DTypeUint64
	DTypeFloat16
	DTypeFloat32
	DTypeFloat64
)

// dtypeSizes is the fixed size table referenced by the runtime
var dtypeSizes = map[DType]int{
	DTypeBool:    1,
	DTypeInt8:    1,
	DTypeInt16:   2,
	DTypeInt32:   4,
	DTypeInt64:   8,
	DTypeUint8:   1,
	DTypeUint16:  2,
	DTypeUint32:  4,
	DTypeUint64:  8,
	DTypeFloat16: 2,
	DTypeFloat32: 4,
	DTypeFloat64: 8,
}

// TypeSize returns the byte size of a single element of dtype, failing with
// INVALID_PARAMETER when dtype is outside the enum.
func TypeSize(dtype DType) (int, error) {
	size, ok := dtypeSizes[dtype]
	if !ok {
		return 0, nnerr.New("tensor", "TypeSize: dtype out of range", nnerr.InvalidParameter)
	}
	return size, nil
}

// Format is the closed memory-format enum.
type Format int

const (
	FormatNone Format = iota
	FormatNHWC
	FormatNCHW
)

func validFormat(f Format) bool {
	return f == FormatNone || f == FormatNHWC || f == FormatNCHW
}

func validDType(d DType) bool {
	_, ok := dtypeSizes[d]
	return ok
}
