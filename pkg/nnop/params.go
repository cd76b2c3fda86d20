package nnop

import (
	"encoding/binary"
	"math"

	"github.com/hyperifyio/nnrt/pkg/nnerr"
	"github.com/hyperifyio/nnrt/pkg/nntensor"
)

// ParamTag enumerates the closed, stable set of per-operator parameter
// semantic tags. An OP_PARAMETER tensor carries one of these
// (Tensor.SetParamTag), and each builder dispatches the tensors it is
// handed through its own ParamTag-keyed setter table — parameter order
// is irrelevant, only the tag decides what a tensor supplies.
type ParamTag int

const (
	ParamUnknown ParamTag = iota
	ParamAllKeepDims
	ParamClipMax
	ParamClipMin
	ParamBatchNormEpsilon
	ParamLayerNormBeginNormAxis
	ParamLayerNormEpsilon
	ParamLayerNormBeginParamAxis
	ParamLRNDepthRadius
	ParamLRNAlpha
	ParamLRNBeta
	ParamLRNBias
	ParamLRNNormRegion
	ParamOneHotAxis
	ParamPadConstantValue
	ParamReduceCoeff
	ParamReduceToEnd
	ParamReduceKeepDims
	ParamResizeNewHeight
	ParamResizeNewWidth
	ParamResizePreserveAspectRatio
	ParamResizeCoordinateTransformMode
	ParamResizeExcludeOutside
	ParamLSTMBidirectional
	ParamLSTMHasBias
	ParamLSTMInputSize
	ParamLSTMHiddenSize
	ParamLSTMNumLayers
	ParamLSTMNumDirections
	ParamLSTMDropout
	ParamLSTMZoneoutCell
	ParamLSTMZoneoutHidden
	ParamLSTMProjSize
	ParamDetectionInputSize
	ParamDetectionScale
	ParamDetectionNMSIoUThreshold
	ParamDetectionNMSScoreThreshold
	ParamDetectionMaxDetections
	ParamDetectionsPerClass
	ParamDetectionMaxClassesPerDetection
	ParamDetectionNumClasses
	ParamDetectionUseRegularNMS
	ParamDetectionOutQuantized
	ParamCastDstT
	ParamQuantDtypeCastSrcT
	ParamQuantDtypeCastDstT
	ParamQuantDtypeCastAxis
	ParamAnyKeepDims
	ParamInstanceNormEpsilon
	ParamSoftmaxAxis
	ParamLeakyReluAlpha
	ParamConcatAxis
	ParamSplitAxis
	ParamSplitSizeSplits
	ParamMatMulTransposeA
	ParamMatMulTransposeB
	ParamConv2DStrides
	ParamConv2DPads
	ParamConv2DDilations
	ParamConv2DGroup
	ParamDepthwiseConv2DStrides
	ParamDepthwiseConv2DPads
	ParamDepthwiseConv2DDilations
)

// ParamSetter applies one OP_PARAMETER tensor to a builder's state.
type ParamSetter func(t *nntensor.Tensor) error

// ApplyParams dispatches each parameter tensor through table by its
// semantic tag. A tensor whose role is not OP_PARAMETER, or whose tag the
// builder has no setter for, is INVALID_PARAMETER. Indices must already
// be bounds-checked (CheckParamCount).
func ApplyParams(component string, params []TensorIndex, all []*nntensor.Tensor, table map[ParamTag]ParamSetter) error {
	for _, idx := range params {
		t := all[idx]
		if t == nil || t.Role() != nntensor.RoleOpParameter {
			return nnerr.New(component, "Build: parameter index does not name an OP_PARAMETER tensor", nnerr.InvalidParameter)
		}
		setter, ok := table[ParamTag(t.ParamTag())]
		if !ok {
			return nnerr.New(component, "Build: unexpected parameter tag", nnerr.InvalidParameter)
		}
		if err := setter(t); err != nil {
			return err
		}
	}
	return nil
}

// SetterInt builds a ParamSetter storing a dtype-checked integer scalar
// into dst. The stored value is untouched when extraction fails.
func SetterInt(component string, dtype nntensor.DType, dst *int64) ParamSetter {
	return func(t *nntensor.Tensor) error {
		v, err := scalarInt(component, t, dtype)
		if err != nil {
			return err
		}
		*dst = v
		return nil
	}
}

// SetterFloat builds a ParamSetter storing a dtype-checked float scalar
// into dst.
func SetterFloat(component string, dtype nntensor.DType, dst *float64) ParamSetter {
	return func(t *nntensor.Tensor) error {
		v, err := scalarFloat(component, t, dtype)
		if err != nil {
			return err
		}
		*dst = v
		return nil
	}
}

// SetterBool builds a ParamSetter storing a one-byte bool scalar into dst.
func SetterBool(component string, dst *bool) ParamSetter {
	return func(t *nntensor.Tensor) error {
		v, err := scalarBool(component, t)
		if err != nil {
			return err
		}
		*dst = v
		return nil
	}
}

// SetterIntVector builds a ParamSetter storing an integer vector into
// dst; length <= 0 accepts any element count.
func SetterIntVector(component string, dtype nntensor.DType, length int, dst *[]int64) ParamSetter {
	return func(t *nntensor.Tensor) error {
		v, err := vectorInt(component, t, dtype, length)
		if err != nil {
			return err
		}
		*dst = v
		return nil
	}
}

// SetterFloatVector builds a ParamSetter storing a float vector into dst.
func SetterFloatVector(component string, dtype nntensor.DType, length int, dst *[]float64) ParamSetter {
	return func(t *nntensor.Tensor) error {
		v, err := vectorFloat(component, t, dtype, length)
		if err != nil {
			return err
		}
		*dst = v
		return nil
	}
}

// extractRaw validates dtype/buffer presence/element-count and returns the
// raw little-endian byte slice for a scalar (wantCount==1) or vector
// (wantCount<=0 means "any length") OP_PARAMETER tensor.
func extractRaw(component string, t *nntensor.Tensor, dtype nntensor.DType, wantCount int) ([]byte, int, error) {
	if t == nil {
		return nil, 0, nnerr.New(component, "param: nil tensor", nnerr.InvalidParameter)
	}
	if t.Descriptor().DType() != dtype {
		return nil, 0, nnerr.New(component, "param: wrong dtype", nnerr.InvalidParameter)
	}
	if !t.HasBuffer() {
		return nil, 0, nnerr.New(component, "param: missing buffer", nnerr.InvalidParameter)
	}
	count, dynamic := t.Descriptor().ElementCount()
	if dynamic {
		return nil, 0, nnerr.New(component, "param: dynamic shape not allowed", nnerr.InvalidParameter)
	}
	if wantCount > 0 && int(count) != wantCount {
		return nil, 0, nnerr.New(component, "param: wrong element count", nnerr.InvalidParameter)
	}
	return t.Buffer(), int(count), nil
}

// scalarInt extracts a single signed integer of the given dtype (any
// int*/uint* width) from an OP_PARAMETER tensor.
func scalarInt(component string, t *nntensor.Tensor, dtype nntensor.DType) (int64, error) {
	buf, _, err := extractRaw(component, t, dtype, 1)
	if err != nil {
		return 0, err
	}
	return decodeInt(dtype, buf)
}

// scalarFloat extracts a single float (float32 or float64) from an
// OP_PARAMETER tensor.
func scalarFloat(component string, t *nntensor.Tensor, dtype nntensor.DType) (float64, error) {
	buf, _, err := extractRaw(component, t, dtype, 1)
	if err != nil {
		return 0, err
	}
	return decodeFloat(dtype, buf)
}

// scalarBool extracts a single bool (stored as one byte) from an
// OP_PARAMETER tensor.
func scalarBool(component string, t *nntensor.Tensor) (bool, error) {
	buf, _, err := extractRaw(component, t, nntensor.DTypeBool, 1)
	if err != nil {
		return false, err
	}
	return buf[0] != 0, nil
}

// vectorInt extracts a fixed- or variable-length integer vector. length<=0
// accepts any non-dynamic element count.
func vectorInt(component string, t *nntensor.Tensor, dtype nntensor.DType, length int) ([]int64, error) {
	buf, count, err := extractRaw(component, t, dtype, length)
	if err != nil {
		return nil, err
	}
	size, _ := nntensor.TypeSize(dtype)
	out := make([]int64, count)
	for i := 0; i < count; i++ {
		v, err := decodeInt(dtype, buf[i*size:(i+1)*size])
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// vectorFloat extracts a fixed- or variable-length float vector.
func vectorFloat(component string, t *nntensor.Tensor, dtype nntensor.DType, length int) ([]float64, error) {
	buf, count, err := extractRaw(component, t, dtype, length)
	if err != nil {
		return nil, err
	}
	size, _ := nntensor.TypeSize(dtype)
	out := make([]float64, count)
	for i := 0; i < count; i++ {
		v, err := decodeFloat(dtype, buf[i*size:(i+1)*size])
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func decodeInt(dtype nntensor.DType, buf []byte) (int64, error) {
	switch dtype {
	case nntensor.DTypeInt8:
		return int64(int8(buf[0])), nil
	case nntensor.DTypeUint8:
		return int64(buf[0]), nil
	case nntensor.DTypeInt16:
		return int64(int16(binary.LittleEndian.Uint16(buf))), nil
	case nntensor.DTypeUint16:
		return int64(binary.LittleEndian.Uint16(buf)), nil
	case nntensor.DTypeInt32:
		return int64(int32(binary.LittleEndian.Uint32(buf))), nil
	case nntensor.DTypeUint32:
		return int64(binary.LittleEndian.Uint32(buf)), nil
	case nntensor.DTypeInt64:
		return int64(binary.LittleEndian.Uint64(buf)), nil
	case nntensor.DTypeUint64:
		return int64(binary.LittleEndian.Uint64(buf)), nil
	default:
		return 0, nnerr.New("param", "decodeInt: not an integer dtype", nnerr.InvalidParameter)
	}
}

func decodeFloat(dtype nntensor.DType, buf []byte) (float64, error) {
	switch dtype {
	case nntensor.DTypeFloat32:
		return float64(math.Float32frombits(binary.LittleEndian.Uint32(buf))), nil
	case nntensor.DTypeFloat64:
		return math.Float64frombits(binary.LittleEndian.Uint64(buf)), nil
	default:
		return 0, nnerr.New("param", "decodeFloat: not a float dtype", nnerr.InvalidParameter)
	}
}
