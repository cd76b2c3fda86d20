package ops

import (
	"github.com/hyperifyio/nnrt/pkg/nnop"
	"github.com/hyperifyio/nnrt/pkg/nntensor"
)

// LSTM takes input, weight, bias and initial hidden/cell state tensors
// plus a wide parameter set describing the recurrent topology: 6 inputs,
// 3 outputs (output, hidden state, cell state), up to 10 params,
// dispatched by tag.
type LSTM struct {
	nnop.BaseBuilder
	bidirectional              bool
	hasBias                    bool
	inputSize, hiddenSize      int64
	numLayers, numDirections   int64
	dropout                    float64
	zoneoutCell, zoneoutHidden float64
	projSize                   int64
}

func NewLSTM(name string) nnop.OperatorBuilder {
	return &LSTM{BaseBuilder: nnop.NewBaseBuilder(name), numDirections: 1, numLayers: 1}
}

func (o *LSTM) Build(params, inputs, outputs []nnop.TensorIndex, all []*nntensor.Tensor) error {
	if err := o.ValidateCommon("LSTM", params, inputs, outputs, 6, 3, 10, all); err != nil {
		return err
	}
	if err := nnop.ApplyParams("LSTM", params, all, map[nnop.ParamTag]nnop.ParamSetter{
		nnop.ParamLSTMBidirectional: nnop.SetterBool("LSTM", &o.bidirectional),
		nnop.ParamLSTMHasBias:       nnop.SetterBool("LSTM", &o.hasBias),
		nnop.ParamLSTMInputSize:     nnop.SetterInt("LSTM", nntensor.DTypeInt32, &o.inputSize),
		nnop.ParamLSTMHiddenSize:    nnop.SetterInt("LSTM", nntensor.DTypeInt32, &o.hiddenSize),
		nnop.ParamLSTMNumLayers:     nnop.SetterInt("LSTM", nntensor.DTypeInt32, &o.numLayers),
		nnop.ParamLSTMNumDirections: nnop.SetterInt("LSTM", nntensor.DTypeInt32, &o.numDirections),
		nnop.ParamLSTMDropout:       nnop.SetterFloat("LSTM", nntensor.DTypeFloat32, &o.dropout),
		nnop.ParamLSTMZoneoutCell:   nnop.SetterFloat("LSTM", nntensor.DTypeFloat32, &o.zoneoutCell),
		nnop.ParamLSTMZoneoutHidden: nnop.SetterFloat("LSTM", nntensor.DTypeFloat32, &o.zoneoutHidden),
		nnop.ParamLSTMProjSize:      nnop.SetterInt("LSTM", nntensor.DTypeInt32, &o.projSize),
	}); err != nil {
		return err
	}
	o.FinishBuild(inputs, outputs, all)
	return nil
}

func (o *LSTM) GetPrimitive() *nnop.Primitive {
	return o.EmitPrimitive("LSTM", map[string]interface{}{
		"bidirectional": o.bidirectional,
		"hasBias":       o.hasBias,
		"inputSize":     o.inputSize,
		"hiddenSize":    o.hiddenSize,
		"numLayers":     o.numLayers,
		"numDirections": o.numDirections,
		"dropout":       o.dropout,
		"zoneoutCell":   o.zoneoutCell,
		"zoneoutHidden": o.zoneoutHidden,
		"projSize":      o.projSize,
	})
}

func init() { nnop.DefaultRegistry.Register(nnop.OpLSTM, NewLSTM) }
