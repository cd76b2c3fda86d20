package ops

import (
	"github.com/hyperifyio/nnrt/pkg/nnop"
	"github.com/hyperifyio/nnrt/pkg/nntensor"
)

// DetectionPostProcess takes box-encoding, class-prediction and anchor
// tensors plus a wide parameter set controlling NMS and output decoding:
// 3 inputs, 4 outputs (boxes, classes, scores, detection count), up to 10
// params, dispatched by tag.
type DetectionPostProcess struct {
	nnop.BaseBuilder
	inputSize           int64
	scale               []float64
	nmsIoUThreshold     float64
	nmsScoreThreshold   float64
	maxDetections       int64
	detectionsPerClass  int64
	maxClassesPerDetect int64
	numClasses          int64
	useRegularNMS       bool
	outQuantized        bool
}

func NewDetectionPostProcess(name string) nnop.OperatorBuilder {
	return &DetectionPostProcess{BaseBuilder: nnop.NewBaseBuilder(name)}
}

func (o *DetectionPostProcess) Build(params, inputs, outputs []nnop.TensorIndex, all []*nntensor.Tensor) error {
	if err := o.ValidateCommon("DetectionPostProcess", params, inputs, outputs, 3, 4, 10, all); err != nil {
		return err
	}
	if err := nnop.ApplyParams("DetectionPostProcess", params, all, map[nnop.ParamTag]nnop.ParamSetter{
		nnop.ParamDetectionInputSize:              nnop.SetterInt("DetectionPostProcess", nntensor.DTypeInt32, &o.inputSize),
		nnop.ParamDetectionScale:                  nnop.SetterFloatVector("DetectionPostProcess", nntensor.DTypeFloat32, 4, &o.scale),
		nnop.ParamDetectionNMSIoUThreshold:        nnop.SetterFloat("DetectionPostProcess", nntensor.DTypeFloat32, &o.nmsIoUThreshold),
		nnop.ParamDetectionNMSScoreThreshold:      nnop.SetterFloat("DetectionPostProcess", nntensor.DTypeFloat32, &o.nmsScoreThreshold),
		nnop.ParamDetectionMaxDetections:          nnop.SetterInt("DetectionPostProcess", nntensor.DTypeInt32, &o.maxDetections),
		nnop.ParamDetectionsPerClass:              nnop.SetterInt("DetectionPostProcess", nntensor.DTypeInt32, &o.detectionsPerClass),
		nnop.ParamDetectionMaxClassesPerDetection: nnop.SetterInt("DetectionPostProcess", nntensor.DTypeInt32, &o.maxClassesPerDetect),
		nnop.ParamDetectionNumClasses:             nnop.SetterInt("DetectionPostProcess", nntensor.DTypeInt32, &o.numClasses),
		nnop.ParamDetectionUseRegularNMS:          nnop.SetterBool("DetectionPostProcess", &o.useRegularNMS),
		nnop.ParamDetectionOutQuantized:           nnop.SetterBool("DetectionPostProcess", &o.outQuantized),
	}); err != nil {
		return err
	}
	o.FinishBuild(inputs, outputs, all)
	return nil
}

func (o *DetectionPostProcess) GetPrimitive() *nnop.Primitive {
	return o.EmitPrimitive("DetectionPostProcess", map[string]interface{}{
		"inputSize":           o.inputSize,
		"scale":               o.scale,
		"nmsIoUThreshold":     o.nmsIoUThreshold,
		"nmsScoreThreshold":   o.nmsScoreThreshold,
		"maxDetections":       o.maxDetections,
		"detectionsPerClass":  o.detectionsPerClass,
		"maxClassesPerDetect": o.maxClassesPerDetect,
		"numClasses":          o.numClasses,
		"useRegularNMS":       o.useRegularNMS,
		"outQuantized":        o.outQuantized,
	})
}

func init() {
	nnop.DefaultRegistry.Register(nnop.OpDetectionPostProcess, NewDetectionPostProcess)
}
