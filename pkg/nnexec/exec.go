// Package nnexec drives a single execution: bind Tensors to the
// lightweight IOTensor the backend boundary understands, run, and only
// after confirming every output buffer was sufficient does it rebind any
// dynamic output shape the backend reported back.
package nnexec

import (
	"fmt"
	"strings"

	"github.com/hyperifyio/nnrt/pkg/nnbackend"
	"github.com/hyperifyio/nnrt/pkg/nnerr"
	"github.com/hyperifyio/nnrt/pkg/nnlog"
	"github.com/hyperifyio/nnrt/pkg/nntensor"
)

// Executor runs a prepared model's compiled graph against a backend.
type Executor struct {
	Backend nnbackend.Backend
}

// New creates an Executor bound to backend.
func New(backend nnbackend.Backend) *Executor {
	return &Executor{Backend: backend}
}

// Run converts inputs/outputs to IOTensor, invokes the backend, and
// rebinds every output's shape from the backend's reported dimensions.
// If any output was reported insufficient, Run logs every failing index
// and returns a FAILED error without mutating any output tensor — a
// partial write on a failed run would leave a caller unable to tell a
// short output from a genuine one.
func (e *Executor) Run(inputs, outputs []*nntensor.Tensor) error {
	if e.Backend == nil {
		return nnerr.New("nnexec", "Run: missing backend", nnerr.NullPtr)
	}

	ioIn := make([]nntensor.IOTensor, len(inputs))
	for i, t := range inputs {
		ioIn[i] = t.ConvertToIOTensor()
	}
	ioOut := make([]nntensor.IOTensor, len(outputs))
	for i, t := range outputs {
		ioOut[i] = t.ConvertToIOTensor()
	}

	dims, sufficient, err := e.Backend.Run(ioIn, ioOut)
	if err != nil {
		return nnerr.Wrap("nnexec", "Run: backend execution", nnerr.Failed, err)
	}

	var failed []string
	for i, ok := range sufficient {
		if !ok {
			name := ioOut[i].Name
			nnlog.Errorf(nnlog.Executor, "output %d (%s) insufficient", i, name)
			failed = append(failed, name)
		}
	}
	if len(failed) > 0 {
		return nnerr.New("nnexec", fmt.Sprintf("Run: insufficient output buffer(s): %s", strings.Join(failed, ", ")), nnerr.Failed)
	}

	for i, t := range outputs {
		if i >= len(dims) {
			continue
		}
		if err := t.SetDimensions(dims[i]); err != nil {
			return nnerr.Wrap("nnexec", "Run: rebind output dimensions", nnerr.Failed, err)
		}
	}
	return nil
}
