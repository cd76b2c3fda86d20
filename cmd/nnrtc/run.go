package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hyperifyio/nnrt/pkg/nncompiler"
	"github.com/hyperifyio/nnrt/pkg/nnexec"
	"github.com/hyperifyio/nnrt/pkg/nntensor"
)

var inputValue float64

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Compile and execute the demo graph, printing the output buffer after the run",
	RunE:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&cacheDir, "cache-dir", "", "directory to persist/restore the compiled cache (disabled if empty)")
	runCmd.Flags().IntVar(&cacheVersion, "version", 1, "cache version to request")
	runCmd.Flags().Int64Var(&elementCount, "elements", 8, "element count of the demo graph's input/output vector")
	runCmd.Flags().Float64Var(&inputValue, "value", 10, "value every input element is filled with")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	reg, err := registry()
	if err != nil {
		return err
	}
	backend, err := reg.GetBackend(backendID)
	if err != nil {
		return err
	}

	g, err := buildDemoGraph(elementCount)
	if err != nil {
		return err
	}
	lite, err := g.Build()
	if err != nil {
		return err
	}

	if _, err := nncompiler.Compile(backend, lite, nncompiler.Config{
		ModelName: "nnrtc-demo",
		CacheDir:  cacheDir,
		Version:   cacheVersion,
	}); err != nil {
		return err
	}

	inTensor := lite.Tensors[lite.Subgraph.InputIndices[0]]
	outTensor := lite.Tensors[lite.Subgraph.OutputIndices[0]]

	if err := inTensor.SetBuffer(fillFloat32(int(elementCount), float32(inputValue))); err != nil {
		return err
	}
	outSize, err := outTensor.Descriptor().ByteSize()
	if err != nil {
		return err
	}
	if err := outTensor.SetBuffer(make([]byte, outSize)); err != nil {
		return err
	}

	executor := nnexec.New(backend)
	if err := executor.Run([]*nntensor.Tensor{inTensor}, []*nntensor.Tensor{outTensor}); err != nil {
		return err
	}

	fmt.Printf("output: %v\n", decodeFloat32(outTensor.Buffer()))
	return nil
}
