package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hyperifyio/nnrt/pkg/nncompiler"
)

var (
	cacheDir      string
	cacheVersion  int
	elementCount  int64
)

var compileCmd = &cobra.Command{
	Use:   "compile",
	Short: "Compile the demo graph against the registered backend, caching the result",
	RunE:  runCompile,
}

func init() {
	compileCmd.Flags().StringVar(&cacheDir, "cache-dir", "", "directory to persist/restore the compiled cache (disabled if empty)")
	compileCmd.Flags().IntVar(&cacheVersion, "version", 1, "cache version to request")
	compileCmd.Flags().Int64Var(&elementCount, "elements", 8, "element count of the demo graph's input/output vector")
	rootCmd.AddCommand(compileCmd)
}

func runCompile(cmd *cobra.Command, args []string) error {
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

	prepared, err := nncompiler.Compile(backend, lite, nncompiler.Config{
		ModelName: "nnrtc-demo",
		CacheDir:  cacheDir,
		Version:   cacheVersion,
	})
	if err != nil {
		return err
	}

	name, err := reg.GetBackendName(backendID)
	if err != nil {
		return err
	}
	fmt.Printf("compiled against backend %d (%s): %d cache buffer(s)\n", backend.GetBackendID(), name, len(prepared.CacheBuffers))
	return nil
}
