package main

import (
	"github.com/spf13/cobra"

	"github.com/hyperifyio/nnrt/pkg/nnbackend"
	"github.com/hyperifyio/nnrt/pkg/nnbackend/extload"
	"github.com/hyperifyio/nnrt/pkg/nnbackend/refcpu"
)

var backendID int

var rootCmd = &cobra.Command{
	Use:   "nnrtc",
	Short: "nnrtc — compile and run lowered model graphs against a registered backend",
}

func init() {
	rootCmd.PersistentFlags().IntVar(&backendID, "backend-id", 1, "backend_id to register the reference CPU backend under")
}

// registry returns a fresh Registry with the in-tree refcpu backend
// registered under backendID. The extension loader probes for the fixed
// OEM library name on first lookup; absence is non-fatal, so on machines
// without a vendor driver only refcpu is available.
func registry() (*nnbackend.Registry, error) {
	r := nnbackend.NewRegistry(extload.NewDefaultLoader())
	id := backendID
	if err := r.Register(id, func() (nnbackend.Backend, error) {
		return refcpu.New(id), nil
	}); err != nil {
		return nil, err
	}
	return r, nil
}
