package nncompiler

import (
	"golang.org/x/sync/errgroup"

	"github.com/hyperifyio/nnrt/pkg/nnbackend"
	"github.com/hyperifyio/nnrt/pkg/nnerr"
	"github.com/hyperifyio/nnrt/pkg/nngraph"
)

// SelectBackend probes every candidate backend's GetSupportedOperation
// concurrently and returns the first (by candidates order) that claims
// full support for lite, so a caller with no explicit backend preference
// doesn't have to probe candidates one at a time. GetSupportedOperation
// may block on a driver query, hence the errgroup fan-out.
func SelectBackend(candidates []nnbackend.Backend, lite *nngraph.LiteGraph) (nnbackend.Backend, error) {
	if len(candidates) == 0 {
		return nil, nnerr.New("nncompiler", "SelectBackend: no candidates", nnerr.UnavailableDevice)
	}

	fullySupported := make([]bool, len(candidates))

	var g errgroup.Group
	for i, b := range candidates {
		i, b := i, b
		g.Go(func() error {
			supported, err := b.GetSupportedOperation(lite)
			if err != nil {
				return nil
			}
			for _, ok := range supported {
				if !ok {
					return nil
				}
			}
			fullySupported[i] = true
			return nil
		})
	}
	_ = g.Wait()

	for i, ok := range fullySupported {
		if ok {
			return candidates[i], nil
		}
	}
	return nil, nnerr.New("nncompiler", "SelectBackend: no candidate supports every operation", nnerr.UnavailableDevice)
}
