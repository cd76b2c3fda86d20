// Command nncache-inspect opens a compiled-model cache directory,
// verifies its sidecar checksum, and prints what it finds.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hyperifyio/nnrt/pkg/nncache"
)

func main() {
	dir := flag.String("dir", ".", "cache directory to inspect")
	model := flag.String("model", "", "model name the cache was saved under")
	deviceID := flag.Int("device-id", 1, "backend_id the cache is expected to belong to")
	version := flag.Int("version", 1, "cache version to request")
	flag.Parse()

	if *model == "" {
		fmt.Println("Error: -model is required")
		os.Exit(1)
	}

	cache, err := nncache.Restore(*dir, *model, *deviceID, *version)
	if err != nil {
		fmt.Printf("cache not usable: %v\n", err)
		os.Exit(1)
	}
	defer cache.Release()

	fmt.Printf("cache %q at %s: %d buffer(s)\n", *model, *dir, len(cache.Buffers))
	for i, buf := range cache.Buffers {
		fmt.Printf("  buffer %d: %d bytes\n", i, len(buf))
	}
}
