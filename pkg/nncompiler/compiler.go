// Package nncompiler drives the compile pathway: restore a previously
// saved cache if one is usable, otherwise ask the backend to prepare the
// model from scratch, then persist whatever the backend hands back for
// next time.
package nncompiler

import (
	"github.com/hyperifyio/nnrt/pkg/nnbackend"
	"github.com/hyperifyio/nnrt/pkg/nncache"
	"github.com/hyperifyio/nnrt/pkg/nnerr"
	"github.com/hyperifyio/nnrt/pkg/nngraph"
	"github.com/hyperifyio/nnrt/pkg/nnlog"
)

// Config configures a single Compile call.
type Config struct {
	EnableFloat16   bool
	PerformanceMode int
	Priority        int
	EnableProfiling bool

	// ModelName and CacheDir together select where a compiled cache is
	// read from and written to. An empty CacheDir disables caching
	// entirely — Compile always calls PrepareModel.
	ModelName string
	CacheDir  string
	Version   int

	// MemoryBudgetBytes, when positive, is compared against the total
	// size of the buffers a fresh compile produces; exceeding it is
	// recorded in the cache sidecar as IsExceedRamLimit rather than
	// rejected outright, the same distinction NNCompiledCache's original
	// caller makes between "didn't fit" and "failed".
	MemoryBudgetBytes int64
}

func (c Config) backendConfig() nnbackend.Config {
	return nnbackend.Config{
		EnableFloat16:   c.EnableFloat16,
		PerformanceMode: c.PerformanceMode,
		Priority:        c.Priority,
		EnableProfiling: c.EnableProfiling,
	}
}

// Compile prepares lite against backend, preferring a cached compile when
// one is available and the backend accepts it, falling back to a fresh
// PrepareModel otherwise. A fresh or accepted-with-recompile result is
// persisted back to the cache directory before returning, so later calls
// with the same ModelName/Version can skip straight to the cache path.
func Compile(backend nnbackend.Backend, lite *nngraph.LiteGraph, cfg Config) (*nnbackend.PreparedModel, error) {
	if backend == nil {
		return nil, nnerr.New("nncompiler", "Compile: missing backend", nnerr.NullPtr)
	}
	if lite == nil {
		return nil, nnerr.New("nncompiler", "Compile: nil graph", nnerr.NullPtr)
	}

	bcfg := cfg.backendConfig()
	cid := nnlog.NewCorrelationID()

	if cfg.CacheDir != "" && backend.IsModelCacheSupported() {
		if prepared, ok := tryCachedCompile(cid, backend, cfg, bcfg); ok {
			freezeQuantization(lite)
			return prepared, nil
		}
	}

	prepared, err := backend.PrepareModel(lite, bcfg)
	if err != nil {
		return nil, nnerr.Wrap("nncompiler", "Compile: PrepareModel", nnerr.Failed, err)
	}
	nnlog.Debugf(nnlog.Compiler, "[%s] prepared %q from scratch on backend %d", cid, cfg.ModelName, backend.GetBackendID())

	if cfg.CacheDir != "" && backend.IsModelCacheSupported() && len(prepared.CacheBuffers) > 0 {
		exceedsBudget := cfg.MemoryBudgetBytes > 0 && totalBytes(prepared.CacheBuffers) > cfg.MemoryBudgetBytes
		if err := nncache.Save(backend, cfg.CacheDir, cfg.ModelName, backend.GetBackendID(), cfg.Version, prepared.CacheBuffers, exceedsBudget); err != nil {
			nnlog.Warnf(nnlog.Compiler, "[%s] saving compiled cache for %q: %v", cid, cfg.ModelName, err)
		}
	}

	freezeQuantization(lite)
	return prepared, nil
}

// freezeQuantization marks every tensor in a successfully compiled graph,
// so later quantization mutation is rejected — the compiled artifact was
// produced against the quantization the tensors carried at this point.
func freezeQuantization(lite *nngraph.LiteGraph) {
	for _, t := range lite.Tensors {
		t.MarkCompiled()
	}
}

func totalBytes(buffers [][]byte) int64 {
	var n int64
	for _, b := range buffers {
		n += int64(len(b))
	}
	return n
}

// tryCachedCompile attempts the cache-restore path, reporting ok=false
// whenever the backend should fall through to a fresh PrepareModel —
// whether because no usable cache exists or because the backend itself
// rejected the cached buffers and asked for a recompile.
func tryCachedCompile(cid string, backend nnbackend.Backend, cfg Config, bcfg nnbackend.Config) (*nnbackend.PreparedModel, bool) {
	cached, err := nncache.Restore(cfg.CacheDir, cfg.ModelName, backend.GetBackendID(), cfg.Version)
	if err != nil {
		nnlog.Infof(nnlog.Compiler, "[%s] no usable cache for %q: %v", cid, cfg.ModelName, err)
		return nil, false
	}
	defer cached.Release()

	prepared, needsRecompile, err := backend.PrepareModelFromModelCache(cached.Buffers, bcfg)
	if err != nil || needsRecompile {
		nnlog.Infof(nnlog.Compiler, "[%s] backend rejected cache for %q, recompiling: %v", cid, cfg.ModelName, err)
		return nil, false
	}
	nnlog.Debugf(nnlog.Compiler, "[%s] restored %q from cache", cid, cfg.ModelName)
	return prepared, true
}
