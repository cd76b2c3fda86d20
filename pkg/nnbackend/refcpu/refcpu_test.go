package refcpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyperifyio/nnrt/pkg/nnbackend"
	"github.com/hyperifyio/nnrt/pkg/nngraph"
)

func TestBackendIdentity(t *testing.T) {
	b := New(1)
	assert.Equal(t, 1, b.GetBackendID())
	assert.Equal(t, "refcpu", b.GetBackendName())
	assert.True(t, b.GetBackendStatus().Valid())
}

func TestPrepareModelRejectsNilGraph(t *testing.T) {
	b := New(1)
	_, err := b.PrepareModel(nil, nnbackend.Config{})
	assert.Error(t, err)
}

func TestPrepareModelProducesCacheBuffers(t *testing.T) {
	b := New(1)
	lite := &nngraph.LiteGraph{Nodes: []nngraph.LiteNode{{Name: "Ceil:0"}}}
	prepared, err := b.PrepareModel(lite, nnbackend.Config{})
	require.NoError(t, err)
	assert.Len(t, prepared.CacheBuffers, 1)
}

func TestPrepareModelFromModelCacheRejectsEmpty(t *testing.T) {
	b := New(1)
	_, needsRecompile, err := b.PrepareModelFromModelCache(nil, nnbackend.Config{})
	assert.Error(t, err)
	assert.True(t, needsRecompile)
}

func TestGetSupportedOperationMatchesNodeCount(t *testing.T) {
	b := New(1)
	lite := &nngraph.LiteGraph{Nodes: make([]nngraph.LiteNode, 3)}
	supported, err := b.GetSupportedOperation(lite)
	require.NoError(t, err)
	assert.Len(t, supported, 3)
}
