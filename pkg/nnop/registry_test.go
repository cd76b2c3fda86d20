package nnop_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyperifyio/nnrt/pkg/nnop"
	_ "github.com/hyperifyio/nnrt/pkg/nnop/ops"
	"github.com/hyperifyio/nnrt/pkg/nntensor"
)

type stubBuilder struct {
	nnop.BaseBuilder
}

func (s *stubBuilder) Build(params, inputs, outputs []nnop.TensorIndex, all []*nntensor.Tensor) error {
	s.Finish(inputs, outputs)
	return nil
}

func (s *stubBuilder) GetPrimitive() *nnop.Primitive { return s.EmitPrimitive("Stub", nil) }

func TestRegisterThenGetOpsBuilder(t *testing.T) {
	r := nnop.NewRegistry()
	r.Register(nnop.OpCeil, func(name string) nnop.OperatorBuilder {
		return &stubBuilder{BaseBuilder: nnop.NewBaseBuilder(name)}
	})

	assert.True(t, r.Registered(nnop.OpCeil))
	b := r.GetOpsBuilder(nnop.OpCeil, "Ceil")
	require.NotNil(t, b)
	assert.Equal(t, "Ceil", b.Name())
}

func TestGetOpsBuilderUnknownReturnsNil(t *testing.T) {
	r := nnop.NewRegistry()
	assert.Nil(t, r.GetOpsBuilder(nnop.OpCeil, "Ceil"))
	assert.False(t, r.Registered(nnop.OpCeil))
}

func TestRegisterDuplicateIsFirstWins(t *testing.T) {
	r := nnop.NewRegistry()
	r.Register(nnop.OpCeil, func(name string) nnop.OperatorBuilder {
		return &stubBuilder{BaseBuilder: nnop.NewBaseBuilder(name + "-first")}
	})
	r.Register(nnop.OpCeil, func(name string) nnop.OperatorBuilder {
		return &stubBuilder{BaseBuilder: nnop.NewBaseBuilder(name + "-second")}
	})

	b := r.GetOpsBuilder(nnop.OpCeil, "Ceil")
	require.NotNil(t, b)
	assert.Equal(t, "Ceil-first", b.Name())
}

func TestDefaultRegistryHasEveryEnumMember(t *testing.T) {
	for op := nnop.OpAdd; op <= nnop.OpCast; op++ {
		assert.Truef(t, nnop.DefaultRegistry.Registered(op), "operator type %d has no registered builder", op)
	}
}
