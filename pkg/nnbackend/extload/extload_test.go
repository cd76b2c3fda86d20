package extload

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadMissingLibraryIsNonFatal(t *testing.T) {
	l := NewLoader("/nonexistent/path/to/libext.so")
	present, err := l.Load()
	assert.NoError(t, err)
	assert.False(t, present)
}

func TestLoadIsIdempotent(t *testing.T) {
	l := NewLoader("/nonexistent/path/to/libext.so")
	first, err := l.Load()
	assert.NoError(t, err)
	second, err := l.Load()
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}
