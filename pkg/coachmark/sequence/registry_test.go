package sequence

import (
	"testing"

	"github.com/BrandonKowalski/coachmark/pkg/coachmark/geometry"
	"github.com/stretchr/testify/assert"
)

func TestRegistry(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	_, ok := r.Lookup("a")
	assert.False(t, ok)

	r.Set("a", geometry.XYWH(1, 2, 3, 4))
	r.Set("a", geometry.XYWH(5, 6, 7, 8))
	r.Set("b", geometry.XYWH(0, 0, 1, 1))

	got, ok := r.Lookup("a")
	assert.True(t, ok)
	assert.Equal(t, geometry.XYWH(5, 6, 7, 8), got)
	assert.Equal(t, 2, r.Len())

	r.Delete("a")
	_, ok = r.Lookup("a")
	assert.False(t, ok)
	assert.Equal(t, 1, r.Len())
}
