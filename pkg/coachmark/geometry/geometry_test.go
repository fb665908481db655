package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect_Edges(t *testing.T) {
	t.Parallel()

	r := XYWH(100, 50, 80, 20)

	assert.Equal(t, 100.0, r.MinX())
	assert.Equal(t, 180.0, r.MaxX())
	assert.Equal(t, 50.0, r.MinY())
	assert.Equal(t, 70.0, r.MaxY())
	assert.Equal(t, Point{X: 140, Y: 60}, r.Center())
}

func TestRect_OutsetAndInset(t *testing.T) {
	t.Parallel()

	r := XYWH(10, 10, 20, 20)

	assert.Equal(t, XYWH(5, 5, 30, 30), r.Outset(UniformInsets(5)))
	assert.Equal(t, XYWH(15, 15, 10, 10), r.Inset(UniformInsets(5)))
}

func TestRect_InsetPastZeroCollapses(t *testing.T) {
	t.Parallel()

	r := XYWH(10, 10, 4, 4)
	got := r.Inset(UniformInsets(10))

	assert.Equal(t, 0.0, got.W)
	assert.Equal(t, 0.0, got.H)
	assert.Equal(t, 12.0, got.X)
	assert.Equal(t, 12.0, got.Y)
}

func TestRect_Normalized(t *testing.T) {
	t.Parallel()

	got := XYWH(3, 4, -10, -1).Normalized()

	assert.Equal(t, XYWH(3, 4, 0, 0), got)
	assert.True(t, got.IsEmpty())
}

func TestRect_Intersect(t *testing.T) {
	t.Parallel()

	a := XYWH(0, 0, 10, 10)

	assert.Equal(t, XYWH(5, 5, 5, 5), a.Intersect(XYWH(5, 5, 10, 10)))
	assert.True(t, a.Intersect(XYWH(20, 20, 5, 5)).IsEmpty())
}

func TestRect_ContainsRect(t *testing.T) {
	t.Parallel()

	outer := XYWH(0, 0, 100, 100)

	assert.True(t, outer.ContainsRect(XYWH(10, 10, 20, 20)))
	assert.False(t, outer.ContainsRect(XYWH(90, 10, 20, 20)))
	assert.True(t, outer.Contains(Point{X: 100, Y: 100}))
}

func TestFromPoints(t *testing.T) {
	t.Parallel()

	got := FromPoints(Point{X: 10, Y: 2}, Point{X: 4, Y: 8})

	assert.Equal(t, XYWH(4, 2, 6, 6), got)
}

func TestClamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		v, lo, hi float64
		want      float64
	}{
		{"inside", 5, 0, 10, 5},
		{"below", -3, 0, 10, 0},
		{"above", 12, 0, 10, 10},
		{"inverted range pins to lo", 5, 8, 2, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clamp(tt.v, tt.lo, tt.hi))
		})
	}
}

func TestRect_Lerp(t *testing.T) {
	t.Parallel()

	a := XYWH(0, 0, 10, 10)
	b := XYWH(10, 20, 30, 40)

	assert.Equal(t, a, a.Lerp(b, 0))
	assert.Equal(t, b, a.Lerp(b, 1))
	assert.Equal(t, XYWH(5, 10, 20, 25), a.Lerp(b, 0.5))
}
