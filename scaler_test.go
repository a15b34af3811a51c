package pareto

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberScaler(t *testing.T) {
	s := NumberScaler(NumberDomain(0, 30), NewRange(240, 0))
	assert.InDelta(t, 240, s.Scale(0), 1e-9)
	assert.InDelta(t, 80, s.Scale(20), 1e-9)
	assert.InDelta(t, 0, s.Scale(30), 1e-9)
	assert.Equal(t, 240.0, s.Max())
	assert.Equal(t, 0.0, s.Min())

	s = NumberScaler(NumberDomain(0, 1), NewRange(0, 100))
	assert.InDelta(t, 25, s.Scale(0.25), 1e-9)
}

func TestNumberScalerEmptyDomain(t *testing.T) {
	s := NumberScaler(NumberDomain(0, 0), NewRange(240, 0))
	assert.Equal(t, 120.0, s.Scale(0))
	assert.Equal(t, 120.0, s.Scale(5))

	s = NumberScaler(NumberDomain(3, 3), NewRange(0, 100))
	assert.Equal(t, 50.0, s.Scale(3))

	s = NumberScaler(NumberDomain(0, math.NaN()), NewRange(240, 0))
	assert.True(t, math.IsNaN(s.Scale(0)))
}

func TestBandScaler(t *testing.T) {
	var (
		names = []string{"b", "c", "a"}
		s     = BandScaler(names, NewRange(0, 320), 0.1)
		step  = 320 / 3.1
	)
	assert.InDelta(t, 0.9*step, s.Space(), 1e-9)
	assert.InDelta(t, 0.9*320/(3+0.1), s.Space(), 1e-9)
	assert.InDelta(t, step*0.1, s.Scale("b"), 1e-9)
	assert.InDelta(t, step*1.1, s.Scale("c"), 1e-9)
	assert.InDelta(t, step*2.1, s.Scale("a"), 1e-9)
	assert.True(t, math.IsNaN(s.Scale("unknown")))
	assert.Equal(t, names, s.Values(0))
	assert.Equal(t, names[:2], s.Values(2))

	s = BandScaler(names, NewRange(0, 300), 0)
	assert.InDelta(t, 100, s.Space(), 1e-9)
	assert.InDelta(t, 200, s.Scale("a"), 1e-9)
}

func TestTicks(t *testing.T) {
	tests := []struct {
		name  string
		start float64
		stop  float64
		count int
		want  []float64
	}{
		{
			name:  "unit domain",
			start: 0,
			stop:  1,
			count: 10,
			want:  []float64{0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1},
		},
		{
			name:  "step of two",
			start: 0,
			stop:  30,
			count: 10,
			want:  []float64{0, 2, 4, 6, 8, 10, 12, 14, 16, 18, 20, 22, 24, 26, 28, 30},
		},
		{
			name:  "step of fifty",
			start: 0,
			stop:  420,
			count: 10,
			want:  []float64{0, 50, 100, 150, 200, 250, 300, 350, 400},
		},
		{
			name:  "reversed",
			start: 5,
			stop:  0,
			count: 5,
			want:  []float64{5, 4, 3, 2, 1, 0},
		},
		{
			name:  "single value",
			start: 3,
			stop:  3,
			count: 10,
			want:  []float64{3},
		},
		{
			name:  "no ticks",
			start: 0,
			stop:  1,
			count: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Ticks(tt.start, tt.stop, tt.count)
			require.Len(t, got, len(tt.want))
			for i := range got {
				assert.InDelta(t, tt.want[i], got[i], 1e-9)
			}
		})
	}
}

func TestTicksNaN(t *testing.T) {
	assert.Empty(t, Ticks(0, math.NaN(), 10))
}

func TestTickStep(t *testing.T) {
	assert.InDelta(t, 0.1, TickStep(0, 1, 10), 1e-12)
	assert.InDelta(t, 2, TickStep(0, 30, 10), 1e-12)
	assert.InDelta(t, 50, TickStep(0, 420, 10), 1e-12)
	assert.InDelta(t, -1, TickStep(5, 0, 5), 1e-12)
}
