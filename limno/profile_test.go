package limno

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stratifiedProfile is the worked example used across the detector tests:
// warm mixed surface layer, sharp drop between 4 and 8 m.
func stratifiedProfile(t *testing.T) Profile {
	t.Helper()
	p, err := NewProfile(
		[]float64{0, 2, 4, 6, 8, 10},
		[]float64{25, 24, 20, 12, 8, 7},
	)
	require.NoError(t, err)
	return p
}

func TestNewProfile(t *testing.T) {
	t.Parallel()

	t.Run("rejects mismatched lengths", func(t *testing.T) {
		t.Parallel()
		_, err := NewProfile([]float64{0, 1}, []float64{20})
		assert.Error(t, err)
	})

	t.Run("rejects fewer than two points", func(t *testing.T) {
		t.Parallel()
		_, err := NewProfile([]float64{0}, []float64{20})
		assert.Error(t, err)
	})

	t.Run("rejects non-increasing depths", func(t *testing.T) {
		t.Parallel()
		_, err := NewProfile([]float64{0, 2, 2}, []float64{20, 19, 18})
		assert.Error(t, err)
	})
}

func TestProfileAt(t *testing.T) {
	t.Parallel()
	p := stratifiedProfile(t)

	t.Run("interpolates between measurements", func(t *testing.T) {
		t.Parallel()
		v, err := p.At(5)
		require.NoError(t, err)
		assert.InDelta(t, 16, v, 1e-9)
	})

	t.Run("returns the measured value at a measurement depth", func(t *testing.T) {
		t.Parallel()
		v, err := p.At(4)
		require.NoError(t, err)
		assert.InDelta(t, 20, v, 1e-9)
	})

	t.Run("does not extrapolate", func(t *testing.T) {
		t.Parallel()
		_, err := p.At(11)
		var oor *OutOfRangeError
		assert.ErrorAs(t, err, &oor)
	})
}

func TestProfileResample(t *testing.T) {
	t.Parallel()
	p := stratifiedProfile(t)

	t.Run("spans the measured range on a uniform grid", func(t *testing.T) {
		t.Parallel()
		fine, err := p.Resample(0.1)
		require.NoError(t, err)
		require.Len(t, fine.Depths, 101)
		assert.Equal(t, 0.0, fine.MinDepth())
		assert.Equal(t, 10.0, fine.MaxDepth())
		assert.Equal(t, 25.0, fine.Values[0])
		assert.Equal(t, 7.0, fine.Values[len(fine.Values)-1])
	})

	t.Run("interpolates linearly within intervals", func(t *testing.T) {
		t.Parallel()
		fine, err := p.Resample(0.5)
		require.NoError(t, err)
		got, err := fine.At(5)
		require.NoError(t, err)
		assert.InDelta(t, 16, got, 1e-9)
	})

	t.Run("handles a step that does not divide the span", func(t *testing.T) {
		t.Parallel()
		fine, err := p.Resample(0.3)
		require.NoError(t, err)
		assert.Equal(t, 10.0, fine.MaxDepth())
		for i := 1; i < len(fine.Depths); i++ {
			assert.LessOrEqual(t, fine.Depths[i]-fine.Depths[i-1], 0.3+1e-9)
		}
	})

	t.Run("rejects a non-positive step", func(t *testing.T) {
		t.Parallel()
		_, err := p.Resample(0)
		var de *DomainError
		assert.ErrorAs(t, err, &de)
	})

	t.Run("resampling is idempotent on the same grid", func(t *testing.T) {
		t.Parallel()
		fine, err := p.Resample(0.5)
		require.NoError(t, err)
		again, err := fine.Resample(0.5)
		require.NoError(t, err)
		if diff := cmp.Diff(fine.Values, again.Values, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
			t.Errorf("resample mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestProfileHasNaN(t *testing.T) {
	t.Parallel()
	p := Profile{Depths: []float64{0, 1}, Values: []float64{20, math.NaN()}}
	assert.True(t, p.HasNaN())
	assert.False(t, stratifiedProfile(t).HasNaN())
}
