package limno

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetalimnionDepths(t *testing.T) {
	t.Parallel()

	t.Run("brackets the thermocline", func(t *testing.T) {
		t.Parallel()
		p := stratifiedProfile(t)
		thermo, err := ThermoclineDepth(p, nil, true)
		require.NoError(t, err)
		meta, err := MetalimnionDepths(p, nil, true)
		require.NoError(t, err)
		assert.LessOrEqual(t, meta.Top, thermo)
		assert.GreaterOrEqual(t, meta.Bottom, thermo)
		assert.Positive(t, meta.Thickness())
	})

	t.Run("worked example straddles six metres", func(t *testing.T) {
		t.Parallel()
		meta, err := MetalimnionDepths(stratifiedProfile(t), nil, true)
		require.NoError(t, err)
		assert.Less(t, meta.Top, 6.0)
		assert.Greater(t, meta.Bottom, 6.0)
	})

	t.Run("monotonic-to-boundary profile is bounded at surface and bottom", func(t *testing.T) {
		t.Parallel()
		// Constant temperature gradient keeps the density gradient above the
		// drop-off fraction everywhere.
		p, err := NewProfile([]float64{0, 2, 4, 6, 8, 10}, []float64{25, 21, 17, 13, 9, 5})
		require.NoError(t, err)
		meta, err := MetalimnionDepths(p, nil, false)
		require.NoError(t, err)
		assert.InDelta(t, 0, meta.Top, 1e-9)
		assert.InDelta(t, 10, meta.Bottom, 1e-9)
	})

	t.Run("mixed column has no metalimnion", func(t *testing.T) {
		t.Parallel()
		p, err := NewProfile([]float64{0, 5, 10}, []float64{15, 15, 15})
		require.NoError(t, err)
		_, err = MetalimnionDepths(p, nil, true)
		assert.ErrorIs(t, err, ErrNoThermocline)
	})

	t.Run("invariant holds across profiles", func(t *testing.T) {
		t.Parallel()
		cases := []struct {
			name   string
			depths []float64
			temps  []float64
		}{
			{"worked example", []float64{0, 2, 4, 6, 8, 10}, []float64{25, 24, 20, 12, 8, 7}},
			{"shallow transition", []float64{0, 1, 2, 5, 10}, []float64{26, 20, 17, 16, 15}},
			{"two steps", []float64{0, 2, 4, 6, 8, 10, 12, 14}, []float64{28, 22, 21.8, 21.6, 21.4, 18, 15.5, 15.4}},
		}
		for _, tc := range cases {
			tc := tc
			t.Run(tc.name, func(t *testing.T) {
				t.Parallel()
				p, err := NewProfile(tc.depths, tc.temps)
				require.NoError(t, err)
				for _, seasonal := range []bool{false, true} {
					thermo, err := ThermoclineDepth(p, nil, seasonal)
					require.NoError(t, err)
					meta, err := MetalimnionDepths(p, nil, seasonal)
					require.NoError(t, err)
					assert.LessOrEqual(t, meta.Top, thermo, "seasonal=%v", seasonal)
					assert.GreaterOrEqual(t, meta.Bottom, thermo, "seasonal=%v", seasonal)
				}
			})
		}
	})

	t.Run("drop-off fraction is tunable", func(t *testing.T) {
		t.Parallel()
		p := stratifiedProfile(t)
		loose, err := MetalimnionDepths(p, &Tuning{MetaSlopeFraction: ptrFloat64(0.05)}, true)
		require.NoError(t, err)
		tight, err := MetalimnionDepths(p, &Tuning{MetaSlopeFraction: ptrFloat64(0.5)}, true)
		require.NoError(t, err)
		assert.LessOrEqual(t, tight.Thickness(), loose.Thickness())
	})
}
