package limno

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUStar(t *testing.T) {
	t.Parallel()

	t.Run("light wind at a low sensor", func(t *testing.T) {
		t.Parallel()
		// 3 m/s at 2 m height over a 997 kg/m^3 epilimnion: corrected U10 is
		// about 3.51 m/s, uStar about 3.85 mm/s.
		us, err := UStar(3, 2, 997)
		require.NoError(t, err)
		assert.Positive(t, us)
		assert.Less(t, us, 0.01)
		assert.InDelta(t, 0.00385, us, 1e-4)
	})

	t.Run("no correction at the reference height", func(t *testing.T) {
		t.Parallel()
		us, err := UStar(3, 10, 998)
		require.NoError(t, err)
		// Cd = 1.0e-3 below 5 m/s: sqrt(1.0e-3 * 1.2 * 9 / 998)
		assert.InDelta(t, 0.00329, us, 1e-5)
	})

	t.Run("drag coefficient steps up at 5 m/s", func(t *testing.T) {
		t.Parallel()
		us, err := UStar(5, 10, 998)
		require.NoError(t, err)
		// Cd = 1.5e-3 at and above 5 m/s: sqrt(1.5e-3 * 1.2 * 25 / 998)
		assert.InDelta(t, 0.006715, us, 1e-5)
	})

	t.Run("zero wind gives zero friction velocity", func(t *testing.T) {
		t.Parallel()
		us, err := UStar(0, 2, 998)
		require.NoError(t, err)
		assert.Zero(t, us)
	})

	t.Run("nonzero wind never gives zero", func(t *testing.T) {
		t.Parallel()
		for _, speed := range []float64{0.1, 1, 3, 8, 20} {
			us, err := UStar(speed, 2, 998)
			require.NoError(t, err)
			assert.Positive(t, us, "at %.1f m/s", speed)
		}
	})

	t.Run("friction velocity grows with wind speed", func(t *testing.T) {
		t.Parallel()
		slow, err := UStar(2, 10, 998)
		require.NoError(t, err)
		fast, err := UStar(10, 10, 998)
		require.NoError(t, err)
		assert.Greater(t, fast, slow)
	})

	t.Run("rejects invalid inputs", func(t *testing.T) {
		t.Parallel()
		var de *DomainError
		_, err := UStar(-1, 2, 998)
		assert.ErrorAs(t, err, &de)
		_, err = UStar(3, 0, 998)
		assert.ErrorAs(t, err, &de)
		_, err = UStar(3, 2, 0)
		assert.ErrorAs(t, err, &de)
	})
}
