package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallParams(cfg HoleConfiguration) Params {
	return Params{
		A: 40, B: 12, C: 30, D: 10,
		E: 5, F: 5, I: 5, H: 2,
		HoleDiameter:      2,
		HoleConfiguration: cfg,
	}
}

func TestHoleRing_CenteredScenario(t *testing.T) {
	p := smallParams(Centered)

	ring, err := NewHoleRing(p, -p.BoltCenterX())
	require.NoError(t, err)

	assert.InDelta(t, math.Pi/3, ring.Alpha, 1e-12)
	assert.InDelta(t, math.Pi, ring.Theta0, 1e-12)
	require.Len(t, ring.Angles, 2)
	assert.InDelta(t, math.Pi, ring.Angles[0], 1e-12)
	assert.InDelta(t, 2*math.Pi/3, ring.Angles[1], 1e-12)

	// Следующий шаг ушёл бы ниже π/2.
	assert.Less(t, ring.LastAngle()-ring.Alpha, math.Pi/2)

	// Отверстие в крайней левой точке дорожки.
	assert.InDelta(t, -p.C/2, ring.Centers[0].X, 1e-12)
	assert.InDelta(t, 0, ring.Centers[0].Y, 1e-12)
}

func TestHoleRing_Straddled(t *testing.T) {
	p := smallParams(Straddled)

	ring, err := NewHoleRing(p, -p.BoltCenterX())
	require.NoError(t, err)

	assert.InDelta(t, math.Pi-ring.Alpha/2, ring.Theta0, 1e-12)
	// θ0 = 150°, 90°: оба не ниже π/2.
	require.Len(t, ring.Angles, 2)
	assert.InDelta(t, math.Pi/2, ring.Angles[1], 1e-9)
	assert.InDelta(t, p.E/2, ring.Centers[0].Y, 1e-12)
}

func TestHoleRing_ConsecutiveChordIsE(t *testing.T) {
	p := baseParams()

	ring, err := NewHoleRing(p, -p.BoltCenterX())
	require.NoError(t, err)

	for i := 1; i < len(ring.Centers); i++ {
		d := distance(ring.Centers[i-1].Point(), ring.Centers[i].Point())
		assert.InDelta(t, p.E, d, 1e-9)
	}
	for _, a := range ring.Angles {
		assert.GreaterOrEqual(t, a, math.Pi/2-angleTolerance)
	}
}

func TestHoleRing_ExactQuarterDivision(t *testing.T) {
	p := smallParams(Centered)
	p.E = p.D * math.Sin(math.Pi/8)
	p.I = p.E
	p.HoleDiameter = 1

	ring, err := NewHoleRing(p, -p.BoltCenterX())
	require.NoError(t, err)

	// 180°, 135°, 90°: граничное отверстие ровно одно.
	require.Len(t, ring.Angles, 3)
	assert.InDelta(t, math.Pi/2, ring.LastAngle(), 1e-9)
	assert.InDelta(t, -p.BoltCenterX()+p.BoltRadius()*ring.AlphaTransition, ring.TransitionX, 1e-9)
}

func TestHoleRing_TransitionKeepsSpacingI(t *testing.T) {
	p := baseParams()

	ring, err := NewHoleRing(p, -p.BoltCenterX())
	require.NoError(t, err)

	last := ring.Centers[len(ring.Centers)-1]
	first := Point{X: ring.TransitionX, Y: p.BoltRadius()}
	assert.GreaterOrEqual(t, distance(last.Point(), first), p.I-1e-9)
	assert.GreaterOrEqual(t, ring.TransitionX, -p.BoltCenterX())
}

func TestHoleRing_DegenerateSpacing(t *testing.T) {
	p := baseParams()
	p.E = 1e-6
	p.HoleDiameter = 1e-7

	_, err := NewHoleRing(p, -p.BoltCenterX())
	assert.ErrorIs(t, err, ErrDegenerateSpacing)
}

func TestHoleRing_InvalidChord(t *testing.T) {
	p := baseParams()
	p.I = p.D + 1

	_, err := NewHoleRing(p, -p.BoltCenterX())
	assert.ErrorIs(t, err, ErrInvalidChord)
}
