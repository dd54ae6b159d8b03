package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	p := baseParams()

	layout, err := Build(p)
	require.NoError(t, err)

	assert.True(t, layout.Outer.Closed(1e-9))
	assert.True(t, layout.Inner.Closed(1e-9))
	assert.Equal(t, 40, layout.HoleCount())
	assert.Empty(t, layout.Outside)
	assert.Empty(t, layout.Warnings())
}

func TestBuild_RejectsBeforeGeometry(t *testing.T) {
	p := baseParams()
	p.HoleDiameter = 11

	layout, err := Build(p)
	assert.ErrorIs(t, err, ErrHoleDiameterTooLarge)
	assert.Zero(t, layout.HoleCount())
}

func TestCheckContainment(t *testing.T) {
	p := baseParams()

	inside := []HoleCenter{
		{X: 0, Y: 25, Radius: 3},
		{X: -95, Y: 0, Radius: 3},
		{X: 0, Y: 22.5, Radius: 2.5},
	}
	assert.Empty(t, CheckContainment(p, inside))

	outside := []HoleCenter{
		{X: 0, Y: 0, Radius: 3},      // в окне прокладки
		{X: 0, Y: 29, Radius: 3},     // режет наружный край
		{X: -98, Y: 0, Radius: 3},    // за торцом
		{X: 0, Y: 21, Radius: 3},     // режет внутренний край
		{X: 120, Y: 40, Radius: 0.5}, // снаружи
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4}, CheckContainment(p, outside))
}

func TestBuild_WarnsWhenHolesLeaveBand(t *testing.T) {
	p := baseParams()
	p.D = 58
	p.C = 198

	layout, err := Build(p)
	require.NoError(t, err)

	assert.NotEmpty(t, layout.Outside)
	assert.Contains(t, layout.Warnings(), "holes extend outside the gasket cross-section")
}
