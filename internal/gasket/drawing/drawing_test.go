package drawing

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gasket-service/internal/gasket/geometry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLayout(t *testing.T) geometry.Layout {
	t.Helper()
	layout, err := geometry.Build(geometry.Params{
		A: 200, B: 60, C: 190, D: 50,
		E: 10, F: 12, I: 10, H: 10,
		HoleDiameter:      6,
		HoleConfiguration: geometry.Centered,
	})
	require.NoError(t, err)
	return layout
}

func TestEmit_CallOrder(t *testing.T) {
	layout := testLayout(t)
	rec := &Recorder{}

	require.NoError(t, Emit(rec, layout))

	assert.Equal(t, 3, rec.Count("layer"))
	assert.Equal(t, 4, rec.Count("arc"))
	assert.Equal(t, 4, rec.Count("line"))
	assert.Equal(t, layout.HoleCount(), rec.Count("circle"))

	assert.Equal(t, "layer", rec.Calls[0].Op)
	assert.True(t, strings.HasPrefix(rec.Calls[0].Name, "outer"))
	assert.True(t, strings.HasPrefix(rec.Calls[5].Name, "inner"))
	assert.True(t, strings.HasPrefix(rec.Calls[10].Name, "holes"))

	// Правая наружная дуга: центр (70, 0), радиус 30, от -90 до 90.
	assert.Equal(t, []float64{70, 0, 30, -90, 90}, rec.Calls[1].Args)
}

func TestWithUnit(t *testing.T) {
	rec := &Recorder{}
	sink := WithUnit(rec, UnitCentimeters)

	require.NoError(t, sink.Circle(10, 20, 5))
	require.NoError(t, sink.Arc(10, 0, 30, -90, 90))
	assert.InDeltaSlice(t, []float64{1, 2, 0.5}, rec.Calls[0].Args, 1e-12)
	assert.InDeltaSlice(t, []float64{1, 0, 3, -90, 90}, rec.Calls[1].Args, 1e-12)

	assert.Same(t, rec, WithUnit(rec, UnitMillimeters))
}

func TestParseUnit(t *testing.T) {
	u, err := ParseUnit("CM")
	require.NoError(t, err)
	assert.Equal(t, UnitCentimeters, u)

	u, err = ParseUnit("")
	require.NoError(t, err)
	assert.Equal(t, UnitMillimeters, u)

	_, err = ParseUnit("furlong")
	assert.Error(t, err)
}

func TestFileName(t *testing.T) {
	assert.Equal(t,
		"gasket_40holes_A200_B60_C190_D50_E10_F12_I10_H10_hd6_centered.dxf",
		FileName(testLayout(t)))
}

func TestDXF_SaveAs(t *testing.T) {
	layout := testLayout(t)
	doc := NewDXF()
	require.NoError(t, Emit(doc, layout))

	path := filepath.Join(t.TempDir(), "out", FileName(layout))
	require.NoError(t, doc.SaveAs(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "CIRCLE")
	assert.Contains(t, text, "ARC")
	assert.Contains(t, text, "holes")
}

func TestDXF_Bytes(t *testing.T) {
	doc := NewDXF()
	require.NoError(t, doc.SetLayer("holes", ColorRed, LineContinuous))
	require.NoError(t, doc.SetLayer("holes", ColorRed, LineContinuous))
	require.NoError(t, doc.Circle(0, 0, 3))

	data, err := doc.Bytes()
	require.NoError(t, err)
	assert.Contains(t, string(data), "CIRCLE")
}

func TestSVG_Render(t *testing.T) {
	layout := testLayout(t)
	svg := NewSVG()
	require.NoError(t, Emit(svg, layout))

	out := svg.Render(5)
	assert.True(t, strings.HasPrefix(out, `<?xml`))
	assert.Equal(t, layout.HoleCount(), strings.Count(out, "<circle"))
	assert.Equal(t, 4, strings.Count(out, "<path"))
	assert.Equal(t, 4, strings.Count(out, "<line"))
	assert.Contains(t, out, `viewBox="-105 -35 210 70"`)
}

func TestDXF_UnitHeader(t *testing.T) {
	tests := []struct {
		unit Unit
		code string
	}{
		{UnitMillimeters, "4"},
		{UnitCentimeters, "5"},
		{UnitMeters, "6"},
		{UnitInches, "1"},
	}

	for _, tt := range tests {
		t.Run(string(tt.unit), func(t *testing.T) {
			doc := NewDXF()
			require.NoError(t, Emit(WithUnit(doc, tt.unit), testLayout(t)))

			data, err := doc.Bytes()
			require.NoError(t, err)
			assert.Contains(t, string(data), "$INSUNITS\n70\n"+tt.code+"\n")
		})
	}
}

func TestDXF_DefaultUnitIsMillimeters(t *testing.T) {
	data, err := NewDXF().Bytes()
	require.NoError(t, err)
	assert.Contains(t, string(data), "$INSUNITS\n70\n4\n")
}

func TestDXF_HolesLayerHidden(t *testing.T) {
	doc := NewDXF()
	require.NoError(t, Emit(doc, testLayout(t)))

	data, err := doc.Bytes()
	require.NoError(t, err)
	// Запись слоя: имя (2), цвет (62), тип линии (6).
	assert.Contains(t, string(data), "2\nholes\n70\n0\n62\n1\n6\nHIDDEN\n")
}

func TestSVG_HiddenLayerDashed(t *testing.T) {
	layout := testLayout(t)
	svg := NewSVG()
	require.NoError(t, Emit(svg, layout))

	out := svg.Render(5)
	assert.Equal(t, layout.HoleCount(), strings.Count(out, "stroke-dasharray"))
}
