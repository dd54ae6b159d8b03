package drawing

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	dxfdrawing "github.com/yofu/dxf/drawing"
	"github.com/yofu/dxf/insunit"
	"github.com/yofu/dxf/table"
)

// ============================================================
// DXF Sink
// ============================================================

// DXF накапливает примитивы в документе DXF.
type DXF struct {
	drawing *dxfdrawing.Drawing
	layers  map[string]bool
}

// NewDXF создаёт пустой документ в миллиметрах.
func NewDXF() *DXF {
	d := &DXF{
		drawing: dxf.NewDrawing(),
		layers:  make(map[string]bool),
	}
	d.SetUnit(UnitMillimeters)
	return d
}

// SetUnit записывает единицу в $INSUNITS заголовка.
func (d *DXF) SetUnit(u Unit) {
	d.drawing.Header().InsUnit = insUnit(u)
}

func (d *DXF) SetLayer(name string, c Color, style LineStyle) error {
	if d.layers[name] {
		return d.drawing.ChangeLayer(name)
	}
	if _, err := d.drawing.AddLayer(name, color.ColorNumber(c), lineType(style), true); err != nil {
		return fmt.Errorf("add layer %s: %w", name, err)
	}
	d.layers[name] = true
	return nil
}

func (d *DXF) Arc(cx, cy, r, startDeg, endDeg float64) error {
	_, err := d.drawing.Arc(cx, cy, 0, r, startDeg, endDeg)
	return err
}

func (d *DXF) Line(x1, y1, x2, y2 float64) error {
	_, err := d.drawing.Line(x1, y1, 0, x2, y2, 0)
	return err
}

func (d *DXF) Circle(cx, cy, r float64) error {
	_, err := d.drawing.Circle(cx, cy, 0, r)
	return err
}

// SaveAs записывает документ в файл.
func (d *DXF) SaveAs(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir dxf dir: %w", err)
	}
	if err := d.drawing.SaveAs(path); err != nil {
		return fmt.Errorf("save dxf: %w", err)
	}
	return nil
}

// Bytes сериализует документ в память.
func (d *DXF) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := d.drawing.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write dxf: %w", err)
	}
	return buf.Bytes(), nil
}

func insUnit(u Unit) insunit.Unit {
	switch u {
	case UnitCentimeters:
		return insunit.Centimeters
	case UnitMeters:
		return insunit.Meters
	case UnitInches:
		return insunit.Inches
	}
	return insunit.Millimeters
}

func lineType(style LineStyle) *table.LineType {
	if style == LineHidden {
		return table.LT_HIDDEN
	}
	return table.LT_CONTINUOUS
}
