package drawing

import (
	"fmt"
	"strings"
)

// ============================================================
// Drawing Sink
// ============================================================

// Color задаёт номер цвета AutoCAD (ACI).
type Color int

const (
	ColorRed     Color = 1
	ColorYellow  Color = 2
	ColorGreen   Color = 3
	ColorCyan    Color = 4
	ColorBlue    Color = 5
	ColorMagenta Color = 6
	ColorWhite   Color = 7
)

// LineStyle задаёт тип линии слоя.
type LineStyle string

const (
	LineContinuous LineStyle = "CONTINUOUS"
	LineHidden     LineStyle = "HIDDEN"
)

// Sink принимает примитивы чертежа. Реализация пишет их в свой формат;
// один Sink используется для одного чертежа.
type Sink interface {
	SetLayer(name string, color Color, style LineStyle) error
	Arc(cx, cy, r, startDeg, endDeg float64) error
	Line(x1, y1, x2, y2 float64) error
	Circle(cx, cy, r float64) error
}

// Layer описывает слой чертежа.
type Layer struct {
	Name  string
	Color Color
	Style LineStyle
}

// Слои прокладки в порядке вывода.
var (
	LayerOuter = Layer{Name: "outer", Color: ColorWhite, Style: LineContinuous}
	LayerInner = Layer{Name: "inner", Color: ColorYellow, Style: LineContinuous}
	LayerHoles = Layer{Name: "holes", Color: ColorRed, Style: LineHidden}
)

// Unit задаёт единицу измерения входных размеров при выводе.
type Unit string

const (
	UnitMillimeters Unit = "mm"
	UnitCentimeters Unit = "cm"
	UnitMeters      Unit = "m"
	UnitInches      Unit = "in"
)

// ParseUnit разбирает единицу измерения.
func ParseUnit(text string) (Unit, error) {
	switch u := Unit(strings.ToLower(strings.TrimSpace(text))); u {
	case UnitMillimeters, UnitCentimeters, UnitMeters, UnitInches:
		return u, nil
	case "":
		return UnitMillimeters, nil
	}
	return "", fmt.Errorf("unknown unit %q", text)
}

// ScaleTo возвращает множитель перевода миллиметров в единицу u.
func (u Unit) ScaleTo() float64 {
	switch u {
	case UnitCentimeters:
		return 0.1
	case UnitMeters:
		return 0.001
	case UnitInches:
		return 1 / 25.4
	}
	return 1
}
