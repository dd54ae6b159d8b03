package drawing

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ============================================================
// SVG Sink (preview)
// ============================================================

// SVG собирает превью чертежа. Ось Y переворачивается: в DXF она смотрит
// вверх, в SVG вниз.
type SVG struct {
	elements []string
	stroke   string
	dash     string

	minX, minY float64
	maxX, maxY float64
}

// NewSVG создаёт пустое превью.
func NewSVG() *SVG {
	return &SVG{
		stroke: "#000",
		minX:   math.MaxFloat64,
		minY:   math.MaxFloat64,
		maxX:   -math.MaxFloat64,
		maxY:   -math.MaxFloat64,
	}
}

func (s *SVG) SetLayer(name string, c Color, style LineStyle) error {
	s.stroke = strokeColor(c)
	s.dash = ""
	if style == LineHidden {
		s.dash = ` stroke-dasharray="2 1"`
	}
	return nil
}

func (s *SVG) Arc(cx, cy, r, startDeg, endDeg float64) error {
	start := arcPoint(cx, cy, r, startDeg)
	end := arcPoint(cx, cy, r, endDeg)

	span := math.Mod(endDeg-startDeg+360, 360)
	if span == 0 {
		span = 360
	}
	large := 0
	if span > 180 {
		large = 1
	}

	s.grow(cx-r, cy-r)
	s.grow(cx+r, cy+r)
	s.elements = append(s.elements, fmt.Sprintf(`<path d="M %s A %s %s 0 %d 0 %s" fill="none" stroke="%s"%s />`,
		formatPoint(start[0], -start[1]), formatFloat(r), formatFloat(r), large,
		formatPoint(end[0], -end[1]), s.stroke, s.dash))
	return nil
}

func (s *SVG) Line(x1, y1, x2, y2 float64) error {
	s.grow(x1, y1)
	s.grow(x2, y2)
	s.elements = append(s.elements, fmt.Sprintf(`<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s"%s />`,
		formatFloat(x1), formatFloat(-y1), formatFloat(x2), formatFloat(-y2), s.stroke, s.dash))
	return nil
}

func (s *SVG) Circle(cx, cy, r float64) error {
	s.grow(cx-r, cy-r)
	s.grow(cx+r, cy+r)
	s.elements = append(s.elements, fmt.Sprintf(`<circle cx="%s" cy="%s" r="%s" fill="none" stroke="%s"%s />`,
		formatFloat(cx), formatFloat(-cy), formatFloat(r), s.stroke, s.dash))
	return nil
}

// Render возвращает SVG документ с отступом margin вокруг чертежа.
func (s *SVG) Render(margin float64) string {
	minX, minY, width, height := -500.0, -500.0, 1000.0, 1000.0
	if s.minX <= s.maxX {
		minX = s.minX - margin
		minY = -s.maxY - margin
		width = s.maxX - s.minX + 2*margin
		height = s.maxY - s.minY + 2*margin
	}

	var builder strings.Builder
	builder.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	builder.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="%s %s %s %s">`,
		formatFloat(width), formatFloat(height),
		formatFloat(minX), formatFloat(minY), formatFloat(width), formatFloat(height)))
	builder.WriteString("\n")

	for _, elem := range s.elements {
		builder.WriteString("  ")
		builder.WriteString(elem)
		builder.WriteString("\n")
	}

	builder.WriteString(`</svg>`)
	return builder.String()
}

func (s *SVG) grow(x, y float64) {
	s.minX = math.Min(s.minX, x)
	s.minY = math.Min(s.minY, y)
	s.maxX = math.Max(s.maxX, x)
	s.maxY = math.Max(s.maxY, y)
}

func arcPoint(cx, cy, r, deg float64) [2]float64 {
	rad := deg * math.Pi / 180
	return [2]float64{cx + r*math.Cos(rad), cy + r*math.Sin(rad)}
}

func strokeColor(c Color) string {
	switch c {
	case ColorRed:
		return "#d62728"
	case ColorYellow:
		return "#bcbd22"
	case ColorGreen:
		return "#2ca02c"
	case ColorCyan:
		return "#17becf"
	case ColorBlue:
		return "#1f77b4"
	case ColorMagenta:
		return "#e377c2"
	}
	return "#000"
}

// ============================================================
// Formatting helpers
// ============================================================

func formatFloat(val float64) string {
	return strconv.FormatFloat(val, 'f', -1, 64)
}

func formatPoint(x, y float64) string {
	return formatFloat(x) + " " + formatFloat(y)
}
