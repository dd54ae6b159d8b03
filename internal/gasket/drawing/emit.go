package drawing

import (
	"fmt"

	"gasket-service/internal/gasket/geometry"
)

// ============================================================
// Emit
// ============================================================

// Emit выводит контуры и отверстия в sink: слой outer, слой inner, слой holes.
func Emit(sink Sink, layout geometry.Layout) error {
	if err := emitContour(sink, LayerOuter, layout.Outer); err != nil {
		return fmt.Errorf("outer contour: %w", err)
	}
	if err := emitContour(sink, LayerInner, layout.Inner); err != nil {
		return fmt.Errorf("inner contour: %w", err)
	}

	if err := sink.SetLayer(LayerHoles.Name, LayerHoles.Color, LayerHoles.Style); err != nil {
		return fmt.Errorf("holes layer: %w", err)
	}
	for _, h := range layout.Pattern.Holes {
		if err := sink.Circle(h.X, h.Y, h.Radius); err != nil {
			return fmt.Errorf("hole at (%g, %g): %w", h.X, h.Y, err)
		}
	}
	return nil
}

func emitContour(sink Sink, layer Layer, c geometry.Contour) error {
	if err := sink.SetLayer(layer.Name, layer.Color, layer.Style); err != nil {
		return err
	}
	if err := emitArc(sink, c.Right); err != nil {
		return err
	}
	if err := emitLine(sink, c.Top); err != nil {
		return err
	}
	if err := emitArc(sink, c.Left); err != nil {
		return err
	}
	return emitLine(sink, c.Bottom)
}

func emitArc(sink Sink, a geometry.Arc) error {
	return sink.Arc(a.Center.X, a.Center.Y, a.Radius, a.Start, a.End)
}

func emitLine(sink Sink, l geometry.Line) error {
	return sink.Line(l.From.X, l.From.Y, l.To.X, l.To.Y)
}
