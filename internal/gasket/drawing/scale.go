package drawing

// Scaled умножает все координаты и радиусы на Factor перед передачей в Sink.
type Scaled struct {
	Sink   Sink
	Factor float64
}

// unitSetter реализуют sink, умеющие записать единицу в документ.
type unitSetter interface {
	SetUnit(Unit)
}

// WithUnit оборачивает sink переводом миллиметров в unit. Если sink
// хранит единицу (DXF), она выставляется. Для миллиметров sink
// возвращается как есть.
func WithUnit(sink Sink, unit Unit) Sink {
	if us, ok := sink.(unitSetter); ok {
		us.SetUnit(unit)
	}
	factor := unit.ScaleTo()
	if factor == 1 {
		return sink
	}
	return Scaled{Sink: sink, Factor: factor}
}

func (s Scaled) SetLayer(name string, c Color, style LineStyle) error {
	return s.Sink.SetLayer(name, c, style)
}

func (s Scaled) Arc(cx, cy, r, startDeg, endDeg float64) error {
	return s.Sink.Arc(cx*s.Factor, cy*s.Factor, r*s.Factor, startDeg, endDeg)
}

func (s Scaled) Line(x1, y1, x2, y2 float64) error {
	return s.Sink.Line(x1*s.Factor, y1*s.Factor, x2*s.Factor, y2*s.Factor)
}

func (s Scaled) Circle(cx, cy, r float64) error {
	return s.Sink.Circle(cx*s.Factor, cy*s.Factor, r*s.Factor)
}
