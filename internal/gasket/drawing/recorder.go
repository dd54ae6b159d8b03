package drawing

import (
	"fmt"
	"strconv"
	"strings"
)

// Call описывает один вызов Sink, записанный Recorder.
type Call struct {
	Op   string
	Name string
	Args []float64
}

func (c Call) String() string {
	parts := make([]string, 0, len(c.Args))
	for _, a := range c.Args {
		parts = append(parts, strconv.FormatFloat(a, 'f', 4, 64))
	}
	if c.Name != "" {
		return fmt.Sprintf("%s %s", c.Op, c.Name)
	}
	return fmt.Sprintf("%s %s", c.Op, strings.Join(parts, " "))
}

// Recorder запоминает вызовы по порядку.
type Recorder struct {
	Calls []Call
}

func (r *Recorder) SetLayer(name string, c Color, style LineStyle) error {
	r.Calls = append(r.Calls, Call{Op: "layer", Name: fmt.Sprintf("%s color=%d style=%s", name, c, style)})
	return nil
}

func (r *Recorder) Arc(cx, cy, rad, startDeg, endDeg float64) error {
	r.Calls = append(r.Calls, Call{Op: "arc", Args: []float64{cx, cy, rad, startDeg, endDeg}})
	return nil
}

func (r *Recorder) Line(x1, y1, x2, y2 float64) error {
	r.Calls = append(r.Calls, Call{Op: "line", Args: []float64{x1, y1, x2, y2}})
	return nil
}

func (r *Recorder) Circle(cx, cy, rad float64) error {
	r.Calls = append(r.Calls, Call{Op: "circle", Args: []float64{cx, cy, rad}})
	return nil
}

// Count возвращает число вызовов операции op.
func (r *Recorder) Count(op string) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}
