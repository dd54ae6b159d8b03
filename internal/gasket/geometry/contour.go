package geometry

import "math"

// ============================================================
// Primitives
// ============================================================

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Arc идёт против часовой стрелки от Start к End (градусы), как в DXF.
type Arc struct {
	Center Point   `json:"center"`
	Radius float64 `json:"radius"`
	Start  float64 `json:"start"`
	End    float64 `json:"end"`
}

// StartPoint возвращает точку дуги на угле Start.
func (a Arc) StartPoint() Point {
	return a.pointAt(a.Start)
}

// EndPoint возвращает точку дуги на угле End.
func (a Arc) EndPoint() Point {
	return a.pointAt(a.End)
}

func (a Arc) pointAt(deg float64) Point {
	rad := deg * math.Pi / 180
	return Point{
		X: a.Center.X + a.Radius*math.Cos(rad),
		Y: a.Center.Y + a.Radius*math.Sin(rad),
	}
}

type Line struct {
	From Point `json:"from"`
	To   Point `json:"to"`
}

// Length возвращает длину отрезка.
func (l Line) Length() float64 {
	return distance(l.From, l.To)
}

// ============================================================
// Contour Builder
// ============================================================

// Contour описывает замкнутый стадион: правая дуга, верхний отрезок, левая дуга,
// нижний отрезок. Обход против часовой стрелки.
type Contour struct {
	Right  Arc  `json:"right"`
	Top    Line `json:"top"`
	Left   Arc  `json:"left"`
	Bottom Line `json:"bottom"`
}

// BuildContours строит наружный и внутренний контуры. Внутренний контур
// использует те же центры дуг, радиус уменьшен на H.
func BuildContours(p Params) (outer, inner Contour, err error) {
	if p.InnerRadius() <= 0 {
		return Contour{}, Contour{}, newError(KindDegenerateCrossSection, FieldH,
			"inner radius B/2 - H = %s is not positive", formatFloat(p.InnerRadius()))
	}

	cx := p.ContourCenterX()
	outer = stadium(cx, p.OuterRadius())
	inner = stadium(cx, p.InnerRadius())
	return outer, inner, nil
}

func stadium(cx, r float64) Contour {
	return Contour{
		Right:  Arc{Center: Point{X: cx, Y: 0}, Radius: r, Start: -90, End: 90},
		Top:    Line{From: Point{X: cx, Y: r}, To: Point{X: -cx, Y: r}},
		Left:   Arc{Center: Point{X: -cx, Y: 0}, Radius: r, Start: 90, End: 270},
		Bottom: Line{From: Point{X: -cx, Y: -r}, To: Point{X: cx, Y: -r}},
	}
}

// Closed проверяет, что концы соседних примитивов совпадают с точностью tol.
func (c Contour) Closed(tol float64) bool {
	joints := [][2]Point{
		{c.Right.EndPoint(), c.Top.From},
		{c.Top.To, c.Left.StartPoint()},
		{c.Left.EndPoint(), c.Bottom.From},
		{c.Bottom.To, c.Right.StartPoint()},
	}
	for _, j := range joints {
		if distance(j[0], j[1]) > tol {
			return false
		}
	}
	return true
}

// Lines возвращает оба прямых участка.
func (c Contour) Lines() []Line {
	return []Line{c.Top, c.Bottom}
}

func distance(p1, p2 Point) float64 {
	dx := p1.X - p2.X
	dy := p1.Y - p2.Y
	return math.Sqrt(dx*dx + dy*dy)
}
