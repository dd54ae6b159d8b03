package geometry

import (
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
)

// ============================================================
// Containment
// ============================================================

// containmentTolerance допускает касание отверстием границы сечения.
const containmentTolerance = 1e-9

// Band возвращает SDF сечения прокладки: наружный стадион минус внутренний.
// Скруглённый прямоугольник с радиусом, равным половине ширины, и есть
// ровно стадион.
func Band(p Params) sdf.SDF2 {
	outer := sdf.Box2D(v2.Vec{X: p.A, Y: p.B}, p.OuterRadius())
	inner := sdf.Box2D(v2.Vec{X: p.A - 2*p.H, Y: p.B - 2*p.H}, p.InnerRadius())
	return sdf.Difference2D(outer, inner)
}

// CheckContainment возвращает индексы отверстий, диск которых выходит за
// пределы сечения. Результат рекомендательный и не блокирует построение.
func CheckContainment(p Params, holes []HoleCenter) []int {
	band := Band(p)

	var outside []int
	for i, h := range holes {
		d := band.Evaluate(v2.Vec{X: h.X, Y: h.Y})
		if d > -h.Radius+containmentTolerance {
			outside = append(outside, i)
		}
	}
	return outside
}
