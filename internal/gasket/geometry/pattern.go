package geometry

import (
	"math"
	"sort"

	"github.com/samber/lo"
)

// ============================================================
// Hole Pattern Assembler
// ============================================================

// gridScale задаёт сетку 1e-9 для склейки совпадающих центров.
const gridScale = 1e9

// Pattern хранит полный симметричный набор отверстий.
type Pattern struct {
	Params Params       `json:"-"`
	Ring   Ring         `json:"-"`
	Run    Run          `json:"-"`
	Holes  []HoleCenter `json:"holes"`
}

// AssemblePattern строит одну четверть (верх левого торца и левая половина
// верхнего прямого участка) и отражает её относительно осей X и Y.
// Отверстие в крайней точке (centered) попадает в набор один раз на торец.
func AssemblePattern(p Params) (Pattern, error) {
	if err := p.Validate(); err != nil {
		return Pattern{}, err
	}

	ring, err := NewHoleRing(p, -p.BoltCenterX())
	if err != nil {
		return Pattern{}, err
	}

	run, err := NewHoleRun(ring.TransitionX, p.BoltRadius(), p.F)
	if err != nil {
		return Pattern{}, err
	}

	quadrant := append([]HoleCenter{}, ring.Centers...)
	quadrant = append(quadrant, lo.Filter(run.Centers(p.HoleRadius()), func(h HoleCenter, _ int) bool {
		return h.X <= runTolerance
	})...)
	if len(quadrant)*4 > MaxHoleCount {
		return Pattern{}, newError(KindDegenerateSpacing, "",
			"pattern needs more than %d holes", MaxHoleCount)
	}

	mirrored := lo.FlatMap(quadrant, func(h HoleCenter, _ int) []HoleCenter {
		h.X, h.Y = snap(h.X), snap(h.Y)
		mx, my := snap(-h.X), snap(-h.Y)
		return []HoleCenter{
			h,
			{X: mx, Y: h.Y, Radius: h.Radius},
			{X: h.X, Y: my, Radius: h.Radius},
			{X: mx, Y: my, Radius: h.Radius},
		}
	})
	holes := lo.UniqBy(mirrored, gridKey)
	sortPolar(holes)

	return Pattern{
		Params: p,
		Ring:   ring,
		Run:    run,
		Holes:  holes,
	}, nil
}

// Count возвращает число отверстий.
func (pt Pattern) Count() int {
	return len(pt.Holes)
}

// MinSpacing возвращает минимальное расстояние между центрами. Для одного отверстия +Inf.
func (pt Pattern) MinSpacing() float64 {
	best := math.Inf(1)
	for i := 0; i < len(pt.Holes); i++ {
		for j := i + 1; j < len(pt.Holes); j++ {
			if d := distance(pt.Holes[i].Point(), pt.Holes[j].Point()); d < best {
				best = d
			}
		}
	}
	return best
}

// Overlapping сообщает, пересекаются ли диски каких-либо двух отверстий.
// Проверка ограничений в Validate рекомендательная, это фактический результат.
func (pt Pattern) Overlapping() bool {
	return pt.MinSpacing() < pt.Params.HoleDiameter-runTolerance
}

// ExtremePoints возвращает левую и правую крайние точки болтовой дорожки.
func (pt Pattern) ExtremePoints() [2]Point {
	x := pt.Params.BoltCenterX() + pt.Params.BoltRadius()
	return [2]Point{{X: -x, Y: 0}, {X: x, Y: 0}}
}

type gridPoint struct {
	x, y int64
}

func gridKey(h HoleCenter) gridPoint {
	return gridPoint{
		x: int64(math.Round(h.X * gridScale)),
		y: int64(math.Round(h.Y * gridScale)),
	}
}

func snap(v float64) float64 {
	if math.Abs(v) < runTolerance {
		return 0
	}
	return v
}

// sortPolar упорядочивает отверстия по углу вокруг начала координат,
// при равных углах по удалённости.
func sortPolar(holes []HoleCenter) {
	sort.SliceStable(holes, func(i, j int) bool {
		ai := math.Atan2(holes[i].Y, holes[i].X)
		aj := math.Atan2(holes[j].Y, holes[j].X)
		if ai != aj {
			return ai < aj
		}
		return math.Hypot(holes[i].X, holes[i].Y) < math.Hypot(holes[j].X, holes[j].Y)
	})
}
