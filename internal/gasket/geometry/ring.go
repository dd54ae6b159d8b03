package geometry

import "math"

// ============================================================
// Hole Ring (end cap)
// ============================================================

// MaxHoleCount ограничивает число отверстий на весь шаблон.
const MaxHoleCount = 10000

// angleTolerance допускает попадание угла ровно на π/2 при делении нацело.
const angleTolerance = 1e-9

// HoleCenter задаёт центр отверстия и его радиус.
type HoleCenter struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
}

// Point возвращает центр отверстия.
func (h HoleCenter) Point() Point {
	return Point{X: h.X, Y: h.Y}
}

// Ring хранит отверстия на верхней четверти левой торцевой дуги болтовой дорожки,
// от стартового угла к точке касания с прямым участком.
type Ring struct {
	Alpha           float64 // угловой шаг по хорде E, рад
	AlphaTransition float64 // угловой шаг по хорде I, рад
	Theta0          float64
	Angles          []float64
	Centers         []HoleCenter
	// TransitionX: x первого отверстия прямого участка.
	TransitionX float64
}

// NewHoleRing раскладывает отверстия по дуге с центром (centerX, 0) и
// радиусом D/2. Итерации идут по θ = θ0 − k·α, пока θ ≥ π/2; число
// шагов считается заранее и ограничено MaxHoleCount.
func NewHoleRing(p Params, centerX float64) (Ring, error) {
	if p.E > p.D {
		return Ring{}, newError(KindInvalidChord, FieldE, "chord E=%s exceeds bolt circle diameter D=%s",
			formatFloat(p.E), formatFloat(p.D))
	}
	if p.I > p.D {
		return Ring{}, newError(KindInvalidChord, FieldI, "chord I=%s exceeds bolt circle diameter D=%s",
			formatFloat(p.I), formatFloat(p.D))
	}

	r := p.BoltRadius()
	alpha := chordAngle(p.E, p.D)
	alphaT := chordAngle(p.I, p.D)
	if alpha <= 0 || alphaT <= 0 {
		return Ring{}, newError(KindDegenerateSpacing, FieldE, "angular step is zero")
	}

	theta0 := math.Pi
	if p.HoleConfiguration == Straddled {
		theta0 = math.Pi - alpha/2
	}

	span := theta0 - math.Pi/2
	steps := math.Floor(span/alpha + angleTolerance)
	if steps+1 > MaxHoleCount {
		return Ring{}, newError(KindDegenerateSpacing, FieldE,
			"arc spacing produces more than %d holes", MaxHoleCount)
	}

	n := int(steps) + 1
	ring := Ring{
		Alpha:           alpha,
		AlphaTransition: alphaT,
		Theta0:          theta0,
		Angles:          make([]float64, 0, n),
		Centers:         make([]HoleCenter, 0, n),
	}
	for k := 0; k < n; k++ {
		theta := theta0 - float64(k)*alpha
		ring.Angles = append(ring.Angles, theta)
		ring.Centers = append(ring.Centers, HoleCenter{
			X:      r*math.Cos(theta) + centerX,
			Y:      r * math.Sin(theta),
			Radius: p.HoleRadius(),
		})
	}

	// Остаток дуги до точки касания; переходный шаг сначала проходит его,
	// затем продолжается по касательной.
	last := ring.Angles[len(ring.Angles)-1]
	remaining := math.Max(0, last-math.Pi/2)
	ring.TransitionX = centerX + r*math.Max(0, alphaT-remaining)
	return ring, nil
}

// LastAngle возвращает последний угол на дуге.
func (r Ring) LastAngle() float64 {
	return r.Angles[len(r.Angles)-1]
}

// chordAngle возвращает центральный угол хорды длины l в окружности диаметра d.
func chordAngle(l, d float64) float64 {
	return 2 * math.Asin(math.Min(1, l/d))
}
