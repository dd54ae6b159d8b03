package geometry

import "math"

// ============================================================
// Hole Run (straight section)
// ============================================================

// runTolerance задаёт допуск при делении длины участка на шаг F.
const runTolerance = 1e-9

// Run хранит отверстия на прямом участке y = Y между точками перехода x0 и −x0.
type Run struct {
	Y       float64
	Start   float64 // x0
	End     float64 // −x0
	Spacing float64 // фактический шаг, ≤ F
	Xs      []float64
}

// NewHoleRun заполняет участок [x0, −x0] с шагом не больше f. Укороченный
// последний шаг распределяется по всему участку поровну, поэтому ряд
// симметричен относительно x = 0 и заканчивается ровно в −x0.
//
// Шаг ряда равен f, только если длина участка кратна f, иначе он строго
// меньше f. Поэтому при диаметре отверстия, равном f, соседние отверстия
// ряда пересекаются. Validate это допускает; пересечение видно в
// Pattern.Overlapping и в Layout.Warnings.
//
// Участок короче f/2 вырождается в одно отверстие на x = 0. Если точки
// перехода разошлись (x0 > 0), на участке отверстий нет.
func NewHoleRun(x0, y, f float64) (Run, error) {
	if f <= 0 || math.IsNaN(f) {
		return Run{}, newError(KindNonPositiveDimension, FieldF, "must be positive, got %s", formatFloat(f))
	}

	run := Run{Y: y, Start: x0, End: -x0}
	length := -2 * x0

	switch {
	case length < -runTolerance:
		return run, nil
	case length < f/2:
		run.Start, run.End = 0, 0
		run.Xs = []float64{0}
		return run, nil
	}

	intervals := math.Ceil(length/f - runTolerance)
	if intervals < 1 {
		intervals = 1
	}
	if intervals+1 > MaxHoleCount {
		return Run{}, newError(KindDegenerateSpacing, FieldF,
			"straight spacing produces more than %d holes", MaxHoleCount)
	}

	n := int(intervals)
	run.Spacing = length / intervals
	run.Xs = make([]float64, 0, n+1)
	for k := 0; k < n; k++ {
		run.Xs = append(run.Xs, x0+float64(k)*run.Spacing)
	}
	// Последняя точка ставится точно, без накопленной ошибки.
	run.Xs = append(run.Xs, -x0)
	return run, nil
}

// Centers возвращает отверстия участка с радиусом r.
func (r Run) Centers(radius float64) []HoleCenter {
	out := make([]HoleCenter, 0, len(r.Xs))
	for _, x := range r.Xs {
		out = append(out, HoleCenter{X: x, Y: r.Y, Radius: radius})
	}
	return out
}
