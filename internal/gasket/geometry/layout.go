package geometry

// ============================================================
// Layout
// ============================================================

// Layout собирает всю геометрию прокладки для одного набора параметров.
type Layout struct {
	Params  Params  `json:"-"`
	Outer   Contour `json:"outer"`
	Inner   Contour `json:"inner"`
	Pattern Pattern `json:"pattern"`
	// Outside: индексы отверстий в Pattern.Holes, вышедших за сечение.
	Outside []int `json:"outside,omitempty"`
}

// Build проверяет параметры и строит контуры и отверстия. Функция чистая:
// одинаковые параметры дают одинаковый результат.
func Build(p Params) (Layout, error) {
	if err := p.Validate(); err != nil {
		return Layout{}, err
	}

	outer, inner, err := BuildContours(p)
	if err != nil {
		return Layout{}, err
	}

	pattern, err := AssemblePattern(p)
	if err != nil {
		return Layout{}, err
	}

	return Layout{
		Params:  p,
		Outer:   outer,
		Inner:   inner,
		Pattern: pattern,
		Outside: CheckContainment(p, pattern.Holes),
	}, nil
}

// HoleCount возвращает число отверстий.
func (l Layout) HoleCount() int {
	return l.Pattern.Count()
}

// Warnings перечисляет рекомендательные замечания к результату.
func (l Layout) Warnings() []string {
	var out []string
	if l.Pattern.Overlapping() {
		out = append(out, "adjacent holes overlap")
	}
	if len(l.Outside) > 0 {
		out = append(out, "holes extend outside the gasket cross-section")
	}
	return out
}
