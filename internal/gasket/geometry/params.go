package geometry

import (
	"math"
	"strconv"
	"strings"
)

// ============================================================
// Parameters
// ============================================================

// HoleConfiguration задаёт симметрию отверстий относительно крайней точки
// болтовой окружности.
type HoleConfiguration string

const (
	// Centered: отверстие ровно в крайней точке.
	Centered HoleConfiguration = "centered"
	// Straddled: крайняя точка посередине между двумя отверстиями.
	Straddled HoleConfiguration = "straddled"
)

// Имена полей во входном контракте (query string, JSON, флаги CLI).
const (
	FieldA                 = "A"
	FieldB                 = "B"
	FieldC                 = "C"
	FieldD                 = "D"
	FieldE                 = "E"
	FieldF                 = "F"
	FieldI                 = "I"
	FieldH                 = "H"
	FieldHoleDiameter      = "holeDiameter"
	FieldHoleConfiguration = "holeConfiguration"
)

// NumericFields перечисляет числовые поля в порядке проверки.
var NumericFields = []string{
	FieldA, FieldB, FieldC, FieldD, FieldE, FieldF, FieldI, FieldH, FieldHoleDiameter,
}

// Params хранит размеры прокладки. Передаётся по значению и не меняется.
type Params struct {
	A, B float64 // наружный габарит: длина / ширина
	C, D float64 // габарит болтовой дорожки: длина / ширина
	E    float64 // шаг отверстий по дуге (хорда)
	F    float64 // шаг отверстий по прямому участку
	I    float64 // переходный шаг между дугой и прямым участком
	H    float64 // ширина сечения

	HoleDiameter      float64
	HoleConfiguration HoleConfiguration
}

// ParseParams разбирает плоский набор именованных полей. Отсутствующее,
// пустое или нечисловое поле даёт MissingParameter.
func ParseParams(raw map[string]string) (Params, error) {
	values := make(map[string]float64, len(NumericFields))
	for _, field := range NumericFields {
		text := strings.TrimSpace(raw[field])
		if text == "" {
			return Params{}, newError(KindMissingParameter, field, "parameter is required")
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return Params{}, newError(KindMissingParameter, field, "parameter %q is not a number", text)
		}
		values[field] = v
	}

	cfgText := strings.TrimSpace(raw[FieldHoleConfiguration])
	if cfgText == "" {
		return Params{}, newError(KindMissingParameter, FieldHoleConfiguration, "parameter is required")
	}
	cfg, err := ParseHoleConfiguration(cfgText)
	if err != nil {
		return Params{}, err
	}

	return Params{
		A:                 values[FieldA],
		B:                 values[FieldB],
		C:                 values[FieldC],
		D:                 values[FieldD],
		E:                 values[FieldE],
		F:                 values[FieldF],
		I:                 values[FieldI],
		H:                 values[FieldH],
		HoleDiameter:      values[FieldHoleDiameter],
		HoleConfiguration: cfg,
	}, nil
}

// ParseHoleConfiguration принимает "centered" или "straddled" без учёта регистра.
func ParseHoleConfiguration(text string) (HoleConfiguration, error) {
	switch HoleConfiguration(strings.ToLower(strings.TrimSpace(text))) {
	case Centered:
		return Centered, nil
	case Straddled:
		return Straddled, nil
	}
	return "", newError(KindInvalidHoleConfiguration, FieldHoleConfiguration,
		"%q is not one of %q, %q", text, Centered, Straddled)
}

// Validate возвращает первое нарушение. Геометрия строится только после
// успешной проверки.
func (p Params) Validate() error {
	if p.HoleConfiguration != Centered && p.HoleConfiguration != Straddled {
		return newError(KindInvalidHoleConfiguration, FieldHoleConfiguration,
			"%q is not one of %q, %q", p.HoleConfiguration, Centered, Straddled)
	}

	for _, field := range NumericFields {
		v := p.value(field)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return newError(KindMissingParameter, field, "parameter is not a finite number")
		}
		if v <= 0 {
			return newError(KindNonPositiveDimension, field, "must be positive, got %s", formatFloat(v))
		}
	}

	orderings := []struct {
		broken bool
		field  string
		rule   string
	}{
		{p.B >= p.A, FieldB, "B must be less than A"},
		{p.H >= p.A, FieldH, "H must be less than A"},
		{p.H >= p.B, FieldH, "H must be less than B"},
		{p.D > p.C, FieldD, "D must not exceed C"},
		{p.C > p.A, FieldC, "C must not exceed A"},
		{p.D > p.B, FieldD, "D must not exceed B"},
	}
	for _, o := range orderings {
		if o.broken {
			return newError(KindOrderingViolation, o.field, "%s", o.rule)
		}
	}

	if p.InnerRadius() <= 0 {
		return newError(KindDegenerateCrossSection, FieldH,
			"inner radius B/2 - H = %s is not positive", formatFloat(p.InnerRadius()))
	}

	if p.E > p.D {
		return newError(KindInvalidChord, FieldE, "chord E=%s exceeds bolt circle diameter D=%s",
			formatFloat(p.E), formatFloat(p.D))
	}
	if p.I > p.D {
		return newError(KindInvalidChord, FieldI, "chord I=%s exceeds bolt circle diameter D=%s",
			formatFloat(p.I), formatFloat(p.D))
	}

	if limit := math.Min(p.E, math.Min(p.F, p.I)); p.HoleDiameter > limit {
		return newError(KindHoleDiameterTooLarge, FieldHoleDiameter,
			"hole diameter %s exceeds smallest spacing %s", formatFloat(p.HoleDiameter), formatFloat(limit))
	}
	return nil
}

// OuterRadius возвращает радиус наружных дуг.
func (p Params) OuterRadius() float64 { return p.B / 2 }

// InnerRadius возвращает радиус внутренних дуг.
func (p Params) InnerRadius() float64 { return p.B/2 - p.H }

// ContourCenterX возвращает смещение центров дуг контура от оси Y.
func (p Params) ContourCenterX() float64 { return p.A/2 - p.B/2 }

// BoltRadius возвращает радиус дуг болтовой дорожки.
func (p Params) BoltRadius() float64 { return p.D / 2 }

// BoltCenterX возвращает смещение центров дуг болтовой дорожки от оси Y.
func (p Params) BoltCenterX() float64 { return p.C/2 - p.D/2 }

// HoleRadius возвращает радиус отверстия.
func (p Params) HoleRadius() float64 { return p.HoleDiameter / 2 }

// Slug кодирует все параметры для имени файла.
func (p Params) Slug() string {
	var b strings.Builder
	for i, field := range NumericFields {
		if i > 0 {
			b.WriteByte('_')
		}
		name := field
		if field == FieldHoleDiameter {
			name = "hd"
		}
		b.WriteString(name)
		b.WriteString(formatFloat(p.value(field)))
	}
	b.WriteByte('_')
	b.WriteString(string(p.HoleConfiguration))
	return b.String()
}

// Raw возвращает параметры в виде входного контракта.
func (p Params) Raw() map[string]string {
	raw := make(map[string]string, len(NumericFields)+1)
	for _, field := range NumericFields {
		raw[field] = formatFloat(p.value(field))
	}
	raw[FieldHoleConfiguration] = string(p.HoleConfiguration)
	return raw
}

func (p Params) value(field string) float64 {
	switch field {
	case FieldA:
		return p.A
	case FieldB:
		return p.B
	case FieldC:
		return p.C
	case FieldD:
		return p.D
	case FieldE:
		return p.E
	case FieldF:
		return p.F
	case FieldI:
		return p.I
	case FieldH:
		return p.H
	case FieldHoleDiameter:
		return p.HoleDiameter
	}
	return math.NaN()
}

func formatFloat(val float64) string {
	return strconv.FormatFloat(val, 'f', -1, 64)
}
