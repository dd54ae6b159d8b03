package geometry

import "fmt"

// ============================================================
// Geometry Errors
// ============================================================

// Kind классифицирует ошибку валидации или построения.
type Kind string

const (
	KindMissingParameter         Kind = "MissingParameter"
	KindOrderingViolation        Kind = "OrderingViolation"
	KindNonPositiveDimension     Kind = "NonPositiveDimension"
	KindInvalidHoleConfiguration Kind = "InvalidHoleConfiguration"
	KindInvalidChord             Kind = "InvalidChord"
	KindHoleDiameterTooLarge     Kind = "HoleDiameterTooLarge"
	KindDegenerateCrossSection   Kind = "DegenerateCrossSection"
	KindDegenerateSpacing        Kind = "DegenerateSpacing"
	KindUnauthorized             Kind = "Unauthorized"
)

// Error описывает первую найденную ошибку валидации или построения.
// Field содержит имя параметра, если ошибка к нему относится.
type Error struct {
	Kind    Kind
	Field   string
	Message string
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s (%s): %s", e.Kind, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is сравнивает только Kind, чтобы работал errors.Is с сентинелами ниже.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrMissingParameter         = &Error{Kind: KindMissingParameter}
	ErrOrderingViolation        = &Error{Kind: KindOrderingViolation}
	ErrNonPositiveDimension     = &Error{Kind: KindNonPositiveDimension}
	ErrInvalidHoleConfiguration = &Error{Kind: KindInvalidHoleConfiguration}
	ErrInvalidChord             = &Error{Kind: KindInvalidChord}
	ErrHoleDiameterTooLarge     = &Error{Kind: KindHoleDiameterTooLarge}
	ErrDegenerateCrossSection   = &Error{Kind: KindDegenerateCrossSection}
	ErrDegenerateSpacing        = &Error{Kind: KindDegenerateSpacing}
	ErrUnauthorized             = &Error{Kind: KindUnauthorized}
)

func newError(kind Kind, field, format string, args ...any) *Error {
	return &Error{Kind: kind, Field: field, Message: fmt.Sprintf(format, args...)}
}
