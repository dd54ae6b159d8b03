// Package geometry строит плоскую геометрию прокладки-стадиона: наружный и
// внутренний контуры и симметричный набор болтовых отверстий вдоль
// болтовой дорожки той же формы.
//
// Начало координат в центре прокладки, ось X вдоль длинной стороны.
// Функции чистые, состояние между вызовами не хранится.
package geometry
