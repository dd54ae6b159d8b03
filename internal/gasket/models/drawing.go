package models

import "gasket-service/internal/gasket/geometry"

// ============================================================
// Drawing Record
// ============================================================

type DrawingRecord struct {
	ID        string            `json:"id"`
	FileName  string            `json:"file_name"`
	Path      string            `json:"-"`
	HoleCount int               `json:"hole_count"`
	Params    map[string]string `json:"params"`
	Unit      string            `json:"unit"`
	CreatedAt string            `json:"created_at"`
}

// ============================================================
// API payloads
// ============================================================

type HolesResponse struct {
	Count      int                   `json:"count"`
	MinSpacing float64               `json:"min_spacing"`
	Holes      []geometry.HoleCenter `json:"holes"`
	Outside    []int                 `json:"outside,omitempty"`
	Warnings   []string              `json:"warnings,omitempty"`
	FileName   string                `json:"file_name"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}
