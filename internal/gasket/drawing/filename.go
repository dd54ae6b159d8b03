package drawing

import (
	"fmt"

	"gasket-service/internal/gasket/geometry"
)

// FileName кодирует число отверстий и все параметры, например
// gasket_40holes_A200_B60_C190_D50_E10_F12_I10_H10_hd6_centered.dxf.
func FileName(layout geometry.Layout) string {
	return fmt.Sprintf("gasket_%dholes_%s.dxf", layout.HoleCount(), layout.Params.Slug())
}
