package main

import (
	"fmt"
	"io"
	"path/filepath"

	"gasket-service/internal/gasket/drawing"
	"gasket-service/internal/gasket/geometry"

	"github.com/spf13/cobra"
)

// ============================================================
// draw: одноразовая генерация без HTTP
// ============================================================

type drawOptions struct {
	raw    map[string]string
	output string
	unit   string
	dryRun bool
}

func newDrawCmd() *cobra.Command {
	opts := drawOptions{raw: make(map[string]string)}
	values := make(map[string]*string)

	cmd := &cobra.Command{
		Use:   "draw",
		Short: "Generate a DXF file from dimensions",
		Example: "  gasket draw --A 200 --B 60 --C 190 --D 50 --E 10 --F 12 --I 10 --H 10 \\\n" +
			"    --holeDiameter 6 --holeConfiguration centered -o out/",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Незаданные флаги в контракт не попадают: так ParseParams
			// вернёт MissingParameter, как и для HTTP.
			for field, v := range values {
				if cmd.Flags().Changed(field) {
					opts.raw[field] = *v
				}
			}
			return runDraw(cmd.OutOrStdout(), opts)
		},
	}

	fields := append(append([]string{}, geometry.NumericFields...), geometry.FieldHoleConfiguration)
	for _, field := range fields {
		values[field] = cmd.Flags().String(field, "", "dimension "+field)
	}
	cmd.Flags().StringVarP(&opts.output, "output", "o", ".", "output directory or .dxf file")
	cmd.Flags().StringVar(&opts.unit, "unit", "mm", "DXF unit: mm, cm, m, in")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "print draw calls instead of writing a file")
	return cmd
}

func runDraw(w io.Writer, opts drawOptions) error {
	params, err := geometry.ParseParams(opts.raw)
	if err != nil {
		return err
	}
	layout, err := geometry.Build(params)
	if err != nil {
		return err
	}
	unit, err := drawing.ParseUnit(opts.unit)
	if err != nil {
		return err
	}

	for _, warning := range layout.Warnings() {
		fmt.Fprintf(w, "warning: %s\n", warning)
	}

	if opts.dryRun {
		rec := &drawing.Recorder{}
		if err := drawing.Emit(drawing.WithUnit(rec, unit), layout); err != nil {
			return err
		}
		for _, call := range rec.Calls {
			fmt.Fprintln(w, call.String())
		}
		fmt.Fprintf(w, "holes: %d\n", layout.HoleCount())
		return nil
	}

	path := opts.output
	if filepath.Ext(path) != ".dxf" {
		path = filepath.Join(path, drawing.FileName(layout))
	}

	doc := drawing.NewDXF()
	if err := drawing.Emit(drawing.WithUnit(doc, unit), layout); err != nil {
		return err
	}
	if err := doc.SaveAs(path); err != nil {
		return err
	}
	fmt.Fprintf(w, "%s (%d holes)\n", path, layout.HoleCount())
	return nil
}
