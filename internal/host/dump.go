package host

import (
	"fmt"
	"strings"

	"worldlang/pkg/color"
	"worldlang/pkg/parser/codegen"
)

// dump prints the lowered code units, indenting by block depth
func (h *Host) dump(code []codegen.CodeUnit) {
	fmt.Fprintln(h.Out, color.GreenText("=== Code Units ==="))
	if len(code) == 0 {
		fmt.Fprintln(h.Out, color.GrayText("No code generated."))
		return
	}

	depth := 0
	for i, unit := range code {
		if unit.IsOp(codegen.OpEndBlock) && depth > 0 {
			depth--
		}

		fmt.Fprintf(h.Out, "%s: %s(%s, %s)\n",
			color.CyanText(fmt.Sprintf("%4d", i)),
			strings.Repeat("  ", depth),
			color.YellowText(unit.Kind.String()),
			unitText(unit))

		if unit.IsOp(codegen.OpStartBlock) {
			depth++
		}
	}
}

func unitText(unit codegen.CodeUnit) string {
	switch unit.Kind {
	case codegen.KindString:
		return color.MagentaText(fmt.Sprintf("%q", unit.Text))
	case codegen.KindOperation:
		return color.GrayText(unit.Text)
	default:
		return color.BlueText(unit.Text)
	}
}
