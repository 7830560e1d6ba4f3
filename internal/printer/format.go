package printer

import (
	"fmt"
	"strings"

	"github.com/danie1204clmm-ctrl/diegao/internal/order"
)

// 58mm paper: 32 columns, 17 of them for the item name.
const (
	paperWidth  = 32
	nameWidth   = 17
	nameTruncAt = 14
)

var (
	bannerLine  = strings.Repeat("=", paperWidth)
	dividerLine = strings.Repeat("-", paperWidth)
)

// FormatReceipt renders one order into the directive sequence for a
// fixed-width receipt. It is a pure transform; it never touches
// hardware and never fails.
func FormatReceipt(o *order.Order) []Instruction {
	ins := []Instruction{
		alignTo(AlignCenter),
		text(bannerLine + "\n"),
		textScaled("PASTELARIA DIEGOVES\n", 2, 2),
		text(bannerLine + "\n\n"),

		textScaled(fmt.Sprintf("PEDIDO No %s\n", o.ID), 1, 1),
		text(o.PlacedAt + "\n\n"),

		alignTo(AlignLeft),
		text(dividerLine + "\n"),
		text("ITEM             QTD    VALOR\n"),
		text(dividerLine + "\n"),
	}

	for _, item := range o.Items {
		qty := o.Quantities[item.ID]
		subtotal := item.Price * float64(qty)
		ins = append(ins, text(fmt.Sprintf("%s%3d  R$%8.2f\n", padName(item.Name), qty, subtotal)))
	}

	ins = append(ins,
		text(dividerLine+"\n"),
		alignTo(AlignRight),
		textScaled(fmt.Sprintf("TOTAL: R$ %.2f\n\n", o.Total), 1, 1),

		alignTo(AlignCenter),
		text(bannerLine+"\n"),
		text("Obrigado pela preferencia!\n"),
		text(bannerLine+"\n\n\n"),
		cutPaper(),
	)
	return ins
}

// FormatTestPage renders the printer test page.
func FormatTestPage() []Instruction {
	return []Instruction{
		alignTo(AlignCenter),
		textScaled("TESTE DE IMPRESSAO\n\n", 2, 2),
		text("Impressora conectada!\n"),
		text("Sistema funcionando.\n\n\n"),
		cutPaper(),
	}
}

// padName truncates and pads a product name to the fixed item column.
// Rune counts, not bytes, so accented names keep their width.
func padName(name string) string {
	runes := []rune(name)
	if len(runes) > nameWidth {
		return string(runes[:nameTruncAt]) + "..."
	}
	return name + strings.Repeat(" ", nameWidth-len(runes))
}
