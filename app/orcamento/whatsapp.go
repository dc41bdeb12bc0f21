package orcamento

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/ecolarcontatos-glitch/site-ecolar-sub000/app/utils/format"
	"github.com/shopspring/decimal"
)

// BuildMessage renders the orçamento as the text blob sent through the
// wa.me hand-off. Deterministic for the same lines and notes.
func BuildMessage(lines []Line, notes string) string {
	var b strings.Builder
	b.WriteString("*Orçamento - Ecolar Materiais de Construção*\n\n")

	total := decimal.Zero
	for _, line := range lines {
		subtotal := line.Subtotal()
		total = total.Add(subtotal)

		b.WriteString(fmt.Sprintf("• %s (%s)\n", line.Product.Name, line.Modality.Label()))
		unit := line.Product.Unit
		if unit == "" {
			unit = "un"
		}
		b.WriteString(fmt.Sprintf("  %d %s x %s = %s\n", line.Quantity, unit, format.BRL(line.UnitPrice), format.BRL(subtotal)))
	}

	b.WriteString(fmt.Sprintf("\n*Total: %s*\n", format.BRL(total)))

	if notes != "" {
		b.WriteString("\nObservações: ")
		b.WriteString(notes)
		b.WriteString("\n")
	}

	return b.String()
}

// Link builds the wa.me deep link. No request is made here; the storefront
// just navigates to it.
func Link(phone string, lines []Line, notes string) string {
	message := BuildMessage(lines, notes)
	// encodeURIComponent-style escaping: wa.me expects %20, not '+'.
	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return fmt.Sprintf("https://wa.me/%s?text=%s", sanitizePhone(phone), encoded)
}

func sanitizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
