package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/blackwell-systems/bookstorectl/internal/loyalty"
	"github.com/blackwell-systems/bookstorectl/internal/store"
)

// RenderReceipt formats a checkout receipt for terminal display.
func RenderReceipt(shopName string, books []*store.Book, r loyalty.Receipt) string {
	labelStyle := lipgloss.NewStyle().Foreground(ColorGray).Width(16)

	var b strings.Builder
	b.WriteString(StyleHeader.Render(shopName + " receipt"))
	b.WriteString("\n\n")

	for _, bk := range books {
		b.WriteString(fmt.Sprintf("  %-36s %s\n", bk.Title,
			StylePrice.Render(fmt.Sprintf("$%.2f", bk.Price))))
	}
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("Subtotal"))
	b.WriteString(fmt.Sprintf("$%.2f\n", r.RawTotal))

	if r.Redeemed > 0 {
		b.WriteString(labelStyle.Render("Points applied"))
		b.WriteString(fmt.Sprintf("-$%.2f\n", r.Redeemed))
	}

	b.WriteString(labelStyle.Render("Total"))
	b.WriteString(StylePrice.Render(fmt.Sprintf("$%.2f", r.FinalCost)))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Points earned"))
	b.WriteString(fmt.Sprintf("%d\n", r.Earned))
	b.WriteString(labelStyle.Render("Points balance"))
	b.WriteString(fmt.Sprintf("%d\n", r.Points))
	b.WriteString(labelStyle.Render("Membership"))
	b.WriteString(StyleStatus.Render(string(r.Status)))
	b.WriteString("\n")

	return StyleBorder.Render(lipgloss.NewStyle().Padding(0, 2).Render(b.String()))
}
