package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/levosilimo/steamlens/internal/steam"
)

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return "Inspector closed.\n"
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	b.WriteString(m.renderMiniProfile())
	b.WriteString("\n")

	b.WriteString(m.renderItems())
	b.WriteString("\n")

	b.WriteString(m.renderFooter())

	if m.err != nil && time.Since(m.errorTime) < errorDisplayTime {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %s", m.err)))
	}

	return b.String()
}

// renderHeader renders the title line with the resolved id and auto state.
func (m Model) renderHeader() string {
	id := m.id32
	if id == "" {
		id = "not set"
	}

	auto := "auto: off"
	if m.auto {
		auto = autoOnStyle.Render("auto: on")
	}

	return headerStyle.Render("steamlens") + "  " +
		footerStyle.Render(fmt.Sprintf("id32: %s", id)) + "  " + auto
}

// renderMiniProfile renders the mini-profile panel.
func (m Model) renderMiniProfile() string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("Profile"))
	b.WriteString("\n")

	switch {
	case m.loadingProfile:
		b.WriteString(m.spinner.View())
		b.WriteString(" loading profile...\n")

	case m.miniProfile.Empty():
		b.WriteString(footerStyle.Render("no profile loaded"))
		b.WriteString("\n")

	default:
		p := m.miniProfile
		b.WriteString(p.Persona)
		if p.Status != "" {
			b.WriteString(" ")
			b.WriteString(getStatusStyle(p.Status).Render("(" + p.Status + ")"))
		}
		if p.Level != "" {
			b.WriteString(fmt.Sprintf("  level %s", p.Level))
		}
		b.WriteString("\n")
		if p.Game != "" {
			b.WriteString(statusInGameStyle.Render("playing " + p.Game))
			b.WriteString("\n")
		}
		if p.BadgeName != "" {
			b.WriteString(footerStyle.Render("badge: " + p.BadgeName))
			b.WriteString("\n")
		}
		if p.BackgroundVideoURL != "" {
			b.WriteString(footerStyle.Render("animated background: " + p.BackgroundVideoURL))
			b.WriteString("\n")
		} else if p.BackgroundURL != "" {
			b.WriteString(footerStyle.Render("background: " + p.BackgroundURL))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// renderItems renders the equipped items table.
func (m Model) renderItems() string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("Equipped Items"))
	b.WriteString("\n")

	if m.loadingItems && len(m.items) == 0 {
		b.WriteString(m.spinner.View())
		b.WriteString(" loading items...\n")
		return b.String()
	}

	if len(m.items) == 0 {
		b.WriteString(footerStyle.Render("no equipped items"))
		b.WriteString("\n")
		return b.String()
	}

	for i, item := range m.items {
		line := fmt.Sprintf("%-32s %-8s %s", truncate(item.ItemTitle, 32), m.renderPoints(item), m.renderPrice(item))
		if item.IsVideo() {
			line += " " + footerStyle.Render("[video]")
		}
		if i == m.selectedIdx && m.focus == focusItems {
			line = selectedRowStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

// renderPoints renders the point cost, dimmed when the points link is not
// followable.
func (m Model) renderPoints(item steam.EquippedItem) string {
	cost := item.PointCost + "pt"
	if !item.IsActiveDefinition {
		return disabledStyle.Render(cost)
	}
	return cost
}

// renderPrice renders the market price cell: a spinner while that item's
// price lookup is in flight, the price once loaded, and a disabled label
// for items without a market listing.
func (m Model) renderPrice(item steam.EquippedItem) string {
	if item.ItemMarketURI == "" {
		return disabledStyle.Render("market")
	}

	switch item.PriceStatus {
	case steam.PriceLoading:
		return m.spinner.View()
	case steam.PriceLoaded:
		return item.ItemMarketPrice
	case steam.PriceFailed:
		return disabledStyle.Render("price n/a")
	default:
		return "market"
	}
}

// renderFooter renders the key help line.
func (m Model) renderFooter() string {
	if m.focus == focusInput {
		return footerStyle.Render("enter inspect · ctrl+a auto · tab items · ctrl+c quit")
	}
	return footerStyle.Render("↑/↓ select · o market · p points · a auto · tab input · q quit")
}

// truncate shortens s to max runes, appending an ellipsis when cut.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
