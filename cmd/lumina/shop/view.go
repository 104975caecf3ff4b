package shop

import (
	"fmt"
	"strings"

	"lumina/cmd/lumina/ui"
	"lumina/internal/assistant"
	"lumina/internal/catalog"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	body := m.renderCatalogue()
	switch m.panel {
	case PanelCart:
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, m.renderCart())
	case PanelAssistant:
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, m.renderAssistant())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderTabs(),
		body,
		m.renderFooter(),
	)
}

func (m Model) renderHeader() string {
	brand := m.styles.Header.Render(m.opts.ShopName)
	if m.opts.Tagline != "" {
		brand += m.styles.Subtitle.Render(m.opts.Tagline)
	}
	badge := m.styles.Badge.Render(fmt.Sprintf("Cart %d", m.cart.TotalItemCount()))

	gap := m.width - lipgloss.Width(brand) - lipgloss.Width(badge)
	if gap < 1 {
		gap = 1
	}
	return brand + strings.Repeat(" ", gap) + badge
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, len(catalog.Categories()))
	for i, c := range catalog.Categories() {
		if i == m.category {
			tabs = append(tabs, m.styles.ActiveTab.Render(string(c)))
		} else {
			tabs = append(tabs, m.styles.Tab.Render(string(c)))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + "\n" + m.styles.RenderDivider(m.width)
}

func (m Model) catalogueWidth() int {
	if m.panel == PanelNone {
		return m.width
	}
	return max(cardWidth, m.width-m.panelWidth())
}

func (m Model) renderCatalogue() string {
	visible := m.Visible()
	if len(visible) == 0 {
		return m.styles.Muted.Render("No pieces in this collection yet.")
	}

	perRow := max(1, m.catalogueWidth()/(cardWidth+2))
	var rows []string
	for start := 0; start < len(visible); start += perRow {
		end := min(start+perRow, len(visible))
		cards := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cards = append(cards, m.renderCard(visible[i], i == m.selected))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderCard(p catalog.Product, focused bool) string {
	style := m.styles.Card
	if focused {
		style = m.styles.CardFocused
	}
	inner := cardWidth - 4

	var sb strings.Builder
	sb.WriteString(m.styles.Bold.Render(ui.Truncate(p.Name, inner)))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Muted.Render(string(p.Category)))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Body.Render(ui.Truncate(p.Description, inner)))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Price.Render(ui.FormatPrice(p.Price)))
	return style.Width(cardWidth).Render(sb.String())
}

func (m Model) renderCart() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Your Cart"))
	sb.WriteString("\n")

	snap := m.cart.Snapshot()
	if len(snap.Lines) == 0 {
		sb.WriteString(m.styles.Muted.Render(EmptyCartMessage))
		return m.styles.Panel.Width(m.panelWidth()).Render(sb.String())
	}

	inner := m.panelWidth() - 6
	for i, line := range snap.Lines {
		marker := "  "
		if i == m.cartCursor {
			marker = "› "
		}
		sb.WriteString(marker + m.styles.Bold.Render(ui.Truncate(line.Product.Name, inner-2)))
		sb.WriteString("\n")
		sb.WriteString(m.styles.Muted.Render(fmt.Sprintf("  %s × %d", ui.FormatPrice(line.Product.Price), line.Quantity)))
		sb.WriteString("  ")
		sb.WriteString(m.styles.Price.Render(ui.FormatPrice(line.Total())))
		sb.WriteString("\n")
	}

	sb.WriteString(m.styles.RenderDivider(inner))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Bold.Render("Subtotal  "))
	sb.WriteString(m.styles.Price.Render(ui.FormatPrice(snap.Subtotal)))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Muted.Render(CheckoutNote))
	return m.styles.Panel.Width(m.panelWidth()).Render(sb.String())
}

func (m Model) renderAssistant() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Personal Shopper"))
	sb.WriteString("\n")
	sb.WriteString(m.viewport.View())
	sb.WriteString("\n")
	if m.loading {
		sb.WriteString(m.spinner.View() + m.styles.Muted.Render(" Curating a reply..."))
	} else {
		sb.WriteString(m.input.View())
	}
	sb.WriteString("\n")
	sb.WriteString(m.styles.Muted.Render(AssistantFooter))
	return m.styles.Panel.Width(m.panelWidth()).Render(sb.String())
}

func (m Model) renderConversation() string {
	var sb strings.Builder
	for _, e := range m.conv.Entries() {
		switch e.Role {
		case assistant.RoleUser:
			sb.WriteString(m.styles.UserMessage.Render(e.Text))
			sb.WriteString("\n\n")
		default:
			sb.WriteString(m.safeRenderMarkdown(e.Text))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func (m *Model) refreshConversation() {
	m.viewport.SetContent(m.renderConversation())
	m.viewport.GotoBottom()
}

// safeRenderMarkdown falls back to plain text if glamour fails or panics.
func (m Model) safeRenderMarkdown(content string) (result string) {
	defer func() {
		if r := recover(); r != nil {
			result = m.styles.AssistantMessage.Render(content)
		}
	}()

	if m.renderer != nil && content != "" {
		if rendered, err := m.renderer.Render(content); err == nil {
			return rendered
		}
	}
	return m.styles.AssistantMessage.Render(content)
}

func (m Model) renderFooter() string {
	var help string
	switch m.panel {
	case PanelCart:
		help = "↑/↓ line • +/- quantity • x remove • c/esc close"
	case PanelAssistant:
		help = "enter send • tab/esc close"
	default:
		help = "←/→ collection • ↑/↓ select • enter add • c cart • ? assistant • q quit"
	}
	footer := m.styles.Footer.Render(help)
	if m.status != "" {
		footer = m.styles.Success.Render(m.status) + "\n" + footer
	}
	return footer
}
