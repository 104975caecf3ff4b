package shop

import (
	"errors"

	"lumina/internal/assistant"
	"lumina/internal/catalog"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case replyMsg:
		m.logger.Debug("assistant replied", zap.String("conversation", m.conv.ID), zap.Int("chars", len(msg.text)))
		m.loading = false
		if m.panel == PanelAssistant {
			m.input.Focus()
		}
		m.refreshConversation()
		return m, nil

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.closePanel()
		return m, nil
	case tea.KeyTab:
		m.togglePanel(PanelAssistant)
		return m, nil
	}

	switch m.panel {
	case PanelAssistant:
		return m.handleAssistantKey(msg)
	case PanelCart:
		if handled := m.handleCartKey(msg); handled {
			return m, nil
		}
	}
	return m.handleBrowseKey(msg)
}

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tabs := len(catalog.Categories())
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "left", "h":
		m.category = (m.category + tabs - 1) % tabs
		m.selected = 0
	case "right", "l":
		m.category = (m.category + 1) % tabs
		m.selected = 0
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(m.Visible())-1 {
			m.selected++
		}
	case "enter", "a":
		m.addSelected()
	case "c":
		m.togglePanel(PanelCart)
	case "?":
		m.togglePanel(PanelAssistant)
	}
	return m, nil
}

// handleCartKey processes drawer keys. It reports false for keys the
// catalogue should still see.
func (m *Model) handleCartKey(msg tea.KeyMsg) bool {
	lines := m.cart.Lines()
	switch msg.String() {
	case "up", "k":
		if m.cartCursor > 0 {
			m.cartCursor--
		}
	case "down", "j":
		if m.cartCursor < len(lines)-1 {
			m.cartCursor++
		}
	case "+", "=":
		if id, ok := m.cartLineID(); ok {
			m.cart.UpdateQuantity(id, 1)
		}
	case "-":
		if id, ok := m.cartLineID(); ok {
			m.cart.UpdateQuantity(id, -1)
		}
	case "x", "delete", "backspace":
		if id, ok := m.cartLineID(); ok {
			m.cart.RemoveItem(id)
			if m.cartCursor >= m.cart.Len() && m.cartCursor > 0 {
				m.cartCursor--
			}
		}
	default:
		return false
	}
	return true
}

func (m Model) handleAssistantKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.loading {
		return m, nil
	}

	if msg.Type == tea.KeyEnter {
		return m.submit()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	turn, err := m.conv.Begin(m.input.Value())
	switch {
	case errors.Is(err, assistant.ErrEmptyMessage):
		return m, nil
	case errors.Is(err, assistant.ErrBusy):
		m.status = "The assistant is still answering."
		return m, nil
	case err != nil:
		m.logger.Error("submit failed", zap.Error(err))
		return m, nil
	}

	m.input.Reset()
	m.input.Blur()
	m.loading = true
	m.status = ""
	m.refreshConversation()

	ctx := m.ctx
	ask := func() tea.Msg {
		return replyMsg{text: turn.Complete(ctx)}
	}
	return m, tea.Batch(m.spinner.Tick, ask)
}

func (m *Model) addSelected() {
	p, ok := m.Selected()
	if !ok {
		return
	}
	if _, err := m.cart.AddItem(p.ID); err != nil {
		m.logger.Error("add to cart failed", zap.Int("product", p.ID), zap.Error(err))
		m.status = err.Error()
		return
	}
	m.status = p.Name + " added to cart"
	if m.session.openCart {
		m.session.openCart = false
		m.openPanel(PanelCart)
	}
}

func (m *Model) cartLineID() (int, bool) {
	lines := m.cart.Lines()
	if m.cartCursor < 0 || m.cartCursor >= len(lines) {
		return 0, false
	}
	return lines[m.cartCursor].Product.ID, true
}

func (m *Model) openPanel(p Panel) {
	m.panel = p
	if p == PanelAssistant && !m.loading {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
	if p == PanelCart && m.cartCursor >= m.cart.Len() {
		m.cartCursor = max(0, m.cart.Len()-1)
	}
}

func (m *Model) togglePanel(p Panel) {
	if m.panel == p {
		m.closePanel()
		return
	}
	m.openPanel(p)
}

func (m *Model) closePanel() {
	m.panel = PanelNone
	m.input.Blur()
}
