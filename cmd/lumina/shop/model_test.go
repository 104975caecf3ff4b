package shop

import (
	"context"
	"strings"
	"sync"
	"testing"

	"lumina/cmd/lumina/ui"
	"lumina/internal/assistant"
	"lumina/internal/catalog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

type fakeAdvisor struct {
	mu    sync.Mutex
	asked []string
	reply string
}

func (f *fakeAdvisor) Advise(_ context.Context, utterance string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.asked = append(f.asked, utterance)
	return f.reply
}

func newTestModel(t *testing.T, advisor assistant.Advisor) Model {
	t.Helper()
	if advisor == nil {
		advisor = &fakeAdvisor{reply: "Try the Travertine Coffee Table."}
	}
	m := New(context.Background(), catalog.Default(), advisor, Options{
		ShopName: "LUMINA",
		Tagline:  "Elevated essentials for a thoughtful home.",
		Theme:    ui.LightTheme(),
		Logger:   zap.NewNop(),
	})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return next.(Model)
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(Model)
	}
	return m
}

// runCmd executes cmd and any batched commands, returning every message.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// =============================================================================
// LAYOUT
// =============================================================================

func TestViewBeforeResize(t *testing.T) {
	m := New(context.Background(), catalog.Default(), &fakeAdvisor{}, Options{Theme: ui.LightTheme(), Logger: zap.NewNop()})
	assert.Equal(t, "Initializing...", m.View())
}

func TestUpdate_WindowSize_Zero(t *testing.T) {
	m := newTestModel(t, nil)
	assert.NotPanics(t, func() {
		next, _ := m.Update(tea.WindowSizeMsg{Width: 0, Height: 0})
		_ = next.View()
	})
}

func TestViewShowsShopAndProducts(t *testing.T) {
	m := newTestModel(t, nil)
	view := m.View()

	assert.Contains(t, view, "LUMINA")
	assert.Contains(t, view, "Cart 0")
	for _, c := range catalog.Categories() {
		assert.Contains(t, view, string(c))
	}
	assert.Contains(t, view, "$850")
}

// =============================================================================
// CATEGORY TABS
// =============================================================================

func TestCategoryTabsCycle(t *testing.T) {
	m := newTestModel(t, nil)
	require.Equal(t, catalog.All, m.Category())
	assert.Len(t, m.Visible(), 8)

	m = press(t, m, "right", "right")
	assert.Equal(t, catalog.Lighting, m.Category())
	for _, p := range m.Visible() {
		assert.Equal(t, catalog.Lighting, p.Category)
	}

	m = press(t, m, "left", "left", "left")
	assert.Equal(t, catalog.Wellness, m.Category(), "left from All wraps to the last tab")
}

func TestSelectionResetsOnTabChange(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(t, m, "down", "down")
	p, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, 3, p.ID)

	m = press(t, m, "right")
	p, ok = m.Selected()
	require.True(t, ok)
	assert.Equal(t, catalog.Furniture, p.Category)
}

func TestSelectionStaysInBounds(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(t, m, "up")
	p, _ := m.Selected()
	assert.Equal(t, 1, p.ID)

	m = press(t, m, strings.Split(strings.Repeat("down,", 20), ",")[:20]...)
	p, _ = m.Selected()
	assert.Equal(t, 8, p.ID)
}

// =============================================================================
// CART DRAWER
// =============================================================================

func TestAddOpensCartDrawer(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(t, m, "enter")

	assert.Equal(t, PanelCart, m.Panel())
	assert.Equal(t, 1, m.Cart().Quantity(1))
	view := m.View()
	assert.Contains(t, view, "Cart 1")
	assert.Contains(t, view, "Travertine Coffee Table")
	assert.Contains(t, view, CheckoutNote)
}

func TestEmptyCartDrawer(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(t, m, "c")

	assert.Equal(t, PanelCart, m.Panel())
	assert.Contains(t, m.View(), EmptyCartMessage)

	m = press(t, m, "c")
	assert.Equal(t, PanelNone, m.Panel())
}

func TestCartDrawerAdjustsQuantity(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(t, m, "a", "esc", "down", "a", "a")
	require.Equal(t, 2, m.Cart().Len())
	assert.Equal(t, 3, m.Cart().TotalItemCount())

	// Cursor on the first line (product 1).
	m = press(t, m, "+", "+")
	assert.Equal(t, 3, m.Cart().Quantity(1))

	m = press(t, m, "-", "-", "-", "-")
	assert.Equal(t, 1, m.Cart().Quantity(1), "quantity never drops below one")

	m = press(t, m, "x")
	assert.Equal(t, 0, m.Cart().Quantity(1))
	assert.Equal(t, 1, m.Cart().Len())
	assert.Contains(t, m.View(), "Cart 2")
}

// =============================================================================
// ASSISTANT PANEL
// =============================================================================

func TestAssistantPanelShowsGreeting(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(t, m, "?")

	require.Equal(t, PanelAssistant, m.Panel())
	view := m.View()
	assert.Contains(t, view, "Personal Shopper")
	assert.Contains(t, view, "Powered by Gemini AI")

	entries := m.Conversation().Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, assistant.Greeting, entries[0].Text)
}

func TestAssistantSubmit(t *testing.T) {
	advisor := &fakeAdvisor{reply: "The Arc Floor Lamp pairs well."}
	m := newTestModel(t, advisor)
	m = press(t, m, "tab")
	m = typeText(t, m, "a lamp for reading?")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	require.NotNil(t, cmd)
	assert.True(t, m.Loading())
	assert.Contains(t, m.View(), "Curating")

	// Input is ignored while the request is outstanding.
	m = typeText(t, m, "more")

	var reply tea.Msg
	for _, msg := range runCmd(cmd) {
		if r, ok := msg.(replyMsg); ok {
			reply = r
		}
	}
	require.NotNil(t, reply)

	next, _ = m.Update(reply)
	m = next.(Model)
	assert.False(t, m.Loading())

	entries := m.Conversation().Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, assistant.Entry{Role: assistant.RoleUser, Text: "a lamp for reading?"}, entries[1])
	assert.Equal(t, assistant.Entry{Role: assistant.RoleAssistant, Text: "The Arc Floor Lamp pairs well."}, entries[2])
	assert.Equal(t, []string{"a lamp for reading?"}, advisor.asked)
}

func TestReplyAfterPanelClosedKeepsInputBlurred(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(t, m, "tab")
	m = typeText(t, m, "pairing for the sideboard")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	require.True(t, m.Loading())

	m = press(t, m, "esc")
	require.Equal(t, PanelNone, m.Panel())

	for _, msg := range runCmd(cmd) {
		if r, ok := msg.(replyMsg); ok {
			next, _ = m.Update(r)
			m = next.(Model)
		}
	}
	assert.False(t, m.Loading())
	assert.False(t, m.input.Focused(), "closed panel must not regain focus")
	assert.Len(t, m.Conversation().Entries(), 3)

	// Browse shortcuts still work once the reply is in.
	m = press(t, m, "a")
	assert.Equal(t, 1, m.Cart().TotalItemCount())
}

func TestAssistantEmptySubmitIsIgnored(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(t, m, "tab")
	m = typeText(t, m, "   ")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	assert.Nil(t, cmd)
	assert.False(t, m.Loading())
	assert.Len(t, m.Conversation().Entries(), 1)
}

func TestAssistantKeysDoNotTriggerShortcuts(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(t, m, "tab")
	m = typeText(t, m, "ac?")

	assert.Equal(t, PanelAssistant, m.Panel())
	assert.True(t, m.Cart().IsEmpty())

	m = press(t, m, "esc")
	assert.Equal(t, PanelNone, m.Panel())
}

func TestCtrlCQuits(t *testing.T) {
	m := newTestModel(t, nil)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
