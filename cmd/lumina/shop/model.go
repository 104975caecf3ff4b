// Package shop is the interactive storefront: a catalogue grid with category
// tabs, a cart drawer and the assistant panel.
package shop

import (
	"context"

	"lumina/cmd/lumina/ui"
	"lumina/internal/assistant"
	"lumina/internal/cart"
	"lumina/internal/catalog"
	"lumina/internal/logging"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"
)

const (
	defaultWidth  = 100
	defaultHeight = 30

	headerHeight = 3
	footerHeight = 2
	panelWidth   = 44
	cardWidth    = 30

	// AssistantFooter is shown under the assistant input.
	AssistantFooter = "Powered by Gemini AI • Always consult dimensions for specific fits"
	// CheckoutNote is shown under the cart subtotal.
	CheckoutNote = "Shipping & taxes calculated at checkout"
	// EmptyCartMessage is shown when the drawer has no lines.
	EmptyCartMessage = "Your cart is empty."
)

// Panel is the side panel currently open next to the catalogue.
type Panel int

const (
	PanelNone Panel = iota
	PanelCart
	PanelAssistant
)

// Options configures a storefront session.
type Options struct {
	ShopName string
	Tagline  string
	Theme    ui.Theme
	Logger   *zap.Logger
}

// session holds state shared by every copy of the Model value.
type session struct {
	openCart bool
}

// Model is the bubbletea model of one storefront session.
type Model struct {
	ctx     context.Context
	opts    Options
	styles  ui.Styles
	logger  *zap.Logger
	session *session

	catalog *catalog.Catalog
	cart    *cart.Cart
	conv    *assistant.Conversation

	width  int
	height int
	ready  bool

	category   int // index into catalog.Categories()
	selected   int // index into the filtered products
	panel      Panel
	cartCursor int
	status     string
	loading    bool

	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model
	renderer *glamour.TermRenderer
}

// replyMsg carries the assistant reply back into the update loop.
type replyMsg struct {
	text string
}

// New builds a storefront over the catalogue. The advisor answers the
// assistant panel; ctx bounds its requests.
func New(ctx context.Context, c *catalog.Catalog, advisor assistant.Advisor, opts Options) Model {
	if opts.ShopName == "" {
		opts.ShopName = "LUMINA"
	}
	if opts.Theme == (ui.Theme{}) {
		opts.Theme = ui.DetectTheme()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Get(logging.CategoryUI)
	}

	s := &session{}
	crt := cart.New(c)
	crt.OnAdd(func(snap cart.Snapshot) {
		s.openCart = true
		logger.Debug("cart updated", zap.Int("items", snap.ItemCount), zap.Int("subtotal", snap.Subtotal))
	})

	ti := textinput.New()
	ti.Placeholder = "Ask about pieces, fits or pairings..."
	ti.Prompt = "› "
	ti.CharLimit = 500

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	styles := ui.NewStyles(opts.Theme)
	sp.Style = styles.Spinner

	return Model{
		ctx:      ctx,
		opts:     opts,
		styles:   styles,
		logger:   logger,
		session:  s,
		catalog:  c,
		cart:     crt,
		conv:     assistant.NewConversation(advisor),
		width:    defaultWidth,
		height:   defaultHeight,
		input:    ti,
		viewport: viewport.New(panelWidth-4, defaultHeight-headerHeight-footerHeight-6),
		spinner:  sp,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Cart exposes the session cart.
func (m Model) Cart() *cart.Cart {
	return m.cart
}

// Conversation exposes the assistant log.
func (m Model) Conversation() *assistant.Conversation {
	return m.conv
}

// Panel returns the open side panel.
func (m Model) Panel() Panel {
	return m.panel
}

// Category returns the selected category tab.
func (m Model) Category() catalog.Category {
	return catalog.Categories()[m.category]
}

// Visible returns the products shown under the selected tab.
func (m Model) Visible() []catalog.Product {
	return catalog.FilterByCategory(m.catalog.Products(), m.Category())
}

// Selected returns the highlighted product, if any.
func (m Model) Selected() (catalog.Product, bool) {
	visible := m.Visible()
	if m.selected < 0 || m.selected >= len(visible) {
		return catalog.Product{}, false
	}
	return visible[m.selected], true
}

// Loading reports whether an assistant request is outstanding.
func (m Model) Loading() bool {
	return m.loading
}

func (m Model) glamourStyle() string {
	if m.opts.Theme.IsDark {
		return "dark"
	}
	return "light"
}

func (m *Model) resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	m.width = width
	m.height = height

	pw := m.panelWidth()
	vpHeight := height - headerHeight - footerHeight - 6
	if vpHeight < 1 {
		vpHeight = 1
	}
	m.viewport.Width = max(1, pw-4)
	m.viewport.Height = vpHeight
	m.input.Width = max(1, pw-8)

	m.renderer, _ = glamour.NewTermRenderer(
		glamour.WithStandardStyle(m.glamourStyle()),
		glamour.WithWordWrap(max(10, pw-8)),
	)
	m.ready = true
	m.refreshConversation()
}

func (m Model) panelWidth() int {
	return min(panelWidth, max(20, m.width/2))
}
