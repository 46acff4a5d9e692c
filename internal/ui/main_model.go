package ui

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gubarz/deckmd/internal/clipboard"
	"github.com/gubarz/deckmd/internal/parser"
)

// ============================================================================
// String Builder Pool - reduces GC pressure from rendering
// ============================================================================

var builderPool = sync.Pool{
	New: func() interface{} {
		return &strings.Builder{}
	},
}

func getBuilder() *strings.Builder {
	b := builderPool.Get().(*strings.Builder)
	b.Reset()
	return b
}

func putBuilder(b *strings.Builder) {
	if b.Cap() < 64*1024 { // Don't pool huge builders
		builderPool.Put(b)
	}
}

// ============================================================================
// Main Model - Slide Viewer
// ============================================================================

const (
	defaultWidth  = 80
	defaultHeight = 24
	marginLeft    = 2
	chromeLines   = 2 // blank + footer
)

// uiPhase represents which phase the viewer is in
type uiPhase int

const (
	phaseView uiPhase = iota // Showing slides
	phaseGoto                // Typing a slide number
)

// copiedMsg is sent when a clipboard copy completes
type copiedMsg struct {
	slide int
	err   error
}

// mainModel is the Bubble Tea model for presenting a deck
type mainModel struct {
	// Common state
	width     int
	height    int
	textInput textinput.Model
	quitting  bool

	// Phase management
	phase uiPhase

	// Deck state
	deck    *parser.Deck
	current int
	render  renderer

	keys      keyMap
	help      help.Model
	clipboard clipboard.Clipboard
	status    string
}

// newMainModel creates a viewer positioned on the first slide
func newMainModel(deck *parser.Deck, opts Options) mainModel {
	ti := textinput.New()
	ti.Prompt = "go to slide: "
	ti.Placeholder = fmt.Sprintf("1-%d", deck.Len())
	ti.CharLimit = 6
	ti.Width = 20

	clip := opts.Clipboard
	if clip == nil {
		clip = clipboard.System()
	}

	return mainModel{
		textInput: ti,
		phase:     phaseView,
		deck:      deck,
		render:    renderer{width: defaultWidth - 2*marginLeft, codeIndent: opts.CodeIndent},
		keys:      defaultKeyMap(),
		help:      help.New(),
		clipboard: clip,
	}
}

// Init implements tea.Model
func (m mainModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.render.width = maxInt(msg.Width-2*marginLeft, 1)
		m.help.Width = msg.Width
		m.textInput.Width = maxInt(msg.Width-len(m.textInput.Prompt)-2, 1)
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.status = "copy failed: " + msg.err.Error()
		} else {
			m.status = fmt.Sprintf("copied slide %d", msg.slide+1)
		}
		return m, nil
	}

	// Dispatch based on phase
	switch m.phase {
	case phaseGoto:
		return m.updateGoto(msg)
	default:
		return m.updateView(msg)
	}
}

// updateView handles updates while slides are shown
func (m mainModel) updateView(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	cmd := m.handleViewKey(keyMsg)
	return m, cmd
}

// handleViewKey processes keyboard input while slides are shown
func (m *mainModel) handleViewKey(msg tea.KeyMsg) tea.Cmd {
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return tea.Quit
	case key.Matches(msg, m.keys.Next):
		m.jumpTo(m.current + 1)
	case key.Matches(msg, m.keys.Prev):
		m.jumpTo(m.current - 1)
	case key.Matches(msg, m.keys.First):
		m.jumpTo(0)
	case key.Matches(msg, m.keys.Last):
		m.jumpTo(m.deck.Len() - 1)
	case key.Matches(msg, m.keys.Goto):
		m.phase = phaseGoto
		m.textInput.SetValue("")
		return m.textInput.Focus()
	case key.Matches(msg, m.keys.Copy):
		return m.copySlide()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return nil
}

// updateGoto handles updates while the slide number prompt is open
func (m mainModel) updateGoto(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			value := strings.TrimSpace(m.textInput.Value())
			if n, err := strconv.Atoi(value); err == nil {
				m.jumpTo(n - 1)
			} else if value != "" {
				m.status = fmt.Sprintf("not a slide number: %q", value)
			}
			m.closePrompt()
			return m, nil
		case "esc", "ctrl+c":
			m.closePrompt()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m *mainModel) closePrompt() {
	m.phase = phaseView
	m.textInput.Blur()
	m.textInput.SetValue("")
}

// jumpTo moves to slide i, clamping to the deck
func (m *mainModel) jumpTo(i int) {
	m.current = clamp(i, 0, maxInt(m.deck.Len()-1, 0))
}

// copySlide returns a command that copies the current slide's raw text
func (m *mainModel) copySlide() tea.Cmd {
	if m.deck.Len() == 0 {
		return nil
	}
	slide := m.current
	text := m.deck.Slides[slide].String()
	clip := m.clipboard
	return func() tea.Msg {
		return copiedMsg{slide: slide, err: clip.Copy(text)}
	}
}

// ============================================================================
// Rendering
// ============================================================================

// View implements tea.Model
func (m mainModel) View() string {
	if m.quitting {
		return ""
	}

	width := m.width
	if width <= 0 {
		width = defaultWidth
	}
	height := m.height
	if height <= 0 {
		height = defaultHeight
	}

	bottom := m.renderBottom(width)
	contentHeight := maxInt(height-chromeLines-countLines(bottom), 1)
	content := m.renderContent(contentHeight)
	padding := maxInt(contentHeight-maxInt(countLines(content), 1), 0)

	b := getBuilder()
	defer putBuilder(b)
	b.WriteString(content)
	b.WriteString(strings.Repeat("\n", padding))
	b.WriteString("\n\n")
	b.WriteString(m.renderFooter(width))
	b.WriteString("\n")
	b.WriteString(bottom)

	return b.String()
}

// renderContent renders the current slide, cut to maxLines rows
func (m mainModel) renderContent(maxLines int) string {
	if m.deck.Len() == 0 {
		return ""
	}

	margin := strings.Repeat(" ", marginLeft)
	lines := strings.Split(m.render.slide(m.deck.Slides[m.current]), "\n")
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	for i, line := range lines {
		if line != "" {
			lines[i] = margin + line
		}
	}
	return strings.Join(lines, "\n")
}

// renderFooter renders the deck title, author and position
func (m mainModel) renderFooter(width int) string {
	left := styles.Title.Render(m.deck.Title())
	if author := m.deck.Author(); author != "" {
		left += styles.Dim.Render(" · " + author)
	}
	right := styles.Dim.Render(fmt.Sprintf("%d/%d", m.current+1, m.deck.Len()))

	gap := maxInt(width-lipgloss.Width(left)-lipgloss.Width(right)-marginLeft, 1)
	return strings.Repeat(" ", marginLeft) + left + strings.Repeat(" ", gap) + right
}

// renderBottom renders the goto prompt, a status message or the key help
func (m mainModel) renderBottom(width int) string {
	switch {
	case m.phase == phaseGoto:
		return styles.Prompt.Render(m.textInput.View())
	case m.status != "":
		return center(styles.Status.Render(m.status), width)
	default:
		return center(m.help.View(m.keys), width)
	}
}

// ============================================================================
// Helpers
// ============================================================================

// clamp restricts v to [minV, maxV]
func clamp(v, minV, maxV int) int {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}

// maxInt returns the larger of two ints
func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// countLines counts the rows of rendered text
func countLines(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}
