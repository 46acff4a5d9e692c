package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/gubarz/deckmd/internal/config"
)

// StyleManager encapsulates all viewer styles
type StyleManager struct {
	// Slide content styles
	H1       lipgloss.Style
	H2       lipgloss.Style
	Text     lipgloss.Style
	Code     lipgloss.Style
	Quote    lipgloss.Style
	QuoteBar lipgloss.Style
	Bullet   lipgloss.Style
	Rule     lipgloss.Style

	// Chrome styles
	Title  lipgloss.Style
	Dim    lipgloss.Style
	Status lipgloss.Style
	Prompt lipgloss.Style
}

// DefaultStyles returns a StyleManager with default styles
func DefaultStyles() *StyleManager {
	return &StyleManager{
		H1:       lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("3")),
		H2:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		Text:     lipgloss.NewStyle(),
		Code:     lipgloss.NewStyle().Foreground(lipgloss.Color("246")),
		Quote:    lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("250")),
		QuoteBar: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Bullet:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Rule:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Title:    lipgloss.NewStyle().Bold(true),
		Dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		Prompt:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
	}
}

// LoadFromConfig updates styles based on configuration
func (s *StyleManager) LoadFromConfig() {
	h1Color := parseANSIColor(config.GetColorH1())
	h2Color := parseANSIColor(config.GetColorH2())
	codeColor := parseANSIColor(config.GetColorCode())
	quoteColor := parseANSIColor(config.GetColorQuote())
	ruleColor := parseANSIColor(config.GetColorRule())
	dimColor := parseANSIColor(config.GetColorDim())

	s.H1 = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(h1Color)
	s.H2 = lipgloss.NewStyle().Bold(true).Foreground(h2Color)
	s.Code = lipgloss.NewStyle().Foreground(codeColor)
	s.Quote = lipgloss.NewStyle().Italic(true).Foreground(quoteColor)

	s.QuoteBar = lipgloss.NewStyle().Foreground(ruleColor)
	s.Bullet = lipgloss.NewStyle().Foreground(ruleColor)
	s.Rule = lipgloss.NewStyle().Foreground(ruleColor)
	s.Dim = lipgloss.NewStyle().Foreground(dimColor)
}

// parseANSIColor converts ANSI color codes to lipgloss colors
func parseANSIColor(code string) lipgloss.Color {
	ansiToLipgloss := map[string]string{
		"30": "0", "31": "1", "32": "2", "33": "3",
		"34": "4", "35": "5", "36": "6", "37": "7",
		"90": "8", "91": "9", "92": "10", "93": "11",
		"94": "12", "95": "13", "96": "14", "97": "15",
	}
	if mapped, ok := ansiToLipgloss[code]; ok {
		return lipgloss.Color(mapped)
	}
	return lipgloss.Color(code)
}

// Global style manager instance
var styles = DefaultStyles()

// RefreshStyles updates the global styles from config
func RefreshStyles() {
	styles.LoadFromConfig()
}
