package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text      lipgloss.Style
	Selection lipgloss.Style
	Cursor    lipgloss.Style

	Toolbar       lipgloss.Style
	ToolbarItem   lipgloss.Style
	ToolbarActive lipgloss.Style
	ToolbarMore   lipgloss.Style

	Palette      lipgloss.Style
	PaletteMatch lipgloss.Style

	Offer       lipgloss.Style
	OfferAction lipgloss.Style
}

func DefaultStyle() Style {
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	item := lipgloss.NewStyle().Padding(0, 1)
	return Style{
		Gutter:        gutter,
		LineNum:       gutter,
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Text:          lipgloss.NewStyle(),
		Selection:     lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:        lipgloss.NewStyle().Reverse(true),

		Toolbar:       lipgloss.NewStyle().Background(lipgloss.Color("235")),
		ToolbarItem:   item.Foreground(lipgloss.Color("252")),
		ToolbarActive: item.Foreground(lipgloss.Color("212")).Bold(true),
		ToolbarMore:   item.Foreground(lipgloss.Color("244")),

		Palette:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		PaletteMatch: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Underline(true),

		Offer:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("24")).Padding(0, 1),
		OfferAction: lipgloss.NewStyle().Bold(true),
	}
}
