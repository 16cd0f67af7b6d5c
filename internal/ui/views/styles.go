package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title           lipgloss.Style
	Dim             lipgloss.Style
	Status          lipgloss.Style
	Prompt          lipgloss.Style
	Result          lipgloss.Style
	ResultHighlight lipgloss.Style
	NoResults       lipgloss.Style
	Card            lipgloss.Style
	CardTitle       lipgloss.Style
	Section         lipgloss.Style
	Label           lipgloss.Style
	Count           lipgloss.Style
	Badge           lipgloss.Style
	More            lipgloss.Style
	Link            lipgloss.Style
	Help            lipgloss.Style
	StatusError     lipgloss.Style
	StatusWarning   lipgloss.Style
	StatusLoading   lipgloss.Style
	StatusSuccess   lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim:             lipgloss.NewStyle().Faint(true),
		Status:          lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Prompt:          lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Result:          lipgloss.NewStyle().PaddingLeft(2),
		ResultHighlight: lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("226")).Background(lipgloss.Color("238")).Bold(true),
		NoResults:       lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("241")).Italic(true),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(1, 2),
		CardTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
		Section:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1),
		Label:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Count:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220")),
		Badge: lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("61")).
			Padding(0, 1),
		More:          lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
		Link:          lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Underline(true),
		Help:          lipgloss.NewStyle().Faint(true),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
	}
}

// KindColor returns the badge color for a contribution kind
func KindColor(kind string) string {
	switch kind {
	case "commit":
		return "78" // green
	case "pull_request":
		return "99" // purple
	case "issue":
		return "214" // yellow
	default:
		return "241"
	}
}
