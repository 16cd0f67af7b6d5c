package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"contribcard/internal/search"
)

// DropdownTop is the screen row of the first search result
const DropdownTop = 3

// ResultIndexAt maps a screen row to a result index
func ResultIndexAt(row int, snap search.Snapshot) (int, bool) {
	if !snap.Visible {
		return 0, false
	}
	i := row - DropdownTop
	if i < 0 || i >= len(snap.Results) {
		return 0, false
	}
	return i, true
}

// StatusKind picks the color of the status line
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusLoading
	StatusSuccess
	StatusWarning
	StatusError
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	Input          string
	Search         search.Snapshot
	Card           CardState
	DirectorySize  int
	DirectoryReady bool
	StatusMessage  string
	StatusKind     StatusKind
	HelpModel      help.Model
	HelpKeys       help.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles       *Styles
	searchRender *SearchRenderer
	cardRender   *CardRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:       styles,
		searchRender: NewSearchRenderer(styles),
		cardRender:   NewCardRenderer(styles),
	}
}

// Styles returns the renderer styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	// Row 0: title with right-aligned directory size
	logo := r.styles.Title.Render("contribcard")
	var right string
	if state.DirectoryReady {
		right = r.styles.Dim.Render(fmt.Sprintf("%d contributors", state.DirectorySize))
	} else {
		right = r.styles.StatusLoading.Render("loading contributors...")
	}
	padding := state.Width - lipgloss.Width(logo) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}
	content.WriteString(logo + strings.Repeat(" ", padding) + right)
	content.WriteString("\n\n")

	// Row 2: input, rows 3..: dropdown
	content.WriteString(state.Input)
	content.WriteString("\n")
	if dropdown := r.searchRender.Render(state.Search); dropdown != "" {
		content.WriteString(dropdown)
		content.WriteString("\n")
	} else if cardView := r.cardRender.Render(state.Card, state.Width); cardView != "" {
		content.WriteString("\n")
		content.WriteString(cardView)
		content.WriteString("\n")
	}

	if state.StatusMessage != "" {
		content.WriteString("\n")
		content.WriteString(r.statusStyle(state.StatusKind).Render(state.StatusMessage))
		content.WriteString("\n")
	}

	if state.HelpKeys != nil {
		content.WriteString("\n")
		content.WriteString(r.styles.Help.Render(state.HelpModel.View(state.HelpKeys)))
	}

	return content.String()
}

func (r *Renderer) statusStyle(kind StatusKind) lipgloss.Style {
	switch kind {
	case StatusLoading:
		return r.styles.StatusLoading
	case StatusSuccess:
		return r.styles.StatusSuccess
	case StatusWarning:
		return r.styles.StatusWarning
	case StatusError:
		return r.styles.StatusError
	default:
		return r.styles.Status
	}
}
