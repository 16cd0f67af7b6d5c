package views

import (
	"strings"

	"contribcard/internal/search"
)

// NoResultsMessage is shown when a search matched nothing
func NoResultsMessage(query string) string {
	return "no results for " + query
}

// SearchRenderer draws the result dropdown
type SearchRenderer struct {
	styles *Styles
}

// NewSearchRenderer creates a new search renderer
func NewSearchRenderer(styles *Styles) *SearchRenderer {
	return &SearchRenderer{styles: styles}
}

// Render draws one line per result, or the empty-search message. It returns
// "" when the dropdown is hidden.
func (r *SearchRenderer) Render(snap search.Snapshot) string {
	if !snap.Visible {
		return ""
	}
	if snap.NoResults() {
		return r.styles.NoResults.Render(NoResultsMessage(snap.Query))
	}

	lines := make([]string, len(snap.Results))
	for i, login := range snap.Results {
		if i == snap.Highlight {
			lines[i] = r.styles.ResultHighlight.Render("› " + login)
		} else {
			lines[i] = r.styles.Result.Render("  " + login)
		}
	}
	return strings.Join(lines, "\n")
}
