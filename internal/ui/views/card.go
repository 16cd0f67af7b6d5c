package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"contribcard/internal/card"
	"contribcard/internal/domain"
)

// CardStatus is the lifecycle of the card panel
type CardStatus int

const (
	CardEmpty CardStatus = iota
	CardLoading
	CardLoaded
	CardNotFound
	CardFailed
)

// NotFoundMessage is shown for logins without a card
const NotFoundMessage = "It looks like you are not a contributor yet... or maybe you have a typo in your GitHub login?"

// CardState is what the card panel shows
type CardState struct {
	Status       CardStatus
	Login        string
	Contributor  *domain.Contributor
	Err          error
	AvatarURL    string
	SiteURL      string
	ShareMessage string
	ShowShare    bool
}

// CardRenderer draws contributor cards
type CardRenderer struct {
	styles *Styles
}

// NewCardRenderer creates a new card renderer
func NewCardRenderer(styles *Styles) *CardRenderer {
	return &CardRenderer{styles: styles}
}

// Render draws the card panel within width
func (r *CardRenderer) Render(state CardState, width int) string {
	switch state.Status {
	case CardLoading:
		return r.styles.StatusLoading.Render(fmt.Sprintf("Loading %s...", state.Login))
	case CardNotFound:
		return r.styles.Card.Render(
			r.styles.CardTitle.Render(state.Login) + "\n\n" + r.styles.Label.Render(NotFoundMessage))
	case CardFailed:
		return r.styles.StatusError.Render(fmt.Sprintf("Failed to load %s: %v", state.Login, state.Err))
	case CardLoaded:
		if state.Contributor != nil {
			return r.renderContributor(state, width)
		}
	}
	return ""
}

func (r *CardRenderer) renderContributor(state CardState, width int) string {
	c := state.Contributor
	inner := width - r.styles.Card.GetHorizontalFrameSize()
	if inner < 20 {
		inner = 20
	}

	var b strings.Builder

	b.WriteString(r.styles.CardTitle.Render(c.Login))
	b.WriteString("  ")
	b.WriteString(r.styles.Dim.Render(card.ProfileURL(c.Login)))
	b.WriteString("\n")
	if state.AvatarURL != "" {
		b.WriteString(r.styles.Dim.Render(state.AvatarURL))
		b.WriteString("\n")
	}

	// Contribution totals by kind, in a fixed order
	var kinds []string
	for _, kind := range []domain.ContributionKind{domain.KindCommit, domain.KindPullRequest, domain.KindIssue} {
		n := c.Contributions.ByKind[kind]
		if n <= 0 {
			continue
		}
		style := r.styles.Badge.Background(lipgloss.Color(KindColor(string(kind))))
		kinds = append(kinds, style.Render(fmt.Sprintf("%s %s", card.Prettify(n), card.KindLabel(kind, n))))
	}
	if len(kinds) > 0 {
		b.WriteString("\n")
		b.WriteString(strings.Join(kinds, " "))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(r.styles.Count.Render(card.Prettify(c.Contributions.Total)))
	b.WriteString(r.styles.Label.Render(fmt.Sprintf(" %s to ", card.Plural(c.Contributions.Total, "contribution", "contributions"))))
	b.WriteString(r.styles.Count.Render(fmt.Sprintf("%d", len(c.Repositories))))
	b.WriteString(r.styles.Label.Render(" " + card.Plural(len(c.Repositories), "repository", "repositories")))
	b.WriteString("\n")

	if fc := c.FirstContribution; fc.Repository != "" {
		b.WriteString(r.styles.Section.Render("First contribution"))
		b.WriteString("\n")
		b.WriteString(r.styles.Label.Render(strings.TrimSpace(fc.Title)))
		b.WriteString("\n")
		b.WriteString(r.styles.Dim.Render(fmt.Sprintf("%s/%s · %s", fc.Owner, fc.Repository, card.FormatDate(fc.Timestamp))))
		b.WriteString("\n")
		b.WriteString(r.styles.Link.Render(card.FirstContributionURL(fc)))
		b.WriteString("\n")
	}

	if len(c.Years) > 0 {
		b.WriteString(r.styles.Section.Render(fmt.Sprintf("Years contributing (%d)", len(c.Years))))
		b.WriteString("\n")
		years := make([]string, 0, len(c.Years))
		for _, y := range card.YearsDescending(c.Years) {
			years = append(years, fmt.Sprintf("%d", y))
		}
		line, _ := FitBadges(years, inner, r.styles.Badge, r.styles.More)
		b.WriteString(line)
		b.WriteString("\n")
	}

	if len(c.Repositories) > 0 {
		b.WriteString(r.styles.Section.Render(fmt.Sprintf("Repositories (%d)", len(c.Repositories))))
		b.WriteString("\n")
		line, _ := FitBadges(c.Repositories, inner, r.styles.Badge, r.styles.More)
		b.WriteString(line)
		b.WriteString("\n")
	}

	if page := card.CardURL(state.SiteURL, c.Login); page != "" && state.ShowShare {
		b.WriteString(r.styles.Section.Render("Share"))
		b.WriteString("\n")
		for _, link := range card.ShareLinks(page, state.ShareMessage) {
			b.WriteString(fmt.Sprintf("%-9s %s\n", link.Target, r.styles.Link.Render(link.URL)))
		}
	}

	return r.styles.Card.Width(inner + r.styles.Card.GetHorizontalPadding()).Render(strings.TrimRight(b.String(), "\n"))
}
