package views

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"contribcard/internal/domain"
	"contribcard/internal/search"
)

func searchSnapshot(results []string) search.Snapshot {
	return search.Snapshot{Results: results, Visible: true, Highlight: search.NoHighlight, Focused: true}
}

func TestRender_DropdownReplacesCard(t *testing.T) {
	r := NewRenderer()
	state := ViewState{
		Width:          80,
		Input:          "› al",
		Search:         searchSnapshot([]string{"alice", "alan"}),
		Card:           CardState{Status: CardNotFound, Login: "zed"},
		DirectorySize:  3,
		DirectoryReady: true,
	}

	out := r.Render(state)
	assert.Contains(t, out, "3 contributors")
	assert.Contains(t, out, "alice")
	assert.NotContains(t, out, NotFoundMessage)

	state.Search = search.Snapshot{Highlight: search.NoHighlight}
	out = r.Render(state)
	assert.NotContains(t, out, "alice")
	assert.Contains(t, out, "zed")
}

func TestRender_NoResultsAndLoading(t *testing.T) {
	r := NewRenderer()
	snap := searchSnapshot([]string{})
	snap.Query = "zz"

	out := r.Render(ViewState{Width: 80, Search: snap})

	assert.Contains(t, out, "no results for zz")
	assert.Contains(t, out, "loading contributors")
}

func TestCardRenderer(t *testing.T) {
	r := NewCardRenderer(NewStyles())
	c := &domain.Contributor{
		ContributorBase: domain.ContributorBase{ID: 7, Login: "alice"},
		Contributions: domain.Contributions{
			Total:  1234,
			ByKind: domain.ByKind{domain.KindCommit: 1, domain.KindPullRequest: 1233},
		},
		Years:        []int{2021, 2023},
		Repositories: []string{"website"},
		FirstContribution: domain.FirstContribution{
			Kind: domain.KindCommit, Owner: "kubernetes", Repository: "website",
			SHA: "abc", Title: "Fix typo ", Timestamp: 1609459200,
		},
	}

	out := r.Render(CardState{Status: CardLoaded, Login: "alice", Contributor: c}, 120)

	assert.Contains(t, out, "1 commit")
	assert.Contains(t, out, "1.2k pull requests")
	assert.Contains(t, out, "1.2k")
	assert.Contains(t, out, "1 repository")
	assert.Contains(t, out, "Jan 1, 2021")
	assert.Contains(t, out, "https://github.com/kubernetes/website/commit/abc")
	assert.Contains(t, out, "Years contributing (2)")
	assert.NotContains(t, out, "issue")

	assert.Contains(t, r.Render(CardState{Status: CardLoading, Login: "alice"}, 80), "Loading alice")
	assert.Contains(t, r.Render(CardState{Status: CardFailed, Login: "alice", Err: errors.New("boom")}, 80), "boom")
	assert.Empty(t, r.Render(CardState{}, 80))
}
