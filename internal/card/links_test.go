package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contribcard/internal/domain"
)

func TestFirstContributionURL(t *testing.T) {
	tests := []struct {
		name string
		fc   domain.FirstContribution
		want string
	}{
		{
			name: "commit",
			fc:   domain.FirstContribution{Kind: domain.KindCommit, Owner: "kubernetes", Repository: "kubernetes", SHA: "abc123"},
			want: "https://github.com/kubernetes/kubernetes/commit/abc123",
		},
		{
			name: "issue",
			fc:   domain.FirstContribution{Kind: domain.KindIssue, Owner: "kubernetes", Repository: "website", Number: 7},
			want: "https://github.com/kubernetes/website/issues/7",
		},
		{
			name: "pull request",
			fc:   domain.FirstContribution{Kind: domain.KindPullRequest, Owner: "kubernetes", Repository: "website", Number: 42},
			want: "https://github.com/kubernetes/website/pull/42",
		},
		{
			name: "unknown kind",
			fc:   domain.FirstContribution{Kind: "discussion", Owner: "o", Repository: "r"},
			want: "https://github.com/o/r/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FirstContributionURL(tt.fc))
		})
	}
}

func TestCardURL(t *testing.T) {
	assert.Equal(t, "https://cards.example.org/alice", CardURL("https://cards.example.org/", "alice"))
	assert.Empty(t, CardURL("", "alice"))
	assert.Equal(t, "https://github.com/alice", ProfileURL("alice"))
}

func TestShareLinks(t *testing.T) {
	page := "https://cards.example.org/alice"
	links := ShareLinks(page, "Hi #there")

	require.Len(t, links, len(ShareTargets))
	byTarget := map[ShareTarget]string{}
	for _, l := range links {
		byTarget[l.Target] = l.URL
	}

	assert.Equal(t, "https://twitter.com/intent/tweet?text=Hi%20%23there&url="+page, byTarget[ShareX])
	assert.Equal(t, "https://www.facebook.com/sharer/sharer.php?u="+page+"&quote=Hi%20%23there", byTarget[ShareFacebook])
	assert.Equal(t, "https://www.linkedin.com/sharing/share-offsite/?url="+page, byTarget[ShareLinkedIn])
	assert.Equal(t, "https://web.whatsapp.com/send?text=Hi%20%23there%20https%3A%2F%2Fcards.example.org%2Falice", byTarget[ShareWhatsApp])
	assert.Equal(t, "mailto:?subject=My%20%23FirstContribution%20card&body=Hi%20%23there%20https%3A%2F%2Fcards.example.org%2Falice", byTarget[ShareEmail])
	assert.Equal(t, "https://www.reddit.com/submit?url="+page+"&title=Hi%20%23there", byTarget[ShareReddit])

	assert.Nil(t, ShareLinks("", "msg"))
}
