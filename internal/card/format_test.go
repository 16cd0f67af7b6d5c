package card

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"contribcard/internal/domain"
)

func TestPrettify(t *testing.T) {
	assert.Equal(t, "0", Prettify(0))
	assert.Equal(t, "950", Prettify(950))
	assert.Equal(t, "1k", Prettify(1000))
	assert.Equal(t, "1.2k", Prettify(1234))
	assert.Equal(t, "2.5M", Prettify(2500000))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "Jan 1, 2021", FormatDate(1609459200))
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "commit", KindLabel(domain.KindCommit, 1))
	assert.Equal(t, "commits", KindLabel(domain.KindCommit, 3))
	assert.Equal(t, "pull requests", KindLabel(domain.KindPullRequest, 0))
	assert.Equal(t, "issue", KindLabel(domain.KindIssue, 1))
	assert.Equal(t, "repository", Plural(1, "repository", "repositories"))
	assert.Equal(t, "repositories", Plural(2, "repository", "repositories"))
}

func TestYearsDescending(t *testing.T) {
	in := []int{2021, 2023, 2022}

	assert.Equal(t, []int{2023, 2022, 2021}, YearsDescending(in))
	assert.Equal(t, []int{2021, 2023, 2022}, in)
	assert.Empty(t, YearsDescending(nil))
}
