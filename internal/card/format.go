package card

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"contribcard/internal/domain"
)

// Prettify shortens large counts: 950 -> "950", 1234 -> "1.2k", 2500000 -> "2.5M"
func Prettify(n int) string {
	if n < 1000 && n > -1000 {
		return strconv.Itoa(n)
	}
	return strings.ReplaceAll(humanize.SIWithDigits(float64(n), 1, ""), " ", "")
}

// FormatDate renders a unix timestamp like "Jan 2, 2006" in UTC
func FormatDate(ts int64) string {
	return time.Unix(ts, 0).UTC().Format("Jan 2, 2006")
}

// Plural picks the singular or plural noun for n
func Plural(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}

// KindLabel names a contribution kind for n items
func KindLabel(kind domain.ContributionKind, n int) string {
	switch kind {
	case domain.KindCommit:
		return Plural(n, "commit", "commits")
	case domain.KindIssue:
		return Plural(n, "issue", "issues")
	case domain.KindPullRequest:
		return Plural(n, "pull request", "pull requests")
	default:
		return string(kind)
	}
}

// YearsDescending returns the years newest first without modifying the input
func YearsDescending(years []int) []int {
	out := append([]int(nil), years...)
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}
