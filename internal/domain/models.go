package domain

import (
	"encoding/json"
	"fmt"
)

// ContributionKind is the kind of a single contribution
type ContributionKind string

const (
	KindCommit      ContributionKind = "commit"
	KindIssue       ContributionKind = "issue"
	KindPullRequest ContributionKind = "pull_request"
)

// ContributorBase identifies a contributor in the all-contributors index
type ContributorBase struct {
	ID    int64  `json:"id"`
	Login string `json:"login"`
}

// Contributor is the per-contributor document produced by the data build
type Contributor struct {
	ContributorBase
	Contributions     Contributions     `json:"contributions"`
	Years             []int             `json:"years"`
	Repositories      []string          `json:"repositories"`
	FirstContribution FirstContribution `json:"first_contribution"`
}

// Contributions holds the contribution totals of a contributor
type Contributions struct {
	Total  int    `json:"total"`
	ByKind ByKind `json:"by_kind"`
}

// ByKind maps a contribution kind to its count
type ByKind map[ContributionKind]int

// UnmarshalJSON accepts either an object or an array of single-key objects
func (b *ByKind) UnmarshalJSON(data []byte) error {
	out := make(ByKind)

	var asMap map[ContributionKind]int
	if err := json.Unmarshal(data, &asMap); err == nil {
		for k, v := range asMap {
			out[k] += v
		}
		*b = out
		return nil
	}

	var asList []map[ContributionKind]int
	if err := json.Unmarshal(data, &asList); err != nil {
		return fmt.Errorf("by_kind must be an object or a list of objects: %w", err)
	}
	for _, entry := range asList {
		for k, v := range entry {
			out[k] += v
		}
	}
	*b = out
	return nil
}

// FirstContribution describes the oldest contribution of a contributor
type FirstContribution struct {
	Kind       ContributionKind `json:"kind"`
	Owner      string           `json:"owner"`
	Repository string           `json:"repository"`
	SHA        string           `json:"sha,omitempty"`
	Number     int              `json:"number,omitempty"`
	Title      string           `json:"title"`
	Timestamp  int64            `json:"ts"`
}
