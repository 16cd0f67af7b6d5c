// Package directory holds the immutable list of known contributors loaded from
// the all-contributors index.
package directory

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// AvatarBaseURL is where GitHub serves avatars by numeric user id
const AvatarBaseURL = "https://avatars.githubusercontent.com/u/"

// Directory is an ordered, read-only set of contributor logins.
// A nil *Directory behaves as an empty one.
type Directory struct {
	logins []string
	ids    map[string]int64
}

// New builds a directory from a login -> id index. Logins are ordered with a
// locale-aware collator so that "alice", "Alan" and "ana" sort the way a
// person expects.
func New(index map[string]int64) *Directory {
	logins := make([]string, 0, len(index))
	ids := make(map[string]int64, len(index))
	for login, id := range index {
		if login == "" {
			continue
		}
		logins = append(logins, login)
		ids[login] = id
	}
	collate.New(language.Und).SortStrings(logins)
	return &Directory{logins: logins, ids: ids}
}

// Empty returns a directory with no entries
func Empty() *Directory {
	return &Directory{ids: map[string]int64{}}
}

// List returns the ordered logins. Callers must not modify the slice.
func (d *Directory) List() []string {
	if d == nil {
		return nil
	}
	return d.logins
}

// Lookup returns the numeric GitHub id of a login
func (d *Directory) Lookup(login string) (int64, bool) {
	if d == nil {
		return 0, false
	}
	id, ok := d.ids[login]
	return id, ok
}

// Len returns the number of contributors
func (d *Directory) Len() int {
	if d == nil {
		return 0
	}
	return len(d.logins)
}

// AvatarURL returns the avatar location for a GitHub user id
func AvatarURL(id int64) string {
	return AvatarBaseURL + strconv.FormatInt(id, 10)
}

// Decode parses an index document. Both {"login": id, ...} and
// [{"login": id}, ...] are accepted.
func Decode(r io.Reader) (*Directory, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read index: %w", err)
	}
	index, err := parseIndex(raw)
	if err != nil {
		return nil, err
	}
	return New(index), nil
}

func parseIndex(raw []byte) (map[string]int64, error) {
	var asMap map[string]int64
	if err := json.Unmarshal(raw, &asMap); err == nil {
		if asMap == nil {
			asMap = map[string]int64{}
		}
		return asMap, nil
	}

	var asList []map[string]int64
	if err := json.Unmarshal(raw, &asList); err != nil {
		return nil, fmt.Errorf("index must be an object or a list of objects: %w", err)
	}
	index := make(map[string]int64, len(asList))
	for _, entry := range asList {
		for login, id := range entry {
			index[login] = id
		}
	}
	return index, nil
}
