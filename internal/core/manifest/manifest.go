// Package manifest contains the pure domain logic for assembling a combined
// markdown document: candidate filtering, numeric-prefix indexing with
// last-write-wins collision handling, ordering, and block formatting.
package manifest

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

const (
	// AnchorName is the mandatory document emitted first, unconditionally.
	AnchorName = "README.md"

	// OutputName is the combined artifact written into the working directory.
	OutputName = "MastraCombined.md"
)

// Matches names like "01-system-architecture.md" or "1_request-flow.md".
var numberedPattern = regexp.MustCompile(`^(\d+)[-_].*\.md$`)

// IsCandidate reports whether name is considered for combining: it must end
// in ".md" and must not be the anchor or the output artifact (exact,
// case-sensitive name match on the exclusions).
func IsCandidate(name string) bool {
	if !strings.HasSuffix(name, ".md") {
		return false
	}
	return name != AnchorName && name != OutputName
}

// ParseNumber extracts the numeric ordering key from a numbered file name.
// Leading zeros collapse ("01" and "1" both parse to 1). Returns false for
// names that do not match the numbered pattern, including digit runs too
// large to represent as an int.
func ParseNumber(name string) (int, bool) {
	m := numberedPattern.FindStringSubmatch(name)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// Entry pairs a numeric ordering key with the file name it maps to.
type Entry struct {
	Number int
	Name   string
}

// Collision records a numeric key claimed by more than one file. The file
// indexed later shadows the earlier one; combining stays silent about this,
// doctor surfaces it as a warning.
type Collision struct {
	Number   int
	Shadowed string
	Winner   string
}

// Index maps numeric keys to file names. When two names parse to the same
// key, the one added last wins.
type Index struct {
	byNumber   map[int]string
	collisions []Collision
}

// NewIndex creates an empty index.
func NewIndex() *Index {
	return &Index{byNumber: make(map[int]string)}
}

// Add indexes name under its numeric key. It reports whether the name
// matched the numbered pattern; non-matching names are ignored.
func (ix *Index) Add(name string) bool {
	n, ok := ParseNumber(name)
	if !ok {
		return false
	}
	if prev, exists := ix.byNumber[n]; exists && prev != name {
		ix.collisions = append(ix.collisions, Collision{Number: n, Shadowed: prev, Winner: name})
	}
	ix.byNumber[n] = name
	return true
}

// Len returns the number of distinct numeric keys indexed.
func (ix *Index) Len() int {
	return len(ix.byNumber)
}

// Ordered returns the indexed entries in ascending key order.
func (ix *Index) Ordered() []Entry {
	keys := make([]int, 0, len(ix.byNumber))
	for n := range ix.byNumber {
		keys = append(keys, n)
	}
	sort.Ints(keys)

	entries := make([]Entry, len(keys))
	for i, n := range keys {
		entries[i] = Entry{Number: n, Name: ix.byNumber[n]}
	}
	return entries
}

// Collisions returns the recorded key collisions in the order they occurred.
func (ix *Index) Collisions() []Collision {
	return ix.collisions
}

// FileBlock returns the block appended to the accumulator for one numbered
// file: two blank lines, a level-1 heading naming the file, two more blank
// lines, the raw content, then two trailing blank lines.
func FileBlock(name, content string) string {
	return "\n\n# File: " + name + "\n\n" + content + "\n\n"
}
