package codegap

import (
	"encoding/json"
	"slices"
	"strconv"
	"strings"
)

// CodeSet is a set of country/region codes.
type CodeSet map[string]struct{}

// NewCodeSet returns a set holding codes.
func NewCodeSet(codes ...string) CodeSet {
	s := make(CodeSet, len(codes))
	for _, c := range codes {
		s.Add(c)
	}
	return s
}

// Add inserts code. Adding a present code is a no-op.
func (s CodeSet) Add(code string) {
	s[code] = struct{}{}
}

// Has reports whether code is in the set.
func (s CodeSet) Has(code string) bool {
	_, ok := s[code]
	return ok
}

func (s CodeSet) Len() int {
	return len(s)
}

// Sorted returns the members in ascending order. Never nil.
func (s CodeSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	slices.Sort(out)
	return out
}

// String renders the set as a literal, e.g. {"DE", "FR", "US"}. Members are
// sorted and quoted so blank codes stay visible.
func (s CodeSet) String() string {
	sorted := s.Sorted()
	quoted := make([]string, len(sorted))
	for i, c := range sorted {
		quoted[i] = strconv.Quote(c)
	}
	return "{" + strings.Join(quoted, ", ") + "}"
}

// MarshalJSON encodes the set as a sorted array.
func (s CodeSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

// UnmarshalJSON decodes an array of codes.
func (s *CodeSet) UnmarshalJSON(data []byte) error {
	var codes []string
	if err := json.Unmarshal(data, &codes); err != nil {
		return err
	}
	*s = NewCodeSet(codes...)
	return nil
}
