package utils

import (
	"sort"

	"golang.org/x/exp/maps"
)

// StringSet is a set of unique strings. The zero value is an empty set ready to use.
type StringSet struct {
	m map[string]struct{}
}

// Add adds a string to the set. If string is already in the set, it has no effect.
func (s *StringSet) Add(str string) {
	if s.m == nil {
		s.m = map[string]struct{}{}
	}
	s.m[str] = struct{}{}
}

func (s *StringSet) AddAll(strings ...string) {
	for _, str := range strings {
		s.Add(str)
	}
}

func (s *StringSet) Contains(str string) bool {
	_, ok := s.m[str]
	return ok
}

func (s *StringSet) IsEmpty() bool {
	return len(s.m) == 0
}

// ToSlice returns the strings in the set in ascending order, or nil if the set is empty.
func (s *StringSet) ToSlice() []string {
	if s.IsEmpty() {
		return nil
	}
	res := maps.Keys(s.m)
	sort.Strings(res)
	return res
}
