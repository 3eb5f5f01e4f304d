package models

import (
	"encoding/json"
	"fmt"
	"slices"

	dErrors "tms/pkg/domain-errors"
)

// Ministry is a ministry or organization a tenant can belong to.
// The name is both the display label and the identifier.
type Ministry string

func (m Ministry) String() string {
	return string(m)
}

// MinistryList is an ordered, read-only list of unique ministry names.
// The zero value is an empty list.
type MinistryList struct {
	names []Ministry
	index map[Ministry]int
}

// NewMinistryList builds a list preserving the given order.
// Names must be non-empty and unique; violations are CodeInvariantViolation.
func NewMinistryList(names ...Ministry) (MinistryList, error) {
	list := MinistryList{
		names: slices.Clone(names),
		index: make(map[Ministry]int, len(names)),
	}
	for i, m := range list.names {
		if m == "" {
			return MinistryList{}, dErrors.New(dErrors.CodeInvariantViolation, fmt.Sprintf("ministry %d: name is required", i))
		}
		if _, dup := list.index[m]; dup {
			return MinistryList{}, dErrors.New(dErrors.CodeInvariantViolation, fmt.Sprintf("duplicate ministry %q", m))
		}
		list.index[m] = i
	}
	return list, nil
}

// MustMinistryList panics if names break a list invariant.
func MustMinistryList(names ...Ministry) MinistryList {
	list, err := NewMinistryList(names...)
	if err != nil {
		panic(err)
	}
	return list
}

// All returns the names in listing order.
func (l MinistryList) All() []Ministry {
	return slices.Clone(l.names)
}

// Strings returns the names as plain strings, for form controls.
func (l MinistryList) Strings() []string {
	out := make([]string, len(l.names))
	for i, m := range l.names {
		out[i] = string(m)
	}
	return out
}

// Len returns the number of ministries.
func (l MinistryList) Len() int {
	return len(l.names)
}

// At returns the i-th ministry. It panics if i is out of range, like a slice.
func (l MinistryList) At(i int) Ministry {
	return l.names[i]
}

// Index returns the position of m, or -1.
func (l MinistryList) Index(m Ministry) int {
	i, ok := l.index[m]
	if !ok {
		return -1
	}
	return i
}

// Contains reports whether m is in the list. Matching is exact.
func (l MinistryList) Contains(m Ministry) bool {
	_, ok := l.index[m]
	return ok
}

// MarshalJSON renders the list as an ordered array of strings.
func (l MinistryList) MarshalJSON() ([]byte, error) {
	if l.names == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l.names)
}
