package models

import (
	"encoding/json"
	"fmt"
	"slices"

	dErrors "tms/pkg/domain-errors"
)

// Option is one selectable entry of an option set.
// Value is the stable identifier sent to the back end; Title is display text
// and may change without breaking consumers.
type Option[V ~string] struct {
	Key   string `json:"key"`
	Title string `json:"title"`
	Value V      `json:"value"`
}

// OptionSet is an ordered, read-only collection of options.
//
// Invariants:
//   - keys and values are unique within the set
//   - titles are non-empty
//   - entries never change after construction; accessors hand out copies
//
// The zero value is an empty set.
type OptionSet[V ~string] struct {
	options []Option[V]
	byKey   map[string]int
	byValue map[V]int
}

// NewOptionSet builds a set preserving the given order.
//
// Errors: CodeInvariantViolation when a key, title or value is empty or a
// key or value repeats.
func NewOptionSet[V ~string](options ...Option[V]) (OptionSet[V], error) {
	set := OptionSet[V]{
		options: slices.Clone(options),
		byKey:   make(map[string]int, len(options)),
		byValue: make(map[V]int, len(options)),
	}
	for i, o := range set.options {
		if o.Key == "" || o.Value == "" || o.Title == "" {
			return OptionSet[V]{}, dErrors.New(dErrors.CodeInvariantViolation, fmt.Sprintf("option %d: key, title and value are required", i))
		}
		if _, dup := set.byKey[o.Key]; dup {
			return OptionSet[V]{}, dErrors.New(dErrors.CodeInvariantViolation, fmt.Sprintf("duplicate option key %q", o.Key))
		}
		if _, dup := set.byValue[o.Value]; dup {
			return OptionSet[V]{}, dErrors.New(dErrors.CodeInvariantViolation, fmt.Sprintf("duplicate option value %q", o.Value))
		}
		set.byKey[o.Key] = i
		set.byValue[o.Value] = i
	}
	return set, nil
}

// MustOptionSet is NewOptionSet for package-level literal tables.
// It panics if the table breaks a set invariant.
func MustOptionSet[V ~string](options ...Option[V]) OptionSet[V] {
	set, err := NewOptionSet(options...)
	if err != nil {
		panic(err)
	}
	return set
}

// All returns the options in listing order.
func (s OptionSet[V]) All() []Option[V] {
	return slices.Clone(s.options)
}

// Len returns the number of options.
func (s OptionSet[V]) Len() int {
	return len(s.options)
}

// Keys returns the symbolic keys in listing order.
func (s OptionSet[V]) Keys() []string {
	keys := make([]string, len(s.options))
	for i, o := range s.options {
		keys[i] = o.Key
	}
	return keys
}

// Values returns the identifiers in listing order.
func (s OptionSet[V]) Values() []V {
	values := make([]V, len(s.options))
	for i, o := range s.options {
		values[i] = o.Value
	}
	return values
}

// Get looks an option up by its symbolic key, e.g. "EMAIL".
func (s OptionSet[V]) Get(key string) (Option[V], bool) {
	i, ok := s.byKey[key]
	if !ok {
		return Option[V]{}, false
	}
	return s.options[i], true
}

// ByValue looks an option up by its identifier.
func (s OptionSet[V]) ByValue(v V) (Option[V], bool) {
	i, ok := s.byValue[v]
	if !ok {
		return Option[V]{}, false
	}
	return s.options[i], true
}

// Contains reports whether v is one of the set's identifiers.
func (s OptionSet[V]) Contains(v V) bool {
	_, ok := s.byValue[v]
	return ok
}

// Title returns the display label for v, or "" when v is not in the set.
func (s OptionSet[V]) Title(v V) string {
	o, _ := s.ByValue(v)
	return o.Title
}

// MarshalJSON renders the set as an ordered array of options.
func (s OptionSet[V]) MarshalJSON() ([]byte, error) {
	if s.options == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.options)
}
