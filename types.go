package pairly

import (
	"fmt"
	"reflect"
)

type (
	//TypeSet represents an ordered set of distinct declared element types
	TypeSet struct {
		types  []reflect.Type
		labels []string
		index  map[reflect.Type]int
	}
)

// NewTypeSet creates a type set; declaration order is significant and
// duplicates are rejected.
func NewTypeSet(types ...reflect.Type) (*TypeSet, error) {
	if len(types) == 0 {
		return nil, fmt.Errorf("type set was empty")
	}
	var result = &TypeSet{
		types:  make([]reflect.Type, 0, len(types)),
		labels: make([]string, 0, len(types)),
		index:  make(map[reflect.Type]int, len(types)),
	}
	for _, t := range types {
		if err := result.add(t, ""); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (s *TypeSet) add(t reflect.Type, label string) error {
	if t == nil {
		return fmt.Errorf("declared type was nil")
	}
	if _, ok := s.index[t]; ok {
		return fmt.Errorf("duplicate declared type: %s", t.String())
	}
	if label == "" {
		if label = t.Name(); label == "" {
			label = t.String()
		}
	}
	s.index[t] = len(s.types)
	s.types = append(s.types, t)
	s.labels = append(s.labels, label)
	return nil
}

// Len returns the number of declared types
func (s *TypeSet) Len() int {
	return len(s.types)
}

// Types returns declared types in declaration order
func (s *TypeSet) Types() []reflect.Type {
	result := make([]reflect.Type, len(s.types))
	copy(result, s.types)
	return result
}

// Index returns a declared type position or -1
func (s *TypeSet) Index(t reflect.Type) int {
	pos, ok := s.index[t]
	if !ok {
		return -1
	}
	return pos
}

// Has returns true if supplied type is declared
func (s *TypeSet) Has(t reflect.Type) bool {
	return s.Index(t) != -1
}

// Label returns a display label for the i-th declared type
func (s *TypeSet) Label(i int) string {
	if i < 0 || i >= len(s.labels) {
		return ""
	}
	return s.labels[i]
}

// TypeOf returns the reflect type for T
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
