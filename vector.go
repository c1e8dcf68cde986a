package pairly

import (
	"fmt"
	"reflect"
)

type (
	//Vector represents a heterogeneous vector partitioned into per-type
	//buckets, one per declared type, in declaration order
	Vector struct {
		typeSet *TypeSet
		buckets []*bucket
	}
)

// New creates a vector for supplied type set
func New(typeSet *TypeSet, opts ...Option) (*Vector, error) {
	if typeSet == nil || typeSet.Len() == 0 {
		return nil, fmt.Errorf("type set was empty")
	}
	var result = &Vector{typeSet: typeSet, buckets: make([]*bucket, typeSet.Len())}
	for i, t := range typeSet.types {
		result.buckets[i] = newBucket(t)
	}
	options := newOptions(opts)
	for _, value := range options.values {
		if err := result.Insert(value); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// Of creates a vector for supplied declared types
func Of(types ...reflect.Type) (*Vector, error) {
	typeSet, err := NewTypeSet(types...)
	if err != nil {
		return nil, err
	}
	return New(typeSet)
}

// TypeSet returns vector declared type set
func (v *Vector) TypeSet() *TypeSet {
	return v.typeSet
}

// Insert appends value to its declared type bucket, preserving insertion
// order; value of an undeclared type is rejected before any bucket changes.
func (v *Vector) Insert(value interface{}) error {
	valueType := reflect.TypeOf(value)
	pos := v.typeSet.Index(valueType)
	if pos == -1 {
		return fmt.Errorf("failed to insert %s: type not declared", typeName(valueType))
	}
	v.buckets[pos].append(value)
	return nil
}

// Append appends a typed value to its declared type bucket
func Append[T any](v *Vector, value T) error {
	return v.Insert(value)
}

// Size returns total element count across all buckets
func (v *Vector) Size() int {
	result := 0
	for _, b := range v.buckets {
		result += b.len()
	}
	return result
}

// IsEmpty returns true if vector holds no elements
func (v *Vector) IsEmpty() bool {
	return v.Size() == 0
}

// Clear empties every bucket; no handlers are invoked
func (v *Vector) Clear() {
	for _, b := range v.buckets {
		b.clear()
	}
}

// Each visits all elements in declaration then insertion order, calling the
// provided function with each element type and value.
// If the callback returns (false, nil), the visit stops.
// If the callback returns an error, the visit stops and returns that error.
func (v *Vector) Each(fn func(t reflect.Type, element interface{}) (bool, error)) error {
	for _, b := range v.buckets {
		count := b.len()
		for i := 0; i < count; i++ {
			cont, err := fn(b.elemType, b.valueAt(i))
			if err != nil {
				return err
			}
			if !cont {
				return nil
			}
		}
	}
	return nil
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
