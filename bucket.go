package pairly

import (
	"reflect"
	"unsafe"

	"github.com/viant/xunsafe"
)

// bucket owns insertion-ordered, type-erasure free storage for one declared
// type: elements live in a real []T grown in place.
type bucket struct {
	elemType reflect.Type
	xSlice   *xunsafe.Slice
	holder   interface{} //*[]T, keeps storage addressable
	ptr      unsafe.Pointer
	appender *xunsafe.Appender
}

func newBucket(elemType reflect.Type) *bucket {
	xSlice := slices.lookup(elemType)
	holder := reflect.New(xSlice.Type)
	return &bucket{
		elemType: elemType,
		xSlice:   xSlice,
		holder:   holder.Interface(),
		ptr:      unsafe.Pointer(holder.Pointer()),
	}
}

func (b *bucket) append(value interface{}) {
	if b.appender == nil {
		b.appender = b.xSlice.Appender(b.ptr)
	}
	b.appender.Append(value)
}

func (b *bucket) len() int {
	return b.xSlice.Len(b.ptr)
}

func (b *bucket) valueAt(index int) interface{} {
	return b.xSlice.ValueAt(b.ptr, index)
}

func (b *bucket) clear() {
	reflect.ValueOf(b.holder).Elem().Set(reflect.Zero(b.xSlice.Type))
	b.appender = nil
}
