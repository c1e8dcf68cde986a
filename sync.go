package pairly

import (
	"reflect"
	"sync"

	"github.com/viant/xunsafe"
)

// sliceCache shares xunsafe slice metadata across vectors holding the
// same element type.
type sliceCache struct {
	m   map[reflect.Type]*xunsafe.Slice
	mux sync.RWMutex
}

var slices = &sliceCache{m: make(map[reflect.Type]*xunsafe.Slice)}

// lookup returns cached slice metadata for []elemType, building it on first use
func (c *sliceCache) lookup(elemType reflect.Type) *xunsafe.Slice {
	c.mux.RLock()
	ret, ok := c.m[elemType]
	c.mux.RUnlock()
	if ok {
		return ret
	}
	c.mux.Lock()
	defer c.mux.Unlock()
	if ret, ok = c.m[elemType]; ok {
		return ret
	}
	ret = xunsafe.NewSlice(reflect.SliceOf(elemType))
	c.m[elemType] = ret
	return ret
}
