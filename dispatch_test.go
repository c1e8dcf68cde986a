package pairly

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector_Dispatch(t *testing.T) {
	typeSet, err := NewTypeSet(TypeOf[dog](), TypeOf[car](), TypeOf[foo](), TypeOf[bar]())
	if !assert.Nil(t, err) {
		return
	}
	vector, err := New(typeSet, WithValues(dog{Name: "rex"}, dog{Name: "azor"}, car{Plate: "KR 1"}, bar{}))
	if !assert.Nil(t, err) {
		return
	}
	assert.Nil(t, vector.Insert(foo{}))

	var output []string
	policy := NewPolicy(
		On[dog, dog](func(a, b dog) {
			output = append(output, "two dogs")
		}),
		On[dog, car](func(a dog, b car) {
			output = append(output, "car hit dog")
		}),
		On[bar, foo](func(a bar, b foo) {
			output = append(output, "foobar")
		}),
	)

	vector.Dispatch(policy)
	assert.Equal(t, []string{"two dogs", "car hit dog", "car hit dog", "foobar"}, output)

	vector.Clear()
	assert.True(t, vector.IsEmpty())
	output = nil
	vector.Dispatch(policy)
	assert.Empty(t, output)
}

func TestVector_Dispatch_callCount(t *testing.T) {
	var testCases = []struct {
		description string
		sizes       []int
		expectCalls int
	}{
		{
			description: "empty buckets",
			sizes:       []int{0, 0, 0},
			expectCalls: 0,
		},
		{
			description: "single element",
			sizes:       []int{1, 0},
			expectCalls: 0,
		},
		{
			description: "two buckets (3,2)", //3 + 1 same-ish + 12 cross
			sizes:       []int{3, 2},
			expectCalls: 3 + 1 + 2*3*2,
		},
		{
			description: "three buckets (2,1,4)",
			sizes:       []int{2, 1, 4},
			expectCalls: 1 + 6 + 2*(2*1+2*4+1*4),
		},
		{
			description: "same type only",
			sizes:       []int{5},
			expectCalls: 10,
		},
	}

	seeders := []func(v *Vector, i int) error{
		func(v *Vector, i int) error { return v.Insert(dog{Name: fmt.Sprintf("d%v", i)}) },
		func(v *Vector, i int) error { return v.Insert(car{Plate: fmt.Sprintf("c%v", i)}) },
		func(v *Vector, i int) error { return v.Insert(foo{}) },
	}
	types := []reflect.Type{TypeOf[dog](), TypeOf[car](), TypeOf[foo]()}

	for _, testCase := range testCases {
		vector, err := Of(types[:len(testCase.sizes)]...)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		for bucketPos, size := range testCase.sizes {
			for i := 0; i < size; i++ {
				assert.Nil(t, seeders[bucketPos](vector, i), testCase.description)
			}
		}
		calls := 0
		vector.Dispatch(NewPolicy(WithFallback(func(a, b interface{}) {
			calls++
		})))
		assert.Equal(t, testCase.expectCalls, calls, testCase.description)
		assert.Equal(t, testCase.expectCalls, vector.Stats().Calls, testCase.description)
	}
}

func TestVector_Dispatch_deterministic(t *testing.T) {
	vector, err := Of(TypeOf[dog](), TypeOf[car](), TypeOf[foo]())
	assert.Nil(t, err)
	for i := 0; i < 3; i++ {
		assert.Nil(t, vector.Insert(dog{Name: fmt.Sprintf("d%v", i)}))
	}
	assert.Nil(t, vector.Insert(car{Plate: "KR 1"}))
	assert.Nil(t, vector.Insert(foo{}))
	assert.Nil(t, vector.Insert(car{Plate: "KR 2"}))

	logPolicy := func(log *[]string) *Policy {
		return NewPolicy(WithFallback(func(a, b interface{}) {
			*log = append(*log, fmt.Sprintf("%T|%T", a, b))
		}))
	}
	var first, second []string
	vector.Dispatch(logPolicy(&first))
	vector.Dispatch(logPolicy(&second))
	assert.Equal(t, first, second)
	assert.Equal(t, vector.Stats().Calls, len(first))
}

func TestVector_Dispatch_crossOrder(t *testing.T) {
	//cross-type pairs issue both argument orders, later declared type first
	vector, err := Of(TypeOf[dog](), TypeOf[car]())
	assert.Nil(t, err)
	assert.Nil(t, vector.Insert(dog{Name: "rex"}))
	assert.Nil(t, vector.Insert(car{Plate: "KR 1"}))

	var log []string
	vector.Dispatch(NewPolicy(WithFallback(func(a, b interface{}) {
		log = append(log, fmt.Sprintf("%s|%s", reflect.TypeOf(a).Name(), reflect.TypeOf(b).Name()))
	})))
	assert.Equal(t, []string{"car|dog", "dog|car"}, log)
}

func TestVector_Dispatch_sameTypeSingleOrder(t *testing.T) {
	//same-type pairs are issued once, earlier inserted element first
	vector, err := Of(TypeOf[dog]())
	assert.Nil(t, err)
	for i := 0; i < 3; i++ {
		assert.Nil(t, vector.Insert(dog{Name: fmt.Sprintf("d%v", i)}))
	}
	var log []string
	vector.Dispatch(NewPolicy(On[dog, dog](func(a, b dog) {
		log = append(log, a.Name+"|"+b.Name)
	})))
	assert.Equal(t, []string{"d0|d1", "d0|d2", "d1|d2"}, log)
}

func TestVector_Dispatch_fallbackTransparency(t *testing.T) {
	vector, err := Of(TypeOf[dog](), TypeOf[car]())
	assert.Nil(t, err)
	assert.Nil(t, vector.Insert(dog{}))
	assert.Nil(t, vector.Insert(dog{}))
	assert.Nil(t, vector.Insert(car{}))

	//default fallback performs no observable action
	vector.Dispatch(NewPolicy())
	//nil policy behaves as fallback only
	vector.Dispatch(nil)
	assert.Equal(t, 3, vector.Size())
}
