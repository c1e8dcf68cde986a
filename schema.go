package pairly

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/viant/tagly/format"
	"github.com/viant/xunsafe"
)

// TagName defines pairly schema tag
const TagName = "pairly"

// TypeSetOf builds a type set from the exported slice fields of a struct
// type, in field declaration order; each field's element type becomes a
// declared type. The pairly tag supplies a bucket label (`pairly:"dogs"`)
// or excludes a field (`pairly:"-"`).
func TypeSetOf(owner reflect.Type) (*TypeSet, error) {
	structType := ensureStruct(owner)
	if structType == nil {
		return nil, fmt.Errorf("supplied type is not struct")
	}
	var result = &TypeSet{index: make(map[reflect.Type]int, structType.NumField())}
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		elemType, label, skip, err := schemaField(field)
		if err != nil {
			return nil, err
		}
		if skip {
			continue
		}
		if err = result.add(elemType, label); err != nil {
			return nil, err
		}
	}
	if result.Len() == 0 {
		return nil, fmt.Errorf("struct %s has no declarable fields", structType.String())
	}
	return result, nil
}

// FromStruct builds a vector declared by the value's struct type and seeded
// with the current contents of its slice fields, preserving field order then
// element order.
func FromStruct(value interface{}) (*Vector, error) {
	valueType := reflect.TypeOf(value)
	structType := ensureStruct(valueType)
	if structType == nil {
		return nil, fmt.Errorf("expected struct or pointer to struct, got %T", value)
	}
	typeSet, err := TypeSetOf(structType)
	if err != nil {
		return nil, err
	}
	result, err := New(typeSet)
	if err != nil {
		return nil, err
	}
	if valueType.Kind() != reflect.Ptr {
		rPointer := reflect.New(structType)
		rPointer.Elem().Set(reflect.ValueOf(value))
		value = rPointer.Interface()
	}
	ptr := xunsafe.AsPointer(value)
	xStruct := xunsafe.NewStruct(structType)
	for i := 0; i < structType.NumField(); i++ {
		elemType, _, skip, _ := schemaField(structType.Field(i))
		if skip {
			continue
		}
		xField := &xStruct.Fields[i]
		fieldPtr := xField.Pointer(ptr)
		xSlice := slices.lookup(elemType)
		count := xSlice.Len(fieldPtr)
		pos := typeSet.Index(elemType)
		for j := 0; j < count; j++ {
			result.buckets[pos].append(xSlice.ValueAt(fieldPtr, j))
		}
	}
	return result, nil
}

func schemaField(field reflect.StructField) (reflect.Type, string, bool, error) {
	if field.PkgPath != "" { //unexported
		return nil, "", true, nil
	}
	tagValue, _ := field.Tag.Lookup(TagName)
	name, caseFormat := parseTag(tagValue)
	if name == "-" {
		return nil, "", true, nil
	}
	if field.Type.Kind() != reflect.Slice {
		return nil, "", false, fmt.Errorf("field %v: expected slice, got %s", field.Name, field.Type.String())
	}
	label := field.Name
	if name != "" || caseFormat != "" {
		fTag := &format.Tag{Name: name, CaseFormat: caseFormat}
		if fTag.Name == "" {
			fTag.Name = field.Name
		}
		if formatted := fTag.CaseFormatName(""); formatted != "" {
			label = formatted
		}
	}
	return field.Type.Elem(), label, false, nil
}

func parseTag(tagValue string) (name string, caseFormat string) {
	for i, fragment := range strings.Split(tagValue, ",") {
		fragment = strings.TrimSpace(fragment)
		switch {
		case strings.HasPrefix(fragment, "caseFormat="):
			caseFormat = fragment[len("caseFormat="):]
		case i == 0:
			name = fragment
		}
	}
	return name, caseFormat
}

func ensureStruct(t reflect.Type) reflect.Type {
	if t == nil {
		return nil
	}
	switch t.Kind() {
	case reflect.Struct:
		return t
	case reflect.Ptr:
		return ensureStruct(t.Elem())
	}
	return nil
}
