package variant

import (
	"fmt"
	"reflect"
)

// Instance is the implicit object a member accessor is invoked on.
// The zero Instance is empty and is what static accessors receive.
type Instance struct {
	value reflect.Value
}

// InstanceOf wraps obj. A nil interface or a nil pointer gives an empty instance.
func InstanceOf(obj any) Instance {
	if obj == nil {
		return Instance{}
	}

	v := reflect.ValueOf(obj)
	if v.Kind() == reflect.Pointer && v.IsNil() {
		return Instance{}
	}

	return Instance{value: v}
}

// InstanceFromVariant uses the value held by v as the implicit object.
func InstanceFromVariant(v Variant) Instance {
	if !v.value.IsValid() {
		return Instance{}
	}

	return InstanceOf(v.Interface())
}

// Empty returns the empty instance.
func Empty() Instance {
	return Instance{}
}

// IsValid reports whether the instance holds an object.
func (i Instance) IsValid() bool {
	return i.value.IsValid()
}

// Type returns the type of the held object, or nil.
func (i Instance) Type() reflect.Type {
	if !i.value.IsValid() {
		return nil
	}

	return i.value.Type()
}

// Interface returns the held object, or nil.
func (i Instance) Interface() any {
	if !i.value.IsValid() {
		return nil
	}

	return i.value.Interface()
}

// Receiver returns the object as a receiver of type t.
//
// A pointer receiver only accepts a pointer, so that methods mutating the
// object never act on a copy. A value receiver accepts the value itself or a
// pointer to it. Interface receivers accept any implementation.
func (i Instance) Receiver(t reflect.Type) (reflect.Value, error) {
	if !i.value.IsValid() {
		return reflect.Value{}, fmt.Errorf("%w: receiver of type '%s' expected", ErrNilInstance, t)
	}

	vt := i.value.Type()

	switch {
	case vt.AssignableTo(t):
		return i.value, nil
	case vt.Kind() == reflect.Pointer && vt.Elem().AssignableTo(t):
		return i.value.Elem(), nil
	}

	return reflect.Value{}, fmt.Errorf("%w: found '%s' but expected '%s'", ErrInstanceType, vt, t)
}
