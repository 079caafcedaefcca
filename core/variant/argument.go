package variant

import "reflect"

// Argument is a type-erased argument handed to an invocation.
type Argument struct {
	v Variant
}

// Arg wraps v as an argument.
func Arg(v any) Argument {
	return Argument{v: Of(v)}
}

// ArgFromVariant uses the value held by v as an argument.
func ArgFromVariant(v Variant) Argument {
	return Argument{v: v}
}

// Args wraps every value of vs as an argument.
func Args(vs ...any) []Argument {
	args := make([]Argument, len(vs))
	for i, v := range vs {
		args[i] = Arg(v)
	}

	return args
}

// StringArgs wraps string values, typically taken from a command line or a
// transport, as arguments. They are parsed when converted.
func StringArgs(ss ...string) []Argument {
	args := make([]Argument, len(ss))
	for i, s := range ss {
		args[i] = Arg(s)
	}

	return args
}

// IsValid reports whether the argument holds a value.
func (a Argument) IsValid() bool {
	return a.v.value.IsValid()
}

// Type returns the type of the held value, or nil.
func (a Argument) Type() reflect.Type {
	return a.v.Type()
}

// Variant returns the argument as a variant.
func (a Argument) Variant() Variant {
	return a.v
}

// Convert converts the argument to t. An argument without value converts to
// the zero value of pointer, interface, map, slice, chan and func types.
func (a Argument) Convert(t reflect.Type) (reflect.Value, error) {
	if !a.IsValid() && nillable(t.Kind()) {
		return reflect.Zero(t), nil
	}

	return a.v.Convert(t)
}
