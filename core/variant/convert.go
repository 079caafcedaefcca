package variant

import (
	"encoding"
	"fmt"
	"math"
	"reflect"
)

var textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()

// convert applies the conversion rules in order:
//  1. assignable values (including interface implementations) are used as is;
//  2. a non-nil pointer is dereferenced when its element is assignable;
//  3. a value is copied into a fresh pointer when the target points to its type;
//  4. numbers are converted between kinds when no information is lost;
//  5. strings are parsed with ParseValue;
//  6. encoding.TextMarshaler values are converted to strings.
func convert(v reflect.Value, t reflect.Type) (reflect.Value, error) {
	if v.Kind() == reflect.Interface {
		if v.IsNil() {
			return convertNil(v, t)
		}
		v = v.Elem()
	}

	vt := v.Type()

	switch {
	case vt.AssignableTo(t):
		return v, nil

	case vt.Kind() == reflect.Pointer && vt.Elem().AssignableTo(t):
		if v.IsNil() {
			return reflect.Value{}, fmt.Errorf("%w: nil '%s' to type '%s'", ErrInvalidArgumentValue, vt, t)
		}
		return v.Elem(), nil

	case t.Kind() == reflect.Pointer && vt.AssignableTo(t.Elem()):
		p := reflect.New(t.Elem())
		p.Elem().Set(v)
		return p, nil

	case isNumber(vt.Kind()) && isNumber(t.Kind()):
		return convertNumber(v, t)

	case vt.Kind() == reflect.String && t.Kind() == reflect.String:
		return v.Convert(t), nil

	case vt.Kind() == reflect.String:
		return ParseValue(v.String(), t)

	case t.Kind() == reflect.String && vt.Implements(textMarshalerType):
		text, err := v.Interface().(encoding.TextMarshaler).MarshalText()
		if err != nil {
			return reflect.Value{}, fmt.Errorf("%w: '%s' to type '%s': %w", ErrInvalidArgumentValue, vt, t, err)
		}
		return reflect.ValueOf(string(text)).Convert(t), nil
	}

	return reflect.Value{}, fmt.Errorf("%w: from type '%s' to type '%s'", ErrUnsupportedConversion, vt, t)
}

func convertNil(v reflect.Value, t reflect.Type) (reflect.Value, error) {
	if nillable(t.Kind()) {
		return reflect.Zero(t), nil
	}

	return reflect.Value{}, fmt.Errorf("%w: nil '%s' to type '%s'", ErrInvalidArgumentValue, v.Type(), t)
}

func nillable(k reflect.Kind) bool {
	switch k {
	case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return true
	default:
		return false
	}
}

func convertNumber(v reflect.Value, t reflect.Type) (reflect.Value, error) {
	lossy := fmt.Errorf("%w: %v does not fit type '%s'", ErrInvalidArgumentValue, v, t)

	switch {
	case isSigned(v.Kind()) && isUnsigned(t.Kind()) && v.Int() < 0:
		return reflect.Value{}, lossy
	case isUnsigned(v.Kind()) && isSigned(t.Kind()) && v.Uint() > 1<<63-1:
		return reflect.Value{}, lossy
	case isFloat(v.Kind()) && isFloat(t.Kind()):
		// narrowing rounds to the nearest float32, only the range is checked
		if f := v.Float(); t.Kind() == reflect.Float32 && !math.IsInf(f, 0) && math.Abs(f) > math.MaxFloat32 {
			return reflect.Value{}, lossy
		}
		return v.Convert(t), nil
	}

	out := v.Convert(t)
	if isSigned(t.Kind()) && isUnsigned(v.Kind()) && out.Int() < 0 {
		return reflect.Value{}, lossy
	}
	if !out.Convert(v.Type()).Equal(v) {
		return reflect.Value{}, lossy
	}

	return out, nil
}

func isSigned(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Int64
}

func isUnsigned(k reflect.Kind) bool {
	return k >= reflect.Uint && k <= reflect.Uintptr
}

func isFloat(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}

func isNumber(k reflect.Kind) bool {
	return isSigned(k) || isUnsigned(k) || isFloat(k)
}
