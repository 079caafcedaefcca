package variant

import (
	"errors"
	"fmt"
	"reflect"
)

// Error types.
var (
	ErrInvalidArgumentValue  = errors.New("invalid argument value")
	ErrUnsupportedConversion = errors.New("unsupported conversion")
	ErrNilInstance           = errors.New("instance is empty")
	ErrInstanceType          = errors.New("instance type mismatch")
	ErrInvalidVariant        = errors.New("variant is invalid")
)

// Variant is a type-erased value. It is in one of three states:
//   - holding a value of some concrete type;
//   - void: valid, but without a value, as returned by calls that return nothing;
//   - invalid: the empty sentinel, optionally carrying the reason it is empty.
//
// The zero Variant is invalid.
type Variant struct {
	value reflect.Value
	void  bool
	err   error
}

// Of wraps v. A nil interface gives an invalid variant.
func Of(v any) Variant {
	if v == nil {
		return Variant{}
	}

	return Variant{value: reflect.ValueOf(v)}
}

// FromValue wraps an existing reflect.Value.
func FromValue(v reflect.Value) Variant {
	return Variant{value: v}
}

// Void returns the valid variant without value.
func Void() Variant {
	return Variant{void: true}
}

// Invalid returns the empty sentinel carrying err as the reason.
func Invalid(err error) Variant {
	return Variant{err: err}
}

// IsValid reports whether the variant holds a value or is void.
func (v Variant) IsValid() bool {
	return v.void || v.value.IsValid()
}

// IsVoid reports whether the variant is the void variant.
func (v Variant) IsVoid() bool {
	return v.void
}

// Type returns the type of the held value, or nil for void and invalid variants.
func (v Variant) Type() reflect.Type {
	if !v.value.IsValid() {
		return nil
	}

	return v.value.Type()
}

// Value returns the held reflect.Value. It is the zero Value for void and
// invalid variants.
func (v Variant) Value() reflect.Value {
	return v.value
}

// Interface returns the held value, or nil for void and invalid variants.
func (v Variant) Interface() any {
	if !v.value.IsValid() || !v.value.CanInterface() {
		return nil
	}

	return v.value.Interface()
}

// Err returns the reason an invalid variant is empty. It is nil for valid
// variants and for invalid variants built without a reason.
func (v Variant) Err() error {
	if v.IsValid() {
		return nil
	}

	return v.err
}

// String implements fmt.Stringer.
func (v Variant) String() string {
	switch {
	case v.void:
		return "void"
	case !v.value.IsValid():
		if v.err != nil {
			return fmt.Sprintf("invalid: %v", v.err)
		}
		return "invalid"
	default:
		return fmt.Sprintf("%v", v.Interface())
	}
}

// Convert converts the held value to t following the argument conversion rules.
func (v Variant) Convert(t reflect.Type) (reflect.Value, error) {
	if !v.value.IsValid() {
		return reflect.Value{}, fmt.Errorf("%w: to type '%s'", ErrInvalidVariant, t)
	}

	return convert(v.value, t)
}

// Get extracts the held value as T. It reports false when the variant is not
// valid or the value cannot be converted to T.
func Get[T any](v Variant) (T, bool) {
	var zero T

	t := reflect.TypeOf((*T)(nil)).Elem()
	out, err := v.Convert(t)
	if err != nil {
		return zero, false
	}

	res, ok := out.Interface().(T)
	return res, ok
}
