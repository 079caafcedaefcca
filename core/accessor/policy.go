package accessor

import (
	"fmt"
	"reflect"

	"github.com/sbalogh/rttr/core/variant"
)

var anySliceType = reflect.TypeOf([]any(nil))

// Policy decides how the results of a call cross into a variant.
// A policy is chosen once, when the accessor is built, and applied on every call.
type Policy interface {
	// Check validates that the policy can bind results of the given types.
	Check(results []reflect.Type) error
	// ReturnType reports the type of the variants produced by Bind.
	// A nil type means the call yields the void variant.
	ReturnType(results []reflect.Type) reflect.Type
	// Bind turns the results of one call into a variant.
	Bind(results []reflect.Value) variant.Variant

	fmt.Stringer
}

// Available policies.
var (
	// Default binds a single result as returned, several results as []any
	// and no result as void.
	Default Policy = defaultPolicy{}
	// ReturnAsPtr binds a pointer to the result. Results that are not pointers
	// are copied into a fresh one.
	ReturnAsPtr Policy = ptrPolicy{}
	// ReturnAsCopy binds an owned copy of the result, dereferencing pointers.
	ReturnAsCopy Policy = copyPolicy{}
	// DiscardReturn ignores the results and binds void.
	DiscardReturn Policy = discardPolicy{}
)

// ParsePolicy returns the policy called name, as printed by its String method.
// An empty name selects Default.
func ParsePolicy(name string) (Policy, error) {
	for _, p := range []Policy{Default, ReturnAsPtr, ReturnAsCopy, DiscardReturn} {
		if p.String() == name {
			return p, nil
		}
	}
	if name == "" {
		return Default, nil
	}

	return nil, fmt.Errorf("%w: '%s'", ErrUnknownPolicy, name)
}

type defaultPolicy struct{}

func (defaultPolicy) Check([]reflect.Type) error { return nil }

func (defaultPolicy) ReturnType(results []reflect.Type) reflect.Type {
	switch len(results) {
	case 0:
		return nil
	case 1:
		return results[0]
	default:
		return anySliceType
	}
}

func (defaultPolicy) Bind(results []reflect.Value) variant.Variant {
	switch len(results) {
	case 0:
		return variant.Void()
	case 1:
		return variant.FromValue(results[0])
	}

	out := make([]any, len(results))
	for i, res := range results {
		out[i] = res.Interface()
	}

	return variant.Of(out)
}

func (defaultPolicy) String() string { return "default" }

type ptrPolicy struct{}

func (p ptrPolicy) Check(results []reflect.Type) error {
	return singleResult(p, results)
}

func (ptrPolicy) ReturnType(results []reflect.Type) reflect.Type {
	if results[0].Kind() == reflect.Pointer {
		return results[0]
	}

	return reflect.PointerTo(results[0])
}

func (ptrPolicy) Bind(results []reflect.Value) variant.Variant {
	res := results[0]
	if res.Kind() == reflect.Pointer {
		return variant.FromValue(res)
	}

	ptr := reflect.New(res.Type())
	ptr.Elem().Set(res)

	return variant.FromValue(ptr)
}

func (ptrPolicy) String() string { return "as_ptr" }

type copyPolicy struct{}

func (p copyPolicy) Check(results []reflect.Type) error {
	return singleResult(p, results)
}

func (copyPolicy) ReturnType(results []reflect.Type) reflect.Type {
	if results[0].Kind() == reflect.Pointer {
		return results[0].Elem()
	}

	return results[0]
}

func (copyPolicy) Bind(results []reflect.Value) variant.Variant {
	res := results[0]
	if res.Kind() != reflect.Pointer {
		return variant.FromValue(res)
	}
	if res.IsNil() {
		return variant.Invalid(fmt.Errorf("%w: '%s'", ErrNilResult, res.Type()))
	}

	cp := reflect.New(res.Type().Elem()).Elem()
	cp.Set(res.Elem())

	return variant.FromValue(cp)
}

func (copyPolicy) String() string { return "as_copy" }

type discardPolicy struct{}

func (discardPolicy) Check([]reflect.Type) error { return nil }

func (discardPolicy) ReturnType([]reflect.Type) reflect.Type { return nil }

func (discardPolicy) Bind([]reflect.Value) variant.Variant { return variant.Void() }

func (discardPolicy) String() string { return "discard_return" }

func singleResult(p Policy, results []reflect.Type) error {
	if len(results) != 1 {
		return fmt.Errorf("%w: policy %s needs exactly one result, found %d", ErrPolicyMismatch, p, len(results))
	}

	return nil
}
