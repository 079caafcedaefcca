// Package accessor binds Go functions and methods to a type-erased calling
// convention. An Accessor converts variant arguments to the declared parameter
// types, calls the function and hands the results to its Policy.
package accessor

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/sbalogh/rttr/core/variant"
)

// Error types.
var (
	ErrNotFunc                = errors.New("accessor target is not a function")
	ErrIncorrectArgumentCount = errors.New("incorrect number of arguments")
	ErrCallFailed             = errors.New("call failed")
	ErrNilResult              = errors.New("nil result")
	ErrPolicyMismatch         = errors.New("policy does not match signature")
	ErrUnknownPolicy          = errors.New("unknown policy")
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Accessor is a callable function with its signature resolved once.
// It is immutable and safe for concurrent use as long as the target is.
type Accessor struct {
	fn         reflect.Value
	static     bool
	recv       reflect.Type
	params     []reflect.Type
	results    []reflect.Type
	returnsErr bool
	variadic   bool
	policy     Policy
}

// NewFunc builds a static accessor over the function value fn.
func NewFunc(fn any, policy Policy) (*Accessor, error) {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return nil, fmt.Errorf("%w: %T", ErrNotFunc, fn)
	}

	return build(v, true, policy)
}

// NewMethod builds a member accessor over a method expression such as
// (*T).Method. The first parameter of fn is the receiver.
func NewMethod(fn any, policy Policy) (*Accessor, error) {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return nil, fmt.Errorf("%w: %T", ErrNotFunc, fn)
	}
	if v.Type().NumIn() == 0 {
		return nil, fmt.Errorf("%w: method expression without receiver: %s", ErrNotFunc, v.Type())
	}

	return build(v, false, policy)
}

// FromMethod builds a member accessor from a method of a concrete type.
// Methods of interface types carry no function and are rejected.
func FromMethod(m reflect.Method, policy Policy) (*Accessor, error) {
	if !m.Func.IsValid() {
		return nil, fmt.Errorf("%w: method %s has no implementation", ErrNotFunc, m.Name)
	}

	return build(m.Func, false, policy)
}

func build(fn reflect.Value, static bool, policy Policy) (*Accessor, error) {
	if policy == nil {
		policy = Default
	}

	ft := fn.Type()
	a := &Accessor{
		fn:       fn,
		static:   static,
		variadic: ft.IsVariadic(),
		policy:   policy,
	}

	first := 0
	if !static {
		a.recv = ft.In(0)
		first = 1
	}
	for i := first; i < ft.NumIn(); i++ {
		a.params = append(a.params, ft.In(i))
	}

	n := ft.NumOut()
	if n > 0 && ft.Out(n-1) == errorType {
		a.returnsErr = true
		n--
	}
	for i := 0; i < n; i++ {
		a.results = append(a.results, ft.Out(i))
	}

	if err := policy.Check(a.results); err != nil {
		return nil, fmt.Errorf("%w: %s", err, ft)
	}

	return a, nil
}

// IsStatic reports whether the accessor is called without an object.
func (a *Accessor) IsStatic() bool { return a.static }

// Arity is the number of declared parameters, the receiver excluded.
func (a *Accessor) Arity() int { return len(a.params) }

// ReceiverType returns the receiver type of a member accessor, or nil.
func (a *Accessor) ReceiverType() reflect.Type { return a.recv }

// IsConstReceiver reports whether the method cannot mutate its object,
// that is it has a value receiver. Static accessors report false.
func (a *Accessor) IsConstReceiver() bool {
	return a.recv != nil && !isMutable(a.recv.Kind())
}

// ReturnType reports the type of the variants returned by Invoke.
// It is nil when calls yield void.
func (a *Accessor) ReturnType() reflect.Type { return a.policy.ReturnType(a.results) }

// ReturnsError reports whether the function returns a trailing error.
func (a *Accessor) ReturnsError() bool { return a.returnsErr }

// IsVariadic reports whether the last parameter is variadic. It is passed as
// one slice argument.
func (a *Accessor) IsVariadic() bool { return a.variadic }

// Policy returns the binding policy.
func (a *Accessor) Policy() Policy { return a.policy }

// ParameterTypes returns the declared parameter types in order.
func (a *Accessor) ParameterTypes() []reflect.Type {
	out := make([]reflect.Type, len(a.params))
	copy(out, a.params)

	return out
}

// IsReference reports for each parameter whether it is passed by pointer.
func (a *Accessor) IsReference() []bool {
	out := make([]bool, len(a.params))
	for i, p := range a.params {
		out[i] = p.Kind() == reflect.Pointer
	}

	return out
}

// IsConst reports for each parameter whether the callee works on its own copy.
func (a *Accessor) IsConst() []bool {
	out := make([]bool, len(a.params))
	for i, p := range a.params {
		out[i] = !isMutable(p.Kind())
	}

	return out
}

// Invoke converts args to the parameter types and calls the function on obj.
// obj is ignored by static accessors. Every failure is reported as an invalid
// variant carrying the cause.
func (a *Accessor) Invoke(obj variant.Instance, args ...variant.Argument) variant.Variant {
	if len(args) != len(a.params) {
		return variant.Invalid(fmt.Errorf(
			"%w: found %d but expected %d",
			ErrIncorrectArgumentCount,
			len(args),
			len(a.params),
		))
	}

	in := make([]reflect.Value, 0, len(args)+1)
	if !a.static {
		recv, err := obj.Receiver(a.recv)
		if err != nil {
			return variant.Invalid(err)
		}
		in = append(in, recv)
	}

	for i, arg := range args {
		v, err := arg.Convert(a.params[i])
		if err != nil {
			return variant.Invalid(fmt.Errorf("%w: argument %d", err, i))
		}
		in = append(in, v)
	}

	var out []reflect.Value
	if a.variadic {
		out = a.fn.CallSlice(in)
	} else {
		out = a.fn.Call(in)
	}

	if a.returnsErr {
		last := out[len(out)-1]
		if !last.IsNil() {
			return variant.Invalid(fmt.Errorf("%w: %w", ErrCallFailed, last.Interface().(error)))
		}
		out = out[:len(out)-1]
	}

	return a.policy.Bind(out)
}

func isMutable(k reflect.Kind) bool {
	switch k {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}
