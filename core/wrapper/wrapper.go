// Package wrapper erases the signature of an accessor behind one calling
// surface. A Wrapper is built once per registered method, optionally with a
// suffix of default arguments, and is immutable afterwards.
package wrapper

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/sbalogh/rttr/core/accessor"
	"github.com/sbalogh/rttr/core/variant"
)

// MaxArity is the largest number of live arguments accepted by Invoke.
// Longer argument lists go through InvokeVariadic.
const MaxArity = 6

// Error types.
var (
	ErrTooManyArguments = errors.New("too many arguments")
	ErrTooManyDefaults  = errors.New("more default arguments than parameters")
	ErrInvalidDefault   = errors.New("invalid default argument")
)

// Wrapper is the type-erased invocation surface of one accessor.
//
// Invocation never panics on a mismatch the caller can trigger: wrong object,
// wrong argument types or counts all yield an invalid variant whose Err names
// the cause. Panics raised by the callee itself are not recovered.
type Wrapper interface {
	// IsStatic reports whether the accessor is called without an object.
	IsStatic() bool
	// ReturnType is the type of the variants returned on success, nil for void.
	ReturnType() reflect.Type
	// IsReference reports per parameter whether it is passed by pointer.
	IsReference() []bool
	// IsConst reports per parameter whether the callee cannot alias it.
	IsConst() []bool
	// ParameterTypes returns the declared parameter types in order.
	ParameterTypes() []reflect.Type
	// Arity is the number of declared parameters.
	Arity() int
	// MinArgs is the number of live arguments needed once defaults are applied.
	MinArgs() int
	// Defaults returns the stored default values, the last parameter last.
	Defaults() []variant.Variant

	// Invoke calls the accessor with up to MaxArity live arguments.
	Invoke(obj variant.Instance, args ...variant.Argument) variant.Variant
	// InvokeVariadic calls the accessor with an argument list of any length.
	InvokeVariadic(obj variant.Instance, args []variant.Argument) variant.Variant
}

// New wraps acc without default arguments. Every call must supply all
// declared parameters.
func New(acc *accessor.Accessor) Wrapper {
	return &plain{acc: acc}
}

type plain struct {
	acc *accessor.Accessor
}

func (w *plain) IsStatic() bool                 { return w.acc.IsStatic() }
func (w *plain) ReturnType() reflect.Type       { return w.acc.ReturnType() }
func (w *plain) IsReference() []bool            { return w.acc.IsReference() }
func (w *plain) IsConst() []bool                { return w.acc.IsConst() }
func (w *plain) ParameterTypes() []reflect.Type { return w.acc.ParameterTypes() }
func (w *plain) Arity() int                     { return w.acc.Arity() }
func (w *plain) MinArgs() int                   { return w.acc.Arity() }
func (w *plain) Defaults() []variant.Variant    { return nil }

func (w *plain) Invoke(obj variant.Instance, args ...variant.Argument) variant.Variant {
	if len(args) > MaxArity {
		return tooMany(len(args), MaxArity)
	}

	return w.acc.Invoke(obj, args...)
}

// InvokeVariadic leaves the length check to the accessor.
func (w *plain) InvokeVariadic(obj variant.Instance, args []variant.Argument) variant.Variant {
	return w.acc.Invoke(obj, args...)
}

func tooMany(found, limit int) variant.Variant {
	return variant.Invalid(fmt.Errorf("%w: found %d but at most %d accepted", ErrTooManyArguments, found, limit))
}
