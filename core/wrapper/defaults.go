package wrapper

import (
	"fmt"
	"reflect"

	"github.com/sbalogh/rttr/core/accessor"
	"github.com/sbalogh/rttr/core/variant"
)

type withDefaults struct {
	plain

	defaults []variant.Variant
	args     []variant.Argument
	// boxed[i] is the pointer type of defaults[i] when the conversion had to
	// allocate the pointer. Each call then gets its own copy.
	boxed []reflect.Type
}

// NewWithDefaults wraps acc with default values for its trailing parameters.
// The last default belongs to the last parameter. Defaults are converted to
// the parameter types here, once, so that calls only copy them. A default
// that had to be placed behind a pointer is copied into a fresh pointer on
// every call, so callees writing through it never change the default.
//
// Without defaults the plain wrapper is returned.
func NewWithDefaults(acc *accessor.Accessor, defaults ...any) (Wrapper, error) {
	if len(defaults) == 0 {
		return New(acc), nil
	}

	n, d := acc.Arity(), len(defaults)
	if d > n {
		return nil, fmt.Errorf("%w: found %d but only %d parameters", ErrTooManyDefaults, d, n)
	}

	w := &withDefaults{
		plain:    plain{acc: acc},
		defaults: make([]variant.Variant, d),
		args:     make([]variant.Argument, d),
		boxed:    make([]reflect.Type, d),
	}

	params := acc.ParameterTypes()
	for i, def := range defaults {
		pos := n - d + i
		v, err := variant.Arg(def).Convert(params[pos])
		if err != nil {
			return nil, fmt.Errorf("%w: parameter %d: %w", ErrInvalidDefault, pos, err)
		}

		if allocated(def, v) {
			w.boxed[i] = v.Type()
			v = v.Elem()
		}

		w.defaults[i] = variant.FromValue(v)
		w.args[i] = variant.ArgFromVariant(w.defaults[i])
	}

	return w, nil
}

func (w *withDefaults) MinArgs() int { return w.acc.Arity() - len(w.defaults) }

func (w *withDefaults) Defaults() []variant.Variant {
	out := make([]variant.Variant, len(w.defaults))
	for i, def := range w.defaults {
		if w.boxed[i] != nil {
			out[i] = variant.FromValue(w.box(i))
			continue
		}
		out[i] = def
	}

	return out
}

// allocated reports whether converting def produced a pointer that def did
// not hold itself.
func allocated(def any, v reflect.Value) bool {
	if v.Kind() != reflect.Pointer || v.IsNil() || def == nil {
		return false
	}

	return !reflect.TypeOf(def).AssignableTo(v.Type())
}

// box copies the i-th default into a new pointer.
func (w *withDefaults) box(i int) reflect.Value {
	p := reflect.New(w.boxed[i].Elem())
	p.Elem().Set(w.defaults[i].Value())

	return p
}

func (w *withDefaults) Invoke(obj variant.Instance, args ...variant.Argument) variant.Variant {
	if len(args) > MaxArity {
		return tooMany(len(args), MaxArity)
	}

	return w.call(obj, args)
}

func (w *withDefaults) InvokeVariadic(obj variant.Instance, args []variant.Argument) variant.Variant {
	if n := w.acc.Arity(); len(args) > n {
		return tooMany(len(args), n)
	}

	return w.call(obj, args)
}

// call pads args with the defaults of the parameters they leave out.
func (w *withDefaults) call(obj variant.Instance, args []variant.Argument) variant.Variant {
	k, n, d := len(args), w.acc.Arity(), len(w.defaults)
	if k >= n {
		return w.acc.Invoke(obj, args...)
	}
	if k+d < n {
		return variant.Invalid(fmt.Errorf(
			"%w: found %d but at least %d expected",
			accessor.ErrIncorrectArgumentCount,
			k,
			n-d,
		))
	}

	full := make([]variant.Argument, 0, n)
	full = append(full, args...)
	for i := d - (n - k); i < d; i++ {
		if w.boxed[i] != nil {
			full = append(full, variant.ArgFromVariant(variant.FromValue(w.box(i))))
			continue
		}
		full = append(full, w.args[i])
	}

	return w.acc.Invoke(obj, full...)
}
