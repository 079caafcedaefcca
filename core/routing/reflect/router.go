package reflect

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/sbalogh/rttr/core/accessor"
	"github.com/sbalogh/rttr/core/arrayrange"
	"github.com/sbalogh/rttr/core/method"
	"github.com/sbalogh/rttr/core/routing"
	"github.com/sbalogh/rttr/core/variant"
	"github.com/sbalogh/rttr/core/wrapper"
	"github.com/sirupsen/logrus"
)

// Error types.
var (
	ErrMethodNotFound         = routing.ErrMethodNotFound
	ErrMethodAlreadyDefined   = routing.ErrMethodAlreadyDefined
	ErrIncorrectArgumentCount = accessor.ErrIncorrectArgumentCount
)

var _ routing.Router = (*Router)(nil)

// Router routes method calls to the methods of a Go value based on reflection.
// It is read-only after construction.
type Router struct {
	target  any
	typ     reflect.Type
	methods []*method.Method
	log     logrus.FieldLogger
}

// NewRouter creates a new Router instance over v.
// It reflects on the exported methods of v and registers one method per Go
// method, plus one static method per function given with WithFunc. The table
// is sorted by name.
//
// Parameters:
//   - v: The value to route methods for. It may be nil when only functions are registered.
//   - opts: Router options.
//
// Returns:
//   - *Router: A new Router instance.
//   - error: An error if an option is invalid, a default cannot be converted,
//     or two methods of the same name accept the same number of arguments.
func NewRouter(v any, opts ...Option) (*Router, error) {
	o := newOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.err != nil {
		return nil, o.err
	}

	r := &Router{
		target: v,
		typ:    reflect.TypeOf(v),
		log:    o.log(),
	}

	// Go and registered names of every method seen, registered or not.
	known := make(map[string]struct{})

	for _, m := range Methods(v) {
		name := o.methodName(m.Name)
		known[m.Name], known[name] = struct{}{}, struct{}{}

		if o.isDisabled(m.Name, name) {
			r.log.WithField("method", m.Name).Info("method disabled")
			continue
		}

		acc, err := accessor.FromMethod(m, o.policy)
		if err != nil {
			if errors.Is(err, accessor.ErrPolicyMismatch) {
				r.log.WithField("method", m.Name).WithError(err).Info("method skipped")
				continue
			}

			return nil, err
		}

		if err = r.register(acc, o, name, m.Name); err != nil {
			return nil, err
		}
	}

	for _, f := range o.funcs {
		known[f.name] = struct{}{}

		if o.isDisabled(f.name) {
			r.log.WithField("method", f.name).Info("method disabled")
			continue
		}

		acc, err := accessor.NewFunc(f.fn, o.policy)
		if err != nil {
			if errors.Is(err, accessor.ErrPolicyMismatch) {
				r.log.WithField("method", f.name).WithError(err).Info("method skipped")
				continue
			}

			return nil, fmt.Errorf("%w: function %s", err, f.name)
		}

		if err = r.register(acc, o, f.name); err != nil {
			return nil, err
		}
	}

	if err := checkOptionTargets(o, known); err != nil {
		return nil, err
	}

	slices.SortStableFunc(r.methods, func(a, b *method.Method) int {
		return strings.Compare(a.Name(), b.Name())
	})

	if err := r.checkOverloads(); err != nil {
		return nil, err
	}

	return r, nil
}

// MustNewRouter is like NewRouter but panics on error.
func MustNewRouter(v any, opts ...Option) *Router {
	r, err := NewRouter(v, opts...)
	if err != nil {
		panic(err)
	}

	return r
}

// register adds acc under the first of names. Defaults and parameter names
// given for any of names apply.
func (r *Router) register(acc *accessor.Accessor, o *options, names ...string) error {
	name := names[0]

	w, err := wrapper.NewWithDefaults(acc, o.defaultsFor(names...)...)
	if err != nil {
		return fmt.Errorf("%w: method %s", err, name)
	}
	if o.tracing != nil {
		w = o.tracing.Wrap(name, w)
	}

	m := method.New(name, r.typ, w, method.WithParameterNames(o.namesFor(names...)...))
	r.methods = append(r.methods, m)

	r.log.WithFields(logrus.Fields{
		"method":    name,
		"signature": m.Signature(),
		"id":        m.ID().String(),
	}).Debug("method registered")

	return nil
}

// checkOptionTargets rejects defaults and parameter names given for methods
// that do not exist. Disabled and skipped methods are not reported.
func checkOptionTargets(o *options, known map[string]struct{}) error {
	for name := range o.defaults {
		if _, ok := known[name]; !ok {
			return fmt.Errorf("%w: defaults for %s", ErrMethodNotFound, name)
		}
	}
	for name := range o.names {
		if _, ok := known[name]; !ok {
			return fmt.Errorf("%w: parameter names for %s", ErrMethodNotFound, name)
		}
	}

	return nil
}

// checkOverloads expects a sorted table.
func (r *Router) checkOverloads() error {
	for i, a := range r.methods {
		for _, b := range r.methods[i+1:] {
			if a.Name() != b.Name() {
				break
			}

			wa, wb := a.Wrapper(), b.Wrapper()
			if wa.MinArgs() <= wb.Arity() && wb.MinArgs() <= wa.Arity() {
				return fmt.Errorf("%w: '%s' and '%s'", ErrMethodAlreadyDefined, a.Signature(), b.Signature())
			}
		}
	}

	return nil
}

// Type returns the type of the routed value, or nil.
func (r *Router) Type() reflect.Type {
	return r.typ
}

// Methods returns an unfiltered range over the method table.
func (r *Router) Methods() method.Range {
	return arrayrange.New(r.methods)
}

// MethodsByName returns the overloads registered under name.
func (r *Router) MethodsByName(name string) method.Range {
	return arrayrange.NewWithPredicate(r.methods, method.Named(name))
}

// StaticMethods returns the methods called without an object.
func (r *Router) StaticMethods() method.Range {
	return arrayrange.NewWithPredicate(r.methods, method.Static)
}

// Method returns the first method registered under name.
func (r *Router) Method(name string) (*method.Method, bool) {
	return r.MethodsByName(name).First()
}

// Lookup returns the method called name that accepts nargs arguments.
func (r *Router) Lookup(name string, nargs int) (*method.Method, error) {
	candidates := r.MethodsByName(name)
	if candidates.Empty() {
		return nil, fmt.Errorf("%w: %s", ErrMethodNotFound, name)
	}

	m, ok := candidates.Where(method.Accepting(nargs)).First()
	if !ok {
		return nil, fmt.Errorf(
			"%w: found %d but no overload of %s accepts it",
			ErrIncorrectArgumentCount,
			nargs,
			name,
		)
	}

	return m, nil
}

func (r *Router) instance() variant.Instance {
	return variant.InstanceOf(r.target)
}
