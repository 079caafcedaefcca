package mux

import (
	"fmt"
	"slices"
	"strings"

	"github.com/sbalogh/rttr/core/arrayrange"
	"github.com/sbalogh/rttr/core/method"
	"github.com/sbalogh/rttr/core/routing"
)

var _ routing.Router = (*Router)(nil)

// Router is a multiplexer that routes methods to the appropriate handler.
type Router struct {
	methodRouter map[string]routing.Router // Method -> Router
	methods      []*method.Method
}

// NewRouter creates a new Router with the provided routing.Router instances.
// It returns an error if a method name is defined by more than one router.
func NewRouter(router ...routing.Router) (*Router, error) {
	r := &Router{
		methodRouter: make(map[string]routing.Router),
	}

	for _, sub := range router {
		for m := range sub.Methods().All() {
			if owner, ok := r.methodRouter[m.Name()]; ok && owner != sub {
				return nil, fmt.Errorf("%w: %s", routing.ErrMethodAlreadyDefined, m.Name())
			}

			r.methodRouter[m.Name()] = sub
			r.methods = append(r.methods, m)
		}
	}

	slices.SortStableFunc(r.methods, func(a, b *method.Method) int {
		return strings.Compare(a.Name(), b.Name())
	})

	return r, nil
}

// Check validates the provided arguments for the specified method.
// It returns an error if the validation fails.
func (r *Router) Check(method string, args ...string) error {
	if m, ok := r.methodRouter[method]; ok {
		return m.Check(method, args...)
	}

	return fmt.Errorf("%w: %s", routing.ErrMethodNotFound, method)
}

// Invoke calls the specified method with the provided arguments.
// It returns a byte slice of response and an error if the invocation fails.
func (r *Router) Invoke(method string, args ...string) ([]byte, error) {
	if m, ok := r.methodRouter[method]; ok {
		return m.Invoke(method, args...)
	}

	return nil, fmt.Errorf("%w: %s", routing.ErrMethodNotFound, method)
}

// Methods returns a range over the methods of all routers, sorted by name.
func (r *Router) Methods() method.Range {
	return arrayrange.New(r.methods)
}
