// Package method holds the registration record of a reflected method. A Method
// owns the Wrapper it was registered with for the lifetime of the table it
// belongs to, and describes the method to queries.
package method

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/sbalogh/rttr/core/arrayrange"
	"github.com/sbalogh/rttr/core/variant"
	"github.com/sbalogh/rttr/core/wrapper"
)

var namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("github.com/sbalogh/rttr/method"))

// Range is a view over a method table.
type Range = arrayrange.Range[*Method]

// ParameterInfo describes one declared parameter.
type ParameterInfo struct {
	index      int
	name       string
	typ        reflect.Type
	reference  bool
	hasDefault bool
	def        variant.Variant
}

func (p ParameterInfo) Index() int                    { return p.index }
func (p ParameterInfo) Name() string                  { return p.name }
func (p ParameterInfo) Type() reflect.Type            { return p.typ }
func (p ParameterInfo) IsReference() bool             { return p.reference }
func (p ParameterInfo) HasDefault() bool              { return p.hasDefault }
func (p ParameterInfo) DefaultValue() variant.Variant { return p.def }

func (p ParameterInfo) String() string {
	s := p.name + " " + p.typ.String()
	if p.hasDefault {
		s += " = " + formatDefault(p.def)
	}

	return s
}

// formatDefault renders pointers by their target so that signatures, and the
// IDs derived from them, never depend on addresses.
func formatDefault(v variant.Variant) string {
	rv, prefix := v.Value(), ""
	if rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv, prefix = rv.Elem(), "&"
	}

	switch {
	case !rv.IsValid():
		return v.String()
	case rv.Kind() == reflect.String:
		return prefix + strconv.Quote(rv.String())
	default:
		return prefix + fmt.Sprintf("%v", rv.Interface())
	}
}

// Option configures a Method.
type Option func(*Method)

// WithParameterNames names the parameters in declaration order. Parameters
// left unnamed are called argN.
func WithParameterNames(names ...string) Option {
	return func(m *Method) {
		for i := range m.params {
			if i < len(names) && names[i] != "" {
				m.params[i].name = names[i]
			}
		}
	}
}

// Method is the registration record of one method or function.
type Method struct {
	id        uuid.UUID
	name      string
	declaring reflect.Type
	wrapper   wrapper.Wrapper
	params    []ParameterInfo
}

// New registers w under name. declaring is the type the method belongs to and
// may be nil for free functions.
func New(name string, declaring reflect.Type, w wrapper.Wrapper, opts ...Option) *Method {
	m := &Method{
		name:      name,
		declaring: declaring,
		wrapper:   w,
	}

	var (
		types    = w.ParameterTypes()
		refs     = w.IsReference()
		defaults = w.Defaults()
		first    = len(types) - len(defaults)
	)
	m.params = make([]ParameterInfo, len(types))
	for i, t := range types {
		m.params[i] = ParameterInfo{
			index:     i,
			name:      fmt.Sprintf("arg%d", i),
			typ:       t,
			reference: refs[i],
		}
		if i >= first {
			m.params[i].hasDefault = true
			m.params[i].def = defaults[i-first]
		}
	}

	for _, opt := range opts {
		opt(m)
	}

	m.id = uuid.NewSHA1(namespace, []byte(m.Signature()))

	return m
}

// ID is derived from the signature, so it is stable across runs.
func (m *Method) ID() uuid.UUID { return m.id }

func (m *Method) Name() string { return m.name }

func (m *Method) DeclaringType() reflect.Type { return m.declaring }

func (m *Method) Wrapper() wrapper.Wrapper { return m.wrapper }

func (m *Method) IsStatic() bool { return m.wrapper.IsStatic() }

func (m *Method) ReturnType() reflect.Type { return m.wrapper.ReturnType() }

// Parameters returns an unfiltered range over the parameter descriptions.
func (m *Method) Parameters() arrayrange.Range[ParameterInfo] {
	return arrayrange.New(m.params)
}

// Accepts reports whether n live arguments can be passed to the method.
func (m *Method) Accepts(n int) bool {
	return n >= m.wrapper.MinArgs() && n <= m.wrapper.Arity()
}

// Signature renders the method as Type.Name(params) result.
func (m *Method) Signature() string {
	var sb strings.Builder

	if m.declaring != nil {
		sb.WriteString(m.declaring.String())
		sb.WriteByte('.')
	}
	sb.WriteString(m.name)
	sb.WriteByte('(')
	for i, p := range m.params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.String())
	}
	sb.WriteByte(')')
	if rt := m.wrapper.ReturnType(); rt != nil {
		sb.WriteByte(' ')
		sb.WriteString(rt.String())
	}

	return sb.String()
}

func (m *Method) String() string { return m.Signature() }

// Invoke calls the method on obj with plain Go values as arguments.
// obj is ignored by static methods and may be nil.
func (m *Method) Invoke(obj any, args ...any) variant.Variant {
	return m.wrapper.Invoke(variant.InstanceOf(obj), variant.Args(args...)...)
}

// InvokeVariadic calls the method with an argument list of any length.
func (m *Method) InvokeVariadic(obj variant.Instance, args []variant.Argument) variant.Variant {
	return m.wrapper.InvokeVariadic(obj, args)
}

// Named matches methods called name.
func Named(name string) arrayrange.Predicate[*Method] {
	return func(m *Method) bool { return m.name == name }
}

// Static matches methods called without an object.
func Static(m *Method) bool { return m.IsStatic() }

// Accepting matches methods callable with n live arguments.
func Accepting(n int) arrayrange.Predicate[*Method] {
	return func(m *Method) bool { return m.Accepts(n) }
}
