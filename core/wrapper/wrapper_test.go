package wrapper

import (
	"fmt"
	"reflect"
	"sync"
	"testing"

	"github.com/sbalogh/rttr/core/accessor"
	"github.com/sbalogh/rttr/core/variant"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	calls [][]any
}

func (r *recorder) Record(a int, b string, c float64) string {
	r.calls = append(r.calls, []any{a, b, c})
	return fmt.Sprintf("%d/%s/%.1f", a, b, c)
}

func (r *recorder) Many(a, b, c, d, e, f, g int) int {
	return a + b + c + d + e + f + g
}

type options struct {
	N int
}

func bump(o *options) int {
	o.N++
	return o.N
}

func format(a int, b string, c float64) string {
	return fmt.Sprintf("%d/%s/%.1f", a, b, c)
}

func mustFunc(t *testing.T, fn any) *accessor.Accessor {
	t.Helper()

	acc, err := accessor.NewFunc(fn, accessor.Default)
	require.NoError(t, err)

	return acc
}

func mustMethod(t *testing.T, fn any) *accessor.Accessor {
	t.Helper()

	acc, err := accessor.NewMethod(fn, accessor.Default)
	require.NoError(t, err)

	return acc
}

func TestStaticIntrospection(t *testing.T) {
	acc := mustFunc(t, format)
	w, err := NewWithDefaults(acc, "x", 2.5)
	require.NoError(t, err)

	for _, w := range []Wrapper{New(acc), w} {
		require.True(t, w.IsStatic())
		require.Equal(t, reflect.TypeOf(""), w.ReturnType())
		require.Equal(t, 3, w.Arity())
		require.Equal(t, []reflect.Type{
			reflect.TypeOf(0),
			reflect.TypeOf(""),
			reflect.TypeOf(float64(0)),
		}, w.ParameterTypes())
		require.Equal(t, []bool{false, false, false}, w.IsReference())
		require.Equal(t, []bool{true, true, true}, w.IsConst())
	}

	require.Equal(t, 3, New(acc).MinArgs())
	require.Empty(t, New(acc).Defaults())
	require.Equal(t, 1, w.MinArgs())
	require.Len(t, w.Defaults(), 2)
	require.Equal(t, "x", w.Defaults()[0].Interface())
	require.Equal(t, 2.5, w.Defaults()[1].Interface())
}

func TestDefaultsPadding(t *testing.T) {
	r := &recorder{}
	obj := variant.InstanceOf(r)

	w, err := NewWithDefaults(mustMethod(t, (*recorder).Record), "def", 9)
	require.NoError(t, err)
	require.False(t, w.IsStatic())

	tests := []struct {
		name string
		args []variant.Argument
		want string
		call []any
	}{
		{
			name: "one live argument",
			args: variant.Args(1),
			want: "1/def/9.0",
			call: []any{1, "def", 9.0},
		},
		{
			name: "two live arguments",
			args: variant.Args(2, "live"),
			want: "2/live/9.0",
			call: []any{2, "live", 9.0},
		},
		{
			name: "all live arguments",
			args: variant.Args(3, "live", 1.5),
			want: "3/live/1.5",
			call: []any{3, "live", 1.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r.calls = nil

			res := w.Invoke(obj, tt.args...)
			require.True(t, res.IsValid())
			require.Equal(t, tt.want, res.Interface())
			require.Equal(t, [][]any{tt.call}, r.calls)

			r.calls = nil

			res = w.InvokeVariadic(obj, tt.args)
			require.Equal(t, tt.want, res.Interface())
			require.Equal(t, [][]any{tt.call}, r.calls)
		})
	}
}

func TestDefaultsNotEnough(t *testing.T) {
	w, err := NewWithDefaults(mustFunc(t, format), 1.0)
	require.NoError(t, err)

	res := w.Invoke(variant.Empty(), variant.Arg(1))
	require.False(t, res.IsValid())
	require.ErrorIs(t, res.Err(), accessor.ErrIncorrectArgumentCount)

	res = w.InvokeVariadic(variant.Empty(), nil)
	require.False(t, res.IsValid())
}

func TestVariadicTooMany(t *testing.T) {
	acc := mustFunc(t, format)
	withDefs, err := NewWithDefaults(acc, "a", 1.0)
	require.NoError(t, err)

	args := variant.Args(1, "b", 2.0, "extra")

	for _, w := range []Wrapper{New(acc), withDefs} {
		res := w.InvokeVariadic(variant.Empty(), args)
		require.False(t, res.IsValid())
		require.Error(t, res.Err())
	}

	res := withDefs.InvokeVariadic(variant.Empty(), args)
	require.ErrorIs(t, res.Err(), ErrTooManyArguments)

	res = New(acc).InvokeVariadic(variant.Empty(), args)
	require.ErrorIs(t, res.Err(), accessor.ErrIncorrectArgumentCount)
}

func TestInvokeArityBound(t *testing.T) {
	r := &recorder{}
	w := New(mustMethod(t, (*recorder).Many))
	require.Equal(t, 7, w.Arity())

	args := variant.Args(1, 2, 3, 4, 5, 6, 7)

	res := w.Invoke(variant.InstanceOf(r), args...)
	require.False(t, res.IsValid())
	require.ErrorIs(t, res.Err(), ErrTooManyArguments)

	res = w.InvokeVariadic(variant.InstanceOf(r), args)
	require.Equal(t, 28, res.Interface())
}

func TestInvokeMismatch(t *testing.T) {
	w := New(mustMethod(t, (*recorder).Record))

	res := w.Invoke(variant.Empty(), variant.Args(1, "a", 1.0)...)
	require.ErrorIs(t, res.Err(), variant.ErrNilInstance)

	res = w.Invoke(variant.InstanceOf(&recorder{}), variant.Args("one", "a", 1.0)...)
	require.ErrorIs(t, res.Err(), variant.ErrInvalidArgumentValue)

	res = w.Invoke(variant.InstanceOf(&recorder{}), variant.Args(1)...)
	require.ErrorIs(t, res.Err(), accessor.ErrIncorrectArgumentCount)
}

func TestNewWithDefaultsErrors(t *testing.T) {
	acc := mustFunc(t, format)

	w, err := NewWithDefaults(acc)
	require.NoError(t, err)
	require.IsType(t, &plain{}, w)

	_, err = NewWithDefaults(acc, 1, "a", 1.0, "extra")
	require.ErrorIs(t, err, ErrTooManyDefaults)

	_, err = NewWithDefaults(acc, "not a float")
	require.ErrorIs(t, err, ErrInvalidDefault)
	require.ErrorIs(t, err, variant.ErrInvalidArgumentValue)
}

func TestPointerDefaultCopiedPerCall(t *testing.T) {
	w, err := NewWithDefaults(mustFunc(t, bump), options{N: 0})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		res := w.Invoke(variant.Empty())
		require.True(t, res.IsValid())
		require.Equal(t, 1, res.Interface())

		res = w.InvokeVariadic(variant.Empty(), nil)
		require.Equal(t, 1, res.Interface())
	}

	defs := w.Defaults()
	require.Len(t, defs, 1)
	require.Equal(t, &options{N: 0}, defs[0].Interface())

	// the returned default is a copy as well
	defs[0].Interface().(*options).N = 42
	require.Equal(t, &options{N: 0}, w.Defaults()[0].Interface())

	res := w.Invoke(variant.Empty(), variant.Arg(&options{N: 5}))
	require.Equal(t, 6, res.Interface())
}

func TestPointerDefaultGivenAsPointer(t *testing.T) {
	shared := &options{}
	w, err := NewWithDefaults(mustFunc(t, bump), shared)
	require.NoError(t, err)

	w.Invoke(variant.Empty())
	w.Invoke(variant.Empty())
	require.Equal(t, 2, shared.N)
}

func TestConcurrentInvoke(t *testing.T) {
	w, err := NewWithDefaults(mustFunc(t, bump), options{N: 10})
	require.NoError(t, err)

	const workers = 16

	var wg sync.WaitGroup
	results := make([]any, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = w.Invoke(variant.Empty()).Interface()
		}(i)
	}
	wg.Wait()

	for _, res := range results {
		require.Equal(t, 11, res)
	}
	require.Equal(t, &options{N: 10}, w.Defaults()[0].Interface())
}
