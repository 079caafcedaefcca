package mux

import (
	"testing"

	"github.com/sbalogh/rttr/core/routing"
	"github.com/sbalogh/rttr/core/routing/reflect"
	"github.com/stretchr/testify/require"
)

type Counter struct {
	n int
}

func (c *Counter) Inc() int {
	c.n++
	return c.n
}

func (c *Counter) Add(delta int) int {
	c.n += delta
	return c.n
}

type Echo struct{}

func (Echo) Echo(s string) string { return s }

func double(n int) int { return n * 2 }

func TestRouter(t *testing.T) {
	counter := reflect.MustNewRouter(&Counter{}, reflect.WithFunc("Add", func(a, b int) int { return a + b }))
	echo := reflect.MustNewRouter(Echo{}, reflect.WithFunc("Double", double))

	r, err := NewRouter(counter, echo)
	require.NoError(t, err)

	var names []string
	for m := range r.Methods().All() {
		names = append(names, m.Name())
	}
	require.Equal(t, []string{"Add", "Add", "Double", "Echo", "Inc"}, names)

	out, err := r.Invoke("Inc")
	require.NoError(t, err)
	require.Equal(t, "1", string(out))

	out, err = r.Invoke("Add", "2", "3")
	require.NoError(t, err)
	require.Equal(t, "5", string(out))

	out, err = r.Invoke("Echo", "hi")
	require.NoError(t, err)
	require.Equal(t, `"hi"`, string(out))

	out, err = r.Invoke("Double", "4")
	require.NoError(t, err)
	require.Equal(t, "8", string(out))

	require.NoError(t, r.Check("Add", "1"))
	require.Error(t, r.Check("Add", "x"))

	_, err = r.Invoke("Missing")
	require.ErrorIs(t, err, routing.ErrMethodNotFound)
	require.ErrorIs(t, r.Check("Missing"), routing.ErrMethodNotFound)
}

func TestRouterDuplicate(t *testing.T) {
	a := reflect.MustNewRouter(Echo{})
	b := reflect.MustNewRouter(nil, reflect.WithFunc("Echo", func() string { return "" }))

	_, err := NewRouter(a, b)
	require.ErrorIs(t, err, routing.ErrMethodAlreadyDefined)
}
