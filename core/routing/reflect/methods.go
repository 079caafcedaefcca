package reflect

import (
	"reflect"
	"sort"
)

// Methods inspects the type of the given value 'v' using reflection and returns
// the methods defined on its type, sorted by name. Only exported methods are
// visible to reflection. A nil value has no methods.
func Methods(v any) []reflect.Method {
	t := reflect.TypeOf(v)
	if t == nil {
		return nil
	}

	methods := make([]reflect.Method, 0, t.NumMethod())
	for i := 0; i < t.NumMethod(); i++ {
		methods = append(methods, t.Method(i))
	}

	sort.Slice(methods, func(i, j int) bool {
		return methods[i].Name < methods[j].Name
	})

	return methods
}
