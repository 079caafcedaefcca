// Package reflect provides a Router over the methods of a Go value, built with
// Go reflection. Each exported method becomes a registered method, invoked
// through a type-erasing Wrapper, and queries return ranges over the method
// table.
//
// Method Naming:
//
// Methods are registered under their Go name. WithTrimPrefixes removes a
// leading prefix, so that for example "QueryBalance" is registered as
// "Balance". Functions registered with WithFunc are static methods of the
// routed type and may overload a method name as long as the overloads accept
// different numbers of arguments.
//
// Default Arguments:
//
// WithDefaults stores values for trailing parameters. A call that leaves them
// out is padded with the defaults:
//
//	type Greeter struct{}
//
//	func (Greeter) Greet(name, greeting string) string {
//	    return greeting + ", " + name
//	}
//
//	r := reflect.MustNewRouter(Greeter{}, reflect.WithDefaults("Greet", "Hello"))
//	out, _ := r.Invoke("Greet", "Gopher") // "Hello, Gopher"
//
// Argument Parsing:
//
// String arguments are converted to the parameter types with
// [github.com/sbalogh/rttr/core/variant.ParseValue]: JSON, protojson,
// encoding.TextUnmarshaler, protobuf binary and encoding.BinaryUnmarshaler
// are tried in order. Parsed values implementing
// [github.com/sbalogh/rttr/core/types.Checker] or
// [github.com/sbalogh/rttr/core/types.Validator] are validated by Check.
//
// Results:
//
// Invoke encodes results as JSON, protojson for protobuf messages, or through
// [github.com/sbalogh/rttr/core/types.BytesEncoder]. A trailing error result
// is returned as the error of Invoke. Call returns the result as a variant.
package reflect
