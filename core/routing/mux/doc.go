// Package mux provides a multiplexer that allows multiple
// [github.com/sbalogh/rttr/core/routing.Router] instances to be used together.
// This is useful when methods of several Go values are exposed through one
// surface. The mux.Router delegates calls to the router that registered the
// method name.
//
// Example usage:
//
//	ledger := reflect.MustNewRouter(&Ledger{})
//	clock := reflect.MustNewRouter(nil, reflect.WithFunc("Now", time.Now))
//
//	r, err := mux.NewRouter(ledger, clock)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	out, err := r.Invoke("Now")
//
// # Error Handling
//
// If a method name is defined by more than one router, NewRouter returns
// [github.com/sbalogh/rttr/core/routing.ErrMethodAlreadyDefined] to avoid
// ambiguity in routing. Overloads of one name within a single router are
// allowed.
package mux
