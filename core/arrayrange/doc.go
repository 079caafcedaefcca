// Package arrayrange provides a read-only view over a contiguous sequence of
// items that is owned by someone else, usually a method table built at
// registration time.
//
// A Range never copies the items. It keeps the slice header it was built from
// and an optional predicate. Traversal is lazy: a filtered range tests the
// predicate while iterating, so nothing is materialized until Collect is called.
//
// Iteration follows the begin/end protocol:
//
//	for it := r.Begin(); !it.Equal(r.End()); it.Next() {
//	    fmt.Println(it.Value())
//	}
//
//	for it := r.RBegin(); !it.Equal(r.REnd()); it.Next() {
//	    fmt.Println(it.Value())
//	}
//
// or the range-over-func form:
//
//	for item := range r.All() {
//	    fmt.Println(item)
//	}
//
// Contracts the package does not check at run time:
//   - the storage behind a Range must outlive the Range and every iterator
//     derived from it, and must not be modified while they are in use;
//   - End and REnd are placeholders; calling Value or Pointer on them panics
//     with an index out of range;
//   - iterators compare by position only, so comparing iterators of two
//     different ranges is well formed but meaningless.
//
// A Range is safe for concurrent reads. An iterator carries a mutable position
// and must not be shared between goroutines without synchronization.
package arrayrange
