// Package routing defines the Router interface for querying and invoking
// registered methods by name with string arguments.
//
// A Router owns a method table: one [github.com/sbalogh/rttr/core/method.Method]
// per registered method, each holding the Wrapper it is invoked through.
// Queries hand out [github.com/sbalogh/rttr/core/arrayrange.Range] views over
// that table, filtered by name, arity or kind, without copying it.
//
// Router interface implementations include:
//   - [github.com/sbalogh/rttr/core/routing/reflect]: builds the table from the
//     exported methods of a Go value and registered functions.
//   - [github.com/sbalogh/rttr/core/routing/mux]: combines multiple routers,
//     dispatching on method names.
//
// # Example
//
//	type Ledger struct {
//	    balances map[string]int64
//	}
//
//	func (l *Ledger) Deposit(account string, amount int64) int64 {
//	    l.balances[account] += amount
//	    return l.balances[account]
//	}
//
//	func main() {
//	    r := reflect.MustNewRouter(&Ledger{balances: map[string]int64{}})
//
//	    out, err := r.Invoke("Deposit", "alice", "100")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(string(out)) // Output: 100
//
//	    for m := range r.Methods().All() {
//	        fmt.Println(m.Signature())
//	    }
//	}
package routing
