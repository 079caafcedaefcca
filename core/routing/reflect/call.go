package reflect

import (
	"encoding/json"
	"errors"

	"github.com/sbalogh/rttr/core/types"
	"github.com/sbalogh/rttr/core/variant"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// ErrInvalidResult is returned when an invocation fails without a reason.
var ErrInvalidResult = errors.New("invalid result")

// Invoke calls the specified method on the routed value with string arguments.
// The overload is chosen by the number of arguments and missing trailing
// arguments are taken from the registered defaults.
//
// The result is encoded with types.BytesEncoder when the value implements it,
// protojson for protobuf messages and JSON otherwise. A method returning
// nothing yields JSON null. A failed invocation returns the cause as error.
//
// Example:
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
//	    r := MustNewRouter(&Ledger{balances: map[string]int64{}})
//	    out, err := r.Invoke("Deposit", "alice", "100")
//	    if err != nil {
//	        log.Fatalf("Error invoking method: %v", err)
//	    }
//	    fmt.Println(string(out)) // Output: 100
//	}
func (r *Router) Invoke(name string, args ...string) ([]byte, error) {
	m, err := r.Lookup(name, len(args))
	if err != nil {
		return nil, err
	}

	res := m.InvokeVariadic(r.instance(), variant.StringArgs(args...))
	if !res.IsValid() {
		r.log.WithField("method", name).WithError(res.Err()).Debug("invoke failed")
	}

	return Encode(res)
}

// Call invokes the method called name on obj with Go values as arguments and
// returns the result unencoded. A nil obj selects the routed value. Every
// failure, including an unknown method, is an invalid variant.
func (r *Router) Call(obj any, name string, args ...any) variant.Variant {
	m, err := r.Lookup(name, len(args))
	if err != nil {
		return variant.Invalid(err)
	}

	inst := variant.InstanceOf(obj)
	if !inst.IsValid() {
		inst = r.instance()
	}

	return m.InvokeVariadic(inst, variant.Args(args...))
}

// Encode renders the result of an invocation as bytes.
func Encode(res variant.Variant) ([]byte, error) {
	if !res.IsValid() {
		if err := res.Err(); err != nil {
			return nil, err
		}
		return nil, ErrInvalidResult
	}

	result := res.Interface()
	if encoder, ok := result.(types.BytesEncoder); ok {
		return encoder.EncodeToBytes()
	}
	if msg, ok := result.(proto.Message); ok {
		return protojson.Marshal(msg)
	}

	return json.Marshal(result)
}
