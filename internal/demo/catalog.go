package demo

import (
	"time"

	"github.com/sbalogh/rttr/core/routing/mux"
	"github.com/sbalogh/rttr/core/routing/reflect"
	"github.com/shopspring/decimal"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// Sum adds the values.
func Sum(values ...decimal.Decimal) decimal.Decimal {
	return decimal.Sum(decimal.Zero, values...)
}

// Timestamp converts unix seconds to a protobuf timestamp.
func Timestamp(seconds int64) *timestamppb.Timestamp {
	return timestamppb.New(time.Unix(seconds, 0))
}

// NewRouter exposes the methods of l and the catalog functions through one
// router. opts apply to both.
func NewRouter(l *Ledger, opts ...reflect.Option) (*mux.Router, error) {
	ledger, err := reflect.NewRouter(l, append([]reflect.Option{
		reflect.WithParameterNames("Open", "account"),
		reflect.WithParameterNames("Deposit", "account", "amount"),
		reflect.WithParameterNames("Withdraw", "account", "amount"),
		reflect.WithParameterNames("Balance", "account"),
		reflect.WithParameterNames("Transfer", "from", "to", "amount", "memo"),
		reflect.WithDefaults("Transfer", ""),
	}, opts...)...)
	if err != nil {
		return nil, err
	}

	funcs, err := reflect.NewRouter(nil, append([]reflect.Option{
		reflect.WithFunc("Sum", Sum),
		reflect.WithFunc("Timestamp", Timestamp),
		reflect.WithParameterNames("Sum", "values"),
		reflect.WithDefaults("Sum", []decimal.Decimal{}),
		reflect.WithParameterNames("Timestamp", "seconds"),
	}, opts...)...)
	if err != nil {
		return nil, err
	}

	return mux.NewRouter(ledger, funcs)
}
