package reflect

import (
	"errors"
	"fmt"
	"testing"

	"github.com/sbalogh/rttr/core/accessor"
	"github.com/sbalogh/rttr/core/config"
	"github.com/sbalogh/rttr/core/method"
	"github.com/sbalogh/rttr/core/telemetry"
	"github.com/sbalogh/rttr/core/variant"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type Amount int64

func (a Amount) Check() error {
	if a <= 0 {
		return errors.New("amount must be positive")
	}
	return nil
}

type Receipt struct {
	Total int64
}

func (r Receipt) EncodeToBytes() ([]byte, error) {
	return []byte(fmt.Sprintf("total=%d", r.Total)), nil
}

type Wallet struct {
	Owner   string
	balance int64
}

func (w *Wallet) Deposit(amount Amount) int64 {
	w.balance += int64(amount)
	return w.balance
}

func (w *Wallet) Withdraw(amount Amount) (int64, error) {
	if int64(amount) > w.balance {
		return w.balance, errors.New("insufficient funds")
	}
	w.balance -= int64(amount)
	return w.balance, nil
}

func (w *Wallet) QueryBalance() int64 { return w.balance }

func (w Wallet) Describe(prefix, suffix string) string {
	return prefix + w.Owner + suffix
}

func (w *Wallet) Receipt() Receipt { return Receipt{Total: w.balance} }

func (w *Wallet) Label() *wrapperspb.StringValue { return wrapperspb.String(w.Owner) }

func (w *Wallet) OpenedAt(ts *timestamppb.Timestamp) int64 { return ts.GetSeconds() }

func (w *Wallet) Reset() { w.balance = 0 }

func sum(a, b int64) int64 { return a + b }

func version() string { return "v1" }

func newWallet(t *testing.T, opts ...Option) (*Wallet, *Router) {
	t.Helper()

	w := &Wallet{Owner: "alice"}
	logger, _ := logtest.NewNullLogger()

	r, err := NewRouter(w, append([]Option{WithLogger(logger)}, opts...)...)
	require.NoError(t, err)

	return w, r
}

func names(r method.Range) []string {
	var out []string
	for m := range r.All() {
		out = append(out, m.Name())
	}
	return out
}

func TestMethodTable(t *testing.T) {
	_, r := newWallet(t,
		WithFunc("Deposit", sum),
		WithFunc("Version", version),
	)

	require.Equal(t, []string{
		"Deposit", "Deposit", "Describe", "Label", "OpenedAt", "QueryBalance",
		"Receipt", "Reset", "Version", "Withdraw",
	}, names(r.Methods()))
	require.False(t, r.Methods().IsFiltered())

	require.Equal(t, []string{"Deposit", "Version"}, names(r.StaticMethods()))
	require.Equal(t, 2, r.MethodsByName("Deposit").Size())
	require.True(t, r.MethodsByName("Missing").Empty())

	m, ok := r.Method("Describe")
	require.True(t, ok)
	require.Equal(t, "reflect.Wallet", m.DeclaringType().Elem().String())
	require.False(t, m.IsStatic())

	_, ok = r.Method("Missing")
	require.False(t, ok)
}

func TestLookup(t *testing.T) {
	_, r := newWallet(t, WithFunc("Deposit", sum))

	m, err := r.Lookup("Deposit", 1)
	require.NoError(t, err)
	require.False(t, m.IsStatic())

	m, err = r.Lookup("Deposit", 2)
	require.NoError(t, err)
	require.True(t, m.IsStatic())

	_, err = r.Lookup("Deposit", 3)
	require.ErrorIs(t, err, ErrIncorrectArgumentCount)

	_, err = r.Lookup("Missing", 0)
	require.ErrorIs(t, err, ErrMethodNotFound)
}

func TestInvoke(t *testing.T) {
	w, r := newWallet(t, WithFunc("Deposit", sum))

	tests := []struct {
		name    string
		method  string
		args    []string
		want    string
		wantErr error
	}{
		{
			name:   "member method",
			method: "Deposit",
			args:   []string{"10"},
			want:   "10",
		},
		{
			name:   "static overload",
			method: "Deposit",
			args:   []string{"2", "3"},
			want:   "5",
		},
		{
			name:   "value receiver",
			method: "Describe",
			args:   []string{"<", ">"},
			want:   `"<alice>"`,
		},
		{
			name:   "bytes encoder",
			method: "Receipt",
			want:   "total=10",
		},
		{
			name:   "protojson",
			method: "Label",
			want:   `"alice"`,
		},
		{
			name:   "proto argument",
			method: "OpenedAt",
			args:   []string{`"1970-01-01T00:01:40Z"`},
			want:   "100",
		},
		{
			name:    "trailing error",
			method:  "Withdraw",
			args:    []string{"100"},
			wantErr: accessor.ErrCallFailed,
		},
		{
			name:    "unparsable argument",
			method:  "Deposit",
			args:    []string{"ten"},
			wantErr: variant.ErrInvalidArgumentValue,
		},
		{
			name:    "unknown method",
			method:  "Transfer",
			wantErr: ErrMethodNotFound,
		},
		{
			name:    "wrong arity",
			method:  "Reset",
			args:    []string{"1"},
			wantErr: ErrIncorrectArgumentCount,
		},
		{
			name:   "void",
			method: "Reset",
			want:   "null",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := r.Invoke(tt.method, tt.args...)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, string(out))
		})
	}

	require.Equal(t, int64(0), w.balance)
}

func TestCheck(t *testing.T) {
	w, r := newWallet(t)

	require.NoError(t, r.Check("Deposit", "5"))
	require.Equal(t, int64(0), w.balance)

	err := r.Check("Deposit", "-5")
	require.ErrorIs(t, err, variant.ErrInvalidArgumentValue)
	require.ErrorContains(t, err, "amount must be positive")

	require.ErrorIs(t, r.Check("Deposit", "five"), variant.ErrInvalidArgumentValue)
	require.ErrorIs(t, r.Check("Deposit"), ErrIncorrectArgumentCount)
	require.ErrorIs(t, r.Check("Missing"), ErrMethodNotFound)
}

func TestCall(t *testing.T) {
	w, r := newWallet(t)

	res := r.Call(nil, "Deposit", 7)
	require.Equal(t, int64(7), res.Interface())
	require.Equal(t, int64(7), w.balance)

	other := &Wallet{Owner: "bob"}
	res = r.Call(other, "Deposit", Amount(3))
	require.Equal(t, int64(3), res.Interface())
	require.Equal(t, int64(7), w.balance)

	res = r.Call(&Wallet{Owner: "carol"}, "Describe", "[", "]")
	require.Equal(t, "[carol]", res.Interface())

	res = r.Call(nil, "Missing")
	require.False(t, res.IsValid())
	require.ErrorIs(t, res.Err(), ErrMethodNotFound)

	res = r.Call(nil, "Deposit", "x")
	require.False(t, res.IsValid())
}

func TestDefaultsAndNames(t *testing.T) {
	_, r := newWallet(t,
		WithDefaults("Describe", "(", ")"),
		WithParameterNames("Describe", "prefix", "suffix"),
	)

	out, err := r.Invoke("Describe")
	require.NoError(t, err)
	require.Equal(t, `"(alice)"`, string(out))

	out, err = r.Invoke("Describe", "[")
	require.NoError(t, err)
	require.Equal(t, `"[alice)"`, string(out))

	m, ok := r.Method("Describe")
	require.True(t, ok)
	require.Equal(t, `*reflect.Wallet.Describe(prefix string = "(", suffix string = ")") string`, m.Signature())

	_, err = NewRouter(&Wallet{}, WithDefaults("Missing", 1))
	require.ErrorIs(t, err, ErrMethodNotFound)

	_, err = NewRouter(&Wallet{}, WithParameterNames("Missing", "a"))
	require.ErrorIs(t, err, ErrMethodNotFound)

	_, err = NewRouter(&Wallet{}, WithDefaults("Deposit", "many"))
	require.Error(t, err)
}

func TestOverloadConflict(t *testing.T) {
	_, err := NewRouter(&Wallet{}, WithFunc("Deposit", func(a int64) int64 { return a }))
	require.ErrorIs(t, err, ErrMethodAlreadyDefined)

	_, err = NewRouter(&Wallet{},
		WithFunc("Deposit", sum),
		WithDefaults("Deposit", 1),
	)
	require.ErrorIs(t, err, ErrMethodAlreadyDefined)
}

func TestDisabledAndPrefixes(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	r, err := NewRouter(&Wallet{},
		WithLogger(logger),
		WithTrimPrefixes("Query"),
		WithDisabledMethods("Reset", "Label"),
	)
	require.NoError(t, err)

	_, ok := r.Method("Balance")
	require.True(t, ok)
	_, ok = r.Method("QueryBalance")
	require.False(t, ok)
	_, ok = r.Method("Reset")
	require.False(t, ok)

	var disabled int
	for _, e := range hook.AllEntries() {
		if e.Message == "method disabled" {
			require.Equal(t, logrus.InfoLevel, e.Level)
			disabled++
		}
	}
	require.Equal(t, 2, disabled)
}

func TestWithConfig(t *testing.T) {
	_, r := newWallet(t, WithConfig(config.Router{
		Policy:          "as_ptr",
		DisabledMethods: []string{"Balance"},
		TrimPrefixes:    []string{"Query"},
	}))

	// Reset returns nothing to bind as a pointer.
	require.True(t, r.MethodsByName("Reset").Empty())
	require.True(t, r.MethodsByName("Balance").Empty())

	res := r.Call(nil, "Deposit", 4)
	require.Equal(t, int64(4), *res.Interface().(*int64))

	_, err := NewRouter(&Wallet{}, WithConfig(config.Router{Policy: "by_reference"}))
	require.ErrorIs(t, err, accessor.ErrUnknownPolicy)

	_, err = NewRouter(&Wallet{},
		WithConfig(config.Router{Policy: "as_ptr", DisabledMethods: []string{"Describe"}}),
		WithDefaults("Describe", "<", ">"),
		WithParameterNames("Reset"),
	)
	require.NoError(t, err)
}

func TestWithTracing(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	th := telemetry.NewTracingHandler(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr)))

	_, r := newWallet(t, WithTracing(th))

	_, err := r.Invoke("Deposit", "1")
	require.NoError(t, err)
	_, err = r.Invoke("Withdraw", "10")
	require.Error(t, err)

	spans := sr.Ended()
	require.Len(t, spans, 2)
	require.Equal(t, "invoke Deposit", spans[0].Name())
	require.Equal(t, "invoke Withdraw", spans[1].Name())
}

func TestFunctionsOnly(t *testing.T) {
	r, err := NewRouter(nil, WithFunc("Sum", sum), WithLogger(logrus.New()))
	require.NoError(t, err)
	require.Nil(t, r.Type())

	out, err := r.Invoke("Sum", "1", "2")
	require.NoError(t, err)
	require.Equal(t, "3", string(out))

	_, err = NewRouter(nil, WithFunc("Bad", 42))
	require.ErrorIs(t, err, accessor.ErrNotFunc)

	require.Panics(t, func() { MustNewRouter(nil, WithFunc("Bad", 42)) })
}

func TestEncode(t *testing.T) {
	_, err := Encode(variant.Variant{})
	require.ErrorIs(t, err, ErrInvalidResult)

	out, err := Encode(variant.Of([]any{"a", 1}))
	require.NoError(t, err)
	require.Equal(t, `["a",1]`, string(out))
}
