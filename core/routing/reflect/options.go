package reflect

import (
	"github.com/sbalogh/rttr/core/accessor"
	"github.com/sbalogh/rttr/core/config"
	"github.com/sbalogh/rttr/core/logger"
	"github.com/sbalogh/rttr/core/stringsx"
	"github.com/sbalogh/rttr/core/telemetry"
	"github.com/sirupsen/logrus"
)

// Option configures a Router.
type Option func(*options)

type funcEntry struct {
	name string
	fn   any
}

type options struct {
	funcs        []funcEntry
	defaults     map[string][]any
	names        map[string][]string
	policy       accessor.Policy
	disabled     []string
	trimPrefixes []string
	tracing      *telemetry.TracingHandler
	logger       logrus.FieldLogger
	err          error
}

func newOptions() *options {
	return &options{
		defaults: make(map[string][]any),
		names:    make(map[string][]string),
		policy:   accessor.Default,
	}
}

// methodName returns the name a Go method is registered under.
func (o *options) methodName(name string) string {
	trimmed, _ := stringsx.TrimFirstPrefix(name, o.trimPrefixes...)
	return trimmed
}

func (o *options) defaultsFor(names ...string) []any {
	for _, name := range names {
		if defaults, ok := o.defaults[name]; ok {
			return defaults
		}
	}

	return nil
}

func (o *options) namesFor(names ...string) []string {
	for _, name := range names {
		if params, ok := o.names[name]; ok {
			return params
		}
	}

	return nil
}

func (o *options) isDisabled(names ...string) bool {
	for _, name := range names {
		if stringsx.OneOf(name, o.disabled...) {
			return true
		}
	}

	return false
}

// WithFunc registers fn as a static method called name. Several functions,
// or a function and a method, may share a name when they accept different
// numbers of arguments.
func WithFunc(name string, fn any) Option {
	return func(o *options) {
		o.funcs = append(o.funcs, funcEntry{name: name, fn: fn})
	}
}

// WithDefaults stores default values for the trailing parameters of every
// method called name. The last value belongs to the last parameter. Go
// methods are matched by their registered name first, then their Go name.
func WithDefaults(name string, defaults ...any) Option {
	return func(o *options) {
		o.defaults[name] = defaults
	}
}

// WithParameterNames names the parameters of every method called name.
func WithParameterNames(name string, names ...string) Option {
	return func(o *options) {
		o.names[name] = names
	}
}

// WithPolicy selects the binding policy of all registered methods. Methods
// whose results the policy cannot bind are left out of the table.
func WithPolicy(policy accessor.Policy) Option {
	return func(o *options) {
		o.policy = policy
	}
}

// WithDisabledMethods leaves the named methods out of the table. Both the Go
// name and the registered name are matched.
func WithDisabledMethods(names ...string) Option {
	return func(o *options) {
		o.disabled = append(o.disabled, names...)
	}
}

// WithTrimPrefixes registers Go methods without the first matching prefix.
func WithTrimPrefixes(prefixes ...string) Option {
	return func(o *options) {
		o.trimPrefixes = append(o.trimPrefixes, prefixes...)
	}
}

// WithTracing runs every invocation in a span of th.
func WithTracing(th *telemetry.TracingHandler) Option {
	return func(o *options) {
		o.tracing = th
	}
}

// WithLogger replaces the process logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithConfig applies the router section of a loaded configuration.
func WithConfig(cfg config.Router) Option {
	return func(o *options) {
		policy, err := accessor.ParsePolicy(cfg.Policy)
		if err != nil {
			o.err = err
			return
		}

		o.policy = policy
		o.disabled = append(o.disabled, cfg.DisabledMethods...)
		o.trimPrefixes = append(o.trimPrefixes, cfg.TrimPrefixes...)
	}
}

func (o *options) log() logrus.FieldLogger {
	if o.logger == nil {
		return logger.Logger()
	}

	return o.logger
}
