package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sbalogh/rttr/core/config"
	"github.com/sbalogh/rttr/core/logger"
	"github.com/sbalogh/rttr/core/routing"
	"github.com/sbalogh/rttr/core/routing/reflect"
	"github.com/sbalogh/rttr/core/stringsx"
	"github.com/sbalogh/rttr/core/telemetry"
	"github.com/sbalogh/rttr/internal/demo"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	formatText = "text"
	formatJSON = "json"
)

var errInvalidAccount = errors.New("invalid account")

// rootOptions holds global flags for all commands.
type rootOptions struct {
	configPath string
	format     string
	accounts   []string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "rttrinspect",
		Short: "Inspect and invoke reflected methods",
		Long: `Inspect and invoke the methods of the demo catalog.

The catalog is an in-memory ledger plus a few free functions. Accounts given
with --account are opened before the command runs.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			if !stringsx.OneOf(opts.format, formatText, formatJSON) {
				return fmt.Errorf("invalid format %q: must be %s or %s", opts.format, formatText, formatJSON)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	cmd.PersistentFlags().StringVar(&opts.format, "format", formatText, "output format (text|json)")
	cmd.PersistentFlags().StringArrayVar(&opts.accounts, "account", nil, "open an account, as name or name=balance")

	cmd.AddCommand(newMethodsCommand(opts))
	cmd.AddCommand(newInvokeCommand(opts))
	cmd.AddCommand(newVersionCommand())

	return cmd
}

// catalog is the router of one command run.
type catalog struct {
	routing.Router
	shutdown func(context.Context) error
}

func (o *rootOptions) loadConfig() (*config.Config, error) {
	if o.configPath == "" {
		cfg := config.Default()
		cfg.ApplyEnv()
		return cfg, cfg.Validate()
	}

	return config.Load(o.configPath)
}

func (o *rootOptions) openCatalog(cmd *cobra.Command) (*catalog, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Logging)
	if err != nil {
		return nil, err
	}
	log.SetOutput(cmd.ErrOrStderr())

	tp := telemetry.InstallTraceProvider(cfg.Telemetry, "")
	c := &catalog{shutdown: func(context.Context) error { return nil }}
	if sdk, ok := tp.(*sdktrace.TracerProvider); ok {
		c.shutdown = sdk.Shutdown
	}

	ledger := demo.NewLedger()
	for _, account := range o.accounts {
		if err = seed(ledger, account); err != nil {
			return nil, err
		}
	}

	c.Router, err = demo.NewRouter(ledger,
		reflect.WithConfig(cfg.Router),
		reflect.WithLogger(log),
		reflect.WithTracing(telemetry.NewTracingHandler(tp)),
	)
	if err != nil {
		return nil, err
	}

	return c, nil
}

func seed(l *demo.Ledger, account string) error {
	name, balance, found := strings.Cut(account, "=")
	if name == "" {
		return fmt.Errorf("%w: '%s'", errInvalidAccount, account)
	}
	if err := l.Open(name); err != nil {
		return err
	}
	if !found {
		return nil
	}

	amount, err := decimal.NewFromString(balance)
	if err != nil {
		return fmt.Errorf("%w: '%s': %w", errInvalidAccount, account, err)
	}
	if amount.IsZero() {
		return nil
	}

	_, err = l.Deposit(name, demo.Amount{Decimal: amount})

	return err
}
