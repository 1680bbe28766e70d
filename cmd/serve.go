package cmd

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/subcommands"
	"github.com/joechiboo/homecalc/api"
)

// EnvAddr is the environment variable holding the default listen address.
const EnvAddr = "HC_ADDR"

type serveCmd struct {
	addr string
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve the calculators as a JSON API" }
func (*serveCmd) Usage() string {
	return `hc serve [-addr <host:port>]

  Serves the calculators over HTTP until interrupted. See 'hc topic api'
  for the endpoints. The default address is read from $HC_ADDR.

Usage Examples:
$ hc serve -addr :8080
$ curl -s -X POST localhost:8080/mortgage -d '{"principal":1000000,"annualRate":2,"monthlyPayment":4216}'
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	addr := os.Getenv(EnvAddr)
	if addr == "" {
		addr = ":8080"
	}
	f.StringVar(&c.addr, "addr", addr, "Address to listen on.")
}

func (c *serveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	logger := InitLogger(*Verbose)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := api.Serve(ctx, c.addr, logger); err != nil {
		logger.Error(err.Error())
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
