// Package cmd implements the hc command line application: the investment and
// mortgage calculators, the HTTP service and the assistant.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/google/subcommands"
	"github.com/joechiboo/homecalc"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

// Verbose enables debug logs.
var Verbose = flag.Bool("v", false, "Verbose logging, on stderr.")

// stdout receives every report. Tests replace it.
var stdout io.Writer = os.Stdout

type group struct {
	name     string
	commands []subcommands.Command
}

// groups lists the subcommands in the order of the help.
var groups = []group{
	{"calculators", []subcommands.Command{
		&fundsCmd{},
		&valueCmd{},
		&projectCmd{},
		&portfolioCmd{},
		&mortgageCmd{},
		&compareCmd{},
	}},
	{"services", []subcommands.Command{
		&serveCmd{},
		&assistCmd{},
	}},
	{"help", []subcommands.Command{
		&topicCmd{},
	}},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, g := range groups {
		for _, cmd := range g.commands {
			c.Register(cmd, g.name)
		}
	}
}

// fail reports err on stderr.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}

// usage reports a command line error on stderr.
func usage(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	return subcommands.ExitUsageError
}

// decodeFile decodes the plan file at path.
func decodeFile[T any](path string, decode func(io.Reader) (T, error)) (T, error) {
	f, err := os.Open(path)
	if err != nil {
		var zero T
		return zero, err
	}
	defer f.Close()
	v, err := decode(f)
	if err != nil {
		return v, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

// fundFlag validates a fund code given on the command line.
type fundFlag string

func (f *fundFlag) String() string { return string(*f) }
func (f *fundFlag) Set(code string) error {
	if _, err := homecalc.LookupFund(code); err != nil {
		return err
	}
	*f = fundFlag(code)
	return nil
}

// optionalFloat is a float flag that remembers whether it was set.
type optionalFloat struct {
	value float64
	set   bool
}

func (o *optionalFloat) String() string {
	if o == nil || !o.set {
		return ""
	}
	return fmt.Sprint(o.value)
}

func (o *optionalFloat) Set(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid number %q", s)
	}
	o.value, o.set = v, true
	return nil
}

// ptr returns nil when the flag was not set.
func (o *optionalFloat) ptr() *float64 {
	if !o.set {
		return nil
	}
	v := o.value
	return &v
}
