package cmd

import (
	"bytes"
	"flag"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/charmbracelet/glamour"
	json "github.com/goccy/go-json"
	"github.com/google/subcommands"
)

// outputFlags select how a calculator prints its result.
type outputFlags struct {
	json  bool
	query string
}

func (o *outputFlags) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&o.json, "json", false, "Print the result as JSON instead of a report.")
	f.StringVar(&o.query, "q", "", "Print only the value at this JSONPath in the JSON result, e.g. '$.summary.finalValue'.")
}

// print writes result as requested: a JSONPath value, JSON, or the markdown
// report.
func (o *outputFlags) print(result any, report func() string) subcommands.ExitStatus {
	switch {
	case o.query != "":
		v, err := query(result, o.query)
		if err != nil {
			return fail(err)
		}
		fmt.Fprintln(stdout, v)
	case o.json:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return fail(fmt.Errorf("result is too large to be represented: %w", err))
		}
		buf.WriteTo(stdout)
	default:
		printMarkdown(report())
	}
	return subcommands.ExitSuccess
}

// query extracts the value at path from the JSON form of result. Strings
// are returned as is, other values as JSON.
func query(result any, path string) (string, error) {
	b, err := json.Marshal(result)
	if err != nil {
		return "", err
	}
	var jobj any
	if err := json.Unmarshal(b, &jobj); err != nil {
		return "", err
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return "", fmt.Errorf("query %q: %w", path, err)
	}
	// jsonpath returns a list for wildcards and filters: keep the only item.
	if jlist, ok := jval.([]any); ok && len(jlist) == 1 {
		jval = jlist[0]
	}
	if s, ok := jval.(string); ok {
		return s, nil
	}
	b, err = json.Marshal(jval)
	return string(b), err
}

// printMarkdown renders md for the terminal, or prints it raw when it cannot.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Fprint(stdout, out)
			return
		}
	}
	fmt.Fprint(stdout, md)
}
