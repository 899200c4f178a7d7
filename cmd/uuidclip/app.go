package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"

	"github.com/viant/afs"
	"github.com/viant/uuidclip"
	"github.com/viant/uuidclip/tracing"
)

const (
	appName    = "uuidclip"
	appVersion = "0.1"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

type app struct {
	stdout           io.Writer
	stderr           io.Writer
	fs               afs.Service
	defaultConfigURL string
	options          []uuidclip.Option
}

type flags struct {
	uuidType  int
	name      string
	namespace string
	config    string
	trace     string
	noCopy    bool
	verbose   bool
	help      bool
	version   bool
	given     map[string]bool
}

// isSet reports whether any of the named flags appeared on the command line.
func (f *flags) isSet(names ...string) bool {
	for _, name := range names {
		if f.given[name] {
			return true
		}
	}
	return false
}

func (a *app) flagSet(f *flags) *flag.FlagSet {
	set := flag.NewFlagSet(appName, flag.ContinueOnError)
	set.SetOutput(a.stderr)
	set.IntVar(&f.uuidType, "t", 0, "")
	set.IntVar(&f.uuidType, "type", 0, "")
	set.StringVar(&f.name, "n", "", "")
	set.StringVar(&f.name, "name", "", "")
	set.StringVar(&f.namespace, "ns", "", "")
	set.StringVar(&f.namespace, "namespace", "", "")
	set.StringVar(&f.config, "c", "", "")
	set.StringVar(&f.config, "config", "", "")
	set.StringVar(&f.trace, "trace", "", "")
	set.BoolVar(&f.noCopy, "no-copy", false, "")
	set.BoolVar(&f.verbose, "v", false, "")
	set.BoolVar(&f.verbose, "verbose", false, "")
	set.BoolVar(&f.help, "h", false, "")
	set.BoolVar(&f.help, "help", false, "")
	set.BoolVar(&f.version, "V", false, "")
	set.BoolVar(&f.version, "version", false, "")
	set.Usage = func() { a.usage(a.stderr) }
	return set
}

func (a *app) usage(w io.Writer) {
	fmt.Fprintf(w, `Usage: %v [-hvV] [-t <type>] [-n <name>] [-ns <namespace>] [-c <config>] [--no-copy] [--trace <file>]
Generate a UUID and copy it to the clipboard

  -t, --type <type>         UUID type: 1 (time-based), 3 (MD5 name-based),
                            4 (random, default), 5 (SHA-1 name-based)
  -n, --name <name>         Name for UUID v3/v5 generation (required for v3 and v5)
  -ns, --namespace <uuid>   Namespace UUID for v3/v5 (defaults to DNS namespace)
  -c, --config <url>        YAML config with defaults
      --no-copy             Print the UUID without touching the clipboard
      --trace <file>        Write OpenTelemetry spans to file
  -v, --verbose             Log clipboard attempts to stderr
  -h, --help                Show this help message and exit
  -V, --version             Print version information and exit
`, appName)
}

func (a *app) run(ctx context.Context, args []string) int {
	f := &flags{}
	set := a.flagSet(f)
	if err := set.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	f.given = map[string]bool{}
	set.Visit(func(fl *flag.Flag) { f.given[fl.Name] = true })
	if set.NArg() > 0 {
		fmt.Fprintf(a.stderr, "Unmatched argument: %v\n", set.Arg(0))
		a.usage(a.stderr)
		return exitUsage
	}
	if f.help {
		a.usage(a.stdout)
		return exitOK
	}
	if f.version {
		fmt.Fprintf(a.stdout, "%v %v\n", appName, appVersion)
		return exitOK
	}

	config, err := a.loadConfig(ctx, f.config)
	if err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		return exitError
	}
	if f.noCopy {
		config.Clipboard.Disabled = true
	}
	if f.trace != "" {
		config.Trace.Output = f.trace
	}

	options := []uuidclip.Option{uuidclip.WithConfig(config)}
	if f.verbose {
		options = append(options, uuidclip.WithLogger(log.New(a.stderr, appName+": ", 0).Printf))
	}
	if config.Trace.Output != "" {
		if err = tracing.Init(appName, appVersion, config.Trace.Output); err != nil {
			fmt.Fprintf(a.stderr, "Error: failed to initialise tracing: %v\n", err)
			return exitError
		}
		defer func() { _ = tracing.Shutdown(ctx) }()
	}
	srv := uuidclip.New(append(options, a.options...)...)
	if err = srv.Err(); err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		return exitError
	}

	version := config.Type
	if f.isSet("t", "type") {
		version = f.uuidType
	}
	request := srv.Request(version, f.name, f.namespace)
	request.HasName = f.isSet("n", "name")
	id, err := srv.Generate(ctx, request)
	if err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		return exitError
	}
	fmt.Fprintln(a.stdout, id)

	if config.Clipboard.Disabled {
		return exitOK
	}
	if err = srv.Copy(ctx, id); err != nil {
		if f.verbose {
			log.New(a.stderr, appName+": ", 0).Printf("%v", err)
		}
		fmt.Fprintln(a.stderr, "Warning: Could not copy to clipboard")
		return exitOK
	}
	fmt.Fprintln(a.stdout, "UUID copied to clipboard!")
	return exitOK
}

func (a *app) loadConfig(ctx context.Context, URL string) (*uuidclip.Config, error) {
	if URL != "" {
		return uuidclip.LoadConfig(ctx, a.fs, URL)
	}
	return uuidclip.LoadDefaultConfig(ctx, a.fs, a.defaultConfigURL)
}
