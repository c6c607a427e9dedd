package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pranshuparmar/bundlecheck/internal/banner"
	"github.com/pranshuparmar/bundlecheck/internal/bundle"
	"github.com/pranshuparmar/bundlecheck/internal/config"
	"github.com/pranshuparmar/bundlecheck/internal/inspect"
	"github.com/pranshuparmar/bundlecheck/internal/output"
	"github.com/pranshuparmar/bundlecheck/internal/tui"
	"github.com/pranshuparmar/bundlecheck/pkg/model"
)

var version = ""
var commit = ""
var buildDate = ""

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "Usage: bundlecheck [--bundle PATH | PATH] [--runtime-id ID] [-i] [--short] [--json] [--warnings] [--no-color] [--banner] [--config FILE] [--verbose] [--help] [--version]")
	fmt.Fprintln(w, "  --bundle <path>     Application bundle to inspect (Foo.app)")
	fmt.Fprintln(w, "  --runtime-id <id>   Identifier reported by the runtime, overrides the system lookup")
	fmt.Fprintln(w, "  -i, --interactive   Interactive TUI mode")
	fmt.Fprintln(w, "  --short             One line per result")
	fmt.Fprintln(w, "  --json              Output result as JSON")
	fmt.Fprintln(w, "  --warnings          Show only consistency warnings")
	fmt.Fprintln(w, "  --no-color          Disable colorized output")
	fmt.Fprintln(w, "  --banner            Print the title banner")
	fmt.Fprintln(w, "  --config <file>     YAML file overriding resource names and markers")
	fmt.Fprintln(w, "  --verbose           Log every lookup to stderr")
	fmt.Fprintln(w, "  --help              Show this help message")
	fmt.Fprintln(w, "  --version           Show version and exit")
}

// Helper: which flags need a value (not bool flags)?
func flagNeedsValue(flag string) bool {
	switch flag {
	case "--bundle", "-bundle", "--runtime-id", "-runtime-id", "--config", "-config":
		return true
	}
	return false
}

// reorderArgs moves all flags (with their values) in front of positional
// arguments so "bundlecheck Foo.app --json" works with the flag package
func reorderArgs(args []string) []string {
	if len(args) == 0 {
		return args
	}
	reordered := []string{args[0]}
	var positionals []string
	for i := 1; i < len(args); i++ {
		arg := args[i]
		if len(arg) > 0 && arg[0] == '-' {
			reordered = append(reordered, arg)
			if flagNeedsValue(arg) && i+1 < len(args) && len(args[i+1]) > 0 && args[i+1][0] != '-' {
				reordered = append(reordered, args[i+1])
				i++
			}
		} else {
			positionals = append(positionals, arg)
		}
	}
	return append(reordered, positionals...)
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func fail(msg string) {
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Error:")
	fmt.Fprintf(os.Stderr, "  %s\n", output.SanitizeTerminal(msg))
	fmt.Fprintln(os.Stderr, "For usage and options, run: bundlecheck --help")
	os.Exit(1)
}

func main() {
	// Sanity check: fail build if version is not injected
	if version == "" {
		fmt.Fprintln(os.Stderr, "ERROR: version not set. Use -ldflags '-X main.version=...' when building.")
		os.Exit(2)
	}

	os.Args = reorderArgs(os.Args)

	bundleFlag := flag.String("bundle", "", "application bundle to inspect")
	runtimeIDFlag := flag.String("runtime-id", "", "identifier reported by the runtime")
	shortFlag := flag.Bool("short", false, "short output")
	jsonFlag := flag.Bool("json", false, "output as JSON")
	warnFlag := flag.Bool("warnings", false, "show only warnings")
	noColorFlag := flag.Bool("no-color", false, "disable colorized output")
	bannerFlag := flag.Bool("banner", false, "print the title banner")
	configFlag := flag.String("config", "", "YAML config file")
	verboseFlag := flag.Bool("verbose", false, "log every lookup")
	helpFlag := flag.Bool("help", false, "show help")
	versionFlag := flag.Bool("version", false, "show version and exit")
	interactiveFlag := flag.Bool("i", false, "interactive mode")
	interactiveLongFlag := flag.Bool("interactive", false, "interactive mode")

	flag.Usage = func() { printHelp(os.Stderr) }
	flag.Parse()

	if *helpFlag {
		printHelp(os.Stdout)
		os.Exit(0)
	}
	if *versionFlag {
		fmt.Printf("bundlecheck %s (commit %s, built %s)\n", version, commit, buildDate)
		os.Exit(0)
	}
	// To embed version, commit, and build date, use:
	// go build -ldflags "-X main.version=v0.1.0 -X main.commit=$(git rev-parse --short HEAD) -X 'main.buildDate=$(date +%Y-%m-%d)'" -o bundlecheck ./cmd/bundlecheck

	root := *bundleFlag
	if root == "" && len(flag.Args()) > 0 {
		root = flag.Args()[0]
	}
	if root == "" {
		printHelp(os.Stderr)
		os.Exit(1)
	}
	if info, err := os.Stat(root); err != nil {
		fail(fmt.Sprintf("cannot open bundle %s: %v", root, err))
	} else if !info.IsDir() {
		fail(fmt.Sprintf("%s is not a bundle directory", root))
	}

	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			fail(err.Error())
		}
		cfg = loaded
	}

	logger := newLogger(*verboseFlag)

	var opts []bundle.Option
	if *runtimeIDFlag != "" {
		opts = append(opts, bundle.WithRuntimeID(*runtimeIDFlag))
	}
	env := bundle.Open(root, opts...)
	inspector := inspect.New(env, inspect.WithConfig(cfg), inspect.WithLogger(logger))

	if *interactiveFlag || *interactiveLongFlag {
		if err := tui.Run(inspector); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	res := inspector.Run()
	logger.Debug("inspection finished", "bundle", res.Bundle, "lines", len(res.Lines), "warnings", len(res.Warnings))

	renderOpts := renderOptions{
		json:     *jsonFlag,
		warnings: *warnFlag,
		short:    *shortFlag,
		banner:   *bannerFlag,
		color:    !*noColorFlag,
	}
	if err := render(os.Stdout, res, renderOpts); err != nil {
		fail(fmt.Sprintf("failed to write output: %v", err))
	}
}

type renderOptions struct {
	json     bool
	warnings bool
	short    bool
	banner   bool
	color    bool
}

// render writes res in the selected mode and returns the first write error
func render(w io.Writer, res model.Result, opts renderOptions) error {
	switch {
	case opts.json:
		out, err := output.ToJSON(res)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, out)
		return err
	case opts.warnings:
		return output.RenderWarnings(w, res.Warnings, opts.color)
	case opts.short:
		return output.RenderShort(w, res, opts.color)
	}

	if opts.banner {
		if err := banner.Print(w, opts.color); err != nil {
			return err
		}
	}
	return output.RenderStandard(w, res, opts.color)
}
