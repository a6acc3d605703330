package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/QEStudios/scaled/fretboard"
	"github.com/QEStudios/scaled/theory"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/pflag"
)

const (
	appName    = "scaled"
	appVersion = "1.0.0"
	appAbout   = "Display musical scales on guitar fretboard"
)

const examples = `EXAMPLES:
    scaled --root C --mode major
    scaled -r F# -m dorian -t d
    scaled --root C --mode major --tuning F# --drop
    scaled --root A --mode minor --tuning Bb
`

// Command-line options after parsing.
type options struct {
	root    string
	mode    string
	tuning  string
	drop    bool
	verbose bool
	debug   bool
	version bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// newFlagSet declares every flag and writes the parsed values into opts.
func newFlagSet(opts *options, stderr io.Writer) *pflag.FlagSet {
	flags := pflag.NewFlagSet(appName, pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.SortFlags = false

	flags.StringVarP(&opts.root, "root", "r", "", "Root note of the scale (e.g., C, C#, D, F#)")
	flags.StringVarP(&opts.mode, "mode", "m", "", "Musical mode: "+modeNames())
	flags.StringVarP(&opts.tuning, "tuning", "t", "e", "Lowest string tuning note (e.g., E, D, C#, F#) - calculates full tuning from this")
	flags.BoolVar(&opts.drop, "drop", false, "Drop the lowest string by a whole step (e.g., Drop D, Drop C)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log what the program is doing to stderr")
	flags.BoolVar(&opts.debug, "debug", false, "Dump the computed scale and tuning to stderr")
	flags.BoolVarP(&opts.version, "version", "V", false, "Print version information")

	flags.Usage = func() {
		fmt.Fprintf(stderr, "%s %s\n%s\n\nUsage: %s --root <NOTE> --mode <MODE> [options]\n\n", appName, appVersion, appAbout, appName)
		fmt.Fprintln(stderr, "Options:")
		fmt.Fprint(stderr, flags.FlagUsages())
		fmt.Fprintf(stderr, "\n%s", examples)
	}
	return flags
}

func modeNames() string {
	var names []string
	for _, m := range theory.Modes() {
		names = append(names, m.Name)
	}
	return strings.Join(names, ", ")
}

// run is the whole program. It returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	errLogger := log.New(stderr, "Error: ", 0)

	var opts options
	flags := newFlagSet(&opts, stderr)
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		errLogger.Println(err)
		return 2
	}

	if opts.version {
		fmt.Fprintf(stdout, "%s %s\n", appName, appVersion)
		return 0
	}

	logger := log.New(io.Discard, "", log.Ldate|log.Ltime)
	if opts.verbose {
		logger.SetOutput(stderr)
	}

	if err := checkRequired(flags, "root", "mode"); err != nil {
		errLogger.Println(err)
		flags.Usage()
		return 1
	}

	logger.Printf("Building %s %s scale", opts.root, opts.mode)
	scale, err := theory.Scale(opts.root, opts.mode)
	if err != nil {
		errLogger.Println(err)
		return 1
	}

	logger.Printf("Building %s tuning from %s", theory.TuningName(opts.drop), opts.tuning)
	tuning, err := theory.Tuning(opts.tuning, opts.drop)
	if err != nil {
		errLogger.Println(err)
		return 1
	}

	if opts.debug {
		dumper := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true}
		dumper.Fdump(stderr, scale, tuning)
	}

	fmt.Fprintf(stdout, "Scale: %s %s\n", strings.ToUpper(opts.root), opts.mode)
	fmt.Fprintf(stdout, "Tuning: %s %s\n", strings.ToUpper(opts.tuning), theory.TuningName(opts.drop))
	fmt.Fprintf(stdout, "Strings: %s\n", theory.JoinNotes(tuning, "-"))
	fmt.Fprintln(stdout)

	if err := fretboard.Render(stdout, scale, tuning); err != nil {
		errLogger.Println(err)
		return 1
	}
	logger.Printf("Drew %d strings across %d frets", len(tuning), fretboard.Frets)
	return 0
}

// checkRequired returns an error naming the first of the given flags that wasn't set.
func checkRequired(flags *pflag.FlagSet, names ...string) error {
	for _, name := range names {
		if !flags.Changed(name) {
			return fmt.Errorf("missing required flag --%s", name)
		}
	}
	return nil
}
