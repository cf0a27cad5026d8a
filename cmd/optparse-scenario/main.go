// optparse-scenario - Runs declarative parser scenario files and reports the differences.
//
// Usage:
//
//	optparse-scenario [--debug] [--no-color] [--quiet] <file|dir>...
//
// Directories are expanded to the YAML, JSON and TOML files they contain.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"

	"github.com/go-optionparser/optionparser"
	"github.com/go-optionparser/optionparser/internal/scenario"
)

var Logger = log.New(io.Discard, "", log.LstdFlags)

// Writer - Report output.
var Writer io.Writer = os.Stdout

var (
	failColor = color.New(color.FgRed)
	passColor = color.New(color.FgGreen)
)

func main() {
	os.Exit(program(os.Args))
}

func program(args []string) int {
	opt := optionparser.New().SetProgramName("optparse-scenario")
	opt.AddOption([]string{"h", "?"}, []string{"help"}, "Show this help message").
		Action(opt.HelpAction("[options] <file|dir>..."))
	debug := opt.AddOption(nil, []string{"debug"}, "Log the parser decisions to stderr")
	noColor := opt.AddOption(nil, []string{"no-color"}, "Disable colored output")
	quiet := opt.AddOption([]string{"q"}, []string{"quiet"}, "Only report failures")
	remaining, err := opt.Parse(args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		return 1
	}
	if debug.Count() > 0 {
		Logger.SetOutput(os.Stderr)
		optionparser.Logger.SetOutput(os.Stderr)
	}
	if noColor.Count() > 0 {
		color.NoColor = true
	}
	if len(remaining) == 0 {
		fmt.Fprintf(os.Stderr, "ERROR: missing scenario files\n\n%s", opt.Help())
		return 1
	}
	Logger.Printf("Scenario paths: %v", remaining)

	ctx, cancel, done := interruptContext()
	defer func() { cancel(); <-done }()

	failed, err := run(ctx, remaining, quiet.Count() > 0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		return 1
	}
	if failed {
		return 1
	}
	return 0
}

// run - Checks every scenario under paths and reports whether any failed.
func run(ctx context.Context, paths []string, quiet bool) (bool, error) {
	list, err := load(paths)
	if err != nil {
		return false, err
	}
	cases, failures := 0, 0
	for _, s := range list {
		if err := ctx.Err(); err != nil {
			return failures > 0, fmt.Errorf("interrupted: %w", err)
		}
		Logger.Printf("Checking %s: %d cases", s.Name, len(s.Tests))
		cases += len(s.Tests)
		ff := s.Check()
		failures += len(ff)
		for _, f := range ff {
			failColor.Fprintf(Writer, "FAIL %s\n", f)
		}
		if len(ff) == 0 && !quiet {
			passColor.Fprintf(Writer, "PASS %s\n", s.Name)
		}
	}
	summary := fmt.Sprintf("%d scenarios, %d cases, %d failures\n", len(list), cases, failures)
	if failures > 0 {
		failColor.Fprint(Writer, summary)
		return true, nil
	}
	if !quiet {
		passColor.Fprint(Writer, summary)
	}
	return false, nil
}

func load(paths []string) ([]*scenario.Scenario, error) {
	list := []*scenario.Scenario{}
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			l, err := scenario.LoadDir(path)
			if err != nil {
				return nil, err
			}
			if len(l) == 0 {
				return nil, fmt.Errorf("no scenario files in '%s'", path)
			}
			list = append(list, l...)
			continue
		}
		s, err := scenario.Load(path)
		if err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, nil
}

// interruptContext - Creates a context that is cancelled on os.Interrupt, syscall.SIGHUP and syscall.SIGTERM.
// The done channel receives a message once the listener has stopped.
func interruptContext() (ctx context.Context, cancel context.CancelFunc, done chan struct{}) {
	done = make(chan struct{}, 1)
	ctx, cancel = context.WithCancel(context.Background())
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGHUP, syscall.SIGTERM)
	go func() {
		defer func() {
			signal.Stop(signals)
			cancel()
			done <- struct{}{}
		}()
		select {
		case <-signals:
			fmt.Fprintf(os.Stderr, "\nInterrupt signal received\n")
		case <-ctx.Done():
		}
	}()
	return ctx, cancel, done
}
