package command

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/spf13/pflag"
)

var errUnknownCommand = errors.New("unknown subcommand")

var usageTemplate = `producer: component of the IOFilePatternBenchmark suite that produces files

Usage:

	producer [command] [arguments]

Without a command, "produce" is run with the given arguments.

The commands are:
{{range .}}{{if .Runnable}}
    {{.Name | printf "%-11s"}} {{.Short}}{{end}}{{end}}

Use "producer help [command]" for more information about a command.

`

// Main runs the command line and returns the process exit status.
func Main(args []string, stdout io.Writer) int {
	return ExitCode(Execute(args, stdout))
}

// ExitCode maps the result of Execute to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUnknownCommand):
		return 2
	default:
		return 1
	}
}

// Execute dispatches args to a command. Every user facing line, including
// errors, goes to stdout.
func Execute(args []string, stdout io.Writer) error {
	if len(args) > 0 && args[0] == "help" {
		return help(args[1:], stdout)
	}

	cmd := cmdProduce
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		cmd = lookup(args[0])
		if cmd == nil {
			fmt.Fprintf(os.Stderr, "producer: unknown subcommand %q\nRun 'producer help' for usage.\n", args[0])
			return fmt.Errorf("%w %q", errUnknownCommand, args[0])
		}
		args = args[1:]
	}

	cmd.Stdout = stdout
	if err := cmd.parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			fmt.Fprintf(stdout, "ERROR: Help\n")
		} else {
			fmt.Fprintf(stdout, "ERROR: %v\n", err)
		}
		cmd.Usage(stdout)
		return err
	}

	err := cmd.Run(cmd, cmd.Flag.Args())
	if err != nil {
		fmt.Fprintf(stdout, "ERROR: %v\n", err)
		if errors.Is(err, ErrArgumentParse) {
			cmd.Usage(stdout)
		}
	}
	return err
}

func lookup(name string) *Command {
	for _, cmd := range Commands {
		if cmd.Name() == name && cmd.Runnable() {
			return cmd
		}
	}
	return nil
}

// tmpl executes the given template text on data, writing the result to w.
func tmpl(w io.Writer, text string, data interface{}) {
	t := template.New("top")
	template.Must(t.Parse(text))
	if err := t.Execute(w, data); err != nil {
		panic(err)
	}
}

// help implements the 'help' command.
func help(args []string, stdout io.Writer) error {
	if len(args) == 0 {
		tmpl(stdout, usageTemplate, Commands)
		return nil
	}
	if len(args) != 1 {
		fmt.Fprintf(stdout, "usage: producer help command\n\nToo many arguments given.\n")
		return argumentErrorf("too many arguments to help")
	}

	if cmd := lookup(args[0]); cmd != nil {
		cmd.Usage(stdout)
		return nil
	}

	fmt.Fprintf(stdout, "Unknown help topic %#q.  Run 'producer help'.\n", args[0])
	return argumentErrorf("unknown help topic %q", args[0])
}
