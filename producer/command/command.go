package command

import (
	"errors"
	goflag "flag"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
)

var Commands = []*Command{
	cmdProduce,
	cmdVerify,
	cmdScaffold,
	cmdVersion,
}

// ErrArgumentParse marks malformed command lines, including an explicit help request.
var ErrArgumentParse = errors.New("argument parse error")

type ArgumentError struct {
	Err error
}

func (e *ArgumentError) Error() string { return e.Err.Error() }

func (e *ArgumentError) Unwrap() []error { return []error{ErrArgumentParse, e.Err} }

func argumentErrorf(format string, args ...interface{}) error {
	return &ArgumentError{Err: fmt.Errorf(format, args...)}
}

type Command struct {
	// Run runs the command.
	// The args are the arguments after the command name.
	Run func(cmd *Command, args []string) error

	// UsageLine is the one-line usage message.
	// The first word in the line is taken to be the command name.
	UsageLine string

	// Short is the short description shown in the 'producer help' output.
	Short string

	// Long is the long message shown in the 'producer help <this-command>' output.
	Long string

	// Flag is a set of flags specific to this command.
	Flag pflag.FlagSet

	// Stdout receives all user facing output of one invocation.
	Stdout io.Writer
}

// Name returns the command's name: the first word in the usage line.
func (c *Command) Name() string {
	name := c.UsageLine
	i := strings.Index(name, " ")
	if i >= 0 {
		name = name[:i]
	}
	return name
}

func (c *Command) Usage(w io.Writer) {
	fmt.Fprintf(w, "Usage: producer %s\n\n", c.UsageLine)
	fmt.Fprintf(w, "  %s\n\n", strings.TrimSpace(c.Long))
	fmt.Fprintf(w, "Default Parameters:\n%s\n", c.Flag.FlagUsages())
}

// Runnable reports whether the command can be run; otherwise
// it is a documentation pseudo-command such as importpath.
func (c *Command) Runnable() bool {
	return c.Run != nil
}

// parse resolves args against the command flags plus the glog flags.
// Flags changed by an earlier invocation are restored to their defaults first.
func (c *Command) parse(args []string) error {
	c.Flag.VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			f.Value.Set(f.DefValue)
			f.Changed = false
		}
	})

	c.Flag.AddGoFlagSet(goflag.CommandLine)
	goflag.CommandLine.VisitAll(func(f *goflag.Flag) {
		if f.Name != "v" {
			c.Flag.MarkHidden(f.Name)
		}
	})
	c.Flag.Usage = func() {}
	c.Flag.SetOutput(io.Discard)

	if err := c.Flag.Parse(args); err != nil {
		return &ArgumentError{Err: err}
	}
	return nil
}
