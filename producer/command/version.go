package command

import (
	"fmt"
	"runtime"

	"github.com/iofpbench/producer/producer/util/version"
)

var cmdVersion = &Command{
	Run:       runVersion,
	UsageLine: "version",
	Short:     "print producer version",
	Long:      `Version prints the producer version`,
}

func runVersion(cmd *Command, args []string) error {
	if len(args) != 0 {
		return argumentErrorf("version takes no arguments")
	}

	fmt.Fprintf(cmd.Stdout, "version %s %s %s\n", version.Version(), runtime.GOOS, runtime.GOARCH)
	return nil
}
