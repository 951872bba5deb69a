package main

import (
	goflag "flag"
	"os"

	"github.com/golang/glog"

	"github.com/iofpbench/producer/producer/command"
)

func main() {
	// glog registers its flags on the standard flag set; they are merged into
	// every command and default to stderr so no log files are left behind.
	goflag.Set("logtostderr", "true")
	goflag.CommandLine.Parse(nil)

	code := command.Main(os.Args[1:], os.Stdout)
	glog.Flush()
	os.Exit(code)
}
