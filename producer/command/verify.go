package command

import (
	"context"
	"fmt"

	"github.com/spf13/afero"

	"github.com/iofpbench/producer/producer/storage"
	"github.com/iofpbench/producer/producer/util"
)

func init() {
	cmdVerify.Run = runVerify // break init cycle
	defineConfigFlags(&cmdVerify.Flag)
}

var cmdVerify = &Command{
	UsageLine: "verify [-w window] [-o output] [-c count] [-s size]",
	Short:     "check files written by produce",
	Long: `verify checks the files a produce run with the same flags has written.

  Each file must exist, be exactly size bytes long, and consist of one window
  repeated, followed by the window prefix for the remainder. The window must be
  the same in all files of the run.
  `,
}

func runVerify(cmd *Command, args []string) error {
	if len(args) > 0 {
		return argumentErrorf("unexpected argument %q", args[0])
	}

	config, _, err := resolveConfig(&cmd.Flag)
	if err != nil {
		return err
	}

	results, err := storage.Verify(context.Background(), afero.NewOsFs(), config)
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(cmd.Stdout, "Verifying file: %s - FAILED: %v\n", r.Name, r.Err)
			continue
		}
		fmt.Fprintf(cmd.Stdout, "Verifying file: %s - ok, %s\n", r.Name, util.BytesToHumanReadable(r.Size))
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d files", storage.ErrVerificationFailed, failed, len(results))
	}
	return err
}
