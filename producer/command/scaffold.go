package command

import (
	"fmt"
	"os"
	"path/filepath"
)

func init() {
	cmdScaffold.Run = runScaffold // break init cycle
	cmdScaffold.Flag.String("output", "", "if not empty, save the configuration file to this directory")
}

var cmdScaffold = &Command{
	UsageLine: "scaffold [--output dir]",
	Short:     "generate a sample producer.toml",
	Long: `Generate producer.toml with all settings for you to customize.

  Use it with "producer --config producer.toml". Flags given on the command
  line still take precedence over the file.
  `,
}

func runScaffold(cmd *Command, args []string) error {
	outputPath, _ := cmd.Flag.GetString("output")
	if outputPath == "" {
		fmt.Fprintf(cmd.Stdout, "%s", PRODUCER_TOML_EXAMPLE)
		return nil
	}

	target := filepath.Join(outputPath, "producer.toml")
	if err := os.WriteFile(target, []byte(PRODUCER_TOML_EXAMPLE), 0644); err != nil {
		return fmt.Errorf("write %s: %w", target, err)
	}
	fmt.Fprintf(cmd.Stdout, "Wrote %s\n", target)
	return nil
}

const PRODUCER_TOML_EXAMPLE = `
# A sample TOML config file for producer
# Used with "producer --config producer.toml" or "producer verify --config producer.toml"
# Flags given on the command line take precedence over these values.

# output file name, %d is replaced by the zero based file index
output = "file_%d.dat"
# number of files to produce
count = 1
# size of each file in bytes, suffixes like KiB or GB are accepted
size = "1073741824"
# bytes written by each write call
window = "1024"

# flush file data to disk before closing each file
fsync = false
# evict written pages from the page cache after each file, linux only
dropCache = false
# random source of the window, empty to use crypto/rand
random = "/dev/urandom"

[metrics]
# prometheus push gateway, empty to disable
address = ""
`
