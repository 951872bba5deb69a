package command

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/golang/glog"
	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/iofpbench/producer/producer/stats"
	"github.com/iofpbench/producer/producer/storage"
)

// processStart is taken when the package initializes, before main runs.
var processStart = time.Now()

func init() {
	cmdProduce.Run = runProduce // break init cycle
	defineConfigFlags(&cmdProduce.Flag)
	cmdProduce.Flag.Bool("fsync", false, "flush file data to disk before closing each file")
	cmdProduce.Flag.Bool("dropCache", false, "evict the written pages from the page cache after each file (linux only)")
	cmdProduce.Flag.String("random", storage.DefaultRandomSource, "random source the window is read from, empty to use crypto/rand")
	cmdProduce.Flag.Bool("progress", false, "show a progress bar for each file on stderr")
	cmdProduce.Flag.Bool("stats", false, "time every write call and print a latency report at the end")
	cmdProduce.Flag.String("metrics.address", "", "prometheus push gateway address, e.g. localhost:9091")
}

var cmdProduce = &Command{
	UsageLine: "produce [-w window] [-o output] [-c count] [-s size]",
	Short:     "write files by repeating one random window",
	Long: `producer: component of the IOFilePatternBenchmark suite that produces files.

  One window of random bytes is read once from the random source, then each
  output file is written by repeating that window until the file size is
  reached. A trailing write of size % window bytes completes the file.
  Files are written one after another, and the time taken for each file and
  for the whole run is printed in microseconds.

  Window and file size are plain byte counts; suffixes like KiB or GB are
  accepted as well.
  `,
}

func runProduce(cmd *Command, args []string) error {
	if len(args) > 0 {
		return argumentErrorf("unexpected argument %q", args[0])
	}

	config, v, err := resolveConfig(&cmd.Flag)
	if err != nil {
		return err
	}

	printConfiguration(cmd.Stdout, config)

	if err := config.Validate(); err != nil {
		return err
	}

	if config.FileCount > 0 {
		if enough, needed, free, err := storage.HasFreeSpace(config); err != nil {
			glog.V(1).Infof("checking free space: %v", err)
		} else if !enough {
			glog.Warningf("producing %s, but only %s are free", humanize.IBytes(needed), humanize.IBytes(free))
		}
	}

	window, err := storage.ReadWindow(config.WindowSize, config.RandomSource)
	if err != nil {
		return err
	}
	stats.ProducerWindowGauge.WithLabelValues("window").Set(float64(config.WindowSize))
	stats.ProducerWindowGauge.WithLabelValues("file").Set(float64(config.FileSize))

	var opts []storage.Option
	if v.GetBool("progress") {
		opts = append(opts, storage.WithProgress(os.Stderr))
	}
	var latency *stats.LatencyStats
	if v.GetBool("stats") {
		latency = stats.NewLatencyStats()
		opts = append(opts, storage.WithLatencyStats(latency))
	}

	producer := storage.NewProducer(afero.NewOsFs(), config, window, cmd.Stdout, opts...)
	if err := producer.Run(context.Background()); err != nil {
		return err
	}

	fmt.Fprintf(cmd.Stdout, "Execution elapsed time: %d[µs]\n", time.Since(processStart).Microseconds())

	if latency != nil {
		latency.PrintStats(cmd.Stdout)
	}
	if addr := v.GetString("metrics.address"); addr != "" {
		if err := stats.PushMetrics("producer", uuid.New().String(), addr); err != nil {
			glog.Warningf("%v", err)
		}
	}
	return nil
}

func printConfiguration(w io.Writer, config storage.Config) {
	fmt.Fprintf(w, "*========================================*\n")
	fmt.Fprintf(w, "| Test configuration:\n")
	fmt.Fprintf(w, "| Output Format: \t%s\n", config.OutputFormat)
	fmt.Fprintf(w, "| File count: \t\t%d\n", config.FileCount)
	fmt.Fprintf(w, "| File size: \t\t%d\n", config.FileSize)
	fmt.Fprintf(w, "| Window size: \t\t%d\n", config.WindowSize)
	fmt.Fprintf(w, "*========================================*\n\n")
}
