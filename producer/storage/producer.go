package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/golang/glog"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/afero"

	"github.com/iofpbench/producer/producer/stats"
	"github.com/iofpbench/producer/producer/storage/backend"
	"github.com/iofpbench/producer/producer/util"
)

// Producer writes the configured files one after another, reusing one window.
type Producer struct {
	fs       afero.Fs
	config   Config
	window   *Window
	out      io.Writer
	progress io.Writer
	latency  *stats.LatencyStats
}

type Option func(*Producer)

// WithProgress renders a per file progress bar to w.
func WithProgress(w io.Writer) Option {
	return func(p *Producer) {
		p.progress = w
	}
}

// WithLatencyStats times every single write call into s.
func WithLatencyStats(s *stats.LatencyStats) Option {
	return func(p *Producer) {
		p.latency = s
	}
}

func NewProducer(fs afero.Fs, config Config, window *Window, out io.Writer, opts ...Option) *Producer {
	p := &Producer{
		fs:     fs,
		config: config,
		window: window,
		out:    out,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run produces all files in order. Each file is written and closed before the
// next one is started; cancellation is only honored between files.
func (p *Producer) Run(ctx context.Context) error {
	if p.window.Len() != p.config.WindowSize {
		return &ConfigError{Reason: fmt.Sprintf("window holds %d bytes, configured %d", p.window.Len(), p.config.WindowSize)}
	}
	full, remainder := p.config.Chunks()
	glog.V(1).Infof("producing %d files of %s: %d writes of %d bytes, remainder %d bytes",
		p.config.FileCount, util.BytesToHumanReadable(p.config.FileSize), full, p.config.WindowSize, remainder)

	for i := 0; i < p.config.FileCount; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		name := p.config.FileName(i)
		fmt.Fprintf(p.out, "Writing to file: %s", name)

		start := time.Now()
		written, err := p.writeFile(name)
		elapsed := time.Since(start)
		if err != nil {
			fmt.Fprintln(p.out)
			stats.ProducerFileCounter.WithLabelValues("failed").Inc()
			stats.ProducerBytesCounter.Add(float64(written))
			return err
		}
		fmt.Fprintf(p.out, " - took: %d[µs]\n", elapsed.Microseconds())

		stats.ProducerFileCounter.WithLabelValues("ok").Inc()
		stats.ProducerBytesCounter.Add(float64(written))
		stats.ProducerWriteCallCounter.WithLabelValues("full").Add(float64(full))
		if remainder > 0 {
			stats.ProducerWriteCallCounter.WithLabelValues("remainder").Inc()
		}
		stats.ProducerFileHistogram.Observe(elapsed.Seconds())
		glog.V(2).Infof("wrote %s: %d bytes in %v", name, written, elapsed)
	}
	return nil
}

func (p *Producer) writeFile(name string) (written int64, err error) {
	f, err := p.fs.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return 0, &FileError{Op: "create", Name: name, Err: err}
	}
	df := backend.NewDiskFile(f)
	defer func() {
		if closeErr := df.Close(); closeErr != nil && err == nil {
			err = &FileError{Op: "close", Name: name, Err: closeErr}
		}
	}()

	var w io.Writer = df
	if p.latency != nil {
		w = &timedWriter{w: w, latency: p.latency}
	}
	if p.progress != nil {
		bar := p.newProgressBar(name)
		defer bar.Finish()
		w = io.MultiWriter(w, bar)
	}

	content := &windowContent{window: p.window.Bytes(), size: p.config.FileSize}
	if _, err = content.WriteTo(w); err != nil {
		return df.Size(), &FileError{Op: "write", Name: name, Err: err}
	}

	if p.config.Fsync {
		if err = df.Sync(); err != nil {
			return df.Size(), &FileError{Op: "sync", Name: name, Err: err}
		}
	}
	if p.config.DropCache {
		if dropErr := df.DropCache(); dropErr != nil {
			glog.Warningf("drop page cache of %s: %v", df.Name(), dropErr)
		}
	}
	return df.Size(), nil
}

func (p *Producer) newProgressBar(name string) *progressbar.ProgressBar {
	return progressbar.NewOptions64(p.config.FileSize,
		progressbar.OptionSetWriter(p.progress),
		progressbar.OptionShowBytes(true),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(p.progress, "\n")
		}),
		progressbar.OptionFullWidth(),
		progressbar.OptionSetDescription(name),
	)
}

type timedWriter struct {
	w       io.Writer
	latency *stats.LatencyStats
}

func (t *timedWriter) Write(p []byte) (int, error) {
	start := time.Now()
	n, err := t.w.Write(p)
	t.latency.AddSample(time.Since(start))
	return n, err
}
