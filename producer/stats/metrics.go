package stats

import (
	"fmt"
	"strings"

	"github.com/golang/glog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

const (
	Namespace = "IOFilePattern"
	Subsystem = "producer"
)

var (
	Gather = prometheus.NewRegistry()

	ProducerFileCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: Subsystem,
			Name:      "files_total",
			Help:      "Counter of produced files.",
		}, []string{"result"})

	ProducerBytesCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: Subsystem,
			Name:      "written_bytes_total",
			Help:      "Bytes written to output files.",
		})

	ProducerWriteCallCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: Subsystem,
			Name:      "write_calls_total",
			Help:      "Counter of write calls, split into full window writes and remainder writes.",
		}, []string{"type"})

	ProducerFileHistogram = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Subsystem: Subsystem,
			Name:      "file_write_seconds",
			Help:      "Bucketed histogram of the time to create, fill and close one file.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 24),
		})

	ProducerWindowGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: Subsystem,
			Name:      "configuration_bytes",
			Help:      "Configured window and file size of the run.",
		}, []string{"type"})
)

func init() {
	Gather.MustRegister(ProducerFileCounter)
	Gather.MustRegister(ProducerBytesCounter)
	Gather.MustRegister(ProducerWriteCallCounter)
	Gather.MustRegister(ProducerFileHistogram)
	Gather.MustRegister(ProducerWindowGauge)
}

// PushMetrics sends the gathered metrics once to a prometheus push gateway.
// Producer runs are short lived, so there is no push loop.
func PushMetrics(job, instance, addr string) error {
	if addr == "" {
		return nil
	}

	glog.V(0).Infof("%s sends metrics to %s as instance %s", job, addr, instance)

	pusher := push.New(addr, job).Gatherer(Gather).Grouping("instance", instance)
	err := pusher.Push()
	if err != nil && !strings.HasPrefix(err.Error(), "unexpected status code 200") {
		return fmt.Errorf("push metrics to %s: %w", addr, err)
	}
	return nil
}
