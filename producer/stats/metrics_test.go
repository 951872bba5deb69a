package stats

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushMetricsWithoutAddress(t *testing.T) {
	assert.NoError(t, PushMetrics("producer", "run", ""))
}

func TestPushMetrics(t *testing.T) {
	var pushed atomic.Int32
	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Contains(t, r.URL.Path, "/metrics/job/producer/instance/run-1")
		pushed.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer gateway.Close()

	ProducerBytesCounter.Add(10)
	require.NoError(t, PushMetrics("producer", "run-1", gateway.URL))
	assert.Equal(t, int32(1), pushed.Load())
}

func TestProducerCountersRegistered(t *testing.T) {
	before := testutil.ToFloat64(ProducerWriteCallCounter.WithLabelValues("full"))
	ProducerWriteCallCounter.WithLabelValues("full").Add(3)
	assert.Equal(t, before+3, testutil.ToFloat64(ProducerWriteCallCounter.WithLabelValues("full")))

	count, err := testutil.GatherAndCount(Gather, "IOFilePattern_producer_write_calls_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
