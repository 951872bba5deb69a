package stats

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLatencyStatsPercentiles(t *testing.T) {
	s := NewLatencyStats()
	for i := 1; i <= 100; i++ {
		s.AddSample(time.Duration(i) * time.Microsecond)
	}
	s.AddSample(2 * time.Second)

	assert.Equal(t, 101, s.Count())

	var out bytes.Buffer
	s.PrintStats(&out)
	report := out.String()

	assert.Contains(t, report, "over 101 calls")
	assert.Contains(t, report, "   50%         50 µs")
	assert.Contains(t, report, "   99%         99 µs")
	assert.Contains(t, report, "  100%    2000000 µs")
}

func TestLatencyStatsSingleBucket(t *testing.T) {
	s := NewLatencyStats()
	for i := 0; i < 100; i++ {
		s.AddSample(3 * time.Microsecond)
	}

	var out bytes.Buffer
	s.PrintStats(&out)
	report := out.String()

	for _, p := range percentages {
		assert.Containsf(t, report, fmt.Sprintf("  %3d%%          3 µs\n", p), "row for %d%%", p)
	}
}

func TestLatencyStatsSingleOverflowSample(t *testing.T) {
	s := NewLatencyStats()
	s.AddSample(time.Second)

	var out bytes.Buffer
	s.PrintStats(&out)

	for _, p := range percentages {
		assert.Containsf(t, out.String(), fmt.Sprintf("  %3d%%    1000000 µs\n", p), "row for %d%%", p)
	}
}

func TestLatencyStatsEmpty(t *testing.T) {
	var out bytes.Buffer
	NewLatencyStats().PrintStats(&out)
	assert.Contains(t, out.String(), "No write calls recorded")
}

func TestLatencyStatsIgnoresNegative(t *testing.T) {
	s := NewLatencyStats()
	s.AddSample(-time.Millisecond)
	assert.Equal(t, 0, s.Count())
}
