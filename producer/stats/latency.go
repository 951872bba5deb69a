package stats

import (
	"fmt"
	"io"
	"math"
	"sort"
	"time"
)

const (
	latencyResolution = 100000 // buckets of one microsecond, 100ms in total
	latencyBucket     = time.Microsecond
)

var percentages = []int{50, 66, 75, 80, 90, 95, 98, 99, 100}

// LatencyStats is a fixed resolution histogram of write call latencies.
// Samples beyond the resolution are kept individually in overflow.
type LatencyStats struct {
	data     []int
	overflow []int
}

func NewLatencyStats() *LatencyStats {
	return &LatencyStats{
		data:     make([]int, latencyResolution),
		overflow: make([]int, 0),
	}
}

func (s *LatencyStats) AddSample(d time.Duration) {
	index := int(d / latencyBucket)
	if index < 0 {
		return
	} else if index < len(s.data) {
		s.data[index]++
	} else {
		s.overflow = append(s.overflow, index)
	}
}

func (s *LatencyStats) Count() (n int) {
	for _, c := range s.data {
		n += c
	}
	return n + len(s.overflow)
}

// PrintStats renders min/avg/max/std and the percentile table, in microseconds.
func (s *LatencyStats) PrintStats(w io.Writer) {
	n, sum := 0, 0
	min, max := math.MaxInt, 0
	for i := 0; i < len(s.data); i++ {
		n += s.data[i]
		sum += s.data[i] * i
		if s.data[i] > 0 {
			if min > i {
				min = i
			}
			if max < i {
				max = i
			}
		}
	}
	n += len(s.overflow)
	for i := 0; i < len(s.overflow); i++ {
		sum += s.overflow[i]
		if min > s.overflow[i] {
			min = s.overflow[i]
		}
		if max < s.overflow[i] {
			max = s.overflow[i]
		}
	}
	if n == 0 {
		fmt.Fprintf(w, "\nNo write calls recorded\n")
		return
	}
	avg := float64(sum) / float64(n)
	varianceSum := 0.0
	for i := 0; i < len(s.data); i++ {
		if s.data[i] > 0 {
			d := float64(i) - avg
			varianceSum += d * d * float64(s.data[i])
		}
	}
	for i := 0; i < len(s.overflow); i++ {
		d := float64(s.overflow[i]) - avg
		varianceSum += d * d
	}
	std := math.Sqrt(varianceSum / float64(n))
	fmt.Fprintf(w, "\nWrite Call Times (µs) over %d calls\n", n)
	fmt.Fprintf(w, "              min      avg        max      std\n")
	fmt.Fprintf(w, "Total:        %d      %3.1f       %d      %3.1f\n", min, avg, max, std)

	fmt.Fprintf(w, "\nPercentage of the write calls served within a certain time (µs)\n")
	percentiles := make([]int, len(percentages))
	for i := 0; i < len(percentages); i++ {
		percentiles[i] = n * percentages[i] / 100
	}
	percentiles[len(percentiles)-1] = n
	percentileIndex := 0
	currentSum := 0
	for i := 0; i < len(s.data); i++ {
		currentSum += s.data[i]
		// one bucket may satisfy several percentiles
		for s.data[i] > 0 && percentileIndex < len(percentiles) && currentSum >= percentiles[percentileIndex] {
			fmt.Fprintf(w, "  %3d%%    %7d µs\n", percentages[percentileIndex], i)
			percentileIndex++
		}
	}
	sort.Ints(s.overflow)
	for i := 0; i < len(s.overflow); i++ {
		currentSum++
		for percentileIndex < len(percentiles) && currentSum >= percentiles[percentileIndex] {
			fmt.Fprintf(w, "  %3d%%    %7d µs\n", percentages[percentileIndex], s.overflow[i])
			percentileIndex++
		}
	}
}
