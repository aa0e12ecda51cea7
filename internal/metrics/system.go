package metrics

import (
	"bufio"
	"bytes"
	"context"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Collector periodically samples process and system resource usage into
// the metrics set. It reads the Go runtime for process memory and procfs
// for system-wide numbers.
type Collector struct {
	metrics  *Metrics
	interval time.Duration
	logger   *zap.Logger

	// previous /proc/stat totals for CPU utilization deltas
	prevBusy  uint64
	prevTotal uint64
}

// NewCollector creates a collector sampling at the given interval.
func NewCollector(m *Metrics, interval time.Duration, logger *zap.Logger) *Collector {
	return &Collector{
		metrics:  m,
		interval: interval,
		logger:   logger,
	}
}

// Run samples on a fixed interval until ctx is cancelled. It is meant to
// run as a background goroutine for the process lifetime.
func (c *Collector) Run(ctx context.Context) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Sample()
		}
	}
}

// Sample takes one reading of every gauge and counter.
func (c *Collector) Sample() {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	c.metrics.MemoryAllocBytes.Set(float64(ms.Alloc))
	c.metrics.MemorySysBytes.Set(float64(ms.Sys))

	if kb, ok := readMemAvailable(); ok {
		c.metrics.AvailableMemory.Add(float64(kb))
	}

	if threads, ok := readThreadCount(); ok {
		c.metrics.ThreadTotal.Set(float64(threads))
	}

	if pct, ok := c.cpuPercent(); ok {
		c.metrics.TotalCPUUsage.Add(pct)
	}
}

func (c *Collector) cpuPercent() (float64, bool) {
	data, err := os.ReadFile("/proc/stat")
	if err != nil {
		c.logger.Debug("cpu sample failed", zap.Error(err))
		return 0, false
	}
	busy, total, ok := parseCPUStat(data)
	if !ok {
		return 0, false
	}

	defer func() {
		c.prevBusy, c.prevTotal = busy, total
	}()

	// First sample has no baseline. Counters can read backwards after a
	// wrap, so both deltas must be positive.
	if c.prevTotal == 0 || total <= c.prevTotal || busy < c.prevBusy {
		return 0, false
	}
	return float64(busy-c.prevBusy) / float64(total-c.prevTotal) * 100, true
}

func readMemAvailable() (uint64, bool) {
	data, err := os.ReadFile("/proc/meminfo")
	if err != nil {
		return 0, false
	}
	return parseMemAvailable(data)
}

func readThreadCount() (int64, bool) {
	data, err := os.ReadFile("/proc/self/status")
	if err != nil {
		return 0, false
	}
	return parseThreads(data)
}

// parseMemAvailable extracts the MemAvailable value in kilobytes from
// /proc/meminfo content.
func parseMemAvailable(data []byte) (uint64, bool) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "MemAvailable:") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return 0, false
		}
		kb, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return 0, false
		}
		return kb, true
	}
	return 0, false
}

// parseThreads extracts the Threads count from /proc/<pid>/status content.
func parseThreads(data []byte) (int64, bool) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "Threads:") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return 0, false
		}
		n, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

// parseCPUStat returns aggregate busy and total jiffies from the "cpu"
// summary line of /proc/stat.
func parseCPUStat(data []byte) (busy, total uint64, ok bool) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 5 || fields[0] != "cpu" {
			continue
		}
		var vals []uint64
		for _, f := range fields[1:] {
			v, err := strconv.ParseUint(f, 10, 64)
			if err != nil {
				return 0, 0, false
			}
			vals = append(vals, v)
		}
		for i, v := range vals {
			total += v
			// idle (3) and iowait (4) are the non-busy columns
			if i != 3 && i != 4 {
				busy += v
			}
		}
		return busy, total, true
	}
	return 0, 0, false
}
