package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestIncRequests(t *testing.T) {
	m := New()

	m.IncRequests(MethodPost)
	m.IncRequests(MethodPost)
	m.IncRequests(MethodGet)

	assert.Equal(t, float64(2),
		testutil.ToFloat64(m.RequestsTotal.WithLabelValues("Post")))
	assert.Equal(t, float64(1),
		testutil.ToFloat64(m.RequestsTotal.WithLabelValues("Get")))
	assert.Equal(t, float64(0),
		testutil.ToFloat64(m.RequestsTotal.WithLabelValues("Delete")))
}

func TestHandlerExposition(t *testing.T) {
	m := New()
	m.IncRequests(MethodGet)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `record_requests_total{method="Get"} 1`)
	assert.Contains(t, body, "process_start_time_seconds")
}

func TestSamplePopulatesProcessGauges(t *testing.T) {
	m := New()
	c := NewCollector(m, time.Second, zap.NewNop())

	c.Sample()

	// Memory gauges always come from the runtime.
	assert.Greater(t, testutil.ToFloat64(m.MemoryAllocBytes), float64(0))
	assert.Greater(t, testutil.ToFloat64(m.MemorySysBytes), float64(0))
}

func TestParseMemAvailable(t *testing.T) {
	data := "MemTotal:       16316412 kB\nMemFree:         1550724 kB\nMemAvailable:    8412392 kB\n"

	kb, ok := parseMemAvailable([]byte(data))
	require.True(t, ok)
	assert.Equal(t, uint64(8412392), kb)

	_, ok = parseMemAvailable([]byte("MemTotal: 123 kB\n"))
	assert.False(t, ok)
}

func TestParseThreads(t *testing.T) {
	data := "Name:\tgateway\nState:\tS (sleeping)\nThreads:\t12\n"

	n, ok := parseThreads([]byte(data))
	require.True(t, ok)
	assert.Equal(t, int64(12), n)

	_, ok = parseThreads([]byte("Name:\tgateway\n"))
	assert.False(t, ok)
}

func TestParseCPUStat(t *testing.T) {
	data := strings.Join([]string{
		"cpu  100 0 50 800 25 0 5 0 0 0",
		"cpu0 50 0 25 400 10 0 2 0 0 0",
	}, "\n")

	busy, total, ok := parseCPUStat([]byte(data))
	require.True(t, ok)
	assert.Equal(t, uint64(155), busy)
	assert.Equal(t, uint64(980), total)

	_, _, ok = parseCPUStat([]byte("intr 12345\n"))
	assert.False(t, ok)
}

func TestCPUPercentDelta(t *testing.T) {
	m := New()
	c := NewCollector(m, time.Second, zap.NewNop())

	// The first reading never reports: there is no baseline yet.
	_, ok := c.cpuPercent()
	assert.False(t, ok)

	// Later readings, when procfs is present, are non-negative deltas.
	if c.prevTotal > 0 {
		time.Sleep(10 * time.Millisecond)
		if pct, ok := c.cpuPercent(); ok {
			assert.GreaterOrEqual(t, pct, float64(0))
		}
	}
}

func TestCPUPercentSkipsBackwardCounters(t *testing.T) {
	m := New()
	c := NewCollector(m, time.Second, zap.NewNop())

	// A busy counter reading below the previous one (wrap) yields no
	// sample rather than a huge bogus delta.
	c.prevTotal = 1
	c.prevBusy = ^uint64(0)
	_, ok := c.cpuPercent()
	assert.False(t, ok)
}
