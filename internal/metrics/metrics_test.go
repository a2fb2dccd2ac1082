package metrics_test

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/asc/internal/metrics"
)

var errConnectionRefused = errors.New("connection refused")

func TestCollector_ObserveRequest(t *testing.T) {
	t.Parallel()

	registry := prometheus.NewRegistry()

	collector, err := metrics.NewCollector(registry)
	require.NoError(t, err)

	collector.ObserveRequest("GET", 200, 10*time.Millisecond, nil)
	collector.ObserveRequest("GET", 200, 20*time.Millisecond, nil)
	collector.ObserveRequest("POST", 409, 5*time.Millisecond, nil)
	collector.ObserveRequest("GET", 0, time.Millisecond, errConnectionRefused)

	count, err := testutil.GatherAndCount(registry, "asc_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = testutil.GatherAndCount(registry, "asc_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = testutil.GatherAndCount(registry, "asc_transport_errors_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCollector_ObserveTokenGeneration(t *testing.T) {
	t.Parallel()

	registry := prometheus.NewRegistry()

	collector, err := metrics.NewCollector(registry)
	require.NoError(t, err)

	collector.ObserveTokenGeneration(nil)
	collector.ObserveTokenGeneration(nil)
	collector.ObserveTokenGeneration(errConnectionRefused)

	count, err := testutil.GatherAndCount(registry, "asc_token_generations_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestNewCollector_ReusesRegisteredCollectors(t *testing.T) {
	t.Parallel()

	registry := prometheus.NewRegistry()

	first, err := metrics.NewCollector(registry)
	require.NoError(t, err)

	second, err := metrics.NewCollector(registry)
	require.NoError(t, err)

	first.ObserveTokenGeneration(nil)
	second.ObserveTokenGeneration(nil)

	families, err := registry.Gather()
	require.NoError(t, err)

	for _, family := range families {
		if family.GetName() != "asc_token_generations_total" {
			continue
		}

		require.Len(t, family.GetMetric(), 1)
		assert.InDelta(t, 2.0, family.GetMetric()[0].GetCounter().GetValue(), 0)
	}
}
