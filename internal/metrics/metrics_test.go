package metrics

import (
	"bytes"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveCommand(t *testing.T) {
	m := New()

	m.ObserveCommand("clear_cache", 0.01, nil)
	m.ObserveCommand("clear_cache", 0.02, errors.New("boom"))
	m.ObserveCommand("show_in_folder", 0.001, nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.CommandsTotal.WithLabelValues("clear_cache", OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CommandsTotal.WithLabelValues("clear_cache", OutcomeFailure)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CommandsTotal.WithLabelValues("show_in_folder", OutcomeSuccess)))
	assert.Equal(t, 2, testutil.CollectAndCount(m.CommandDuration))
}

func TestCacheEntriesRemoved(t *testing.T) {
	m := New()

	m.CacheEntriesRemoved(2)
	m.CacheEntriesRemoved(0)
	m.CacheEntriesRemoved(3)

	assert.Equal(t, 5.0, testutil.ToFloat64(m.RemovedEntries))
}

func TestSnapshot(t *testing.T) {
	m := New()

	stats, err := m.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, Stats{}, stats)

	m.ObserveCommand("clear_cache", 0.01, nil)
	m.ObserveCommand("clear_cache", 0.01, nil)
	m.ObserveCommand("unknown", 0, errors.New("unknown command"))
	m.CacheEntriesRemoved(4)

	stats, err = m.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, Stats{Succeeded: 2, Failed: 1, RemovedEntries: 4}, stats)
	assert.Equal(t, 3, stats.Commands())
}

func TestWriteText(t *testing.T) {
	m := New()
	m.ObserveCommand("show_in_folder", 0.002, nil)
	m.CacheEntriesRemoved(2)

	var buf bytes.Buffer
	require.NoError(t, m.WriteText(&buf))

	out := buf.String()
	assert.Contains(t, out, "# TYPE filedesk_commands_total counter")
	assert.Contains(t, out, `filedesk_commands_total{command="show_in_folder",outcome="success"} 1`)
	assert.Contains(t, out, "filedesk_cache_entries_removed_total 2")
	assert.Contains(t, out, "filedesk_command_duration_seconds_count{command=\"show_in_folder\"} 1")
}
