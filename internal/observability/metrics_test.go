package observability

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_WriteTextfile(t *testing.T) {
	m := NewMetrics()
	m.RowsRead.WithLabelValues("MASTER.txt").Add(3)
	m.RecordsWritten.WithLabelValues("active").Inc()
	m.ModelReferences.Set(2)

	path := filepath.Join(t.TempDir(), "dronereg.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `dronereg_rows_read_total{table="MASTER.txt"} 3`)
	assert.Contains(t, string(data), `dronereg_records_written_total{source="active"} 1`)
	assert.Contains(t, string(data), "dronereg_model_references 2")
}

func TestMetrics_Counters(t *testing.T) {
	m := NewMetricsForTesting()
	m.RowsSkipped.WithLabelValues("DEREG.txt", "no_model").Add(4)

	assert.InDelta(t, 4, testutil.ToFloat64(m.RowsSkipped.WithLabelValues("DEREG.txt", "no_model")), 0.0001)
}

func TestNewLogger_Formats(t *testing.T) {
	var jsonBuf bytes.Buffer
	newLogger(&jsonBuf, "debug", "json").Debug("hello", "table", "MASTER.txt")
	assert.Contains(t, jsonBuf.String(), `"msg":"hello"`)
	assert.Contains(t, jsonBuf.String(), `"table":"MASTER.txt"`)

	var textBuf bytes.Buffer
	newLogger(&textBuf, "warn", "text").Info("dropped")
	assert.Empty(t, textBuf.String())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", parseLevel("debug").String())
	assert.Equal(t, "WARN", parseLevel("warning").String())
	assert.Equal(t, "ERROR", parseLevel("ERROR").String())
	assert.Equal(t, "INFO", parseLevel("").String())
}
