package sink

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNDJSON_EmitWritesOneLinePerRecord(t *testing.T) {
	var buf bytes.Buffer
	s := NewNDJSON(&buf)

	require.NoError(t, s.Emit(map[string]string{"a": "1"}))
	require.NoError(t, s.Emit(map[string]string{"b": "2"}))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		var decoded map[string]string
		require.NoError(t, json.Unmarshal([]byte(line), &decoded))
	}
}

func TestNDJSON_EmitError(t *testing.T) {
	s := NewNDJSON(failingWriter{})
	err := s.Emit(map[string]string{"a": "1"})
	require.Error(t, err)
}

func TestStatusRecord(t *testing.T) {
	rec := Status("auth-log-generator", "Generated 12 events (3 failures)", 10)

	assert.Equal(t, "INFO", rec.Level)
	assert.Equal(t, "auth-log-generator", rec.Service)
	assert.Equal(t, 10, rec.Cycle)
	assert.NotEmpty(t, rec.Timestamp)
}

func TestFailureRecord(t *testing.T) {
	rec := Failure("metric-generator", 7, errors.New("gateway unreachable"))

	assert.Equal(t, "ERROR", rec.Level)
	assert.Equal(t, 7, rec.Cycle)
	assert.Contains(t, rec.Message, "gateway unreachable")
}

func TestRecord_CycleOmittedWhenZero(t *testing.T) {
	data, err := json.Marshal(Record{Timestamp: "t", Level: "INFO", Service: "s", Message: "m"})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "cycle")
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("stream closed")
}
