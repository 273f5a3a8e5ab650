package stats

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/typerush/internal/model"
)

func sampleResult() model.Result {
	return model.Result{
		Stats:     ComputeStats(180, 20, 60),
		Duration:  60,
		Elapsed:   60,
		Topic:     "space exploration",
		Timeline:  []int{10, 20, 30, 35, 36},
		WeakChars: []string{"q", "z"},
	}
}

func TestRenderResult(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderResult(&buf, sampleResult(), 20))

	out := buf.String()
	for _, needle := range []string{"Result", "WPM", "36", "90%", "60s / 60s", "space exploration", "q z", "WPM over time:"} {
		assert.Contains(t, out, needle)
	}
}

func TestRenderResultSkipsEmptyOptionalRows(t *testing.T) {
	var buf bytes.Buffer
	result := model.Result{Stats: ComputeStats(0, 0, 15), Duration: 15}
	require.NoError(t, RenderResult(&buf, result, 20))

	out := buf.String()
	assert.NotContains(t, out, "Topic")
	assert.NotContains(t, out, "Weak keys")
	assert.NotContains(t, out, "WPM over time")
	assert.True(t, strings.HasPrefix(out, "Result\n"))
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleResult()))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	statsField, ok := decoded["stats"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 36, statsField["wpm"])
	assert.EqualValues(t, 90, statsField["accuracy"])
	assert.EqualValues(t, 200, statsField["totalChars"])
	assert.Equal(t, "space exploration", decoded["topic"])
}
