package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "warn", TextFormat)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_DefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "", "")
	require.NoError(t, err)

	logger.Debug("debug line")
	logger.Info("info line")

	assert.NotContains(t, buf.String(), "debug line")
	assert.Contains(t, buf.String(), "info line")
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "DEBUG", JSONFormat)
	require.NoError(t, err)

	logger.Debug("launching", "module", "valuation")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "launching", entry["msg"])
	assert.Equal(t, "valuation", entry["module"])
}

func TestNew_LogfmtFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "info", LogfmtFormat)
	require.NoError(t, err)

	logger.Info("done", "run", "run_a")

	assert.Contains(t, buf.String(), "run=run_a")
}

func TestNew_Invalid(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "loud", TextFormat)
	assert.ErrorContains(t, err, "invalid log level")

	_, err = New(&bytes.Buffer{}, "info", "xml")
	assert.ErrorContains(t, err, "unknown log format")
}

func TestContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "info", TextFormat)
	require.NoError(t, err)

	ctx := WithContext(context.Background(), logger)
	FromContext(ctx).Info("via context")

	assert.Contains(t, buf.String(), "via context")
}
