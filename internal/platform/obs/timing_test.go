package obs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeLogsOperation(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	ctx := context.WithValue(context.Background(), middleware.RequestIDKey, "req-1")

	var err error
	Time(ctx, log, "run scenario")(&err)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "run scenario", line["op"])
	assert.Equal(t, "req-1", line["req_id"])
	assert.Contains(t, line, "dur_ms")
}

func TestTimeLogsError(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	err := errors.New("boom")
	Time(context.Background(), log, "save run")(&err)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "error", line["level"])
	assert.Equal(t, "boom", line["error"])
}
