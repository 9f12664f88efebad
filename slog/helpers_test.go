package slog_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func requestID(t *testing.T, line []byte) string {
	t.Helper()
	var record struct {
		RequestID string `json:"request_id"`
	}
	require.NoError(t, json.Unmarshal(line, &record))
	require.NotEmpty(t, record.RequestID)
	return record.RequestID
}
