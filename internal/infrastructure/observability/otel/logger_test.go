package otel

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

func TestNewLogger(t *testing.T) {
	tracer := noop.NewTracerProvider().Tracer("test")
	logger := NewLogger(tracer)

	assert.NotNil(t, logger)
	assert.Equal(t, tracer, logger.tracer)
}

func TestLogger_Log(t *testing.T) {
	tracer := noop.NewTracerProvider().Tracer("test")
	logger := NewLogger(tracer)

	tests := []struct {
		name    string
		level   LogLevel
		message string
		fields  map[string]interface{}
	}{
		{
			name:    "Infoレベルのログ",
			level:   LogLevelInfo,
			message: "test message",
			fields:  map[string]interface{}{"key": "value"},
		},
		{
			name:    "Debugレベルのログ",
			level:   LogLevelDebug,
			message: "debug message",
			fields:  nil,
		},
		{
			name:    "Warnレベルのログ",
			level:   LogLevelWarn,
			message: "warn message",
			fields:  map[string]interface{}{"count": 42},
		},
		{
			name:    "Errorレベルのログ",
			level:   LogLevelError,
			message: "error message",
			fields:  map[string]interface{}{"error": "test error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			// ログ出力がエラーを発生させないことを確認
			logger.Log(ctx, tt.level, tt.message, tt.fields)
		})
	}
}

func TestLogger_Error(t *testing.T) {
	tracer := noop.NewTracerProvider().Tracer("test")
	logger := NewLogger(tracer)

	tests := []struct {
		name    string
		message string
		err     error
		fields  map[string]interface{}
	}{
		{
			name:    "エラーあり、フィールドなし",
			message: "error message",
			err:     assert.AnError,
			fields:  nil,
		},
		{
			name:    "エラーあり、フィールドあり",
			message: "error message",
			err:     assert.AnError,
			fields:  map[string]interface{}{"key": "value"},
		},
		{
			name:    "エラーなし、フィールドあり",
			message: "error message",
			err:     nil,
			fields:  map[string]interface{}{"key": "value"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			logger.Error(ctx, tt.message, tt.err, tt.fields)
		})
	}
}

func TestLogEntry_MarshalJSON(t *testing.T) {
	entry := LogEntry{
		Level:     "INFO",
		Message:   "test message",
		TraceID:   "trace-id",
		SpanID:    "span-id",
		Fields:    map[string]interface{}{"key": "value"},
		Timestamp: "2026-01-01T00:00:00Z",
	}

	jsonData, err := json.Marshal(entry)
	require.NoError(t, err)

	var decoded LogEntry
	err = json.Unmarshal(jsonData, &decoded)
	require.NoError(t, err)

	assert.Equal(t, entry.Level, decoded.Level)
	assert.Equal(t, entry.Message, decoded.Message)
	assert.Equal(t, entry.TraceID, decoded.TraceID)
	assert.Equal(t, entry.SpanID, decoded.SpanID)
	assert.Equal(t, entry.Fields, decoded.Fields)
}

func TestLogger_LogWithoutTraceContext(t *testing.T) {
	tracer := noop.NewTracerProvider().Tracer("test")
	logger := NewLogger(tracer)

	// トレースコンテキストがない場合でもエラーが発生しないことを確認
	ctx := context.Background()
	logger.Log(ctx, LogLevelInfo, "test message", nil)

	span := trace.SpanFromContext(ctx)
	assert.False(t, span.SpanContext().IsValid())
}
