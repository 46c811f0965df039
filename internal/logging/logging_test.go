package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedLogger() (*logrus.Logger, *bytes.Buffer) {
	logger := SetupLogging("debug")
	buf := &bytes.Buffer{}
	logger.Out = buf
	return logger, buf
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
	return entry
}

func TestSetupLogging_Level(t *testing.T) {
	assert.Equal(t, logrus.WarnLevel, SetupLogging("warn").Level)
	assert.Equal(t, logrus.InfoLevel, SetupLogging("chatty").Level)
}

func TestLogData_FieldsAndTimings(t *testing.T) {
	logger, buf := newBufferedLogger()
	logData := NewLogData(logger)

	logData.AddData("ownerID", "abc")
	logData.AddTiming("fetchMs")()
	logData.Log().Info("done")

	entry := decodeLine(t, buf)
	assert.Equal(t, "abc", entry["ownerID"])
	assert.Contains(t, entry, "fetchMs")
	assert.Equal(t, "info", entry["loglevel"])
}

func TestContextHelpers_NoLogData(t *testing.T) {
	ctx := context.Background()

	assert.Nil(t, GetLogData(ctx))
	Time(ctx, "noop")()
	Data(ctx, "ignored", 1)
}

func TestLoggingWrapper_PerRequestData(t *testing.T) {
	logger, buf := newBufferedLogger()
	calls := 0
	handler := LoggingWrapper("Probe", logger, func(w http.ResponseWriter, req *http.Request, logData *LogData) error {
		calls++
		if calls == 1 {
			logData.AddData("first", true)
		}
		assert.Same(t, logData, GetLogData(req.Context()))
		w.WriteHeader(http.StatusOK)
		return nil
	})

	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	entry := decodeLine(t, buf)
	assert.Equal(t, "Handler.Probe.Complete", entry["msg"])
	assert.NotContains(t, entry, "first")
}

func TestMiddleware_LogsOperation(t *testing.T) {
	logger, buf := newBufferedLogger()
	_, api := humatest.New(t)
	api.UseMiddleware(Middleware(logger))

	huma.Register(api, huma.Operation{
		OperationID: "probe",
		Method:      http.MethodGet,
		Path:        "/probe",
	}, func(ctx context.Context, _ *struct{}) (*struct{}, error) {
		Data(ctx, "seen", "yes")
		return nil, huma.NewError(http.StatusServiceUnavailable, "down")
	})

	resp := api.Get("/probe")
	assert.Equal(t, http.StatusServiceUnavailable, resp.Code)

	entry := decodeLine(t, buf)
	assert.Equal(t, "Handler.probe.Error", entry["msg"])
	assert.Equal(t, "yes", entry["seen"])
	assert.EqualValues(t, http.StatusServiceUnavailable, entry["status"])
}
