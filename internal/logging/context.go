package logging

import "context"

type logDataKey struct{}

// WithLogData attaches the request's LogData to ctx.
func WithLogData(ctx context.Context, logData *LogData) context.Context {
	return context.WithValue(ctx, logDataKey{}, logData)
}

// GetLogData returns the request's LogData, or nil outside a request.
func GetLogData(ctx context.Context) *LogData {
	logData, _ := ctx.Value(logDataKey{}).(*LogData)
	return logData
}

// Time starts a timing on the request's LogData if there is one.
func Time(ctx context.Context, entryName string) func() {
	if logData := GetLogData(ctx); logData != nil {
		return logData.AddTiming(entryName)
	}
	return func() {}
}

// Data records a field on the request's LogData if there is one.
func Data(ctx context.Context, key string, value interface{}) {
	if logData := GetLogData(ctx); logData != nil {
		logData.AddData(key, value)
	}
}
