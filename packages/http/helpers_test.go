package http

import (
	"context"
	"sync"

	"github.com/abdul-hamid-achik/hitclient/packages/log"
)

type logEntry struct {
	level  string
	msg    string
	fields map[string]any
}

type recordingLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *recordingLogger) record(level, msg string, fields []log.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	m := make(map[string]any, len(fields))
	for _, f := range fields {
		m[f.Key] = f.Value
	}
	l.entries = append(l.entries, logEntry{level: level, msg: msg, fields: m})
}

func (l *recordingLogger) Debug(msg string, fields ...log.Field) { l.record("debug", msg, fields) }
func (l *recordingLogger) Info(msg string, fields ...log.Field) { l.record("info", msg, fields) }
func (l *recordingLogger) Warn(msg string, fields ...log.Field) { l.record("warn", msg, fields) }
func (l *recordingLogger) Error(msg string, fields ...log.Field) { l.record("error", msg, fields) }

func (l *recordingLogger) find(msg string) (logEntry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range l.entries {
		if e.msg == msg {
			return e, true
		}
	}
	return logEntry{}, false
}

type transportFunc func(ctx context.Context, req *Request) (*Response, error)

func (f transportFunc) Send(ctx context.Context, req *Request) (*Response, error) {
	return f(ctx, req)
}

// transports returns every bundled Transport so behaviour can be checked
// against each of them.
func transports() map[string]func() Transport {
	return map[string]func() Transport{
		"net":   func() Transport { return NewNetTransport() },
		"resty": func() Transport { return NewRestyTransport(nil) },
	}
}

func newTestClient(t Transport, opts ...ClientOption) *Client {
	opts = append([]ClientOption{WithTransport(t), WithLogger(log.NewNoopLogger())}, opts...)
	return NewClient(opts...)
}
