package logger

import (
	"context"
	"sync"
	"time"

	"travel-booking/types"
)

// Sink persists request log entries
type Sink interface {
	SaveRequestLog(ctx context.Context, entry types.LogEntry) error
}

// AsyncLogger hands request logs to a single background writer so
// handlers never wait on the log table.
type AsyncLogger struct {
	sink    Sink
	channel chan types.LogEntry
	done    chan struct{}
	once    sync.Once
}

func NewAsyncLogger(sink Sink) *AsyncLogger {
	return &AsyncLogger{
		sink:    sink,
		channel: make(chan types.LogEntry, 100),
		done:    make(chan struct{}),
	}
}

// ProcessLog drains the channel until Close is called
func (l *AsyncLogger) ProcessLog() {
	defer close(l.done)
	Debug("Starting asynchronous request logger")

	for entry := range l.channel {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := l.sink.SaveRequestLog(ctx, entry); err != nil {
			Error("Failed to insert request log entry", err)
		}
		cancel()
	}
}

// Log queues an entry. When the buffer is full the entry is dropped
// rather than blocking the request.
func (l *AsyncLogger) Log(entry types.LogEntry) {
	select {
	case l.channel <- entry:
	default:
		Warning("Request log buffer full, dropping entry for " + entry.Method + " " + entry.URL)
	}
}

// Close stops accepting entries and waits for queued ones to be written
func (l *AsyncLogger) Close() {
	l.once.Do(func() {
		close(l.channel)
	})
	<-l.done
}
