package types

import "time"

// LogEntry is one sanitised API request queued for the request_logs table
type LogEntry struct {
	Method          string
	URL             string
	ClientIP        string
	RequestBody     string
	ResponseBody    string
	RequestHeaders  string
	ResponseHeaders string
	StatusCode      int
	Duration        time.Duration
	CreatedAt       time.Time
}
