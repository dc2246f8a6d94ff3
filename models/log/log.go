package log

import "travel-booking/models"

// Log represents an HTTP request/response log entry.
type Log struct {
	models.Base
	Method          string `gorm:"type:varchar(10);not null;index" json:"method"`
	URL             string `gorm:"type:text;not null" json:"url"`
	ClientIP        string `gorm:"type:varchar(64)" json:"client_ip"`
	RequestBody     string `gorm:"type:text" json:"request_body"`
	RequestHeaders  string `gorm:"type:text" json:"request_headers"`
	ResponseBody    string `gorm:"type:text" json:"response_body"`
	ResponseHeaders string `gorm:"type:text" json:"response_headers"`
	StatusCode      int    `gorm:"type:int;index" json:"status_code"`
	DurationMs      int64  `gorm:"type:bigint" json:"duration_ms"`
}

func (Log) TableName() string {
	return "request_logs"
}
