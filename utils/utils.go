package utils

import (
	"encoding/json"
	"strings"
	"time"

	"travel-booking/constants"
	"travel-booking/types"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

const redacted = "[REDACTED]"

// secretBodyFields are top-level JSON fields never written to request logs
var secretBodyFields = []string{"password", "token"}

// secretHeaders are request headers whose values are replaced in logs
var secretHeaders = []string{fiber.HeaderAuthorization, constants.HeaderAdminToken, fiber.HeaderCookie}

// sanitizeRequestBody sanitizes request body for file uploads, large content and credentials
func sanitizeRequestBody(c *fiber.Ctx) string {
	// Check if this is a multipart form (file upload)
	contentType := c.Get("Content-Type")
	if strings.Contains(contentType, "multipart/form-data") {
		formData := make(map[string]interface{})

		if form, err := c.MultipartForm(); err == nil {
			for key, values := range form.Value {
				if len(values) > 0 {
					formData[key] = values[0]
				}
			}

			// Add file field information without content
			for key, files := range form.File {
				fileInfo := make([]map[string]interface{}, len(files))
				for i, file := range files {
					fileInfo[i] = map[string]interface{}{
						"filename": file.Filename,
						"size":     file.Size,
						"content":  "[FILE_CONTENT_REMOVED]",
					}
				}
				formData[key] = fileInfo
			}
		}

		if jsonBytes, err := json.Marshal(formData); err == nil {
			return string(jsonBytes)
		}
		return "[MULTIPART_FORM_DATA]"
	}

	body := string(c.Body())
	if len(body) > 1000 && (strings.Contains(body, "data:image/") ||
		strings.Contains(body, "base64") ||
		isLikelyBase64(body)) {
		return "[LARGE_REQUEST_BODY_WITH_POSSIBLE_FILE_CONTENT]"
	}

	return redactJSONFields(body, secretBodyFields)
}

// redactJSONFields masks the named top-level fields of a JSON object.
// Anything that is not a JSON object is returned unchanged.
func redactJSONFields(body string, fields []string) string {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(body), &obj); err != nil {
		return body
	}
	changed := false
	for _, f := range fields {
		if _, ok := obj[f]; ok {
			obj[f], _ = json.Marshal(redacted)
			changed = true
		}
	}
	if !changed {
		return body
	}
	out, err := json.Marshal(obj)
	if err != nil {
		return body
	}
	return string(out)
}

// isLikelyBase64 detects if content looks like base64
func isLikelyBase64(content string) bool {
	if len(content) < 100 {
		return false
	}

	base64Chars := 0
	for _, char := range content {
		if (char >= 'A' && char <= 'Z') ||
			(char >= 'a' && char <= 'z') ||
			(char >= '0' && char <= '9') ||
			char == '+' || char == '/' || char == '=' {
			base64Chars++
		}
	}

	return float64(base64Chars)/float64(len(content)) > 0.8
}

// requestHeaders copies the raw request headers with credentials masked
func requestHeaders(c *fiber.Ctx) string {
	var header fasthttp.RequestHeader
	c.Request().Header.CopyTo(&header)
	for _, name := range secretHeaders {
		if len(header.Peek(name)) > 0 {
			header.Set(name, redacted)
		}
	}
	return string(header.Header())
}

// CreateSanitizedLogEntry creates a deep copied and sanitized log entry for logging.
// Values are copied because fiber reuses the request buffers once the handler returns.
func CreateSanitizedLogEntry(c *fiber.Ctx) types.LogEntry {
	method := string([]byte(c.Method()))
	url := string([]byte(c.OriginalURL()))
	requestBody := sanitizeRequestBody(c)
	responseBody := redactJSONFields(string(append([]byte(nil), c.Response().Body()...)), secretBodyFields)

	responseHeaders := make([]byte, len(c.Response().Header.Header()))
	copy(responseHeaders, c.Response().Header.Header())

	return types.LogEntry{
		Method:          method,
		URL:             url,
		ClientIP:        c.IP(),
		RequestBody:     requestBody,
		ResponseBody:    responseBody,
		RequestHeaders:  requestHeaders(c),
		ResponseHeaders: string(responseHeaders),
		StatusCode:      c.Response().StatusCode(),
		CreatedAt:       time.Now(),
	}
}
