package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ResponseError is a non-2xx reply. Fields holds the server-provided
// messages keyed by field name (error, detail, password, ...); array
// values are reduced to their first element.
type ResponseError struct {
	StatusCode int
	Fields     map[string]string
}

func (e *ResponseError) Error() string {
	if msg := e.Field("error", "message", "detail"); msg != "" {
		return fmt.Sprintf("api: %d: %s", e.StatusCode, msg)
	}
	return fmt.Sprintf("api: request failed with status %d", e.StatusCode)
}

// Field returns the first non-empty server message among the given keys.
func (e *ResponseError) Field(keys ...string) string {
	for _, key := range keys {
		if msg, ok := e.Fields[key]; ok && msg != "" {
			return msg
		}
	}
	return ""
}

func (e *ResponseError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

func (e *ResponseError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

func parseErrorBody(data []byte) map[string]string {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}

	fields := make(map[string]string, len(raw))
	for key, value := range raw {
		var s string
		if err := json.Unmarshal(value, &s); err == nil {
			fields[key] = s
			continue
		}

		var list []string
		if err := json.Unmarshal(value, &list); err == nil && len(list) > 0 {
			fields[key] = list[0]
		}
	}
	return fields
}

// ServerMessage extracts a display message from an API error, falling
// back when the error is not a ResponseError or carries no message.
func ServerMessage(err error, fallback string, keys ...string) string {
	var respErr *ResponseError
	if !errors.As(err, &respErr) {
		return fallback
	}
	if len(keys) == 0 {
		keys = []string{"error", "message", "detail"}
	}
	if msg := respErr.Field(keys...); msg != "" {
		return msg
	}
	return fallback
}
