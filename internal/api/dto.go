package api

import (
	"bytes"
	"encoding/json"
)

// OperateRequest is the body of POST /api/operate.
type OperateRequest struct {
	Command string `json:"command" validate:"required"`
	// Value is a JSON string or number; absent or null means no value.
	Value json.RawMessage `json:"value,omitempty"`
}

// RawValue returns Value as the text the dispatcher parses.
func (r *OperateRequest) RawValue() string {
	v := bytes.TrimSpace(r.Value)
	if len(v) == 0 || bytes.Equal(v, []byte("null")) {
		return ""
	}
	if v[0] == '"' {
		var s string
		if err := json.Unmarshal(v, &s); err == nil {
			return s
		}
	}
	return string(v)
}

// ModeRequest is the body of PUT /api/mode.
type ModeRequest struct {
	Mode string `json:"mode" validate:"required"`
}

// HealthResponse is returned by GET /healthz.
type HealthResponse struct {
	Status  string `json:"status"`
	Session string `json:"session"`
}
