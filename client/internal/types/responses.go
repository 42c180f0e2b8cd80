package types

import (
	"encoding/json"
	"fmt"
)

// ------------------------------
// Response Types
// ------------------------------

// Envelope is the uniform result of every REST client call. Success is true
// only for a 2xx response carrying parseable JSON; any other outcome sets
// Error to a human-readable message and Err to the classified cause.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
	Status  int             `json:"status,omitempty"`
	Err     error           `json:"-"`
}

// Decode unmarshals the envelope payload into v.
func (e Envelope) Decode(v any) error {
	if len(e.Data) == 0 {
		return fmt.Errorf("empty payload")
	}
	return json.Unmarshal(e.Data, v)
}

// Field extracts a single top-level string field from a JSON object payload.
// It reports false when the payload is not an object or the field is missing.
func (e Envelope) Field(name string) (string, bool) {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(e.Data, &m); err != nil {
		return "", false
	}
	raw, ok := m[name]
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// Result is what a service façade returns. Message is set on failure and on
// operations that report a user-facing confirmation. Fallback is true when
// Data came from the demo dataset instead of the backend.
type Result[T any] struct {
	Success  bool   `json:"success"`
	Data     T      `json:"data,omitempty"`
	Message  string `json:"message,omitempty"`
	Fallback bool   `json:"fallback,omitempty"`
	Err      error  `json:"-"`
}

// OK builds a successful Result.
func OK[T any](data T) Result[T] { return Result[T]{Success: true, Data: data} }

// Fail builds a failed Result carrying a user-facing message and its cause.
func Fail[T any](message string, cause error) Result[T] {
	return Result[T]{Success: false, Message: message, Err: cause}
}

// LoginResponse is the backend reply to /user/login. Key is the session token.
type LoginResponse struct {
	Key    string `json:"key"`
	UserID int64  `json:"userId,omitempty"`
}

// UploadResponse is the backend reply to /images/upload.
type UploadResponse struct {
	ImageURL string `json:"imageUrl"`
	Error    string `json:"error,omitempty"`
}

// ListImagesResponse is the backend reply to /images/list.
type ListImagesResponse struct {
	Images []string `json:"images"`
	Error  string   `json:"error,omitempty"`
}
