package backend

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"rental-storefront/internal/pkg/errs"
)

// APIError is a failed backend call. Status is zero for transport failures.
type APIError struct {
	Status  int
	Message string
	Err     error
}

func (e *APIError) Error() string {
	switch {
	case e.Status == 0 && e.Err != nil:
		return "backend unreachable: " + e.Err.Error()
	case e.Err != nil:
		return fmt.Sprintf("backend returned %d: %v", e.Status, e.Err)
	case e.Message != "":
		return fmt.Sprintf("backend returned %d: %s", e.Status, e.Message)
	default:
		return fmt.Sprintf("backend returned %d %s", e.Status, http.StatusText(e.Status))
	}
}

func (e *APIError) Unwrap() error {
	return e.Err
}

func (e *APIError) Is(target error) bool {
	return target == errs.ErrRequestFailed
}

func (e *APIError) StatusCode() int {
	return e.Status
}

func (e *APIError) UserMessage() string {
	return e.Message
}

// extractMessage reads {"message"}, {"error":"..."} or {"error":{"message"}}.
func extractMessage(raw []byte) string {
	var body struct {
		Message string          `json:"message"`
		Error   json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	if msg := strings.TrimSpace(body.Message); msg != "" {
		return msg
	}
	if len(body.Error) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(body.Error, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var nested struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body.Error, &nested); err == nil {
		return strings.TrimSpace(nested.Message)
	}
	return ""
}
