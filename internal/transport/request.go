package transport

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 10 << 20

// StatusError is returned by DecodeResponse for non-2xx responses.
// Message holds the body's "message" field and is empty when the body has none.
type StatusError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface
func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("status %d", e.StatusCode)
}

// DecodeError is returned by DecodeResponse when a 2xx body cannot be read or decoded.
type DecodeError struct {
	Err error
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	return "decode response: " + e.Err.Error()
}

// Unwrap implements errors.Unwrap
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// DecodeResponse decodes a JSON response into the target structure and
// always closes the body.
func DecodeResponse(resp *http.Response, target any) error {
	defer resp.Body.Close() //nolint:errcheck // read side, nothing to report

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{StatusCode: resp.StatusCode, Message: ExtractMessage(body)}
	}
	if err != nil {
		return &DecodeError{Err: err}
	}

	if err := json.Unmarshal(body, target); err != nil {
		return &DecodeError{Err: err}
	}

	return nil
}

// ExtractMessage returns the "message" field of a JSON error body.
// String messages are returned trimmed; arrays of strings (as produced by
// validation errors) are joined with ", ". Anything else yields "".
func ExtractMessage(body []byte) string {
	var envelope struct {
		Message json.RawMessage `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Message) == 0 {
		return ""
	}

	var single string
	if err := json.Unmarshal(envelope.Message, &single); err == nil {
		return strings.TrimSpace(single)
	}

	var many []string
	if err := json.Unmarshal(envelope.Message, &many); err == nil {
		parts := make([]string, 0, len(many))
		for _, m := range many {
			if m = strings.TrimSpace(m); m != "" {
				parts = append(parts, m)
			}
		}
		return strings.Join(parts, ", ")
	}

	return ""
}

// BuildURL joins a base URL and path and sets the given query parameters.
// Parameters with a negative value are omitted.
func BuildURL(base, path string, params map[string]int) (string, error) {
	u, err := url.Parse(strings.TrimRight(base, "/") + path)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("base URL %q must be absolute", base)
	}

	q := u.Query()
	for key, value := range params {
		if value < 0 {
			continue
		}
		q.Set(key, strconv.Itoa(value))
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}
