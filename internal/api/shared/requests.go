package shared

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// MaxBodyBytes caps the size of a request body read by ReadBody.
const MaxBodyBytes = 1 << 20

// ErrBodyTooLarge is returned by ReadBody when the body exceeds MaxBodyBytes.
var ErrBodyTooLarge = errors.New("request body too large")

// ReadBody returns the raw request body without decoding it, so callers can
// validate the rest of the request before the payload. A missing body is
// returned as an empty message.
func ReadBody(r *http.Request) (json.RawMessage, error) {
	if r.Body == nil {
		return nil, nil
	}

	raw, err := io.ReadAll(io.LimitReader(r.Body, MaxBodyBytes+1))
	if err != nil {
		return nil, err
	}
	if len(raw) > MaxBodyBytes {
		return nil, ErrBodyTooLarge
	}

	return json.RawMessage(bytes.TrimSpace(raw)), nil
}
