package todoapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
)

var errNullBody = errors.New("response body is null")

// Outcome is the raw result of one HTTP attempt: either a transport failure
// (Err set) or a response with a status code and body.
type Outcome struct {
	Err        error
	StatusCode int
	Body       []byte
}

// Classify maps an outcome to nil or an *Error. success is the status the
// calling operation treats as success.
//
// Precedence: transport failure, success status, 404, 5xx, anything else.
func Classify(o Outcome, success int) error {
	switch {
	case o.Err != nil:
		return newNetworkError(0, o.Err)
	case o.StatusCode == success:
		return nil
	case o.StatusCode == http.StatusNotFound:
		return newItemNotFoundError()
	case o.StatusCode >= 500 && o.StatusCode < 600:
		return newNetworkError(o.StatusCode, nil)
	default:
		return newUnknownError(o.StatusCode)
	}
}

// Decode classifies the outcome and, on success, decodes the body as JSON into T.
// A body that does not decode, including a bare null, yields a KindDecoding
// error and the zero T.
func Decode[T any](o Outcome, success int) (T, error) {
	var zero T
	if err := Classify(o, success); err != nil {
		return zero, err
	}
	if bytes.Equal(bytes.TrimSpace(o.Body), []byte("null")) {
		return zero, newDecodingError(o.StatusCode, errNullBody)
	}

	var v T
	if err := json.Unmarshal(o.Body, &v); err != nil {
		return zero, newDecodingError(o.StatusCode, err)
	}
	return v, nil
}

// DecodeEmpty classifies the outcome and ignores the body.
func DecodeEmpty(o Outcome, success int) error {
	return Classify(o, success)
}
