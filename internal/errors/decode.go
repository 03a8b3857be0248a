package errors

import stdErrors "errors"

// Stage names the decoding step that failed.
type Stage string

const (
	StageDecompress Stage = "decompress"
	StageJSON       Stage = "json"
	StageJSONP      Stage = "jsonp"
)

// DecodeError is returned when a response body cannot be turned into JSON.
//
// Error returns the offending text itself. For a JSON failure after gunzip
// that is the decompressed text, for a gunzip failure the raw body.
type DecodeError struct {
	Stage   Stage
	Payload string
	Err     error
}

func (e *DecodeError) Error() string {
	return e.Payload
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// NewDecodeError creates a DecodeError.
func NewDecodeError(stage Stage, payload string, err error) *DecodeError {
	return &DecodeError{Stage: stage, Payload: payload, Err: err}
}

// IsDecodeError reports whether err is a DecodeError (even when wrapped).
func IsDecodeError(err error) bool {
	var decodeErr *DecodeError
	return stdErrors.As(err, &decodeErr)
}

// AsDecodeError extracts the DecodeError from err's chain.
func AsDecodeError(err error) (*DecodeError, bool) {
	var decodeErr *DecodeError
	if stdErrors.As(err, &decodeErr) {
		return decodeErr, true
	}
	return nil, false
}
