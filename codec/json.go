package codec

import (
	"bytes"
	"encoding/json"

	"github.com/davenverse/shellfish/errs"
)

// jsonCodec encodes values as JSON.
type jsonCodec[A any] struct{}

// JSON returns a codec that serializes A as JSON.
// Decoding is strict: unknown trailing content after the document is a
// decode error.
func JSON[A any]() Codec[A] {
	return jsonCodec[A]{}
}

func (jsonCodec[A]) Encode(v A) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errs.Wrap(err, errs.CodeEncodeFailed, "json encoding failed")
	}
	return data, nil
}

func (jsonCodec[A]) Decode(data []byte) (A, error) {
	var v A
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&v); err != nil {
		var zero A
		return zero, errs.Wrap(err, errs.CodeDecodeFailed, "json decoding failed")
	}
	// Reject trailing content after the first document.
	if dec.More() {
		var zero A
		return zero, errs.New(errs.CodeDecodeFailed, "json decoding failed: trailing data after document")
	}
	return v, nil
}
