package codec

import (
	"unicode/utf8"

	"github.com/davenverse/shellfish/errs"
)

var errDecodeUTF8 = errs.New(errs.CodeDecodeFailed, "text decoding failed: invalid utf-8")

// textCodec passes strings through as UTF-8 bytes.
type textCodec struct{}

// Text returns a codec for plain UTF-8 strings.
// Decoding fails on byte sequences that are not valid UTF-8.
func Text() Codec[string] {
	return textCodec{}
}

func (textCodec) Encode(v string) ([]byte, error) {
	return []byte(v), nil
}

func (textCodec) Decode(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", errDecodeUTF8
	}
	return string(data), nil
}

// bytesCodec is the identity codec.
type bytesCodec struct{}

// Bytes returns the identity codec for raw byte slices.
func Bytes() Codec[[]byte] {
	return bytesCodec{}
}

func (bytesCodec) Encode(v []byte) ([]byte, error) {
	return v, nil
}

func (bytesCodec) Decode(data []byte) ([]byte, error) {
	return data, nil
}
