package codec

import (
	"gopkg.in/yaml.v3"

	"github.com/davenverse/shellfish/errs"
)

// yamlCodec encodes values as YAML.
type yamlCodec[A any] struct{}

// YAML returns a codec that serializes A as a YAML document.
func YAML[A any]() Codec[A] {
	return yamlCodec[A]{}
}

func (yamlCodec[A]) Encode(v A) ([]byte, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return nil, errs.Wrap(err, errs.CodeEncodeFailed, "yaml encoding failed")
	}
	return data, nil
}

func (yamlCodec[A]) Decode(data []byte) (A, error) {
	var v A
	if err := yaml.Unmarshal(data, &v); err != nil {
		var zero A
		return zero, errs.Wrap(err, errs.CodeDecodeFailed, "yaml decoding failed")
	}
	return v, nil
}
