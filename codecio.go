package shellfish

import (
	"context"

	"github.com/davenverse/shellfish/codec"
	"github.com/davenverse/shellfish/effect"
)

// ReadAs describes reading a file and decoding its contents with the
// given codec. Decoding failures surface as errs.CodeDecodeFailed.
func ReadAs[A any](s *Shell, path string, c codec.Codec[A]) effect.Effect[A] {
	return effect.FlatMap(s.ReadBytes(path), func(data []byte) effect.Effect[A] {
		v, err := c.Decode(data)
		if err != nil {
			return effect.Fail[A](err)
		}
		return effect.Pure(v)
	})
}

// WriteAs describes encoding a value with the given codec and writing the
// result to a file, truncating any previous contents.
func WriteAs[A any](s *Shell, path string, c codec.Codec[A], value A) effect.Effect[effect.Unit] {
	return effect.FlatMap(encode(c, value), func(data []byte) effect.Effect[effect.Unit] {
		return s.WriteBytes(path, data)
	})
}

// AppendAs describes encoding a value and appending the raw encoded bytes
// to the end of a file. No separator is inserted; pair it with a codec
// whose encoding is self-delimiting if the file is read back in parts.
func AppendAs[A any](s *Shell, path string, c codec.Codec[A], value A) effect.Effect[effect.Unit] {
	return effect.FlatMap(encode(c, value), func(data []byte) effect.Effect[effect.Unit] {
		return s.AppendBytes(path, data)
	})
}

func encode[A any](c codec.Codec[A], value A) effect.Effect[[]byte] {
	return effect.Suspend(func(ctx context.Context) ([]byte, error) {
		return c.Encode(value)
	})
}
