// Package codec defines the bidirectional byte-serialization contract used
// by the typed read/write operations, together with JSON, YAML, and plain
// text implementations.
//
// Every codec obeys the round-trip law: Decode(Encode(v)) == v for all valid
// v. Decode on malformed bytes fails with a decode error; it never silently
// returns a default value.
package codec

// Codec converts values of type A to and from bytes.
type Codec[A any] interface {
	// Encode serializes v to bytes. It may fail on unrepresentable input.
	Encode(v A) ([]byte, error)

	// Decode deserializes bytes into an A. It fails with a decode error on
	// malformed input; strictness rules (trailing bytes, overflow) are the
	// codec's own.
	Decode(data []byte) (A, error)
}
