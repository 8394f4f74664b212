package iavl

import (
	"bytes"

	amino "github.com/tendermint/go-amino"
)

// These two primitives are the only source of bit-level divergence risk in
// the whole package: every integer field in a node's serialization is a
// ZigZag + Protocol-Buffers varint, and every byte-string field is an
// unsigned-varint length prefix followed by the raw bytes. Both are exactly
// the wire format github.com/tendermint/go-amino implements.

// varint encodes n as a signed 64-bit ZigZag varint.
func varint(n int64) []byte {
	buf := new(bytes.Buffer)
	if err := amino.EncodeVarint(buf, n); err != nil {
		panicSanity(err)
	}
	return buf.Bytes()
}

// uvarint encodes n as an unsigned varint, with no ZigZag step.
func uvarint(n uint64) []byte {
	buf := new(bytes.Buffer)
	if err := amino.EncodeUvarint(buf, n); err != nil {
		panicSanity(err)
	}
	return buf.Bytes()
}

// encodeBytes emits uvarint(len(b)) followed by the raw bytes of b.
func encodeBytes(b []byte) []byte {
	buf := new(bytes.Buffer)
	if err := amino.EncodeByteSlice(buf, b); err != nil {
		panicSanity(err)
	}
	return buf.Bytes()
}

// decodeVarint decodes a ZigZag varint and returns the number of bytes read.
func decodeVarint(b []byte) (n int64, read int, err error) {
	return amino.DecodeVarint(b)
}

// decodeUvarint decodes an unsigned varint and returns the number of bytes
// read.
func decodeUvarint(b []byte) (n uint64, read int, err error) {
	return amino.DecodeUvarint(b)
}

// decodeBytes decodes a length-prefixed byte sequence and returns the
// number of bytes read (prefix + payload).
func decodeBytes(b []byte) (out []byte, read int, err error) {
	return amino.DecodeByteSlice(b)
}
