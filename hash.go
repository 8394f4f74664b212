package iavl

import (
	"bytes"

	"github.com/tendermint/tendermint/crypto/tmhash"
)

// hash returns n's cached SHA-256 digest, computing (and caching) it and
// every descendant's digest first if necessary.
func (n *node) hash() []byte {
	if n.cachedHash != nil {
		return n.cachedHash
	}

	buf := new(bytes.Buffer)
	n.writeHashBytes(buf)

	h := tmhash.New()
	h.Write(buf.Bytes())
	n.cachedHash = h.Sum(nil)
	return n.cachedHash
}

// writeHashBytes appends n's canonical hash-input serialization to buf. It
// has the side effect of computing and caching child hashes.
func (n *node) writeHashBytes(buf *bytes.Buffer) {
	buf.Write(varint(int64(n.height)))
	buf.Write(varint(int64(n.size)))
	buf.Write(varint(int64(n.version)))

	if n.isLeaf() {
		buf.Write(encodeBytes(n.key))
		valueHash := tmhash.Sum(n.value)
		buf.Write(encodeBytes(valueHash))
		return
	}

	if n.leftNode != nil {
		n.leftHash = n.leftNode.hash()
	}
	if n.leftHash == nil {
		panicSanity("node.leftHash was nil in writeHashBytes")
	}
	buf.Write(encodeBytes(n.leftHash))

	if n.rightNode != nil {
		n.rightHash = n.rightNode.hash()
	}
	if n.rightHash == nil {
		panicSanity("node.rightHash was nil in writeHashBytes")
	}
	buf.Write(encodeBytes(n.rightHash))
}
