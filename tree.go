package iavl

import (
	"github.com/tendermint/tmlibs/log"
)

// Tree is a versioned, self-balancing, cryptographically hashed search
// tree over byte-string keys. It owns a single root node; Set consumes the
// receiver and returns a new Tree, reusing any subtree that the update did
// not touch.
type Tree struct {
	root    *node
	version uint32
	logger  log.Logger
}

// Option configures a Tree at construction time.
type Option func(*Tree)

// WithLogger installs a structured logger used to trace rotations during
// Set. The default is log.NewNopLogger(), matching an embedder that
// never cares to watch rebalancing happen.
func WithLogger(logger log.Logger) Option {
	return func(t *Tree) { t.logger = logger }
}

// WithInitialVersion overrides the tree-wide version stamped onto the
// first leaf and carried unchanged by every subsequent Set.
func WithInitialVersion(version uint32) Option {
	return func(t *Tree) { t.version = version }
}

// New returns a tree whose root is a single leaf (key, value) and whose
// version is 1, unless overridden by WithInitialVersion.
func New(key, value []byte, opts ...Option) *Tree {
	t := &Tree{
		version: 1,
		logger:  log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.root = newLeafNode(key, value, t.version)
	return t
}

// Set returns a tree with key bound to value. The returned tree's version
// is carried over unchanged from t; every node rewritten by this call is
// stamped with that version.
func (t *Tree) Set(key, value []byte) *Tree {
	next := &Tree{
		version: t.version,
		logger:  t.logger,
	}
	next.root = t.root.set(next, key, value)
	return next
}

// RootHash returns the 32-byte SHA-256 digest of the root node's canonical
// serialization.
func (t *Tree) RootHash() []byte {
	return t.root.hash()
}

// Version returns the tree-wide version tag.
func (t *Tree) Version() uint32 {
	return t.version
}

// Get returns the value bound to key, if any.
func (t *Tree) Get(key []byte) ([]byte, bool) {
	return t.root.get(key)
}

// Has reports whether key is bound in the tree.
func (t *Tree) Has(key []byte) bool {
	return t.root.has(key)
}

// logRotation traces one rotation case (one of "LL", "LR", "RR", "RL")
// applied at the inner node whose routing key is routingKey.
func (t *Tree) logRotation(kind string, routingKey []byte) {
	t.logger.Debug("iavl: rebalance", "case", kind, "routingKey", string(routingKey))
}
