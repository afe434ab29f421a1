package Trees

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

var (
	nilMark  = []byte{0}
	nodeMark = []byte{1}
)

// Fingerprint hashes the shape and the values of the subtree, enc giving
// the bytes of a value. Two subtrees with the same fingerprint have, with
// overwhelming probability, the same shape and the same values at the same
// places. Recursive.
// Time: O(n); Space: O(D)
func (n *Node[T]) Fingerprint(enc func(T) []byte) uint64 {
	d := xxhash.New()
	n.fingerprint(d, enc)
	return d.Sum64()
}

func (n *Node[T]) fingerprint(d *xxhash.Digest, enc func(T) []byte) {
	if n == nil {
		d.Write(nilMark)
		return
	}
	b := enc(n.v)
	var sz [binary.MaxVarintLen64]byte
	d.Write(nodeMark)
	d.Write(sz[:binary.PutUvarint(sz[:], uint64(len(b)))])
	d.Write(b)
	n.l.fingerprint(d, enc)
	n.r.fingerprint(d, enc)
}
