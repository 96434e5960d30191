package occurrence

import (
	"iter"

	"github.com/shauntanwj/Suffix-Trie/alphabet"
	"github.com/shauntanwj/Suffix-Trie/trie"
)

// StartIndex is a suffix trie over one sequence. For any query it reports
// every one-based position at which the query occurs, i.e. every s such that
// the suffix beginning at s starts with the query.
//
// A built StartIndex is immutable and safe for concurrent use.
type StartIndex struct {
	x index
}

// BuildStart inserts every suffix seq[s..N], s = 1..N, recording s on each
// node the suffix passes through.
func BuildStart(alpha alphabet.Alphabet, seq []byte) (*StartIndex, error) {
	x, err := build(alpha, seq, suffixPath)
	if err != nil {
		return nil, err
	}
	return &StartIndex{x: x}, nil
}

func suffixPath(ranks []uint8, s int) iter.Seq[uint8] {
	return trie.Forward(ranks[s-1:])
}

// StartSearch returns the ascending start positions of q. A q that does not
// occur gives an empty, non-nil slice. The empty query matches every
// position 1..N.
func (si *StartIndex) StartSearch(q []byte) ([]uint32, error) {
	return si.x.search(q, trie.Forward)
}

// Rep returns the representative position of the node q leads to: the last
// start position recorded there, which is also the largest.
func (si *StartIndex) Rep(q []byte) (uint32, bool, error) {
	return si.x.rep(q, trie.Forward)
}

// Len returns the length of the indexed sequence.
func (si *StartIndex) Len() int { return si.x.n }

// Nodes returns the number of trie nodes, root and terminals included.
func (si *StartIndex) Nodes() int { return si.x.arena.Len() }

func (si *StartIndex) Alphabet() alphabet.Alphabet { return si.x.alpha }
