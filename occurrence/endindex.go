package occurrence

import (
	"iter"

	"github.com/shauntanwj/Suffix-Trie/alphabet"
	"github.com/shauntanwj/Suffix-Trie/trie"
)

// EndIndex is the mirror of StartIndex: a trie over every prefix of the
// sequence read backwards. For any query it reports every one-based position
// e such that the prefix ending at e ends with the query.
//
// A built EndIndex is immutable and safe for concurrent use.
type EndIndex struct {
	x index
}

// BuildEnd inserts every prefix seq[1..e], e = 1..N, last symbol first,
// recording e on each node it passes through.
func BuildEnd(alpha alphabet.Alphabet, seq []byte) (*EndIndex, error) {
	x, err := build(alpha, seq, reversedPrefixPath)
	if err != nil {
		return nil, err
	}
	return &EndIndex{x: x}, nil
}

func reversedPrefixPath(ranks []uint8, e int) iter.Seq[uint8] {
	return trie.Backward(ranks[:e])
}

// EndSearch returns the ascending end positions of q. q is walked last
// symbol first. A q that does not occur gives an empty, non-nil slice. The
// empty query matches every position 1..N.
func (ei *EndIndex) EndSearch(q []byte) ([]uint32, error) {
	return ei.x.search(q, trie.Backward)
}

// Rep returns the last (largest) end position recorded on the node q leads
// to.
func (ei *EndIndex) Rep(q []byte) (uint32, bool, error) {
	return ei.x.rep(q, trie.Backward)
}

func (ei *EndIndex) Len() int { return ei.x.n }

func (ei *EndIndex) Nodes() int { return ei.x.arena.Len() }

func (ei *EndIndex) Alphabet() alphabet.Alphabet { return ei.x.alpha }
