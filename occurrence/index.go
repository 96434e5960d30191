package occurrence

import (
	"errors"
	"iter"
	"math"
	"slices"

	"github.com/shauntanwj/Suffix-Trie/alphabet"
	"github.com/shauntanwj/Suffix-Trie/trie"
)

var (
	ErrEmptySequence    = errors.New("occurrence: empty sequence")
	ErrSequenceTooLarge = errors.New("occurrence: sequence length does not fit a position")
)

// posting is the per-node payload: the ascending list of every position
// whose inserted string passed through the node, and the representative
// position, which is always the last one recorded.
type posting struct {
	rep       uint32
	positions []uint32
}

// pathFunc yields the child slots walked when inserting the string that is
// recorded under the one-based position pos.
type pathFunc func(ranks []uint8, pos int) iter.Seq[uint8]

// index holds what the start and end indexes have in common. They differ
// only in which string is inserted for a position and in which direction a
// query is walked.
type index struct {
	alpha alphabet.Alphabet
	n     int
	arena *trie.Arena[posting]
}

func build(alpha alphabet.Alphabet, seq []byte, path pathFunc) (index, error) {
	if len(seq) == 0 {
		return index{}, ErrEmptySequence
	}
	if uint64(len(seq)) >= math.MaxUint32 {
		return index{}, ErrSequenceTooLarge
	}
	ranks, err := alpha.Ranks(seq)
	if err != nil {
		return index{}, err
	}

	// A trie over all suffixes of a random sequence has close to N²/2 nodes
	// for short inputs; start with room for a linear number and let append
	// grow the rest.
	x := index{alpha: alpha, n: len(seq), arena: trie.NewArena[posting](2 * len(seq))}

	// Positions are inserted in increasing order, so appending on the way
	// down leaves every node's list ascending.
	for pos := 1; pos <= len(seq); pos++ {
		if err := x.insert(path(ranks, pos), uint32(pos)); err != nil {
			return index{}, err
		}
	}
	x.arena.Freeze()
	return x, nil
}

func (x *index) insert(path iter.Seq[uint8], pos uint32) error {
	ref := trie.Root
	if err := x.record(ref, pos); err != nil {
		return err
	}
	for slot := range path {
		next, err := x.arena.Extend(ref, slot)
		if err != nil {
			return err
		}
		if err := x.record(next, pos); err != nil {
			return err
		}
		ref = next
	}
	term, err := x.arena.Extend(ref, trie.Terminal)
	if err != nil {
		return err
	}
	return x.record(term, pos)
}

func (x *index) record(ref trie.Ref, pos uint32) error {
	return x.arena.Update(ref, func(p *posting) {
		p.rep = pos
		p.positions = append(p.positions, pos)
	})
}

// lookup walks q and returns the posting reached. found is false if the
// walk fell off the trie.
func (x *index) lookup(q []byte, walk func([]uint8) iter.Seq[uint8]) (p posting, found bool, err error) {
	ranks, err := x.alpha.Ranks(q)
	if err != nil {
		return posting{}, false, err
	}
	ref, ok := x.arena.Walk(walk(ranks))
	if !ok {
		return posting{}, false, nil
	}
	p, _ = x.arena.Get(ref)
	return p, true, nil
}

func (x *index) search(q []byte, walk func([]uint8) iter.Seq[uint8]) ([]uint32, error) {
	p, found, err := x.lookup(q, walk)
	if err != nil {
		return nil, err
	}
	if !found {
		return []uint32{}, nil
	}
	return slices.Clone(p.positions), nil
}

func (x *index) rep(q []byte, walk func([]uint8) iter.Seq[uint8]) (uint32, bool, error) {
	p, found, err := x.lookup(q, walk)
	if err != nil || !found {
		return 0, false, err
	}
	return p.rep, true, nil
}
