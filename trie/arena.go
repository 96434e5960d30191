package trie

import (
	"errors"
	"fmt"
	"iter"

	"github.com/shauntanwj/Suffix-Trie/alphabet"
)

// Slots is the fixed fanout of every node: the terminal slot plus one slot
// per symbol of the largest supported alphabet.
const Slots = alphabet.MaxSymbols + 1

// Terminal is the child slot reserved for "an inserted string ends here".
const Terminal uint8 = 0

// Ref is a node index in an Arena.
type Ref uint32

const NoRef = ^Ref(0)

// Root is the ref of the root node of every arena.
const Root Ref = 0

var (
	ErrFrozen  = errors.New("trie: arena is frozen")
	ErrBadSlot = errors.New("trie: invalid child slot")
	ErrBadRef  = errors.New("trie: invalid node ref")
	ErrFull    = errors.New("trie: node count does not fit a ref")
)

// Node is a single arena record.
type Node[P any] struct {
	Children [Slots]Ref
	Value    P
}

func newNode[P any]() Node[P] {
	var n Node[P]
	for i := range n.Children {
		n.Children[i] = NoRef
	}
	return n
}

// Arena is an append-only store of nodes. It is not safe for concurrent use
// until Freeze has been called, after which it is read-only.
type Arena[P any] struct {
	nodes  []Node[P]
	frozen bool
}

// NewArena returns an arena holding just the root. sizeHint pre-sizes the
// node slice and may be zero.
func NewArena[P any](sizeHint int) *Arena[P] {
	if sizeHint < 1 {
		sizeHint = 1
	}
	a := &Arena[P]{nodes: make([]Node[P], 0, sizeHint)}
	a.nodes = append(a.nodes, newNode[P]())
	return a
}

// Len returns the number of nodes, root included.
func (a *Arena[P]) Len() int { return len(a.nodes) }

func (a *Arena[P]) Frozen() bool { return a.frozen }

// Freeze ends the build phase. It is idempotent.
func (a *Arena[P]) Freeze() {
	a.frozen = true
	// Drop spare capacity; nothing is appended from here on.
	a.nodes = a.nodes[:len(a.nodes):len(a.nodes)]
}

// Child returns the child of ref in slot, or NoRef.
func (a *Arena[P]) Child(ref Ref, slot uint8) Ref {
	if int(ref) >= len(a.nodes) || int(slot) >= Slots {
		return NoRef
	}
	return a.nodes[ref].Children[slot]
}

// Extend returns the child of ref in slot, creating it if absent.
func (a *Arena[P]) Extend(ref Ref, slot uint8) (Ref, error) {
	if a.frozen {
		return NoRef, ErrFrozen
	}
	if int(slot) >= Slots {
		return NoRef, fmt.Errorf("%w: %d", ErrBadSlot, slot)
	}
	if int(ref) >= len(a.nodes) {
		return NoRef, fmt.Errorf("%w: %d", ErrBadRef, ref)
	}
	if child := a.nodes[ref].Children[slot]; child != NoRef {
		return child, nil
	}
	if uint64(len(a.nodes)) >= uint64(NoRef) {
		return NoRef, ErrFull
	}
	child := Ref(len(a.nodes))
	a.nodes = append(a.nodes, newNode[P]())
	a.nodes[ref].Children[slot] = child
	return child, nil
}

// Update applies fn to the payload of ref. The pointer passed to fn must not
// be retained: the backing slice moves as the arena grows.
func (a *Arena[P]) Update(ref Ref, fn func(*P)) error {
	if a.frozen {
		return ErrFrozen
	}
	if int(ref) >= len(a.nodes) {
		return fmt.Errorf("%w: %d", ErrBadRef, ref)
	}
	fn(&a.nodes[ref].Value)
	return nil
}

// Get returns a copy of the payload of ref. Reference types inside the
// payload still share backing storage with the arena.
func (a *Arena[P]) Get(ref Ref) (P, bool) {
	if int(ref) >= len(a.nodes) {
		var zero P
		return zero, false
	}
	return a.nodes[ref].Value, true
}

// Walk follows path from the root and returns the node reached. ok is false
// as soon as a slot along the path is empty.
func (a *Arena[P]) Walk(path iter.Seq[uint8]) (ref Ref, ok bool) {
	ref = Root
	for slot := range path {
		ref = a.Child(ref, slot)
		if ref == NoRef {
			return NoRef, false
		}
	}
	return ref, true
}

// Forward yields ranks first to last.
func Forward(ranks []uint8) iter.Seq[uint8] {
	return func(yield func(uint8) bool) {
		for _, r := range ranks {
			if !yield(r) {
				return
			}
		}
	}
}

// Backward yields ranks last to first.
func Backward(ranks []uint8) iter.Seq[uint8] {
	return func(yield func(uint8) bool) {
		for i := len(ranks) - 1; i >= 0; i-- {
			if !yield(ranks[i]) {
				return
			}
		}
	}
}
