// Package seqdb is a frequency ranked dictionary of sequences. For any
// prefix it answers with the most frequently inserted word carrying that
// prefix, smallest word first on ties.
package seqdb

import (
	"bytes"
	"errors"
	"slices"

	"github.com/shauntanwj/Suffix-Trie/alphabet"
	"github.com/shauntanwj/Suffix-Trie/trie"
)

var ErrEmptyWord = errors.New("seqdb: empty word")

// entry is the per-node payload. Terminal nodes hold the word and its count.
// Every node on a word's path caches the best word below it, as the ref of
// that word's terminal node; bestCount is zero until something is inserted
// below.
type entry struct {
	word      []byte
	count     uint32
	best      trie.Ref
	bestCount uint32
}

// DB is not safe for concurrent use.
type DB struct {
	alpha alphabet.Alphabet
	arena *trie.Arena[entry]
	words int
}

func New(alpha alphabet.Alphabet) *DB {
	if alpha.IsZero() {
		alpha = alphabet.ABCD
	}
	return &DB{alpha: alpha, arena: trie.NewArena[entry](0)}
}

// Insert records one more occurrence of word.
func (db *DB) Insert(word []byte) error {
	if len(word) == 0 {
		return ErrEmptyWord
	}
	ranks, err := db.alpha.Ranks(word)
	if err != nil {
		return err
	}

	path := make([]trie.Ref, 0, len(ranks)+1)
	ref := trie.Root
	path = append(path, ref)
	for _, r := range ranks {
		if ref, err = db.arena.Extend(ref, r); err != nil {
			return err
		}
		path = append(path, ref)
	}
	term, err := db.arena.Extend(ref, trie.Terminal)
	if err != nil {
		return err
	}

	var count uint32
	err = db.arena.Update(term, func(e *entry) {
		if e.count == 0 {
			e.word = slices.Clone(word)
			db.words++
		}
		e.count++
		count = e.count
	})
	if err != nil {
		return err
	}

	// Only the inserted word changed score, so each node on its path either
	// keeps its best or switches to this word.
	for _, node := range append(path, term) {
		if db.better(term, count, node) {
			if err := db.arena.Update(node, func(e *entry) {
				e.best = term
				e.bestCount = count
			}); err != nil {
				return err
			}
		}
	}
	return nil
}

// better reports whether the word at term with count should replace the
// cached best at ref.
func (db *DB) better(term trie.Ref, count uint32, ref trie.Ref) bool {
	cur, _ := db.arena.Get(ref)
	switch {
	case cur.bestCount == 0, cur.best == term:
		return true
	case count != cur.bestCount:
		return count > cur.bestCount
	}
	w, _ := db.arena.Get(term)
	b, _ := db.arena.Get(cur.best)
	return bytes.Compare(w.word, b.word) < 0
}

// QueryBestByPrefix returns the most frequent word with the given prefix,
// breaking ties by the lexicographically smallest word. ok is false if no
// inserted word has the prefix. The empty prefix matches every word.
func (db *DB) QueryBestByPrefix(prefix []byte) (word []byte, ok bool, err error) {
	ranks, err := db.alpha.Ranks(prefix)
	if err != nil {
		return nil, false, err
	}
	ref, found := db.arena.Walk(trie.Forward(ranks))
	if !found {
		return nil, false, nil
	}
	e, _ := db.arena.Get(ref)
	if e.bestCount == 0 {
		return nil, false, nil
	}
	best, _ := db.arena.Get(e.best)
	return slices.Clone(best.word), true, nil
}

// Count returns how many times word was inserted.
func (db *DB) Count(word []byte) (uint32, error) {
	ranks, err := db.alpha.Ranks(word)
	if err != nil {
		return 0, err
	}
	ref, found := db.arena.Walk(trie.Forward(ranks))
	if !found {
		return 0, nil
	}
	e, _ := db.arena.Get(db.arena.Child(ref, trie.Terminal))
	return e.count, nil
}

// Words returns the number of distinct words inserted.
func (db *DB) Words() int { return db.words }
