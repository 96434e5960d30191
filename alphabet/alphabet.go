package alphabet

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// MaxSymbols is the largest alphabet the fixed-fanout trie nodes support.
	MaxSymbols = 4

	// Sentinel marks the conceptual position 0 in front of an indexed
	// sequence. It never has a rank and is rejected wherever a symbol is
	// expected.
	Sentinel byte = '#'

	noRank uint8 = 0
)

var (
	ErrInvalidSymbol   = errors.New("alphabet: invalid symbol")
	ErrInvalidAlphabet = errors.New("alphabet: invalid alphabet")
	ErrUnknownAlphabet = errors.New("alphabet: unknown alphabet name")
)

var (
	// ABCD is the default four symbol alphabet.
	ABCD = MustNew("ABCD")

	// DNA is the nucleotide alphabet used for genomes read from FASTA.
	DNA = MustNew("ACGT")
)

// Alphabet maps each symbol to a one-based rank. Rank 0 is reserved for the
// terminal slot of a trie node, so ranks line up directly with child slots.
type Alphabet struct {
	symbols string
	ranks   [256]uint8
}

// New builds an alphabet from between 1 and MaxSymbols distinct symbols.
// Symbol order defines rank order.
func New(symbols string) (Alphabet, error) {
	var a Alphabet
	if len(symbols) == 0 || len(symbols) > MaxSymbols {
		return Alphabet{}, fmt.Errorf(
			"%w: want 1..%d symbols, got %d", ErrInvalidAlphabet, MaxSymbols, len(symbols))
	}
	for i := 0; i < len(symbols); i++ {
		c := symbols[i]
		if c == Sentinel {
			return Alphabet{}, fmt.Errorf("%w: sentinel %q is reserved", ErrInvalidAlphabet, c)
		}
		if a.ranks[c] != noRank {
			return Alphabet{}, fmt.Errorf("%w: duplicate symbol %q", ErrInvalidAlphabet, c)
		}
		a.ranks[c] = uint8(i + 1)
	}
	a.symbols = symbols
	return a, nil
}

// MustNew is New for package level alphabets known to be valid.
func MustNew(symbols string) Alphabet {
	a, err := New(symbols)
	if err != nil {
		panic(err)
	}
	return a
}

// Named resolves the alphabets selectable from configuration.
func Named(name string) (Alphabet, error) {
	switch strings.ToLower(name) {
	case "", "abcd":
		return ABCD, nil
	case "dna", "acgt":
		return DNA, nil
	}
	return Alphabet{}, fmt.Errorf("%w: %q", ErrUnknownAlphabet, name)
}

func (a Alphabet) Size() int { return len(a.symbols) }

func (a Alphabet) Symbols() string { return a.symbols }

func (a Alphabet) String() string { return a.symbols }

// IsZero reports whether a is the unusable zero Alphabet.
func (a Alphabet) IsZero() bool { return a.symbols == "" }

// Rank returns the one-based rank of c. ok is false for bytes outside the
// alphabet, the sentinel included.
func (a Alphabet) Rank(c byte) (rank uint8, ok bool) {
	r := a.ranks[c]
	return r, r != noRank
}

// Symbol is the inverse of Rank.
func (a Alphabet) Symbol(rank uint8) (byte, bool) {
	if rank == noRank || int(rank) > len(a.symbols) {
		return 0, false
	}
	return a.symbols[rank-1], true
}

// Ranks encodes q as ranks. The error wraps ErrInvalidSymbol and names the
// first offending byte and its zero-based offset.
func (a Alphabet) Ranks(q []byte) ([]uint8, error) {
	out := make([]uint8, len(q))
	for i, c := range q {
		r, ok := a.Rank(c)
		if !ok {
			return nil, fmt.Errorf("%w: %q at offset %d (alphabet %s)", ErrInvalidSymbol, c, i, a.symbols)
		}
		out[i] = r
	}
	return out, nil
}

// Validate checks q without allocating.
func (a Alphabet) Validate(q []byte) error {
	for i, c := range q {
		if _, ok := a.Rank(c); !ok {
			return fmt.Errorf("%w: %q at offset %d (alphabet %s)", ErrInvalidSymbol, c, i, a.symbols)
		}
	}
	return nil
}
