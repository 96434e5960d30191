package orf

import (
	"errors"

	"github.com/shauntanwj/Suffix-Trie/alphabet"
	"github.com/shauntanwj/Suffix-Trie/occurrence"
)

var (
	ErrEmptySequence = occurrence.ErrEmptySequence
	ErrInvalidSymbol = alphabet.ErrInvalidSymbol
	ErrEmptyQuery    = errors.New("orf: start and end queries must be non-empty")
)
