package orf

/*

# ORF range index

A RangeIndex answers: given query strings `start` and `end`, which substrings
of the indexed sequence begin with `start`, end with `end`, and hold the two
occurrences without overlap?

It composes two occurrence indexes built once over the same sequence:

- `occurrence.StartIndex` gives S, the ascending start positions of `start`
- `occurrence.EndIndex` gives E, the ascending end positions of `end`

and emits seq[s..e] (one-based, inclusive) for every s in S and e in E with

	s < e  and  e - s + 1 >= len(start) + len(end)

in nested order: s ascending, then e ascending. Nothing is re-scanned per
pair; each result is a single slice copy of the known substring.

## Concurrency

Build is the only writing phase. A RangeIndex returned by Build is read-only
and may be shared between goroutines without locking.

*/
